package rental

type RentReq struct {
	DurationSec int64 `json:"duration_sec" validate:"required,gt=0"`
	Paid        int64 `json:"paid" validate:"gte=0"`
}

type SetPriceReq struct {
	PricePerSec int64 `json:"price_per_sec" validate:"gte=0"`
}

type PayRentReq struct {
	Payment int64 `json:"payment" validate:"required,gt=0"`
}
