package market

type ListReq struct {
	Price int64 `json:"price" validate:"required,gt=0"`
}

type BuyReq struct {
	Payment int64 `json:"payment" validate:"required,gt=0"`
}
