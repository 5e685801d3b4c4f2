package auction

import "time"

type CreateReq struct {
	Start  time.Time `json:"start" validate:"required"`
	End    time.Time `json:"end" validate:"required"`
	MinBid int64     `json:"min_bid" validate:"required,gt=0"`
}

type BidReq struct {
	Amount int64 `json:"amount" validate:"required,gt=0"`
}
