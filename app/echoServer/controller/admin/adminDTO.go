package admin

type SetFeePolicyReq struct {
	Receiver string `json:"receiver" validate:"required"`
	Bps      int64  `json:"bps" validate:"gte=0,lte=2000"`
}
