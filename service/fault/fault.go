// Package fault carries the coded errors shared by the marketplace
// services. Every code aborts the triggering operation with no state
// change; controllers map codes to HTTP statuses.
package fault

import "errors"

type ErrCode string

const (
	ErrNotAuthorized   ErrCode = "NOT_AUTHORIZED"
	ErrInvalidDuration ErrCode = "INVALID_DURATION"
	ErrInvalidParams   ErrCode = "INVALID_PARAMS"
	ErrNotApproved     ErrCode = "NOT_APPROVED"
	ErrNotSeller       ErrCode = "NOT_SELLER"
	ErrAuctionActive   ErrCode = "AUCTION_ACTIVE"
	ErrAuctionInactive ErrCode = "AUCTION_NOT_ACTIVE"
	ErrAuctionEnded    ErrCode = "AUCTION_ENDED"
	ErrAuctionNotEnded ErrCode = "AUCTION_NOT_ENDED"
	ErrBidTooLow       ErrCode = "BID_TOO_LOW"
	ErrNothingToClaim  ErrCode = "NOTHING_TO_CLAIM"
	ErrTransferFailed  ErrCode = "TRANSFER_FAILED"
	ErrNotFound        ErrCode = "NOT_FOUND"
)

type codedError struct{ code ErrCode }

func (e codedError) Error() string { return string(e.code) }
func (e codedError) Code() ErrCode { return e.code }

func New(c ErrCode) error { return codedError{code: c} }

// Code extracts the error code, or "" for uncoded errors.
func Code(err error) ErrCode {
	var ce interface{ Code() ErrCode }
	if errors.As(err, &ce) {
		return ce.Code()
	}
	return ""
}
