// model/market.go
package model

import "time"

// Listing is a fixed-price sale offer. Absence of a record means "not listed".
type Listing struct {
	AssetID  int64     `json:"asset_id"`
	Seller   string    `json:"seller"`
	Price    int64     `json:"price"`
	ListedAt time.Time `json:"listed_at"`
}

type AuctionState string

const (
	AuctionNone    AuctionState = "NOT_CREATED"
	AuctionLive    AuctionState = "ACTIVE"
	AuctionEnded   AuctionState = "ENDED"
	AuctionSettled AuctionState = "SETTLED"
)

// Auction is the per-asset ascending-auction record. "Ended" is derived
// from EndTime, not stored; Settled is the only terminal flag.
type Auction struct {
	AssetID       int64     `json:"asset_id"`
	Seller        string    `json:"seller"`
	StartTime     time.Time `json:"start_time"`
	EndTime       time.Time `json:"end_time"`
	MinBid        int64     `json:"min_bid"`
	HighestBidder string    `json:"highest_bidder,omitempty"`
	HighestBid    int64     `json:"highest_bid"`
	Settled       bool      `json:"settled"`
	CreatedAt     time.Time `json:"created_at"`
}

// State derives the lifecycle state at t.
func (a *Auction) State(t time.Time) AuctionState {
	switch {
	case a == nil:
		return AuctionNone
	case a.Settled:
		return AuctionSettled
	case !t.Before(a.EndTime):
		return AuctionEnded
	default:
		return AuctionLive
	}
}

// MinNextBid is the smallest acceptable bid: the reserve for the first
// bid, then a 5% increment (rounded up) over the standing one.
func (a *Auction) MinNextBid() int64 {
	if a.HighestBid == 0 {
		return a.MinBid
	}
	return a.HighestBid + (a.HighestBid*5+99)/100
}
