// model/event.go
package model

import "time"

type EventType string

const (
	EventRented         EventType = "RENTED"
	EventRentalCleared  EventType = "RENTAL_CLEARED"
	EventListed         EventType = "LISTED"
	EventUnlisted       EventType = "UNLISTED"
	EventBought         EventType = "BOUGHT"
	EventAuctionCreated EventType = "AUCTION_CREATED"
	EventBidPlaced      EventType = "BID_PLACED"
	EventSettled        EventType = "AUCTION_SETTLED"
	EventRentForwarded  EventType = "RENT_FORWARDED"
	EventClaimed        EventType = "CLAIMED"
)

// Event is one entry of the append-only observable log consumed by
// off-system indexers. Actor is the account that triggered the
// operation; Counterparty the other side where one exists (seller on a
// buy, outbid bidder on a bid, winner on a settlement).
type Event struct {
	ID           string     `json:"id"`
	Type         EventType  `json:"type"`
	AssetID      int64      `json:"asset_id,omitempty"`
	Actor        string     `json:"actor,omitempty"`
	Counterparty string     `json:"counterparty,omitempty"`
	Amount       int64      `json:"amount,omitempty"`
	Fee          int64      `json:"fee,omitempty"`
	Start        *time.Time `json:"start,omitempty"`
	End          *time.Time `json:"end,omitempty"`
	CreatedAt    time.Time  `json:"created_at"`
}
