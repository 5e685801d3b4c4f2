package model

import (
	"testing"
	"time"
)

func TestFeePolicySplit(t *testing.T) {
	cases := []struct {
		bps, amount   int64
		fee, proceeds int64
	}{
		{250, 10000, 250, 9750},
		{250, 10001, 250, 9751}, // truncates, remainder stays with seller
		{250, 39, 0, 39},
		{0, 10000, 0, 10000},
		{2000, 10000, 2000, 8000},
	}
	for _, tc := range cases {
		p := FeePolicy{Receiver: "0xfee", Bps: tc.bps}
		fee, proceeds := p.Split(tc.amount)
		if fee != tc.fee || proceeds != tc.proceeds {
			t.Errorf("Split(%d) at %d bps = %d/%d; want %d/%d",
				tc.amount, tc.bps, fee, proceeds, tc.fee, tc.proceeds)
		}
		if fee+proceeds != tc.amount {
			t.Errorf("split of %d does not sum back", tc.amount)
		}
	}
}

func TestAuctionMinNextBid(t *testing.T) {
	a := Auction{MinBid: 1000}
	if got := a.MinNextBid(); got != 1000 {
		t.Fatalf("no bids: MinNextBid = %d; want reserve 1000", got)
	}

	cases := []struct{ highest, want int64 }{
		{1000, 1050}, // exact 5%
		{10, 11},     // ceil(0.5) = 1
		{19, 20},     // ceil(0.95) = 1
		{21, 23},     // ceil(1.05) = 2
		{1, 2},
	}
	for _, tc := range cases {
		a.HighestBid = tc.highest
		if got := a.MinNextBid(); got != tc.want {
			t.Errorf("MinNextBid after %d = %d; want %d", tc.highest, got, tc.want)
		}
	}
}

func TestAuctionState(t *testing.T) {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	a := &Auction{StartTime: now.Add(-time.Hour), EndTime: now.Add(time.Hour)}

	if got := a.State(now); got != AuctionLive {
		t.Fatalf("inside window: %s; want LIVE", got)
	}
	if got := a.State(a.EndTime); got != AuctionEnded {
		t.Fatalf("at end instant: %s; want ENDED", got)
	}
	a.Settled = true
	if got := a.State(now); got != AuctionSettled {
		t.Fatalf("settled: %s; want SETTLED", got)
	}
	var none *Auction
	if got := none.State(now); got != AuctionNone {
		t.Fatalf("nil auction: %s; want NONE", got)
	}
}

func TestRentalActive(t *testing.T) {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	r := &RentalRecord{AssetID: 1, Renter: "0xbbb", ExpiresAt: now.Add(time.Minute)}

	if !r.Active(now) {
		t.Fatal("should be active before expiry")
	}
	if !r.Active(r.ExpiresAt) {
		t.Fatal("should be active at the expiry instant")
	}
	if r.Active(r.ExpiresAt.Add(time.Nanosecond)) {
		t.Fatal("should be inactive past expiry")
	}
	var none *RentalRecord
	if none.Active(now) {
		t.Fatal("nil record is never active")
	}
}
