package store

import (
	"testing"
	"time"

	"adspot/model"
)

func TestBalances(t *testing.T) {
	s := New("0xfee", 250)

	s.Credit("0xa", 100)
	s.Credit("0xa", 50)
	if got := s.Balance("0xa"); got != 150 {
		t.Fatalf("balance = %d; want 150", got)
	}

	s.SetBalance("0xa", 0)
	if got := s.Balance("0xa"); got != 0 {
		t.Fatalf("balance after zero = %d; want 0", got)
	}
	if got := s.SumBalances(); got != 0 {
		t.Fatalf("sum = %d; want 0", got)
	}
}

func TestHeldBids(t *testing.T) {
	s := New("0xfee", 250)
	s.PutAuction(&model.Auction{AssetID: 1, HighestBid: 500})
	s.PutAuction(&model.Auction{AssetID: 2, HighestBid: 300, Settled: true})
	s.PutAuction(&model.Auction{AssetID: 3})

	// only unsettled standing bids count as held
	if got := s.HeldBids(); got != 500 {
		t.Fatalf("held = %d; want 500", got)
	}
}

func TestEventLog(t *testing.T) {
	s := New("0xfee", 250)
	at := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	e1 := s.Append(model.Event{Type: model.EventListed, AssetID: 1, Actor: "0xa"}, at)
	e2 := s.Append(model.Event{Type: model.EventBought, AssetID: 1, Actor: "0xb", Counterparty: "0xa"}, at)
	s.Append(model.Event{Type: model.EventListed, AssetID: 2, Actor: "0xc"}, at)

	if e1.ID == "" || e1.ID == e2.ID {
		t.Fatal("events must get distinct ids")
	}
	if !e1.CreatedAt.Equal(at) {
		t.Fatalf("created at = %v; want %v", e1.CreatedAt, at)
	}

	if got := len(s.Events(0)); got != 3 {
		t.Fatalf("all events = %d; want 3", got)
	}
	if got := len(s.Events(1)); got != 2 {
		t.Fatalf("asset 1 events = %d; want 2", got)
	}
	if got := len(s.EventsFor("0xa")); got != 2 {
		t.Fatalf("0xa events = %d; want actor+counterparty = 2", got)
	}
	if got := len(s.EventsFor("0xzzz")); got != 0 {
		t.Fatalf("stranger events = %d; want 0", got)
	}
}

func TestConservationCounters(t *testing.T) {
	s := New("0xfee", 250)
	s.RecordInflow(1000)
	s.RecordInflow(500)
	s.RecordOutflow(300)

	if s.TotalReceived() != 1500 || s.TotalWithdrawn() != 300 {
		t.Fatalf("counters = %d/%d; want 1500/300",
			s.TotalReceived(), s.TotalWithdrawn())
	}
}
