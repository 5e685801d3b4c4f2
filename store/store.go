// Package store holds the process-wide marketplace state: the keyed
// tables for rentals, listings, auctions and balances, the fee policy,
// the append-only event log, and the money-conservation counters.
//
// The store does no locking of its own. Every public operation of the
// services acquires the single guard for its whole duration (success or
// failure) via Lock/Unlock; that one mutex is both the serialization
// model and the reentrancy guard for balance-affecting operations,
// including while an external transfer is in flight.
package store

import (
	"sync"
	"time"

	"github.com/google/uuid"

	"adspot/model"
)

type Store struct {
	mu sync.Mutex

	rentals  map[int64]*model.RentalRecord
	listings map[int64]*model.Listing
	auctions map[int64]*model.Auction
	balances map[string]int64
	fee      model.FeePolicy

	totalReceived  int64
	totalWithdrawn int64

	events []model.Event
}

func New(feeReceiver string, feeBps int64) *Store {
	return &Store{
		rentals:  map[int64]*model.RentalRecord{},
		listings: map[int64]*model.Listing{},
		auctions: map[int64]*model.Auction{},
		balances: map[string]int64{},
		fee:      model.FeePolicy{Receiver: feeReceiver, Bps: feeBps},
	}
}

// Lock acquires the operation guard. Unlock must run on all exit paths.
func (s *Store) Lock()   { s.mu.Lock() }
func (s *Store) Unlock() { s.mu.Unlock() }

// rentals

func (s *Store) Rental(assetID int64) *model.RentalRecord { return s.rentals[assetID] }

func (s *Store) PutRental(r *model.RentalRecord) { s.rentals[r.AssetID] = r }

func (s *Store) ClearRental(assetID int64) { delete(s.rentals, assetID) }

// listings

func (s *Store) Listing(assetID int64) *model.Listing { return s.listings[assetID] }

func (s *Store) PutListing(l *model.Listing) { s.listings[l.AssetID] = l }

func (s *Store) RemoveListing(assetID int64) { delete(s.listings, assetID) }

// auctions

func (s *Store) Auction(assetID int64) *model.Auction { return s.auctions[assetID] }

func (s *Store) PutAuction(a *model.Auction) { s.auctions[a.AssetID] = a }

// balances

func (s *Store) Balance(account string) int64 { return s.balances[account] }

// Credit adds to an account's withdrawable balance. Credits are the
// only way funds become claimable (pull payments, never push).
func (s *Store) Credit(account string, amount int64) {
	if amount == 0 {
		return
	}
	s.balances[account] += amount
}

// SetBalance overwrites a balance. Used by claim to zero before the
// external send and to restore on a failed send.
func (s *Store) SetBalance(account string, amount int64) {
	if amount == 0 {
		delete(s.balances, account)
		return
	}
	s.balances[account] = amount
}

func (s *Store) Fee() model.FeePolicy { return s.fee }

func (s *Store) SetFee(p model.FeePolicy) { s.fee = p }

// conservation counters

// RecordInflow tracks money entering the system (buy, bid, payRent).
func (s *Store) RecordInflow(amount int64) { s.totalReceived += amount }

// RecordOutflow tracks money leaving through successful claims.
func (s *Store) RecordOutflow(amount int64) { s.totalWithdrawn += amount }

func (s *Store) TotalReceived() int64  { return s.totalReceived }
func (s *Store) TotalWithdrawn() int64 { return s.totalWithdrawn }

// SumBalances is the total currently claimable across all accounts.
func (s *Store) SumBalances() int64 {
	var sum int64
	for _, b := range s.balances {
		sum += b
	}
	return sum
}

// HeldBids is the money locked in unsettled auctions (standing highest
// bids). received == balances + withdrawn + held at all times.
func (s *Store) HeldBids() int64 {
	var sum int64
	for _, a := range s.auctions {
		if !a.Settled {
			sum += a.HighestBid
		}
	}
	return sum
}

// event log

// Append commits an event to the canonical in-memory log, assigning it
// an id and timestamp, and returns the stored copy.
func (s *Store) Append(e model.Event, at time.Time) model.Event {
	e.ID = uuid.NewString()
	e.CreatedAt = at
	s.events = append(s.events, e)
	return e
}

// Events returns log entries, optionally filtered by asset (0 = all).
func (s *Store) Events(assetID int64) []model.Event {
	out := make([]model.Event, 0, len(s.events))
	for _, e := range s.events {
		if assetID != 0 && e.AssetID != assetID {
			continue
		}
		out = append(out, e)
	}
	return out
}

// EventsFor returns log entries where the account is either side.
func (s *Store) EventsFor(account string) []model.Event {
	var out []model.Event
	for _, e := range s.events {
		if e.Actor == account || e.Counterparty == account {
			out = append(out, e)
		}
	}
	return out
}
