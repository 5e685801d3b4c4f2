package rental

import (
	"context"
	"log/slog"
	"time"

	"adspot/model"
	eventrepo "adspot/repository/event"
	registryrepo "adspot/repository/registry"
	"adspot/service/fault"
	"adspot/store"
)

// dto

type Rented struct {
	AssetID int64     `json:"asset_id"`
	Renter  string    `json:"renter"`
	Start   time.Time `json:"start"`
	End     time.Time `json:"end"`
	Paid    int64     `json:"paid"`
}

type Service interface {
	// Rent grants time-sliced usage starting when the current rental
	// expires. Payment correctness is not checked here; money moves
	// through PayRent.
	Rent(ctx context.Context, caller string, assetID, durationSec, paid int64) (*Rented, error)

	// SetPrice sets the per-second rental price. Registry owner or
	// administrator only.
	SetPrice(ctx context.Context, caller string, assetID, pricePerSec int64) error

	// Current returns the active rental record, or ok=false once the
	// rental has expired or none exists.
	Current(ctx context.Context, assetID int64) (*model.RentalRecord, bool, error)

	// PayRent forwards a rent payment: fee to the fee receiver, the
	// rest to the asset's current registry owner. Deliberately not
	// tied to any Rent call or to duration*price.
	PayRent(ctx context.Context, payer string, assetID, payment int64) error

	// OnTransfer handles a registry ownership-transfer notification.
	// An expired rental is cleared; an active one rides out its term.
	OnTransfer(ctx context.Context, assetID int64) error
}

type service struct {
	st    *store.Store
	reg   registryrepo.Repo
	ev    eventrepo.Repo
	admin string
	now   func() time.Time
}

func New(st *store.Store, reg registryrepo.Repo, ev eventrepo.Repo, admin string) Service {
	return &service{st: st, reg: reg, ev: ev, admin: admin, now: time.Now}
}

func (s *service) emit(ctx context.Context, e model.Event, at time.Time) {
	e = s.st.Append(e, at)
	if err := s.ev.Insert(ctx, e); err != nil {
		slog.Warn("event insert failed", "type", string(e.Type), "err", err)
	}
}

func (s *service) Rent(ctx context.Context, caller string, assetID, durationSec, paid int64) (*Rented, error) {
	if durationSec <= 0 {
		return nil, fault.New(fault.ErrInvalidDuration)
	}
	if paid < 0 {
		return nil, fault.New(fault.ErrInvalidParams)
	}

	s.st.Lock()
	defer s.st.Unlock()

	now := s.now()
	rec := s.st.Rental(assetID)
	if rec == nil {
		rec = &model.RentalRecord{AssetID: assetID}
		s.st.PutRental(rec)
	}

	start := now
	if rec.ExpiresAt.After(start) {
		start = rec.ExpiresAt
	}
	end := start.Add(time.Duration(durationSec) * time.Second)

	rec.Renter = caller
	rec.ExpiresAt = end

	s.emit(ctx, model.Event{
		Type:    model.EventRented,
		AssetID: assetID,
		Actor:   caller,
		Amount:  paid,
		Start:   &start,
		End:     &end,
	}, now)

	return &Rented{AssetID: assetID, Renter: caller, Start: start, End: end, Paid: paid}, nil
}

func (s *service) SetPrice(ctx context.Context, caller string, assetID, pricePerSec int64) error {
	if pricePerSec < 0 {
		return fault.New(fault.ErrInvalidParams)
	}

	s.st.Lock()
	defer s.st.Unlock()

	if caller != s.admin {
		owner, err := s.reg.OwnerOf(ctx, assetID)
		if err != nil {
			return err
		}
		if caller != owner {
			return fault.New(fault.ErrNotAuthorized)
		}
	}

	rec := s.st.Rental(assetID)
	if rec == nil {
		rec = &model.RentalRecord{AssetID: assetID}
		s.st.PutRental(rec)
	}
	rec.PricePerSec = pricePerSec
	return nil
}

func (s *service) Current(_ context.Context, assetID int64) (*model.RentalRecord, bool, error) {
	s.st.Lock()
	defer s.st.Unlock()

	rec := s.st.Rental(assetID)
	if !rec.Active(s.now()) {
		return nil, false, nil
	}
	cp := *rec
	return &cp, true, nil
}

func (s *service) PayRent(ctx context.Context, payer string, assetID, payment int64) error {
	if payment <= 0 {
		return fault.New(fault.ErrInvalidParams)
	}

	s.st.Lock()
	defer s.st.Unlock()

	owner, err := s.reg.OwnerOf(ctx, assetID)
	if err != nil {
		return err
	}

	fee, proceeds := s.st.Fee().Split(payment)
	s.st.RecordInflow(payment)
	s.st.Credit(s.st.Fee().Receiver, fee)
	s.st.Credit(owner, proceeds)

	s.emit(ctx, model.Event{
		Type:         model.EventRentForwarded,
		AssetID:      assetID,
		Actor:        payer,
		Counterparty: owner,
		Amount:       payment,
		Fee:          fee,
	}, s.now())
	return nil
}

func (s *service) OnTransfer(ctx context.Context, assetID int64) error {
	s.st.Lock()
	defer s.st.Unlock()

	now := s.now()
	rec := s.st.Rental(assetID)
	if rec == nil {
		return nil
	}
	if rec.Active(now) {
		// Transfer does not evict an active renter.
		return nil
	}

	// Reset the expired slot; the price survives only as long as the
	// record has one to carry.
	if rec.PricePerSec != 0 {
		rec.Renter = ""
		rec.ExpiresAt = time.Time{}
	} else {
		s.st.ClearRental(assetID)
	}
	s.emit(ctx, model.Event{Type: model.EventRentalCleared, AssetID: assetID}, now)
	return nil
}
