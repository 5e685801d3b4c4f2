package wallet

import (
	"context"
	"log/slog"
	"time"

	"adspot/model"
	eventrepo "adspot/repository/event"
	payoutrepo "adspot/repository/payout"
	"adspot/service/fault"
	"adspot/store"
)

type Service interface {
	Balance(ctx context.Context, account string) (int64, error)

	// Ledger lists log entries where the account is either side.
	Ledger(ctx context.Context, account string) ([]model.Event, error)

	// AssetEvents lists the observable log for one asset (0 = all).
	AssetEvents(ctx context.Context, assetID int64) ([]model.Event, error)

	// Claim withdraws the caller's full balance. The balance is zeroed
	// before the external send; a failed send restores it and the
	// whole claim fails.
	Claim(ctx context.Context, caller string) (int64, error)

	// SetFeePolicy is the administrative surface: receiver + bps,
	// capped at 2000.
	SetFeePolicy(ctx context.Context, caller, receiver string, bps int64) error

	FeePolicy(ctx context.Context) (model.FeePolicy, error)
}

type service struct {
	st    *store.Store
	pay   payoutrepo.Repo
	ev    eventrepo.Repo
	admin string
	now   func() time.Time
}

func New(st *store.Store, pay payoutrepo.Repo, ev eventrepo.Repo, admin string) Service {
	return &service{st: st, pay: pay, ev: ev, admin: admin, now: time.Now}
}

func (s *service) Balance(_ context.Context, account string) (int64, error) {
	s.st.Lock()
	defer s.st.Unlock()
	return s.st.Balance(account), nil
}

func (s *service) Ledger(_ context.Context, account string) ([]model.Event, error) {
	s.st.Lock()
	defer s.st.Unlock()
	return s.st.EventsFor(account), nil
}

func (s *service) AssetEvents(_ context.Context, assetID int64) ([]model.Event, error) {
	s.st.Lock()
	defer s.st.Unlock()
	return s.st.Events(assetID), nil
}

func (s *service) Claim(ctx context.Context, caller string) (int64, error) {
	s.st.Lock()
	defer s.st.Unlock()

	amount := s.st.Balance(caller)
	if amount == 0 {
		return 0, fault.New(fault.ErrNothingToClaim)
	}

	// Zero before the external send; a reentrant claim sees nothing.
	s.st.SetBalance(caller, 0)

	if err := s.pay.Send(ctx, caller, amount); err != nil {
		s.st.SetBalance(caller, amount)
		slog.Error("claim payout failed", "account", caller, "err", err)
		return 0, fault.New(fault.ErrTransferFailed)
	}

	s.st.RecordOutflow(amount)

	e := s.st.Append(model.Event{
		Type:   model.EventClaimed,
		Actor:  caller,
		Amount: amount,
	}, s.now())
	if err := s.ev.Insert(ctx, e); err != nil {
		slog.Warn("event insert failed", "type", string(e.Type), "err", err)
	}
	return amount, nil
}

func (s *service) SetFeePolicy(_ context.Context, caller, receiver string, bps int64) error {
	if caller != s.admin {
		return fault.New(fault.ErrNotAuthorized)
	}
	if receiver == "" || bps < 0 || bps > model.MaxFeeBps {
		return fault.New(fault.ErrInvalidParams)
	}

	s.st.Lock()
	defer s.st.Unlock()
	s.st.SetFee(model.FeePolicy{Receiver: receiver, Bps: bps})
	return nil
}

func (s *service) FeePolicy(_ context.Context) (model.FeePolicy, error) {
	s.st.Lock()
	defer s.st.Unlock()
	return s.st.Fee(), nil
}
