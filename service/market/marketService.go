package market

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

type Service interface {
	// List puts an asset up for fixed-price sale, replacing any prior
	// listing. The caller must be the registry owner and must have
	// approved the marketplace operator.
	List(ctx context.Context, caller string, assetID, price int64) error

	// Unlist removes the caller's own listing.
	Unlist(ctx context.Context, caller string, assetID int64) error

	// Buy settles a listed sale: fee split on the full payment
	// (overpayment is retained, not refunded), balance credits, then
	// the registry transfer. A failed transfer rolls everything back.
	Buy(ctx context.Context, caller string, assetID, payment int64) error

	Get(ctx context.Context, assetID int64) (*model.Listing, error)
}

type service struct {
	st       *store.Store
	reg      registryrepo.Repo
	ev       eventrepo.Repo
	operator string
	now      func() time.Time
}

func New(st *store.Store, reg registryrepo.Repo, ev eventrepo.Repo, operator string) Service {
	return &service{st: st, reg: reg, ev: ev, operator: operator, now: time.Now}
}

func (s *service) emit(ctx context.Context, e model.Event, at time.Time) {
	e = s.st.Append(e, at)
	if err := s.ev.Insert(ctx, e); err != nil {
		slog.Warn("event insert failed", "type", string(e.Type), "err", err)
	}
}

func (s *service) List(ctx context.Context, caller string, assetID, price int64) error {
	if price <= 0 {
		return fault.New(fault.ErrInvalidParams)
	}

	s.st.Lock()
	defer s.st.Unlock()

	owner, err := s.reg.OwnerOf(ctx, assetID)
	if err != nil {
		return err
	}
	if caller != owner {
		return fault.New(fault.ErrNotSeller)
	}
	approved, err := s.reg.IsApprovedOperator(ctx, owner, s.operator)
	if err != nil {
		return err
	}
	if !approved {
		return fault.New(fault.ErrNotApproved)
	}

	now := s.now()
	s.st.PutListing(&model.Listing{AssetID: assetID, Seller: caller, Price: price, ListedAt: now})
	s.emit(ctx, model.Event{
		Type:    model.EventListed,
		AssetID: assetID,
		Actor:   caller,
		Amount:  price,
	}, now)
	return nil
}

func (s *service) Unlist(ctx context.Context, caller string, assetID int64) error {
	s.st.Lock()
	defer s.st.Unlock()

	l := s.st.Listing(assetID)
	if l == nil {
		return fault.New(fault.ErrNotFound)
	}
	if l.Seller != caller {
		return fault.New(fault.ErrNotSeller)
	}

	s.st.RemoveListing(assetID)
	s.emit(ctx, model.Event{
		Type:    model.EventUnlisted,
		AssetID: assetID,
		Actor:   caller,
		Amount:  l.Price,
	}, s.now())
	return nil
}

func (s *service) Buy(ctx context.Context, caller string, assetID, payment int64) error {
	s.st.Lock()
	defer s.st.Unlock()

	l := s.st.Listing(assetID)
	if l == nil || payment < l.Price {
		return fault.New(fault.ErrInvalidParams)
	}

	policy := s.st.Fee()
	fee, proceeds := policy.Split(payment)

	// Effects first, external transfer after; undo on failure.
	prevFee := s.st.Balance(policy.Receiver)
	prevSeller := s.st.Balance(l.Seller)

	s.st.RemoveListing(assetID)
	s.st.Credit(policy.Receiver, fee)
	s.st.Credit(l.Seller, proceeds)

	if err := s.reg.Transfer(ctx, l.Seller, caller, assetID); err != nil {
		s.st.SetBalance(policy.Receiver, prevFee)
		s.st.SetBalance(l.Seller, prevSeller)
		s.st.PutListing(l)
		slog.Error("buy transfer failed", "asset_id", assetID, "err", err)
		return fault.New(fault.ErrTransferFailed)
	}

	s.st.RecordInflow(payment)
	s.emit(ctx, model.Event{
		Type:         model.EventBought,
		AssetID:      assetID,
		Actor:        caller,
		Counterparty: l.Seller,
		Amount:       payment,
		Fee:          fee,
	}, s.now())
	return nil
}

func (s *service) Get(_ context.Context, assetID int64) (*model.Listing, error) {
	s.st.Lock()
	defer s.st.Unlock()

	l := s.st.Listing(assetID)
	if l == nil {
		return nil, fault.New(fault.ErrNotFound)
	}
	cp := *l
	return &cp, nil
}
