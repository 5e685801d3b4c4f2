package auction

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

// View is the auction record plus its time-derived lifecycle state.
type View struct {
	model.Auction
	State model.AuctionState `json:"state"`
}

type Service interface {
	// Create opens an ascending auction. Valid only when no unsettled
	// auction exists for the asset; seller/approval checks as in
	// listing.
	Create(ctx context.Context, caller string, assetID int64, start, end time.Time, minBid int64) error

	// Bid places a bid inside [start, end). The outbid bidder's money
	// is credited to their balance, never pushed back.
	Bid(ctx context.Context, caller string, assetID, amount int64) error

	// Settle finalizes an ended auction exactly once. With a winner it
	// splits the highest bid by the fee policy and transfers the
	// asset; with none it only marks the auction settled. Always an
	// explicit caller-triggered action, open to anyone once ended.
	Settle(ctx context.Context, assetID int64) error

	Get(ctx context.Context, assetID int64) (*View, error)
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

func (s *service) Create(ctx context.Context, caller string, assetID int64, start, end time.Time, minBid int64) error {
	s.st.Lock()
	defer s.st.Unlock()

	now := s.now()
	if !start.Before(end) || !end.After(now) || minBid <= 0 {
		return fault.New(fault.ErrInvalidParams)
	}
	if a := s.st.Auction(assetID); a != nil && !a.Settled {
		return fault.New(fault.ErrAuctionActive)
	}

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

	s.st.PutAuction(&model.Auction{
		AssetID:   assetID,
		Seller:    caller,
		StartTime: start,
		EndTime:   end,
		MinBid:    minBid,
		CreatedAt: now,
	})
	s.emit(ctx, model.Event{
		Type:    model.EventAuctionCreated,
		AssetID: assetID,
		Actor:   caller,
		Amount:  minBid,
		Start:   &start,
		End:     &end,
	}, now)
	return nil
}

func (s *service) Bid(ctx context.Context, caller string, assetID, amount int64) error {
	s.st.Lock()
	defer s.st.Unlock()

	now := s.now()
	a := s.st.Auction(assetID)
	if a == nil || a.Settled || now.Before(a.StartTime) {
		return fault.New(fault.ErrAuctionInactive)
	}
	if !now.Before(a.EndTime) {
		return fault.New(fault.ErrAuctionEnded)
	}
	if amount < a.MinNextBid() {
		return fault.New(fault.ErrBidTooLow)
	}

	s.st.RecordInflow(amount)
	outbid := a.HighestBidder
	if outbid != "" {
		s.st.Credit(outbid, a.HighestBid)
	}
	a.HighestBidder = caller
	a.HighestBid = amount

	s.emit(ctx, model.Event{
		Type:         model.EventBidPlaced,
		AssetID:      assetID,
		Actor:        caller,
		Counterparty: outbid,
		Amount:       amount,
	}, now)
	return nil
}

func (s *service) Settle(ctx context.Context, assetID int64) error {
	s.st.Lock()
	defer s.st.Unlock()

	now := s.now()
	a := s.st.Auction(assetID)
	if a == nil || a.Settled {
		return fault.New(fault.ErrAuctionInactive)
	}
	if now.Before(a.EndTime) {
		return fault.New(fault.ErrAuctionNotEnded)
	}

	if a.HighestBidder == "" {
		// No bids: asset stays with the seller.
		a.Settled = true
		s.emit(ctx, model.Event{
			Type:    model.EventSettled,
			AssetID: assetID,
			Actor:   a.Seller,
		}, now)
		return nil
	}

	policy := s.st.Fee()
	fee, proceeds := policy.Split(a.HighestBid)

	prevFee := s.st.Balance(policy.Receiver)
	prevSeller := s.st.Balance(a.Seller)

	s.st.Credit(policy.Receiver, fee)
	s.st.Credit(a.Seller, proceeds)

	if err := s.reg.Transfer(ctx, a.Seller, a.HighestBidder, assetID); err != nil {
		s.st.SetBalance(policy.Receiver, prevFee)
		s.st.SetBalance(a.Seller, prevSeller)
		slog.Error("settle transfer failed", "asset_id", assetID, "err", err)
		return fault.New(fault.ErrTransferFailed)
	}

	a.Settled = true
	s.emit(ctx, model.Event{
		Type:         model.EventSettled,
		AssetID:      assetID,
		Actor:        a.HighestBidder,
		Counterparty: a.Seller,
		Amount:       a.HighestBid,
		Fee:          fee,
	}, now)
	return nil
}

func (s *service) Get(_ context.Context, assetID int64) (*View, error) {
	s.st.Lock()
	defer s.st.Unlock()

	a := s.st.Auction(assetID)
	if a == nil {
		return nil, fault.New(fault.ErrNotFound)
	}
	return &View{Auction: *a, State: a.State(s.now())}, nil
}
