package market

import (
	"context"
	"errors"
	"testing"

	eventrepo "adspot/repository/event"
	registryrepo "adspot/repository/registry"
	"adspot/service/fault"
	"adspot/store"
)

const (
	sellerA  = "0xseller"
	buyerB   = "0xbuyer"
	feeRecv  = "0xfee"
	operator = "0xmarket"
)

func newTestService(feeBps int64) (Service, *store.Store, *registryrepo.Memory) {
	st := store.New(feeRecv, feeBps)
	reg := registryrepo.NewMemory()
	return New(st, reg, eventrepo.Nop{}, operator), st, reg
}

func TestList_Validation(t *testing.T) {
	s, _, reg := newTestService(250)
	ctx := context.Background()
	reg.Mint(1, sellerA)

	if err := s.List(ctx, sellerA, 1, 0); fault.Code(err) != fault.ErrInvalidParams {
		t.Fatalf("zero price: got %v; want InvalidParams", err)
	}
	if err := s.List(ctx, buyerB, 1, 100); fault.Code(err) != fault.ErrNotSeller {
		t.Fatalf("non-owner: got %v; want NotSeller", err)
	}
	if err := s.List(ctx, sellerA, 1, 100); fault.Code(err) != fault.ErrNotApproved {
		t.Fatalf("unapproved: got %v; want NotApproved", err)
	}

	reg.Approve(sellerA, operator)
	if err := s.List(ctx, sellerA, 1, 100); err != nil {
		t.Fatalf("list: %v", err)
	}
}

func TestList_ReplacesPrior(t *testing.T) {
	s, st, reg := newTestService(250)
	ctx := context.Background()
	reg.Mint(1, sellerA)
	reg.Approve(sellerA, operator)

	if err := s.List(ctx, sellerA, 1, 100); err != nil {
		t.Fatal(err)
	}
	if err := s.List(ctx, sellerA, 1, 250); err != nil {
		t.Fatal(err)
	}
	if got := st.Listing(1).Price; got != 250 {
		t.Fatalf("price = %d; want 250", got)
	}
}

func TestUnlist(t *testing.T) {
	s, st, reg := newTestService(250)
	ctx := context.Background()
	reg.Mint(1, sellerA)
	reg.Approve(sellerA, operator)

	if err := s.Unlist(ctx, sellerA, 1); fault.Code(err) != fault.ErrNotFound {
		t.Fatalf("unlisted asset: got %v; want NotFound", err)
	}

	if err := s.List(ctx, sellerA, 1, 100); err != nil {
		t.Fatal(err)
	}
	if err := s.Unlist(ctx, buyerB, 1); fault.Code(err) != fault.ErrNotSeller {
		t.Fatalf("stranger unlist: got %v; want NotSeller", err)
	}
	if err := s.Unlist(ctx, sellerA, 1); err != nil {
		t.Fatal(err)
	}
	if st.Listing(1) != nil {
		t.Fatal("listing should be gone")
	}
}

func TestBuy_Validation(t *testing.T) {
	s, _, reg := newTestService(250)
	ctx := context.Background()
	reg.Mint(1, sellerA)
	reg.Approve(sellerA, operator)

	if err := s.Buy(ctx, buyerB, 1, 100); fault.Code(err) != fault.ErrInvalidParams {
		t.Fatalf("not listed: got %v; want InvalidParams", err)
	}
	if err := s.List(ctx, sellerA, 1, 100); err != nil {
		t.Fatal(err)
	}
	if err := s.Buy(ctx, buyerB, 1, 99); fault.Code(err) != fault.ErrInvalidParams {
		t.Fatalf("underpay: got %v; want InvalidParams", err)
	}
}

func TestBuy_SplitsFeeAndTransfers(t *testing.T) {
	s, st, reg := newTestService(250)
	ctx := context.Background()
	reg.Mint(1, sellerA)
	reg.Approve(sellerA, operator)

	if err := s.List(ctx, sellerA, 1, 10000); err != nil {
		t.Fatal(err)
	}
	if err := s.Buy(ctx, buyerB, 1, 10000); err != nil {
		t.Fatal(err)
	}

	// fee = floor(10000*250/10000) = 250, seller keeps 9750
	if got := st.Balance(feeRecv); got != 250 {
		t.Fatalf("fee balance = %d; want 250", got)
	}
	if got := st.Balance(sellerA); got != 9750 {
		t.Fatalf("seller balance = %d; want 9750", got)
	}
	if owner, _ := reg.OwnerOf(ctx, 1); owner != buyerB {
		t.Fatalf("owner = %s; want buyer", owner)
	}
	if st.Listing(1) != nil {
		t.Fatal("listing should be removed")
	}
}

func TestBuy_OverpaymentRetained(t *testing.T) {
	s, st, reg := newTestService(250)
	ctx := context.Background()
	reg.Mint(1, sellerA)
	reg.Approve(sellerA, operator)

	if err := s.List(ctx, sellerA, 1, 100); err != nil {
		t.Fatal(err)
	}
	// the full 150 is split, nothing refunded
	if err := s.Buy(ctx, buyerB, 1, 150); err != nil {
		t.Fatal(err)
	}
	fee := int64(150 * 250 / 10000)
	if got := st.Balance(sellerA); got != 150-fee {
		t.Fatalf("seller balance = %d; want %d", got, 150-fee)
	}
}

func TestBuy_TransferFailureRollsBack(t *testing.T) {
	s, st, reg := newTestService(250)
	ctx := context.Background()
	reg.Mint(1, sellerA)
	reg.Approve(sellerA, operator)

	if err := s.List(ctx, sellerA, 1, 10000); err != nil {
		t.Fatal(err)
	}
	reg.TransferErr = errors.New("registry down")

	if err := s.Buy(ctx, buyerB, 1, 10000); fault.Code(err) != fault.ErrTransferFailed {
		t.Fatalf("got %v; want TransferFailed", err)
	}
	if st.Balance(feeRecv) != 0 || st.Balance(sellerA) != 0 {
		t.Fatal("balances must be restored on failed transfer")
	}
	if st.Listing(1) == nil {
		t.Fatal("listing must be restored on failed transfer")
	}
	if st.TotalReceived() != 0 {
		t.Fatal("no inflow may be recorded on failed buy")
	}
}
