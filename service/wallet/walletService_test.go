package wallet_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	eventrepo "adspot/repository/event"
	payoutrepo "adspot/repository/payout"
	registryrepo "adspot/repository/registry"
	auctionsvc "adspot/service/auction"
	"adspot/service/fault"
	marketsvc "adspot/service/market"
	rentalsvc "adspot/service/rental"
	walletsvc "adspot/service/wallet"
	"adspot/store"
)

const (
	sellerA  = "0xseller"
	buyerB   = "0xbuyer"
	feeRecv  = "0xfee"
	adminAcc = "0xadmin"
	operator = "0xmarket"
)

func credit(st *store.Store, account string, amount int64) {
	st.Lock()
	defer st.Unlock()
	st.RecordInflow(amount)
	st.Credit(account, amount)
}

func TestClaim_NothingToClaim(t *testing.T) {
	st := store.New(feeRecv, 250)
	s := walletsvc.New(st, payoutrepo.NewMemory(), eventrepo.Nop{}, adminAcc)

	_, err := s.Claim(context.Background(), buyerB)
	require.Equal(t, fault.ErrNothingToClaim, fault.Code(err))
}

func TestClaim_PaysOutAndZeroes(t *testing.T) {
	st := store.New(feeRecv, 250)
	pay := payoutrepo.NewMemory()
	s := walletsvc.New(st, pay, eventrepo.Nop{}, adminAcc)
	credit(st, buyerB, 1234)

	// the balance must already be zero while the external send runs
	pay.OnSend = func(account string, amount int64) {
		assert.Zero(t, st.Balance(account), "balance must be zeroed before the send")
	}

	amount, err := s.Claim(context.Background(), buyerB)
	require.NoError(t, err)
	assert.Equal(t, int64(1234), amount)
	assert.Zero(t, st.Balance(buyerB))
	require.Len(t, pay.History, 1)
	assert.Equal(t, payoutrepo.Sent{Account: buyerB, Amount: 1234}, pay.History[0])
	assert.Equal(t, int64(1234), st.TotalWithdrawn())

	// nothing left: a second claim fails cleanly
	_, err = s.Claim(context.Background(), buyerB)
	assert.Equal(t, fault.ErrNothingToClaim, fault.Code(err))
}

func TestClaim_RestoresBalanceOnFailedSend(t *testing.T) {
	st := store.New(feeRecv, 250)
	pay := payoutrepo.NewMemory()
	s := walletsvc.New(st, pay, eventrepo.Nop{}, adminAcc)
	credit(st, buyerB, 500)

	pay.FailNext = errors.New("payout provider down")
	_, err := s.Claim(context.Background(), buyerB)
	require.Equal(t, fault.ErrTransferFailed, fault.Code(err))
	assert.Equal(t, int64(500), st.Balance(buyerB), "failed claim must restore the balance")
	assert.Zero(t, st.TotalWithdrawn())

	// retry succeeds
	amount, err := s.Claim(context.Background(), buyerB)
	require.NoError(t, err)
	assert.Equal(t, int64(500), amount)
}

func TestSetFeePolicy(t *testing.T) {
	st := store.New(feeRecv, 250)
	s := walletsvc.New(st, payoutrepo.NewMemory(), eventrepo.Nop{}, adminAcc)
	ctx := context.Background()

	err := s.SetFeePolicy(ctx, buyerB, feeRecv, 100)
	assert.Equal(t, fault.ErrNotAuthorized, fault.Code(err))

	err = s.SetFeePolicy(ctx, adminAcc, feeRecv, 2001)
	assert.Equal(t, fault.ErrInvalidParams, fault.Code(err))

	require.NoError(t, s.SetFeePolicy(ctx, adminAcc, "0xnewfee", 2000))
	p, err := s.FeePolicy(ctx)
	require.NoError(t, err)
	assert.Equal(t, "0xnewfee", p.Receiver)
	assert.Equal(t, int64(2000), p.Bps)
}

// Money conservation across the whole marketplace: everything received
// through buy, bid and payRent equals balances still claimable, plus
// withdrawn claims, plus bids held in unsettled auctions.
func TestMoneyConservation(t *testing.T) {
	st := store.New(feeRecv, 250)
	reg := registryrepo.NewMemory()
	pay := payoutrepo.NewMemory()

	rentals := rentalsvc.New(st, reg, eventrepo.Nop{}, adminAcc)
	listings := marketsvc.New(st, reg, eventrepo.Nop{}, operator)
	auctions := auctionsvc.New(st, reg, eventrepo.Nop{}, operator)
	wallets := walletsvc.New(st, pay, eventrepo.Nop{}, adminAcc)

	ctx := context.Background()
	reg.Mint(1, sellerA)
	reg.Mint(2, sellerA)
	reg.Approve(sellerA, operator)

	check := func() {
		t.Helper()
		assert.Equal(t, st.TotalReceived(),
			st.SumBalances()+st.TotalWithdrawn()+st.HeldBids(),
			"conservation must hold after every operation")
	}

	// fixed-price sale
	require.NoError(t, listings.List(ctx, sellerA, 1, 10000))
	require.NoError(t, listings.Buy(ctx, buyerB, 1, 10000))
	check()

	// rent forwarding
	require.NoError(t, rentals.PayRent(ctx, buyerB, 2, 3333))
	check()

	// auction with an outbid refund, then settlement
	start := time.Now().Add(-time.Minute)
	end := time.Now().Add(50 * time.Millisecond)
	require.NoError(t, auctions.Create(ctx, sellerA, 2, start, end, 100))
	require.NoError(t, auctions.Bid(ctx, buyerB, 2, 100))
	require.NoError(t, auctions.Bid(ctx, "0xother", 2, 200))
	check()

	time.Sleep(60 * time.Millisecond)
	require.NoError(t, auctions.Settle(ctx, 2))
	check()

	// drain every balance through claims
	for _, account := range []string{sellerA, buyerB, "0xother", feeRecv} {
		if st.Balance(account) > 0 {
			_, err := wallets.Claim(ctx, account)
			require.NoError(t, err)
			check()
		}
	}

	assert.Zero(t, st.SumBalances())
	assert.Equal(t, st.TotalReceived(), st.TotalWithdrawn()+st.HeldBids())
}
