package payoutrepo

import (
	"context"
	"sync"
)

// Sent records one delivered payout.
type Sent struct {
	Account string
	Amount  int64
}

// Memory is a payout fake for tests and local runs. FailNext makes the
// next Send fail; OnSend, when set, observes the call before it lands.
type Memory struct {
	mu       sync.Mutex
	History  []Sent
	FailNext error
	OnSend   func(account string, amount int64)
}

func NewMemory() *Memory { return &Memory{} }

func (m *Memory) Send(_ context.Context, account string, amount int64) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.OnSend != nil {
		m.OnSend(account, amount)
	}
	if m.FailNext != nil {
		err := m.FailNext
		m.FailNext = nil
		return err
	}
	m.History = append(m.History, Sent{Account: account, Amount: amount})
	return nil
}
