package registryrepo

import (
	"context"
	"errors"
	"fmt"
	"sync"
)

// Memory is an in-process registry used by tests and local runs.
type Memory struct {
	mu        sync.Mutex
	owners    map[int64]string
	approvals map[string]map[string]bool

	// TransferErr, when set, makes every Transfer call fail.
	TransferErr error
}

func NewMemory() *Memory {
	return &Memory{
		owners:    map[int64]string{},
		approvals: map[string]map[string]bool{},
	}
}

func (m *Memory) Mint(assetID int64, owner string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.owners[assetID] = owner
}

func (m *Memory) Approve(owner, operator string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.approvals[owner] == nil {
		m.approvals[owner] = map[string]bool{}
	}
	m.approvals[owner][operator] = true
}

func (m *Memory) OwnerOf(_ context.Context, assetID int64) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	o, ok := m.owners[assetID]
	if !ok {
		return "", fmt.Errorf("asset %d not registered", assetID)
	}
	return o, nil
}

func (m *Memory) Transfer(_ context.Context, from, to string, assetID int64) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.TransferErr != nil {
		return m.TransferErr
	}
	if m.owners[assetID] != from {
		return errors.New("transfer from non-owner")
	}
	m.owners[assetID] = to
	return nil
}

func (m *Memory) IsApprovedOperator(_ context.Context, owner, operator string) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.approvals[owner][operator], nil
}
