package payoutrepo

import "context"

// Repo delivers claimed funds to an account. Only the wallet service's
// claim path calls it, with the balance already zeroed; a failed send
// rolls the whole claim back.
type Repo interface {
	Send(ctx context.Context, account string, amount int64) error
}
