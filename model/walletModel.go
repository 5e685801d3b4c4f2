// model/wallet.go
package model

// FeePolicy is the protocol fee applied to every monetary flow.
// Bps is capped at 2000 (20%).
type FeePolicy struct {
	Receiver string `json:"receiver"`
	Bps      int64  `json:"bps"`
}

const MaxFeeBps = 2000

// Split applies the fee to a gross amount with integer truncation.
// fee + proceeds always equals amount exactly.
func (p FeePolicy) Split(amount int64) (fee, proceeds int64) {
	fee = amount * p.Bps / 10000
	return fee, amount - fee
}
