// model/rental.go
package model

import "time"

// RentalRecord is the per-asset rental slot. A new rental starts at
// max(now, ExpiresAt), so back-to-back rentals queue by extending the
// expiry rather than through an explicit queue.
type RentalRecord struct {
	AssetID     int64     `json:"asset_id"`
	Renter      string    `json:"renter"`
	ExpiresAt   time.Time `json:"expires_at"`
	PricePerSec int64     `json:"price_per_sec"`
}

// Active reports whether the record still grants usage at t.
// The renter is absent once t is strictly past ExpiresAt.
func (r *RentalRecord) Active(t time.Time) bool {
	return r != nil && r.Renter != "" && !t.After(r.ExpiresAt)
}
