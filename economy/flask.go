package economy

import (
	"time"

	"nilk-backend/models"
)

// ExpireFlask clears a lapsed flask buff from the snapshot, resetting the
// generation rate to its base. It runs before every event is applied and at
// login, so an expired buff never influences a later transition. Returns
// whether anything changed.
//
// Resetting the rate unconditionally is safe: outside a chrono buff the
// effective rate already equals the base rate.
func ExpireFlask(p *models.Profile, now time.Time) bool {
	if p.ActiveFlask == nil || p.ActiveFlaskExpiresAt == nil {
		return false
	}
	if p.ActiveFlaskExpiresAt.After(now) {
		return false
	}
	p.ActiveFlask = nil
	p.ActiveFlaskExpiresAt = nil
	p.RawNilkGenerationRate = p.BaseRawNilkGenerationRate
	return true
}
