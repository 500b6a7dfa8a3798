package models

import (
	"time"
)

// FlaskType identifies a craftable, single-use, time-limited buff consumable
type FlaskType string

const (
	FlaskYieldBoost       FlaskType = "YIELD_BOOST"
	FlaskFusionFlux       FlaskType = "FUSION_FLUX"
	FlaskChronoCondensate FlaskType = "CHRONO_CONDENSATE"
)

// ValidFlaskType reports whether s names a known flask
func ValidFlaskType(s string) bool {
	switch FlaskType(s) {
	case FlaskYieldBoost, FlaskFusionFlux, FlaskChronoCondensate:
		return true
	}
	return false
}

// Cow is one production unit in a profile's herd. The herd is maintained by
// the client-trusted inventory sync path; the server only reads its size for
// passive generation.
type Cow struct {
	ID         string    `json:"id"`
	Tier       string    `json:"tier"`
	AcquiredAt time.Time `json:"acquired_at"`
}

// Profile represents a wallet-authenticated player with resource balances
type Profile struct {
	ID                        uint64      `gorm:"primaryKey;autoIncrement" json:"id"`
	WalletAddress             string      `gorm:"uniqueIndex;not null" json:"wallet_address"` // base58 wallet pubkey
	NilkBalance               float64     `gorm:"not null;default:0" json:"nilk_balance"`
	RawNilkBalance            float64     `gorm:"not null;default:0" json:"raw_nilk_balance"`
	HypeBalance               float64     `gorm:"not null;default:0" json:"hype_balance"`
	Cows                      []Cow       `gorm:"serializer:json" json:"cows"`
	FlaskInventory            []FlaskType `gorm:"serializer:json" json:"flask_inventory"`
	ActiveFlask               *FlaskType  `json:"active_flask"`
	ActiveFlaskExpiresAt      *time.Time  `json:"active_flask_expires_at"`
	BaseRawNilkGenerationRate float64     `gorm:"not null;default:1" json:"base_raw_nilk_generation_rate"`
	RawNilkGenerationRate     float64     `gorm:"not null;default:1" json:"raw_nilk_generation_rate"` // base rate unless a chrono buff is active
	LastActiveAt              time.Time   `json:"last_active_at"`
	CreatedAt                 time.Time   `json:"created_at"`
	UpdatedAt                 time.Time   `json:"updated_at"`
}

// CowCount returns the herd size driving passive generation
func (p *Profile) CowCount() int {
	return len(p.Cows)
}

// OwnsFlask reports whether at least one unactivated flask of the given type
// is in the inventory
func (p *Profile) OwnsFlask(ft FlaskType) bool {
	for _, f := range p.FlaskInventory {
		if f == ft {
			return true
		}
	}
	return false
}

// RemoveFlask removes one instance of the given flask type from the
// inventory. It reports whether an instance was found.
func (p *Profile) RemoveFlask(ft FlaskType) bool {
	for i, f := range p.FlaskInventory {
		if f == ft {
			p.FlaskInventory = append(p.FlaskInventory[:i], p.FlaskInventory[i+1:]...)
			return true
		}
	}
	return false
}
