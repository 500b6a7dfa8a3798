package models

import (
	"time"

	"github.com/google/uuid"
)

// EventType tags an entry in the economic audit log
type EventType string

const (
	EventProcessNilk       EventType = "PROCESS_NILK"
	EventPerformFusion     EventType = "PERFORM_FUSION"
	EventCraftFlask        EventType = "CRAFT_FLASK"
	EventActivateFlask     EventType = "ACTIVATE_FLASK" // request kind only, never logged
	EventEarnHype          EventType = "EARN_HYPE"
	EventPassiveGeneration EventType = "PASSIVE_NILK_GENERATION"
)

// Currency names used in the audit log
const (
	CurrencyNilk    = "NILK"
	CurrencyRawNilk = "RAW_NILK"
	CurrencyHype    = "HYPE"
)

// EconomicEvent is one applied mutation in the append-only audit log
type EconomicEvent struct {
	ID            uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	WalletAddress string    `gorm:"index;not null" json:"wallet_address"`
	EventType     EventType `gorm:"not null" json:"event_type"`
	Amount        float64   `gorm:"not null" json:"amount"`
	Currency      string    `gorm:"not null" json:"currency"`
	Description   string    `gorm:"not null" json:"description"`
	CreatedAt     time.Time `json:"created_at"`
}
