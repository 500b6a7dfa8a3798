package dao

import (
	"nilk-backend/models"

	"gorm.io/gorm"
)

// EconomicEventDAO handles the append-only audit log
type EconomicEventDAO struct {
	db *gorm.DB
}

func NewEconomicEventDAO(db *gorm.DB) *EconomicEventDAO {
	return &EconomicEventDAO{db: db}
}

func (d *EconomicEventDAO) Append(event *models.EconomicEvent) error {
	return d.db.Create(event).Error
}

// ListByWallet retrieves a wallet's audit trail, newest first
func (d *EconomicEventDAO) ListByWallet(wallet string, limit int) ([]models.EconomicEvent, error) {
	var events []models.EconomicEvent
	if err := d.db.Where("wallet_address = ?", wallet).
		Order("created_at DESC").
		Limit(limit).
		Find(&events).Error; err != nil {
		return nil, err
	}
	return events, nil
}
