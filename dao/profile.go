package dao

import (
	"errors"
	"time"

	"nilk-backend/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// ErrProfileNotFound means no profile row exists for an authenticated wallet
var ErrProfileNotFound = errors.New("profile not found")

// ProfileDAO handles profile-related database operations
type ProfileDAO struct {
	db *gorm.DB
}

func NewProfileDAO(db *gorm.DB) *ProfileDAO {
	return &ProfileDAO{db: db}
}

// GetByWallet retrieves a profile by wallet address
func (d *ProfileDAO) GetByWallet(wallet string) (*models.Profile, error) {
	var p models.Profile
	if err := d.db.Where("wallet_address = ?", wallet).First(&p).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProfileNotFound
		}
		return nil, err
	}
	return &p, nil
}

// Create creates a profile with default balances and rates
func (d *ProfileDAO) Create(wallet string) (*models.Profile, error) {
	p := &models.Profile{
		WalletAddress:             wallet,
		Cows:                      []models.Cow{},
		FlaskInventory:            []models.FlaskType{},
		BaseRawNilkGenerationRate: 1,
		RawNilkGenerationRate:     1,
		LastActiveAt:              time.Now(),
	}
	if err := d.db.Create(p).Error; err != nil {
		return nil, err
	}
	return p, nil
}

// GetOrCreate returns the profile for a wallet, creating it on first login
func (d *ProfileDAO) GetOrCreate(wallet string) (*models.Profile, error) {
	p, err := d.GetByWallet(wallet)
	if errors.Is(err, ErrProfileNotFound) {
		return d.Create(wallet)
	}
	return p, err
}

// Mutate runs fn against the profile row under a row-level lock, then
// persists the mutated profile and the returned audit event in the same
// transaction. Either both are committed or neither is; two concurrent
// mutations of the same wallet serialize on the SELECT ... FOR UPDATE, so a
// sufficiency check inside fn can never race a concurrent spend.
func (d *ProfileDAO) Mutate(wallet string, fn func(p *models.Profile) (*models.EconomicEvent, error)) (*models.Profile, error) {
	var out *models.Profile
	err := d.db.Transaction(func(tx *gorm.DB) error {
		var p models.Profile
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			Where("wallet_address = ?", wallet).First(&p).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrProfileNotFound
			}
			return err
		}

		event, err := fn(&p)
		if err != nil {
			return err
		}
		if err := tx.Save(&p).Error; err != nil {
			return err
		}
		if event != nil {
			if err := tx.Create(event).Error; err != nil {
				return err
			}
		}
		out = &p
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// ExpireFlask clears a lapsed flask buff in a single conditional UPDATE,
// resetting the generation rate to its base column. Persisted independently
// of whatever event follows, so a failed event never resurrects an expired
// buff.
func (d *ProfileDAO) ExpireFlask(wallet string, now time.Time) error {
	return d.db.Model(&models.Profile{}).
		Where("wallet_address = ? AND active_flask IS NOT NULL AND active_flask_expires_at <= ?", wallet, now).
		Updates(map[string]interface{}{
			"active_flask":             nil,
			"active_flask_expires_at":  nil,
			"raw_nilk_generation_rate": gorm.Expr("base_raw_nilk_generation_rate"),
		}).Error
}

// UpdateCows replaces the cow inventory. This is the client-trusted sync
// path; it never touches balances.
func (d *ProfileDAO) UpdateCows(wallet string, cows []models.Cow) error {
	res := d.db.Model(&models.Profile{}).
		Where("wallet_address = ?", wallet).
		Update("cows", cows)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrProfileNotFound
	}
	return nil
}
