package logic

import (
	"time"

	"nilk-backend/dao"
	"nilk-backend/economy"
	"nilk-backend/models"

	"github.com/google/uuid"
)

// EventLogic handles the event tracking path: expire, apply, log
type EventLogic struct {
	profileDAO *dao.ProfileDAO
	eventDAO   *dao.EconomicEventDAO
}

func NewEventLogic(
	profileDAO *dao.ProfileDAO,
	eventDAO *dao.EconomicEventDAO,
) *EventLogic {
	return &EventLogic{
		profileDAO: profileDAO,
		eventDAO:   eventDAO,
	}
}

// Track applies one validated event to the wallet's profile and logs it.
// Flask expiry is persisted up front so a failing event cannot roll back the
// cleanup; the event itself commits atomically with its audit row under a
// row lock on the profile.
func (l *EventLogic) Track(wallet string, ev economy.Event) (*models.Profile, *economy.Outcome, error) {
	now := time.Now()

	if err := l.profileDAO.ExpireFlask(wallet, now); err != nil {
		return nil, nil, err
	}

	var outcome *economy.Outcome
	p, err := l.profileDAO.Mutate(wallet, func(p *models.Profile) (*models.EconomicEvent, error) {
		// Re-check under the lock; the buff may have lapsed since the
		// cleanup pass.
		economy.ExpireFlask(p, now)

		o, err := economy.Apply(p, ev, now)
		if err != nil {
			return nil, err
		}
		outcome = o
		if !o.Audit {
			return nil, nil
		}
		return &models.EconomicEvent{
			ID:            uuid.New(),
			WalletAddress: wallet,
			EventType:     o.EventType,
			Amount:        o.Amount,
			Currency:      o.Currency,
			Description:   o.Description,
		}, nil
	})
	if err != nil {
		return nil, nil, err
	}
	return p, outcome, nil
}

// ListEvents retrieves the wallet's audit trail
func (l *EventLogic) ListEvents(wallet string, limit int) ([]models.EconomicEvent, error) {
	return l.eventDAO.ListByWallet(wallet, limit)
}
