package economy

import (
	"fmt"
	"time"

	"nilk-backend/models"
)

// PassiveAccrual credits Raw Nilk generated while the player was away:
//
//	generated = elapsedSeconds × cowCount × (perCowDailyRate / 86400) × rate
//
// Elapsed time is clamped to zero, so a clock skewed backwards never debits.
// LastActiveAt always advances to now; the outcome is nil when nothing was
// generated, in which case no audit row should be written.
func PassiveAccrual(p *models.Profile, now time.Time, perCowDailyRate float64) *Outcome {
	var elapsed float64
	if !p.LastActiveAt.IsZero() {
		elapsed = now.Sub(p.LastActiveAt).Seconds()
		if elapsed < 0 {
			elapsed = 0
		}
	}

	generated := elapsed * float64(p.CowCount()) * (perCowDailyRate / secondsPerDay) * p.RawNilkGenerationRate
	p.LastActiveAt = now
	if generated <= 0 {
		return nil
	}

	p.RawNilkBalance += generated
	return &Outcome{
		EventType:   models.EventPassiveGeneration,
		Amount:      generated,
		Currency:    models.CurrencyRawNilk,
		Description: fmt.Sprintf("Generated %.2f Raw Nilk from %d cows over %.0fs offline", generated, p.CowCount(), elapsed),
		Audit:       true,
	}
}
