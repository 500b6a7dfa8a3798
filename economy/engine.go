package economy

import (
	"errors"
	"fmt"
	"math"
	"time"

	"nilk-backend/models"
)

var (
	// ErrInsufficientResource means a balance or inventory check failed
	ErrInsufficientResource = errors.New("insufficient resources")
	// ErrInvalidTier means an unknown fusion output tier
	ErrInvalidTier = errors.New("invalid fusion tier")
	// ErrFlaskNotOwned means the flask is not in the inventory
	ErrFlaskNotOwned = errors.New("flask not owned")
	// ErrFlaskAlreadyActive means another flask is still active
	ErrFlaskAlreadyActive = errors.New("a flask is already active")
)

// Outcome describes an applied transition for the audit log and the response
type Outcome struct {
	EventType   models.EventType
	Amount      float64
	Currency    string
	Description string
	// Audit is false for transitions that move no value and are not ledgered
	Audit bool
}

// Apply runs one event against the profile snapshot, mutating it in place and
// returning the audit outcome. Sufficiency is always checked against the
// snapshot, never against client-supplied balances. The caller persists the
// mutation and the audit row together.
func Apply(p *models.Profile, ev Event, now time.Time) (*Outcome, error) {
	switch e := ev.(type) {
	case ProcessNilk:
		return applyProcessNilk(p, e, now)
	case PerformFusion:
		return applyPerformFusion(p, e, now)
	case CraftFlask:
		return applyCraftFlask(p, e)
	case ActivateFlask:
		return applyActivateFlask(p, e, now)
	case EarnHype:
		return applyEarnHype(p, e)
	default:
		return nil, fmt.Errorf("unhandled event type %q", ev.Type())
	}
}

func applyProcessNilk(p *models.Profile, e ProcessNilk, now time.Time) (*Outcome, error) {
	if p.RawNilkBalance < e.Amount {
		return nil, fmt.Errorf("%w: need %.0f raw nilk, have %.0f", ErrInsufficientResource, e.Amount, p.RawNilkBalance)
	}

	output := e.Amount
	if flaskActive(p, models.FlaskYieldBoost, now) {
		output = math.Floor(e.Amount * (1 + YieldBoostBonus))
	}

	p.RawNilkBalance -= e.Amount
	p.NilkBalance += output

	desc := e.Description
	if desc == "" {
		desc = fmt.Sprintf("Processed %.0f Raw Nilk into %.0f $NILK", e.Amount, output)
	}
	return &Outcome{
		EventType:   models.EventProcessNilk,
		Amount:      output,
		Currency:    models.CurrencyNilk,
		Description: desc,
		Audit:       true,
	}, nil
}

func applyPerformFusion(p *models.Profile, e PerformFusion, now time.Time) (*Outcome, error) {
	fee, ok := FusionFees[e.OutputTier]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrInvalidTier, e.OutputTier)
	}
	if flaskActive(p, models.FlaskFusionFlux, now) {
		fee = math.Floor(fee * (1 - FusionFluxDiscount))
	}
	if p.NilkBalance < fee {
		return nil, fmt.Errorf("%w: fusion fee is %.0f $NILK, have %.0f", ErrInsufficientResource, fee, p.NilkBalance)
	}

	// Fee side only. The input cows are consumed by the client-trusted
	// inventory sync path, not by this transition.
	p.NilkBalance -= fee

	desc := e.Description
	if desc == "" {
		desc = fmt.Sprintf("Paid %.0f $NILK fusion fee for %s tier", fee, e.OutputTier)
	}
	return &Outcome{
		EventType:   models.EventPerformFusion,
		Amount:      -fee,
		Currency:    models.CurrencyNilk,
		Description: desc,
		Audit:       true,
	}, nil
}

func applyCraftFlask(p *models.Profile, e CraftFlask) (*Outcome, error) {
	cost, ok := FlaskCosts[e.FlaskType]
	if !ok {
		return nil, fmt.Errorf("no cost entry for flask %q", e.FlaskType)
	}
	if p.RawNilkBalance < cost.RawNilk {
		return nil, fmt.Errorf("%w: crafting needs %.0f raw nilk, have %.0f", ErrInsufficientResource, cost.RawNilk, p.RawNilkBalance)
	}
	if p.NilkBalance < cost.Nilk {
		return nil, fmt.Errorf("%w: crafting needs %.0f $NILK, have %.0f", ErrInsufficientResource, cost.Nilk, p.NilkBalance)
	}

	p.RawNilkBalance -= cost.RawNilk
	p.NilkBalance -= cost.Nilk
	p.FlaskInventory = append(p.FlaskInventory, e.FlaskType)

	desc := e.Description
	if desc == "" {
		desc = fmt.Sprintf("Crafted %s flask (%.0f raw nilk, %.0f $NILK)", e.FlaskType, cost.RawNilk, cost.Nilk)
	}
	return &Outcome{
		EventType:   models.EventCraftFlask,
		Amount:      -cost.Nilk,
		Currency:    models.CurrencyNilk,
		Description: desc,
		Audit:       true,
	}, nil
}

func applyActivateFlask(p *models.Profile, e ActivateFlask, now time.Time) (*Outcome, error) {
	if p.ActiveFlask != nil {
		return nil, fmt.Errorf("%w: %s until %s", ErrFlaskAlreadyActive, *p.ActiveFlask, p.ActiveFlaskExpiresAt.Format(time.RFC3339))
	}
	if !p.RemoveFlask(e.FlaskType) {
		return nil, fmt.Errorf("%w: %s", ErrFlaskNotOwned, e.FlaskType)
	}

	ft := e.FlaskType
	expires := now.Add(FlaskDuration)
	p.ActiveFlask = &ft
	p.ActiveFlaskExpiresAt = &expires
	if ft == models.FlaskChronoCondensate {
		p.RawNilkGenerationRate = p.BaseRawNilkGenerationRate * ChronoRateMultiplier
	}

	// Activation moves no value and is not ledgered; the audit enum has no
	// member for it.
	return &Outcome{
		EventType:   models.EventActivateFlask,
		Currency:    models.CurrencyNilk,
		Description: fmt.Sprintf("Activated %s flask until %s", ft, expires.Format(time.RFC3339)),
	}, nil
}

func applyEarnHype(p *models.Profile, e EarnHype) (*Outcome, error) {
	p.HypeBalance += e.Amount

	desc := e.Description
	if desc == "" {
		desc = fmt.Sprintf("Earned %.0f HYPE", e.Amount)
	}
	return &Outcome{
		EventType:   models.EventEarnHype,
		Amount:      e.Amount,
		Currency:    models.CurrencyHype,
		Description: desc,
		Audit:       true,
	}, nil
}

func flaskActive(p *models.Profile, ft models.FlaskType, now time.Time) bool {
	return p.ActiveFlask != nil && *p.ActiveFlask == ft &&
		p.ActiveFlaskExpiresAt != nil && p.ActiveFlaskExpiresAt.After(now)
}
