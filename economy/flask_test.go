package economy

import (
	"testing"
	"time"

	"nilk-backend/models"
)

func TestExpireFlaskNoActiveFlask(t *testing.T) {
	p := newProfile()
	if ExpireFlask(p, time.Now()) {
		t.Fatalf("expired a flask that was never active")
	}
}

func TestExpireFlaskStillRunning(t *testing.T) {
	now := time.Now()
	p := newProfile()
	activate(t, p, models.FlaskYieldBoost, now)

	if ExpireFlask(p, now.Add(30*time.Minute)) {
		t.Fatalf("expired a flask 30m into its 1h window")
	}
	if p.ActiveFlask == nil {
		t.Fatalf("active flask cleared early")
	}
}

func TestExpireChronoCondensateResetsRate(t *testing.T) {
	now := time.Now()
	p := newProfile()
	p.BaseRawNilkGenerationRate = 2
	p.RawNilkGenerationRate = 2
	activate(t, p, models.FlaskChronoCondensate, now)

	if !ExpireFlask(p, now.Add(time.Hour)) {
		t.Fatalf("flask at exactly its expiry must be expired")
	}
	if p.ActiveFlask != nil || p.ActiveFlaskExpiresAt != nil {
		t.Fatalf("active flask state not cleared")
	}
	if p.RawNilkGenerationRate != 2 {
		t.Fatalf("expected rate reset to base 2, got %v", p.RawNilkGenerationRate)
	}
}

func TestExpiredBoostDoesNotApplyToNextEvent(t *testing.T) {
	now := time.Now()
	p := newProfile()
	p.RawNilkBalance = 1000
	activate(t, p, models.FlaskYieldBoost, now)

	// The lifecycle pass runs before every event branch.
	later := now.Add(2 * time.Hour)
	ExpireFlask(p, later)
	out, err := Apply(p, ProcessNilk{Amount: 1000}, later)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out.Amount != 1000 {
		t.Fatalf("expired boost still applied: got %v, want 1000", out.Amount)
	}
}
