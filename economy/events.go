package economy

import (
	"encoding/json"
	"fmt"
	"strings"

	"nilk-backend/models"
)

// Event is the closed union of mutations a client may request. The concrete
// types below are the only implementations; the Transition Engine switches
// over them exhaustively.
type Event interface {
	Type() models.EventType
}

// ProcessNilk converts Raw Nilk into $NILK
type ProcessNilk struct {
	Amount      float64
	Description string
}

func (ProcessNilk) Type() models.EventType { return models.EventProcessNilk }

// PerformFusion charges the $NILK fee for fusing cows into a higher tier
type PerformFusion struct {
	OutputTier  FusionTier
	Description string
}

func (PerformFusion) Type() models.EventType { return models.EventPerformFusion }

// CraftFlask spends Raw Nilk and $NILK to add a flask to the inventory
type CraftFlask struct {
	FlaskType   models.FlaskType
	Description string
}

func (CraftFlask) Type() models.EventType { return models.EventCraftFlask }

// ActivateFlask consumes an owned flask and starts its buff window
type ActivateFlask struct {
	FlaskType models.FlaskType
}

func (ActivateFlask) Type() models.EventType { return models.EventActivateFlask }

// EarnHype credits system-granted HYPE rewards
type EarnHype struct {
	Amount      float64
	Description string
}

func (EarnHype) Type() models.EventType { return models.EventEarnHype }

// Issue is one field-level validation violation
type Issue struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ValidationError carries every violation found in a request payload
type ValidationError struct {
	Issues []Issue
}

func (e *ValidationError) Error() string {
	parts := make([]string, 0, len(e.Issues))
	for _, is := range e.Issues {
		parts = append(parts, fmt.Sprintf("%s: %s", is.Field, is.Message))
	}
	return "invalid event payload: " + strings.Join(parts, "; ")
}

type envelope struct {
	EventType string          `json:"eventType"`
	UserID    string          `json:"userId"` // legacy field, never trusted for identity
	Data      json.RawMessage `json:"data"`
}

// ParseEvent validates an untyped request body into one Event variant.
// Anything that does not match the discriminated union is rejected with a
// *ValidationError listing every violation; no partial events are returned.
func ParseEvent(body []byte) (Event, error) {
	var env envelope
	if err := json.Unmarshal(body, &env); err != nil {
		return nil, &ValidationError{Issues: []Issue{{Field: "body", Message: "malformed JSON"}}}
	}
	if env.EventType == "" {
		return nil, &ValidationError{Issues: []Issue{{Field: "eventType", Message: "required"}}}
	}

	var issues []Issue
	data := func(dst interface{}) bool {
		if len(env.Data) == 0 {
			issues = append(issues, Issue{Field: "data", Message: "required"})
			return false
		}
		if err := json.Unmarshal(env.Data, dst); err != nil {
			issues = append(issues, Issue{Field: "data", Message: "malformed"})
			return false
		}
		return true
	}

	var ev Event
	switch models.EventType(env.EventType) {
	case models.EventProcessNilk:
		var d struct {
			Amount      float64 `json:"amount"`
			Description string  `json:"description"`
		}
		if data(&d) {
			if d.Amount <= 0 {
				issues = append(issues, Issue{Field: "data.amount", Message: "must be greater than zero"})
			} else {
				ev = ProcessNilk{Amount: d.Amount, Description: d.Description}
			}
		}
	case models.EventPerformFusion:
		var d struct {
			OutputTier  string `json:"outputTier"`
			Description string `json:"description"`
		}
		if data(&d) {
			if _, ok := FusionFees[FusionTier(d.OutputTier)]; !ok {
				issues = append(issues, Issue{Field: "data.outputTier", Message: "must be one of: cosmic, galactic_moo_moo"})
			} else {
				ev = PerformFusion{OutputTier: FusionTier(d.OutputTier), Description: d.Description}
			}
		}
	case models.EventCraftFlask:
		var d struct {
			FlaskType   string `json:"flaskType"`
			Description string `json:"description"`
		}
		if data(&d) {
			if !models.ValidFlaskType(d.FlaskType) {
				issues = append(issues, Issue{Field: "data.flaskType", Message: "unknown flask type"})
			} else {
				ev = CraftFlask{FlaskType: models.FlaskType(d.FlaskType), Description: d.Description}
			}
		}
	case models.EventActivateFlask:
		var d struct {
			FlaskType string `json:"flaskType"`
		}
		if data(&d) {
			if !models.ValidFlaskType(d.FlaskType) {
				issues = append(issues, Issue{Field: "data.flaskType", Message: "unknown flask type"})
			} else {
				ev = ActivateFlask{FlaskType: models.FlaskType(d.FlaskType)}
			}
		}
	case models.EventEarnHype:
		var d struct {
			Amount      float64 `json:"amount"`
			Description string  `json:"description"`
		}
		if data(&d) {
			if d.Amount <= 0 {
				issues = append(issues, Issue{Field: "data.amount", Message: "must be greater than zero"})
			} else {
				ev = EarnHype{Amount: d.Amount, Description: d.Description}
			}
		}
	default:
		issues = append(issues, Issue{Field: "eventType", Message: fmt.Sprintf("unknown event type %q", env.EventType)})
	}

	if len(issues) > 0 {
		return nil, &ValidationError{Issues: issues}
	}
	return ev, nil
}
