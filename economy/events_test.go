package economy

import (
	"errors"
	"testing"

	"nilk-backend/models"
)

func parseValid(t *testing.T, body string) Event {
	t.Helper()
	ev, err := ParseEvent([]byte(body))
	if err != nil {
		t.Fatalf("expected valid payload, got %v", err)
	}
	return ev
}

func parseInvalid(t *testing.T, body string) *ValidationError {
	t.Helper()
	_, err := ParseEvent([]byte(body))
	var vErr *ValidationError
	if !errors.As(err, &vErr) {
		t.Fatalf("expected *ValidationError, got %v", err)
	}
	return vErr
}

func TestParseEventProcessNilk(t *testing.T) {
	ev := parseValid(t, `{"eventType":"PROCESS_NILK","userId":"ignored","data":{"amount":250,"description":"note"}}`)
	pn, ok := ev.(ProcessNilk)
	if !ok {
		t.Fatalf("expected ProcessNilk, got %T", ev)
	}
	if pn.Amount != 250 || pn.Description != "note" {
		t.Fatalf("unexpected fields: %+v", pn)
	}
}

func TestParseEventPerformFusion(t *testing.T) {
	ev := parseValid(t, `{"eventType":"PERFORM_FUSION","data":{"outputTier":"galactic_moo_moo"}}`)
	pf, ok := ev.(PerformFusion)
	if !ok {
		t.Fatalf("expected PerformFusion, got %T", ev)
	}
	if pf.OutputTier != TierGalacticMooMoo {
		t.Fatalf("unexpected tier: %v", pf.OutputTier)
	}
}

func TestParseEventCraftAndActivateFlask(t *testing.T) {
	ev := parseValid(t, `{"eventType":"CRAFT_FLASK","data":{"flaskType":"CHRONO_CONDENSATE"}}`)
	if cf, ok := ev.(CraftFlask); !ok || cf.FlaskType != models.FlaskChronoCondensate {
		t.Fatalf("unexpected event: %#v", ev)
	}

	ev = parseValid(t, `{"eventType":"ACTIVATE_FLASK","data":{"flaskType":"YIELD_BOOST"}}`)
	if af, ok := ev.(ActivateFlask); !ok || af.FlaskType != models.FlaskYieldBoost {
		t.Fatalf("unexpected event: %#v", ev)
	}
}

func TestParseEventEarnHype(t *testing.T) {
	ev := parseValid(t, `{"eventType":"EARN_HYPE","data":{"amount":10}}`)
	if eh, ok := ev.(EarnHype); !ok || eh.Amount != 10 {
		t.Fatalf("unexpected event: %#v", ev)
	}
}

func TestParseEventRejections(t *testing.T) {
	cases := []struct {
		name  string
		body  string
		field string
	}{
		{"malformed json", `{`, "body"},
		{"missing event type", `{"data":{}}`, "eventType"},
		{"unknown event type", `{"eventType":"STEAL_COWS","data":{}}`, "eventType"},
		{"missing data", `{"eventType":"PROCESS_NILK"}`, "data"},
		{"zero amount", `{"eventType":"PROCESS_NILK","data":{"amount":0}}`, "data.amount"},
		{"negative amount", `{"eventType":"EARN_HYPE","data":{"amount":-5}}`, "data.amount"},
		{"unknown tier", `{"eventType":"PERFORM_FUSION","data":{"outputTier":"mythic"}}`, "data.outputTier"},
		{"unknown flask", `{"eventType":"CRAFT_FLASK","data":{"flaskType":"MEGA_FLASK"}}`, "data.flaskType"},
		{"activate unknown flask", `{"eventType":"ACTIVATE_FLASK","data":{"flaskType":""}}`, "data.flaskType"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			vErr := parseInvalid(t, tc.body)
			if len(vErr.Issues) == 0 {
				t.Fatalf("expected issues")
			}
			found := false
			for _, is := range vErr.Issues {
				if is.Field == tc.field {
					found = true
				}
			}
			if !found {
				t.Fatalf("expected an issue on %q, got %+v", tc.field, vErr.Issues)
			}
		})
	}
}

func TestParseEventIgnoresBodyUserID(t *testing.T) {
	// The userId field is legacy; identity always comes from the session.
	ev := parseValid(t, `{"eventType":"EARN_HYPE","userId":"somebody-else","data":{"amount":1}}`)
	if _, ok := ev.(EarnHype); !ok {
		t.Fatalf("expected EarnHype, got %T", ev)
	}
}
