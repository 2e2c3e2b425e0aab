package scoring

import (
	"strings"
	"testing"
)

func TestDecide(t *testing.T) {
	th := DefaultPolicy().Thresholds

	tests := []struct {
		name            string
		readiness, risk int
		want            Recommendation
	}{
		{"confirmed at exact gates", 60, 55, Pallier2Confirmed},
		{"strong profile", 81, 14, Pallier2Confirmed},
		{"readiness short of confirmed", 59, 20, Pallier2Conditional},
		{"risk above confirmed", 75, 56, Pallier2Conditional},
		{"conditional at exact gates", 48, 70, Pallier2Conditional},
		{"readiness below conditional", 47, 10, Pallier1Recommended},
		{"risk above conditional", 90, 71, Pallier1Recommended},
		{"weak profile", 35, 82, Pallier1Recommended},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec, msg := decide(tt.readiness, tt.risk, th)
			if rec != tt.want {
				t.Errorf("decide(%d, %d) = %q, want %q", tt.readiness, tt.risk, rec, tt.want)
			}
			if msg == "" {
				t.Error("decision message must not be empty")
			}
		})
	}
}

func TestJustify_Confirmed(t *testing.T) {
	th := DefaultPolicy().Thresholds

	msg, conditions := justify(Pallier2Confirmed, 75, 100, 82, 81, 14, th)
	if !strings.Contains(msg, "75%") || !strings.Contains(msg, "82%") {
		t.Errorf("justification should cite mastery and exam readiness: %q", msg)
	}
	if strings.Contains(msg, "couverture") {
		t.Errorf("no coverage warning expected at full coverage: %q", msg)
	}
	if len(conditions) != 0 {
		t.Errorf("confirmed decision carries no upgrade conditions, got %v", conditions)
	}

	msg, _ = justify(Pallier2Confirmed, 75, 55, 82, 81, 14, th)
	if !strings.Contains(msg, "couverture programme à 55%") {
		t.Errorf("low coverage should surface a planning warning: %q", msg)
	}
}

func TestJustify_ConditionalAlwaysHasUpgradeCondition(t *testing.T) {
	th := DefaultPolicy().Thresholds

	tests := []struct {
		name            string
		readiness, risk int
	}{
		{"misses readiness gate", 55, 30},
		{"misses risk gate", 70, 60},
		{"misses both gates", 50, 65},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			msg, conditions := justify(Pallier2Conditional, 50, 80, 50, tt.readiness, tt.risk, th)
			if len(conditions) == 0 {
				t.Fatal("conditional decision must carry at least one upgrade condition")
			}
			if msg == "" {
				t.Error("justification must not be empty")
			}
			for _, c := range conditions {
				if c == "" {
					t.Error("empty upgrade condition")
				}
			}
		})
	}
}

func TestJustify_Pallier1(t *testing.T) {
	th := DefaultPolicy().Thresholds

	// Low mastery and low exam readiness both produce targeted conditions.
	_, conditions := justify(Pallier1Recommended, 25, 100, 21, 35, 82, th)
	if len(conditions) != 2 {
		t.Fatalf("expected mastery and exam-readiness conditions, got %v", conditions)
	}
	if !strings.Contains(conditions[0], "MasteryIndex") {
		t.Errorf("first condition should target mastery: %q", conditions[0])
	}

	// A profile rejected on risk alone still gets a condition.
	_, conditions = justify(Pallier1Recommended, 80, 100, 75, 90, 85, th)
	if len(conditions) != 1 || !strings.Contains(conditions[0], "RiskIndex") {
		t.Errorf("risk-only rejection should yield a risk condition, got %v", conditions)
	}
}
