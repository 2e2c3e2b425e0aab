package stage

import "testing"

func TestComputeCategoryTag(t *testing.T) {
	tests := []struct {
		name          string
		precision     int
		confidence    int
		nspPct        int
		basesFragiles bool
		want          Tag
	}{
		{"fragile overrides high precision", 90, 80, 0, true, TagBasesFragiles},
		{"fragile overrides discovery", 0, 10, 90, true, TagBasesFragiles},
		{"mostly unanswered", 100, 30, 70, false, TagADecouvrir},
		{"nsp at boundary stays out of discovery", 30, 40, 60, false, TagConfusions},
		{"low precision", 20, 80, 10, false, TagConfusions},
		{"confusions boundary", 35, 80, 0, false, TagConfusions},
		{"just above confusions", 36, 80, 0, false, TagIntermediaire},
		{"mastered", 85, 70, 5, false, TagMaitrise},
		{"mastery boundary", 80, 60, 0, false, TagMaitrise},
		{"precise but hesitant", 90, 55, 30, false, TagIntermediaire},
		{"middling profile", 60, 70, 10, false, TagIntermediaire},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ComputeCategoryTag(tt.precision, tt.confidence, tt.nspPct, tt.basesFragiles)
			if got != tt.want {
				t.Errorf("ComputeCategoryTag(%d, %d, %d, %v) = %q, want %q",
					tt.precision, tt.confidence, tt.nspPct, tt.basesFragiles, got, tt.want)
			}
		})
	}
}
