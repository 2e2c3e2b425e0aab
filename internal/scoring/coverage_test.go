package scoring

import (
	"testing"

	"github.com/cyranoaladin/nexus-scoring/internal/diagnostic"
)

func TestProgrammeCoverage_NoRegistryOrSelection(t *testing.T) {
	data := healthyData()

	noRegistry := DefaultPolicy()
	if cov := programmeCoverage(data, &noRegistry); cov != nil {
		t.Errorf("empty chapter registry should yield nil coverage, got %+v", cov)
	}

	withRegistry := coveragePolicy()
	if cov := programmeCoverage(data, &withRegistry); cov != nil {
		t.Errorf("missing selection should yield nil coverage, got %+v", cov)
	}
}

// The selection is a set union: a chapter listed in both lists, or twice in
// one list, counts exactly once, and the ratio never exceeds 1.
func TestProgrammeCoverage_OverlappingSelection(t *testing.T) {
	policy := coveragePolicy()

	tests := []struct {
		name           string
		selected       []string
		inProgress     []string
		wantSeen       int
		wantInProgress int
		wantRatio      float64
	}{
		{
			name:           "chapter in both lists counts as seen",
			selected:       []string{"ch-suites"},
			inProgress:     []string{"ch-suites", "ch-deriv"},
			wantSeen:       1,
			wantInProgress: 1,
			wantRatio:      0.5,
		},
		{
			name:           "duplicates within one list count once",
			selected:       []string{"ch-suites", "ch-suites"},
			inProgress:     []string{"ch-deriv", "ch-deriv"},
			wantSeen:       1,
			wantInProgress: 1,
			wantRatio:      0.5,
		},
		{
			name:           "full overlap caps the ratio at 1",
			selected:       []string{"ch-suites", "ch-deriv", "ch-proba", "ch-python"},
			inProgress:     []string{"ch-suites", "ch-deriv", "ch-proba", "ch-python"},
			wantSeen:       4,
			wantInProgress: 0,
			wantRatio:      1.0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			data := healthyData()
			data.Chapters = &diagnostic.ChapterSelection{
				Selected:   tt.selected,
				InProgress: tt.inProgress,
			}

			cov := programmeCoverage(data, &policy)
			if cov == nil {
				t.Fatal("coverage missing")
			}
			if cov.SeenChapters != tt.wantSeen || cov.InProgressChapters != tt.wantInProgress {
				t.Errorf("chapters = %d seen / %d in progress, want %d/%d",
					cov.SeenChapters, cov.InProgressChapters, tt.wantSeen, tt.wantInProgress)
			}
			if cov.SeenChapterRatio != tt.wantRatio {
				t.Errorf("seenChapterRatio = %v, want %v", cov.SeenChapterRatio, tt.wantRatio)
			}
			if cov.SeenChapterRatio > 1 {
				t.Errorf("seenChapterRatio = %v, must never exceed 1", cov.SeenChapterRatio)
			}
		})
	}
}

// A barely-covered programme must keep its PROGRAM_NOT_COVERED alert even
// when the same chapter appears in both lists.
func TestProgrammeCoverage_OverlapDoesNotSuppressAlert(t *testing.T) {
	policy := coveragePolicy()
	data := healthyData()
	data.Chapters = &diagnostic.ChapterSelection{
		Selected:   []string{"ch-suites"},
		InProgress: []string{"ch-suites"},
	}

	cov := programmeCoverage(data, &policy)
	if cov == nil {
		t.Fatal("coverage missing")
	}
	if cov.SeenChapterRatio != 0.25 {
		t.Fatalf("seenChapterRatio = %v, want 0.25 (1 of 4 chapters)", cov.SeenChapterRatio)
	}

	agg := aggregateDomains(data, &policy)
	alerts := chapterAlerts(cov, data, agg.domainScores, &policy)
	a := hasAlert(alerts, "PROGRAM_NOT_COVERED")
	if a == nil {
		t.Fatal("1/4 coverage should raise PROGRAM_NOT_COVERED")
	}
	if a.Message != "Programme peu couvert : 1 chapitre(s) vu(s) sur 4" {
		t.Errorf("message = %q", a.Message)
	}
}

func TestProgrammeCoverage_EvaluatedSkillRatio(t *testing.T) {
	policy := coveragePolicy()
	data := healthyData()
	// ch-suites covers algebra-1 and algebra-2; leave algebra-2 unevaluated.
	data.Competencies["algebra"][1].Status = diagnostic.StatusNotStudied
	data.Competencies["algebra"][1].Mastery = nil
	data.Chapters = &diagnostic.ChapterSelection{Selected: []string{"ch-suites"}}

	cov := programmeCoverage(data, &policy)
	if cov == nil {
		t.Fatal("coverage missing")
	}
	if cov.EvaluatedSkillRatio != 0.5 {
		t.Errorf("evaluatedSkillRatio = %v, want 0.5 (1 of 2 seen skills)", cov.EvaluatedSkillRatio)
	}
}
