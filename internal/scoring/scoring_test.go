package scoring

import (
	"reflect"
	"testing"

	"github.com/cyranoaladin/nexus-scoring/internal/diagnostic"
)

func TestComputeV2_HealthyProfile(t *testing.T) {
	res := ComputeV2(healthyData(), DefaultPolicy())

	if res.MasteryIndex != 75 {
		t.Errorf("masteryIndex = %d, want 75", res.MasteryIndex)
	}
	if res.CoverageIndex != 100 {
		t.Errorf("coverageIndex = %d, want 100", res.CoverageIndex)
	}
	if res.ExamReadinessIndex != 82 {
		t.Errorf("examReadinessIndex = %d, want 82", res.ExamReadinessIndex)
	}
	if res.ReadinessScore != 81 {
		t.Errorf("readinessScore = %d, want 81", res.ReadinessScore)
	}
	if res.RiskIndex != 14 {
		t.Errorf("riskIndex = %d, want 14", res.RiskIndex)
	}
	if res.Recommendation != Pallier2Confirmed {
		t.Errorf("recommendation = %q, want confirmed", res.Recommendation)
	}
	if len(res.UpgradeConditions) != 0 {
		t.Errorf("confirmed profile has no upgrade conditions, got %v", res.UpgradeConditions)
	}
	if len(res.Alerts) != 0 {
		t.Errorf("healthy profile raised alerts: %v", alertCodes(res.Alerts))
	}
	if len(res.Inconsistencies) != 0 {
		t.Errorf("healthy profile flagged: %v", flagCodes(res.Inconsistencies))
	}
	if res.TrustScore != 100 || res.TrustLevel != TrustGreen {
		t.Errorf("trust = %d/%q, want 100/green", res.TrustScore, res.TrustLevel)
	}
	if res.DataQuality.Quality != QualityGood || !res.DataQuality.MiniTestFilled {
		t.Errorf("dataQuality = %+v", res.DataQuality)
	}
	if res.CoverageProgramme != nil {
		t.Error("no chapter registry means no coverageProgramme block")
	}
	if len(res.DomainScores) != 5 {
		t.Errorf("domainScores length = %d, want 5", len(res.DomainScores))
	}
}

func TestComputeV2_WeakProfile(t *testing.T) {
	res := ComputeV2(weakData(), DefaultPolicy())

	if res.MasteryIndex != 25 {
		t.Errorf("masteryIndex = %d, want 25", res.MasteryIndex)
	}
	if res.ExamReadinessIndex != 21 {
		t.Errorf("examReadinessIndex = %d, want 21", res.ExamReadinessIndex)
	}
	if res.ReadinessScore != 35 {
		t.Errorf("readinessScore = %d, want 35", res.ReadinessScore)
	}
	if res.RiskIndex != 82 {
		t.Errorf("riskIndex = %d, want 82", res.RiskIndex)
	}
	if res.Recommendation != Pallier1Recommended {
		t.Errorf("recommendation = %q, want Pallier1", res.Recommendation)
	}
	if len(res.UpgradeConditions) == 0 {
		t.Error("Pallier1 decision must carry upgrade conditions")
	}

	want := []string{"HIGH_STRESS", "WEAK_AUTOMATISMS", "PANIC_SIGNAL"}
	if got := alertCodes(res.Alerts); !reflect.DeepEqual(got, want) {
		t.Errorf("alerts = %v, want %v", got, want)
	}
	// Weak but coherent: no contradiction between declared and proven level.
	if len(res.Inconsistencies) != 0 {
		t.Errorf("coherent weak profile flagged: %v", flagCodes(res.Inconsistencies))
	}

	for _, ds := range res.DomainScores {
		if ds.Score != 25 || ds.Priority != PriorityCritical {
			t.Errorf("domain %s = %d/%q, want 25/critical", ds.Domain, ds.Score, ds.Priority)
		}
	}
}

func TestComputeV2_EmptyPayloadDegrades(t *testing.T) {
	data := &diagnostic.Data{Competencies: map[string][]diagnostic.CompetencyRecord{}}
	res := ComputeV2(data, DefaultPolicy())

	if res.MasteryIndex != 0 || res.CoverageIndex != 0 {
		t.Errorf("indices = %d/%d, want 0/0", res.MasteryIndex, res.CoverageIndex)
	}
	if res.Recommendation != Pallier1Recommended {
		t.Errorf("recommendation = %q, want Pallier1", res.Recommendation)
	}
	if res.DomainScores == nil || res.Alerts == nil ||
		res.TopPriorities == nil || res.QuickWins == nil ||
		res.HighRisk == nil || res.Inconsistencies == nil {
		t.Error("result lists must be empty slices, never nil")
	}
	if len(res.DomainScores) != 5 {
		t.Errorf("every registry domain gets a score entry, got %d", len(res.DomainScores))
	}
	if res.DataQuality.Quality != QualityInsufficient || !res.DataQuality.LowConfidence {
		t.Errorf("dataQuality = %+v", res.DataQuality)
	}
	if res.TrustLevel == TrustGreen {
		t.Errorf("empty payload must not be trusted green, trust = %d", res.TrustScore)
	}
}

func TestComputeV2_InconsistenciesEchoedAsAlerts(t *testing.T) {
	data := healthyData()
	data.Competencies["algebra"][0].Mastery = nil
	data.Competencies["algebra"][1].Mastery = nil

	res := ComputeV2(data, DefaultPolicy())

	var echo *Alert
	for i := range res.Alerts {
		if res.Alerts[i].Code == "STUDIED_NO_MASTERY" {
			echo = &res.Alerts[i]
		}
	}
	if echo == nil {
		t.Fatal("error inconsistency should be echoed into the alert list")
	}
	if echo.Type != AlertDanger {
		t.Errorf("error severity echoes as danger, got %q", echo.Type)
	}
	if res.DataQuality.CoherenceIssues != 1 {
		t.Errorf("coherenceIssues = %d, want 1", res.DataQuality.CoherenceIssues)
	}
}

func TestComputeV2_CoverageProgramme(t *testing.T) {
	data := healthyData()
	data.Chapters = &diagnostic.ChapterSelection{
		Selected:   []string{"ch-suites", "ch-deriv"},
		InProgress: []string{"ch-proba", "ch-inexistant"},
	}

	res := ComputeV2(data, coveragePolicy())

	cov := res.CoverageProgramme
	if cov == nil {
		t.Fatal("chapter registry + selection should produce coverageProgramme")
	}
	if cov.TotalChapters != 4 || cov.SeenChapters != 2 || cov.InProgressChapters != 1 {
		t.Errorf("chapters = %d/%d/%d, want 4/2/1 (unknown IDs ignored)",
			cov.TotalChapters, cov.SeenChapters, cov.InProgressChapters)
	}
	if cov.SeenChapterRatio != 0.75 {
		t.Errorf("seenChapterRatio = %v, want 0.75", cov.SeenChapterRatio)
	}
	if cov.EvaluatedSkillRatio != 1.0 {
		t.Errorf("evaluatedSkillRatio = %v, want 1.0", cov.EvaluatedSkillRatio)
	}
}

func TestComputeV2_Deterministic(t *testing.T) {
	data := healthyData()
	data.Competencies["geometry"][1].Friction = intp(2)
	data.Chapters = &diagnostic.ChapterSelection{Selected: []string{"ch-suites"}}
	policy := coveragePolicy()

	first := ComputeV2(data, policy)
	second := ComputeV2(data, policy)
	if !reflect.DeepEqual(first, second) {
		t.Error("identical input must produce an identical result")
	}
}
