package scoring

import (
	"strings"

	"github.com/cyranoaladin/nexus-scoring/internal/diagnostic"
)

// ComputeV2 runs the full competency-based scoring pipeline over one
// student's diagnostic payload. It is pure and total: it never fails on
// well-typed input, performs no I/O, and returns a bit-identical Result for
// identical input. Empty competency maps degrade to zero indices with empty
// (non-nil) lists.
func ComputeV2(data *diagnostic.Data, policy Policy) *Result {
	agg := aggregateDomains(data, &policy)
	dq := agg.dataQuality

	examReadiness := examReadinessIndex(&data.ExamPrep)
	risk := riskIndex(&data.ExamPrep)
	readiness := readinessScore(agg.masteryIndex, agg.coverageIndex, examReadiness)

	recommendation, message := decide(readiness, risk, policy.Thresholds)

	inconsistencies := detectInconsistencies(data, &policy)

	dq.CoherenceIssues = len(inconsistencies)
	dq.MiniTestFilled = data.ExamPrep.MiniTest.Score > 0
	dq.CriticalFieldsMissing = countCriticalMissing(data, dq)

	coverage := programmeCoverage(data, &policy)

	alerts := detectAlerts(data, dq, &policy)
	alerts = append(alerts, chapterAlerts(coverage, data, agg.domainScores, &policy)...)
	for _, inc := range inconsistencies {
		t := AlertWarning
		if inc.Severity == SeverityError {
			t = AlertDanger
		}
		alerts = append(alerts, Alert{
			Type:    t,
			Code:    inc.Code,
			Message: inc.Message,
			Impact:  "Champs concernés : " + strings.Join(inc.Fields, ", "),
		})
	}

	trust, trustLevel := trustScore(dq, inconsistencies, &data.ExamPrep)

	top, wins, risky := extractPriorities(data, agg.domainScores, &policy)

	justification, upgradeConditions := justify(
		recommendation,
		agg.masteryIndex, agg.coverageIndex, examReadiness, readiness, risk,
		policy.Thresholds,
	)

	return &Result{
		MasteryIndex:       agg.masteryIndex,
		CoverageIndex:      agg.coverageIndex,
		ExamReadinessIndex: examReadiness,
		ReadinessScore:     readiness,
		RiskIndex:          risk,

		Recommendation:        recommendation,
		RecommendationMessage: message,
		Justification:         justification,
		UpgradeConditions:     upgradeConditions,

		DomainScores: agg.domainScores,
		Alerts:       alerts,

		DataQuality: dq,
		TrustScore:  trust,
		TrustLevel:  trustLevel,

		TopPriorities: top,
		QuickWins:     wins,
		HighRisk:      risky,

		Inconsistencies: inconsistencies,

		CoverageProgramme: coverage,
	}
}

// countCriticalMissing counts the structural fields whose absence degrades
// the diagnostic: declared maths average, establishment, a usable evaluated
// base, and the in-time flag left unanswered.
func countCriticalMissing(data *diagnostic.Data, dq DataQuality) int {
	missing := 0
	if strings.TrimSpace(data.Performance.MathAverage) == "" {
		missing++
	}
	if strings.TrimSpace(data.SchoolContext.Establishment) == "" {
		missing++
	}
	if dq.EvaluatedCompetencies < 5 {
		missing++
	}
	if data.ExamPrep.MiniTest.CompletedInTime == nil {
		missing++
	}
	return missing
}
