package scoring

import (
	"math"

	"github.com/cyranoaladin/nexus-scoring/internal/diagnostic"
)

// Exam-readiness component weights. Tunable constants: tests assert
// direction (monotonicity) rather than exact values, so these can be
// re-balanced without breaking the contract as long as each stays positive.
const (
	erWeightMiniTest    = 0.35
	erWeightTime        = 0.15
	erWeightAutomatisms = 0.15
	erWeightWriting     = 0.20
	erWeightStress      = 0.15
)

// Readiness-score blend over the three primary indices.
const (
	readinessWeightMastery  = 0.50
	readinessWeightCoverage = 0.15
	readinessWeightExam     = 0.35
)

// Risk blend: proof-based signals dominate declarative self-report.
const (
	riskWeightProof       = 0.60
	riskWeightDeclarative = 0.40
)

const miniTestMax = 6

// examReadinessIndex blends the mini-test result, the in-time flag, and the
// self-ratings into one 0-100 index. Raising stress strictly lowers the
// index; failing the time limit strictly lowers it versus an in-time run.
func examReadinessIndex(ep *diagnostic.ExamPrep) int {
	miniPct := float64(ep.MiniTest.Score) / miniTestMax * 100
	timePct := 40.0
	if boolValue(ep.MiniTest.CompletedInTime) {
		timePct = 100
	}
	sr := ep.SelfRatings
	autoPct := float64(sr.SpeedNoCalc+sr.CalcReliability) / 2 / 4 * 100
	writePct := float64(sr.Redaction+sr.Justifications) / 2 / 4 * 100
	stressPct := float64(4-sr.Stress) / 4 * 100

	readiness := erWeightMiniTest*miniPct +
		erWeightTime*timePct +
		erWeightAutomatisms*autoPct +
		erWeightWriting*writePct +
		erWeightStress*stressPct

	return clampRound(readiness)
}

// riskIndex blends a proof-based risk (mini-test evidence) with a
// declarative risk (stress and feeling). It is deliberately not the
// complement of exam readiness: a calm student with a weak mini-test and a
// panicked student with a strong one must land on different risk profiles.
func riskIndex(ep *diagnostic.ExamPrep) int {
	miniPct := float64(ep.MiniTest.Score) / miniTestMax * 100
	timePct := 40.0
	if boolValue(ep.MiniTest.CompletedInTime) {
		timePct = 100
	}
	verifiedPct := 50.0
	if boolValue(ep.Signals.VerifiedAnswers) {
		verifiedPct = 100
	}
	proof := 100 - (0.50*miniPct + 0.25*timePct + 0.25*verifiedPct)

	stressPct := float64(4-ep.SelfRatings.Stress) / 4 * 100
	declarative := 100 - (0.50*stressPct + 0.50*feelingScore(ep.Signals.Feeling))

	return clampRound(riskWeightProof*proof + riskWeightDeclarative*declarative)
}

// feelingScore maps the declared feeling to a 0-100 reassurance value.
func feelingScore(f diagnostic.Feeling) float64 {
	switch f {
	case diagnostic.FeelingPanic:
		return 0
	case diagnostic.FeelingOK:
		return 80
	default:
		return 50
	}
}

// readinessScore is the composite over the three primary indices.
func readinessScore(masteryIndex, coverageIndex, examReadiness int) int {
	return clampRound(readinessWeightMastery*float64(masteryIndex) +
		readinessWeightCoverage*float64(coverageIndex) +
		readinessWeightExam*float64(examReadiness))
}

// clampRound rounds to the nearest integer and clamps to [0,100].
func clampRound(v float64) int {
	r := int(math.Round(v))
	if r < 0 {
		return 0
	}
	if r > 100 {
		return 100
	}
	return r
}

// boolValue treats a nil flag as the unfavorable value.
func boolValue(b *bool) bool { return b != nil && *b }
