package scoring

import "github.com/cyranoaladin/nexus-scoring/internal/diagnostic"

// Trust-score penalties. The score starts at 100 and only ever decreases:
// a profile with strictly more unknowns (all else equal) can never end up
// more trusted.
const (
	penaltyPerMissingDomain = 15
	penaltyPerUnknown       = 5
	penaltyUnknownCap       = 20
	penaltyPerErrorFlag     = 10
	penaltyPerWarningFlag   = 5
	penaltyOverTime         = 10
	penaltyFewEvaluated     = 15
	penaltyPerCriticalField = 8
	fewEvaluatedMin         = 8
	activeDomainsExpected   = 4
)

// Trust-level display bands.
const (
	trustGreenMin  = 70
	trustOrangeMin = 40
)

// trustScore rates how reliable the diagnostic itself is, from data
// completeness and coherence. Distinct from the student's academic scores.
func trustScore(dq DataQuality, inconsistencies []Inconsistency, ep *diagnostic.ExamPrep) (int, TrustLevel) {
	score := 100

	if missing := activeDomainsExpected - dq.ActiveDomains; missing > 0 {
		score -= missing * penaltyPerMissingDomain
	}

	unknownPenalty := dq.UnknownCompetencies * penaltyPerUnknown
	if unknownPenalty > penaltyUnknownCap {
		unknownPenalty = penaltyUnknownCap
	}
	score -= unknownPenalty

	for _, f := range inconsistencies {
		if f.Severity == SeverityError {
			score -= penaltyPerErrorFlag
		} else {
			score -= penaltyPerWarningFlag
		}
	}

	if !boolValue(ep.MiniTest.CompletedInTime) {
		score -= penaltyOverTime
	}
	if dq.EvaluatedCompetencies < fewEvaluatedMin {
		score -= penaltyFewEvaluated
	}
	score -= dq.CriticalFieldsMissing * penaltyPerCriticalField

	score = clampRound(float64(score))

	level := TrustRed
	switch {
	case score >= trustGreenMin:
		level = TrustGreen
	case score >= trustOrangeMin:
		level = TrustOrange
	}
	return score, level
}
