package scoring

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/cyranoaladin/nexus-scoring/internal/diagnostic"
)

// Inconsistency rule thresholds. A profile with no contradictory signals
// must produce an empty list; every rule requires two conflicting facts.
const (
	inconsistentSignalScoreMin = 5
	rushedTestMinutesMax       = 8
	rushedTestScoreMax         = 2
	studiedNoMasteryMin        = 2
	declaredAverageHighMin     = 14.0
	proofMasteryLowMax         = 40.0
)

// detectInconsistencies scans for contradictory field combinations.
func detectInconsistencies(data *diagnostic.Data, p *Policy) []Inconsistency {
	flags := []Inconsistency{}
	ep := &data.ExamPrep

	if ep.MiniTest.Score >= inconsistentSignalScoreMin && ep.Signals.Feeling == diagnostic.FeelingPanic {
		flags = append(flags, Inconsistency{
			Code:     "INCONSISTENT_SIGNAL",
			Message:  fmt.Sprintf("Mini-test excellent (%d/6) mais ressenti \"panic\" — incohérence à vérifier en séance", ep.MiniTest.Score),
			Fields:   []string{"examPrep.miniTest.score", "examPrep.signals.feeling"},
			Severity: SeverityWarning,
		})
	}

	if ep.MiniTest.TimeUsedMinutes > 0 && ep.MiniTest.TimeUsedMinutes <= rushedTestMinutesMax && ep.MiniTest.Score <= rushedTestScoreMax {
		flags = append(flags, Inconsistency{
			Code:     "RUSHED_TEST",
			Message:  fmt.Sprintf("Mini-test terminé très vite (%dmin) avec score faible (%d/6) — possibles réponses aléatoires", ep.MiniTest.TimeUsedMinutes, ep.MiniTest.Score),
			Fields:   []string{"examPrep.miniTest.timeUsedMinutes", "examPrep.miniTest.score"},
			Severity: SeverityWarning,
		})
	}

	var studiedNoMastery []string
	for _, dr := range data.AllCompetencies(p.DomainOrder) {
		if dr.Record.Status == diagnostic.StatusStudied && dr.Record.Mastery == nil {
			studiedNoMastery = append(studiedNoMastery, dr.Record.SkillLabel)
		}
	}
	if len(studiedNoMastery) >= studiedNoMasteryMin {
		flags = append(flags, Inconsistency{
			Code:     "STUDIED_NO_MASTERY",
			Message:  fmt.Sprintf("%d compétences marquées \"studied\" sans mastery — données incomplètes", len(studiedNoMastery)),
			Fields:   studiedNoMastery,
			Severity: SeverityError,
		})
	}

	if flag := declVsProof(data, p); flag != nil {
		flags = append(flags, *flag)
	}

	return flags
}

// declVsProof fires when the declared maths average is high while the
// evaluated mastery evidence is low: a large declarative/proof gap.
func declVsProof(data *diagnostic.Data, p *Policy) *Inconsistency {
	avg, err := strconv.ParseFloat(strings.TrimSpace(data.Performance.MathAverage), 64)
	if err != nil || avg < declaredAverageHighMin {
		return nil
	}

	var masterySum, evaluated int
	for _, dr := range data.AllCompetencies(p.DomainOrder) {
		if dr.Record.Evaluated() {
			masterySum += *dr.Record.Mastery
			evaluated++
		}
	}
	if evaluated == 0 {
		return nil
	}
	masteryPct := float64(masterySum) / float64(evaluated) / 4 * 100
	if masteryPct >= proofMasteryLowMax {
		return nil
	}

	return &Inconsistency{
		Code:     "DECL_VS_PROOF",
		Message:  fmt.Sprintf("Moyenne déclarée élevée (%.4g/20) mais mastery globale faible (<40%%) — possible surévaluation ou programme non couvert", avg),
		Fields:   []string{"performance.mathAverage", "competencies"},
		Severity: SeverityWarning,
	}
}
