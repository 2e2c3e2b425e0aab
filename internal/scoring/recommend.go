package scoring

import (
	"fmt"
	"strings"
)

// decide maps the computed indices to the 3-valued recommendation.
func decide(readiness, risk int, t Thresholds) (Recommendation, string) {
	switch {
	case readiness >= t.Confirmed.Readiness && risk <= t.Confirmed.Risk:
		return Pallier2Confirmed, "Profil compatible avec le Pallier 2 Excellence"
	case readiness >= t.Conditional.Readiness && risk <= t.Conditional.Risk:
		return Pallier2Conditional, "Pallier 2 possible avec accompagnement renforcé"
	default:
		return Pallier1Recommended, "Le Pallier 1 Fondamentaux est recommandé pour consolider les bases"
	}
}

// justify explains the decision in terms of the computed indices and lists
// the concrete conditions that would upgrade the recommendation. The
// justification is never empty, and a conditional decision always carries at
// least one upgrade condition: a conditional profile misses the confirmed
// gate on readiness, on risk, or on both.
func justify(rec Recommendation, mastery, coverage, examReadiness, readiness, risk int, t Thresholds) (string, []string) {
	var parts []string
	conditions := []string{}

	switch rec {
	case Pallier2Confirmed:
		parts = append(parts, fmt.Sprintf("Mastery (%d%%) et ExamReadiness (%d%%) au-dessus des seuils.", mastery, examReadiness))
		if coverage < 70 {
			parts = append(parts, fmt.Sprintf("Attention : couverture programme à %d%% — chapitres non abordés à planifier.", coverage))
		}
	case Pallier2Conditional:
		if readiness < t.Confirmed.Readiness {
			parts = append(parts, fmt.Sprintf("ReadinessScore (%d%%) sous le seuil confirmé (%d%%).", readiness, t.Confirmed.Readiness))
			conditions = append(conditions, fmt.Sprintf("Atteindre %d%% de ReadinessScore (actuellement %d%%)", t.Confirmed.Readiness, readiness))
		}
		if risk > t.Confirmed.Risk {
			parts = append(parts, fmt.Sprintf("RiskIndex (%d%%) au-dessus du seuil confirmé (%d%%).", risk, t.Confirmed.Risk))
			conditions = append(conditions, fmt.Sprintf("Réduire le RiskIndex sous %d%% (actuellement %d%%)", t.Confirmed.Risk, risk))
		}
		parts = append(parts, "Pallier 2 possible avec accompagnement renforcé.")
	default:
		parts = append(parts, "Profil nécessitant une consolidation des fondamentaux avant le Pallier 2.")
		if mastery < 40 {
			conditions = append(conditions, fmt.Sprintf("Améliorer le MasteryIndex au-dessus de 40%% (actuellement %d%%)", mastery))
		}
		if examReadiness < 40 {
			conditions = append(conditions, fmt.Sprintf("Améliorer les automatismes et l'ExamReadiness au-dessus de 40%% (actuellement %d%%)", examReadiness))
		}
		if len(conditions) == 0 {
			conditions = append(conditions, fmt.Sprintf("Réduire le RiskIndex sous %d%% (actuellement %d%%)", t.Conditional.Risk, risk))
		}
	}

	return strings.Join(parts, " "), conditions
}
