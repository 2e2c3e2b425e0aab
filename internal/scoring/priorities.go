package scoring

import (
	"fmt"

	"github.com/cyranoaladin/nexus-scoring/internal/diagnostic"
)

// List caps keep the priority lists short enough for a one-page bilan.
const (
	maxTopPriorities       = 5
	maxQuickWins           = 4
	maxHighRisk            = 3
	maxWeakSkillsPerDomain = 2
	quickWinMasteryMin     = 2
	quickWinMasteryMax     = 3
	quickWinFrictionMax    = 1
	highRiskFrictionMin    = 3
)

// extractPriorities ranks skills into topPriorities, quickWins and highRisk.
// All three are empty (never nil) when no skill qualifies, including when
// domainScores is empty.
func extractPriorities(data *diagnostic.Data, domainScores []DomainScore, p *Policy) (top, wins, risky []PriorityItem) {
	top = []PriorityItem{}
	wins = []PriorityItem{}
	risky = []PriorityItem{}

	// TopPriorities: weakest studied skills from critical/high domains,
	// visited in registry order so ordering is reproducible.
	for i := range domainScores {
		ds := &domainScores[i]
		if ds.Priority != PriorityCritical && ds.Priority != PriorityHigh {
			continue
		}
		picked := 0
		for _, c := range data.Competencies[ds.Domain] {
			if picked >= maxWeakSkillsPerDomain {
				break
			}
			if c.Status != diagnostic.StatusStudied || c.Mastery == nil || *c.Mastery > gapMasteryMax {
				continue
			}
			exercise := "Exercices de base"
			if len(c.ErrorTypes) > 0 {
				exercise = fmt.Sprintf("Exercices ciblés erreur %q", c.ErrorTypes[0])
			}
			top = append(top, PriorityItem{
				SkillID:      c.SkillID,
				SkillLabel:   c.SkillLabel,
				Domain:       ds.Domain,
				Reason:       fmt.Sprintf("Mastery %d/4 dans un domaine prioritaire (%s : %d%%)", *c.Mastery, ds.Domain, ds.Score),
				Impact:       fmt.Sprintf("Impact direct sur le score global — poids du domaine %s", ds.Domain),
				ExerciseType: exercise,
			})
			picked++
		}
	}

	all := data.AllCompetencies(p.DomainOrder)

	// QuickWins: skills just below the mastery ceiling with low friction,
	// where a small improvement crosses the threshold.
	for _, dr := range all {
		c := dr.Record
		if c.Mastery == nil || *c.Mastery < quickWinMasteryMin || *c.Mastery > quickWinMasteryMax {
			continue
		}
		if c.Friction != nil && *c.Friction > quickWinFrictionMax {
			continue
		}
		wins = append(wins, PriorityItem{
			SkillID:      c.SkillID,
			SkillLabel:   c.SkillLabel,
			Domain:       dr.Domain,
			Reason:       fmt.Sprintf("Mastery %d/4 avec friction faible — gain rapide possible", *c.Mastery),
			Impact:       "Consolidation rapide avec 2-3 exercices ciblés",
			ExerciseType: "Exercices de consolidation",
		})
		if len(wins) >= maxQuickWins-1 {
			break
		}
	}

	// Automatisms quick win when the mini-test is mediocre but not terrible.
	if s := data.ExamPrep.MiniTest.Score; s >= 3 && s <= 4 {
		wins = append(wins, PriorityItem{
			SkillLabel:   "Automatismes (sans calculatrice)",
			Domain:       "examPrep",
			Reason:       fmt.Sprintf("Mini-test %d/6 — marge de progression rapide", s),
			Impact:       "Gain direct sur la partie automatismes de l'épreuve anticipée",
			ExerciseType: "Entraînement quotidien 10min sans calculatrice",
		})
	}

	// HighRisk: blocking points, unacquired skills or severe friction.
	for _, dr := range all {
		if len(risky) >= maxHighRisk {
			break
		}
		c := dr.Record
		zeroMastery := c.Mastery != nil && *c.Mastery == 0
		severeFriction := c.Friction != nil && *c.Friction >= highRiskFrictionMin
		if !zeroMastery && !severeFriction {
			continue
		}
		reason := fmt.Sprintf("Friction %d/3 — blocage sévère", frictionValue(c.Friction))
		if zeroMastery {
			reason = "Mastery 0/4 — compétence non acquise"
		}
		risky = append(risky, PriorityItem{
			SkillID:      c.SkillID,
			SkillLabel:   c.SkillLabel,
			Domain:       dr.Domain,
			Reason:       reason,
			Impact:       "Point bloquant pour la progression — traitement prioritaire en séance",
			ExerciseType: "Reprise fondamentaux + accompagnement individuel",
		})
	}

	if len(top) > maxTopPriorities {
		top = top[:maxTopPriorities]
	}
	if len(wins) > maxQuickWins {
		wins = wins[:maxQuickWins]
	}
	return top, wins, risky
}

func frictionValue(f *int) int {
	if f == nil {
		return 0
	}
	return *f
}
