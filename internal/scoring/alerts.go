package scoring

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/cyranoaladin/nexus-scoring/internal/diagnostic"
)

// Alert rule thresholds.
const (
	weakAutomatismsScoreMax   = 2
	weakAutomatismsSelfMax    = 1.5
	highFrictionMin           = 3
	multipleBlockagesMin      = 2
	lowWeeklyWorkHours        = 2.0
	programNotCoveredRatioMax = 0.30
	advancedGapsScoreMax      = 40
)

// detectAlerts runs the stateless alert rules in a fixed order. Rules are
// independent; several alerts may co-occur on one profile.
func detectAlerts(data *diagnostic.Data, dq DataQuality, p *Policy) []Alert {
	alerts := []Alert{}
	ep := &data.ExamPrep

	if ep.SelfRatings.Stress >= p.StressAlertMin {
		alerts = append(alerts, Alert{
			Type:    AlertWarning,
			Code:    "HIGH_STRESS",
			Message: fmt.Sprintf("Gestion du stress à travailler (auto-évaluation %d/4)", ep.SelfRatings.Stress),
			Impact:  "Risque de sous-performance à l'épreuve anticipée malgré un bon niveau technique",
		})
	}

	// Low proof alone is not enough: the mini-test failure must co-occur
	// with a corroborating weak signal (low self-ratings or over time).
	selfMean := float64(ep.SelfRatings.SpeedNoCalc+ep.SelfRatings.CalcReliability) / 2
	if ep.MiniTest.Score <= weakAutomatismsScoreMax &&
		(selfMean <= weakAutomatismsSelfMax || !boolValue(ep.MiniTest.CompletedInTime)) {
		alerts = append(alerts, Alert{
			Type:    AlertDanger,
			Code:    "WEAK_AUTOMATISMS",
			Message: fmt.Sprintf("Automatismes très fragiles (mini-test %d/6)", ep.MiniTest.Score),
			Impact:  "Partie automatismes de l'épreuve anticipée (sans calculatrice) fortement compromise",
		})
	}

	if ep.Signals.Feeling == diagnostic.FeelingPanic {
		alerts = append(alerts, Alert{
			Type:    AlertDanger,
			Code:    "PANIC_SIGNAL",
			Message: "Signal de détresse — suivi prioritaire recommandé",
			Impact:  "Nécessite un accompagnement psycho-pédagogique avant le travail technique",
		})
	}

	highFriction := 0
	for _, dr := range data.AllCompetencies(p.DomainOrder) {
		if dr.Record.Friction != nil && *dr.Record.Friction >= highFrictionMin {
			highFriction++
		}
	}
	if highFriction >= multipleBlockagesMin {
		alerts = append(alerts, Alert{
			Type:    AlertWarning,
			Code:    "MULTIPLE_BLOCKAGES",
			Message: fmt.Sprintf("Blocages identifiés sur %d compétences (friction ≥ %d)", highFriction, highFrictionMin),
			Impact:  "Risque de décrochage si les blocages ne sont pas traités en priorité",
		})
	}

	if hours, err := strconv.ParseFloat(strings.TrimSpace(data.Methodology.WeeklyWork), 64); err == nil && hours < lowWeeklyWorkHours {
		alerts = append(alerts, Alert{
			Type:    AlertInfo,
			Code:    "LOW_WORK_VOLUME",
			Message: "Volume de travail hebdomadaire à augmenter (< 2h)",
			Impact:  "Progression limitée sans augmentation du temps de travail personnel",
		})
	}

	if data.Methodology.MaxConcentration == "30min" {
		alerts = append(alerts, Alert{
			Type:    AlertInfo,
			Code:    "LOW_ENDURANCE",
			Message: "Endurance de concentration à développer (≤ 30min)",
			Impact:  "L'épreuve anticipée dure 2h — endurance insuffisante pour maintenir la qualité",
		})
	}

	if dq.LowConfidence {
		alerts = append(alerts, Alert{
			Type:    AlertWarning,
			Code:    "LOW_DATA_QUALITY",
			Message: fmt.Sprintf("Données insuffisantes : seulement %d domaine(s) actif(s) sur %d", dq.ActiveDomains, len(p.DomainOrder)),
			Impact:  "Le scoring et les recommandations sont moins fiables — à confirmer en séance",
		})
	}

	if dq.UnknownCompetencies >= p.HighUnknownMin {
		alerts = append(alerts, Alert{
			Type:    AlertInfo,
			Code:    "HIGH_UNKNOWN",
			Message: fmt.Sprintf("%d compétences en statut \"unknown\" — l'élève ne sait pas situer sa progression", dq.UnknownCompetencies),
			Impact:  "Pénalise la qualité des données — évaluation diagnostique en séance recommandée",
		})
	}

	return alerts
}

// chapterAlerts covers the chapter-aware rules, active only when a
// programme coverage was computed.
func chapterAlerts(cov *CoverageProgramme, data *diagnostic.Data, domainScores []DomainScore, p *Policy) []Alert {
	if cov == nil {
		return nil
	}
	var alerts []Alert

	if cov.SeenChapterRatio < programNotCoveredRatioMax {
		alerts = append(alerts, Alert{
			Type:    AlertWarning,
			Code:    "PROGRAM_NOT_COVERED",
			Message: fmt.Sprintf("Programme peu couvert : %d chapitre(s) vu(s) sur %d", cov.SeenChapters+cov.InProgressChapters, cov.TotalChapters),
			Impact:  "Les indices de maîtrise portent sur une fraction réduite du programme",
		})
	}

	if weak := weakSeenDomains(data.Chapters, domainScores, p); len(weak) > 0 {
		alerts = append(alerts, Alert{
			Type:    AlertWarning,
			Code:    "ADVANCED_GAPS",
			Message: fmt.Sprintf("Chapitres déjà vus avec maîtrise faible : %s", strings.Join(weak, ", ")),
			Impact:  "Des chapitres abordés en classe restent mal maîtrisés — reprise nécessaire",
		})
	}

	return alerts
}

// weakSeenDomains lists active domains scoring below the gap threshold that
// own at least one seen (selected or in-progress) chapter, in registry order.
func weakSeenDomains(sel *diagnostic.ChapterSelection, domainScores []DomainScore, p *Policy) []string {
	seen := make(map[string]bool)
	for _, id := range sel.Selected {
		seen[id] = true
	}
	for _, id := range sel.InProgress {
		seen[id] = true
	}

	seenDomains := make(map[string]bool)
	for _, ch := range p.Chapters {
		if seen[ch.ChapterID] {
			seenDomains[ch.DomainID] = true
		}
	}

	var weak []string
	for i := range domainScores {
		ds := &domainScores[i]
		if seenDomains[ds.Domain] && ds.Active() && ds.Score < advancedGapsScoreMax {
			weak = append(weak, ds.Domain)
		}
	}
	return weak
}
