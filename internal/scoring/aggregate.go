package scoring

import (
	"math"
	"sort"

	"github.com/cyranoaladin/nexus-scoring/internal/diagnostic"
)

// minActiveEvaluated is the evidence floor: a domain with fewer evaluated
// records scores 0 with critical priority no matter how high the individual
// masteries are.
const minActiveEvaluated = 2

// gapMasteryMax marks a skill as a gap when mastery <= this.
const gapMasteryMax = 1

// dominantErrorMasteryMax bounds which records contribute error types.
const dominantErrorMasteryMax = 2

// maxDominantErrors caps the per-domain dominant error list.
const maxDominantErrors = 2

// aggregation is the intermediate output of the competency aggregator.
type aggregation struct {
	domainScores  []DomainScore
	masteryIndex  int
	coverageIndex int
	dataQuality   DataQuality
}

// aggregateDomains reduces competency records into per-domain aggregates and
// the mastery/coverage indices. Domains are visited in registry order;
// payload keys outside the registry are ignored.
func aggregateDomains(data *diagnostic.Data, p *Policy) aggregation {
	domainScores := make([]DomainScore, 0, len(p.DomainOrder))

	var (
		weightedMasterySum float64
		masteryWeightSum   float64
		totalItems         int
		totalEvaluated     int
		totalNotStudied    int
		totalUnknown       int
		activeDomains      int
	)

	for _, domain := range p.DomainOrder {
		items := data.Competencies[domain]
		totalItems += len(items)

		ds := DomainScore{
			Domain:         domain,
			TotalCount:     len(items),
			Gaps:           []string{},
			DominantErrors: []string{},
		}

		var masterySum int
		for i := range items {
			c := &items[i]
			switch c.Status {
			case diagnostic.StatusNotStudied:
				ds.NotStudiedCount++
			case diagnostic.StatusUnknown:
				ds.UnknownCount++
			}
			if c.Evaluated() {
				ds.EvaluatedCount++
				masterySum += *c.Mastery
			}
			if c.Mastery != nil && *c.Mastery <= gapMasteryMax {
				ds.Gaps = append(ds.Gaps, c.SkillLabel)
			}
		}
		ds.DominantErrors = dominantErrors(items)

		totalEvaluated += ds.EvaluatedCount
		totalNotStudied += ds.NotStudiedCount
		totalUnknown += ds.UnknownCount

		if ds.EvaluatedCount >= minActiveEvaluated {
			meanMastery := float64(masterySum) / float64(ds.EvaluatedCount)
			score := meanMastery / 4 * 100
			weight := p.Weight(domain)

			weightedMasterySum += weight * score
			masteryWeightSum += weight
			activeDomains++

			ds.Score = int(math.Round(score))
			ds.Priority = p.PriorityBands.Band(ds.Score)
		} else {
			ds.Score = 0
			ds.Priority = PriorityCritical
		}

		domainScores = append(domainScores, ds)
	}

	masteryIndex := 0
	if masteryWeightSum > 0 {
		masteryIndex = int(math.Round(weightedMasterySum / masteryWeightSum))
	}
	coverageIndex := 0
	if totalItems > 0 {
		coverageIndex = int(math.Round(float64(totalEvaluated) / float64(totalItems) * 100))
	}

	quality := QualityInsufficient
	switch {
	case activeDomains >= 4 && totalUnknown <= 2:
		quality = QualityGood
	case activeDomains >= 3:
		quality = QualityPartial
	}

	return aggregation{
		domainScores:  domainScores,
		masteryIndex:  masteryIndex,
		coverageIndex: coverageIndex,
		dataQuality: DataQuality{
			ActiveDomains:          activeDomains,
			EvaluatedCompetencies:  totalEvaluated,
			NotStudiedCompetencies: totalNotStudied,
			UnknownCompetencies:    totalUnknown,
			LowConfidence:          activeDomains < 3,
			Quality:                quality,
			// CoherenceIssues, MiniTestFilled and CriticalFieldsMissing
			// are filled by ComputeV2 once inconsistencies are known.
		},
	}
}

// dominantErrors collects error types from low-mastery records (mastery <= 2),
// deduplicated and ranked by frequency. Ties keep first-appearance order so
// the output is reproducible.
func dominantErrors(items []diagnostic.CompetencyRecord) []string {
	counts := make(map[string]int)
	var order []string
	for i := range items {
		c := &items[i]
		if c.Mastery == nil || *c.Mastery > dominantErrorMasteryMax {
			continue
		}
		for _, e := range c.ErrorTypes {
			if counts[e] == 0 {
				order = append(order, e)
			}
			counts[e]++
		}
	}

	sort.SliceStable(order, func(i, j int) bool {
		return counts[order[i]] > counts[order[j]]
	})
	if len(order) > maxDominantErrors {
		order = order[:maxDominantErrors]
	}
	if order == nil {
		order = []string{}
	}
	return order
}
