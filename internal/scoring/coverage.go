package scoring

import "github.com/cyranoaladin/nexus-scoring/internal/diagnostic"

// programmeCoverage computes the chapter-aware coverage block. Returns nil
// when the policy has no chapter registry or the payload no selection:
// callers then omit coverageProgramme and skip the chapter alerts.
func programmeCoverage(data *diagnostic.Data, p *Policy) *CoverageProgramme {
	if len(p.Chapters) == 0 || data.Chapters == nil {
		return nil
	}

	known := make(map[string]*ChapterDefinition, len(p.Chapters))
	for i := range p.Chapters {
		known[p.Chapters[i].ChapterID] = &p.Chapters[i]
	}

	// The selection is a set union: unknown chapter IDs are ignored (like
	// unknown domain keys elsewhere), duplicates count once, and a chapter
	// in both lists counts as seen, not in-progress. Counting over the
	// deduplicated sets keeps SeenChapterRatio within [0,1].
	seenSkills := make(map[string]bool)
	seenSet := make(map[string]bool)
	inProgressSet := make(map[string]bool)
	for _, id := range data.Chapters.Selected {
		ch, ok := known[id]
		if !ok || seenSet[id] {
			continue
		}
		seenSet[id] = true
		for _, sid := range ch.Skills {
			seenSkills[sid] = true
		}
	}
	for _, id := range data.Chapters.InProgress {
		ch, ok := known[id]
		if !ok || seenSet[id] || inProgressSet[id] {
			continue
		}
		inProgressSet[id] = true
		for _, sid := range ch.Skills {
			seenSkills[sid] = true
		}
	}
	seen, inProgress := len(seenSet), len(inProgressSet)

	evaluated := 0
	for _, dr := range data.AllCompetencies(p.DomainOrder) {
		if seenSkills[dr.Record.SkillID] && dr.Record.Evaluated() {
			evaluated++
		}
	}

	cov := &CoverageProgramme{
		TotalChapters:      len(p.Chapters),
		SeenChapters:       seen,
		InProgressChapters: inProgress,
	}
	cov.SeenChapterRatio = float64(seen+inProgress) / float64(len(p.Chapters))
	if len(seenSkills) > 0 {
		cov.EvaluatedSkillRatio = float64(evaluated) / float64(len(seenSkills))
	}
	return cov
}
