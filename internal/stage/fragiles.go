package stage

import "fmt"

// Tier pass/fail ratio: a tier fails (basics) or passes (experts) when at
// least half of its questions do.
const fragileTierRatio = 0.5

// DetectBasesFragiles evaluates the basic (weight 1) and expert (weight 3)
// tiers of a category separately. It returns a flag iff the basic tier
// fails while the expert tier passes, the only firing condition. Both-fail
// and basic-pass profiles return nil, whatever the expert tier did.
// Categories lacking either tier return nil: there is nothing to compare.
func DetectBasesFragiles(answers []StudentAnswer, questions []QuestionMetadata, category string) *BasesFragilesFlag {
	status := answerIndex(answers, questions)

	var basicTotal, basicFailed, expertTotal, expertPassed int
	for i := range questions {
		q := &questions[i]
		if q.Category != category {
			continue
		}
		switch q.Weight {
		case WeightBasic:
			basicTotal++
			if status[q.ID] == AnswerIncorrect {
				basicFailed++
			}
		case WeightExpert:
			expertTotal++
			if status[q.ID] == AnswerCorrect {
				expertPassed++
			}
		}
	}

	if basicTotal == 0 || expertTotal == 0 {
		return nil
	}
	if float64(basicFailed) < float64(basicTotal)*fragileTierRatio ||
		float64(expertPassed) < float64(expertTotal)*fragileTierRatio {
		return nil
	}

	return &BasesFragilesFlag{
		Category:     category,
		BasicsFailed: basicFailed,
		ExpertPassed: expertPassed,
		Message:      fmt.Sprintf("%s : réussit les questions expertes mais échoue sur les bases — automatismes à consolider", category),
	}
}
