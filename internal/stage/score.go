package stage

import "math"

// ComputeScore scores a full QCM. Unknown question IDs in the answer list
// are ignored; unanswered questions count as NSP. Categories are processed
// in first-appearance order in the question list, so the output (including
// list ordering) is reproducible bit-for-bit.
func ComputeScore(answers []StudentAnswer, questions []QuestionMetadata) *Result {
	status := answerIndex(answers, questions)

	categories := categoryOrder(questions)

	categoryScores := make([]CategoryScore, 0, len(categories))
	radarData := make([]RadarPoint, 0, len(categories))
	basesFragiles := []BasesFragilesFlag{}
	strengths := []string{}
	weaknesses := []string{}

	var (
		totalWeightedScore int
		totalWeightedMax   int
		totalAttempted     int
		totalCorrect       int
		totalIncorrect     int
		totalNSP           int
	)

	for _, category := range categories {
		var (
			subject                         Subject
			attempted, correct, incorrect   int
			nsp, weightedScore, weightedMax int
			total                           int
		)
		for i := range questions {
			q := &questions[i]
			if q.Category != category {
				continue
			}
			if total == 0 {
				subject = q.Subject
			}
			total++
			weightedMax += q.Weight

			switch status[q.ID] {
			case AnswerCorrect:
				correct++
				attempted++
				weightedScore += q.Weight
			case AnswerIncorrect:
				incorrect++
				attempted++
			default:
				nsp++
			}
		}

		precision := 0
		if attempted > 0 {
			precision = roundPct(correct, attempted)
		}
		confidence := roundPct(attempted, total)
		nspPct := roundPct(nsp, total)

		fragile := DetectBasesFragiles(answers, questions, category)
		if fragile != nil {
			basesFragiles = append(basesFragiles, *fragile)
		}

		tag := ComputeCategoryTag(precision, confidence, nspPct, fragile != nil)

		categoryScores = append(categoryScores, CategoryScore{
			Category:           category,
			Subject:            subject,
			Precision:          precision,
			Confidence:         confidence,
			TotalQuestions:     total,
			AttemptedQuestions: attempted,
			CorrectAnswers:     correct,
			IncorrectAnswers:   incorrect,
			NSPAnswers:         nsp,
			WeightedScore:      weightedScore,
			WeightedMax:        weightedMax,
			Tag:                tag,
		})
		radarData = append(radarData, RadarPoint{Subject: category, Score: precision, Confidence: confidence})

		switch {
		case tag == TagMaitrise || (precision >= 70 && confidence >= 50):
			strengths = append(strengths, category)
		case tag == TagConfusions || tag == TagBasesFragiles:
			weaknesses = append(weaknesses, category)
		}

		totalWeightedScore += weightedScore
		totalWeightedMax += weightedMax
		totalAttempted += attempted
		totalCorrect += correct
		totalIncorrect += incorrect
		totalNSP += nsp
	}

	totalQuestions := len(questions)
	globalScore := 0
	if totalWeightedMax > 0 {
		globalScore = roundPct(totalWeightedScore, totalWeightedMax)
	}
	confidenceIndex := 0
	if totalQuestions > 0 {
		confidenceIndex = roundPct(totalAttempted, totalQuestions)
	}
	precisionIndex := 0
	if totalAttempted > 0 {
		precisionIndex = roundPct(totalCorrect, totalAttempted)
	}

	var nsiErrors *NSIErrorBreakdown
	if hasSubject(questions, SubjectNSI) {
		nsiErrors = computeNSIErrors(status, questions)
	}

	return &Result{
		GlobalScore:     globalScore,
		ConfidenceIndex: confidenceIndex,
		PrecisionIndex:  precisionIndex,

		TotalQuestions: totalQuestions,
		TotalAttempted: totalAttempted,
		TotalCorrect:   totalCorrect,
		TotalIncorrect: totalIncorrect,
		TotalNSP:       totalNSP,

		CategoryScores: categoryScores,
		RadarData:      radarData,

		Strengths:  strengths,
		Weaknesses: weaknesses,

		BasesFragiles: basesFragiles,
		NSIErrors:     nsiErrors,

		DiagnosticText: diagnosticText(globalScore, confidenceIndex, strengths, weaknesses, basesFragiles),
		LucidityText:   LucidityText(confidenceIndex, precisionIndex),
	}
}

// answerIndex maps question ID to answer status. Only known question IDs
// are kept; everything unanswered defaults to NSP at lookup time (the zero
// value of the map is not AnswerCorrect/AnswerIncorrect).
func answerIndex(answers []StudentAnswer, questions []QuestionMetadata) map[string]AnswerStatus {
	known := make(map[string]bool, len(questions))
	for i := range questions {
		known[questions[i].ID] = true
	}
	status := make(map[string]AnswerStatus, len(answers))
	for _, a := range answers {
		if known[a.QuestionID] {
			status[a.QuestionID] = a.Status
		}
	}
	return status
}

// categoryOrder returns the distinct categories in first-appearance order.
func categoryOrder(questions []QuestionMetadata) []string {
	seen := make(map[string]bool)
	var order []string
	for i := range questions {
		if c := questions[i].Category; !seen[c] {
			seen[c] = true
			order = append(order, c)
		}
	}
	return order
}

func hasSubject(questions []QuestionMetadata, s Subject) bool {
	for i := range questions {
		if questions[i].Subject == s {
			return true
		}
	}
	return false
}

// roundPct is round(100*num/den); callers guarantee den > 0.
func roundPct(num, den int) int {
	return int(math.Round(float64(num) / float64(den) * 100))
}
