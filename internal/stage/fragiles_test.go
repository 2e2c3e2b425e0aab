package stage

import (
	"strings"
	"testing"
)

func fragileQuestions() []QuestionMetadata {
	return []QuestionMetadata{
		q("b1", SubjectMaths, "Calcul", WeightBasic),
		q("b2", SubjectMaths, "Calcul", WeightBasic),
		q("m1", SubjectMaths, "Calcul", WeightIntermediate),
		q("e1", SubjectMaths, "Calcul", WeightExpert),
		q("e2", SubjectMaths, "Calcul", WeightExpert),
	}
}

func TestDetectBasesFragiles_Fires(t *testing.T) {
	answers := []StudentAnswer{
		ans("b1", AnswerIncorrect),
		ans("b2", AnswerIncorrect),
		ans("e1", AnswerCorrect),
		ans("e2", AnswerCorrect),
	}

	flag := DetectBasesFragiles(answers, fragileQuestions(), "Calcul")
	if flag == nil {
		t.Fatal("failed basics with passed experts should flag")
	}
	if flag.Category != "Calcul" || flag.BasicsFailed != 2 || flag.ExpertPassed != 2 {
		t.Errorf("flag = %+v", flag)
	}
	if !strings.Contains(flag.Message, "automatismes à consolider") {
		t.Errorf("message = %q", flag.Message)
	}
}

func TestDetectBasesFragiles_HalfRatios(t *testing.T) {
	// Exactly half of each tier is enough on both sides.
	answers := []StudentAnswer{
		ans("b1", AnswerIncorrect),
		ans("b2", AnswerCorrect),
		ans("e1", AnswerCorrect),
		ans("e2", AnswerIncorrect),
	}
	if DetectBasesFragiles(answers, fragileQuestions(), "Calcul") == nil {
		t.Error("half failed basics with half passed experts should still flag")
	}
}

func TestDetectBasesFragiles_DoesNotFire(t *testing.T) {
	tests := []struct {
		name    string
		answers []StudentAnswer
	}{
		{
			name: "basics pass",
			answers: []StudentAnswer{
				ans("b1", AnswerCorrect),
				ans("b2", AnswerCorrect),
				ans("e1", AnswerCorrect),
				ans("e2", AnswerCorrect),
			},
		},
		{
			name: "experts fail too",
			answers: []StudentAnswer{
				ans("b1", AnswerIncorrect),
				ans("b2", AnswerIncorrect),
				ans("e1", AnswerIncorrect),
				ans("e2", AnswerIncorrect),
			},
		},
		{
			name: "nsp on basics is not failure",
			answers: []StudentAnswer{
				ans("b1", AnswerNSP),
				ans("b2", AnswerNSP),
				ans("e1", AnswerCorrect),
				ans("e2", AnswerCorrect),
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if flag := DetectBasesFragiles(tt.answers, fragileQuestions(), "Calcul"); flag != nil {
				t.Errorf("unexpected flag: %+v", flag)
			}
		})
	}
}

func TestDetectBasesFragiles_RequiresBothTiers(t *testing.T) {
	basicsOnly := []QuestionMetadata{
		q("b1", SubjectMaths, "Calcul", WeightBasic),
		q("b2", SubjectMaths, "Calcul", WeightBasic),
	}
	expertsOnly := []QuestionMetadata{
		q("e1", SubjectMaths, "Calcul", WeightExpert),
	}

	if DetectBasesFragiles([]StudentAnswer{ans("b1", AnswerIncorrect), ans("b2", AnswerIncorrect)}, basicsOnly, "Calcul") != nil {
		t.Error("no expert tier, nothing to compare against")
	}
	if DetectBasesFragiles([]StudentAnswer{ans("e1", AnswerCorrect)}, expertsOnly, "Calcul") != nil {
		t.Error("no basic tier, nothing to compare against")
	}
}

func TestDetectBasesFragiles_ScopedToCategory(t *testing.T) {
	questions := append(fragileQuestions(),
		q("x1", SubjectMaths, "Fonctions", WeightBasic),
		q("x2", SubjectMaths, "Fonctions", WeightExpert),
	)
	// Fragile pattern lives entirely in Calcul.
	answers := []StudentAnswer{
		ans("b1", AnswerIncorrect),
		ans("b2", AnswerIncorrect),
		ans("e1", AnswerCorrect),
		ans("e2", AnswerCorrect),
		ans("x1", AnswerCorrect),
		ans("x2", AnswerIncorrect),
	}

	if DetectBasesFragiles(answers, questions, "Fonctions") != nil {
		t.Error("Fonctions should not inherit the Calcul pattern")
	}
	if DetectBasesFragiles(answers, questions, "Calcul") == nil {
		t.Error("Calcul pattern lost when other categories are present")
	}
}
