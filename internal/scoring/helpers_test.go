package scoring

import (
	"github.com/cyranoaladin/nexus-scoring/internal/diagnostic"
)

func intp(v int) *int    { return &v }
func boolp(v bool) *bool { return &v }

// rec builds a studied competency record with the given mastery.
func rec(id, label string, mastery int) diagnostic.CompetencyRecord {
	return diagnostic.CompetencyRecord{
		SkillID:    id,
		SkillLabel: label,
		Status:     diagnostic.StatusStudied,
		Mastery:    intp(mastery),
		ErrorTypes: []string{},
	}
}

// healthyData is a coherent strong profile: every domain active at mastery 3,
// a good mini-test, low stress, no contradictory signals.
func healthyData() *diagnostic.Data {
	comps := make(map[string][]diagnostic.CompetencyRecord)
	for _, domain := range DefaultPolicy().DomainOrder {
		comps[domain] = []diagnostic.CompetencyRecord{
			rec(domain+"-1", domain+" skill 1", 3),
			rec(domain+"-2", domain+" skill 2", 3),
			rec(domain+"-3", domain+" skill 3", 3),
		}
	}
	return &diagnostic.Data{
		SchoolContext: diagnostic.SchoolContext{Establishment: "Lycée Descartes"},
		Performance:   diagnostic.Performance{MathAverage: "13.5"},
		Competencies:  comps,
		ExamPrep: diagnostic.ExamPrep{
			MiniTest: diagnostic.MiniTest{Score: 5, TimeUsedMinutes: 12, CompletedInTime: boolp(true)},
			SelfRatings: diagnostic.SelfRatings{
				SpeedNoCalc:     3,
				CalcReliability: 3,
				Redaction:       3,
				Justifications:  3,
				Stress:          1,
			},
			Signals: diagnostic.Signals{
				VerifiedAnswers: boolp(true),
				Feeling:         diagnostic.FeelingOK,
			},
		},
	}
}

// weakData is a coherent weak profile: low mastery everywhere, failed
// mini-test, maximum stress, panic feeling. Weak, but not contradictory.
func weakData() *diagnostic.Data {
	comps := make(map[string][]diagnostic.CompetencyRecord)
	for _, domain := range DefaultPolicy().DomainOrder {
		comps[domain] = []diagnostic.CompetencyRecord{
			rec(domain+"-1", domain+" skill 1", 1),
			rec(domain+"-2", domain+" skill 2", 1),
		}
	}
	return &diagnostic.Data{
		Competencies: comps,
		ExamPrep: diagnostic.ExamPrep{
			MiniTest: diagnostic.MiniTest{Score: 1, TimeUsedMinutes: 15, CompletedInTime: boolp(false)},
			SelfRatings: diagnostic.SelfRatings{
				SpeedNoCalc:     1,
				CalcReliability: 1,
				Redaction:       1,
				Justifications:  1,
				Stress:          4,
			},
			Signals: diagnostic.Signals{
				VerifiedAnswers: boolp(false),
				Feeling:         diagnostic.FeelingPanic,
			},
		},
	}
}
