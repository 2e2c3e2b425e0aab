package diagnostic

import "github.com/cyranoaladin/nexus-scoring/internal/payload"

// competencyItemSchema describes one CompetencyRecord.
var competencyItemSchema = map[string]any{
	"type": "object",
	"properties": map[string]any{
		"skillId":    map[string]any{"type": "string"},
		"skillLabel": map[string]any{"type": "string"},
		"status": map[string]any{
			"type": "string",
			"enum": []any{"studied", "in_progress", "not_studied", "unknown"},
		},
		"mastery": map[string]any{
			"type":    []any{"integer", "null"},
			"minimum": 0,
			"maximum": 4,
		},
		"confidence": map[string]any{
			"type":    []any{"integer", "null"},
			"minimum": 0,
			"maximum": 3,
		},
		"friction": map[string]any{
			"type":    []any{"integer", "null"},
			"minimum": 0,
			"maximum": 3,
		},
		"errorTypes": map[string]any{
			"type":  "array",
			"items": map[string]any{"type": "string"},
		},
		"evidence": map[string]any{"type": "string"},
	},
	"required": []any{"skillId", "skillLabel", "status"},
}

// DataSchema is the JSON Schema for the diagnostic payload. Only the
// sections that drive scoring are required; contextual sections are
// free-form objects carried through untouched.
var DataSchema = &payload.Schema{
	Name: "diagnostic",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"competencies": map[string]any{
				"type": "object",
				"additionalProperties": map[string]any{
					"type":  "array",
					"items": competencyItemSchema,
				},
			},
			"examPrep": map[string]any{
				"type": "object",
				"properties": map[string]any{
					"miniTest": map[string]any{
						"type": "object",
						"properties": map[string]any{
							"score": map[string]any{
								"type":    "integer",
								"minimum": 0,
								"maximum": 6,
							},
							"timeUsedMinutes": map[string]any{
								"type":    "integer",
								"minimum": 0,
							},
							"completedInTime": map[string]any{
								"type": []any{"boolean", "null"},
							},
						},
						"required": []any{"score", "timeUsedMinutes"},
					},
					"selfRatings": map[string]any{
						"type": "object",
						"properties": map[string]any{
							"speedNoCalc":     ratingSchema,
							"calcReliability": ratingSchema,
							"redaction":       ratingSchema,
							"justifications":  ratingSchema,
							"stress":          ratingSchema,
						},
						"required": []any{
							"speedNoCalc", "calcReliability",
							"redaction", "justifications", "stress",
						},
					},
					"signals": map[string]any{
						"type": "object",
						"properties": map[string]any{
							"hardestItems": map[string]any{
								"type": "array",
								"items": map[string]any{
									"type":    "integer",
									"minimum": 1,
									"maximum": 6,
								},
							},
							"dominantErrorType": map[string]any{"type": "string"},
							"verifiedAnswers":   map[string]any{"type": []any{"boolean", "null"}},
							"feeling":           map[string]any{"type": "string"},
						},
					},
				},
				"required": []any{"miniTest", "selfRatings", "signals"},
			},
			"chapters": map[string]any{
				"type": []any{"object", "null"},
				"properties": map[string]any{
					"selected": map[string]any{
						"type":  "array",
						"items": map[string]any{"type": "string"},
					},
					"inProgress": map[string]any{
						"type":  "array",
						"items": map[string]any{"type": "string"},
					},
				},
			},
		},
		"required": []any{"competencies", "examPrep"},
	},
}

var ratingSchema = map[string]any{
	"type":    "integer",
	"minimum": 0,
	"maximum": 4,
}
