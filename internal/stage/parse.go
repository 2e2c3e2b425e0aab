package stage

import (
	"encoding/json"

	"github.com/cyranoaladin/nexus-scoring/internal/payload"
)

// Payload is the wire shape for a stage scoring request.
type Payload struct {
	Questions []QuestionMetadata `json:"questions"`
	Answers   []StudentAnswer    `json:"answers"`
}

// PayloadSchema is the JSON Schema for the stage scoring payload.
var PayloadSchema = &payload.Schema{
	Name: "stage",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"questions": map[string]any{
				"type": "array",
				"items": map[string]any{
					"type": "object",
					"properties": map[string]any{
						"id":      map[string]any{"type": "string"},
						"subject": map[string]any{"type": "string"},
						"category": map[string]any{
							"type":      "string",
							"minLength": 1,
						},
						"competence": map[string]any{
							"type": "string",
							"enum": []any{"Restituer", "Appliquer", "Raisonner"},
						},
						"weight": map[string]any{
							"type": "integer",
							"enum": []any{1, 2, 3},
						},
						"nsiErrorType": map[string]any{
							"type": "string",
							"enum": []any{"syntax", "logic", "conceptual"},
						},
						"label": map[string]any{"type": "string"},
					},
					"required": []any{"id", "subject", "category", "weight"},
				},
			},
			"answers": map[string]any{
				"type": "array",
				"items": map[string]any{
					"type": "object",
					"properties": map[string]any{
						"questionId": map[string]any{"type": "string"},
						"status": map[string]any{
							"type": "string",
							"enum": []any{"correct", "incorrect", "nsp"},
						},
					},
					"required": []any{"questionId", "status"},
				},
			},
		},
		"required": []any{"questions", "answers"},
	},
}

// Parse validates raw JSON against the stage schema and unmarshals it.
// Returns *payload.ErrInvalidPayload when the shape is wrong.
func Parse(raw []byte) (*Payload, error) {
	if err := payload.Validate(PayloadSchema, raw); err != nil {
		return nil, err
	}
	var p Payload
	if err := json.Unmarshal(raw, &p); err != nil {
		return nil, &payload.ErrInvalidPayload{Schema: PayloadSchema.Name, Err: err}
	}
	return &p, nil
}
