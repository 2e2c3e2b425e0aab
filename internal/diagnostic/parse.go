package diagnostic

import (
	"encoding/json"

	"github.com/cyranoaladin/nexus-scoring/internal/payload"
)

// Parse validates raw JSON against the diagnostic schema and unmarshals it.
// Returns *payload.ErrInvalidPayload when the shape is wrong; a payload that
// parses is guaranteed to score without error.
func Parse(raw []byte) (*Data, error) {
	if err := payload.Validate(DataSchema, raw); err != nil {
		return nil, err
	}
	var d Data
	if err := json.Unmarshal(raw, &d); err != nil {
		return nil, &payload.ErrInvalidPayload{Schema: DataSchema.Name, Err: err}
	}
	return &d, nil
}
