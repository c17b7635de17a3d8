package api

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/qri-io/jsonschema"
)

// checkinSchemaJSON is the wire contract for POST /v1/checkins. Structural
// validation happens here; range rules are repeated so a bad payload is
// rejected before it can reach the scoring engine.
const checkinSchemaJSON = `{
  "type": "object",
  "required": ["answers"],
  "properties": {
    "answers": {
      "type": "object",
      "required": ["energy", "sleep", "structure", "initiation", "engagement", "sustainability"],
      "properties": {
        "energy":         {"type": "integer", "minimum": 1, "maximum": 5},
        "sleep":          {"type": "integer", "minimum": 1, "maximum": 5},
        "structure":      {"type": "integer", "minimum": 1, "maximum": 5},
        "initiation":     {"type": "integer", "minimum": 1, "maximum": 5},
        "engagement":     {"type": "integer", "minimum": 1, "maximum": 5},
        "sustainability": {"type": "integer", "minimum": 1, "maximum": 5}
      },
      "additionalProperties": false
    },
    "reflection_note": {"type": "string", "maxLength": 2000}
  },
  "additionalProperties": false
}`

// compileCheckinSchema parses the embedded schema once at router setup.
func compileCheckinSchema() (*jsonschema.Schema, error) {
	rs := &jsonschema.Schema{}
	if err := json.Unmarshal([]byte(checkinSchemaJSON), rs); err != nil {
		return nil, fmt.Errorf("compile checkin schema: %w", err)
	}
	return rs, nil
}

// validateAgainst returns a single human-readable message for the first
// schema violation, or "" when the payload is valid.
func validateAgainst(ctx context.Context, rs *jsonschema.Schema, payload []byte) string {
	errs, err := rs.ValidateBytes(ctx, payload)
	if err != nil {
		return "malformed json body"
	}
	if len(errs) > 0 {
		return errs[0].Error()
	}
	return ""
}
