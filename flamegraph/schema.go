package flamegraph

import (
	"github.com/google/jsonschema-go/jsonschema"
)

// TopSchema returns the draft-07 JSON Schema describing the .top.json
// artifact: an array of per-function aggregates ranked by descending
// sample total. Downstream analysis steps can validate the artifact
// against it.
func TopSchema() *jsonschema.Schema {
	entry := &jsonschema.Schema{
		Type: "object",
		Properties: map[string]*jsonschema.Schema{
			"function": {
				Type:        "string",
				Description: "Call-stack entry display name.",
			},
			"samples": {
				Type:        "integer",
				Description: "Total samples summed across all frames with this name.",
			},
			"percent": {
				Type:        "number",
				Description: "Share of the root frame's total (or of the overall sum), in [0, 100].",
			},
		},
		Required: []string{"function", "samples", "percent"},
	}

	return &jsonschema.Schema{
		Schema:      "http://json-schema.org/draft-07/schema#",
		Title:       "flamecsv top functions",
		Description: "Per-function sample totals extracted from a flamegraph SVG, ranked by descending samples.",
		Type:        "array",
		Items:       entry,
	}
}
