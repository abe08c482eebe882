package coach

// ReviewSchema defines the JSON schema for coaching reviews.
var ReviewSchema = &Schema{
	Name:        "interview-review",
	Description: "Coaching feedback on a finished mock interview",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"summary": map[string]any{
				"type":        "string",
				"description": "2-4 sentence overview of the candidate's performance",
			},
			"tips": map[string]any{
				"type":        "array",
				"items":       map[string]any{"type": "string"},
				"description": "2-4 concrete, actionable tips for the next session",
			},
		},
		"required":             []any{"summary", "tips"},
		"additionalProperties": false,
	},
}
