package assessment

// definitionSchema is the JSON schema every bundled or fetched assessment
// definition must satisfy before it reaches the session layer.
var definitionSchema = map[string]any{
	"type": "object",
	"properties": map[string]any{
		"id": map[string]any{
			"type":      "string",
			"minLength": 1,
		},
		"title": map[string]any{
			"type":      "string",
			"minLength": 1,
		},
		"category": map[string]any{
			"type":      "string",
			"minLength": 1,
		},
		"duration_secs": map[string]any{
			"type":    "integer",
			"minimum": 1,
		},
		"questions": map[string]any{
			"type":     "array",
			"minItems": 1,
			"items": map[string]any{
				"type": "object",
				"properties": map[string]any{
					"id": map[string]any{
						"type":      "string",
						"minLength": 1,
					},
					"skill": map[string]any{
						"type":      "string",
						"minLength": 1,
					},
					"difficulty": map[string]any{
						"type": "string",
						"enum": []any{"beginner", "intermediate", "advanced"},
					},
					"prompt": map[string]any{
						"type":      "string",
						"minLength": 1,
					},
					"options": map[string]any{
						"type":     "array",
						"minItems": 2,
						"maxItems": 6,
						"items":    map[string]any{"type": "string"},
					},
					"answer_index": map[string]any{
						"type":    "integer",
						"minimum": 0,
					},
				},
				"required":             []any{"id", "skill", "difficulty", "prompt", "options", "answer_index"},
				"additionalProperties": false,
			},
		},
	},
	"required":             []any{"id", "title", "category", "duration_secs", "questions"},
	"additionalProperties": false,
}

// pathMapSchema validates the skill → learning-path recommendation table.
var pathMapSchema = map[string]any{
	"type": "object",
	"additionalProperties": map[string]any{
		"type":  "array",
		"items": map[string]any{"type": "string", "minLength": 1},
	},
}
