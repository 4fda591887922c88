package flows

// JSON schemas handed to CompleteStructured. Kept permissive on purpose:
// models drop optional fields freely and extra keys are tolerated.

func intentAnalysisSchema() map[string]any {
	return map[string]any{
		"type":     "object",
		"required": []any{"request_type"},
		"properties": map[string]any{
			"request_type": map[string]any{
				"type": "string",
				"enum": []any{
					"linked_session", "interactive_query", "data_analysis",
					"general_chat", "disambiguation", "unknown",
				},
			},
			"intent":      map[string]any{"type": []any{"string", "null"}},
			"response":    map[string]any{"type": []any{"string", "null"}},
			"description": map[string]any{"type": []any{"string", "null"}},
		},
	}
}

func queryMetadataSchema() map[string]any {
	return map[string]any{
		"type": "object",
		"properties": map[string]any{
			"sql":         map[string]any{"type": []any{"string", "null"}},
			"summary":     map[string]any{"type": []any{"string", "null"}},
			"description": map[string]any{"type": []any{"string", "null"}},
			"result":      map[string]any{"type": []any{"string", "null"}},
			"columns": map[string]any{
				"type": []any{"array", "null"},
				"items": map[string]any{
					"type":     "object",
					"required": []any{"name"},
					"properties": map[string]any{
						"name":        map[string]any{"type": "string"},
						"type":        map[string]any{"type": []any{"string", "null"}},
						"description": map[string]any{"type": []any{"string", "null"}},
					},
				},
			},
		},
	}
}

func investigationStepSchema() map[string]any {
	return map[string]any{
		"type":     "object",
		"required": []any{"summary", "next_step_needed"},
		"properties": map[string]any{
			"summary":                 map[string]any{"type": "string"},
			"user_intent":             map[string]any{"type": []any{"string", "null"}},
			"sql_request":             map[string]any{"type": []any{"string", "null"}},
			"response_to_user":        map[string]any{"type": []any{"string", "null"}},
			"next_step_needed":        map[string]any{"type": "boolean"},
			"self_check_passed":       map[string]any{"type": []any{"boolean", "null"}},
			"additional_data_request": map[string]any{"type": []any{"string", "null"}},
			"labels": map[string]any{
				"type":  []any{"array", "null"},
				"items": map[string]any{"type": "string"},
			},
			"rows": map[string]any{
				"type": []any{"array", "null"},
				"items": map[string]any{
					"type":  "array",
					"items": map[string]any{"type": "string"},
				},
			},
			"intro":      map[string]any{"type": []any{"string", "null"}},
			"outro":      map[string]any{"type": []any{"string", "null"}},
			"chart_code": map[string]any{"type": []any{"string", "null"}},
			"chart_html": map[string]any{"type": []any{"string", "null"}},
		},
	}
}

func executionPipelineSchema() map[string]any {
	return map[string]any{
		"type":     "object",
		"required": []any{"steps"},
		"properties": map[string]any{
			"user_question":  map[string]any{"type": []any{"string", "null"}},
			"output_step_id": map[string]any{"type": []any{"string", "null"}},
			"steps": map[string]any{
				"type": "array",
				"items": map[string]any{
					"type":     "object",
					"required": []any{"id"},
					"properties": map[string]any{
						"id":           map[string]any{"type": "string"},
						"label":        map[string]any{"type": []any{"string", "null"}},
						"description":  map[string]any{"type": []any{"string", "null"}},
						"type":         map[string]any{"type": []any{"string", "null"}},
						"sql":          map[string]any{"type": []any{"string", "null"}},
						"output_table": map[string]any{"type": []any{"string", "null"}},
						"depends_on": map[string]any{
							"type":  []any{"array", "null"},
							"items": map[string]any{"type": "string"},
						},
					},
				},
			},
		},
	}
}
