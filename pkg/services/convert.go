package services

import (
	"encoding/json"

	"github.com/google/uuid"

	"github.com/apegpt/queryflow/pkg/models"
)

// toJSONMap round-trips a value through JSON into a generic map, the shape
// ent JSON columns store.
func toJSONMap(v any) (map[string]any, error) {
	raw, err := json.Marshal(v)
	if err != nil {
		return nil, err
	}
	var out map[string]any
	if err := json.Unmarshal(raw, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// metadataFromMap decodes a session's stored metadata column back into the
// typed form. An empty or nil map yields nil.
func metadataFromMap(m map[string]any) (*models.QueryMetadata, error) {
	if len(m) == 0 {
		return nil, nil
	}
	raw, err := json.Marshal(m)
	if err != nil {
		return nil, err
	}
	var md models.QueryMetadata
	if err := json.Unmarshal(raw, &md); err != nil {
		return nil, err
	}
	return &md, nil
}

func columnsToMaps(cols []models.ColumnInfo) []map[string]any {
	if len(cols) == 0 {
		return nil
	}
	out := make([]map[string]any, 0, len(cols))
	for _, c := range cols {
		m := map[string]any{"name": c.Name}
		if c.Type != "" {
			m["type"] = c.Type
		}
		if c.Description != "" {
			m["description"] = c.Description
		}
		out = append(out, m)
	}
	return out
}

// viewFromMap decodes a stored view column. An empty map yields nil.
func viewFromMap(m map[string]any) (*models.View, error) {
	if len(m) == 0 {
		return nil, nil
	}
	raw, err := json.Marshal(m)
	if err != nil {
		return nil, err
	}
	var v models.View
	if err := json.Unmarshal(raw, &v); err != nil {
		return nil, err
	}
	if v.SortBy == "" {
		return nil, nil
	}
	return &v, nil
}

func parentsToStrings(parents []uuid.UUID) []string {
	if len(parents) == 0 {
		return nil
	}
	out := make([]string, 0, len(parents))
	for _, p := range parents {
		out = append(out, p.String())
	}
	return out
}
