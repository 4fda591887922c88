package queue

import (
	"encoding/json"
	"fmt"

	"github.com/apegpt/queryflow/ent"
	"github.com/apegpt/queryflow/pkg/models"
)

// toJSONMap round-trips a payload through JSON into the generic map shape the
// task table stores.
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

// DecodePayload recovers the typed WorkerRequest from a claimed task row.
func DecodePayload(t *ent.Task) (*models.WorkerRequest, error) {
	raw, err := json.Marshal(t.Payload)
	if err != nil {
		return nil, fmt.Errorf("failed to re-marshal task payload: %w", err)
	}
	var req models.WorkerRequest
	if err := json.Unmarshal(raw, &req); err != nil {
		return nil, fmt.Errorf("failed to decode task payload: %w", err)
	}
	return &req, nil
}
