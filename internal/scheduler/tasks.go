// Package scheduler defines the background jobs delivered over Redis via
// asynq: currently the periodic catalog refresh.
package scheduler

import (
	"encoding/json"

	"github.com/hibiken/asynq"
)

const TaskCatalogRefresh = "catalog.refresh"

// CatalogRefreshPayload names who requested the refresh, for the audit log.
type CatalogRefreshPayload struct {
	Source string `json:"source"`
}

func NewCatalogRefreshTask(payload CatalogRefreshPayload) (*asynq.Task, error) {
	data, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}
	return asynq.NewTask(TaskCatalogRefresh, data), nil
}

func ParseCatalogRefreshPayload(task *asynq.Task) (CatalogRefreshPayload, error) {
	var payload CatalogRefreshPayload
	if err := json.Unmarshal(task.Payload(), &payload); err != nil {
		return CatalogRefreshPayload{}, err
	}
	return payload, nil
}
