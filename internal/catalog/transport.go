package catalog

// TaskResponse is the outward shape of one catalog task.
type TaskResponse struct {
	ID                  string   `json:"id"`
	Name                string   `json:"name"`
	NameEN              string   `json:"nameEn,omitempty"`
	Unit                Unit     `json:"unit"`
	Surface             Surface  `json:"surface,omitempty"`
	LaborHoursPerUnit   float64  `json:"laborHoursPerUnit"`
	MaterialCostPerUnit float64  `json:"materialCostPerUnit"`
	DefaultLayers       int      `json:"defaultLayers"`
	Synonyms            []string `json:"synonyms,omitempty"`
	PrepRequired        bool     `json:"prepRequired"`
}

func newTaskResponse(task *Task) TaskResponse {
	return TaskResponse{
		ID:                  task.ID,
		Name:                task.Name,
		NameEN:              task.NameEN,
		Unit:                task.Unit,
		Surface:             task.Surface,
		LaborHoursPerUnit:   task.LaborHoursPerUnit,
		MaterialCostPerUnit: task.MaterialCostPerUnit,
		DefaultLayers:       task.DefaultLayers,
		Synonyms:            task.Synonyms,
		PrepRequired:        task.PrepRequired,
	}
}

// ReloadResult reports a catalog reload: accepted task count plus the rows
// that were rejected with their reasons.
type ReloadResult struct {
	Accepted int        `json:"accepted"`
	Rejected []RowError `json:"rejected"`
}

// StatsResponse summarizes the loaded catalog.
type StatsResponse struct {
	Total     int             `json:"total"`
	ByUnit    map[Unit]int    `json:"byUnit"`
	BySurface map[Surface]int `json:"bySurface"`
}

// SuggestSynonymsRequest asks for synonym candidates for an unmapped phrase.
type SuggestSynonymsRequest struct {
	Phrase string `json:"phrase" validate:"required,min=2,max=200"`
}

// SuggestSynonymsResponse carries the generated candidates.
type SuggestSynonymsResponse struct {
	Phrase      string   `json:"phrase"`
	Suggestions []string `json:"suggestions"`
}
