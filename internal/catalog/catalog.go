package catalog

import (
	"fmt"
	"strings"
	"sync/atomic"
	"unicode"
)

// Catalog is an immutable set of tasks in load order. Shared read-only
// across concurrent estimate requests; replaced wholesale on reload.
type Catalog struct {
	tasks  []*Task
	byID   map[string]*Task
	byName map[string]*Task
}

// Load validates rows and builds a catalog. Invalid rows are reported as
// row-indexed errors and excluded; valid rows are kept, so a partially bad
// input still yields a usable catalog. Loading identical input twice yields
// identical accepted tasks and rejected rows.
func Load(rows []Row) (*Catalog, []RowError) {
	cat := &Catalog{
		byID:   make(map[string]*Task, len(rows)),
		byName: make(map[string]*Task, len(rows)),
	}
	var errs []RowError

	for i, row := range rows {
		task, err := validateRow(row)
		if err != nil {
			errs = append(errs, RowError{Row: i, Field: err.field, Message: err.message})
			continue
		}
		if _, exists := cat.byID[task.ID]; exists {
			errs = append(errs, RowError{Row: i, Field: "id", Message: fmt.Sprintf("duplicate id %q", task.ID)})
			continue
		}

		cat.tasks = append(cat.tasks, task)
		cat.byID[task.ID] = task
		key := normalizeKey(task.Name)
		if _, exists := cat.byName[key]; !exists {
			cat.byName[key] = task
		}
	}

	return cat, errs
}

type rowError struct {
	field   string
	message string
}

func (e *rowError) Error() string { return e.message }

func validateRow(row Row) (*Task, *rowError) {
	id := strings.TrimSpace(row.ID)
	if id == "" {
		return nil, &rowError{field: "id", message: "id is required"}
	}
	name := strings.TrimSpace(row.Name)
	if name == "" {
		return nil, &rowError{field: "name", message: "name is required"}
	}
	unit := Unit(strings.ToLower(strings.TrimSpace(row.Unit)))
	if !IsValidUnit(unit) {
		return nil, &rowError{field: "unit", message: fmt.Sprintf("unknown unit %q", row.Unit)}
	}
	if row.LaborHoursPerUnit < 0 {
		return nil, &rowError{field: "laborHoursPerUnit", message: "labor norm must be >= 0"}
	}
	if row.MaterialCostPerUnit < 0 {
		return nil, &rowError{field: "materialCostPerUnit", message: "material cost must be >= 0"}
	}
	surface := Surface(strings.ToLower(strings.TrimSpace(row.Surface)))
	if !IsValidSurface(surface) {
		return nil, &rowError{field: "surface", message: fmt.Sprintf("unknown surface %q", row.Surface)}
	}

	layers := row.DefaultLayers
	if layers < 1 {
		layers = 1
	}

	synonyms := make([]string, 0, len(row.Synonyms))
	for _, syn := range row.Synonyms {
		trimmed := strings.TrimSpace(syn)
		if trimmed != "" {
			synonyms = append(synonyms, trimmed)
		}
	}

	return &Task{
		ID:                  id,
		Name:                name,
		NameEN:              strings.TrimSpace(row.NameEN),
		Unit:                unit,
		LaborHoursPerUnit:   row.LaborHoursPerUnit,
		MaterialCostPerUnit: row.MaterialCostPerUnit,
		DefaultLayers:       layers,
		Surface:             surface,
		Synonyms:            synonyms,
		PrepRequired:        row.PrepRequired,
		LaborRateOverride:   row.LaborRateOverride,
		MarkupPctOverride:   row.MarkupPctOverride,
	}, nil
}

// Lookup returns the task with the given id.
func (c *Catalog) Lookup(id string) (*Task, bool) {
	task, ok := c.byID[strings.TrimSpace(id)]
	return task, ok
}

// All returns the tasks in load order. Callers must not modify the slice.
func (c *Catalog) All() []*Task {
	return c.tasks
}

// Len returns the number of loaded tasks.
func (c *Catalog) Len() int {
	return len(c.tasks)
}

// StatsByUnit returns task counts per unit, for diagnostics.
func (c *Catalog) StatsByUnit() map[Unit]int {
	stats := make(map[Unit]int)
	for _, task := range c.tasks {
		stats[task.Unit]++
	}
	return stats
}

// StatsBySurface returns task counts per surface tag, for diagnostics.
func (c *Catalog) StatsBySurface() map[Surface]int {
	stats := make(map[Surface]int)
	for _, task := range c.tasks {
		stats[task.Surface]++
	}
	return stats
}

// Store holds the active catalog and swaps it atomically on reload.
// Readers that already hold a *Catalog keep a consistent snapshot while
// in-flight; new readers see the fresh catalog after Swap returns.
type Store struct {
	current atomic.Pointer[Catalog]
}

// NewStore creates a store holding an empty catalog.
func NewStore() *Store {
	s := &Store{}
	empty, _ := Load(nil)
	s.current.Store(empty)
	return s
}

// Current returns the active catalog snapshot.
func (s *Store) Current() *Catalog {
	return s.current.Load()
}

// Swap replaces the active catalog.
func (s *Store) Swap(cat *Catalog) {
	s.current.Store(cat)
}

// normalizeKey lowercases and collapses whitespace for exact-match indexes.
func normalizeKey(value string) string {
	return strings.Join(strings.Fields(strings.ToLower(strings.TrimSpace(value))), " ")
}

// tokenize splits text into lowercase word tokens, keeping Swedish letters.
func tokenize(value string) []string {
	return strings.FieldsFunc(strings.ToLower(value), func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r)
	})
}
