// Package catalog holds the canonical painting-task catalog: an immutable,
// in-memory index of billable tasks with labor/material norms and the
// synonym-based matcher used to resolve spoken task descriptions.
package catalog

// Unit is the billing unit of a catalog task.
type Unit string

const (
	UnitArea   Unit = "area"
	UnitLength Unit = "length"
	UnitCount  Unit = "count"
)

// IsValidUnit reports whether the unit is one of the allowed values.
func IsValidUnit(u Unit) bool {
	switch u {
	case UnitArea, UnitLength, UnitCount:
		return true
	default:
		return false
	}
}

// Surface tags a task with the room surface it applies to.
// The empty value means the task is not tied to a specific surface.
type Surface string

const (
	SurfaceNone    Surface = ""
	SurfaceWall    Surface = "wall"
	SurfaceCeiling Surface = "ceiling"
	SurfaceFloor   Surface = "floor"
	SurfaceDoor    Surface = "door"
	SurfaceWindow  Surface = "window"
	SurfaceTrim    Surface = "trim"
)

// IsValidSurface reports whether the surface tag is known. Empty is allowed.
func IsValidSurface(s Surface) bool {
	switch s {
	case SurfaceNone, SurfaceWall, SurfaceCeiling, SurfaceFloor, SurfaceDoor, SurfaceWindow, SurfaceTrim:
		return true
	default:
		return false
	}
}

// Task is one canonical catalog entry. Tasks are created at load time and
// never mutated; a reload replaces the whole catalog.
type Task struct {
	ID                  string
	Name                string // Swedish display name
	NameEN              string // optional English display name
	Unit                Unit
	LaborHoursPerUnit   float64
	MaterialCostPerUnit float64
	DefaultLayers       int
	Surface             Surface
	Synonyms            []string
	PrepRequired        bool
	LaborRateOverride   *float64
	MarkupPctOverride   *float64
}

// Row is the raw input shape produced by catalog-loading collaborators
// (database repository, seed file). Load validates rows into Tasks.
type Row struct {
	ID                  string   `yaml:"id" json:"id"`
	Name                string   `yaml:"name" json:"name"`
	NameEN              string   `yaml:"nameEn" json:"nameEn"`
	Unit                string   `yaml:"unit" json:"unit"`
	LaborHoursPerUnit   float64  `yaml:"laborHoursPerUnit" json:"laborHoursPerUnit"`
	MaterialCostPerUnit float64  `yaml:"materialCostPerUnit" json:"materialCostPerUnit"`
	DefaultLayers       int      `yaml:"defaultLayers" json:"defaultLayers"`
	Surface             string   `yaml:"surface" json:"surface"`
	Synonyms            []string `yaml:"synonyms" json:"synonyms"`
	PrepRequired        bool     `yaml:"prepRequired" json:"prepRequired"`
	LaborRateOverride   *float64 `yaml:"laborRateOverride" json:"laborRateOverride"`
	MarkupPctOverride   *float64 `yaml:"markupPctOverride" json:"markupPctOverride"`
}

// RowError reports a rejected row by its zero-based index in the input.
type RowError struct {
	Row     int    `json:"row"`
	Field   string `json:"field,omitempty"`
	Message string `json:"message"`
}
