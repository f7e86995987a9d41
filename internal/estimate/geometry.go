// Package estimate turns parsed task intents into priced line items:
// room geometry, the quantity/pricing resolver and the batch assembler.
package estimate

import (
	"fmt"

	"maleri_backend/internal/catalog"
)

// StandardDoorArea is the fixed area in m² deducted from the gross wall
// area per door opening (0.9 m × 2.1 m).
const StandardDoorArea = 1.89

// RoomGeometry holds the measured dimensions of one room in meters.
// Computed once per room and read-only to the pipeline.
type RoomGeometry struct {
	Width   float64 `json:"width"`
	Length  float64 `json:"length"`
	Height  float64 `json:"height"`
	Doors   int     `json:"doors"`
	Windows int     `json:"windows"`
}

// Validate checks that the dimensions describe a real room.
func (g RoomGeometry) Validate() error {
	if g.Width <= 0 || g.Length <= 0 || g.Height <= 0 {
		return fmt.Errorf("width, length and height must be positive")
	}
	if g.Doors < 0 || g.Windows < 0 {
		return fmt.Errorf("door and window counts must be >= 0")
	}
	return nil
}

// Perimeter is the wall perimeter in meters.
func (g RoomGeometry) Perimeter() float64 {
	return 2 * (g.Width + g.Length)
}

// GrossWallArea is the wall area before opening deductions.
func (g RoomGeometry) GrossWallArea() float64 {
	return g.Perimeter() * g.Height
}

// NetWallArea deducts the standard door area per door. Window openings are
// not deducted; they are billed separately as counted units.
func (g RoomGeometry) NetWallArea() float64 {
	return g.GrossWallArea() - float64(g.Doors)*StandardDoorArea
}

// CeilingArea is the ceiling area in m².
func (g RoomGeometry) CeilingArea() float64 {
	return g.Width * g.Length
}

// FloorArea is the floor area in m².
func (g RoomGeometry) FloorArea() float64 {
	return g.Width * g.Length
}

// MeasureFor returns the quantity basis for a surface tag: net area for
// walls, areas for ceiling and floor, counts for doors and windows and the
// perimeter length for trim.
func (g RoomGeometry) MeasureFor(surface catalog.Surface) float64 {
	switch surface {
	case catalog.SurfaceWall:
		return g.NetWallArea()
	case catalog.SurfaceCeiling:
		return g.CeilingArea()
	case catalog.SurfaceFloor:
		return g.FloorArea()
	case catalog.SurfaceDoor:
		return float64(g.Doors)
	case catalog.SurfaceWindow:
		return float64(g.Windows)
	case catalog.SurfaceTrim:
		return g.Perimeter()
	default:
		return 0
	}
}

// measureForTask picks the quantity basis for a task. Tasks without a
// surface tag fall back on their billing unit: area tasks use the net wall
// area, length tasks the perimeter and count tasks a single unit.
func (g RoomGeometry) measureForTask(task *catalog.Task) float64 {
	if task.Surface != catalog.SurfaceNone {
		return g.MeasureFor(task.Surface)
	}
	switch task.Unit {
	case catalog.UnitArea:
		return g.NetWallArea()
	case catalog.UnitLength:
		return g.Perimeter()
	default:
		return 1
	}
}
