package estimate

import (
	"math"
	"testing"

	"maleri_backend/internal/catalog"
)

func TestRoomGeometry_DerivedMeasures(t *testing.T) {
	geo := RoomGeometry{Width: 4, Length: 5, Height: 2.5, Doors: 1, Windows: 1}

	if got := geo.Perimeter(); got != 18 {
		t.Fatalf("perimeter: expected 18, got %v", got)
	}
	if got := geo.GrossWallArea(); got != 45 {
		t.Fatalf("gross wall area: expected 45, got %v", got)
	}
	want := 2*(4+5)*2.5 - StandardDoorArea
	if got := geo.NetWallArea(); got != want {
		t.Fatalf("net wall area: expected %v, got %v", want, got)
	}
	if got := geo.CeilingArea(); got != 20 {
		t.Fatalf("ceiling area: expected 20, got %v", got)
	}
}

func TestRoomGeometry_MeasureFor(t *testing.T) {
	geo := RoomGeometry{Width: 4, Length: 5, Height: 2.5, Doors: 2, Windows: 3}

	cases := map[catalog.Surface]float64{
		catalog.SurfaceWall:    geo.NetWallArea(),
		catalog.SurfaceCeiling: 20,
		catalog.SurfaceFloor:   20,
		catalog.SurfaceDoor:    2,
		catalog.SurfaceWindow:  3,
		catalog.SurfaceTrim:    18,
		catalog.SurfaceNone:    0,
	}
	for surface, want := range cases {
		if got := geo.MeasureFor(surface); math.Abs(got-want) > 1e-9 {
			t.Fatalf("MeasureFor(%s): expected %v, got %v", surface, want, got)
		}
	}
}

func TestRoomGeometry_Validate(t *testing.T) {
	valid := RoomGeometry{Width: 3, Length: 4, Height: 2.4}
	if err := valid.Validate(); err != nil {
		t.Fatalf("expected valid geometry, got %v", err)
	}

	for _, geo := range []RoomGeometry{
		{Width: 0, Length: 4, Height: 2.4},
		{Width: 3, Length: -1, Height: 2.4},
		{Width: 3, Length: 4, Height: 0},
		{Width: 3, Length: 4, Height: 2.4, Doors: -1},
	} {
		if err := geo.Validate(); err == nil {
			t.Fatalf("expected validation error for %+v", geo)
		}
	}
}
