package estimate

import (
	"testing"

	"maleri_backend/internal/catalog"
)

func TestResolveLineItem_ReferenceArithmetic(t *testing.T) {
	task := &catalog.Task{
		ID:                  "paint-walls",
		Name:                "Täckmåla väggar",
		Unit:                catalog.UnitArea,
		LaborHoursPerUnit:   0.10,
		MaterialCostPerUnit: 18,
		DefaultLayers:       1,
		Surface:             catalog.SurfaceWall,
	}
	// Net wall area 2*(2+2)*2.5 = 20 m², no openings.
	geo := RoomGeometry{Width: 2, Length: 2, Height: 2.5}
	cfg := PricingConfig{LaborRate: 500, TaskMarkupPct: 10, BatchMarkupPct: 15}

	item := ResolveLineItem(task, geo, 2, cfg)

	if item.Quantity != 40 {
		t.Fatalf("expected quantity 40, got %v", item.Quantity)
	}
	// (0.10*500+18) = 68, with 10% markup = 74.80
	if item.UnitPrice != 74.80 {
		t.Fatalf("expected unit price 74.80, got %v", item.UnitPrice)
	}
	if item.Subtotal != 2992.00 {
		t.Fatalf("expected subtotal 2992.00, got %v", item.Subtotal)
	}
	if item.Layers != 2 {
		t.Fatalf("expected 2 layers, got %d", item.Layers)
	}
}

func TestResolveLineItem_DefaultLayersAndOverrides(t *testing.T) {
	rate := 650.0
	markup := 25.0
	task := &catalog.Task{
		ID:                "prime-ceiling",
		Name:              "Grundmåla tak",
		Unit:              catalog.UnitArea,
		LaborHoursPerUnit: 0.2,
		DefaultLayers:     2,
		Surface:           catalog.SurfaceCeiling,
		LaborRateOverride: &rate,
		MarkupPctOverride: &markup,
	}
	geo := RoomGeometry{Width: 4, Length: 5, Height: 2.5}

	item := ResolveLineItem(task, geo, 0, cfgDefaults())

	if item.Layers != 2 {
		t.Fatalf("expected default layer count 2, got %d", item.Layers)
	}
	if item.Quantity != 40 {
		t.Fatalf("expected quantity 40 (20 m² × 2 layers), got %v", item.Quantity)
	}
	// 0.2*650 = 130, with 25% markup = 162.50
	if item.UnitPrice != 162.50 {
		t.Fatalf("expected unit price 162.50, got %v", item.UnitPrice)
	}
	if item.Subtotal != 6500.00 {
		t.Fatalf("expected subtotal 6500.00, got %v", item.Subtotal)
	}
}

func TestResolveLineItem_ZeroQuantityIsValid(t *testing.T) {
	task := &catalog.Task{
		ID:                "paint-windows",
		Name:              "Måla fönster",
		Unit:              catalog.UnitCount,
		LaborHoursPerUnit: 2,
		DefaultLayers:     1,
		Surface:           catalog.SurfaceWindow,
	}
	geo := RoomGeometry{Width: 3, Length: 3, Height: 2.4, Windows: 0}

	item := ResolveLineItem(task, geo, 1, cfgDefaults())

	if item.Quantity != 0 {
		t.Fatalf("expected quantity 0, got %v", item.Quantity)
	}
	if item.Subtotal != 0 {
		t.Fatalf("expected zero subtotal, got %v", item.Subtotal)
	}
}

func TestResolveLineItem_NegativeNetAreaClampsToZero(t *testing.T) {
	task := &catalog.Task{
		ID:                "paint-walls",
		Name:              "Måla väggar",
		Unit:              catalog.UnitArea,
		LaborHoursPerUnit: 0.1,
		DefaultLayers:     1,
		Surface:           catalog.SurfaceWall,
	}
	// Tiny closet with many doors: net wall area goes negative.
	geo := RoomGeometry{Width: 0.5, Length: 0.5, Height: 1, Doors: 2}

	item := ResolveLineItem(task, geo, 1, cfgDefaults())

	if item.Quantity != 0 || item.Subtotal != 0 {
		t.Fatalf("expected clamped zero line, got quantity %v subtotal %v", item.Quantity, item.Subtotal)
	}
}

func TestRound2_HalfUpOnCentBoundary(t *testing.T) {
	// 1.005 and 2.675 sit just under the half cent in float64; the helper
	// must still round them up.
	cases := map[float64]float64{
		1.005:              1.01,
		2.675:              2.68,
		2.004:              2.00,
		74.796:             74.80,
		2992.0000000000005: 2992.00,
		0:                  0,
	}
	for in, want := range cases {
		if got := round2(in); got != want {
			t.Fatalf("round2(%v) = %v, want %v", in, got, want)
		}
	}
}

func cfgDefaults() PricingConfig {
	return DefaultPricingConfig()
}
