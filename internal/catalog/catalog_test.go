package catalog

import (
	"reflect"
	"testing"
)

func sampleRows() []Row {
	return []Row{
		{ID: "paint-walls", Name: "Täckmåla väggar", Unit: "area", LaborHoursPerUnit: 0.10, MaterialCostPerUnit: 18, DefaultLayers: 2, Surface: "wall", Synonyms: []string{"måla väggar", "stryka väggar"}},
		{ID: "prime-walls", Name: "Grundmåla väggar", Unit: "area", LaborHoursPerUnit: 0.08, DefaultLayers: 1, Surface: "wall", Synonyms: []string{"grunda väggar"}},
		{ID: "paint-ceiling", Name: "Måla tak", Unit: "area", LaborHoursPerUnit: 0.12, DefaultLayers: 2, Surface: "ceiling", Synonyms: []string{"takmålning"}},
		{ID: "paint-doors", Name: "Måla dörrar", Unit: "count", LaborHoursPerUnit: 1.5, DefaultLayers: 2, Surface: "door"},
		{ID: "paint-trim", Name: "Måla lister", Unit: "length", LaborHoursPerUnit: 0.05, DefaultLayers: 2, Surface: "trim", Synonyms: []string{"måla golvlister"}},
	}
}

func TestLoad_AcceptsValidRows(t *testing.T) {
	cat, errs := Load(sampleRows())

	if len(errs) != 0 {
		t.Fatalf("expected no row errors, got %v", errs)
	}
	if cat.Len() != 5 {
		t.Fatalf("expected 5 tasks, got %d", cat.Len())
	}

	task, ok := cat.Lookup("paint-walls")
	if !ok {
		t.Fatal("expected paint-walls to be loadable by id")
	}
	if task.Unit != UnitArea || task.Surface != SurfaceWall {
		t.Fatalf("unexpected task fields: %+v", task)
	}
}

func TestLoad_RejectsInvalidRowsKeepsValid(t *testing.T) {
	rows := []Row{
		{ID: "", Name: "Namnlös", Unit: "area", LaborHoursPerUnit: 1},
		{ID: "ok", Name: "Måla tak", Unit: "area", LaborHoursPerUnit: 0.12},
		{ID: "bad-unit", Name: "Konstig", Unit: "kilogram", LaborHoursPerUnit: 1},
		{ID: "bad-norm", Name: "Negativ", Unit: "area", LaborHoursPerUnit: -1},
		{ID: "ok", Name: "Dubblett", Unit: "area", LaborHoursPerUnit: 1},
	}

	cat, errs := Load(rows)

	if cat.Len() != 1 {
		t.Fatalf("expected 1 accepted task, got %d", cat.Len())
	}
	if len(errs) != 4 {
		t.Fatalf("expected 4 row errors, got %d: %v", len(errs), errs)
	}
	wantRows := []int{0, 2, 3, 4}
	for i, re := range errs {
		if re.Row != wantRows[i] {
			t.Fatalf("error %d: expected row %d, got %d", i, wantRows[i], re.Row)
		}
	}
}

func TestLoad_Idempotent(t *testing.T) {
	rows := append(sampleRows(), Row{ID: "broken", Name: "Trasig", Unit: "nope"})

	cat1, errs1 := Load(rows)
	cat2, errs2 := Load(rows)

	if cat1.Len() != cat2.Len() {
		t.Fatalf("accepted counts differ: %d vs %d", cat1.Len(), cat2.Len())
	}
	if !reflect.DeepEqual(errs1, errs2) {
		t.Fatalf("rejected rows differ: %v vs %v", errs1, errs2)
	}
	for i, task := range cat1.All() {
		if task.ID != cat2.All()[i].ID {
			t.Fatalf("load order differs at %d: %s vs %s", i, task.ID, cat2.All()[i].ID)
		}
	}
}

func TestLoad_DefaultLayersFloorsToOne(t *testing.T) {
	cat, errs := Load([]Row{{ID: "x", Name: "Måla", Unit: "area", LaborHoursPerUnit: 1, DefaultLayers: 0}})
	if len(errs) != 0 {
		t.Fatalf("unexpected errors: %v", errs)
	}
	task, _ := cat.Lookup("x")
	if task.DefaultLayers != 1 {
		t.Fatalf("expected default layers 1, got %d", task.DefaultLayers)
	}
}

func TestStats(t *testing.T) {
	cat, _ := Load(sampleRows())

	byUnit := cat.StatsByUnit()
	if byUnit[UnitArea] != 3 || byUnit[UnitCount] != 1 || byUnit[UnitLength] != 1 {
		t.Fatalf("unexpected unit stats: %v", byUnit)
	}

	bySurface := cat.StatsBySurface()
	if bySurface[SurfaceWall] != 2 || bySurface[SurfaceCeiling] != 1 {
		t.Fatalf("unexpected surface stats: %v", bySurface)
	}
}

func TestStore_SwapReplacesSnapshot(t *testing.T) {
	store := NewStore()
	if store.Current().Len() != 0 {
		t.Fatal("expected empty initial catalog")
	}

	cat, _ := Load(sampleRows())
	old := store.Current()
	store.Swap(cat)

	if store.Current().Len() != 5 {
		t.Fatalf("expected swapped catalog with 5 tasks, got %d", store.Current().Len())
	}
	// The old snapshot stays valid for readers that already hold it.
	if old.Len() != 0 {
		t.Fatal("old snapshot must be unchanged")
	}
}
