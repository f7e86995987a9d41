package catalog

import (
	"context"
	"os"
	"path/filepath"
	"reflect"
	"testing"

	"maleri_backend/platform/apperr"
	"maleri_backend/platform/logger"
)

type staticSource struct {
	rows []Row
	err  error
}

func (s staticSource) FetchRows(context.Context) ([]Row, error) {
	return s.rows, s.err
}

type staticSuggester struct {
	text string
	err  error
}

func (s staticSuggester) GenerateText(context.Context, string) (string, error) {
	return s.text, s.err
}

func TestService_ReloadSwapsStore(t *testing.T) {
	store := NewStore()
	svc := NewService(staticSource{rows: sampleRows()}, store, nil, logger.New("development"))

	result, err := svc.Reload(context.Background(), "test")
	if err != nil {
		t.Fatalf("reload: %v", err)
	}
	if result.Accepted != 5 || len(result.Rejected) != 0 {
		t.Fatalf("unexpected reload result: %+v", result)
	}
	if store.Current().Len() != 5 {
		t.Fatalf("store not swapped, len %d", store.Current().Len())
	}
}

func TestService_ReloadKeepsOldCatalogOnEmptySource(t *testing.T) {
	store := NewStore()
	cat, _ := Load(sampleRows())
	store.Swap(cat)

	svc := NewService(staticSource{rows: []Row{{ID: "", Name: "", Unit: "nope"}}}, store, nil, logger.New("development"))

	if _, err := svc.Reload(context.Background(), "test"); err == nil {
		t.Fatal("expected reload error for all-invalid source")
	}
	if store.Current().Len() != 5 {
		t.Fatal("failed reload must not replace the working catalog")
	}
}

func TestService_SuggestSynonyms(t *testing.T) {
	store := NewStore()
	cat, _ := Load(sampleRows())
	store.Swap(cat)

	svc := NewService(staticSource{}, store, staticSuggester{text: "- Rolla väggarna\n* stryka om\n\nmåla om rummet\n"}, logger.New("development"))

	got, err := svc.SuggestSynonyms(context.Background(), "rolla väggarna")
	if err != nil {
		t.Fatalf("suggest: %v", err)
	}
	want := []string{"rolla väggarna", "stryka om", "måla om rummet"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("expected %v, got %v", want, got)
	}
}

func TestService_SuggestSynonymsUnconfigured(t *testing.T) {
	svc := NewService(staticSource{}, NewStore(), nil, logger.New("development"))

	_, err := svc.SuggestSynonyms(context.Background(), "rolla väggarna")
	if !apperr.Is(err, apperr.KindUnavailable) {
		t.Fatalf("expected unavailable, got %v", err)
	}
}

func TestSeedSource_FetchRows(t *testing.T) {
	seed := `tasks:
  - id: paint-walls
    name: Täckmåla väggar
    unit: area
    laborHoursPerUnit: 0.1
    materialCostPerUnit: 18
    defaultLayers: 2
    surface: wall
    synonyms: ["måla väggar"]
`
	path := filepath.Join(t.TempDir(), "catalog.yaml")
	if err := os.WriteFile(path, []byte(seed), 0o600); err != nil {
		t.Fatalf("write seed: %v", err)
	}

	rows, err := NewSeedSource(path).FetchRows(context.Background())
	if err != nil {
		t.Fatalf("fetch: %v", err)
	}
	if len(rows) != 1 || rows[0].ID != "paint-walls" || rows[0].DefaultLayers != 2 {
		t.Fatalf("unexpected rows: %+v", rows)
	}
	if len(rows[0].Synonyms) != 1 || rows[0].Synonyms[0] != "måla väggar" {
		t.Fatalf("synonyms not parsed: %+v", rows[0].Synonyms)
	}
}
