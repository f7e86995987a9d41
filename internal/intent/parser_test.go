package intent

import (
	"testing"

	"maleri_backend/internal/catalog"
)

func TestParse_SimpleActionSurface(t *testing.T) {
	intents := Parse("måla väggar två lager")

	if len(intents) != 1 {
		t.Fatalf("expected 1 intent, got %d", len(intents))
	}
	it := intents[0]
	if it.Action != ActionPaint {
		t.Fatalf("expected paint, got %s", it.Action)
	}
	if it.Surface != catalog.SurfaceWall {
		t.Fatalf("expected wall, got %s", it.Surface)
	}
	if it.Layers != 2 {
		t.Fatalf("expected 2 layers, got %d", it.Layers)
	}
	if it.Description() != "måla väggar" {
		t.Fatalf("unexpected description %q", it.Description())
	}
}

func TestParse_ConjunctionSharesVerb(t *testing.T) {
	intents := Parse("Måla väggarna och taket")

	if len(intents) != 2 {
		t.Fatalf("expected 2 intents, got %d", len(intents))
	}
	if intents[0].Surface != catalog.SurfaceWall || intents[1].Surface != catalog.SurfaceCeiling {
		t.Fatalf("unexpected surfaces: %s, %s", intents[0].Surface, intents[1].Surface)
	}
	for _, it := range intents {
		if it.Action != ActionPaint {
			t.Fatalf("expected shared paint action, got %s", it.Action)
		}
	}
}

func TestParse_CompositeOrderedByPipeline(t *testing.T) {
	// Mentioned paint-first; the canonical work order puts priming first.
	intents := Parse("måla väggarna och grundmåla väggarna")

	if len(intents) != 2 {
		t.Fatalf("expected 2 intents, got %d", len(intents))
	}
	if intents[0].Action != ActionPrime {
		t.Fatalf("expected prime first, got %s", intents[0].Action)
	}
	if intents[1].Action != ActionPaint {
		t.Fatalf("expected paint second, got %s", intents[1].Action)
	}
}

func TestParse_CommaSeparatedClauses(t *testing.T) {
	intents := Parse("spackla väggarna, måla väggarna två lager")

	if len(intents) != 2 {
		t.Fatalf("expected 2 intents, got %d", len(intents))
	}
	if intents[0].Action != ActionSkimCoat || intents[1].Action != ActionPaint {
		t.Fatalf("unexpected order: %s, %s", intents[0].Action, intents[1].Action)
	}
	if intents[1].Layers != 2 {
		t.Fatalf("expected 2 layers on the paint intent, got %d", intents[1].Layers)
	}
	if intents[0].Layers != 0 {
		t.Fatalf("expected no layer count on the skim intent, got %d", intents[0].Layers)
	}
}

func TestParse_NumberWordLayers(t *testing.T) {
	intents := Parse("grundmåla taket en gång")

	if len(intents) != 1 {
		t.Fatalf("expected 1 intent, got %d", len(intents))
	}
	if intents[0].Action != ActionPrime || intents[0].Layers != 1 {
		t.Fatalf("unexpected intent: %+v", intents[0])
	}
}

func TestParse_QuantityModifier(t *testing.T) {
	intents := Parse("måla halva väggen")

	if len(intents) != 1 {
		t.Fatalf("expected 1 intent, got %d", len(intents))
	}
	if intents[0].Quantity != 0.5 {
		t.Fatalf("expected quantity 0.5, got %v", intents[0].Quantity)
	}
}

func TestParse_NoKeywordsYieldsEmpty(t *testing.T) {
	for _, utterance := range []string{
		"",
		"hej vad är klockan",
		"tjugo kvadratmeter",
	} {
		if intents := Parse(utterance); len(intents) != 0 {
			t.Fatalf("expected no intents for %q, got %d", utterance, len(intents))
		}
	}
}

func TestParse_SurfaceWithoutActionYieldsEmpty(t *testing.T) {
	if intents := Parse("väggarna i hallen"); len(intents) != 0 {
		t.Fatalf("expected no intents, got %d", len(intents))
	}
}

func TestParse_UnrecognizedSurfaceKeptAsFreeText(t *testing.T) {
	intents := Parse("måla garderoben")

	if len(intents) != 1 {
		t.Fatalf("expected 1 intent, got %d", len(intents))
	}
	it := intents[0]
	if it.Surface != catalog.SurfaceNone {
		t.Fatalf("expected free-text surface, got %s", it.Surface)
	}
	if it.SurfaceText != "garderoben" {
		t.Fatalf("unexpected surface text %q", it.SurfaceText)
	}
	if it.Description() != "måla garderoben" {
		t.Fatalf("unexpected description %q", it.Description())
	}
}

func TestNormalize(t *testing.T) {
	cases := map[string]string{
		"  MÅLA   Väggar  ":   "måla väggar",
		"bredd 3,5 längd 4,2": "bredd 3.5 längd 4.2",
		"väggar, tak":         "väggar, tak",
	}
	for in, want := range cases {
		if got := Normalize(in); got != want {
			t.Fatalf("Normalize(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestParseNumberWord(t *testing.T) {
	if n, ok := ParseNumberWord("två"); !ok || n != 2 {
		t.Fatalf("expected 2, got %d ok=%v", n, ok)
	}
	if n, ok := ParseNumberWord("7"); !ok || n != 7 {
		t.Fatalf("expected 7, got %d ok=%v", n, ok)
	}
	if _, ok := ParseNumberWord("massor"); ok {
		t.Fatal("expected failure for non-number")
	}
}
