package conversation

import (
	"fmt"
	"strconv"
	"strings"

	"maleri_backend/internal/estimate"
	"maleri_backend/internal/intent"
)

// ParseMeasurements turns a spoken room-dimension phrase into a geometry.
//
// Accepted phrasings, after normalization:
//
//	"4 gånger 5 gånger 2,5"
//	"bredd 4 längd 5 höjd 2,5"
//	"4 × 5 × 2.5" and plain whitespace triples "4 5 2.5"
//
// Number words ("tre gånger fyra gånger två") are accepted wherever digits
// are. An optional trailing "N dörrar" / "N fönster" sets the opening
// counts; both default to one door and one window, the common case for a
// normal room.
func ParseMeasurements(text string) (estimate.RoomGeometry, error) {
	normalized := intent.Normalize(text)
	normalized = strings.ReplaceAll(normalized, "×", " ")
	normalized = strings.ReplaceAll(normalized, "*", " ")
	if normalized == "" {
		return estimate.RoomGeometry{}, fmt.Errorf("inga mått angivna")
	}

	tokens := strings.Fields(normalized)

	geo := estimate.RoomGeometry{Doors: 1, Windows: 1}
	tokens = extractOpenings(tokens, &geo)

	var width, length, height float64
	var err error
	if hasLabel(tokens) {
		width, length, height, err = parseLabeled(tokens)
	} else {
		width, length, height, err = parseTriple(tokens)
	}
	if err != nil {
		return estimate.RoomGeometry{}, err
	}

	geo.Width = width
	geo.Length = length
	geo.Height = height
	if err := geo.Validate(); err != nil {
		return estimate.RoomGeometry{}, fmt.Errorf("ogiltiga mått: %w", err)
	}
	return geo, nil
}

var dimensionLabels = map[string]int{
	"bredd":   0,
	"bredden": 0,
	"längd":   1,
	"längden": 1,
	"höjd":    2,
	"höjden":  2,
}

func hasLabel(tokens []string) bool {
	for _, tok := range tokens {
		if _, ok := dimensionLabels[tok]; ok {
			return true
		}
	}
	return false
}

// parseLabeled reads "bredd A längd B höjd C" in any label order.
func parseLabeled(tokens []string) (float64, float64, float64, error) {
	var dims [3]float64
	var seen [3]bool

	for i, tok := range tokens {
		slot, ok := dimensionLabels[tok]
		if !ok {
			continue
		}
		value, found := nextNumber(tokens, i+1)
		if !found {
			return 0, 0, 0, fmt.Errorf("måttet efter %q saknas", tok)
		}
		dims[slot] = value
		seen[slot] = true
	}

	for slot, name := range []string{"bredd", "längd", "höjd"} {
		if !seen[slot] {
			return 0, 0, 0, fmt.Errorf("%s saknas", name)
		}
	}
	return dims[0], dims[1], dims[2], nil
}

// parseTriple reads the first three numbers in order, skipping separator
// words like "gånger" and "meter".
func parseTriple(tokens []string) (float64, float64, float64, error) {
	var numbers []float64
	for _, tok := range tokens {
		if value, ok := parseNumberToken(tok); ok {
			numbers = append(numbers, value)
			if len(numbers) == 3 {
				break
			}
		}
	}
	if len(numbers) < 3 {
		return 0, 0, 0, fmt.Errorf("förväntade tre mått (bredd, längd, höjd)")
	}
	return numbers[0], numbers[1], numbers[2], nil
}

// extractOpenings consumes "N dörrar" / "N fönster" pairs and returns the
// remaining tokens. A bare "dörr"/"fönster" counts as one.
func extractOpenings(tokens []string, geo *estimate.RoomGeometry) []string {
	remaining := make([]string, 0, len(tokens))
	consumed := make(map[int]bool)

	for i, tok := range tokens {
		var target *int
		switch tok {
		case "dörr", "dörrar":
			target = &geo.Doors
		case "fönster":
			target = &geo.Windows
		default:
			continue
		}

		count := 1
		if i > 0 {
			if n, ok := intent.ParseNumberWord(tokens[i-1]); ok {
				count = n
				consumed[i-1] = true
			}
		}
		*target = count
		consumed[i] = true
	}

	for i, tok := range tokens {
		if !consumed[i] {
			remaining = append(remaining, tok)
		}
	}
	return remaining
}

func nextNumber(tokens []string, from int) (float64, bool) {
	for i := from; i < len(tokens); i++ {
		if value, ok := parseNumberToken(tokens[i]); ok {
			return value, true
		}
	}
	return 0, false
}

func parseNumberToken(tok string) (float64, bool) {
	if value, err := strconv.ParseFloat(tok, 64); err == nil {
		return value, true
	}
	if n, ok := intent.ParseNumberWord(tok); ok {
		return float64(n), true
	}
	return 0, false
}
