package intent

import (
	"strconv"
	"strings"
)

// numberWords maps spoken Swedish numerals to integers.
var numberWords = map[string]int{
	"en":   1,
	"ett":  1,
	"två":  2,
	"tre":  3,
	"fyra": 4,
	"fem":  5,
	"sex":  6,
	"sju":  7,
	"åtta": 8,
	"nio":  9,
	"tio":  10,
	"elva": 11,
	"tolv": 12,
}

// ParseNumberWord converts a Swedish number word or digit token to an int.
func ParseNumberWord(token string) (int, bool) {
	if n, ok := numberWords[token]; ok {
		return n, true
	}
	n, err := strconv.Atoi(token)
	if err != nil || n < 0 {
		return 0, false
	}
	return n, true
}

// Normalize prepares an utterance for rule matching: lowercase, decimal
// commas converted to dots, collapsed whitespace. Swedish letters are
// preserved as-is.
func Normalize(text string) string {
	lowered := strings.ToLower(strings.TrimSpace(text))

	// "3,5" -> "3.5" without touching commas used as clause separators.
	var b strings.Builder
	b.Grow(len(lowered))
	runes := []rune(lowered)
	for i, r := range runes {
		if r == ',' && i > 0 && i+1 < len(runes) && isDigit(runes[i-1]) && isDigit(runes[i+1]) {
			b.WriteRune('.')
			continue
		}
		b.WriteRune(r)
	}

	return strings.Join(strings.Fields(b.String()), " ")
}

func isDigit(r rune) bool {
	return r >= '0' && r <= '9'
}
