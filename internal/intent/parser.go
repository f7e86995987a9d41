package intent

import (
	"sort"
	"strings"
	"unicode"

	"maleri_backend/internal/catalog"
)

// TaskIntent is one structured task extracted from an utterance. Intents
// are immutable and consumed once by the catalog matcher.
type TaskIntent struct {
	Action      Action
	Verb        string          // canonical Swedish verb, used for rendering
	Surface     catalog.Surface // SurfaceNone when the surface was free text
	SurfaceText string          // unrecognized surface words, verbatim
	Quantity    float64         // scalar multiplier, default 1
	Layers      int             // 0 when the utterance gave no layer count
	Span        string          // matched clause, for diagnostics

	rank int
}

// Description renders the intent back to a task description for catalog
// matching: canonical verb plus canonical surface noun.
func (ti TaskIntent) Description() string {
	switch {
	case ti.Surface != catalog.SurfaceNone:
		return ti.Verb + " " + SurfaceNoun(ti.Surface)
	case ti.SurfaceText != "":
		return ti.Verb + " " + ti.SurfaceText
	default:
		return ti.Verb
	}
}

// Parse converts one utterance into zero or more task intents.
//
// The utterance is normalized, split into clauses on commas and the
// conjunctions och/samt, and each clause is scanned against the ordered
// rule tables. A clause needs an action and a surface to produce an
// intent; an action without a surface carries over to following clauses
// ("måla väggar och tak" yields two paint intents). An utterance with no
// recognized pair yields an empty slice, never an error.
//
// Composite utterances are returned in canonical pipeline order
// (wash, joint-fill, skim-coat, prime, paint, seal) regardless of the
// order the work was mentioned in.
func Parse(text string) []TaskIntent {
	normalized := Normalize(text)
	if normalized == "" {
		return nil
	}

	var intents []TaskIntent
	var carry *actionRule

	for _, clause := range splitClauses(normalized) {
		clauseIntents, lastAction := parseClause(clause, carry)
		intents = append(intents, clauseIntents...)
		if lastAction != nil {
			carry = lastAction
		}
	}

	if len(intents) > 1 {
		sort.SliceStable(intents, func(i, j int) bool {
			return intents[i].rank < intents[j].rank
		})
	}

	return intents
}

func splitClauses(text string) []string {
	replaced := strings.NewReplacer(" och ", ",", " samt ", ",").Replace(text)
	parts := strings.Split(replaced, ",")
	clauses := make([]string, 0, len(parts))
	for _, part := range parts {
		trimmed := strings.TrimSpace(part)
		if trimmed != "" {
			clauses = append(clauses, trimmed)
		}
	}
	return clauses
}

// parseClause scans one clause. The carried action from earlier clauses
// applies when the clause names surfaces without its own verb.
func parseClause(clause string, carry *actionRule) ([]TaskIntent, *actionRule) {
	tokens := tokenizeClause(clause)
	if len(tokens) == 0 {
		return nil, nil
	}

	consumed := make([]bool, len(tokens))
	layers := 0
	quantity := 1.0

	type surfaceAt struct {
		rule surfaceRule
		pos  int
	}
	type actionAt struct {
		rule actionRule
		pos  int
	}
	var actions []actionAt
	var surfaces []surfaceAt

	for i, tok := range tokens {
		if rule, ok := lookupAction(tok); ok {
			actions = append(actions, actionAt{rule: rule, pos: i})
			consumed[i] = true
			continue
		}
		if rule, ok := lookupSurface(tok); ok {
			surfaces = append(surfaces, surfaceAt{rule: rule, pos: i})
			consumed[i] = true
			continue
		}
		if q, ok := quantityWords[tok]; ok {
			quantity = q
			consumed[i] = true
			continue
		}
		if n, ok := ParseNumberWord(tok); ok {
			if i+1 < len(tokens) {
				if _, isLayer := layerWords[tokens[i+1]]; isLayer {
					layers = n
					consumed[i] = true
					consumed[i+1] = true
				}
			}
			continue
		}
		if _, isLayer := layerWords[tok]; isLayer {
			// "lager två" with the count trailing
			if i+1 < len(tokens) {
				if n, ok := ParseNumberWord(tokens[i+1]); ok {
					layers = n
					consumed[i] = true
					consumed[i+1] = true
				}
			}
		}
	}

	var lastAction *actionRule
	if len(actions) > 0 {
		lastAction = &actions[len(actions)-1].rule
	}

	actionFor := func(pos int) *actionRule {
		var found *actionRule
		for i := range actions {
			if actions[i].pos < pos {
				found = &actions[i].rule
			}
		}
		if found != nil {
			return found
		}
		if len(actions) > 0 {
			return &actions[0].rule
		}
		return carry
	}

	var intents []TaskIntent
	for _, s := range surfaces {
		act := actionFor(s.pos)
		if act == nil {
			continue
		}
		intents = append(intents, TaskIntent{
			Action:   act.action,
			Verb:     act.verb,
			Surface:  s.rule.surface,
			Quantity: quantity,
			Layers:   layers,
			Span:     clause,
			rank:     act.rank,
		})
	}

	// Action with leftover free-text nouns but no recognized surface:
	// emit a free-text intent so the mapper can report what failed.
	if len(intents) == 0 && len(actions) > 0 {
		var leftover []string
		for i, tok := range tokens {
			if consumed[i] {
				continue
			}
			if _, ok := ParseNumberWord(tok); ok {
				continue
			}
			leftover = append(leftover, tok)
		}
		if len(leftover) > 0 {
			act := actions[0].rule
			intents = append(intents, TaskIntent{
				Action:      act.action,
				Verb:        act.verb,
				SurfaceText: strings.Join(leftover, " "),
				Quantity:    quantity,
				Layers:      layers,
				Span:        clause,
				rank:        act.rank,
			})
		}
	}

	return intents, lastAction
}

func tokenizeClause(clause string) []string {
	return strings.FieldsFunc(clause, func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r) && r != '.'
	})
}
