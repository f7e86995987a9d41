package catalog

import "strings"

// Match is a successful catalog resolution with its score.
// Exact name and exact synonym hits score 1.0; token-overlap hits score the
// fraction of description tokens found in the candidate's name and synonyms.
type Match struct {
	Task  *Task
	Score float64
}

// Match resolves a free-text task description against the catalog.
//
// Matching order, first hit wins:
//  1. exact case-insensitive match on the canonical Swedish name
//  2. exact match on any synonym
//  3. token-overlap scoring, restricted to tasks whose surface tag equals
//     the hint when one is supplied; untagged tasks apply to any surface
//     and always compete; ties go to the higher score, then to catalog
//     load order
//
// A description sharing no tokens with any candidate returns no match
// rather than a low-confidence guess.
func (c *Catalog) Match(description string, hint Surface) (Match, bool) {
	key := normalizeKey(description)
	if key == "" {
		return Match{}, false
	}

	if task, ok := c.byName[key]; ok {
		return Match{Task: task, Score: 1.0}, true
	}

	for _, task := range c.tasks {
		for _, syn := range task.Synonyms {
			if normalizeKey(syn) == key {
				return Match{Task: task, Score: 1.0}, true
			}
		}
	}

	tokens := tokenize(key)
	if len(tokens) == 0 {
		return Match{}, false
	}

	var best Match
	for _, task := range c.tasks {
		if hint != SurfaceNone && task.Surface != SurfaceNone && task.Surface != hint {
			continue
		}
		score := overlapScore(tokens, task)
		// Strict greater keeps the earliest-loaded task on equal scores.
		if score > best.Score {
			best = Match{Task: task, Score: score}
		}
	}

	if best.Task == nil || best.Score <= 0 {
		return Match{}, false
	}
	return best, true
}

// overlapScore is the fraction of description tokens present in the task's
// name and synonyms.
func overlapScore(tokens []string, task *Task) float64 {
	vocab := make(map[string]struct{})
	for _, tok := range tokenize(task.Name) {
		vocab[tok] = struct{}{}
	}
	for _, syn := range task.Synonyms {
		for _, tok := range tokenize(syn) {
			vocab[tok] = struct{}{}
		}
	}

	hits := 0
	for _, tok := range tokens {
		if _, ok := vocab[tok]; ok {
			hits++
		}
	}
	return float64(hits) / float64(len(tokens))
}

// SuggestPrompt renders the admin prompt used when asking an LLM for new
// synonym candidates for a phrase that failed to map.
func (c *Catalog) SuggestPrompt(phrase string) string {
	var b strings.Builder
	b.WriteString("Följande frasen från en svensk måleribeskrivning matchade ingen katalogpost: ")
	b.WriteString(strings.TrimSpace(phrase))
	b.WriteString("\nKatalogens poster:\n")
	for _, task := range c.tasks {
		b.WriteString("- ")
		b.WriteString(task.Name)
		if len(task.Synonyms) > 0 {
			b.WriteString(" (")
			b.WriteString(strings.Join(task.Synonyms, ", "))
			b.WriteString(")")
		}
		b.WriteString("\n")
	}
	b.WriteString("Föreslå upp till fem synonymer, en per rad, utan extra text.")
	return b.String()
}
