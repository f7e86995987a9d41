package catalog

import (
	"context"
	"strings"

	"maleri_backend/platform/apperr"
	"maleri_backend/platform/logger"
)

const maxSynonymSuggestions = 5

// SynonymSuggester generates synonym candidates from a prompt. Implemented
// by the Gemini client; nil disables the suggest endpoint.
type SynonymSuggester interface {
	GenerateText(ctx context.Context, prompt string) (string, error)
}

// Service owns catalog loading and the admin operations around it.
type Service struct {
	source    RowSource
	store     *Store
	suggester SynonymSuggester
	log       *logger.Logger
}

// NewService creates the catalog service.
func NewService(source RowSource, store *Store, suggester SynonymSuggester, log *logger.Logger) *Service {
	return &Service{source: source, store: store, suggester: suggester, log: log}
}

// Reload fetches rows from the source, builds a fresh catalog and swaps it
// in atomically. Rejected rows are reported, not fatal; in-flight requests
// keep their old snapshot.
func (s *Service) Reload(ctx context.Context, sourceName string) (ReloadResult, error) {
	rows, err := s.source.FetchRows(ctx)
	if err != nil {
		return ReloadResult{}, apperr.Wrap(apperr.KindUnavailable, "kunde inte läsa katalogkällan", err)
	}

	cat, rowErrs := Load(rows)
	if cat.Len() == 0 {
		return ReloadResult{}, apperr.Unavailable("katalogkällan gav inga giltiga rader")
	}

	s.store.Swap(cat)
	s.log.CatalogLoaded(sourceName, cat.Len(), len(rowErrs))

	return ReloadResult{Accepted: cat.Len(), Rejected: rowErrs}, nil
}

// ListTasks returns all tasks in catalog order.
func (s *Service) ListTasks() []TaskResponse {
	tasks := s.store.Current().All()
	out := make([]TaskResponse, 0, len(tasks))
	for _, task := range tasks {
		out = append(out, newTaskResponse(task))
	}
	return out
}

// GetTask returns one task by ID.
func (s *Service) GetTask(id string) (TaskResponse, error) {
	task, ok := s.store.Current().Lookup(id)
	if !ok {
		return TaskResponse{}, apperr.NotFound("uppgiften finns inte i katalogen")
	}
	return newTaskResponse(task), nil
}

// Stats summarizes the loaded catalog.
func (s *Service) Stats() StatsResponse {
	cat := s.store.Current()
	return StatsResponse{
		Total:     cat.Len(),
		ByUnit:    cat.StatsByUnit(),
		BySurface: cat.StatsBySurface(),
	}
}

// SuggestSynonyms asks the LLM for synonym candidates for a phrase that
// failed to map. The suggestions are advisory; an admin curates them into
// the catalog source by hand.
func (s *Service) SuggestSynonyms(ctx context.Context, phrase string) ([]string, error) {
	if s.suggester == nil {
		return nil, apperr.Unavailable("synonymförslag är inte konfigurerade")
	}

	prompt := s.store.Current().SuggestPrompt(phrase)
	text, err := s.suggester.GenerateText(ctx, prompt)
	if err != nil {
		return nil, apperr.Wrap(apperr.KindInternal, "kunde inte generera synonymförslag", err)
	}

	return parseSuggestions(text), nil
}

// parseSuggestions reads one suggestion per line, tolerating bullet
// prefixes the model tends to add.
func parseSuggestions(text string) []string {
	var out []string
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		line = strings.TrimPrefix(line, "-")
		line = strings.TrimPrefix(line, "*")
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		out = append(out, strings.ToLower(line))
		if len(out) == maxSynonymSuggestions {
			break
		}
	}
	return out
}
