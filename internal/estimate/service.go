package estimate

import (
	"context"

	"maleri_backend/internal/catalog"
	"maleri_backend/platform/apperr"
	"maleri_backend/platform/logger"
)

// Service runs estimate generation against the current catalog snapshot.
type Service struct {
	store *catalog.Store
	cfg   PricingConfig
	log   *logger.Logger
}

// NewService creates the estimate service.
func NewService(store *catalog.Store, cfg PricingConfig, log *logger.Logger) *Service {
	return &Service{store: store, cfg: cfg, log: log}
}

// Generate builds an estimate for a batch of utterances against one room.
// The catalog snapshot is taken once per call; a concurrent reload does not
// affect a batch already in flight.
func (s *Service) Generate(ctx context.Context, req GenerateEstimateRequest) (Result, error) {
	geo := req.Room.Geometry()
	if err := geo.Validate(); err != nil {
		return Result{}, apperr.Wrap(apperr.KindValidation, "ogiltiga rumsmått", err)
	}

	cat := s.store.Current()
	if cat.Len() == 0 {
		return Result{}, apperr.Unavailable("uppgiftskatalogen är inte laddad")
	}

	result := NewAssembler(cat, s.cfg).Generate(req.Utterances, geo)

	s.log.Info("estimate generated",
		"utterances", len(req.Utterances),
		"line_items", len(result.LineItems),
		"errors", len(result.Errors),
		"grand_total", result.Totals.GrandTotal,
	)
	return result, nil
}
