package catalog

import (
	apphttp "maleri_backend/internal/http"
	"maleri_backend/platform/logger"
	"maleri_backend/platform/validator"
)

// Module is the catalog bounded context module implementing http.Module.
type Module struct {
	handler *Handler
	service *Service
	store   *Store
}

// NewModule creates and initializes the catalog module. The suggester and
// enqueuer are optional; nil disables the corresponding endpoint.
func NewModule(source RowSource, store *Store, suggester SynonymSuggester, jobs RefreshEnqueuer, val *validator.Validator, log *logger.Logger) *Module {
	svc := NewService(source, store, suggester, log)
	return &Module{
		handler: NewHandler(svc, jobs, val),
		service: svc,
		store:   store,
	}
}

// Name returns the module identifier.
func (m *Module) Name() string {
	return "catalog"
}

// Service returns the service layer for external use.
func (m *Module) Service() *Service {
	return m.service
}

// Store returns the shared catalog store other modules read snapshots from.
func (m *Module) Store() *Store {
	return m.store
}

// RegisterRoutes mounts catalog routes on the provided router context.
func (m *Module) RegisterRoutes(ctx *apphttp.RouterContext) {
	ctx.Protected.GET("/catalog/tasks", m.handler.ListTasks)
	ctx.Protected.GET("/catalog/tasks/:id", m.handler.GetTask)
	ctx.Protected.GET("/catalog/stats", m.handler.Stats)

	adminGroup := ctx.Admin.Group("/catalog")
	adminGroup.POST("/reload", m.handler.Reload)
	adminGroup.POST("/refresh", m.handler.Refresh)
	adminGroup.POST("/suggest-synonyms", m.handler.SuggestSynonyms)
}

// Compile-time check that Module implements http.Module
var _ apphttp.Module = (*Module)(nil)
