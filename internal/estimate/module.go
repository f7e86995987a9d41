package estimate

import (
	"maleri_backend/internal/catalog"
	apphttp "maleri_backend/internal/http"
	"maleri_backend/platform/logger"
	"maleri_backend/platform/validator"
)

// Module is the estimate bounded context module implementing http.Module.
type Module struct {
	handler *Handler
	service *Service
}

// NewModule creates and initializes the estimate module.
func NewModule(store *catalog.Store, cfg PricingConfig, val *validator.Validator, log *logger.Logger) *Module {
	svc := NewService(store, cfg, log)
	return &Module{
		handler: NewHandler(svc, val),
		service: svc,
	}
}

// Name returns the module identifier.
func (m *Module) Name() string {
	return "estimate"
}

// Service returns the service layer for use by other modules.
func (m *Module) Service() *Service {
	return m.service
}

// RegisterRoutes mounts estimate routes on the provided router context.
func (m *Module) RegisterRoutes(ctx *apphttp.RouterContext) {
	ctx.Protected.POST("/estimates", m.handler.Generate)
}

// Compile-time check that Module implements http.Module
var _ apphttp.Module = (*Module)(nil)
