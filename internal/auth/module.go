package auth

import (
	apphttp "maleri_backend/internal/http"
	"maleri_backend/platform/config"
	"maleri_backend/platform/logger"
	"maleri_backend/platform/validator"
)

// Module is the auth bounded context module implementing http.Module.
type Module struct {
	handler *Handler
	service *Service
}

// NewModule creates and initializes the auth module.
func NewModule(cfg config.AuthConfig, val *validator.Validator, log *logger.Logger) *Module {
	svc := NewService(cfg, log)
	return &Module{
		handler: NewHandler(svc, val),
		service: svc,
	}
}

// Name returns the module identifier.
func (m *Module) Name() string {
	return "auth"
}

// RegisterRoutes mounts auth routes on the provided router context. The
// token endpoint carries the stricter auth rate limit.
func (m *Module) RegisterRoutes(ctx *apphttp.RouterContext) {
	authGroup := ctx.V1.Group("/auth")
	authGroup.Use(ctx.AuthRateLimiter.RateLimit())
	authGroup.POST("/token", m.handler.Token)
}

// Compile-time check that Module implements http.Module
var _ apphttp.Module = (*Module)(nil)
