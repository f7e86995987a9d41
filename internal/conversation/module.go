package conversation

import (
	"time"

	"github.com/redis/go-redis/v9"

	"maleri_backend/internal/catalog"
	"maleri_backend/internal/email"
	"maleri_backend/internal/estimate"
	apphttp "maleri_backend/internal/http"
	"maleri_backend/internal/speech"
	"maleri_backend/platform/logger"
	"maleri_backend/platform/validator"
)

// Module is the conversation bounded context module implementing http.Module.
type Module struct {
	handler *Handler
	service *Service
}

// NewModule creates and initializes the conversation module. Transcriber,
// archive and sender are optional; nil disables the respective feature.
func NewModule(redisClient *redis.Client, sessionTTL time.Duration, catStore *catalog.Store, cfg estimate.PricingConfig, transcriber speech.Transcriber, archive *speech.RecordingArchive, sender email.Sender, val *validator.Validator, log *logger.Logger) *Module {
	sessions := NewSessionStore(redisClient, sessionTTL)
	svc := NewService(sessions, catStore, cfg, transcriber, archive, sender, log)

	return &Module{
		handler: NewHandler(svc, val),
		service: svc,
	}
}

// Name returns the module identifier.
func (m *Module) Name() string {
	return "conversation"
}

// Service returns the service layer for external use.
func (m *Module) Service() *Service {
	return m.service
}

// RegisterRoutes mounts conversation routes on the provided router context.
func (m *Module) RegisterRoutes(ctx *apphttp.RouterContext) {
	ctx.Protected.POST("/conversations", m.handler.Start)
	ctx.Protected.POST("/conversations/:id/messages", m.handler.Message)
	ctx.Protected.POST("/conversations/:id/audio", m.handler.Audio)
	ctx.Protected.GET("/conversations/:id/summary", m.handler.GetSummary)
}

// Compile-time check that Module implements http.Module
var _ apphttp.Module = (*Module)(nil)
