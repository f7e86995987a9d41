package catalog

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"maleri_backend/platform/apperr"
	"maleri_backend/platform/httpkit"
	"maleri_backend/platform/validator"
)

const (
	msgInvalidRequest   = "invalid request body"
	msgValidationFailed = "validation failed"
)

// RefreshEnqueuer schedules a catalog refresh on the job queue instead of
// running it inline. Satisfied by the scheduler client.
type RefreshEnqueuer interface {
	EnqueueCatalogRefresh(ctx context.Context, source string) error
}

// Handler handles HTTP requests for the catalog.
type Handler struct {
	svc  *Service
	jobs RefreshEnqueuer
	val  *validator.Validator
}

// NewHandler creates a new catalog handler. The enqueuer is optional; nil
// disables the async refresh endpoint.
func NewHandler(svc *Service, jobs RefreshEnqueuer, val *validator.Validator) *Handler {
	return &Handler{svc: svc, jobs: jobs, val: val}
}

// ListTasks returns all catalog tasks.
// GET /api/v1/catalog/tasks
func (h *Handler) ListTasks(c *gin.Context) {
	httpkit.OK(c, h.svc.ListTasks())
}

// GetTask returns one catalog task by ID.
// GET /api/v1/catalog/tasks/:id
func (h *Handler) GetTask(c *gin.Context) {
	task, err := h.svc.GetTask(c.Param("id"))
	if httpkit.HandleError(c, err) {
		return
	}
	httpkit.OK(c, task)
}

// Stats summarizes the loaded catalog.
// GET /api/v1/catalog/stats
func (h *Handler) Stats(c *gin.Context) {
	httpkit.OK(c, h.svc.Stats())
}

// Reload re-reads the catalog source and swaps in a fresh catalog.
// POST /api/v1/admin/catalog/reload
func (h *Handler) Reload(c *gin.Context) {
	result, err := h.svc.Reload(c.Request.Context(), "admin")
	if httpkit.HandleError(c, err) {
		return
	}
	httpkit.OK(c, result)
}

// Refresh enqueues a catalog refresh on the job queue and returns immediately.
// POST /api/v1/admin/catalog/refresh
func (h *Handler) Refresh(c *gin.Context) {
	if h.jobs == nil {
		httpkit.HandleError(c, apperr.Unavailable("bakgrundsjobb är inte konfigurerade"))
		return
	}
	if err := h.jobs.EnqueueCatalogRefresh(c.Request.Context(), "admin"); err != nil {
		httpkit.HandleError(c, apperr.Wrap(apperr.KindInternal, "kunde inte schemalägga uppdatering", err))
		return
	}
	httpkit.JSON(c, http.StatusAccepted, gin.H{"status": "scheduled"})
}

// SuggestSynonyms asks the LLM for synonym candidates for an unmapped phrase.
// POST /api/v1/admin/catalog/suggest-synonyms
func (h *Handler) SuggestSynonyms(c *gin.Context) {
	var req SuggestSynonymsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httpkit.Error(c, http.StatusBadRequest, msgInvalidRequest, nil)
		return
	}
	if err := h.val.Struct(req); err != nil {
		httpkit.Error(c, http.StatusBadRequest, msgValidationFailed, err.Error())
		return
	}

	suggestions, err := h.svc.SuggestSynonyms(c.Request.Context(), req.Phrase)
	if httpkit.HandleError(c, err) {
		return
	}
	httpkit.OK(c, SuggestSynonymsResponse{Phrase: req.Phrase, Suggestions: suggestions})
}
