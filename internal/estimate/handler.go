package estimate

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"maleri_backend/platform/httpkit"
	"maleri_backend/platform/validator"
)

const (
	msgInvalidRequest   = "invalid request body"
	msgValidationFailed = "validation failed"
)

// Handler handles HTTP requests for estimate generation.
type Handler struct {
	svc *Service
	val *validator.Validator
}

// NewHandler creates a new estimate handler.
func NewHandler(svc *Service, val *validator.Validator) *Handler {
	return &Handler{svc: svc, val: val}
}

// Generate produces a priced estimate from a batch of task descriptions.
// POST /api/v1/estimates
func (h *Handler) Generate(c *gin.Context) {
	var req GenerateEstimateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httpkit.Error(c, http.StatusBadRequest, msgInvalidRequest, nil)
		return
	}
	if err := h.val.Struct(req); err != nil {
		httpkit.Error(c, http.StatusBadRequest, msgValidationFailed, err.Error())
		return
	}

	result, err := h.svc.Generate(c.Request.Context(), req)
	if httpkit.HandleError(c, err) {
		return
	}
	httpkit.OK(c, result)
}
