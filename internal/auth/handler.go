package auth

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

// Handler handles authentication HTTP requests.
type Handler struct {
	svc *Service
	val *validator.Validator
}

// NewHandler creates a new auth handler.
func NewHandler(svc *Service, val *validator.Validator) *Handler {
	return &Handler{svc: svc, val: val}
}

// Token exchanges the admin password for an access token.
// POST /api/v1/auth/token
func (h *Handler) Token(c *gin.Context) {
	var req TokenRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httpkit.Error(c, http.StatusBadRequest, msgInvalidRequest, nil)
		return
	}
	if err := h.val.Struct(req); err != nil {
		httpkit.Error(c, http.StatusBadRequest, msgValidationFailed, err.Error())
		return
	}

	token, err := h.svc.IssueToken(c.Request.Context(), req.Password)
	if httpkit.HandleError(c, err) {
		return
	}
	httpkit.OK(c, token)
}
