package conversation

import (
	"errors"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	"maleri_backend/platform/apperr"
	"maleri_backend/platform/httpkit"
	"maleri_backend/platform/validator"
)

const (
	msgInvalidRequest   = "invalid request body"
	msgValidationFailed = "validation failed"
	msgInvalidAudio     = "could not read audio body"

	maxAudioBytes = 10 << 20 // 10 MiB of PCM16 WAV is ~5 minutes of speech
)

// Handler handles HTTP requests for conversations.
type Handler struct {
	svc *Service
	val *validator.Validator
}

// NewHandler creates a new conversation handler.
func NewHandler(svc *Service, val *validator.Validator) *Handler {
	return &Handler{svc: svc, val: val}
}

// Start opens a new conversation.
// POST /api/v1/conversations
func (h *Handler) Start(c *gin.Context) {
	st, reply, err := h.svc.Start(c.Request.Context())
	if httpkit.HandleError(c, err) {
		return
	}
	httpkit.JSON(c, http.StatusCreated, StartConversationResponse{
		ID:     st.ID,
		Prompt: reply.Prompt,
		Step:   reply.Step,
	})
}

// Message feeds one text turn to a conversation.
// POST /api/v1/conversations/:id/messages
func (h *Handler) Message(c *gin.Context) {
	var req MessageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httpkit.Error(c, http.StatusBadRequest, msgInvalidRequest, nil)
		return
	}
	if err := h.val.Struct(req); err != nil {
		httpkit.Error(c, http.StatusBadRequest, msgValidationFailed, err.Error())
		return
	}

	reply, err := h.svc.HandleText(c.Request.Context(), c.Param("id"), req.Text)
	if httpkit.HandleError(c, err) {
		return
	}
	httpkit.OK(c, reply)
}

// Audio feeds one spoken turn, as a WAV body, to a conversation.
// POST /api/v1/conversations/:id/audio
func (h *Handler) Audio(c *gin.Context) {
	audio, err := io.ReadAll(io.LimitReader(c.Request.Body, maxAudioBytes+1))
	if err != nil {
		httpkit.Error(c, http.StatusBadRequest, msgInvalidAudio, nil)
		return
	}
	if len(audio) > maxAudioBytes {
		httpkit.Error(c, http.StatusRequestEntityTooLarge, "audio body too large", nil)
		return
	}

	transcription, reply, err := h.svc.HandleAudio(c.Request.Context(), c.Param("id"), audio)
	if err != nil {
		// Include what was heard when the turn failed after a successful
		// transcription.
		status, msg := http.StatusInternalServerError, "internal error"
		var domainErr *apperr.Error
		if errors.As(err, &domainErr) {
			status, msg = domainErr.HTTPStatus(), domainErr.Message
		}
		if transcription.Text != "" {
			httpkit.Error(c, status, msg, gin.H{"transcription": transcription})
			return
		}
		httpkit.Error(c, status, msg, nil)
		return
	}
	httpkit.OK(c, AudioMessageResponse{Transcription: transcription, Reply: reply})
}

// GetSummary returns the condensed view of a conversation.
// GET /api/v1/conversations/:id/summary
func (h *Handler) GetSummary(c *gin.Context) {
	summary, err := h.svc.GetSummary(c.Request.Context(), c.Param("id"))
	if httpkit.HandleError(c, err) {
		return
	}
	httpkit.OK(c, summary)
}
