package http

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/openpdst/dst-service/internal/domain/dto"
	"github.com/openpdst/dst-service/internal/i18n"
	"github.com/openpdst/dst-service/internal/service"
)

// SessionsHandler provides HTTP handlers for protocol sessions.
type SessionsHandler struct {
	sessions service.SessionService
}

// NewSessionsHandler creates a new session handler.
func NewSessionsHandler(sessions service.SessionService) *SessionsHandler {
	return &SessionsHandler{sessions: sessions}
}

// SaveSession handles POST /api/sessions requests.
//
// @Summary      Save a protocol session
// @Description  Persists the per-drug inputs of a protocol run so a technician can resume between weighing and final dilution.
// @Tags         Sessions
// @Accept       json
// @Produce      json
// @Param        request body dto.SaveSessionRequest true "Session snapshot"
// @Success      201 {object} dto.SuccessResponse "Saved session"
// @Failure      400 {object} dto.ErrorResponse "Bad request - invalid input"
// @Failure      500 {object} dto.ErrorResponse "Internal server error"
// @Security     BearerAuth
// @Router       /api/sessions [post]
func (h *SessionsHandler) SaveSession(c *gin.Context) {
	builder := NewResponseBuilder(c)

	var req dto.SaveSessionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		builder.Error(http.StatusBadRequest, i18n.ErrKeyInvalidRequestBody, err)
		return
	}

	session, err := h.sessions.Save(c.Request.Context(), userIDFromContext(c), &req)
	if err != nil {
		builder.Error(http.StatusInternalServerError, i18n.ErrKeyInternalError, err)
		return
	}
	builder.SuccessCreated(session)
}

// GetSession handles GET /api/sessions/:session_id requests.
//
// @Summary      Get a protocol session
// @Tags         Sessions
// @Produce      json
// @Param        session_id path string true "Session identifier"
// @Success      200 {object} dto.SuccessResponse "Session snapshot"
// @Failure      404 {object} dto.ErrorResponse "Session not found"
// @Failure      500 {object} dto.ErrorResponse "Internal server error"
// @Security     BearerAuth
// @Router       /api/sessions/{session_id} [get]
func (h *SessionsHandler) GetSession(c *gin.Context) {
	builder := NewResponseBuilder(c)

	session, err := h.sessions.Get(c.Request.Context(), c.Param("session_id"))
	if err != nil {
		if errors.Is(err, service.ErrSessionNotFound) {
			builder.Error(http.StatusNotFound, i18n.ErrKeyNotFound, err)
		} else {
			builder.Error(http.StatusInternalServerError, i18n.ErrKeyInternalError, err)
		}
		return
	}
	builder.SuccessOK(session)
}

// ListSessions handles GET /api/sessions requests.
//
// @Summary      List protocol sessions
// @Description  Returns recent sessions, most recently updated first. Authenticated requests are scoped to the calling user.
// @Tags         Sessions
// @Produce      json
// @Param        limit query int false "Maximum number of sessions" default(20)
// @Success      200 {object} dto.SuccessResponse "Sessions"
// @Failure      500 {object} dto.ErrorResponse "Internal server error"
// @Security     BearerAuth
// @Router       /api/sessions [get]
func (h *SessionsHandler) ListSessions(c *gin.Context) {
	builder := NewResponseBuilder(c)

	limit := 20
	if raw := c.Query("limit"); raw != "" {
		if n, err := strconv.Atoi(raw); err == nil && n > 0 {
			limit = n
		}
	}

	sessions, err := h.sessions.List(c.Request.Context(), userIDFromContext(c), limit)
	if err != nil {
		builder.Error(http.StatusInternalServerError, i18n.ErrKeyInternalError, err)
		return
	}
	builder.SuccessOK(sessions)
}

// DeleteSession handles DELETE /api/sessions/:session_id requests.
//
// @Summary      Delete a protocol session
// @Tags         Sessions
// @Produce      json
// @Param        session_id path string true "Session identifier"
// @Success      200 {object} dto.SuccessResponse "Deleted"
// @Failure      500 {object} dto.ErrorResponse "Internal server error"
// @Security     BearerAuth
// @Router       /api/sessions/{session_id} [delete]
func (h *SessionsHandler) DeleteSession(c *gin.Context) {
	builder := NewResponseBuilder(c)

	sessionID := c.Param("session_id")
	if err := h.sessions.Delete(c.Request.Context(), sessionID); err != nil {
		builder.Error(http.StatusInternalServerError, i18n.ErrKeyInternalError, err)
		return
	}
	builder.SuccessOK(map[string]string{"session_id": sessionID})
}

// userIDFromContext returns the authenticated user's ID as a hex string,
// or empty when the request is unauthenticated.
func userIDFromContext(c *gin.Context) string {
	if userID, exists := c.Get("user_id"); exists {
		if id, ok := userID.(primitive.ObjectID); ok {
			return id.Hex()
		}
	}
	return ""
}
