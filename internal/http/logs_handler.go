package http

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/openpdst/dst-service/internal/domain/model"
	"github.com/openpdst/dst-service/internal/i18n"
	"github.com/openpdst/dst-service/internal/service"
)

// LogsHandler provides HTTP handlers for querying request and audit logs.
type LogsHandler struct {
	logging service.LoggingService
}

// NewLogsHandler creates a new logs handler.
func NewLogsHandler(logging service.LoggingService) *LogsHandler {
	return &LogsHandler{logging: logging}
}

// QueryLogs handles GET /api/logs requests.
//
// @Summary      Query request and audit logs
// @Description  Returns stored log entries filtered by request ID, session ID, level, path or time range, newest first.
// @Tags         Logs
// @Produce      json
// @Param        request_id query string false "Request ID"
// @Param        session_id query string false "Session ID"
// @Param        level query string false "Log level (info, warn, error)"
// @Param        path query string false "Path substring"
// @Param        start query string false "Start time (RFC 3339)"
// @Param        end query string false "End time (RFC 3339)"
// @Param        limit query int false "Maximum entries" default(50)
// @Param        skip query int false "Entries to skip"
// @Success      200 {object} dto.SuccessResponse "Log entries with total count"
// @Failure      400 {object} dto.ErrorResponse "Bad request - invalid time bounds"
// @Failure      500 {object} dto.ErrorResponse "Internal server error"
// @Security     BearerAuth
// @Router       /api/logs [get]
func (h *LogsHandler) QueryLogs(c *gin.Context) {
	builder := NewResponseBuilder(c)

	opts, err := logQueryOptions(c)
	if err != nil {
		builder.Error(http.StatusBadRequest, i18n.ErrKeyInvalidRequest, err)
		return
	}

	entries, err := h.logging.QueryLogs(c.Request.Context(), opts)
	if err != nil {
		builder.Error(http.StatusInternalServerError, i18n.ErrKeyInternalError, err)
		return
	}
	total, err := h.logging.CountLogs(c.Request.Context(), opts)
	if err != nil {
		builder.Error(http.StatusInternalServerError, i18n.ErrKeyInternalError, err)
		return
	}

	builder.SuccessOK(map[string]interface{}{
		"entries": entries,
		"total":   total,
	})
}

func logQueryOptions(c *gin.Context) (model.LogQueryOptions, error) {
	opts := model.LogQueryOptions{
		RequestID: c.Query("request_id"),
		SessionID: c.Query("session_id"),
		Level:     c.Query("level"),
		Path:      c.Query("path"),
		Limit:     50,
	}
	if raw := c.Query("limit"); raw != "" {
		if n, err := strconv.Atoi(raw); err == nil && n > 0 {
			opts.Limit = n
		}
	}
	if raw := c.Query("skip"); raw != "" {
		if n, err := strconv.Atoi(raw); err == nil && n > 0 {
			opts.Skip = n
		}
	}
	if raw := c.Query("start"); raw != "" {
		t, err := time.Parse(time.RFC3339, raw)
		if err != nil {
			return opts, err
		}
		opts.StartTime = &t
	}
	if raw := c.Query("end"); raw != "" {
		t, err := time.Parse(time.RFC3339, raw)
		if err != nil {
			return opts, err
		}
		opts.EndTime = &t
	}
	return opts, nil
}
