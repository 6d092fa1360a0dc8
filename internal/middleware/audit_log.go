// Package middleware provides audit logging utilities.
package middleware

import (
	"context"
	"time"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/openpdst/dst-service/internal/domain/model"
	"github.com/openpdst/dst-service/internal/service"
)

// AuditLog logs a user action for audit purposes.
// This should be used for critical actions like login, saving sessions,
// drug reference updates, etc.
func AuditLog(loggingService service.LoggingService, c *gin.Context, actionType string, message string, fields map[string]interface{}) {
	if loggingService == nil {
		return
	}
	entry := buildAuditEntry(c, actionType, message, fields)
	entry.Level = "info"
	dispatchAuditEntry(loggingService, entry)
}

// AuditLogError logs a failed action for audit purposes.
func AuditLogError(loggingService service.LoggingService, c *gin.Context, actionType string, message string, err error, fields map[string]interface{}) {
	if loggingService == nil {
		return
	}
	entry := buildAuditEntry(c, actionType, message, fields)
	entry.Level = "error"
	entry.Error = err.Error()
	dispatchAuditEntry(loggingService, entry)
}

func buildAuditEntry(c *gin.Context, actionType, message string, fields map[string]interface{}) *model.LogEntry {
	entry := &model.LogEntry{
		Timestamp:  time.Now(),
		Message:    message,
		RequestID:  GetRequestID(c),
		Method:     c.Request.Method,
		Path:       c.Request.URL.Path,
		IP:         c.ClientIP(),
		ActionType: actionType,
		Fields:     fields,
	}

	// Capture user information if available
	if userID, exists := c.Get("user_id"); exists {
		if id, ok := userID.(primitive.ObjectID); ok {
			entry.UserID = id.Hex()
		}
	}
	if sessionID := c.Query("session_id"); sessionID != "" {
		entry.SessionID = sessionID
	}

	return entry
}

// dispatchAuditEntry stores the entry asynchronously to avoid blocking,
// preferring the buffered async logger when it is initialized.
func dispatchAuditEntry(loggingService service.LoggingService, entry *model.LogEntry) {
	if al := GetAsyncLogger(); al != nil {
		al.Log(entry)
		return
	}
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = loggingService.CreateLog(ctx, entry)
	}()
}
