package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func TestDefaultTimeoutConfig(t *testing.T) {
	cfg := DefaultTimeoutConfig()

	assert.Equal(t, 30*time.Second, cfg.Timeout)
	assert.Equal(t, "Request timeout", cfg.ErrorMessage)
}

func TestTimeout(t *testing.T) {
	gin.SetMode(gin.TestMode)

	newRouter := func(timeout time.Duration, handler gin.HandlerFunc) *gin.Engine {
		router := gin.New()
		router.Use(Timeout(TimeoutConfig{Timeout: timeout, ErrorMessage: "timeout"}))
		router.POST("/protocol/stage-one", handler)
		return router
	}

	t.Run("request inside the deadline succeeds", func(t *testing.T) {
		router := newRouter(time.Second, func(c *gin.Context) {
			time.Sleep(10 * time.Millisecond)
			c.Status(http.StatusOK)
		})

		req := httptest.NewRequest(http.MethodPost, "/protocol/stage-one", nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("handler sees a context deadline", func(t *testing.T) {
		hasDeadline := false
		router := newRouter(time.Second, func(c *gin.Context) {
			_, hasDeadline = c.Request.Context().Deadline()
			c.Status(http.StatusOK)
		})

		req := httptest.NewRequest(http.MethodPost, "/protocol/stage-one", nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.True(t, hasDeadline)
		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("repeated fast requests all succeed", func(t *testing.T) {
		router := newRouter(100*time.Millisecond, func(c *gin.Context) {
			c.Status(http.StatusOK)
		})

		for i := 0; i < 5; i++ {
			req := httptest.NewRequest(http.MethodPost, "/protocol/stage-one", nil)
			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)
			assert.Equal(t, http.StatusOK, w.Code)
		}
	})
}

func TestTimeoutWithDuration(t *testing.T) {
	gin.SetMode(gin.TestMode)

	for _, timeout := range []time.Duration{100 * time.Millisecond, time.Second, 5 * time.Second} {
		router := gin.New()
		router.Use(TimeoutWithDuration(timeout))
		router.GET("/drugs", func(c *gin.Context) {
			c.Status(http.StatusOK)
		})

		req := httptest.NewRequest(http.MethodGet, "/drugs", nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
	}
}
