package middleware

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func TestCompression(t *testing.T) {
	gin.SetMode(gin.TestMode)

	// A batch-result sized payload, big enough to be worth compressing.
	payload := strings.Repeat(`{"drug_id":"inh","estimated_weight_mg":0.084}`, 50)

	newRouter := func() *gin.Engine {
		router := gin.New()
		router.Use(Compression())
		router.GET("/batch", func(c *gin.Context) {
			c.String(http.StatusOK, payload)
		})
		return router
	}

	t.Run("gzips when the client accepts it", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/batch", nil)
		req.Header.Set("Accept-Encoding", "gzip, deflate")
		w := httptest.NewRecorder()

		newRouter().ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "gzip", w.Header().Get("Content-Encoding"))
		assert.Less(t, w.Body.Len(), len(payload))
	})

	t.Run("leaves the body alone otherwise", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/batch", nil)
		w := httptest.NewRecorder()

		newRouter().ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Empty(t, w.Header().Get("Content-Encoding"))
		assert.Equal(t, payload, w.Body.String())
	})
}
