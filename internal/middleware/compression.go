// Package middleware provides the HTTP middleware stack for the DST service.
package middleware

import (
	"github.com/gin-contrib/gzip"
	"github.com/gin-gonic/gin"
)

// Compression compresses responses with gzip for clients that accept it.
// Batch results and log queries are the main beneficiaries; single
// calculation responses are small either way.
func Compression() gin.HandlerFunc {
	return gzip.Gzip(gzip.DefaultCompression)
}
