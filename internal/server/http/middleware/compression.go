package middleware

import (
	"compress/gzip"
	"io"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

// DecompressRequest swaps a gzip encoded request body for its plain form
// before the handlers see it. Pixels and beacons from the storefront send
// compressed payloads, everything else passes through untouched.
func DecompressRequest() gin.HandlerFunc {
	return func(c *gin.Context) {
		encoding := c.GetHeader("Content-Encoding")
		if !strings.Contains(encoding, "gzip") {
			c.Next()
			return
		}

		compressed := c.Request.Body
		plain, err := gzip.NewReader(compressed)
		if err != nil {
			c.AbortWithStatus(http.StatusBadRequest)
			return
		}
		defer func() {
			_ = plain.Close()
			_ = compressed.Close()
		}()

		c.Request.Header.Del("Content-Encoding")
		c.Request.Body = io.NopCloser(plain)
		c.Next()
	}
}
