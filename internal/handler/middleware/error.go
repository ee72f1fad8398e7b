package middleware

import (
	"net/http"

	"rental-cart/internal/handler/httperr"
	"rental-cart/internal/pkg/errs"

	"github.com/gin-gonic/gin"
)

// ErrorHandler logs the causes recorded by httperr.AbortWithError and makes
// sure a request that produced nothing still gets an error envelope.
func ErrorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		logger := RequestLogger(c)
		for _, e := range c.Errors {
			resp, _ := e.Meta.(httperr.Response)
			attrs := []any{
				"path", c.FullPath(),
				"status", resp.Status,
				"error", e.Err.Error(),
			}
			if id, ok := GetSessionID(c); ok {
				attrs = append(attrs, "session_id", id)
			}
			if resp.Status >= http.StatusInternalServerError {
				attrs = append(attrs, "stack", errs.ExtractStackLines(e.Err, 12))
				logger.ErrorContext(c.Request.Context(), "request failed", attrs...)
			} else {
				logger.DebugContext(c.Request.Context(), "request rejected", attrs...)
			}
		}

		if c.Writer.Written() {
			return
		}
		// Newest public error wins.
		for i := len(c.Errors) - 1; i >= 0; i-- {
			err := c.Errors[i]
			if !err.IsType(gin.ErrorTypePublic) {
				continue
			}
			if resp, ok := err.Meta.(httperr.Response); ok {
				c.JSON(resp.Status, resp)
				return
			}
		}
		if status := c.Writer.Status(); status != http.StatusOK {
			c.Status(status)
			c.Writer.WriteHeaderNow()
			return
		}
		c.JSON(http.StatusInternalServerError, httperr.NewResponse(http.StatusInternalServerError, "Internal server error", nil))
	}
}

func CustomRecovery() gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if err := recover(); err != nil {
				attrs := []any{"error", err, "path", c.Request.URL.Path}
				if id, ok := GetSessionID(c); ok {
					attrs = append(attrs, "session_id", id)
				}
				RequestLogger(c).Error("recovered from panic", attrs...)

				resp := httperr.NewResponse(http.StatusInternalServerError, "Internal server error", nil)
				c.AbortWithStatusJSON(resp.Status, resp)
			}
		}()
		c.Next()
	}
}
