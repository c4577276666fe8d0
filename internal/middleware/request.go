package middleware

import (
	"log/slog"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/karpovich/webcore/pkg/metrics"
	"github.com/karpovich/webcore/pkg/platform"
)

// RequestIDKey is the gin context key storing the current request id.
const RequestIDKey = "request_id"

// PlatformKey is the gin context key storing the detected client platform.
const PlatformKey = "client_platform"

// RequestID ensures each incoming request has a traceable identifier.
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		requestID := c.GetHeader("X-Request-ID")
		if requestID == "" {
			requestID = uuid.NewString()
		}
		c.Set(RequestIDKey, requestID)
		c.Writer.Header().Set("X-Request-ID", requestID)
		c.Next()
	}
}

// ClientPlatform classifies the request's client platform, stores it in the
// gin context and counts it.
func ClientPlatform() gin.HandlerFunc {
	return func(c *gin.Context) {
		p := platform.Detect(c.Request)
		c.Set(PlatformKey, string(p))
		metrics.ObserveClientPlatform(string(p))
		c.Next()
	}
}

// AccessLogger prints structured logs for each request.
func AccessLogger(logger *slog.Logger) gin.HandlerFunc {
	if logger == nil {
		logger = slog.Default()
	}
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		duration := time.Since(start)
		status := c.Writer.Status()
		route := c.FullPath()
		if route == "" {
			route = "<unmatched>"
		}

		logger.Info("http request",
			"request_id", RequestIDFromContext(c),
			"method", c.Request.Method,
			"path", c.Request.URL.Path,
			"status", status,
			"platform", c.GetString(PlatformKey),
			"latency_ms", duration.Milliseconds(),
			"client_ip", c.ClientIP(),
		)

		metrics.ObserveHTTPRequest(c.Request.Method, route, status, duration)
	}
}

// RequestIDFromContext returns the request id stored in the gin context.
func RequestIDFromContext(c *gin.Context) string {
	if value, exists := c.Get(RequestIDKey); exists {
		if str, ok := value.(string); ok {
			return str
		}
	}
	return ""
}
