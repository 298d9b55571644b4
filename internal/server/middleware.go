package server

import (
	"log/slog"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/spacesedan/sentiscope/internal/monitoring"
)

const (
	REQUEST_ID_HEADER = "X-Request-ID"
	REQUEST_ID_KEY    = "request_id"
	UNMATCHED_ROUTE   = "unmatched"
)

// RequestID keeps a caller supplied X-Request-ID, otherwise it assigns a new one.
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(REQUEST_ID_HEADER)
		if _, err := uuid.Parse(id); err != nil {
			id = uuid.NewString()
		}
		c.Set(REQUEST_ID_KEY, id)
		c.Header(REQUEST_ID_HEADER, id)
		c.Next()
	}
}

func ObserveRequests(metrics *monitoring.Metrics) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		elapsed := time.Since(start)

		route := c.FullPath()
		if route == "" {
			route = UNMATCHED_ROUTE
		}
		metrics.ObserveRequest(c.Request.Method, route, c.Writer.Status(), elapsed)

		slog.Info("[HTTP] Request handled",
			slog.String("method", c.Request.Method),
			slog.String("route", route),
			slog.Int("status", c.Writer.Status()),
			slog.Duration("elapsed", elapsed),
			slog.String("request_id", c.GetString(REQUEST_ID_KEY)))
	}
}
