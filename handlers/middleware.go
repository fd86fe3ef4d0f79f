package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"sqlgate/apperr"
	"sqlgate/envelope"
	"sqlgate/telemetry"
)

// RequestLogger logs one line per request through zerolog and records
// request latency when metrics are enabled.
func RequestLogger(metrics *telemetry.Registry) gin.HandlerFunc {
	if metrics == nil {
		metrics = telemetry.Noop()
	}
	latency := metrics.NewHistogramVec("http_request_duration_seconds", "HTTP request latency",
		[]string{"route", "status"}, nil)

	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		elapsed := time.Since(start)
		status := c.Writer.Status()
		route := c.FullPath()
		if route == "" {
			route = "unmatched"
		}
		latency.With(route, http.StatusText(status)).Observe(elapsed.Seconds())

		level := zerolog.DebugLevel
		switch {
		case status >= http.StatusInternalServerError:
			level = zerolog.ErrorLevel
		case status >= http.StatusBadRequest:
			level = zerolog.InfoLevel
		}
		log.WithLevel(level).
			Str("method", c.Request.Method).
			Str("path", c.Request.URL.Path).
			Int("status", status).
			Dur("latency", elapsed).
			Str("client", c.ClientIP()).
			Msg("Request")
	}
}

// Recovery answers panics in handlers with the internal error envelope.
func Recovery() gin.HandlerFunc {
	return gin.CustomRecoveryWithWriter(nil, func(c *gin.Context, recovered interface{}) {
		log.Error().Interface("panic", recovered).Str("path", c.Request.URL.Path).Msg("Handler panicked")
		c.AbortWithStatusJSON(http.StatusInternalServerError,
			envelope.Failure(apperr.New(apperr.Internal, "Internal server error")))
	})
}
