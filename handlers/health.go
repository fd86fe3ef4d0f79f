package handlers

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"sqlgate/envelope"
)

const translatorHealthKey = "translator_health"

// HealthHandler reports database reachability and translation service status
// @Summary      Health check
// @Description  Probe the database through the connection pool. An unreachable database is reported, not treated as an error.
// @Tags         Health
// @Produce      json
// @Success      200  {object}  envelope.HealthEnvelope  "Service health status"
// @Failure      500  {object}  map[string]string        "Health check itself failed"
// @Router       /health [get]
func (h *Handlers) HealthHandler(c *gin.Context) {
	defer func() {
		if r := recover(); r != nil {
			log.Error().Interface("panic", r).Msg("Health check failed")
			c.JSON(http.StatusInternalServerError, gin.H{"status": "error", "message": fmt.Sprint(r)})
		}
	}()

	health := h.gateway.HealthCheck(c.Request.Context())

	c.JSON(http.StatusOK, envelope.Health(health.DatabaseReachable, h.translatorStatus(c), health.Timestamp))
}

func (h *Handlers) translatorStatus(c *gin.Context) string {
	if h.translator == nil {
		return "not_configured"
	}

	ok := h.status.RememberBool(translatorHealthKey, h.translatorHealthTTL, func() bool {
		return h.translator.Ping(c.Request.Context())
	})
	if ok {
		return "available"
	}
	return "unavailable"
}
