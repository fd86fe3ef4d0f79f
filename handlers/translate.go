package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"sqlgate/ai"
	"sqlgate/envelope"
	"sqlgate/models"
	"sqlgate/validation"
)

const (
	defaultJournalLimit = 20
	maxJournalLimit     = 200
)

// TranslateHandler turns natural language into SQL without executing it
// @Summary      Translate natural language to SQL
// @Description  Forward the request to the translation service and relay the generated SQL for review. The SQL is not executed; submit it to /api/query to run it.
// @Tags         Translation
// @Accept       json
// @Produce      json
// @Param        request  body      models.TranslateRequest       true  "Natural-language request"
// @Success      200      {object}  envelope.TranslationEnvelope  "Generated SQL and metadata"
// @Failure      400      {object}  envelope.TranslationEnvelope  "Missing query"
// @Failure      502      {object}  envelope.TranslationEnvelope  "Translation service unavailable"
// @Failure      503      {object}  envelope.TranslationEnvelope  "Translation not configured"
// @Router       /api/translate [post]
func (h *Handlers) TranslateHandler(c *gin.Context) {
	if h.translator == nil {
		c.JSON(http.StatusServiceUnavailable, envelope.TranslationFailure(ai.ErrUnavailable))
		return
	}

	var req models.TranslateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, envelope.TranslationFailure(validation.ErrQueryRequired))
		return
	}

	translation, err := h.translator.Translate(c.Request.Context(), req.Query)
	if err != nil {
		c.JSON(envelope.Status(err), envelope.TranslationFailure(err))
		return
	}

	if h.journal != nil {
		if err := h.journal.Record(translation.NaturalQuery, translation); err != nil {
			log.Warn().Err(err).Msg("Failed to record translation")
		}
	}

	c.JSON(http.StatusOK, envelope.Translation(translation))
}

// TranslationsHandler lists recently generated translations
// @Summary      List recent translations
// @Description  Newest first. Only available when the translation journal is enabled.
// @Tags         Translation
// @Produce      json
// @Param        limit  query     int                            false  "Maximum entries (default 20, max 200)"
// @Success      200    {object}  map[string][]models.JournalEntry  "Recent translations"
// @Failure      503    {object}  map[string]string                 "Journal not enabled"
// @Failure      500    {object}  map[string]string                 "Failed to read journal"
// @Router       /api/translations [get]
func (h *Handlers) TranslationsHandler(c *gin.Context) {
	if h.journal == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"success": false, "error": "translation journal is not enabled"})
		return
	}

	limit := defaultJournalLimit
	if raw := c.Query("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 1 {
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "limit must be a positive integer"})
			return
		}
		limit = min(n, maxJournalLimit)
	}

	entries, err := h.journal.Recent(limit)
	if err != nil {
		log.Error().Err(err).Msg("Failed to read translation journal")
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "Failed to read translation journal"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "translations": entries})
}
