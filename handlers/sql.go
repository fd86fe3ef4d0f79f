package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"sqlgate/apperr"
	"sqlgate/envelope"
	"sqlgate/models"
	"sqlgate/validation"
)

// QueryHandler executes a read-only SQL statement
// @Summary      Execute SQL query
// @Description  Execute a SELECT, SHOW, DESCRIBE or EXPLAIN statement through the connection pool
// @Tags         SQL Execution
// @Accept       json
// @Produce      json
// @Param        request  body      models.QueryRequest  true  "Statement to execute"
// @Success      200      {object}  envelope.Envelope    "Rows returned by the statement"
// @Failure      400      {object}  envelope.Envelope    "Missing query or database error"
// @Failure      403      {object}  envelope.Envelope    "Statement type not permitted"
// @Failure      500      {object}  envelope.Envelope    "Internal server error"
// @Router       /api/query [post]
func (h *Handlers) QueryHandler(c *gin.Context) {
	var req models.QueryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.fail(c, validation.ErrQueryRequired)
		return
	}

	rows, err := h.gateway.RunQuery(c.Request.Context(), req.Query)
	if err != nil {
		h.fail(c, err)
		return
	}

	c.JSON(http.StatusOK, envelope.Rows(rows))
}

// TablesHandler lists the tables of the connected database
// @Summary      List tables
// @Description  Run the table listing statement and return the table names
// @Tags         SQL Execution
// @Produce      json
// @Success      200  {object}  envelope.TablesEnvelope  "Table names"
// @Failure      500  {object}  envelope.TablesEnvelope  "Listing failed"
// @Router       /api/tables [get]
func (h *Handlers) TablesHandler(c *gin.Context) {
	tables, err := h.gateway.ListTables(c.Request.Context())
	if err != nil {
		log.Warn().Err(err).Msg("Listing tables failed")
		c.JSON(http.StatusInternalServerError, envelope.TablesFailure(err))
		return
	}

	c.JSON(http.StatusOK, envelope.Tables(tables))
}

func (h *Handlers) fail(c *gin.Context, err error) {
	if apperr.KindOf(err) == apperr.Internal {
		log.Error().Err(err).Str("path", c.FullPath()).Msg("Unexpected failure")
	}
	c.JSON(envelope.Status(err), envelope.Failure(err))
}
