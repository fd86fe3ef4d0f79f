// Package envelope shapes every gateway outcome into the small set of JSON
// bodies clients understand. Nothing here has side effects.
package envelope

import (
	"net/http"
	"strings"
	"time"

	"sqlgate/apperr"
	"sqlgate/models"
)

// Envelope is the body of every execution response. success=true never
// carries Error; success=false never carries Data. Data is a pointer so an
// empty result set still encodes as [].
type Envelope struct {
	Success  bool          `json:"success"`
	Data     *[]models.Row `json:"data,omitempty"`
	RowCount *int          `json:"rowCount,omitempty"`
	Error    string        `json:"error,omitempty"`
	Code     string        `json:"code,omitempty"`
}

type TablesEnvelope struct {
	Success bool      `json:"success"`
	Tables  *[]string `json:"tables,omitempty"`
	Error   string    `json:"error,omitempty"`
	Code    string    `json:"code,omitempty"`
}

// TranslationEnvelope extends the execution envelope with the translation
// fields. Fields the upstream did not supply are omitted.
type TranslationEnvelope struct {
	Success bool   `json:"success"`
	Error   string `json:"error,omitempty"`
	Code    string `json:"code,omitempty"`
	*models.Translation
}

type HealthEnvelope struct {
	Status     string `json:"status"`
	Database   string `json:"database"`
	Translator string `json:"translator,omitempty"`
	Timestamp  string `json:"timestamp"`
}

// Rows builds a success envelope; data is always an array, rowCount its length.
func Rows(rows []models.Row) Envelope {
	if rows == nil {
		rows = []models.Row{}
	}
	n := len(rows)
	return Envelope{Success: true, Data: &rows, RowCount: &n}
}

var fallbackMessages = map[apperr.Kind]string{
	apperr.Validation:          "invalid request",
	apperr.PolicyRejection:     "statement type not permitted",
	apperr.ExecutionFailure:    "database error",
	apperr.UpstreamUnavailable: "translation service unavailable",
	apperr.Internal:            "Internal server error",
}

// message returns the client-facing text for err. A failure always carries
// one, even when the driver reported an empty message.
func message(e *apperr.E) string {
	if strings.TrimSpace(e.Message) != "" {
		return e.Message
	}
	if m, ok := fallbackMessages[e.Kind]; ok {
		return m
	}
	return fallbackMessages[apperr.Internal]
}

// Failure builds a failure envelope from any error. Errors outside the
// taxonomy are reported with a generic message.
func Failure(err error) Envelope {
	e := apperr.As(err)
	return Envelope{Success: false, Error: message(e), Code: e.Code}
}

func Tables(names []string) TablesEnvelope {
	if names == nil {
		names = []string{}
	}
	return TablesEnvelope{Success: true, Tables: &names}
}

func TablesFailure(err error) TablesEnvelope {
	e := apperr.As(err)
	return TablesEnvelope{Success: false, Error: message(e), Code: e.Code}
}

func Translation(t models.Translation) TranslationEnvelope {
	return TranslationEnvelope{Success: true, Translation: &t}
}

func TranslationFailure(err error) TranslationEnvelope {
	e := apperr.As(err)
	return TranslationEnvelope{Success: false, Error: message(e), Code: e.Code}
}

// Health renders a health report. translator is "" when the translation
// service is not part of the report.
func Health(databaseReachable bool, translator string, at time.Time) HealthEnvelope {
	database := "disconnected"
	if databaseReachable {
		database = "connected"
	}
	return HealthEnvelope{
		Status:     "ok",
		Database:   database,
		Translator: translator,
		Timestamp:  at.UTC().Format("2006-01-02T15:04:05.000Z07:00"),
	}
}

// Status maps an error to its HTTP status code.
func Status(err error) int {
	switch apperr.KindOf(err) {
	case apperr.Validation:
		return http.StatusBadRequest
	case apperr.PolicyRejection:
		return http.StatusForbidden
	case apperr.ExecutionFailure:
		return http.StatusBadRequest
	case apperr.UpstreamUnavailable:
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}
