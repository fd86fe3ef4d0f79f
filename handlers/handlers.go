package handlers

import (
	"context"
	"time"

	"sqlgate/cache"
	"sqlgate/gateway"
	"sqlgate/models"
)

// @title           sqlgate Query Gateway API
// @version         1.0
// @description     Run read-only SQL against the configured database and translate natural language into SQL for review.

// @license.name  MIT

// @host      localhost:3000
// @BasePath  /

// @schemes   http https

// Translator turns natural-language text into SQL.
type Translator interface {
	Translate(ctx context.Context, text string) (models.Translation, error)
	Ping(ctx context.Context) bool
}

// Journal records translations for later review.
type Journal interface {
	Record(naturalQuery string, t models.Translation) error
	Recent(limit int) ([]models.JournalEntry, error)
}

type Handlers struct {
	gateway             *gateway.Gateway
	translator          Translator
	journal             Journal
	status              *cache.Cache
	translatorHealthTTL time.Duration
}

// New wires the handlers. translator and journal may be nil when the
// corresponding feature is disabled.
func New(gw *gateway.Gateway, translator Translator, journal Journal, status *cache.Cache, translatorHealthTTL time.Duration) *Handlers {
	if status == nil {
		status = cache.New(translatorHealthTTL)
	}
	return &Handlers{
		gateway:             gw,
		translator:          translator,
		journal:             journal,
		status:              status,
		translatorHealthTTL: translatorHealthTTL,
	}
}
