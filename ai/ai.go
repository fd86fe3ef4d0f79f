// Package ai delegates natural-language translation to the external SQL
// generation service. It relays what the service returns and never
// classifies or executes the generated statement.
package ai

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/rs/zerolog/log"

	"sqlgate/apperr"
	"sqlgate/models"
	"sqlgate/validation"
)

// ErrUnavailable is the single failure clients see for any translation
// problem, whether network or upstream.
var ErrUnavailable = apperr.New(apperr.UpstreamUnavailable, "translation service unavailable").
	WithCode("UPSTREAM_UNAVAILABLE")

type Translator struct {
	baseURL    string
	httpClient *http.Client
}

type generateRequest struct {
	Query string `json:"query"`
}

type generateResponse struct {
	Success        *bool   `json:"success"`
	SQLQuery       *string `json:"sql_query"`
	SQLText        *string `json:"sqlText"`
	NaturalQuery   string  `json:"natural_query"`
	Explanation    *string `json:"explanation"`
	Considerations *string `json:"considerations"`
	Alternatives   *string `json:"alternatives"`
	LLMInfo        *struct {
		Provider string `json:"provider"`
		Model    string `json:"model"`
	} `json:"llm_info"`
	Validation *struct {
		Warnings []string `json:"warnings"`
	} `json:"validation"`
	Error string `json:"error"`
}

// New returns a Translator for the service at baseURL. timeout bounds each
// HTTP exchange; zero means no client-side timeout.
func New(baseURL string, timeout time.Duration) *Translator {
	return &Translator{
		baseURL:    strings.TrimSuffix(baseURL, "/"),
		httpClient: &http.Client{Timeout: timeout},
	}
}

// Translate sends text to <base>/generate-sql and normalizes the reply. No
// retry is attempted, and the caller's cancellation is ignored; only the
// client timeout bounds the exchange.
func (t *Translator) Translate(ctx context.Context, text string) (models.Translation, error) {
	ctx = context.WithoutCancel(ctx)

	prompt, err := validation.ValidatePrompt(text)
	if err != nil {
		return models.Translation{}, err
	}

	body, err := json.Marshal(generateRequest{Query: prompt})
	if err != nil {
		return models.Translation{}, apperr.Wrap(apperr.Internal, "Internal server error", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, t.baseURL+"/generate-sql", bytes.NewReader(body))
	if err != nil {
		return models.Translation{}, t.unavailable(err)
	}
	req.Header.Set("Content-Type", "application/json")

	start := time.Now()
	resp, err := t.httpClient.Do(req)
	if err != nil {
		return models.Translation{}, t.unavailable(err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return models.Translation{}, t.unavailable(fmt.Errorf("failed to read response: %w", err))
	}

	if resp.StatusCode != http.StatusOK {
		return models.Translation{}, t.unavailable(fmt.Errorf("translation service returned status %d: %s",
			resp.StatusCode, truncate(string(data), 200)))
	}

	var decoded generateResponse
	if err := json.Unmarshal(data, &decoded); err != nil {
		return models.Translation{}, t.unavailable(fmt.Errorf("failed to unmarshal response: %w", err))
	}

	if decoded.Success != nil && !*decoded.Success {
		return models.Translation{}, t.unavailable(fmt.Errorf("translation service reported failure: %s", decoded.Error))
	}

	translation, err := normalize(prompt, decoded)
	if err != nil {
		return models.Translation{}, t.unavailable(err)
	}

	log.Info().
		Dur("took", time.Since(start)).
		Str("natural_query", truncate(prompt, 100)).
		Msg("Translation received")
	return translation, nil
}

func normalize(prompt string, r generateResponse) (models.Translation, error) {
	sqlText := r.SQLQuery
	if sqlText == nil {
		sqlText = r.SQLText
	}
	if sqlText == nil || strings.TrimSpace(*sqlText) == "" {
		return models.Translation{}, fmt.Errorf("translation service returned no SQL")
	}

	out := models.Translation{
		SQLText:        strings.TrimSpace(*sqlText),
		NaturalQuery:   r.NaturalQuery,
		Explanation:    r.Explanation,
		Considerations: r.Considerations,
		Alternatives:   r.Alternatives,
	}
	if out.NaturalQuery == "" {
		out.NaturalQuery = prompt
	}
	if r.LLMInfo != nil {
		out.ModelInfo = &models.ModelInfo{Name: r.LLMInfo.Model, Provider: r.LLMInfo.Provider}
	}
	if r.Validation != nil {
		warnings := r.Validation.Warnings
		if warnings == nil {
			warnings = []string{}
		}
		out.Validation = &models.TranslationValidation{Warnings: warnings}
	}
	return out, nil
}

func (t *Translator) unavailable(cause error) error {
	log.Warn().Err(cause).Str("base_url", t.baseURL).Msg("Translation service unavailable")
	return ErrUnavailable
}

// Ping reports whether the service answers its basic health endpoint.
func (t *Translator) Ping(ctx context.Context) bool {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, t.baseURL+"/health/basic", nil)
	if err != nil {
		return false
	}

	resp, err := t.httpClient.Do(req)
	if err != nil {
		log.Debug().Err(err).Msg("Translation service ping failed")
		return false
	}
	defer resp.Body.Close()
	_, _ = io.Copy(io.Discard, resp.Body)

	return resp.StatusCode == http.StatusOK
}

func truncate(s string, n int) string {
	if utf8.RuneCountInString(s) <= n {
		return s
	}
	runes := []rune(s)
	return string(runes[:n]) + "..."
}
