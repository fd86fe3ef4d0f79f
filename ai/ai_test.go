package ai

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"sqlgate/apperr"
)

func newUpstream(t *testing.T, handler http.HandlerFunc) *Translator {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return New(srv.URL+"/", 5*time.Second)
}

func TestTranslate_RelaysStructuredOutput(t *testing.T) {
	var received map[string]string
	tr := newUpstream(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/generate-sql", r.URL.Path)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&received))

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{
			"success": true,
			"sql_query": "SELECT * FROM customer WHERE country='Spain'",
			"natural_query": "show me all customers from Spain",
			"llm_info": {"provider": "openai", "model": "gpt-4o"},
			"explanation": "Filters customers by country",
			"considerations": "",
			"validation": {"is_select": true, "warnings": []}
		}`))
	})

	got, err := tr.Translate(context.Background(), "show me all customers from Spain")
	require.NoError(t, err)

	assert.Equal(t, map[string]string{"query": "show me all customers from Spain"}, received)
	assert.Equal(t, "SELECT * FROM customer WHERE country='Spain'", got.SQLText)
	assert.Equal(t, "show me all customers from Spain", got.NaturalQuery)
	require.NotNil(t, got.ModelInfo)
	assert.Equal(t, "gpt-4o", got.ModelInfo.Name)
	assert.Equal(t, "openai", got.ModelInfo.Provider)
	require.NotNil(t, got.Explanation)
	assert.Equal(t, "Filters customers by country", *got.Explanation)
	require.NotNil(t, got.Considerations)
	assert.Equal(t, "", *got.Considerations)
	assert.Nil(t, got.Alternatives)
	require.NotNil(t, got.Validation)
	assert.Empty(t, got.Validation.Warnings)
}

func TestTranslate_MinimalResponse(t *testing.T) {
	tr := newUpstream(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"sqlText": " SELECT * FROM customer WHERE country='Spain' "}`))
	})

	got, err := tr.Translate(context.Background(), "show me all customers from Spain")
	require.NoError(t, err)

	assert.Equal(t, "SELECT * FROM customer WHERE country='Spain'", got.SQLText)
	assert.Equal(t, "show me all customers from Spain", got.NaturalQuery)
	assert.Nil(t, got.ModelInfo)
	assert.Nil(t, got.Explanation)
	assert.Nil(t, got.Validation)
}

// Generated SQL is relayed as-is, even when it would be rejected on execution.
func TestTranslate_DoesNotClassify(t *testing.T) {
	tr := newUpstream(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"sql_query": "DELETE FROM customer", "validation": {"warnings": ["Consulta contiene operaciones peligrosas"]}}`))
	})

	got, err := tr.Translate(context.Background(), "remove every customer")
	require.NoError(t, err)
	assert.Equal(t, "DELETE FROM customer", got.SQLText)
	assert.Equal(t, []string{"Consulta contiene operaciones peligrosas"}, got.Validation.Warnings)
}

func TestTranslate_UpstreamFailuresAreUnavailable(t *testing.T) {
	tests := []struct {
		name    string
		handler http.HandlerFunc
	}{
		{
			name: "http 500",
			handler: func(w http.ResponseWriter, r *http.Request) {
				http.Error(w, `{"detail":"Internal server error"}`, http.StatusInternalServerError)
			},
		},
		{
			name: "http 400 from upstream",
			handler: func(w http.ResponseWriter, r *http.Request) {
				http.Error(w, `{"detail":"bad"}`, http.StatusBadRequest)
			},
		},
		{
			name: "not json",
			handler: func(w http.ResponseWriter, r *http.Request) {
				_, _ = w.Write([]byte("<html>oops</html>"))
			},
		},
		{
			name: "success false",
			handler: func(w http.ResponseWriter, r *http.Request) {
				_, _ = w.Write([]byte(`{"success": false, "error": "model overloaded"}`))
			},
		},
		{
			name: "no sql",
			handler: func(w http.ResponseWriter, r *http.Request) {
				_, _ = w.Write([]byte(`{"success": true, "sql_query": "  "}`))
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tr := newUpstream(t, tt.handler)

			_, err := tr.Translate(context.Background(), "list films")

			require.Error(t, err)
			assert.Equal(t, apperr.UpstreamUnavailable, apperr.KindOf(err))
			assert.Equal(t, "translation service unavailable", apperr.As(err).Message)
		})
	}
}

func TestTranslate_Unreachable(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	url := srv.URL
	srv.Close()

	tr := New(url, time.Second)
	_, err := tr.Translate(context.Background(), "list films")

	require.Error(t, err)
	assert.Equal(t, ErrUnavailable, err)
}

func TestTranslate_EmptyTextIsValidation(t *testing.T) {
	called := false
	tr := newUpstream(t, func(w http.ResponseWriter, r *http.Request) { called = true })

	_, err := tr.Translate(context.Background(), "   ")

	assert.Equal(t, apperr.Validation, apperr.KindOf(err))
	assert.False(t, called)
}

func TestPing(t *testing.T) {
	tr := newUpstream(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/health/basic" {
			_, _ = w.Write([]byte(`{"status":"ok"}`))
			return
		}
		w.WriteHeader(http.StatusNotFound)
	})
	assert.True(t, tr.Ping(context.Background()))

	down := New("http://127.0.0.1:1", 200*time.Millisecond)
	assert.False(t, down.Ping(context.Background()))
}

func TestTranslate_IgnoresCallerCancellation(t *testing.T) {
	tr := newUpstream(t, func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(30 * time.Millisecond)
		_, _ = w.Write([]byte(`{"success": true, "sql_query": "SELECT 1"}`))
	})

	ctx, cancel := context.WithCancel(context.Background())
	go func() {
		time.Sleep(5 * time.Millisecond)
		cancel()
	}()

	got, err := tr.Translate(ctx, "count the actors")
	require.NoError(t, err)
	assert.Equal(t, "SELECT 1", got.SQLText)
}

func TestTruncate_KeepsRunesWhole(t *testing.T) {
	assert.Equal(t, "corto", truncate("corto", 10))
	assert.Equal(t, "cañ...", truncate("cañón", 3))

	got := truncate(strings.Repeat("ñ", 150), 100)
	assert.True(t, utf8.ValidString(got))
	assert.Equal(t, strings.Repeat("ñ", 100)+"...", got)
}
