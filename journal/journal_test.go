package journal

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"sqlgate/models"
)

func openTestJournal(t *testing.T) *Journal {
	t.Helper()
	j, err := OpenInMemory()
	require.NoError(t, err)
	t.Cleanup(func() { j.Close() })
	return j
}

func TestRecordAndRecent(t *testing.T) {
	j := openTestJournal(t)

	base := time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)
	step := 0
	j.now = func() time.Time {
		step++
		return base.Add(time.Duration(step) * time.Second)
	}

	require.NoError(t, j.Record("all actors", models.Translation{SQLText: "SELECT * FROM actor"}))
	require.NoError(t, j.Record("customers from Spain", models.Translation{
		SQLText:    "SELECT * FROM customer WHERE country='Spain'",
		ModelInfo:  &models.ModelInfo{Name: "gpt-4o", Provider: "openai"},
		Validation: &models.TranslationValidation{Warnings: []string{"no LIMIT"}},
	}))
	require.NoError(t, j.Record("films", models.Translation{SQLText: "SELECT * FROM film"}))

	entries, err := j.Recent(2)
	require.NoError(t, err)
	require.Len(t, entries, 2)

	assert.Equal(t, "films", entries[0].NaturalQuery)
	assert.Equal(t, "customers from Spain", entries[1].NaturalQuery)
	assert.Equal(t, "openai", entries[1].ModelInfo.Provider)
	assert.Equal(t, []string{"no LIMIT"}, entries[1].Warnings)
	assert.Equal(t, "2024-05-01T10:00:02Z", entries[1].Timestamp)
}

func TestRecent_Empty(t *testing.T) {
	j := openTestJournal(t)

	entries, err := j.Recent(10)
	require.NoError(t, err)
	assert.Empty(t, entries)

	entries, err = j.Recent(0)
	require.NoError(t, err)
	assert.NotNil(t, entries)
}
