package apperr

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestE_Error(t *testing.T) {
	tests := []struct {
		name     string
		err      *E
		expected string
	}{
		{
			name:     "without cause",
			err:      New(Validation, "query required"),
			expected: "validation: query required",
		},
		{
			name:     "with cause",
			err:      Wrap(UpstreamUnavailable, "translation service unavailable", errors.New("dial tcp: refused")),
			expected: "upstream_unavailable: translation service unavailable: dial tcp: refused",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.err.Error())
		})
	}
}

func TestKindOf(t *testing.T) {
	wrapped := fmt.Errorf("running: %w", New(PolicyRejection, "nope"))

	assert.Equal(t, PolicyRejection, KindOf(wrapped))
	assert.Equal(t, Internal, KindOf(errors.New("boom")))
}

func TestAs_HidesUnknownErrors(t *testing.T) {
	e := As(errors.New("secret driver detail"))

	assert.Equal(t, Internal, e.Kind)
	assert.Equal(t, "Internal server error", e.Message)
}

func TestWithCode_DoesNotMutate(t *testing.T) {
	base := New(ExecutionFailure, "table missing")
	coded := base.WithCode("ER_NO_SUCH_TABLE")

	assert.Empty(t, base.Code)
	assert.Equal(t, "ER_NO_SUCH_TABLE", coded.Code)
	assert.NoError(t, coded.Unwrap())
}
