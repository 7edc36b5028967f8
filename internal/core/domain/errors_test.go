package domain

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

// TestErrors_Existence tests that all error variables exist and are not nil
func TestErrors_Existence(t *testing.T) {
	tests := []struct {
		name string
		err  error
	}{
		{"ErrInvalidInput", ErrInvalidInput},
		{"ErrIngestion", ErrIngestion},
		{"ErrRetrieval", ErrRetrieval},
		{"ErrSynthesis", ErrSynthesis},
		{"ErrConfiguration", ErrConfiguration},
		{"ErrEmbeddingUnavailable", ErrEmbeddingUnavailable},
		{"ErrLLMUnavailable", ErrLLMUnavailable},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.NotNil(t, tt.err)
			assert.NotEmpty(t, tt.err.Error())
		})
	}
}

// TestErrors_Distinct tests that the sentinels do not match each other
func TestErrors_Distinct(t *testing.T) {
	sentinels := []error{
		ErrInvalidInput,
		ErrIngestion,
		ErrRetrieval,
		ErrSynthesis,
		ErrConfiguration,
		ErrEmbeddingUnavailable,
		ErrLLMUnavailable,
	}

	for i, a := range sentinels {
		for j, b := range sentinels {
			if i == j {
				assert.True(t, errors.Is(a, b))
				continue
			}
			assert.False(t, errors.Is(a, b), "%v should not match %v", a, b)
		}
	}
}

// TestErrors_WrappedMatch tests errors.Is through the standard wrap idiom
func TestErrors_WrappedMatch(t *testing.T) {
	wrapped := fmt.Errorf("%w: embedding query: %w", ErrRetrieval, errors.New("connection refused"))

	assert.True(t, errors.Is(wrapped, ErrRetrieval))
	assert.False(t, errors.Is(wrapped, ErrSynthesis))
	assert.Contains(t, wrapped.Error(), "connection refused")
}
