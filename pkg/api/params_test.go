package api

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubRequest struct {
	args map[string]any
}

func (s *stubRequest) GetArguments() map[string]any {
	return s.args
}

func paramsWith(args map[string]any) ToolHandlerParams {
	return ToolHandlerParams{ToolCallRequest: &stubRequest{args: args}}
}

func TestParseInt64(t *testing.T) {
	tests := []struct {
		name     string
		value    any
		expected int64
		wantErr  bool
	}{
		{"json number", float64(42), 42, false},
		{"int", 7, 7, false},
		{"int64", int64(9), 9, false},
		{"string", "42", 0, true},
		{"nil", nil, 0, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseInt64(tt.value)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				require.NoError(t, err)
				assert.Equal(t, tt.expected, got)
			}
		})
	}
}

func TestRequiredString(t *testing.T) {
	t.Run("present", func(t *testing.T) {
		value, err := RequiredString(paramsWith(map[string]any{"name": "web"}), "name")
		require.NoError(t, err)
		assert.Equal(t, "web", value)
	})
	t.Run("missing", func(t *testing.T) {
		_, err := RequiredString(paramsWith(nil), "name")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "name parameter required")
	})
	t.Run("empty", func(t *testing.T) {
		_, err := RequiredString(paramsWith(map[string]any{"name": ""}), "name")
		assert.Error(t, err)
	})
	t.Run("wrong type", func(t *testing.T) {
		_, err := RequiredString(paramsWith(map[string]any{"name": 3}), "name")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "must be a string")
	})
}

func TestOptionalParams(t *testing.T) {
	params := paramsWith(map[string]any{
		"namespace": "team-a",
		"limit":     float64(25),
		"previous":  true,
		"broken":    []string{"x"},
	})
	assert.Equal(t, "team-a", OptionalString(params, "namespace", ""))
	assert.Equal(t, "fallback", OptionalString(params, "missing", "fallback"))
	assert.Equal(t, int64(25), OptionalInt64(params, "limit", 50))
	assert.Equal(t, int64(50), OptionalInt64(params, "missing", 50))
	assert.Equal(t, int64(50), OptionalInt64(params, "broken", 50))
	assert.True(t, OptionalBool(params, "previous", false))
	assert.False(t, OptionalBool(params, "missing", false))
}
