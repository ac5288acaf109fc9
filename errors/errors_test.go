package errors

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWrapfKeepsSentinel(t *testing.T) {
	err := Wrapf(ErrInvalidInput, "row %d has %d fields, expected %d", 3, 4, 5)
	require.Error(t, err)
	assert.True(t, Is(err, ErrInvalidInput))
	assert.False(t, Is(err, ErrConfiguration))
	assert.Contains(t, err.Error(), "row 3 has 4 fields, expected 5")
	assert.Contains(t, err.Error(), "invalid input")
}

func TestKind(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want error
	}{
		{"invalid input", Wrap(ErrInvalidInput, "empty table"), ErrInvalidInput},
		{"configuration", Wrapf(ErrConfiguration, "duplicate attribute %q", "age"), ErrConfiguration},
		{"classification", Wrapf(ErrClassification, "no branch for %q", "teen"), ErrClassification},
		{"double wrap", Wrap(Wrap(ErrConfiguration, "inner"), "outer"), ErrConfiguration},
		{"unrelated", New("boom"), nil},
		{"nil", nil, nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Kind(tt.err))
		})
	}
}
