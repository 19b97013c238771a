package format

import (
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormatNumber(t *testing.T) {
	tests := []struct {
		num      float64
		decimals int
		want     string
	}{
		{1234.5, 2, "1,234.50"},
		{0, 2, "0.00"},
		{999, 0, "999"},
		{1234567.891, 2, "1,234,567.89"},
		{-9876.5, 1, "-9,876.5"},
		{12, -1, "12"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, FormatNumber(tt.num, tt.decimals))
	}
	assert.Equal(t, "NaN", FormatNumber(math.NaN(), 2))
}

func TestFormatDate(t *testing.T) {
	ts := time.Date(2025, time.March, 7, 9, 5, 3, 0, time.UTC)

	assert.Equal(t, "2025-03-07 09:05:03", FormatDate(ts, ""))
	assert.Equal(t, "07/03/2025", FormatDate(ts, "DD/MM/YYYY"))
	assert.Equal(t, "09:05", FormatDate(ts, "HH:mm"))
}

func TestDeepClone(t *testing.T) {
	orig := map[string]any{"name": "Cutter", "tags": []any{"a", "b"}}
	clone, err := DeepClone(orig)
	require.NoError(t, err)
	assert.Equal(t, orig, clone)

	clone["tags"].([]any)[0] = "changed"
	assert.Equal(t, "a", orig["tags"].([]any)[0])

	_, err = DeepClone(map[string]any{"fn": func() {}})
	assert.Error(t, err)
}
