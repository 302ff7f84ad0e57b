package timeutil

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseWindow(t *testing.T) {
	tests := map[string]struct {
		in    string
		want  time.Duration
		label string
	}{
		"default":   {in: "", want: week, label: "1w"},
		"days":      {in: "3d", want: 3 * day, label: "3d"},
		"composite": {in: "1w2d6h30m", want: week + 2*day + 6*time.Hour + 30*time.Minute, label: "1w2d6h30m"},
		"spaced":    {in: " 2 weeks 1 day", want: 2*week + day, label: "2w1d"},
		"carry":     {in: "90m", want: 90 * time.Minute, label: "1h30m"},
	}
	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			w, err := ParseWindow(tc.in)
			require.NoError(t, err)
			assert.Equal(t, tc.want, w.Duration)
			assert.Equal(t, tc.label, w.Label)
		})
	}
}

func TestParseWindowInvalid(t *testing.T) {
	for _, in := range []string{"noop", "3y", "0d", "5"} {
		_, err := ParseWindow(in)
		assert.Error(t, err, in)
	}
}

func TestBounds(t *testing.T) {
	until := time.Date(2025, time.June, 8, 0, 0, 0, 0, time.UTC)
	since, end := Window{Duration: week}.Bounds(until)
	assert.Equal(t, time.Date(2025, time.June, 1, 0, 0, 0, 0, time.UTC), since)
	assert.Equal(t, until, end)
}

func TestFormatWindow(t *testing.T) {
	assert.Equal(t, "0s", FormatWindow(0))
	assert.Equal(t, "1d1s", FormatWindow(day+time.Second))
}
