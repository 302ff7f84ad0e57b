// Package timeutil parses the compact durations used on the command line.
package timeutil

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
)

const (
	// DefaultWindow is the report window used when none is provided.
	DefaultWindow = "1w"

	day  = 24 * time.Hour
	week = 7 * day
)

var (
	segmentPattern = regexp.MustCompile(`^\s*(\d+)\s*([a-z]+)`)
	units          = map[string]time.Duration{
		"s": time.Second, "sec": time.Second, "second": time.Second, "seconds": time.Second,
		"m": time.Minute, "min": time.Minute, "minute": time.Minute, "minutes": time.Minute,
		"h": time.Hour, "hr": time.Hour, "hour": time.Hour, "hours": time.Hour,
		"d": day, "day": day, "days": day,
		"w": week, "wk": week, "week": week, "weeks": week,
	}
	labels = []struct {
		suffix string
		size   time.Duration
	}{
		{"w", week},
		{"d", day},
		{"h", time.Hour},
		{"m", time.Minute},
		{"s", time.Second},
	}
)

// Window is a look-back period ending now.
type Window struct {
	Duration time.Duration
	// Label is the canonical compact form, for example "1w2d".
	Label string
}

// Bounds returns the instants the window covers when it ends at until.
func (w Window) Bounds(until time.Time) (since, end time.Time) {
	return until.Add(-w.Duration), until
}

// ParseWindow parses strings such as "1w", "3d" or "1w2d6h". Empty input
// means DefaultWindow.
func ParseWindow(input string) (Window, error) {
	trimmed := strings.ToLower(strings.TrimSpace(input))
	if trimmed == "" {
		trimmed = DefaultWindow
	}

	var total time.Duration
	for rest := trimmed; rest != ""; {
		m := segmentPattern.FindStringSubmatch(rest)
		if m == nil {
			return Window{}, fmt.Errorf("timeutil: invalid duration segment %q", strings.TrimSpace(rest))
		}
		n, err := strconv.ParseInt(m[1], 10, 64)
		if err != nil {
			return Window{}, fmt.Errorf("timeutil: invalid duration value %q: %w", m[1], err)
		}
		size, ok := units[m[2]]
		if !ok {
			return Window{}, fmt.Errorf("timeutil: unsupported duration unit %q", m[2])
		}
		total += time.Duration(n) * size
		rest = rest[len(m[0]):]
	}

	if total <= 0 {
		return Window{}, fmt.Errorf("timeutil: duration must be greater than zero")
	}
	return Window{Duration: total, Label: FormatWindow(total)}, nil
}

// FormatWindow renders d with week, day, hour, minute and second suffixes.
func FormatWindow(d time.Duration) string {
	var b strings.Builder
	for _, l := range labels {
		if d < l.size {
			continue
		}
		n := d / l.size
		d -= n * l.size
		fmt.Fprintf(&b, "%d%s", n, l.suffix)
	}
	if b.Len() == 0 {
		return "0s"
	}
	return b.String()
}
