package card

import (
	"encoding/json"
	"time"
)

// layoutJS matches the millisecond ISO-8601 form browsers write for dates.
const layoutJS = "2006-01-02T15:04:05.000Z07:00"

// ParseTime accepts RFC3339 timestamps with or without fractional seconds.
func ParseTime(v string) (time.Time, error) {
	t, err := time.Parse(time.RFC3339Nano, v)
	if err != nil {
		return time.Time{}, err
	}
	return t, nil
}

// Timestamp serializes as an ISO-8601 string. Zero values marshal as "" and
// unparsable input unmarshals to the zero value rather than failing the card.
type Timestamp struct {
	time.Time
}

func (t Timestamp) MarshalJSON() ([]byte, error) {
	if t.IsZero() {
		return []byte(`""`), nil
	}
	return json.Marshal(t.String())
}

func (t *Timestamp) UnmarshalJSON(b []byte) error {
	var v string
	if err := json.Unmarshal(b, &v); err != nil {
		t.Time = time.Time{}
		return nil
	}
	parsed, err := ParseTime(v)
	if err != nil {
		t.Time = time.Time{}
		return nil
	}
	t.Time = parsed
	return nil
}

func (t Timestamp) String() string {
	if t.IsZero() {
		return ""
	}
	return t.UTC().Format(layoutJS)
}
