package card

import (
	"errors"
	"fmt"
	"reflect"
	"strings"
	"time"

	"github.com/mitchellh/mapstructure"
)

// ErrNotObject is reported for stored records that are not JSON objects.
var ErrNotObject = errors.New("card: record is not an object")

// Decode converts migrated records into cards. Records that are not objects
// or do not decode are skipped; each is reported in the returned error, which
// is non-nil only when something was skipped.
func Decode(records []any) ([]Card, error) {
	cards, _, err := DecodeRecords(records)
	return cards, err
}

// DecodeRecords is Decode that also hands back the skipped records, in their
// stored order, so they can be written back untouched.
func DecodeRecords(records []any) ([]Card, []any, error) {
	cards := make([]Card, 0, len(records))
	var unreadable []any
	var errs []error
	for i, record := range records {
		m, ok := record.(map[string]any)
		if !ok || m == nil {
			unreadable = append(unreadable, record)
			errs = append(errs, fmt.Errorf("record %d: %w", i, ErrNotObject))
			continue
		}
		c, err := decodeRecord(m)
		if err != nil {
			unreadable = append(unreadable, record)
			errs = append(errs, fmt.Errorf("record %d: %w", i, err))
			continue
		}
		cards = append(cards, c)
	}
	return cards, unreadable, errors.Join(errs...)
}

func decodeRecord(record map[string]any) (Card, error) {
	var c Card
	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		DecodeHook:       timestampHook,
		WeaklyTypedInput: true,
		TagName:          "json",
		Result:           &c,
	})
	if err != nil {
		return Card{}, err
	}
	// Tags and translations go through the normalizers rather than the decoder
	// so a malformed value degrades instead of failing the card.
	fields := make(map[string]any, len(record))
	for k, v := range record {
		switch k {
		case "tags", "translations":
		default:
			fields[k] = v
		}
	}
	if err := decoder.Decode(fields); err != nil {
		return Card{}, err
	}

	c.ID = strings.TrimSpace(c.ID)
	c.Translations = NormalizeTranslations(record["translations"])
	c.Tags = NormalizeTags(record["tags"])
	if strings.TrimSpace(c.Language) == "" {
		c.Language = DefaultLanguage
	}
	c.Stats = c.Stats.sanitized()
	return c, nil
}

var timestampType = reflect.TypeOf(Timestamp{})

func timestampHook(_ reflect.Type, to reflect.Type, data any) (any, error) {
	if to != timestampType {
		return data, nil
	}
	switch v := data.(type) {
	case Timestamp:
		return v, nil
	case string:
		t, err := ParseTime(strings.TrimSpace(v))
		if err != nil {
			return Timestamp{}, nil
		}
		return Timestamp{Time: t}, nil
	case float64:
		return Timestamp{Time: time.UnixMilli(int64(v)).UTC()}, nil
	case int64:
		return Timestamp{Time: time.UnixMilli(v).UTC()}, nil
	case int:
		return Timestamp{Time: time.UnixMilli(int64(v)).UTC()}, nil
	default:
		return Timestamp{}, nil
	}
}
