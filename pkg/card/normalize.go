package card

import (
	"fmt"
	"strings"
)

// NormalizeTranslations canonicalizes translation input. A string is applied
// to every language; a mapping is read key by key. The result always has all
// three languages, trimmed, defaulting to "". Other input yields empty values.
func NormalizeTranslations(input any) Translations {
	switch v := input.(type) {
	case string:
		value := strings.TrimSpace(v)
		return Translations{EN: value, UA: value, RU: value}
	case Translations:
		return Translations{
			EN: strings.TrimSpace(v.EN),
			UA: strings.TrimSpace(v.UA),
			RU: strings.TrimSpace(v.RU),
		}
	case *Translations:
		if v == nil {
			return Translations{}
		}
		return NormalizeTranslations(*v)
	case map[string]string:
		return Translations{
			EN: strings.TrimSpace(v[LangEN]),
			UA: strings.TrimSpace(v[LangUA]),
			RU: strings.TrimSpace(v[LangRU]),
		}
	case map[string]any:
		return Translations{
			EN: stringField(v, LangEN),
			UA: stringField(v, LangUA),
			RU: stringField(v, LangRU),
		}
	default:
		return Translations{}
	}
}

func stringField(m map[string]any, key string) string {
	return strings.TrimSpace(stringify(m[key]))
}

func stringify(v any) string {
	switch s := v.(type) {
	case nil:
		return ""
	case string:
		return s
	default:
		return fmt.Sprint(s)
	}
}

// NormalizeTags accepts a comma-separated string or a list and returns the
// trimmed, lowercased, de-duplicated tags in first-occurrence order.
func NormalizeTags(input any) []string {
	var raw []string
	switch v := input.(type) {
	case nil:
	case string:
		raw = strings.Split(v, ",")
	case []string:
		raw = v
	case []any:
		raw = make([]string, 0, len(v))
		for _, item := range v {
			raw = append(raw, stringify(item))
		}
	default:
		raw = strings.Split(stringify(v), ",")
	}

	tags := make([]string, 0, len(raw))
	seen := make(map[string]struct{}, len(raw))
	for _, tag := range raw {
		tag = strings.ToLower(strings.TrimSpace(tag))
		if tag == "" {
			continue
		}
		if _, ok := seen[tag]; ok {
			continue
		}
		seen[tag] = struct{}{}
		tags = append(tags, tag)
	}
	return tags
}
