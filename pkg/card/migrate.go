package card

import "maps"

// Migration is the result of upgrading stored card records.
type Migration struct {
	Records    []any
	DidMigrate bool
}

// Migrate upgrades card records decoded from untrusted JSON to the current
// shape: legacy single-string "translation" fields become "translations",
// translations are normalized and missing stats counters are backfilled.
// Entries that are not objects pass through untouched. Input records are not
// modified. Migrating already migrated records reports DidMigrate false.
func Migrate(records any) Migration {
	list, ok := records.([]any)
	if !ok {
		return Migration{Records: []any{}, DidMigrate: true}
	}

	didMigrate := false
	out := make([]any, len(list))
	for i, record := range list {
		m, ok := record.(map[string]any)
		if !ok || m == nil {
			out[i] = record
			continue
		}
		next, changed := migrateRecord(m)
		if changed {
			didMigrate = true
		}
		out[i] = next
	}
	return Migration{Records: out, DidMigrate: didMigrate}
}

func migrateRecord(record map[string]any) (map[string]any, bool) {
	next := maps.Clone(record)
	changed := false

	legacy, hadLegacy := next["translation"]
	source := any("")
	if v, ok := next["translations"]; ok && v != nil {
		source = v
	} else if hadLegacy && legacy != nil {
		source = legacy
	}
	normalized := NormalizeTranslations(source)

	if hadLegacy || isFalsy(next["translations"]) || !translationsEqual(next["translations"], normalized) {
		next["translations"] = translationsRecord(normalized)
		changed = true
	}
	if hadLegacy {
		delete(next, "translation")
		changed = true
	}

	stats, ok := next["stats"].(map[string]any)
	if !ok || stats == nil {
		next["stats"] = map[string]any{
			"know":            0,
			"dontKnow":        0,
			"RecentKnows":     0,
			"RecentDontKnows": 0,
		}
		return next, true
	}
	_, hasKnows := stats["RecentKnows"]
	_, hasDontKnows := stats["RecentDontKnows"]
	if !hasKnows || !hasDontKnows {
		stats = maps.Clone(stats)
		if !hasKnows {
			stats["RecentKnows"] = 0
		}
		if !hasDontKnows {
			stats["RecentDontKnows"] = 0
		}
		changed = true
	}
	next["stats"] = stats
	return next, changed
}

// translationsRecord builds the stored form of normalized translations.
func translationsRecord(t Translations) map[string]any {
	return map[string]any{LangEN: t.EN, LangUA: t.UA, LangRU: t.RU}
}

func translationsEqual(existing any, t Translations) bool {
	switch v := existing.(type) {
	case map[string]any:
		return v[LangEN] == t.EN && v[LangUA] == t.UA && v[LangRU] == t.RU
	default:
		return false
	}
}

func isFalsy(v any) bool {
	switch x := v.(type) {
	case nil:
		return true
	case string:
		return x == ""
	case bool:
		return !x
	case float64:
		return x == 0
	case int:
		return x == 0
	default:
		return false
	}
}
