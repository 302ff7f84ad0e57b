// Package i18n translates interface strings into the supported interface
// languages.
package i18n

import (
	"fmt"
	"regexp"
	"strings"
)

// DefaultLanguage is used for unknown languages and missing keys.
const DefaultLanguage = "en"

// Translate renders key, substituting {name} placeholders from vars.
type Translate func(key string, vars map[string]any) string

var placeholder = regexp.MustCompile(`\{(\w+)\}`)

// Translator returns the Translate func for lang. Keys missing from lang fall
// back to English and then to the key itself.
func Translator(lang string) Translate {
	dict, ok := catalog[strings.ToLower(lang)]
	if !ok {
		dict = catalog[DefaultLanguage]
	}
	return func(key string, vars map[string]any) string {
		template, ok := dict[key]
		if !ok || template == "" {
			template, ok = catalog[DefaultLanguage][key]
			if !ok {
				template = key
			}
		}
		return placeholder.ReplaceAllStringFunc(template, func(m string) string {
			v, ok := vars[m[1:len(m)-1]]
			if !ok || v == nil {
				return ""
			}
			return fmt.Sprint(v)
		})
	}
}

// Languages lists the interface languages with a catalog.
func Languages() []string {
	return []string{"en", "ua", "ru"}
}
