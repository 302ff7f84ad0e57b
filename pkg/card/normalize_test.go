package card

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeTags(t *testing.T) {
	tests := map[string]struct {
		input any
		want  []string
	}{
		"comma string": {
			input: " Travel,food, travel ",
			want:  []string{"travel", "food"},
		},
		"list": {
			input: []any{"A", " b ", "", "a", 3},
			want:  []string{"a", "b", "3"},
		},
		"string list": {
			input: []string{"Work", "WORK", "home"},
			want:  []string{"work", "home"},
		},
		"nil": {
			input: nil,
			want:  []string{},
		},
		"empty string": {
			input: "  ,  ,",
			want:  []string{},
		},
	}
	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			got := NormalizeTags(tc.input)
			assert.Equal(t, tc.want, got)
			for _, tag := range got {
				assert.Equal(t, strings.ToLower(tag), tag)
			}
		})
	}
}

func TestNormalizeTranslations(t *testing.T) {
	tests := map[string]struct {
		input any
		want  Translations
	}{
		"string applies to all": {
			input: " hello ",
			want:  Translations{EN: "hello", UA: "hello", RU: "hello"},
		},
		"partial map": {
			input: map[string]any{"en": " hi ", "ru": nil},
			want:  Translations{EN: "hi"},
		},
		"non string values": {
			input: map[string]any{"en": 42, "ua": true},
			want:  Translations{EN: "42", UA: "true"},
		},
		"unsupported input": {
			input: 12.5,
			want:  Translations{},
		},
		"nil": {
			input: nil,
			want:  Translations{},
		},
	}
	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			got := NormalizeTranslations(tc.input)
			assert.Equal(t, tc.want, got)
			assert.Equal(t, got, NormalizeTranslations(got), "normalizing twice must not change the result")
		})
	}
}
