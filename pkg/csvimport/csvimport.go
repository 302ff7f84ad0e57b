// Package csvimport reads word lists in the four column CSV layout
// word,en,ua,ru.
package csvimport

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/uponom/FlashcardCX/pkg/card"
)

// Columns is the number of fields every line must have.
const Columns = 4

// Error codes.
const (
	CodeUnclosedQuote = "unclosed_quote"
	CodeFieldCount    = "field_count"
	CodeMissingWord   = "missing_word"
)

// Row is one importable line.
type Row struct {
	Line         int
	Word         string
	Translations card.Translations
}

// Draft turns the row into card input.
func (r Row) Draft(tags any, language string) card.Draft {
	return card.Draft{
		Word:         r.Word,
		Translations: r.Translations,
		Tags:         tags,
		Language:     language,
	}
}

// LineError describes a rejected line.
type LineError struct {
	Line  int
	Code  string
	Count int
}

func (e LineError) Error() string {
	if e.Code == CodeFieldCount {
		return fmt.Sprintf("line %d: %s: got %d fields, want %d", e.Line, e.Code, e.Count, Columns)
	}
	return fmt.Sprintf("line %d: %s", e.Line, e.Code)
}

// Result holds the accepted rows and the rejected lines, both in file order.
type Result struct {
	Rows   []Row
	Errors []LineError
}

var lineBreak = regexp.MustCompile(`\r?\n`)

// Parse reads text line by line. Blank lines are skipped. Fields may be
// double-quoted, with "" standing for a literal quote; quoted fields cannot
// span lines.
func Parse(text string) Result {
	res := Result{Rows: []Row{}, Errors: []LineError{}}
	for i, line := range lineBreak.Split(text, -1) {
		n := i + 1
		if i == 0 {
			line = strings.TrimPrefix(line, "\ufeff")
		}
		if strings.TrimSpace(line) == "" {
			continue
		}
		fields, open := splitLine(line)
		switch {
		case open:
			res.Errors = append(res.Errors, LineError{Line: n, Code: CodeUnclosedQuote})
		case len(fields) != Columns:
			res.Errors = append(res.Errors, LineError{Line: n, Code: CodeFieldCount, Count: len(fields)})
		case strings.TrimSpace(fields[0]) == "":
			res.Errors = append(res.Errors, LineError{Line: n, Code: CodeMissingWord})
		default:
			res.Rows = append(res.Rows, Row{
				Line: n,
				Word: strings.TrimSpace(fields[0]),
				Translations: card.NormalizeTranslations(map[string]string{
					card.LangEN: fields[1],
					card.LangUA: fields[2],
					card.LangRU: fields[3],
				}),
			})
		}
	}
	return res
}

// splitLine splits one line on commas outside quotes. open reports a quote
// left unterminated at the end of the line.
func splitLine(line string) (fields []string, open bool) {
	var field strings.Builder
	inQuotes := false
	runes := []rune(line)
	for i := 0; i < len(runes); i++ {
		r := runes[i]
		switch {
		case inQuotes && r == '"':
			if i+1 < len(runes) && runes[i+1] == '"' {
				field.WriteRune('"')
				i++
			} else {
				inQuotes = false
			}
		case inQuotes:
			field.WriteRune(r)
		case r == '"':
			inQuotes = true
		case r == ',':
			fields = append(fields, field.String())
			field.Reset()
		default:
			field.WriteRune(r)
		}
	}
	fields = append(fields, field.String())
	return fields, inQuotes
}

// FormatLine renders fields as one line Parse reads back, quoting fields that
// contain commas or quotes.
func FormatLine(fields ...string) string {
	out := make([]string, len(fields))
	for i, f := range fields {
		if strings.ContainsAny(f, `,"`) {
			f = `"` + strings.ReplaceAll(f, `"`, `""`) + `"`
		}
		out[i] = f
	}
	return strings.Join(out, ",")
}

// CardLine renders a card's word and translations as an importable line.
func CardLine(c card.Card) string {
	return FormatLine(c.Word, c.Translations.EN, c.Translations.UA, c.Translations.RU)
}
