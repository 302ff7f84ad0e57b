package options

import (
	"github.com/spf13/cobra"

	"github.com/uponom/FlashcardCX/pkg/card"
)

// CardOptions
type CardOptions struct {
	EN       string
	UA       string
	RU       string
	Tags     string
	Language string
}

func AddCardArgs(cmd *cobra.Command, o *CardOptions) {
	cmd.Flags().StringVar(&o.EN, "en", "", "English translation.")
	cmd.Flags().StringVar(&o.UA, "ua", "", "Ukrainian translation.")
	cmd.Flags().StringVar(&o.RU, "ru", "", "Russian translation.")
	cmd.Flags().StringVar(&o.Tags, "tags", "",
		`Comma-separated tags, example: --tags="verbs, lesson 3".`)
	cmd.Flags().StringVarP(&o.Language, "language", "l", card.DefaultLanguage,
		"Language the word is written in.")
}

// Draft builds card input from the flags and the word.
func (o *CardOptions) Draft(word string) card.Draft {
	return card.Draft{
		Word: word,
		Translations: map[string]string{
			card.LangEN: o.EN,
			card.LangUA: o.UA,
			card.LangRU: o.RU,
		},
		Tags:     o.Tags,
		Language: o.Language,
	}
}

// Changed reports which card flags were set, so edit only touches those.
func (o *CardOptions) Changed(cmd *cobra.Command) map[string]bool {
	changed := map[string]bool{}
	for _, name := range []string{"en", "ua", "ru", "tags", "language"} {
		if cmd.Flags().Changed(name) {
			changed[name] = true
		}
	}
	return changed
}
