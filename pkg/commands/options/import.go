package options

import (
	"github.com/spf13/cobra"

	"github.com/uponom/FlashcardCX/pkg/card"
)

// ImportOptions
type ImportOptions struct {
	Tags     string
	Language string
}

func AddImportArgs(cmd *cobra.Command, o *ImportOptions) {
	cmd.Flags().StringVar(&o.Tags, "tags", "",
		"Comma-separated tags added to every imported card.")
	cmd.Flags().StringVarP(&o.Language, "language", "l", card.DefaultLanguage,
		"Language the imported words are written in.")
}
