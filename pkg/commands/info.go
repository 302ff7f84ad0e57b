package commands

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/uponom/FlashcardCX/pkg/runner/info"
)

func addInfo(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "info",
		Short: "Details about the flashcards and where they are stored.",
		Example: `
flashcards info
`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cmd.SilenceUsage = true
			s, err := openSession(context.Background())
			if err != nil {
				return oo.HandleError(err)
			}
			defer s.Close()

			i := info.Info{
				Config:  s.cfg,
				Service: s.svc,
				Printer: s.printer(),
			}
			err = i.Do(context.Background())
			return oo.HandleError(err)
		},
	}

	topLevel.AddCommand(cmd)
}
