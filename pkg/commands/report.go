package commands

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/uponom/FlashcardCX/pkg/commands/options"
	"github.com/uponom/FlashcardCX/pkg/runner/report"
	"github.com/uponom/FlashcardCX/pkg/timeutil"
)

func addReport(topLevel *cobra.Command) {
	wo := &options.WindowOptions{}

	cmd := &cobra.Command{
		Use:   "report",
		Short: "Display recently studied cards grouped by tag",
		Long: `Report lists the cards answered within the specified time window, grouped by tag.

Examples:
  flashcards report
  flashcards report --last 3d
  flashcards report --last 1w2d`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cmd.SilenceUsage = true
			window, err := timeutil.ParseWindow(wo.Last)
			if err != nil {
				return oo.HandleError(err)
			}
			s, err := openSession(context.Background())
			if err != nil {
				return oo.HandleError(err)
			}
			defer s.Close()

			r := report.Report{
				Service: s.svc,
				Window:  window,
				JSON:    oo.JSON,
				Printer: s.printer(),
			}
			err = r.Do(context.Background())
			return oo.HandleError(err)
		},
	}

	options.AddWindowArgs(cmd, wo)
	topLevel.AddCommand(cmd)
}
