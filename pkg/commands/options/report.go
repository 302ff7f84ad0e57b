package options

import (
	"github.com/spf13/cobra"

	"github.com/uponom/FlashcardCX/pkg/timeutil"
)

// WindowOptions
type WindowOptions struct {
	Last string
}

func AddWindowArgs(cmd *cobra.Command, o *WindowOptions) {
	cmd.Flags().StringVar(&o.Last, "last", timeutil.DefaultWindow,
		"Time window to include (for example 3d, 1w).")
}
