package options

import (
	"github.com/spf13/cobra"
)

// LogOptions
type LogOptions struct {
	Quiet bool
	Level string
}

func AddLogArgs(cmd *cobra.Command, o *LogOptions) {
	cmd.PersistentFlags().BoolVarP(&o.Quiet, "quiet", "q", false,
		"Disable logging.")
	cmd.PersistentFlags().StringVar(&o.Level, "log-level", "",
		"Log level (debug, info, warn, error). Overrides the config file.")
}
