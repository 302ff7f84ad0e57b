// Package options defines shared flag helpers for CLI commands.
package options

import (
	"github.com/spf13/cobra"
)

// TagOptions captures the tag filter for commands that work on a subset of
// cards.
type TagOptions struct {
	Tags []string
}

// AddTagArgs wires the tag filter flag on the provided command.
func AddTagArgs(cmd *cobra.Command, o *TagOptions) {
	cmd.Flags().StringSliceVarP(&o.Tags, "tag", "t", nil,
		"Only use cards with any of these tags. Repeat or comma-separate.")
}
