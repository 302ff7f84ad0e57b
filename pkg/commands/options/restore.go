package options

import (
	"github.com/spf13/cobra"
)

// RestoreOptions
type RestoreOptions struct {
	Mode string
}

func AddRestoreArgs(cmd *cobra.Command, o *RestoreOptions) {
	cmd.Flags().StringVarP(&o.Mode, "mode", "m", "ask",
		`How to apply the backup when cards exist: "merge", "overwrite" or "ask".`)
}
