package options

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

// ErrReported wraps an error that was already written to the output as JSON.
var ErrReported = errors.New("error reported")

// OutputOptions
type OutputOptions struct {
	JSON bool
}

func AddOutputArg(cmd *cobra.Command, po *OutputOptions) {
	cmd.PersistentFlags().BoolVar(&po.JSON, "json", false,
		"Output as JSON.")
}

// HandleError renders err as {"error": ...} in JSON mode. The returned error
// still fails the command, wrapped in ErrReported so it is not printed twice.
func (o *OutputOptions) HandleError(err error) error {
	if o.JSON && err != nil {
		out := map[string]string{
			"error": err.Error(),
		}
		b, merr := json.Marshal(out)
		if merr != nil {
			return err
		}
		_, _ = fmt.Fprintln(color.Output, string(b))
		return fmt.Errorf("%w: %w", ErrReported, err)
	}
	return err
}
