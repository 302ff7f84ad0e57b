// Package report prints recent study activity grouped by tag.
package report

import (
	"context"
	"errors"
	"time"

	"github.com/uponom/FlashcardCX/pkg/app"
	"github.com/uponom/FlashcardCX/pkg/printers"
	"github.com/uponom/FlashcardCX/pkg/timeutil"
)

type Report struct {
	Service *app.Service
	Window  timeutil.Window
	// Now defaults to time.Now.
	Now     func() time.Time
	JSON    bool
	Printer *printers.PrettyPrint
}

func (n *Report) Do(_ context.Context) error {
	if n.Service == nil {
		return errors.New("report: no service")
	}
	pp := n.Printer
	if pp == nil {
		pp = &printers.PrettyPrint{}
	}
	now := time.Now
	if n.Now != nil {
		now = n.Now
	}

	since, until := n.Window.Bounds(now())
	result := n.Service.Report(since, until)
	if n.JSON {
		return pp.JSON(result)
	}
	pp.Report(result, n.Window.Label)
	return nil
}
