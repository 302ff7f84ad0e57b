// Package teaui launches the interactive study screen.
package teaui

import (
	"context"
	"errors"
	"os"

	"github.com/mattn/go-isatty"

	"github.com/uponom/FlashcardCX/pkg/app"
	"github.com/uponom/FlashcardCX/pkg/speech"
	studyui "github.com/uponom/FlashcardCX/pkg/tui/study"
)

var ErrNotTerminal = errors.New("study: stdin is not a terminal")

// UI runs the Bubble Tea study loop until the user quits.
type UI struct {
	Service *app.Service
	Speaker *speech.Speaker
}

func (n *UI) Do(_ context.Context) error {
	if n.Service == nil {
		return errors.New("study: no service")
	}
	fd := os.Stdin.Fd()
	if !isatty.IsTerminal(fd) && !isatty.IsCygwinTerminal(fd) {
		return ErrNotTerminal
	}
	return studyui.Run(n.Service, studyui.Options{Speaker: n.Speaker})
}
