// Package backup runs the export, restore and CSV import commands.
package backup

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/mattn/go-isatty"

	"github.com/uponom/FlashcardCX/pkg/app"
	"github.com/uponom/FlashcardCX/pkg/i18n"
	"github.com/uponom/FlashcardCX/pkg/printers"
)

// Stdio is the path that means standard input or output.
const Stdio = "-"

var errNoService = errors.New("backup: no service")

func printer(pp *printers.PrettyPrint) *printers.PrettyPrint {
	if pp == nil {
		return &printers.PrettyPrint{}
	}
	return pp
}

func readInput(path string, stdin io.Reader) ([]byte, error) {
	if path == "" || path == Stdio {
		if stdin == nil {
			stdin = os.Stdin
		}
		return io.ReadAll(stdin)
	}
	return os.ReadFile(path)
}

// Export writes the backup document to Path, or to Out for "-".
type Export struct {
	Service *app.Service
	Path    string
	Out     io.Writer
	Printer *printers.PrettyPrint
}

func (n *Export) Do(_ context.Context) error {
	if n.Service == nil {
		return errNoService
	}
	data, err := n.Service.Export()
	if err != nil {
		return err
	}
	if n.Path == "" || n.Path == Stdio {
		out := n.Out
		if out == nil {
			out = os.Stdout
		}
		_, err = out.Write(append(data, '\n'))
		return err
	}
	if err := os.WriteFile(n.Path, data, 0o644); err != nil {
		return fmt.Errorf("backup: write %s: %w", n.Path, err)
	}
	printer(n.Printer).Note(fmt.Sprintf("Exported %d cards to %s", len(n.Service.State().Flashcards), n.Path))
	return nil
}

// Restore applies a backup document. In ask mode the user is prompted on a
// terminal; elsewhere ask fails with app.ErrRestoreChoiceRequired.
type Restore struct {
	Service *app.Service
	Path    string
	Mode    app.RestoreMode
	JSON    bool

	// In is read for the backup when Path is "-" and for the prompt answer.
	In io.Reader
	// Interactive overrides terminal detection.
	Interactive *bool
	Printer     *printers.PrettyPrint
}

func (n *Restore) Do(ctx context.Context) error {
	if n.Service == nil {
		return errNoService
	}
	pp := printer(n.Printer)
	t := i18n.Translator(n.Service.State().Settings.UILanguage)

	data, err := readInput(n.Path, n.In)
	if err != nil {
		return fmt.Errorf("backup: read %s: %w", n.Path, err)
	}
	res, err := n.Service.Restore(ctx, data, n.Mode)
	if errors.Is(err, app.ErrRestoreChoiceRequired) && n.interactive() && n.Path != "" && n.Path != Stdio {
		res, err = n.prompt(ctx, pp, t)
	}
	if err != nil {
		if errors.Is(err, app.ErrInvalidBackup) && !n.JSON {
			pp.Warning(t("invalidBackup", nil))
		}
		return err
	}

	pp.Warning(n.Service.State().PersistWarning)
	if res.Skipped != nil {
		pp.Warning(res.Skipped.Error())
	}
	if n.JSON {
		return pp.JSON(map[string]any{"mode": res.Mode, "cards": res.Cards})
	}
	pp.Note(t("restored", map[string]any{"count": res.Cards}))
	return nil
}

func (n *Restore) interactive() bool {
	if n.Interactive != nil {
		return *n.Interactive
	}
	if n.JSON {
		return false
	}
	fd := os.Stdin.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}

func (n *Restore) prompt(ctx context.Context, pp *printers.PrettyPrint, t i18n.Translate) (app.RestoreResult, error) {
	in := n.In
	if in == nil {
		in = os.Stdin
	}
	pp.Title(t("restoreTitle", nil))
	pp.Note(t("restoreDesc", nil))
	pp.Prompt(fmt.Sprintf("[m] %s  [o] %s  [c] %s: ", t("merge", nil), t("overwrite", nil), t("cancel", nil)))

	answer, err := bufio.NewReader(in).ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		n.Service.CancelRestore()
		return app.RestoreResult{}, fmt.Errorf("backup: read restore choice: %w", err)
	}
	switch strings.ToLower(strings.TrimSpace(answer)) {
	case "m", "merge":
		return n.Service.ResolveRestore(ctx, app.RestoreMerge)
	case "o", "overwrite":
		return n.Service.ResolveRestore(ctx, app.RestoreOverwrite)
	default:
		n.Service.CancelRestore()
		return app.RestoreResult{}, app.ErrRestoreChoiceRequired
	}
}

// Import creates cards from a CSV file with word,en,ua,ru columns.
type Import struct {
	Service  *app.Service
	Path     string
	Tags     string
	Language string
	JSON     bool
	In       io.Reader
	Printer  *printers.PrettyPrint
}

func (n *Import) Do(ctx context.Context) error {
	if n.Service == nil {
		return errNoService
	}
	pp := printer(n.Printer)

	data, err := readInput(n.Path, n.In)
	if err != nil {
		return fmt.Errorf("backup: read %s: %w", n.Path, err)
	}
	res, err := n.Service.ImportCSV(ctx, string(data), n.Tags, n.Language)
	if err != nil {
		return err
	}
	pp.Warning(n.Service.State().PersistWarning)

	if n.JSON {
		errs := make([]string, 0, len(res.Errors))
		for _, e := range res.Errors {
			errs = append(errs, e.Error())
		}
		return pp.JSON(map[string]any{"created": len(res.Created), "errors": errs})
	}

	t := i18n.Translator(n.Service.State().Settings.UILanguage)
	pp.Note(t("imported", map[string]any{"count": len(res.Created)}))
	if len(res.Errors) > 0 {
		pp.Warning(t("importErrors", map[string]any{"count": len(res.Errors)}))
		for _, e := range res.Errors {
			pp.Warning(e.Error())
		}
	}
	return nil
}
