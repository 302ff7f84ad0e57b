package printers

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/gosuri/uitable"

	"github.com/uponom/FlashcardCX/pkg/app"
)

const layoutReport = "2006-01-02 15:04"

// Report prints the cards studied in a window, grouped by tag.
func (pp *PrettyPrint) Report(result app.ReportResult, label string) {
	since := result.Since.Local().Format(layoutReport)
	until := result.Until.Local().Format(layoutReport)
	_, _ = color.New(color.Bold).Fprintf(pp.out(), "Report · last %s (%s → %s)\n", label, since, until)

	if result.Total == 0 {
		_, _ = color.New(color.Faint, color.Italic).Fprintln(pp.out(), "  No cards studied in this window.")
		pp.NewLine()
		return
	}

	for _, section := range result.Sections {
		pp.NewLine()
		pp.TitleWithCount(section.Tag, len(section.Cards))
		tbl := uitable.New()
		tbl.Separator = "  "
		for _, c := range section.Cards {
			tbl.AddRow("  "+c.Word, score(c.Stats), color.New(color.Faint).Sprint(c.UpdatedAt.Local().Format(layoutReport)))
		}
		_, _ = fmt.Fprintln(pp.out(), tbl)
		_, _ = fmt.Fprintf(pp.out(), "  %s\n", sectionScore(section.Know, section.DontKnow))
	}
	pp.NewLine()
}

func sectionScore(know, dontKnow int) string {
	return fmt.Sprintf("recent %s %s",
		color.New(color.FgGreen).Sprintf("+%d", know),
		color.New(color.FgRed).Sprintf("-%d", dontKnow),
	)
}
