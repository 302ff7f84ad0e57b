package commands

import (
	"github.com/spf13/cobra"

	base "github.com/n3wscott/cli-base/pkg/commands/options"

	"github.com/uponom/FlashcardCX/pkg/commands/options"
)

var (
	oo = &options.OutputOptions{}
	lo = &options.LogOptions{}
)

func New() *cobra.Command {

	cmd := &cobra.Command{
		Use:   "flashcards",
		Short: base.Wrap80("Vocabulary flashcards with tags, spaced repetition statistics and backups."),
		// main prints the error, once.
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	options.AddOutputArg(cmd, oo)
	options.AddLogArgs(cmd, lo)
	AddCommands(cmd)
	return cmd
}

func AddCommands(topLevel *cobra.Command) {
	addStudy(topLevel)
	addAdd(topLevel)
	addEdit(topLevel)
	addDelete(topLevel)
	addList(topLevel)
	addTags(topLevel)
	addNext(topLevel)
	addAnswer(topLevel)
	addSettings(topLevel)
	addExport(topLevel)
	addRestore(topLevel)
	addImport(topLevel)
	addReport(topLevel)
	addSpeak(topLevel)
	addVoices(topLevel)
	addInfo(topLevel)
	addVersion(topLevel)
	addCompletions(topLevel)
}
