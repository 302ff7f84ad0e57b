package commands

import (
	"context"

	"github.com/mitchellh/go-homedir"
	"github.com/spf13/cobra"

	"github.com/uponom/FlashcardCX/pkg/app"
	"github.com/uponom/FlashcardCX/pkg/commands/options"
	"github.com/uponom/FlashcardCX/pkg/runner/backup"
)

func expandPath(path string) (string, error) {
	if path == backup.Stdio {
		return path, nil
	}
	return homedir.Expand(path)
}

func addExport(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:     "export [file]",
		Aliases: []string{"backup"},
		Short:   "Write cards and settings to a JSON backup. Without a file, or with -, the backup goes to stdout.",
		Example: `
flashcards export ~/flashcards-backup.json
flashcards export > backup.json
`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			path := backup.Stdio
			if len(args) == 1 {
				var err error
				if path, err = expandPath(args[0]); err != nil {
					return oo.HandleError(err)
				}
			}
			s, err := openSession(context.Background())
			if err != nil {
				return oo.HandleError(err)
			}
			defer s.Close()

			e := backup.Export{Service: s.svc, Path: path, Printer: s.printer()}
			err = e.Do(context.Background())
			return oo.HandleError(err)
		},
	}

	topLevel.AddCommand(cmd)
}

func addRestore(topLevel *cobra.Command) {
	ro := &options.RestoreOptions{}

	cmd := &cobra.Command{
		Use:   "restore <file>",
		Short: "Restore cards and settings from a JSON backup. Use - to read stdin.",
		Long: `Restore replaces or merges the cards and settings with a backup.

When cards already exist, --mode decides what happens:
  merge      keep existing cards, add new ones and take the backup's version of shared ids
  overwrite  replace all cards with the backup
  ask        prompt on a terminal, fail otherwise (default)`,
		Example: `
flashcards restore ~/flashcards-backup.json
flashcards restore --mode merge - < backup.json
`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			mode, err := app.ParseRestoreMode(ro.Mode)
			if err != nil {
				return oo.HandleError(err)
			}
			path, err := expandPath(args[0])
			if err != nil {
				return oo.HandleError(err)
			}
			s, err := openSession(context.Background())
			if err != nil {
				return oo.HandleError(err)
			}
			defer s.Close()

			r := backup.Restore{
				Service: s.svc,
				Path:    path,
				Mode:    mode,
				JSON:    oo.JSON,
				Printer: s.printer(),
			}
			err = r.Do(context.Background())
			return oo.HandleError(err)
		},
	}

	options.AddRestoreArgs(cmd, ro)
	_ = cmd.RegisterFlagCompletionFunc("mode", func(*cobra.Command, []string, string) ([]string, cobra.ShellCompDirective) {
		return []string{string(app.RestoreAsk), string(app.RestoreMerge), string(app.RestoreOverwrite)}, cobra.ShellCompDirectiveNoFileComp
	})
	topLevel.AddCommand(cmd)
}

func addImport(topLevel *cobra.Command) {
	io := &options.ImportOptions{}

	cmd := &cobra.Command{
		Use:   "import <file.csv>",
		Short: "Create cards from CSV lines of word,en,ua,ru. Use - to read stdin.",
		Example: `
flashcards import words.csv --tags "lesson 4" --language es
cat words.csv | flashcards import -
`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			path, err := expandPath(args[0])
			if err != nil {
				return oo.HandleError(err)
			}
			s, err := openSession(context.Background())
			if err != nil {
				return oo.HandleError(err)
			}
			defer s.Close()

			i := backup.Import{
				Service:  s.svc,
				Path:     path,
				Tags:     io.Tags,
				Language: io.Language,
				JSON:     oo.JSON,
				Printer:  s.printer(),
			}
			err = i.Do(context.Background())
			return oo.HandleError(err)
		},
	}

	options.AddImportArgs(cmd, io)
	topLevel.AddCommand(cmd)
}
