package commands

import (
	"context"

	"github.com/spf13/cobra"

	prefs "github.com/uponom/FlashcardCX/pkg/runner/settings"
	"github.com/uponom/FlashcardCX/pkg/settings"
)

func addSettings(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "settings",
		Short: "Show the application settings.",
		Example: `
flashcards settings
flashcards settings --json
`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cmd.SilenceUsage = true
			s, err := openSession(context.Background())
			if err != nil {
				return oo.HandleError(err)
			}
			defer s.Close()

			show := prefs.Show{Service: s.svc, JSON: oo.JSON, Printer: s.printer()}
			err = show.Do(context.Background())
			return oo.HandleError(err)
		},
	}

	addSettingsSet(cmd)
	topLevel.AddCommand(cmd)
}

func addSettingsSet(parent *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "set <key=value>...",
		Short: "Change settings. Values are parsed as JSON when they can be.",
		Example: `
flashcards settings set uiLanguage=ua theme=dark
flashcards settings set ttsEnabled=true
flashcards settings set ttsVoiceMap='{"en":"Alex"}'
`,
		Args:      cobra.MinimumNArgs(1),
		ValidArgs: settings.Keys(),
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			s, err := openSession(context.Background())
			if err != nil {
				return oo.HandleError(err)
			}
			defer s.Close()

			set := prefs.Set{Service: s.svc, Pairs: args, JSON: oo.JSON, Printer: s.printer()}
			err = set.Do(context.Background())
			return oo.HandleError(err)
		},
	}

	parent.AddCommand(cmd)
}
