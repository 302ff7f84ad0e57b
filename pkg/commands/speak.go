package commands

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/uponom/FlashcardCX/pkg/runner/speak"
	"github.com/uponom/FlashcardCX/pkg/speech"
)

func addSpeak(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "speak <id>",
		Short: "Say a card's word aloud with the configured speech engine.",
		Example: `
flashcards speak 3f0c…
`,
		Args:              cobra.ExactArgs(1),
		ValidArgsFunction: cardIDCompletions,
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			s, err := openSession(context.Background())
			if err != nil {
				return oo.HandleError(err)
			}
			defer s.Close()

			sp := speak.Speak{Service: s.svc, Speaker: s.speaker(), ID: args[0]}
			err = sp.Do(context.Background())
			return oo.HandleError(err)
		},
	}

	topLevel.AddCommand(cmd)
}

func addVoices(topLevel *cobra.Command) {
	refresh := false

	cmd := &cobra.Command{
		Use:   "voices",
		Short: "List the voices of the speech engine.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cmd.SilenceUsage = true
			s, err := openSession(context.Background())
			if err != nil {
				return oo.HandleError(err)
			}
			defer s.Close()

			v := speak.Voices{
				Cache:   speech.NewVoiceCache(s.engine(), s.log),
				Refresh: refresh,
				JSON:    oo.JSON,
				Printer: s.printer(),
			}
			err = v.Do(context.Background())
			return oo.HandleError(err)
		},
	}

	cmd.Flags().BoolVar(&refresh, "refresh", false, "Reload the voice list from the engine.")
	topLevel.AddCommand(cmd)
}
