package commands

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/uponom/FlashcardCX/pkg/commands/options"
	"github.com/uponom/FlashcardCX/pkg/runner/study"
	teaui "github.com/uponom/FlashcardCX/pkg/runner/tea"
)

func addStudy(topLevel *cobra.Command) {
	to := &options.TagOptions{}

	cmd := &cobra.Command{
		Use:     "study",
		Aliases: []string{"ui"},
		Short:   "Open the interactive study screen.",
		Example: `
flashcards study
flashcards study --tag verbs
`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cmd.SilenceUsage = true
			s, err := openSession(context.Background())
			if err != nil {
				return err
			}
			defer s.Close()

			s.svc.AdvanceDelay = s.cfg.AdvanceDelay
			if cmd.Flags().Changed("tag") {
				s.svc.SetSelectedTags(to.Tags)
			}
			ui := teaui.UI{Service: s.svc, Speaker: s.speaker()}
			return ui.Do(context.Background())
		},
	}

	options.AddTagArgs(cmd, to)
	_ = cmd.RegisterFlagCompletionFunc("tag", tagCompletions)
	topLevel.AddCommand(cmd)
}

func addNext(topLevel *cobra.Command) {
	to := &options.TagOptions{}

	cmd := &cobra.Command{
		Use:   "next",
		Short: "Show the card to study next, without its translation.",
		Example: `
flashcards next
flashcards next --tag verbs --json
`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cmd.SilenceUsage = true
			s, err := openSession(context.Background())
			if err != nil {
				return oo.HandleError(err)
			}
			defer s.Close()

			n := study.Next{
				Service: s.svc,
				Tags:    to.Tags,
				JSON:    oo.JSON,
				Printer: s.printer(),
			}
			err = n.Do(context.Background())
			return oo.HandleError(err)
		},
	}

	options.AddTagArgs(cmd, to)
	_ = cmd.RegisterFlagCompletionFunc("tag", tagCompletions)
	topLevel.AddCommand(cmd)
}

const (
	answerKnow     = "know"
	answerDontKnow = "dontknow"
)

func addAnswer(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "answer <id> know|dontknow",
		Short: "Record whether you knew a card and reveal its translations.",
		Example: `
flashcards answer 3f0c… know
flashcards answer 3f0c… dontknow
`,
		Args: cobra.ExactArgs(2),
		ValidArgsFunction: func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
			if len(args) == 1 {
				return []string{answerKnow, answerDontKnow}, cobra.ShellCompDirectiveNoFileComp
			}
			return cardIDCompletions(cmd, args, toComplete)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			var known bool
			switch args[1] {
			case answerKnow, "k", "yes", "y":
				known = true
			case answerDontKnow, "d", "no", "n":
				known = false
			default:
				return oo.HandleError(fmt.Errorf("unknown answer %q, want %s or %s", args[1], answerKnow, answerDontKnow))
			}

			s, err := openSession(context.Background())
			if err != nil {
				return oo.HandleError(err)
			}
			defer s.Close()

			a := study.Answer{
				Service: s.svc,
				ID:      args[0],
				Known:   known,
				JSON:    oo.JSON,
				Printer: s.printer(),
			}
			err = a.Do(context.Background())
			return oo.HandleError(err)
		},
	}

	topLevel.AddCommand(cmd)
}
