package commands

import (
	"context"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/uponom/FlashcardCX/pkg/study"
)

func addCompletions(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "completion",
		Short: "Generates bash completion scripts",
		Long: `To load completion run

. <(flashcards completion)

To configure your bash shell to load completions for each session add to your bashrc

# ~/.bashrc or ~/.profile
. <(flashcards completion)
`,
		Run: func(cmd *cobra.Command, args []string) {
			_ = topLevel.GenBashCompletion(os.Stdout)
		},
	}

	topLevel.AddCommand(cmd)
}

// cardIDCompletions offers card ids, described by their word, for the first
// argument.
func cardIDCompletions(_ *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	if len(args) > 0 {
		return nil, cobra.ShellCompDirectiveNoFileComp
	}
	s, err := openSession(context.Background())
	if err != nil {
		return nil, cobra.ShellCompDirectiveError
	}
	defer s.Close()

	var ids []string
	for _, c := range s.svc.State().Flashcards {
		if strings.HasPrefix(c.ID, toComplete) {
			ids = append(ids, c.ID+"\t"+c.Word)
		}
	}
	return ids, cobra.ShellCompDirectiveNoFileComp
}

func tagCompletions(_ *cobra.Command, _ []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	s, err := openSession(context.Background())
	if err != nil {
		return nil, cobra.ShellCompDirectiveError
	}
	defer s.Close()

	var tags []string
	for _, t := range study.AvailableTags(s.svc.State().Flashcards) {
		if strings.HasPrefix(t, strings.ToLower(toComplete)) {
			tags = append(tags, t)
		}
	}
	return tags, cobra.ShellCompDirectiveNoFileComp
}
