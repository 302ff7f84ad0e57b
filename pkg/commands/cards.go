package commands

import (
	"context"
	"strings"

	"github.com/spf13/cobra"

	"github.com/uponom/FlashcardCX/pkg/card"
	"github.com/uponom/FlashcardCX/pkg/commands/options"
	"github.com/uponom/FlashcardCX/pkg/runner/cards"
)

func addAdd(topLevel *cobra.Command) {
	co := &options.CardOptions{}

	cmd := &cobra.Command{
		Use:   "add <word>",
		Short: "Add a flashcard.",
		Example: `
flashcards add perro --en dog --ua собака --ru собака --language es
flashcards add "to run" --ua бігти --tags "verbs, lesson 3"
`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			s, err := openSession(context.Background())
			if err != nil {
				return oo.HandleError(err)
			}
			defer s.Close()

			a := cards.Add{
				Service: s.svc,
				Draft:   co.Draft(strings.Join(args, " ")),
				JSON:    oo.JSON,
				Printer: s.printer(),
			}
			err = a.Do(context.Background())
			return oo.HandleError(err)
		},
	}

	options.AddCardArgs(cmd, co)
	topLevel.AddCommand(cmd)
}

func addEdit(topLevel *cobra.Command) {
	co := &options.CardOptions{}

	cmd := &cobra.Command{
		Use:   "edit <id> [word]",
		Short: "Change a flashcard. Only the given fields change; stats are kept.",
		Example: `
flashcards edit 3f0c… --ua собака
flashcards edit 3f0c… perro --tags animals
`,
		Args:              cobra.MinimumNArgs(1),
		ValidArgsFunction: cardIDCompletions,
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			s, err := openSession(context.Background())
			if err != nil {
				return oo.HandleError(err)
			}
			defer s.Close()

			e := cards.Edit{
				Service: s.svc,
				ID:      args[0],
				JSON:    oo.JSON,
				Printer: s.printer(),
			}
			if len(args) > 1 {
				word := strings.Join(args[1:], " ")
				e.Word = &word
			}
			changed := co.Changed(cmd)
			translations := map[string]string{card.LangEN: co.EN, card.LangUA: co.UA, card.LangRU: co.RU}
			for lang, v := range translations {
				if changed[lang] {
					if e.Translations == nil {
						e.Translations = map[string]string{}
					}
					e.Translations[lang] = v
				}
			}
			if changed["tags"] {
				e.Tags = &co.Tags
			}
			if changed["language"] {
				e.Language = &co.Language
			}
			err = e.Do(context.Background())
			return oo.HandleError(err)
		},
	}

	options.AddCardArgs(cmd, co)
	topLevel.AddCommand(cmd)
}

func addDelete(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:     "delete <id>",
		Aliases: []string{"rm"},
		Short:   "Delete a flashcard.",
		Example: `
flashcards delete 3f0c…
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

			d := cards.Delete{
				Service: s.svc,
				ID:      args[0],
				JSON:    oo.JSON,
				Printer: s.printer(),
			}
			err = d.Do(context.Background())
			return oo.HandleError(err)
		},
	}

	topLevel.AddCommand(cmd)
}

func addList(topLevel *cobra.Command) {
	to := &options.TagOptions{}
	io := &options.IDOptions{}

	cmd := &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls"},
		Short:   "List flashcards, optionally only those with some tags.",
		Example: `
flashcards list
flashcards list --tag verbs --tag "lesson 3" --show-id
`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cmd.SilenceUsage = true
			s, err := openSession(context.Background())
			if err != nil {
				return oo.HandleError(err)
			}
			defer s.Close()

			l := cards.List{
				Service: s.svc,
				Tags:    to.Tags,
				ShowID:  io.ShowID,
				JSON:    oo.JSON,
				Printer: s.printer(),
			}
			err = l.Do(context.Background())
			return oo.HandleError(err)
		},
	}

	options.AddTagArgs(cmd, to)
	_ = cmd.RegisterFlagCompletionFunc("tag", tagCompletions)
	options.AddShowIDArgs(cmd, io)
	topLevel.AddCommand(cmd)
}

func addTags(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "tags",
		Short: "List the tags in use.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cmd.SilenceUsage = true
			s, err := openSession(context.Background())
			if err != nil {
				return oo.HandleError(err)
			}
			defer s.Close()

			t := cards.Tags{
				Service: s.svc,
				JSON:    oo.JSON,
				Printer: s.printer(),
			}
			err = t.Do(context.Background())
			return oo.HandleError(err)
		},
	}

	topLevel.AddCommand(cmd)
}
