package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/dmitrijs2005/wordtrail/internal/client/models"
)

func (a *App) lexiconCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "lexicon",
		Short: "Show or change the current wordbook",
	}
	cmd.AddCommand(
		a.lexiconShowCmd(),
		a.lexiconSetCmd(),
		a.lexiconClearCmd(),
		a.lexiconListCmd(),
	)
	return cmd
}

func (a *App) lexiconShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Print the current wordbook",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			lex := a.session.GetCurrentLexicon(cmd.Context())
			if lex == nil {
				fmt.Fprintln(a.out, "No wordbook selected.")
				return
			}
			fmt.Fprintf(a.out, "%s (%s)\n", lex.Name, lex.ID)
		},
	}
}

func (a *App) lexiconSetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "set <id> <name...>",
		Short: "Select a wordbook",
		Args:  cobra.MinimumNArgs(2),
		Run: func(cmd *cobra.Command, args []string) {
			a.session.SetCurrentLexicon(cmd.Context(), models.CurrentLexicon{
				ID:   args[0],
				Name: strings.Join(args[1:], " "),
			})
		},
	}
}

func (a *App) lexiconClearCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "clear",
		Short: "Forget the selected wordbook",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			a.session.ClearCurrentLexicon(cmd.Context())
			fmt.Fprintln(a.out, "Wordbook cleared.")
		},
	}
}

func (a *App) lexiconListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List wordbooks available on the server",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			books, err := a.lexicon.ListLexicons(ctx)
			if err != nil {
				return err
			}
			if len(books) == 0 {
				fmt.Fprintln(a.out, "No wordbooks.")
				return nil
			}

			var currentID string
			if cur := a.session.GetCurrentLexicon(ctx); cur != nil {
				currentID = cur.ID
			}

			for _, b := range books {
				mark := " "
				if b.ID == currentID {
					mark = "*"
				}
				fmt.Fprintf(a.out, "%s %-8s %-4s %5d  %s\n", mark, b.ID, b.Language, b.WordCount, b.BookName)
			}
			return nil
		},
	}
}
