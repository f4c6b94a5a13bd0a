package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/dmitrijs2005/wordtrail/internal/client/models"
)

func (a *App) languageCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "language",
		Short: "Show or change the language being learned",
	}
	cmd.AddCommand(a.languageListCmd(), a.languageShowCmd(), a.languageSetCmd())
	return cmd
}

func (a *App) languageListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List supported languages",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			current := a.session.GetCurrentLanguage(cmd.Context())
			for _, l := range models.SupportedLanguages {
				mark := " "
				if l.Code == current.Code {
					mark = "*"
				}
				fmt.Fprintf(a.out, "%s %s  %s %s\n", mark, l.Code, l.Emoji, l.DisplayName)
			}
		},
	}
}

func (a *App) languageShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Print the current language",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			l := a.session.GetCurrentLanguage(cmd.Context())
			fmt.Fprintf(a.out, "%s %s (%s)\n", l.Emoji, l.DisplayName, l.Code)
		},
	}
}

func (a *App) languageSetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "set <code>",
		Short: "Change the current language",
		Long: "Store the language code as given. Codes outside the supported set " +
			"are kept but read back as the default language.",
		Args: cobra.ExactArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			code := args[0]
			a.session.SetCurrentLanguage(cmd.Context(), code)

			if l, ok := models.LookupLanguage(code); ok {
				fmt.Fprintln(a.out, l.SuccessMessage)
				return
			}
			def := models.DefaultLanguage()
			fmt.Fprintf(a.out, "Unknown language %q, %s will be used.\n", code, def.DisplayName)
		},
	}
}
