package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
)

var errSyncFailed = errors.New("learning goal was not saved on the server")

func (a *App) settingsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "settings",
		Short: "Show or change learning settings",
	}
	cmd.AddCommand(
		a.settingsShowCmd(),
		a.settingsSetCmd(),
		a.settingsSyncCmd(),
		a.settingsRemoteCmd(),
	)
	return cmd
}

func (a *App) settingsShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Print the local learning settings",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			s := a.settings.GetSettings(cmd.Context())
			fmt.Fprintf(a.out, "words per group:    %d\n", s.WordsPerGroup)
			fmt.Fprintf(a.out, "daily new words:    %d\n", s.DailyNewWordsGoal)
			fmt.Fprintf(a.out, "daily review words: %d\n", s.DailyReviewWordsGoal)
		},
	}
}

func (a *App) settingsSetCmd() *cobra.Command {
	var group, daily, review int

	cmd := &cobra.Command{
		Use:   "set",
		Short: "Change one or more learning settings",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			f := cmd.Flags()

			if !f.Changed("words-per-group") && !f.Changed("daily-new") && !f.Changed("daily-review") {
				return errors.New("nothing to change: pass --words-per-group, --daily-new or --daily-review")
			}

			if f.Changed("words-per-group") {
				a.settings.UpdateWordsPerGroup(ctx, group)
			}
			if f.Changed("daily-new") {
				a.settings.UpdateDailyNewWordsGoal(ctx, daily)
			}
			if f.Changed("daily-review") {
				a.settings.UpdateDailyReviewWordsGoal(ctx, review)
			}

			fmt.Fprintln(a.out, "Settings saved.")
			return nil
		},
	}

	cmd.Flags().IntVar(&group, "words-per-group", 0, "words shown per study group")
	cmd.Flags().IntVar(&daily, "daily-new", 0, "daily goal for new words")
	cmd.Flags().IntVar(&review, "daily-review", 0, "daily goal for reviewed words")
	return cmd
}

func (a *App) settingsSyncCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "sync",
		Short: "Send the local daily goals to the server",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			s := a.settings.GetSettings(ctx)
			if !a.settings.SaveLearningGoalToServer(ctx, s.DailyNewWordsGoal, s.DailyReviewWordsGoal) {
				return errSyncFailed
			}
			fmt.Fprintln(a.out, "Learning goal saved on the server.")
			return nil
		},
	}
}

func (a *App) settingsRemoteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "remote",
		Short: "Print the learning goal stored on the server",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			g, err := a.settings.FetchLearningGoalFromServer(cmd.Context())
			if err != nil {
				return err
			}
			fmt.Fprintf(a.out, "daily new words:    %d\n", g.DailyNewWordsGoal)
			fmt.Fprintf(a.out, "daily review words: %d\n", g.DailyReviewWordsGoal)
			if g.UpdatedAt != "" {
				fmt.Fprintf(a.out, "updated:            %s\n", g.UpdatedAt)
			}
			return nil
		},
	}
}
