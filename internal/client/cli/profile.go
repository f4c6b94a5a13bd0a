package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/dmitrijs2005/wordtrail/internal/client/models"
)

func (a *App) profileCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "profile",
		Short: "Manage the stored display profile",
	}
	cmd.AddCommand(
		a.profileShowCmd(),
		a.profileSetCmd(),
		a.profileClearCmd(),
		a.profileDetailCmd(),
	)
	return cmd
}

func (a *App) profileShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Print the stored display profile",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			p := a.profile.GetCurrentUser(cmd.Context())
			if p == nil {
				fmt.Fprintln(a.out, "No profile stored.")
				return
			}
			fmt.Fprintf(a.out, "username: %s\n", p.Username)
			fmt.Fprintf(a.out, "email:    %s\n", p.Email)
		},
	}
}

func (a *App) profileSetCmd() *cobra.Command {
	var p models.UserProfile

	cmd := &cobra.Command{
		Use:   "set",
		Short: "Store a display profile",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if p.Username == "" {
				return errors.New("--username is required")
			}
			if err := a.profile.SetCurrentUser(cmd.Context(), p); err != nil {
				return err
			}
			fmt.Fprintln(a.out, "Profile saved.")
			return nil
		},
	}

	cmd.Flags().StringVar(&p.Username, "username", "", "display username")
	cmd.Flags().StringVar(&p.Email, "email", "", "contact email")
	return cmd
}

func (a *App) profileClearCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "clear",
		Short: "Remove the stored display profile",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := a.profile.ClearCurrentUser(cmd.Context()); err != nil {
				return err
			}
			fmt.Fprintln(a.out, "Profile cleared.")
			return nil
		},
	}
}

func (a *App) profileDetailCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "detail",
		Short: "Fetch the account record of the current user from the server",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			d, err := a.profile.FetchCurrentUserDetail(cmd.Context())
			if err != nil {
				return err
			}

			fmt.Fprintf(a.out, "id:       %s\n", d.UserID)
			fmt.Fprintf(a.out, "username: %s\n", d.Username)
			fmt.Fprintf(a.out, "email:    %s\n", d.Email)
			if d.Phone != nil {
				fmt.Fprintf(a.out, "phone:    %s\n", *d.Phone)
			}
			fmt.Fprintf(a.out, "active:   %t\n", d.Active)
			if d.CreateTime != "" {
				fmt.Fprintf(a.out, "created:  %s\n", d.CreateTime)
			}
			return nil
		},
	}
}
