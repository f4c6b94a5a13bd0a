package cli

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/dmitrijs2005/wordtrail/internal/common"
)

// getSimpleText and getSecret are indirections used to facilitate testing.
var (
	getSimpleText = GetSimpleText
	getSecret     = GetSecret
)

var errAborted = errors.New("aborted")

func (a *App) whoamiCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "whoami",
		Short: "Show the current user",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			id, err := a.identity.ResolveAndCache(ctx)
			if errors.Is(err, common.ErrNotAuthenticated) {
				if a.identity.IsAuthenticated(ctx) {
					fmt.Fprintln(a.out, "A token is stored but no user could be derived from it.")
				} else {
					fmt.Fprintln(a.out, "Not signed in.")
				}
				return err
			}
			if err != nil {
				return err
			}

			fmt.Fprintf(a.out, "id:       %s\n", id.ID)
			fmt.Fprintf(a.out, "username: %s\n", id.Username)
			if id.Email != "" {
				fmt.Fprintf(a.out, "email:    %s\n", id.Email)
			}
			return nil
		},
	}
}

func (a *App) loginCmd() *cobra.Command {
	var tokenFlag, userID, username string

	cmd := &cobra.Command{
		Use:   "login",
		Short: "Store a bearer token for the current session",
		Long: "Store a bearer token issued by the WordTrail backend. The token is " +
			"read from the terminal without echo unless --token is given. --user-id and --username can be " +
			"given when the token does not carry them.",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			secret := []byte(tokenFlag)
			if len(secret) == 0 {
				var err error
				secret, err = getSecret(a.reader, "Enter token", a.out)
				if err != nil {
					return err
				}
			}
			defer common.WipeByteArray(secret)

			tok := strings.TrimSpace(string(secret))
			if err := a.auth.SignIn(cmd.Context(), tok, userID, username); err != nil {
				return err
			}

			fmt.Fprintln(a.out, "Signed in.")
			return nil
		},
	}

	cmd.Flags().StringVar(&tokenFlag, "token", "", "bearer token (prompted for when omitted)")
	cmd.Flags().StringVar(&userID, "user-id", "", "user id to store alongside the token")
	cmd.Flags().StringVar(&username, "username", "", "username to store alongside the token")
	return cmd
}

func (a *App) logoutCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "Forget the current session (keeps language and learning settings)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := a.auth.SignOut(cmd.Context()); err != nil {
				return err
			}
			fmt.Fprintln(a.out, "Signed out.")
			return nil
		},
	}
}

func (a *App) resetCmd() *cobra.Command {
	var yes bool

	cmd := &cobra.Command{
		Use:   "reset",
		Short: "Delete all locally stored data",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if !yes {
				answer, err := getSimpleText(a.reader, "Type 'yes' to delete all local data", a.out)
				if err != nil {
					return err
				}
				if answer != "yes" {
					fmt.Fprintln(a.out, "Nothing changed.")
					return errAborted
				}
			}

			if err := a.auth.Reset(cmd.Context()); err != nil {
				return err
			}
			fmt.Fprintln(a.out, "Local data deleted.")
			return nil
		},
	}

	cmd.Flags().BoolVarP(&yes, "yes", "y", false, "do not ask for confirmation")
	return cmd
}
