package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"
)

const shellPrompt = "wordtrail> "

func (a *App) shellCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "shell",
		Short: "Start an interactive session",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runREPL(cmd.Context())
		},
	}
}

// runREPL reads commands line by line and runs each through a fresh command
// tree. It returns on exit, quit, EOF or context cancellation.
func (a *App) runREPL(ctx context.Context) error {
	fmt.Fprintln(a.out, "Type 'help' for a list of commands, 'exit' to leave.")

	for {
		if err := ctx.Err(); err != nil {
			return nil
		}

		fmt.Fprint(a.out, a.replStatus(ctx)+shellPrompt)

		line, err := a.reader.ReadString('\n')
		if err != nil && !errors.Is(err, io.EOF) {
			return err
		}
		eof := err != nil

		parts := strings.Fields(line)
		switch {
		case len(parts) == 0:
		case parts[0] == "exit" || parts[0] == "quit":
			fmt.Fprintln(a.out, "Bye!")
			return nil
		case parts[0] == "shell":
			fmt.Fprintln(a.out, "Already in the shell.")
		default:
			if err := a.run(ctx, parts); err != nil {
				fmt.Fprintln(a.out, "Error:", err)
			}
		}

		if eof {
			fmt.Fprintln(a.out)
			return nil
		}
	}
}

func (a *App) replStatus(ctx context.Context) string {
	if !a.identity.IsAuthenticated(ctx) {
		return "[guest] "
	}
	id, err := a.identity.ResolveAndCache(ctx)
	if err != nil {
		return "[signed in] "
	}
	return "[" + id.Username + "] "
}
