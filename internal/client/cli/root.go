package cli

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/dmitrijs2005/wordtrail/internal/buildinfo"
	"github.com/dmitrijs2005/wordtrail/internal/client/config"
)

// Execute loads the configuration from args and the environment, opens the
// local store and runs the command named in args.
func Execute(ctx context.Context, args []string, in io.Reader, out, errOut io.Writer) error {
	cfg, err := config.LoadConfig(args)
	if err != nil {
		fmt.Fprintln(errOut, "Error:", err)
		return err
	}

	app, err := NewApp(ctx, cfg, in, out, errOut)
	if err != nil {
		fmt.Fprintln(errOut, "Error:", err)
		return err
	}
	defer app.Close()

	if err := app.run(ctx, args); err != nil {
		fmt.Fprintln(errOut, "Error:", err)
		return err
	}
	return nil
}

// run executes one command line against the app.
func (a *App) run(ctx context.Context, args []string) error {
	root := a.newRootCmd()
	root.SetArgs(args)
	return root.ExecuteContext(ctx)
}

func (a *App) newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "wordtrail",
		Short:         "WordTrail command-line client",
		Long:          "Inspect and change the locally stored WordTrail session and learning settings.",
		SilenceUsage:  true,
		SilenceErrors: true,
		Version:       buildinfo.Version(),

		CompletionOptions: cobra.CompletionOptions{DisableDefaultCmd: true},
	}
	root.SetOut(a.out)
	root.SetErr(a.out)
	root.SetIn(a.reader)

	// Resolved by config.LoadConfig before the command tree runs; declared
	// here so the parser accepts them and help lists them.
	pf := root.PersistentFlags()
	pf.StringP("config", "c", "", "path to a JSON or YAML config file")
	pf.StringP("server", "a", "", "backend base URL")
	pf.StringP("store", "d", "", "local store path")
	pf.StringP("log-level", "l", "", "log level (debug, info, warn, error)")

	root.AddCommand(
		a.whoamiCmd(),
		a.loginCmd(),
		a.logoutCmd(),
		a.resetCmd(),
		a.settingsCmd(),
		a.languageCmd(),
		a.lexiconCmd(),
		a.profileCmd(),
		a.versionCmd(),
		a.shellCmd(),
	)
	return root
}

func (a *App) versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print build information",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			buildinfo.PrintBuildData(a.out)
		},
	}
}
