package cli

import (
	"bufio"
	"context"
	"io"

	"github.com/dmitrijs2005/wordtrail/internal/client/client"
	"github.com/dmitrijs2005/wordtrail/internal/client/config"
	"github.com/dmitrijs2005/wordtrail/internal/client/notify"
	"github.com/dmitrijs2005/wordtrail/internal/client/repositories/kv"
	"github.com/dmitrijs2005/wordtrail/internal/client/services"
	"github.com/dmitrijs2005/wordtrail/internal/logging"

	_ "modernc.org/sqlite"
)

// App holds the services behind the CLI commands.
type App struct {
	settings services.SettingsService
	identity services.IdentityResolver
	session  services.SessionService
	profile  services.ProfileService
	lexicon  services.LexiconService
	auth     services.AuthService

	out    io.Writer
	reader *bufio.Reader
	closer io.Closer
}

func newApp(store kv.Store, api client.Client, log logging.Logger, in io.Reader, out io.Writer) *App {
	notifier := notify.NewWriter(out)
	identity := services.NewIdentityResolver(store, log)

	return &App{
		settings: services.NewSettingsService(store, api, notifier, log),
		identity: identity,
		session:  services.NewSessionService(store, notifier, log),
		profile:  services.NewProfileService(store, api, identity, log),
		lexicon:  services.NewLexiconService(store, api, log),
		auth:     services.NewAuthService(store, log),
		out:      out,
		reader:   bufio.NewReader(in),
	}
}

// NewApp opens the local store named in c and builds the services.
// Logs go to errOut.
func NewApp(ctx context.Context, c *config.Config, in io.Reader, out, errOut io.Writer) (*App, error) {
	log := logging.New(errOut, c.Log.Level, c.Log.Format)

	repos, err := client.InitStore(ctx, c.StorePath)
	if err != nil {
		log.Error(ctx, "error initializing store", "path", c.StorePath, "err", err)
		return nil, err
	}

	api := client.NewHTTPClient(c.ServerBaseURL)

	a := newApp(repos.KV, api, log, in, out)
	a.closer = repos
	return a, nil
}

// Close releases the local store.
func (a *App) Close() error {
	if a.closer == nil {
		return nil
	}
	return a.closer.Close()
}
