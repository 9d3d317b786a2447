package cli

import (
	"bufio"
	"context"
	"database/sql"
	"fmt"
	"os"

	"github.com/terrabond/terrabond-cli/internal/client/api"
	"github.com/terrabond/terrabond-cli/internal/client/config"
	"github.com/terrabond/terrabond-cli/internal/client/guard"
	sessionrepo "github.com/terrabond/terrabond-cli/internal/client/repositories/session"
	"github.com/terrabond/terrabond-cli/internal/client/services"
	"github.com/terrabond/terrabond-cli/internal/logging"

	_ "modernc.org/sqlite"
)

// sessionTokens bridges the API clients and the session manager. The
// clients are constructed before the manager, so the token resolves lazily
// through this indirection.
type sessionTokens struct {
	auth services.AuthService
}

func (s *sessionTokens) Token() string {
	if s.auth == nil {
		return ""
	}
	return s.auth.Token()
}

// App is the interactive TerraBond client. It owns the session manager, the
// three backend service clients and the current route, which the REPL keeps
// in sync with the guard decisions.
type App struct {
	config *config.Config
	log    logging.Logger

	db      *sql.DB
	auth    services.AuthService
	authAPI api.AuthClient
	users   *api.UserClient
	social  *api.SocialClient

	reader *bufio.Reader
	route  string
}

// NewApp opens the local session database, runs its migrations and wires
// the service clients and the session manager.
func NewApp(ctx context.Context, c *config.Config, log logging.Logger) (*App, error) {
	db, err := sessionrepo.Open(ctx, c.SessionDBPath)
	if err != nil {
		return nil, fmt.Errorf("opening session database: %w", err)
	}

	tokens := &sessionTokens{}
	authAPI := api.NewAuthClient(api.New(c.AuthServiceURL, c.RequestTimeout, tokens))
	userAPI := api.NewUserClient(api.New(c.UserServiceURL, c.RequestTimeout, tokens))
	socialAPI := api.NewSocialClient(api.New(c.SocialServiceURL, c.RequestTimeout, tokens))

	repo := sessionrepo.NewSQLiteRepository(db)
	auth := services.NewAuthService(authAPI, repo, log)
	tokens.auth = auth

	app := &App{
		config:  c,
		log:     log,
		db:      db,
		auth:    auth,
		authAPI: authAPI,
		users:   userAPI,
		social:  socialAPI,
		reader:  bufio.NewReader(os.Stdin),
		route:   guard.RouteLogin,
	}
	auth.SetNavigator(func() { app.route = guard.RouteLogin })

	return app, nil
}

// Run restores the persisted session, validates it against the auth service
// and starts the REPL. A stored session the server no longer accepts is
// discarded before the first prompt.
func (a *App) Run(ctx context.Context) error {
	defer func() {
		if err := a.db.Close(); err != nil {
			a.log.Warn(ctx, "closing session database", "error", err)
		}
	}()

	if err := a.auth.Initialize(ctx); err != nil {
		return fmt.Errorf("restoring session: %w", err)
	}

	if a.auth.IsAuthenticated() {
		if a.auth.ValidateToken(ctx) {
			a.route = guard.RouteFeed
		} else {
			a.log.Warn(ctx, "stored session rejected by the auth service, logging out")
			a.auth.Logout(ctx)
		}
	}

	printlnFn("Welcome to TerraBond (type 'help' for commands)")
	runREPL(ctx, a, bufio.NewScanner(os.Stdin))
	return nil
}

// visit applies the route's guard to the current session snapshot. An
// allowed navigation updates the tracked route; a denied one prints the
// redirect and moves there instead.
func (a *App) visit(route string) bool {
	d := guard.Resolve(route, a.auth.Snapshot())
	if d.Allowed {
		a.route = route
		return true
	}
	printlnFn("Redirected to", d.RedirectTo)
	a.route = d.RedirectTo
	return false
}

// statusLine renders the prompt prefix: username when logged in, plus the
// current route.
func (a *App) statusLine() string {
	if u := a.auth.CurrentUser(); u != nil {
		return fmt.Sprintf("%s %s", u.Username, a.route)
	}
	return a.route
}

func (a *App) isLoggedIn() bool {
	return a.auth.IsAuthenticated()
}
