// Package services contains application services for the TerraBond client.
// This file defines the session/authentication service: the single source of
// truth for "who is logged in", synchronized with durable storage and the
// remote auth service.
package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"slices"
	"sync"
	"time"

	"github.com/terrabond/terrabond-cli/internal/client/api"
	"github.com/terrabond/terrabond-cli/internal/client/models"
	sessionrepo "github.com/terrabond/terrabond-cli/internal/client/repositories/session"
	"github.com/terrabond/terrabond-cli/internal/common"
	"github.com/terrabond/terrabond-cli/internal/logging"
)

// logoutNotifyTimeout bounds the fire-and-forget server notification sent by
// Logout. Local state is cleared regardless of its outcome.
const logoutNotifyTimeout = 5 * time.Second

// Snapshot is the read-only session view published to observers and
// consulted by route guards. Authenticated is true iff a session (token and
// user together) exists.
type Snapshot struct {
	User          *models.User
	Authenticated bool
}

// AuthService tracks login state, persists credentials, and gates route
// access.
//
// Contract:
//   - Initialize: restore the persisted session, once, at startup; a half
//     pair or unparsable user record is corrupt and is silently repaired by
//     clearing storage.
//   - Login/Register: establish the session on a successful envelope;
//     failures surface a display string and leave state untouched.
//   - Logout: best-effort server notify, then unconditionally clear durable
//     and in-memory state. Never fails from the caller's perspective.
//   - ValidateToken: degrade every failure to false; mutate nothing.
//   - The synchronous reads (CurrentUser, Token, IsAuthenticated, HasRole,
//     IsAdmin, Snapshot) never perform network I/O.
//
// State changes are published to subscribers in order: a login that
// succeeds publishes session-established before Login returns.
type AuthService interface {
	Initialize(ctx context.Context) error
	Login(ctx context.Context, req models.LoginRequest) error
	Register(ctx context.Context, req models.RegisterRequest) error
	Logout(ctx context.Context)
	ValidateToken(ctx context.Context) bool

	CurrentUser() *models.User
	Token() string
	IsAuthenticated() bool
	HasRole(role models.Role) bool
	IsAdmin() bool
	Snapshot() Snapshot
	TokenExpiry() (time.Time, bool)

	UpdateStoredUser(ctx context.Context, user models.User) error
	Subscribe(fn func(Snapshot)) (cancel func())
	SetNavigator(fn func())
}

// authService is the concrete AuthService backed by the remote auth client
// and the local session repository.
type authService struct {
	client api.AuthClient
	repo   sessionrepo.Repository
	log    logging.Logger

	// navigate is invoked after Logout to route the UI back to the public
	// entry page. Optional.
	navigate func()

	mu          sync.Mutex
	token       string
	user        *models.User
	initialized bool

	subs     map[int]func(Snapshot)
	subOrder []int
	nextSub  int
}

// NewAuthService constructs an AuthService bound to the given API client and
// session repository.
func NewAuthService(client api.AuthClient, repo sessionrepo.Repository, log logging.Logger) AuthService {
	return &authService{
		client: client,
		repo:   repo,
		log:    log,
		subs:   make(map[int]func(Snapshot)),
	}
}

// SetNavigator registers the callback invoked after Logout. The CLI wires
// it before running.
func (a *authService) SetNavigator(fn func()) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.navigate = fn
}

// Initialize restores the persisted session. It runs its restore logic at
// most once per process; later calls are no-ops. A stored token without a
// matching user record (or the reverse), or a user record that does not
// parse, is treated as corrupt: storage is cleared and the service stays
// logged out without surfacing an error.
func (a *authService) Initialize(ctx context.Context) error {
	a.mu.Lock()
	if a.initialized {
		a.mu.Unlock()
		return nil
	}
	a.initialized = true
	a.mu.Unlock()

	token, userData, err := a.repo.Load(ctx)
	if err != nil {
		return err
	}

	user, err := decodeSession(token, userData)
	if err != nil {
		if errors.Is(err, common.ErrCorruptSession) {
			a.log.Warn(ctx, "clearing stored session", "error", err)
			return a.clearCorrupt(ctx)
		}
		return err
	}
	if user == nil {
		return nil
	}

	a.setSession(token, user)
	return nil
}

// decodeSession checks the persisted (token, user) pair. An empty store
// yields a nil user and no error; a half pair, or a user record that does
// not parse, wraps common.ErrCorruptSession.
func decodeSession(token string, userData []byte) (*models.User, error) {
	if token == "" && len(userData) == 0 {
		return nil, nil
	}
	if token == "" || len(userData) == 0 {
		return nil, fmt.Errorf("half-persisted session: %w", common.ErrCorruptSession)
	}
	var user models.User
	if err := json.Unmarshal(userData, &user); err != nil {
		return nil, fmt.Errorf("stored user record does not parse: %w", common.ErrCorruptSession)
	}
	return &user, nil
}

func (a *authService) clearCorrupt(ctx context.Context) error {
	if err := a.repo.Clear(ctx); err != nil {
		a.log.Error(ctx, "failed to clear corrupt session", "error", err)
	}
	return nil
}

// Login authenticates against the remote auth service and, on success,
// persists and publishes the new session. On failure the returned error's
// message is the display string for the user: the server-supplied message
// when the service rejected the credentials, a generic fallback otherwise.
// Session state is left untouched on failure.
func (a *authService) Login(ctx context.Context, req models.LoginRequest) error {
	res, err := a.client.Login(ctx, req)
	if err != nil {
		return a.displayError(ctx, err, "Login failed")
	}
	return a.establishSession(ctx, res, "Login failed")
}

// Register creates an account and establishes the session exactly like
// Login.
func (a *authService) Register(ctx context.Context, req models.RegisterRequest) error {
	res, err := a.client.Register(ctx, req)
	if err != nil {
		return a.displayError(ctx, err, "Registration failed")
	}
	return a.establishSession(ctx, res, "Registration failed")
}

// establishSession persists the (token, user) pair atomically, then updates
// in-memory state and publishes. Nothing is persisted or published if any
// step fails.
func (a *authService) establishSession(ctx context.Context, res models.JwtResponse, fallback string) error {
	if res.Token == "" {
		return &api.Error{Message: fallback}
	}

	user := models.NewSessionUser(res)
	data, err := json.Marshal(user)
	if err != nil {
		return a.displayError(ctx, err, fallback)
	}
	if err := a.repo.Save(ctx, res.Token, data); err != nil {
		return a.displayError(ctx, err, fallback)
	}

	a.setSession(res.Token, &user)
	return nil
}

// displayError maps an internal failure to a user-displayable one. An
// application-level rejection already carries the server message; everything
// else (transport failures, local persistence errors) is logged and replaced
// with the generic fallback.
func (a *authService) displayError(ctx context.Context, err error, fallback string) error {
	var apiErr *api.Error
	if errors.As(err, &apiErr) {
		return apiErr
	}
	a.log.Warn(ctx, "authentication request failed", "error", err)
	return &api.Error{Message: fallback}
}

// Logout notifies the server that the token should be revoked
// (fire-and-forget), then unconditionally clears durable storage and
// in-memory state, publishes the logged-out snapshot, and navigates back to
// the public entry page. Calling Logout twice produces the same end state as
// calling it once.
func (a *authService) Logout(ctx context.Context) {
	a.mu.Lock()
	token := a.token
	navigate := a.navigate
	a.mu.Unlock()

	if token != "" {
		// The token is handed to the notify explicitly: local state is
		// cleared below before the request resolves, so reading it lazily
		// would send an unauthenticated revoke.
		go func() {
			nctx, cancel := context.WithTimeout(context.Background(), logoutNotifyTimeout)
			defer cancel()
			if err := a.client.Logout(nctx, token); err != nil {
				a.log.Debug(nctx, "logout notify did not reach the server", "error", err)
			}
		}()
	}

	if err := a.repo.Clear(ctx); err != nil {
		a.log.Error(ctx, "failed to clear session storage on logout", "error", err)
	}

	a.setSession("", nil)

	if navigate != nil {
		navigate()
	}
}

// ValidateToken asks the server whether the stored token is still accepted.
// Every failure degrades to false; callers cannot distinguish "invalid
// token" from "service unreachable" and are expected to treat both as a
// reason to log out. Session state is not mutated here.
func (a *authService) ValidateToken(ctx context.Context) bool {
	if a.Token() == "" {
		return false
	}
	ok, err := a.client.Validate(ctx)
	if err != nil {
		return false
	}
	return ok
}

// UpdateStoredUser replaces the in-memory and persisted user snapshot
// without touching the token. Used after profile edits elsewhere in the app.
func (a *authService) UpdateStoredUser(ctx context.Context, user models.User) error {
	data, err := json.Marshal(user)
	if err != nil {
		return err
	}
	if err := a.repo.SaveUser(ctx, data); err != nil {
		return err
	}

	a.mu.Lock()
	a.user = &user
	a.mu.Unlock()
	a.publish()
	return nil
}

func (a *authService) CurrentUser() *models.User {
	a.mu.Lock()
	defer a.mu.Unlock()
	return cloneUser(a.user)
}

func (a *authService) Token() string {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.token
}

func (a *authService) IsAuthenticated() bool {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.user != nil && a.token != ""
}

func (a *authService) HasRole(role models.Role) bool {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.user.HasRole(role)
}

func (a *authService) IsAdmin() bool {
	return a.HasRole(models.RoleAdmin)
}

// Snapshot returns the most recently published session view.
func (a *authService) Snapshot() Snapshot {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.snapshotLocked()
}

func (a *authService) snapshotLocked() Snapshot {
	return Snapshot{
		User:          cloneUser(a.user),
		Authenticated: a.user != nil && a.token != "",
	}
}

// Subscribe registers an observer for session state changes. The current
// snapshot is replayed to the new subscriber immediately so consumers that
// poll once always resolve against the most recently published value. The
// returned cancel function removes the subscription.
func (a *authService) Subscribe(fn func(Snapshot)) func() {
	a.mu.Lock()
	id := a.nextSub
	a.nextSub++
	a.subs[id] = fn
	a.subOrder = append(a.subOrder, id)
	snap := a.snapshotLocked()
	a.mu.Unlock()

	fn(snap)

	return func() {
		a.mu.Lock()
		defer a.mu.Unlock()
		delete(a.subs, id)
	}
}

// setSession swaps the in-memory state and publishes the new snapshot.
func (a *authService) setSession(token string, user *models.User) {
	a.mu.Lock()
	a.token = token
	a.user = user
	a.mu.Unlock()
	a.publish()
}

func (a *authService) publish() {
	a.mu.Lock()
	snap := a.snapshotLocked()
	fns := make([]func(Snapshot), 0, len(a.subs))
	for _, id := range a.subOrder {
		if fn, ok := a.subs[id]; ok {
			fns = append(fns, fn)
		}
	}
	a.mu.Unlock()

	for _, fn := range fns {
		fn(snap)
	}
}

func cloneUser(u *models.User) *models.User {
	if u == nil {
		return nil
	}
	c := *u
	c.Roles = slices.Clone(u.Roles)
	c.TravelStyles = slices.Clone(u.TravelStyles)
	c.Languages = slices.Clone(u.Languages)
	c.Interests = slices.Clone(u.Interests)
	return &c
}
