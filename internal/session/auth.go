package session

import (
	"fmt"

	"github.com/charmbracelet/log"
	"github.com/desertthunder/mvx/internal/models"
	"github.com/desertthunder/mvx/internal/shared"
)

// Authenticator is the capability interface consumed by anything needing
// identity operations. The local mock implementation can later be swapped for
// a real identity provider without touching consumers.
type Authenticator interface {
	Login(username, password string) error
	Register(username, email, password, fullName string) error
	Logout() error
	CurrentUser() (models.UserRecord, bool)
}

var _ Authenticator = (*Auth)(nil)

// Auth implements [Authenticator] as a local identity strategy: user records
// are synthesized client-side, the password is ignored entirely and no server
// round-trip ever happens. Failures can only come from serialization or
// storage, never from bad credentials.
type Auth struct {
	store  *Store
	logger *log.Logger
	user   *models.UserRecord

	// onReset is invoked after logout so callers can discard cached state
	// tied to the old identity.
	onReset func()
}

// NewAuth creates the auth facade and rehydrates in-memory state from the
// store: if both the user record and the username are present, the session is
// restored; otherwise the client starts logged out.
func NewAuth(store *Store, logger *log.Logger) (*Auth, error) {
	a := &Auth{store: store, logger: logger}

	raw, hasUser, err := store.Get(KeyUser)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", shared.ErrSessionStorage, err)
	}
	username, hasName, err := store.Get(KeyUsername)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", shared.ErrSessionStorage, err)
	}

	if hasUser && hasName {
		user, err := models.UnmarshalUser([]byte(raw))
		if err != nil {
			logger.Warnf("discarding unreadable stored user: %v", err)
			return a, nil
		}
		a.user = &user
		logger.Debugf("session restored for user: %s", username)
	}

	return a, nil
}

// OnReset registers a hook run after logout.
func (a *Auth) OnReset(fn func()) {
	a.onReset = fn
}

// Login synthesizes a user record for the given username and persists the
// session. The password is intentionally unused; login cannot fail on
// credential grounds.
func (a *Auth) Login(username, _ string) error {
	user := models.UserRecord{
		Username: username,
		Email:    fmt.Sprintf("%s@example.com", username),
		FullName: username,
	}

	if err := a.persist(user); err != nil {
		return err
	}

	a.logger.Infof("mock login successful for user: %s", username)
	return nil
}

// Register builds a user record from the provided registration details and
// persists the session identically to login. There is no uniqueness check;
// every call succeeds.
func (a *Auth) Register(username, email, _ string, fullName string) error {
	if fullName == "" {
		fullName = username
	}

	user := models.UserRecord{
		Username: username,
		Email:    email,
		FullName: fullName,
	}

	if err := a.persist(user); err != nil {
		return err
	}

	a.logger.Infof("mock registration successful for user: %s", username)
	return nil
}

func (a *Auth) persist(user models.UserRecord) error {
	data, err := user.Marshal()
	if err != nil {
		a.logger.Errorf("failed to serialize user record: %v", err)
		return fmt.Errorf("%w: %v", shared.ErrSessionStorage, err)
	}

	if err := a.store.PutSession(user.Username, PlaceholderToken, data); err != nil {
		a.logger.Errorf("failed to persist session: %v", err)
		return fmt.Errorf("%w: %v", shared.ErrSessionStorage, err)
	}

	a.user = &user
	return nil
}

// Logout clears the stored session keys, resets the in-memory user and runs
// the reset hook so cached data tied to the old identity is discarded.
func (a *Auth) Logout() error {
	if err := a.store.Clear(); err != nil {
		a.logger.Errorf("failed to clear session: %v", err)
		return fmt.Errorf("%w: %v", shared.ErrSessionStorage, err)
	}

	a.user = nil
	a.logger.Info("logged out")

	if a.onReset != nil {
		a.onReset()
	}

	return nil
}

// CurrentUser returns the in-memory user record, if any.
func (a *Auth) CurrentUser() (models.UserRecord, bool) {
	if a.user == nil {
		return models.UserRecord{}, false
	}
	return *a.user, true
}

// IsAuthenticated reports whether an in-memory user record is present.
func (a *Auth) IsAuthenticated() bool {
	return a.user != nil
}
