package session

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/ultraupload/ultraupload/internal/client/api"
	"github.com/ultraupload/ultraupload/internal/client/kvstore"
	"github.com/ultraupload/ultraupload/internal/client/models"
	"github.com/ultraupload/ultraupload/internal/common"
	"github.com/ultraupload/ultraupload/internal/logging"
)

// State is the session-level authentication state.
type State int

const (
	// StateUnknown: Restore has not completed yet.
	StateUnknown State = iota
	StateUnauthenticated
	StateAuthenticated
)

func (s State) String() string {
	switch s {
	case StateUnauthenticated:
		return "unauthenticated"
	case StateAuthenticated:
		return "authenticated"
	default:
		return "unknown"
	}
}

// Snapshot is a read-only copy of the session state.
type Snapshot struct {
	State    State
	User     *models.User
	Loading  bool
	Language string
	HasToken bool
}

// Manager is the single owner of the session state.
type Manager struct {
	client api.Client
	store  kvstore.Store
	log    logging.Logger
	now    func() time.Time

	mu       sync.RWMutex
	user     *models.User
	token    string
	inFlight int
	restored bool
	language string

	subsMu  sync.Mutex
	subs    map[int]func(Snapshot)
	nextSub int
}

// Option customises a Manager.
type Option func(*Manager)

// WithLogger sets the logger; the default discards everything.
func WithLogger(l logging.Logger) Option {
	return func(m *Manager) { m.log = l }
}

// WithDefaultLanguage sets the language used until one is restored or set.
func WithDefaultLanguage(code string) Option {
	return func(m *Manager) { m.language = code }
}

// WithClock replaces time.Now, used to judge token expiry.
func WithClock(now func() time.Time) Option {
	return func(m *Manager) { m.now = now }
}

// New returns a Manager in StateUnknown with the loading flag raised until
// Restore completes.
func New(client api.Client, store kvstore.Store, opts ...Option) *Manager {
	m := &Manager{
		client:   client,
		store:    store,
		log:      logging.Nop(),
		now:      time.Now,
		language: common.DefaultLanguage,
		subs:     make(map[int]func(Snapshot)),
	}
	for _, o := range opts {
		o(m)
	}
	m.log = m.log.With("component", "session")
	return m
}

// Snapshot returns a copy of the current state.
func (m *Manager) Snapshot() Snapshot {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.snapshotLocked()
}

func (m *Manager) snapshotLocked() Snapshot {
	s := Snapshot{
		State:    m.stateLocked(),
		Loading:  m.loadingLocked(),
		Language: m.language,
		HasToken: m.token != "",
	}
	if m.user != nil {
		u := *m.user
		s.User = &u
	}
	return s
}

func (m *Manager) stateLocked() State {
	switch {
	case !m.restored:
		return StateUnknown
	case m.user != nil:
		return StateAuthenticated
	default:
		return StateUnauthenticated
	}
}

func (m *Manager) loadingLocked() bool {
	return !m.restored || m.inFlight > 0
}

// User returns the current user, if any.
func (m *Manager) User() (models.User, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if m.user == nil {
		return models.User{}, false
	}
	return *m.user, true
}

// IsLoading reports whether Restore has not finished yet or an operation is
// in flight.
func (m *Manager) IsLoading() bool {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.loadingLocked()
}

// Language returns the current language code.
func (m *Manager) Language() string {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.language
}

// State returns the current authentication state.
func (m *Manager) State() State {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.stateLocked()
}

// IsAuthenticated reports whether a user is present, whatever the loading flag.
func (m *Manager) IsAuthenticated() bool {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.user != nil
}

// HasToken reports whether a bearer token is held. The token itself is not
// exposed.
func (m *Manager) HasToken() bool {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.token != ""
}

// Subscribe registers fn to receive a Snapshot after every state change.
// The returned function removes the subscription.
func (m *Manager) Subscribe(fn func(Snapshot)) (unsubscribe func()) {
	m.subsMu.Lock()
	id := m.nextSub
	m.nextSub++
	m.subs[id] = fn
	m.subsMu.Unlock()

	return func() {
		m.subsMu.Lock()
		delete(m.subs, id)
		m.subsMu.Unlock()
	}
}

func (m *Manager) notify() {
	snap := m.Snapshot()

	m.subsMu.Lock()
	fns := make([]func(Snapshot), 0, len(m.subs))
	for _, fn := range m.subs {
		fns = append(fns, fn)
	}
	m.subsMu.Unlock()

	for _, fn := range fns {
		fn(snap)
	}
}

// begin raises the loading flag for one operation; the returned func lowers it.
func (m *Manager) begin() (end func()) {
	m.mu.Lock()
	m.inFlight++
	m.mu.Unlock()
	m.notify()

	return func() {
		m.mu.Lock()
		m.inFlight--
		m.mu.Unlock()
		m.notify()
	}
}

// Restore loads the persisted user, token and language. Anything missing,
// malformed or unreadable leaves the session unauthenticated; such problems
// are logged and never returned. The loading flag drops once it returns.
func (m *Manager) Restore(ctx context.Context) State {
	user, token, err := m.readSession(ctx)
	switch {
	case err == errNoSession:
		m.log.Debug(ctx, "no persisted session")
	case err != nil:
		m.log.Warn(ctx, "session not restored", "reason", err)
	}

	lang, ok, lerr := m.store.Get(ctx, common.LanguageKey)
	if lerr != nil {
		m.log.Warn(ctx, "language not restored", "error", lerr)
	}

	m.mu.Lock()
	if err == nil {
		m.user = &user
		m.token = token
	}
	if lerr == nil && ok && lang != "" {
		m.language = lang
	}
	m.restored = true
	state := m.stateLocked()
	m.mu.Unlock()

	m.log.Info(ctx, "session restored", "state", state.String())
	m.notify()
	return state
}

var errNoSession = errors.New("no persisted session")

func (m *Manager) readSession(ctx context.Context) (models.User, string, error) {
	rawUser, userOK, err := m.store.Get(ctx, common.UserKey)
	if err != nil {
		return models.User{}, "", fmt.Errorf("read user: %w", err)
	}
	token, tokenOK, err := m.store.Get(ctx, common.TokenKey)
	if err != nil {
		return models.User{}, "", fmt.Errorf("read token: %w", err)
	}

	switch {
	case !userOK && !tokenOK:
		return models.User{}, "", errNoSession
	case !userOK:
		return models.User{}, "", fmt.Errorf("token without user: %w", errNoSession)
	case !tokenOK:
		return models.User{}, "", fmt.Errorf("user without token: %w", errNoSession)
	}

	var user models.User
	if err := json.Unmarshal([]byte(rawUser), &user); err != nil {
		return models.User{}, "", fmt.Errorf("malformed user: %w", err)
	}
	if !user.Valid() {
		return models.User{}, "", errors.New("malformed user: missing id or email")
	}
	if err := checkToken(token, m.now()); err != nil {
		return models.User{}, "", err
	}
	return user, token, nil
}

// persistSession writes the user and token pair in one store call.
func (m *Manager) persistSession(ctx context.Context, res api.Result) error {
	raw, err := json.Marshal(res.User)
	if err != nil {
		return fmt.Errorf("encode user: %w", err)
	}
	return m.store.MultiSet(ctx, map[string]string{
		common.UserKey:  string(raw),
		common.TokenKey: res.Token,
	})
}

func (m *Manager) setSession(user models.User, token string) {
	m.mu.Lock()
	m.user = &user
	m.token = token
	m.mu.Unlock()
}

// Login authenticates against the backend and, on success, persists and
// adopts the returned user and token. On failure the state is unchanged.
// The caller is expected to have checked that both arguments are non-empty.
func (m *Manager) Login(ctx context.Context, email, password string) error {
	end := m.begin()
	defer end()

	res, err := m.client.Login(ctx, email, password)
	if err != nil {
		m.log.Warn(ctx, "login failed", "error", err)
		return loginError(err)
	}

	if err := m.persistSession(ctx, res); err != nil {
		m.log.Error(ctx, "login succeeded but session was not persisted", "error", err)
		return &AuthenticationError{Message: MsgUnexpected, Err: err}
	}

	m.setSession(res.User, res.Token)
	m.log.Info(ctx, "logged in", "user_id", res.User.ID)
	return nil
}

func loginError(err error) *AuthenticationError {
	switch api.KindOf(err) {
	case api.KindRejected, api.KindDuplicate, api.KindMissingToken:
		return &AuthenticationError{Message: MsgBadCredentials, Err: err}
	case api.KindTransport:
		return &AuthenticationError{Message: MsgConnection, Err: err}
	default:
		return &AuthenticationError{Message: MsgUnexpected, Err: err}
	}
}

// Register creates an account and, on success, behaves like Login.
func (m *Manager) Register(ctx context.Context, req models.RegistrationRequest) error {
	end := m.begin()
	defer end()

	res, err := m.client.Register(ctx, req)
	if err != nil {
		m.log.Warn(ctx, "registration failed", "error", err)
		return registrationError(err)
	}

	if err := m.persistSession(ctx, res); err != nil {
		m.log.Error(ctx, "registration succeeded but session was not persisted", "error", err)
		return &RegistrationError{Message: MsgUnexpected, Err: err}
	}

	m.setSession(res.User, res.Token)
	m.log.Info(ctx, "registered", "user_id", res.User.ID)
	return nil
}

func registrationError(err error) *RegistrationError {
	switch api.KindOf(err) {
	case api.KindDuplicate:
		return &RegistrationError{Message: MsgEmailRegistered, Err: err}
	case api.KindRejected, api.KindMissingToken, api.KindTransport:
		return &RegistrationError{Message: MsgRegisterLater, Err: err}
	default:
		return &RegistrationError{Message: MsgUnexpected, Err: err}
	}
}

// Logout removes the persisted user and token and then clears the
// in-memory session. If the store cannot be updated the session is kept.
func (m *Manager) Logout(ctx context.Context) error {
	end := m.begin()
	defer end()

	if err := m.store.MultiRemove(ctx, common.UserKey, common.TokenKey); err != nil {
		m.log.Error(ctx, "logout failed", "error", err)
		return &StorageError{Message: MsgLogoutFailed, Err: err}
	}

	m.mu.Lock()
	m.user = nil
	m.token = ""
	m.mu.Unlock()

	m.log.Info(ctx, "logged out")
	return nil
}

// UpdateAvatar replaces the avatar reference of the current user. Without a
// user it does nothing.
func (m *Manager) UpdateAvatar(ctx context.Context, avatarURL string) error {
	current, ok := m.User()
	if !ok {
		return nil
	}

	updated := current.WithAvatar(avatarURL)
	raw, err := json.Marshal(updated)
	if err != nil {
		return &StorageError{Message: MsgAvatarFailed, Err: err}
	}

	if err := m.store.Set(ctx, common.UserKey, string(raw)); err != nil {
		m.log.Error(ctx, "avatar not persisted", "error", err)
		return &StorageError{Message: MsgAvatarFailed, Err: err}
	}

	m.mu.Lock()
	applied := m.user != nil && m.user.ID == updated.ID
	var latest *models.User
	if applied {
		m.user = &updated
	} else if m.user != nil {
		u := *m.user
		latest = &u
	}
	m.mu.Unlock()

	if !applied {
		// a logout or login completed meanwhile and wins
		m.log.Warn(ctx, "avatar dropped, session changed during update", "user_id", updated.ID)
		m.resyncUser(ctx, latest)
		return nil
	}

	m.log.Info(ctx, "avatar updated", "user_id", updated.ID)
	m.notify()
	return nil
}

// resyncUser makes @user match the in-memory user again after a write that
// lost a race. Failures are logged only.
func (m *Manager) resyncUser(ctx context.Context, user *models.User) {
	var err error
	if user == nil {
		err = m.store.Remove(ctx, common.UserKey)
	} else {
		var raw []byte
		if raw, err = json.Marshal(user); err == nil {
			err = m.store.Set(ctx, common.UserKey, string(raw))
		}
	}
	if err != nil {
		m.log.Warn(ctx, "stored user not resynced", "error", err)
	}
}

// SetLanguage persists code and adopts it. A failed write is logged and the
// previous preference kept.
func (m *Manager) SetLanguage(ctx context.Context, code string) {
	if code == "" {
		m.log.Warn(ctx, "empty language code ignored")
		return
	}

	if err := m.store.Set(ctx, common.LanguageKey, code); err != nil {
		m.log.Warn(ctx, "language not persisted", "language", code, "error", err)
		return
	}

	m.mu.Lock()
	m.language = code
	m.mu.Unlock()

	m.notify()
}
