// Package account manages player accounts: registration, login and the
// signed-in user remembered between runs.
package account

import (
	"errors"
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"

	"golang.org/x/crypto/bcrypt"

	"github.com/vovakirdan/dodge-racer/internal/core"
	"github.com/vovakirdan/dodge-racer/internal/storage"
)

var (
	ErrPasswordMismatch   = errors.New("account: passwords do not match")
	ErrEmailTaken         = errors.New("account: email already registered")
	ErrInvalidCredentials = errors.New("account: invalid email or password")
	ErrInvalidInput       = errors.New("account: invalid input")
	ErrNotSignedIn        = errors.New("account: not signed in")
)

// Store is the persistence the service needs.
type Store interface {
	CreateUser(username, email, passwordHash string) (*storage.UserRecord, error)
	UserByEmail(email string) (*storage.UserRecord, error)
	SetCurrentUser(email string) error
	CurrentUser() (*storage.UserRecord, error)
	ClearCurrentUser() error
	UserBests(email string) (map[string]int, error)
}

// Service implements account operations on top of a Store and reports
// their outcome as notices.
type Service struct {
	store    Store
	notifier core.Notifier
	cost     int
}

// Option configures a Service.
type Option func(*Service)

// WithNotifier sends a notice for every register, login and logout.
func WithNotifier(n core.Notifier) Option {
	return func(s *Service) { s.notifier = n }
}

// WithHashCost overrides the bcrypt cost.
func WithHashCost(cost int) Option {
	return func(s *Service) { s.cost = cost }
}

// NewService creates an account service.
func NewService(store Store, opts ...Option) *Service {
	s := &Service{
		store:    store,
		notifier: core.Discard,
		cost:     bcrypt.DefaultCost,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// NormalizeEmail trims and lower-cases an e-mail address.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// Register creates an account and signs it in.
func (s *Service) Register(username, email, password, confirm string) (core.User, error) {
	username = strings.TrimSpace(username)
	email = NormalizeEmail(email)

	if username == "" || email == "" || password == "" {
		return s.fail("Sign-up failed", "Username, email and password are required.",
			fmt.Errorf("%w: empty field", ErrInvalidInput))
	}
	if !strings.Contains(email, "@") {
		return s.fail("Sign-up failed", "That email address does not look right.",
			fmt.Errorf("%w: email %q", ErrInvalidInput, email))
	}
	if password != confirm {
		return s.fail("Sign-up failed", "Passwords do not match.", ErrPasswordMismatch)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), s.cost)
	if err != nil {
		return core.User{}, fmt.Errorf("account: hash password: %w", err)
	}

	rec, err := s.store.CreateUser(username, email, string(hash))
	if errors.Is(err, storage.ErrUserExists) {
		return s.fail("Account exists", "This email is already registered. Log in instead.", ErrEmailTaken)
	}
	if err != nil {
		return core.User{}, fmt.Errorf("account: register: %w", err)
	}

	if err := s.store.SetCurrentUser(rec.Email); err != nil {
		return core.User{}, fmt.Errorf("account: sign in: %w", err)
	}

	s.notifier.Notify(core.Notice{
		Severity: core.SeveritySuccess,
		Title:    "Account created",
		Message:  "Welcome! You are signed in.",
	})
	return toUser(rec), nil
}

// Login checks the credentials and signs the account in.
func (s *Service) Login(email, password string) (core.User, error) {
	email = NormalizeEmail(email)

	rec, err := s.store.UserByEmail(email)
	if errors.Is(err, storage.ErrUserNotFound) {
		return s.fail("Login refused", "Wrong email or password.", ErrInvalidCredentials)
	}
	if err != nil {
		return core.User{}, fmt.Errorf("account: login: %w", err)
	}
	if bcrypt.CompareHashAndPassword([]byte(rec.PasswordHash), []byte(password)) != nil {
		return s.fail("Login refused", "Wrong email or password.", ErrInvalidCredentials)
	}

	if err := s.store.SetCurrentUser(rec.Email); err != nil {
		return core.User{}, fmt.Errorf("account: sign in: %w", err)
	}

	s.notifier.Notify(core.Notice{
		Severity: core.SeveritySuccess,
		Title:    "Logged in",
		Message:  fmt.Sprintf("Welcome %s!", rec.Username),
	})
	return toUser(rec), nil
}

// Logout forgets the signed-in account. Logging out twice is not an error.
func (s *Service) Logout() error {
	if err := s.store.ClearCurrentUser(); err != nil {
		return fmt.Errorf("account: logout: %w", err)
	}
	s.notifier.Notify(core.Notice{
		Severity: core.SeverityInfo,
		Title:    "Logged out",
		Message:  "You are now signed out.",
	})
	return nil
}

// CurrentUser returns the signed-in user. Storage failures count as nobody
// being signed in.
func (s *Service) CurrentUser() (core.User, bool) {
	rec, err := s.store.CurrentUser()
	if err != nil {
		return core.User{}, false
	}
	return toUser(rec), true
}

// Profile summarizes the signed-in user.
type Profile struct {
	User    core.User
	Initial string         // Upper-cased first letter of the name
	Bests   map[string]int // Best score per game slot
}

// Profile returns the signed-in user with a best score for each of the
// given game slots, 0 for slots never played.
func (s *Service) Profile(gameIDs []string) (Profile, error) {
	u, ok := s.CurrentUser()
	if !ok {
		return Profile{}, ErrNotSignedIn
	}

	bests, err := s.store.UserBests(u.ID)
	if err != nil {
		return Profile{}, fmt.Errorf("account: profile: %w", err)
	}

	p := Profile{
		User:    u,
		Initial: initial(u.DisplayName),
		Bests:   make(map[string]int, len(gameIDs)),
	}
	for _, id := range gameIDs {
		p.Bests[id] = bests[id]
	}
	return p, nil
}

func (s *Service) fail(title, msg string, err error) (core.User, error) {
	s.notifier.Notify(core.Notice{Severity: core.SeverityError, Title: title, Message: msg})
	return core.User{}, err
}

func toUser(rec *storage.UserRecord) core.User {
	return core.User{ID: rec.Email, DisplayName: rec.Username}
}

func initial(name string) string {
	r, _ := utf8.DecodeRuneInString(strings.TrimSpace(name))
	if r == utf8.RuneError {
		return "?"
	}
	return string(unicode.ToUpper(r))
}

var _ core.Accounts = (*Service)(nil)
