package account

import (
	"errors"
	"path/filepath"
	"testing"

	"golang.org/x/crypto/bcrypt"

	"github.com/vovakirdan/dodge-racer/internal/core"
	"github.com/vovakirdan/dodge-racer/internal/storage"
)

type notices []core.Notice

func (n *notices) Notify(notice core.Notice) {
	*n = append(*n, notice)
}

func (n notices) last() core.Notice {
	if len(n) == 0 {
		return core.Notice{}
	}
	return n[len(n)-1]
}

func newTestService(t *testing.T) (*Service, *storage.Store, *notices) {
	t.Helper()
	store, err := storage.Open(filepath.Join(t.TempDir(), "accounts.db"))
	if err != nil {
		t.Fatalf("storage.Open: %v", err)
	}
	t.Cleanup(func() { store.Close() })

	n := &notices{}
	return NewService(store, WithNotifier(n), WithHashCost(bcrypt.MinCost)), store, n
}

func TestRegisterSignsIn(t *testing.T) {
	svc, store, n := newTestService(t)

	u, err := svc.Register("  Ana ", "  Ana@Example.COM ", "secret", "secret")
	if err != nil {
		t.Fatalf("Register: %v", err)
	}
	if u.ID != "ana@example.com" || u.DisplayName != "Ana" {
		t.Errorf("user = %+v", u)
	}
	if n.last().Severity != core.SeveritySuccess {
		t.Errorf("notice = %+v, want success", n.last())
	}

	cur, ok := svc.CurrentUser()
	if !ok || cur != u {
		t.Errorf("CurrentUser = %+v, %v; want %+v", cur, ok, u)
	}

	rec, err := store.UserByEmail("ana@example.com")
	if err != nil {
		t.Fatalf("UserByEmail: %v", err)
	}
	if rec.PasswordHash == "secret" {
		t.Error("password stored in plain text")
	}
}

func TestRegisterValidation(t *testing.T) {
	tests := []struct {
		name     string
		username string
		email    string
		password string
		confirm  string
		want     error
	}{
		{"mismatch", "ana", "ana@example.com", "a", "b", ErrPasswordMismatch},
		{"empty username", " ", "ana@example.com", "a", "a", ErrInvalidInput},
		{"empty password", "ana", "ana@example.com", "", "", ErrInvalidInput},
		{"bad email", "ana", "ana.example.com", "a", "a", ErrInvalidInput},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, _, n := newTestService(t)
			_, err := svc.Register(tt.username, tt.email, tt.password, tt.confirm)
			if !errors.Is(err, tt.want) {
				t.Errorf("err = %v, want %v", err, tt.want)
			}
			if n.last().Severity != core.SeverityError {
				t.Errorf("notice = %+v, want error", n.last())
			}
			if _, ok := svc.CurrentUser(); ok {
				t.Error("failed registration signed someone in")
			}
		})
	}
}

func TestRegisterDuplicateEmail(t *testing.T) {
	svc, _, _ := newTestService(t)

	if _, err := svc.Register("ana", "ana@example.com", "pw", "pw"); err != nil {
		t.Fatalf("Register: %v", err)
	}
	if _, err := svc.Register("imposter", "ANA@example.com ", "pw2", "pw2"); !errors.Is(err, ErrEmailTaken) {
		t.Errorf("duplicate Register err = %v, want ErrEmailTaken", err)
	}
}

func TestLoginLogout(t *testing.T) {
	svc, _, n := newTestService(t)

	if _, err := svc.Register("ana", "ana@example.com", "pw", "pw"); err != nil {
		t.Fatalf("Register: %v", err)
	}
	if err := svc.Logout(); err != nil {
		t.Fatalf("Logout: %v", err)
	}
	if _, ok := svc.CurrentUser(); ok {
		t.Fatal("still signed in after logout")
	}

	if _, err := svc.Login("ana@example.com", "wrong"); !errors.Is(err, ErrInvalidCredentials) {
		t.Errorf("wrong password err = %v", err)
	}
	if _, err := svc.Login("bob@example.com", "pw"); !errors.Is(err, ErrInvalidCredentials) {
		t.Errorf("unknown email err = %v", err)
	}
	if _, ok := svc.CurrentUser(); ok {
		t.Fatal("failed login signed someone in")
	}

	u, err := svc.Login(" ANA@example.com", "pw")
	if err != nil {
		t.Fatalf("Login: %v", err)
	}
	if u.DisplayName != "ana" {
		t.Errorf("user = %+v", u)
	}
	if n.last().Title != "Logged in" {
		t.Errorf("notice = %+v", n.last())
	}

	// Logging out twice is fine.
	if err := svc.Logout(); err != nil {
		t.Errorf("Logout: %v", err)
	}
	if err := svc.Logout(); err != nil {
		t.Errorf("second Logout: %v", err)
	}
}

func TestProfile(t *testing.T) {
	svc, store, _ := newTestService(t)

	if _, err := svc.Profile([]string{"racer"}); !errors.Is(err, ErrNotSignedIn) {
		t.Errorf("Profile signed out err = %v", err)
	}

	if _, err := svc.Register("élodie", "elo@example.com", "pw", "pw"); err != nil {
		t.Fatalf("Register: %v", err)
	}
	store.SaveScore("racer", "elo@example.com", 120)
	store.SaveScore("racer", "elo@example.com", 80)
	store.SaveScore("unlisted", "elo@example.com", 5)

	p, err := svc.Profile([]string{"racer", "game2", "game3"})
	if err != nil {
		t.Fatalf("Profile: %v", err)
	}
	if p.Initial != "É" {
		t.Errorf("Initial = %q, want É", p.Initial)
	}
	if len(p.Bests) != 3 || p.Bests["racer"] != 120 || p.Bests["game2"] != 0 {
		t.Errorf("Bests = %v", p.Bests)
	}
}
