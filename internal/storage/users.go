package storage

import (
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"
)

var (
	// ErrUserExists is returned when the e-mail is already registered.
	ErrUserExists = errors.New("storage: user already exists")

	// ErrUserNotFound is returned when no account matches.
	ErrUserNotFound = errors.New("storage: user not found")
)

// UserRecord is a stored account.
type UserRecord struct {
	ID           int64
	Username     string
	Email        string
	PasswordHash string
	CreatedAt    time.Time
}

// CreateUser inserts a new account. The e-mail must be unique.
func (s *Store) CreateUser(username, email, passwordHash string) (*UserRecord, error) {
	result, err := s.db.Exec(
		"INSERT INTO users (username, email, password_hash) VALUES (?, ?, ?)",
		username, email, passwordHash,
	)
	if err != nil {
		if strings.Contains(err.Error(), "UNIQUE constraint failed") {
			return nil, fmt.Errorf("%w: %s", ErrUserExists, email)
		}
		return nil, fmt.Errorf("storage: cannot create user: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return nil, fmt.Errorf("storage: cannot get inserted ID: %w", err)
	}

	return s.userBy("id", id)
}

// UserByEmail looks up an account by its e-mail.
func (s *Store) UserByEmail(email string) (*UserRecord, error) {
	return s.userBy("email", email)
}

func (s *Store) userBy(column string, value any) (*UserRecord, error) {
	var u UserRecord
	var createdAt any
	err := s.db.QueryRow(
		`SELECT id, username, email, password_hash, created_at FROM users WHERE `+column+` = ?`,
		value,
	).Scan(&u.ID, &u.Username, &u.Email, &u.PasswordHash, &createdAt)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrUserNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query user: %w", err)
	}

	u.CreatedAt = parseTime(createdAt)
	return &u, nil
}

// SetCurrentUser remembers the signed-in account between runs.
func (s *Store) SetCurrentUser(email string) error {
	_, err := s.db.Exec(
		`INSERT INTO signed_in (slot, email) VALUES (1, ?)
		 ON CONFLICT(slot) DO UPDATE SET email = excluded.email`,
		email,
	)
	if err != nil {
		return fmt.Errorf("storage: cannot set current user: %w", err)
	}
	return nil
}

// CurrentUser returns the remembered account, or ErrUserNotFound when
// nobody is signed in or the account was removed.
func (s *Store) CurrentUser() (*UserRecord, error) {
	var email string
	err := s.db.QueryRow("SELECT email FROM signed_in WHERE slot = 1").Scan(&email)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrUserNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query current user: %w", err)
	}
	return s.UserByEmail(email)
}

// ClearCurrentUser forgets the signed-in account.
func (s *Store) ClearCurrentUser() error {
	if _, err := s.db.Exec("DELETE FROM signed_in"); err != nil {
		return fmt.Errorf("storage: cannot clear current user: %w", err)
	}
	return nil
}
