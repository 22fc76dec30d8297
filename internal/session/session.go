// Package session manages operator sessions for the console. State lives in
// SQLite rather than ambient globals, and the clock is injectable so expiry
// and extension are testable without real timers.
package session

import (
	"crypto/rand"
	"database/sql"
	"encoding/hex"
	"fmt"
	"time"
)

// DefaultExpiry is how long a session lasts without extension.
const DefaultExpiry = 12 * time.Hour

// Store manages sessions in SQLite.
type Store struct {
	db     *sql.DB
	now    func() time.Time
	expiry time.Duration
}

// NewStore creates a session store using the real clock.
func NewStore(db *sql.DB) *Store {
	return &Store{db: db, now: time.Now, expiry: DefaultExpiry}
}

// WithClock overrides the store's clock.
func (s *Store) WithClock(now func() time.Time) *Store {
	s.now = now
	return s
}

// Create opens a session for operator and returns its token.
func (s *Store) Create(operator string) (string, error) {
	token, err := generateToken()
	if err != nil {
		return "", fmt.Errorf("generating session token: %w", err)
	}

	expiresAt := s.now().Add(s.expiry)
	if _, err := s.db.Exec(
		"INSERT INTO sessions (token, operator, expires_at) VALUES (?, ?, ?)",
		token, operator, expiresAt,
	); err != nil {
		return "", fmt.Errorf("storing session: %w", err)
	}
	return token, nil
}

// Validate returns the operator for token if the session is live. Expired
// sessions are cleaned up on sight.
func (s *Store) Validate(token string) (string, error) {
	var operator string
	var expiresAt time.Time

	err := s.db.QueryRow(
		"SELECT operator, expires_at FROM sessions WHERE token = ?", token,
	).Scan(&operator, &expiresAt)
	if err == sql.ErrNoRows {
		return "", fmt.Errorf("invalid session")
	}
	if err != nil {
		return "", fmt.Errorf("querying session: %w", err)
	}

	if s.now().After(expiresAt) {
		if _, delErr := s.db.Exec("DELETE FROM sessions WHERE token = ?", token); delErr != nil {
			return "", fmt.Errorf("deleting expired session: %w", delErr)
		}
		return "", fmt.Errorf("session expired")
	}
	return operator, nil
}

// Extend pushes the session's expiry out from now.
func (s *Store) Extend(token string) error {
	expiresAt := s.now().Add(s.expiry)
	res, err := s.db.Exec(
		"UPDATE sessions SET expires_at = ? WHERE token = ?", expiresAt, token,
	)
	if err != nil {
		return fmt.Errorf("extending session: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return fmt.Errorf("invalid session")
	}
	return nil
}

// Destroy removes the session. Destroying a missing session is not an error.
func (s *Store) Destroy(token string) error {
	if _, err := s.db.Exec("DELETE FROM sessions WHERE token = ?", token); err != nil {
		return fmt.Errorf("deleting session: %w", err)
	}
	return nil
}

func generateToken() (string, error) {
	b := make([]byte, 32)
	if _, err := rand.Read(b); err != nil {
		return "", err
	}
	return hex.EncodeToString(b), nil
}
