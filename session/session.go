// Package session holds the signed-in state shared by both API clients:
// the bearer token and the claims read out of it. The console never
// verifies token signatures (it has no key); it only inspects claims to
// know who is signed in and when the session runs out.
package session

import (
	"errors"
	"net/http"
	"sync"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/programme-lv/console/apierr"
)

type Claims struct {
	Username  string   `json:"username,omitempty"`
	Email     string   `json:"email,omitempty"`
	UUID      string   `json:"uuid,omitempty"`
	AdminType string   `json:"admin_type,omitempty"`
	Scopes    []string `json:"scopes,omitempty"`
	jwt.RegisteredClaims
}

// Session is safe for concurrent use; the TUI update loop and request
// goroutines both touch it.
type Session struct {
	mu     sync.RWMutex
	token  string
	claims *Claims
}

func New() *Session {
	return &Session{}
}

// SetToken installs a fresh token from a login or refresh response. The
// token is parsed without signature verification; a token that does not
// even parse is rejected.
func (s *Session) SetToken(token string) error {
	claims := &Claims{}
	parser := jwt.NewParser()
	if _, _, err := parser.ParseUnverified(token, claims); err != nil {
		return errors.New("malformed session token")
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.token = token
	s.claims = claims
	return nil
}

func (s *Session) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.token = ""
	s.claims = nil
}

func (s *Session) Token() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.token
}

func (s *Session) Username() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.claims == nil {
		return ""
	}
	return s.claims.Username
}

// Expired reports whether the session is absent or past its expiry.
// Tokens without an exp claim never expire client-side; the backend is
// the authority anyway.
func (s *Session) Expired(now time.Time) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.claims == nil {
		return true
	}
	exp := s.claims.ExpiresAt
	if exp == nil {
		return false
	}
	return !now.Before(exp.Time)
}

// Authorize stamps the bearer token onto an outgoing request. Requests
// made with no session at all fail fast instead of round-tripping a 401.
func (s *Session) Authorize(req *http.Request) error {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.token == "" {
		return apierr.ErrUnauthorized()
	}
	req.Header.Set("Authorization", "Bearer "+s.token)
	return nil
}
