// Package session keeps the visitor's cached identity.
//
// The identity is a JSON-serialized domain.User stored under a single key in
// a browser-local Store. It is trusted as-is: no expiry or signature checks
// beyond what the Store itself applies.
package session

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/cargohost/backend/internal/domain"
	log "github.com/sirupsen/logrus"
)

// Key is the store key holding the serialized user.
const Key = "user"

// ErrNoSession is reported by Restore when the store holds no user.
var ErrNoSession = errors.New("no stored session")

// Restored is the outcome of Restore. User is nil when Err is set.
type Restored struct {
	User *domain.User
	Err  error
}

// Session is the in-memory user cell together with its backing store.
type Session struct {
	store Store
	log   log.FieldLogger
	user  *domain.User
}

// New creates a logged-out Session over store.
func New(store Store, logger log.FieldLogger) *Session {
	if logger == nil {
		logger = log.StandardLogger()
	}
	return &Session{store: store, log: logger}
}

// Restore loads the stored user into the session. A value that does not parse
// is treated as no session.
func (s *Session) Restore() Restored {
	raw, ok := s.store.Get(Key)
	if !ok {
		return Restored{Err: ErrNoSession}
	}

	var u domain.User
	if err := json.Unmarshal([]byte(raw), &u); err != nil {
		err = fmt.Errorf("stored session is not valid JSON: %w", err)
		s.log.WithError(err).Warn("ignoring stored session")
		return Restored{Err: err}
	}

	s.user = &u
	return Restored{User: &u}
}

// Login stores u and makes it the active user. It is the callback the login
// dialog invokes on success.
func (s *Session) Login(u domain.User) error {
	raw, err := json.Marshal(u)
	if err != nil {
		return fmt.Errorf("failed to encode session: %w", err)
	}
	if err := s.store.Set(Key, string(raw)); err != nil {
		return fmt.Errorf("failed to store session: %w", err)
	}
	s.user = &u
	return nil
}

// Logout removes the stored user and clears the active one. Nothing is sent
// to the server.
func (s *Session) Logout() {
	s.store.Delete(Key)
	s.user = nil
}

// User returns the active user, or nil.
func (s *Session) User() *domain.User {
	return s.user
}

// LoggedIn reports whether a user is active.
func (s *Session) LoggedIn() bool {
	return s.user != nil
}
