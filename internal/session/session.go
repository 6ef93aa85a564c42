// Package session tracks per-user transient state: whether a long-running
// operation is in flight, its name, a cancellation context for it, and the
// last fetched token batch. State is volatile by design.
package session

import (
	"context"
	"errors"
	"strings"
	"sync"

	"github.com/alphafinders/teabot/internal/models"
)

// ErrBusy is returned when a user starts an operation while another is
// still running.
var ErrBusy = errors.New("another operation is in progress")

type userSession struct {
	busy       bool
	operation  string
	opSeq      uint64
	cancel     context.CancelFunc
	lastTokens []models.TokenRecord
}

// Store holds sessions keyed by user identifier, created lazily. Safe for
// concurrent use.
type Store struct {
	mu       sync.Mutex
	sessions map[int64]*userSession
}

// NewStore creates an empty session store.
func NewStore() *Store {
	return &Store{sessions: make(map[int64]*userSession)}
}

func (s *Store) session(userID int64) *userSession {
	sess, ok := s.sessions[userID]
	if !ok {
		sess = &userSession{}
		s.sessions[userID] = sess
	}
	return sess
}

// Begin marks the user busy with the named operation and returns a context
// that Stop cancels, plus a release function that always clears the busy
// flag. Callers must defer the release. Returns ErrBusy if an operation is
// already running.
func (s *Store) Begin(parent context.Context, userID int64, operation string) (context.Context, func(), error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess := s.session(userID)
	if sess.busy {
		return nil, nil, ErrBusy
	}

	ctx, cancel := context.WithCancel(parent)
	sess.busy = true
	sess.operation = operation
	sess.opSeq++
	sess.cancel = cancel
	seq := sess.opSeq

	release := func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		cancel()
		// A Stop followed by a new Begin must not be clobbered by the
		// old operation's deferred release.
		if sess.opSeq == seq && sess.busy {
			sess.busy = false
			sess.operation = ""
			sess.cancel = nil
		}
	}
	return ctx, release, nil
}

// Stop cancels the user's running operation, if any, and returns its name.
func (s *Store) Stop(userID int64) (string, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess, ok := s.sessions[userID]
	if !ok || !sess.busy {
		return "", false
	}

	operation := sess.operation
	if sess.cancel != nil {
		sess.cancel()
	}
	sess.busy = false
	sess.operation = ""
	sess.cancel = nil
	return operation, true
}

// Busy reports whether the user has an operation in flight.
func (s *Store) Busy(userID int64) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess, ok := s.sessions[userID]
	return ok && sess.busy
}

// Operation returns the name of the running operation, or "".
func (s *Store) Operation(userID int64) string {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess, ok := s.sessions[userID]
	if !ok {
		return ""
	}
	return sess.operation
}

// SetLastTokens remembers the user's most recent fetch results so callback
// actions can resolve tokens by address.
func (s *Store) SetLastTokens(userID int64, tokens []models.TokenRecord) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.session(userID).lastTokens = tokens
}

// FindToken resolves an address against the user's last fetch results.
func (s *Store) FindToken(userID int64, address string) (*models.TokenRecord, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess, ok := s.sessions[userID]
	if !ok {
		return nil, false
	}

	key := strings.ToLower(address)
	for i := range sess.lastTokens {
		if sess.lastTokens[i].AddressKey() == key {
			token := sess.lastTokens[i]
			return &token, true
		}
	}
	return nil, false
}
