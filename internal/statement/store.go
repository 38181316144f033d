// Package statement holds the single statement currently bound to the
// dashboard. Each upload fully replaces the previous one; nothing is
// persisted across process restarts.
package statement

import (
	"sync"
	"time"

	"banalysis/internal/core"
)

// Statement is one parsed upload together with its summary.
type Statement struct {
	ID           string
	Filename     string
	UploadedAt   time.Time
	Transactions []core.Transaction
	Summary      core.Summary
}

// Store is a mutex-guarded holder of the current statement. The
// statement is owned exclusively by the upload that produced it until
// the next Replace or Clear.
type Store struct {
	mu      sync.RWMutex
	current *Statement
}

// NewStore creates an empty store.
func NewStore() *Store {
	return &Store{}
}

// Replace makes st the current statement, superseding any prior one.
func (s *Store) Replace(st Statement) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.current = &st
}

// Current returns a snapshot of the current statement, if one is loaded.
// Callers must not mutate the returned transaction slice.
func (s *Store) Current() (Statement, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.current == nil {
		return Statement{}, false
	}
	return *s.current, true
}

// Clear discards the current statement.
func (s *Store) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.current = nil
}
