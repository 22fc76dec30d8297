// Package record holds the canonical in-progress property record for one edit
// session and guards it against late fetch responses.
package record

import (
	"sync"

	"github.com/RobasAhmedShah/hmr-dashboard-sub002/internal/api"
	"github.com/RobasAhmedShah/hmr-dashboard-sub002/internal/normalize"
	"github.com/RobasAhmedShah/hmr-dashboard-sub002/internal/property"
)

// Store owns the single mutable record of an edit session. Every mutation
// runs its full derivation cascade under the lock, so observers only ever see
// fixpoint states. The loaded set is the one-shot-per-identity load guard: a
// fetch response can populate the record at most once per identity, after
// which only user edits and the derivation rules may touch it.
type Store struct {
	mu     sync.Mutex
	rec    *property.Record
	loaded map[string]bool
}

// New creates a store holding an empty record (create mode).
func New() *Store {
	return &Store{
		rec:    property.New(),
		loaded: make(map[string]bool),
	}
}

// Load normalizes raw into the record and marks identity loaded. If identity
// was already loaded the call is a no-op and the current record — local edits
// included — wins. The bool reports whether the data was taken.
func (s *Store) Load(identity string, raw *api.RawProperty, orgs []api.Organization) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.loaded[identity] {
		return false, nil
	}
	rec, err := normalize.FromRaw(raw, orgs)
	if err != nil {
		return false, err
	}
	s.rec = rec
	s.loaded[identity] = true
	return true, nil
}

// Loaded reports whether identity has already been loaded.
func (s *Store) Loaded(identity string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.loaded[identity]
}

// Reset discards the record and clears the load guard, for switching between
// create and edit modes.
func (s *Store) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.rec = property.New()
	s.loaded = make(map[string]bool)
}

// Replace swaps in an already-canonical record (e.g. a resumed draft) without
// touching the load guard for other identities. The identity is marked loaded
// so a late fetch cannot clobber the draft.
func (s *Store) Replace(identity string, rec *property.Record) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.rec = rec
	if identity != "" {
		s.loaded[identity] = true
	}
}

// Apply is the single-writer mutation entry point: it parses raw into field,
// runs the field's derivation rule to fixpoint, and returns every field
// written. On error the record is unchanged.
func (s *Store) Apply(field property.Field, raw string) ([]property.Field, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return property.Apply(s.rec, field, raw)
}

// Mutate runs fn against the record under the lock, for structured mutations
// (images, documents) that do not go through a form field.
func (s *Store) Mutate(fn func(*property.Record)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	fn(s.rec)
}

// Snapshot returns a deep copy of the current record.
func (s *Store) Snapshot() *property.Record {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.rec.Clone()
}
