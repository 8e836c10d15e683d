// Package session holds the current authenticated identity and its
// role-specific fragment. The store has an explicit lifecycle
// (Begin -> Hydrate -> Snapshot -> Teardown) and is constructed fresh per
// request or per test rather than living as ambient global state.
package session

import (
	"context"
	"sync"

	"github.com/google/uuid"
	"github.com/talentpulse/backend/internal/model"
)

// Snapshot is the session state a role-gate decision is made against.
type Snapshot struct {
	Identity        *model.Identity
	IsAuthenticated bool
	IsLoading       bool
}

// Loader hydrates a full identity (base profile plus role fragment) by id.
type Loader interface {
	LoadIdentity(ctx context.Context, id uuid.UUID) (*model.Identity, error)
}

// LoaderFunc adapts a function to the Loader interface.
type LoaderFunc func(ctx context.Context, id uuid.UUID) (*model.Identity, error)

func (f LoaderFunc) LoadIdentity(ctx context.Context, id uuid.UUID) (*model.Identity, error) {
	return f(ctx, id)
}

type Store struct {
	mu       sync.Mutex
	loader   Loader
	current  uuid.UUID
	identity *model.Identity
	loading  bool
}

func NewStore(loader Loader) *Store {
	return &Store{loader: loader}
}

// Begin marks the store as loading for the given identity id. Any hydration
// result belonging to a previously begun identity is discarded when it lands.
func (s *Store) Begin(id uuid.UUID) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.current = id
	s.identity = nil
	s.loading = true
}

// Hydrate loads the identity begun with Begin. If the store was torn down or
// re-begun for a different identity while the load was in flight, the result
// is discarded: the later event wins.
func (s *Store) Hydrate(ctx context.Context) error {
	s.mu.Lock()
	id := s.current
	s.mu.Unlock()
	if id == uuid.Nil {
		return nil
	}

	identity, err := s.loader.LoadIdentity(ctx, id)

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.current != id {
		// Superseded while in flight; no state update applies.
		return nil
	}
	s.loading = false
	if err != nil {
		s.identity = nil
		return err
	}
	s.identity = identity
	return nil
}

// Teardown clears the session, invalidating any in-flight hydration.
func (s *Store) Teardown() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.current = uuid.Nil
	s.identity = nil
	s.loading = false
}

func (s *Store) Snapshot() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	return Snapshot{
		Identity:        s.identity,
		IsAuthenticated: s.identity != nil,
		IsLoading:       s.loading,
	}
}
