package server

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/jonathan/readability-analyzer/internal/db"
	"github.com/jonathan/readability-analyzer/internal/registry"
	"github.com/jonathan/readability-analyzer/internal/types"
)

// session is one analysis session: an ordered zone registry under a UUID.
type session struct {
	ID        uuid.UUID `json:"id"`
	CreatedAt time.Time `json:"created_at"`

	registry *registry.Registry
}

// sessionStore tracks live sessions in memory. When a database is
// configured, sessions and their zones are mirrored through it so they
// survive restarts.
type sessionStore struct {
	mu       sync.RWMutex
	sessions map[uuid.UUID]*session
	db       *db.DB // nil when persistence is not configured
}

func newSessionStore(database *db.DB) *sessionStore {
	return &sessionStore{
		sessions: make(map[uuid.UUID]*session),
		db:       database,
	}
}

func (st *sessionStore) create(ctx context.Context) (*session, error) {
	s := &session{
		ID:        uuid.New(),
		CreatedAt: time.Now().UTC(),
		registry:  registry.New(),
	}
	if st.db != nil {
		id, err := st.db.CreateSession(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to create session: %w", err)
		}
		s.ID = id
	}

	st.mu.Lock()
	st.sessions[s.ID] = s
	st.mu.Unlock()
	return s, nil
}

// get returns the session with the given ID, hydrating it from the
// database when it is not in memory.
func (st *sessionStore) get(ctx context.Context, id uuid.UUID) (*session, error) {
	st.mu.RLock()
	s, ok := st.sessions[id]
	st.mu.RUnlock()
	if ok {
		return s, nil
	}
	if st.db == nil {
		return nil, &SessionNotFoundError{ID: id}
	}

	stored, err := st.db.GetSession(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to load session: %w", err)
	}
	if stored == nil {
		return nil, &SessionNotFoundError{ID: id}
	}

	rows, err := st.db.ListSessionZones(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to load session zones: %w", err)
	}
	zones := make([]types.Zone, 0, len(rows))
	for _, row := range rows {
		zones = append(zones, types.Zone{
			Text:     row.Text,
			Category: types.Category(row.Category),
		})
	}

	s = &session{
		ID:        stored.ID,
		CreatedAt: stored.CreatedAt,
		registry:  registry.New(),
	}
	if err := s.registry.Replace(zones); err != nil {
		return nil, fmt.Errorf("failed to restore session zones: %w", err)
	}

	st.mu.Lock()
	// Another request may have hydrated concurrently; keep the first copy.
	if existing, ok := st.sessions[id]; ok {
		s = existing
	} else {
		st.sessions[id] = s
	}
	st.mu.Unlock()
	return s, nil
}

func (st *sessionStore) delete(ctx context.Context, id uuid.UUID) error {
	st.mu.Lock()
	_, ok := st.sessions[id]
	delete(st.sessions, id)
	st.mu.Unlock()

	if st.db != nil {
		if err := st.db.DeleteSession(ctx, id); err != nil {
			return fmt.Errorf("failed to delete session: %w", err)
		}
		return nil
	}
	if !ok {
		return &SessionNotFoundError{ID: id}
	}
	return nil
}

// persist mirrors the session's current zones to the database. It is
// called after every successful mutation and is a no-op without a database.
func (st *sessionStore) persist(ctx context.Context, s *session) error {
	if st.db == nil {
		return nil
	}
	if err := st.db.ReplaceSessionZones(ctx, s.ID, s.registry.Zones()); err != nil {
		return fmt.Errorf("failed to persist session zones: %w", err)
	}
	return nil
}
