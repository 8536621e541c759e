package seat

import (
	"context"
	"fmt"
	"sync"
)

// Store is the persistence collaborator. BulkInsert is all-or-nothing.
type Store interface {
	FindByTier(ctx context.Context, tier Tier) ([]Seat, error)
	FindByID(ctx context.Context, id string) (Seat, error)
	ClearAll(ctx context.Context) error
	BulkInsert(ctx context.Context, seats []Seat) error
}

// Replace clears the store and inserts the batch. Stores that can swap the
// dataset atomically do so; otherwise a failed insert leaves the store empty
// and the caller retries with a fresh batch.
func Replace(ctx context.Context, st Store, seats []Seat) error {
	if r, ok := st.(interface {
		ReplaceAll(context.Context, []Seat) error
	}); ok {
		if err := r.ReplaceAll(ctx, seats); err != nil {
			return fmt.Errorf("replace seats: %w", err)
		}
		return nil
	}
	if err := st.ClearAll(ctx); err != nil {
		return fmt.Errorf("clear seats: %w", err)
	}
	if err := st.BulkInsert(ctx, seats); err != nil {
		return fmt.Errorf("insert seats: %w", err)
	}
	return nil
}

type memoryStore struct {
	mu    sync.RWMutex
	seats map[string]Seat
	order []string
}

func NewInMemoryStore() Store {
	return &memoryStore{seats: map[string]Seat{}}
}

func (m *memoryStore) FindByTier(_ context.Context, tier Tier) ([]Seat, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := []Seat{}
	for _, id := range m.order {
		if s := m.seats[id]; s.Tier == tier {
			out = append(out, s)
		}
	}
	return out, nil
}

func (m *memoryStore) FindByID(_ context.Context, id string) (Seat, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	s, ok := m.seats[id]
	if !ok {
		return Seat{}, ErrNotFound
	}
	return s, nil
}

func (m *memoryStore) ClearAll(_ context.Context) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.seats = map[string]Seat{}
	m.order = nil
	return nil
}

func (m *memoryStore) BulkInsert(_ context.Context, seats []Seat) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	// validate the whole batch before touching the maps
	names := map[Tier]map[string]bool{}
	for _, s := range m.seats {
		if names[s.Tier] == nil {
			names[s.Tier] = map[string]bool{}
		}
		names[s.Tier][s.Name] = true
	}
	ids := map[string]bool{}
	for _, s := range seats {
		if err := s.Validate(); err != nil {
			return err
		}
		if s.ID == "" {
			return fmt.Errorf("%w: %s: empty id", ErrInvalidRecord, s.Name)
		}
		if _, dup := m.seats[s.ID]; dup || ids[s.ID] {
			return fmt.Errorf("%w: duplicate id %s", ErrInvalidRecord, s.ID)
		}
		ids[s.ID] = true
		if names[s.Tier] == nil {
			names[s.Tier] = map[string]bool{}
		}
		if names[s.Tier][s.Name] {
			return fmt.Errorf("%w: duplicate name %q in tier %s", ErrInvalidRecord, s.Name, s.Tier)
		}
		names[s.Tier][s.Name] = true
	}
	for _, s := range seats {
		m.seats[s.ID] = s
		m.order = append(m.order, s.ID)
	}
	return nil
}

// CountByTier summarises a batch, used for seed reporting.
func CountByTier(seats []Seat) map[Tier]int {
	out := map[Tier]int{}
	for _, s := range seats {
		out[s.Tier]++
	}
	return out
}
