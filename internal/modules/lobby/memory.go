package lobby

import (
	"context"
	"sync"
	"time"

	"github.com/eskrenkovic/spyfall-go/internal/modules/lobby/domain"
)

// MemoryRepository is an in-process implementation of the session store
// contract, used by unit tests and local development. It mirrors the
// Postgres implementation's semantics: whole-snapshot rows, version-guarded
// writes, TTL-based expiry.
type MemoryRepository struct {
	mu      sync.RWMutex
	lobbies map[string]*memoryEntry

	// now is swappable so expiry behavior is testable.
	now func() time.Time
}

type memoryEntry struct {
	lobby     domain.Lobby
	version   int64
	expiresAt time.Time
}

func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{
		lobbies: make(map[string]*memoryEntry),
		now:     time.Now,
	}
}

var _ Repository = (*MemoryRepository)(nil)

func (r *MemoryRepository) Get(_ context.Context, code string) (domain.Lobby, int64, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	entry, ok := r.live(code)
	if !ok {
		return domain.Lobby{}, 0, domain.ErrNotFound
	}

	return entry.lobby.Clone(), entry.version, nil
}

func (r *MemoryRepository) Insert(_ context.Context, l domain.Lobby) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.live(l.Code); ok {
		return ErrCodeTaken
	}

	r.lobbies[l.Code] = &memoryEntry{
		lobby:     l.Clone(),
		version:   1,
		expiresAt: r.deadline(),
	}
	return nil
}

func (r *MemoryRepository) Update(_ context.Context, l domain.Lobby, expectedVersion int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	entry, ok := r.live(l.Code)
	if !ok {
		return domain.ErrNotFound
	}

	if entry.version != expectedVersion {
		return ErrVersionConflict
	}

	entry.lobby = l.Clone()
	entry.version++
	entry.expiresAt = r.deadline()
	return nil
}

func (r *MemoryRepository) Delete(_ context.Context, code string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	delete(r.lobbies, code)
	return nil
}

func (r *MemoryRepository) Exists(_ context.Context, code string) (bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	_, ok := r.live(code)
	return ok, nil
}

func (r *MemoryRepository) Touch(_ context.Context, code string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if entry, ok := r.live(code); ok {
		entry.expiresAt = r.deadline()
	}
	return nil
}

// live must be called with at least a read lock held.
func (r *MemoryRepository) live(code string) (*memoryEntry, bool) {
	entry, ok := r.lobbies[code]
	if !ok || r.now().After(entry.expiresAt) {
		return nil, false
	}
	return entry, true
}

func (r *MemoryRepository) deadline() time.Time {
	return r.now().Add(SessionTTLSeconds * time.Second)
}
