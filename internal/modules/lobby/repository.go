package lobby

import (
	"context"
	"errors"

	"github.com/eskrenkovic/spyfall-go/internal/modules/lobby/domain"
)

// SessionTTLSeconds is the retention window renewed on every write and on
// read-path touches.
const SessionTTLSeconds = 86400

var (
	// ErrCodeTaken is returned by Insert when a live lobby already owns the code.
	ErrCodeTaken = errors.New("lobby code already taken")

	// ErrVersionConflict is returned by Update when another writer got in
	// between the read and the write. The caller retries the whole cycle.
	ErrVersionConflict = errors.New("lobby modified concurrently")

	// ErrRepositoryUnavailable wraps transient store failures. The core never
	// retries these - they propagate to the caller boundary.
	ErrRepositoryUnavailable = errors.New("session store unavailable")
)

// Repository is the session store contract. Implementations persist whole
// lobby snapshots keyed by code, guard writes with a version stamp, and
// expire entries after SessionTTLSeconds of inactivity.
type Repository interface {
	// Get returns a live lobby snapshot and the version to key the next
	// write on. domain.ErrNotFound when absent or expired.
	Get(ctx context.Context, code string) (domain.Lobby, int64, error)

	// Insert creates a lobby at version 1. ErrCodeTaken on collision.
	Insert(ctx context.Context, l domain.Lobby) error

	// Update overwrites the snapshot iff the stored version still matches.
	Update(ctx context.Context, l domain.Lobby, expectedVersion int64) error

	Delete(ctx context.Context, code string) error

	Exists(ctx context.Context, code string) (bool, error)

	// Touch renews the retention window without bumping the version, so read
	// paths never contend with writers.
	Touch(ctx context.Context, code string) error
}
