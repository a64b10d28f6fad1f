package lobby

import (
	"context"
	"errors"
	"time"

	"github.com/eskrenkovic/spyfall-go/internal/modules/lobby/domain"
)

// maxUpdateAttempts bounds the optimistic-concurrency retry loop. Conflicts
// are single-row write races, so a handful of immediate retries is plenty;
// no backoff.
const maxUpdateAttempts = 5

// UpdateLobby runs one read-mutate-write cycle against the repository,
// retrying the whole cycle on version conflicts. Every cycle re-reads the
// snapshot, applies mutate, repairs the host invariant and stamps
// LastActivity, then writes back keyed on the version it read. A lobby left
// without participants is deleted instead of written.
//
// domain.ErrNotFound propagates to the caller - whether that is an error or
// a silent no-op is the operation's call.
func UpdateLobby(
	ctx context.Context,
	repo Repository,
	code string,
	mutate func(*domain.Lobby) error,
) error {
	for attempt := 0; attempt < maxUpdateAttempts; attempt++ {
		l, version, err := repo.Get(ctx, code)
		if err != nil {
			return err
		}

		if err := mutate(&l); err != nil {
			return err
		}

		if len(l.Participants) == 0 {
			return repo.Delete(ctx, code)
		}

		l.RepairHost()
		l.LastActivity = time.Now().UnixMilli()

		err = repo.Update(ctx, l, version)
		if errors.Is(err, ErrVersionConflict) {
			continue
		}
		return err
	}

	return ErrVersionConflict
}
