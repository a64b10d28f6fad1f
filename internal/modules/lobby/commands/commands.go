// Package commands holds one vertical slice per lobby mutation: the mediator
// command, its HTTP handler, and the command handler working the session
// repository.
package commands

import (
	"context"
	"errors"
	"net/http"

	"github.com/eskrenkovic/spyfall-go/internal/modules/core"
	"github.com/eskrenkovic/spyfall-go/internal/modules/lobby"
	"github.com/eskrenkovic/spyfall-go/internal/modules/lobby/domain"
)

// errSkipWrite aborts an update cycle without writing back and without
// failing the operation - used by commands whose precondition no longer
// holds by the time the snapshot is read.
var errSkipWrite = errors.New("precondition not met, skipping write")

// updateSilent runs a mutation with the silent-no-op semantics shared by
// every operation except create and join: a missing lobby is not an error,
// because a concurrent caller may already have removed it.
func updateSilent(
	ctx context.Context,
	repo lobby.Repository,
	rawCode string,
	mutate func(*domain.Lobby) error,
) error {
	code, err := domain.NormalizeCode(rawCode)
	if err != nil {
		return core.NewCommandError(http.StatusBadRequest, err)
	}

	err = lobby.UpdateLobby(ctx, repo, code, mutate)
	switch {
	case errors.Is(err, domain.ErrNotFound), errors.Is(err, errSkipWrite):
		return nil
	case err != nil:
		return lobby.CommandErrorFrom(err)
	}

	return nil
}
