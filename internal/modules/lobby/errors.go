package lobby

import (
	"errors"
	"net/http"

	"github.com/eskrenkovic/spyfall-go/internal/modules/core"
	"github.com/eskrenkovic/spyfall-go/internal/modules/lobby/domain"
)

// CommandErrorFrom maps a domain or store error onto the status code the RPC
// boundary responds with. Transient store failures surface as 503 so callers
// know to retry; the response body never carries store internals past the
// CommandError payload, which the HTTP layer flattens to a generic message.
func CommandErrorFrom(err error) error {
	switch {
	case errors.Is(err, domain.ErrNotFound),
		errors.Is(err, domain.ErrParticipantNotFound):
		return core.NewCommandError(http.StatusNotFound, err)

	case errors.Is(err, domain.ErrGameInProgress),
		errors.Is(err, domain.ErrNameTaken):
		return core.NewCommandError(http.StatusConflict, err)

	case errors.Is(err, domain.ErrGenerationExhausted):
		return core.NewCommandError(http.StatusServiceUnavailable, domain.ErrGenerationExhausted, core.WithReason("try again"))

	// Transient failures respond with the bare sentinel - store internals
	// stay out of response bodies.
	case errors.Is(err, ErrRepositoryUnavailable):
		return core.NewCommandError(http.StatusServiceUnavailable, ErrRepositoryUnavailable, core.WithReason("try again"))

	case errors.Is(err, ErrVersionConflict):
		return core.NewCommandError(http.StatusServiceUnavailable, ErrVersionConflict, core.WithReason("try again"))

	default:
		return core.NewCommandError(http.StatusInternalServerError, err)
	}
}
