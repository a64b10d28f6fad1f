package commands

import (
	"context"
	"net/http"
	"time"

	"github.com/eskrenkovic/spyfall-go/internal/modules/core"
	"github.com/eskrenkovic/spyfall-go/internal/modules/lobby"
	"github.com/eskrenkovic/spyfall-go/internal/modules/lobby/domain"

	"github.com/eskrenkovic/mediator-go"
	"github.com/go-chi/chi"
)

type TogglePauseCommand struct {
	Code string `json:"-"`
}

func (c TogglePauseCommand) Validate() error {
	if _, err := domain.NormalizeCode(c.Code); err != nil {
		return err
	}

	return nil
}

func HandleTogglePause(w http.ResponseWriter, r *http.Request) {
	command := TogglePauseCommand{Code: chi.URLParam(r, "code")}

	_, err := mediator.Send[TogglePauseCommand, core.Unit](r.Context(), command)
	if err != nil {
		core.WriteCommandError(w, r, err)
		return
	}

	core.WriteOK(w, r, nil)
}

type TogglePauseCommandHandler struct {
	repo lobby.Repository
	now  func() time.Time
}

func NewTogglePauseCommandHandler(repo lobby.Repository) *TogglePauseCommandHandler {
	return &TogglePauseCommandHandler{repo: repo, now: time.Now}
}

// Handle flips the pause sub-state. Accumulating the running segment and
// clearing the start stamp happen inside one write cycle, so resume always
// reproduces the exact remaining time.
func (h *TogglePauseCommandHandler) Handle(
	ctx context.Context,
	request TogglePauseCommand,
) (core.Unit, error) {
	err := updateSilent(ctx, h.repo, request.Code, func(l *domain.Lobby) error {
		if l.Status != domain.StatusInProgress {
			return errSkipWrite
		}

		l.TogglePause(h.now().UnixMilli())
		return nil
	})
	return core.Unit{}, err
}
