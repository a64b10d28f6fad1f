package commands

import (
	"context"
	"net/http"

	"github.com/eskrenkovic/spyfall-go/internal/modules/core"
	"github.com/eskrenkovic/spyfall-go/internal/modules/lobby"
	"github.com/eskrenkovic/spyfall-go/internal/modules/lobby/domain"

	"github.com/eskrenkovic/mediator-go"
	"github.com/go-chi/chi"
)

type EndGameCommand struct {
	Code string `json:"-"`
}

func (c EndGameCommand) Validate() error {
	if _, err := domain.NormalizeCode(c.Code); err != nil {
		return err
	}

	return nil
}

func HandleEndGame(w http.ResponseWriter, r *http.Request) {
	command := EndGameCommand{Code: chi.URLParam(r, "code")}

	_, err := mediator.Send[EndGameCommand, core.Unit](r.Context(), command)
	if err != nil {
		core.WriteCommandError(w, r, err)
		return
	}

	core.WriteOK(w, r, nil)
}

type EndGameCommandHandler struct {
	repo lobby.Repository
}

func NewEndGameCommandHandler(repo lobby.Repository) *EndGameCommandHandler {
	return &EndGameCommandHandler{repo}
}

// Handle clears the round secret, the timer, and every participant's role,
// then parks the session in FINISHED. Deletion is the only way out of
// FINISHED.
func (h *EndGameCommandHandler) Handle(
	ctx context.Context,
	request EndGameCommand,
) (core.Unit, error) {
	err := updateSilent(ctx, h.repo, request.Code, func(l *domain.Lobby) error {
		l.EndRound(domain.StatusFinished)
		return nil
	})
	return core.Unit{}, err
}
