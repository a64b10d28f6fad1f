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

type ResetGameCommand struct {
	Code string `json:"-"`
}

func (c ResetGameCommand) Validate() error {
	if _, err := domain.NormalizeCode(c.Code); err != nil {
		return err
	}

	return nil
}

func HandleResetGame(w http.ResponseWriter, r *http.Request) {
	command := ResetGameCommand{Code: chi.URLParam(r, "code")}

	_, err := mediator.Send[ResetGameCommand, core.Unit](r.Context(), command)
	if err != nil {
		core.WriteCommandError(w, r, err)
		return
	}

	core.WriteOK(w, r, nil)
}

type ResetGameCommandHandler struct {
	repo lobby.Repository
}

func NewResetGameCommandHandler(repo lobby.Repository) *ResetGameCommandHandler {
	return &ResetGameCommandHandler{repo}
}

// Handle returns the session to LOBBY with all round state cleared, ready
// for the next start.
func (h *ResetGameCommandHandler) Handle(
	ctx context.Context,
	request ResetGameCommand,
) (core.Unit, error) {
	err := updateSilent(ctx, h.repo, request.Code, func(l *domain.Lobby) error {
		l.EndRound(domain.StatusLobby)
		return nil
	})
	return core.Unit{}, err
}
