package commands

import (
	"context"
	"fmt"
	"net/http"

	"github.com/eskrenkovic/spyfall-go/internal/modules/core"
	"github.com/eskrenkovic/spyfall-go/internal/modules/lobby"
	"github.com/eskrenkovic/spyfall-go/internal/modules/lobby/domain"

	"github.com/eskrenkovic/mediator-go"
	"github.com/go-chi/chi"
)

type PromoteHostCommand struct {
	Code          string `json:"-"`
	ParticipantID string `json:"participantId"`
}

func (c PromoteHostCommand) Validate() error {
	if _, err := domain.NormalizeCode(c.Code); err != nil {
		return err
	}

	if c.ParticipantID == "" {
		return fmt.Errorf("invalid ParticipantID - '%s'", c.ParticipantID)
	}

	return nil
}

func HandlePromoteHost(w http.ResponseWriter, r *http.Request) {
	command, err := core.RequestBody[PromoteHostCommand](r)
	if err != nil {
		core.WriteBadRequest(w, r, err)
		return
	}
	command.Code = chi.URLParam(r, "code")

	_, err = mediator.Send[PromoteHostCommand, core.Unit](r.Context(), command)
	if err != nil {
		core.WriteCommandError(w, r, err)
		return
	}

	core.WriteOK(w, r, nil)
}

type PromoteHostCommandHandler struct {
	repo lobby.Repository
}

func NewPromoteHostCommandHandler(repo lobby.Repository) *PromoteHostCommandHandler {
	return &PromoteHostCommandHandler{repo}
}

func (h *PromoteHostCommandHandler) Handle(
	ctx context.Context,
	request PromoteHostCommand,
) (core.Unit, error) {
	err := updateSilent(ctx, h.repo, request.Code, func(l *domain.Lobby) error {
		l.PromoteHost(request.ParticipantID)
		return nil
	})
	return core.Unit{}, err
}
