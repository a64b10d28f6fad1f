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

// KickParticipantCommand has the same removal semantics as leaving, but is
// initiated by the host. Host authorization is the caller's concern - the
// service trusts the opaque participant ids it is handed.
type KickParticipantCommand struct {
	Code          string `json:"-"`
	ParticipantID string `json:"participantId"`
}

func (c KickParticipantCommand) Validate() error {
	if _, err := domain.NormalizeCode(c.Code); err != nil {
		return err
	}

	if c.ParticipantID == "" {
		return fmt.Errorf("invalid ParticipantID - '%s'", c.ParticipantID)
	}

	return nil
}

func HandleKickParticipant(w http.ResponseWriter, r *http.Request) {
	command, err := core.RequestBody[KickParticipantCommand](r)
	if err != nil {
		core.WriteBadRequest(w, r, err)
		return
	}
	command.Code = chi.URLParam(r, "code")

	_, err = mediator.Send[KickParticipantCommand, core.Unit](r.Context(), command)
	if err != nil {
		core.WriteCommandError(w, r, err)
		return
	}

	core.WriteOK(w, r, nil)
}

type KickParticipantCommandHandler struct {
	repo lobby.Repository
}

func NewKickParticipantCommandHandler(repo lobby.Repository) *KickParticipantCommandHandler {
	return &KickParticipantCommandHandler{repo}
}

func (h *KickParticipantCommandHandler) Handle(
	ctx context.Context,
	request KickParticipantCommand,
) (core.Unit, error) {
	err := updateSilent(ctx, h.repo, request.Code, func(l *domain.Lobby) error {
		l.Remove(request.ParticipantID)
		return nil
	})
	return core.Unit{}, err
}
