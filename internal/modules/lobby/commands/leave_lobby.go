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

type LeaveLobbyCommand struct {
	Code          string `json:"-"`
	ParticipantID string `json:"-"`
}

func (c LeaveLobbyCommand) Validate() error {
	if _, err := domain.NormalizeCode(c.Code); err != nil {
		return err
	}

	if c.ParticipantID == "" {
		return fmt.Errorf("invalid ParticipantID - '%s'", c.ParticipantID)
	}

	return nil
}

func HandleLeaveLobby(w http.ResponseWriter, r *http.Request) {
	command := LeaveLobbyCommand{
		Code:          chi.URLParam(r, "code"),
		ParticipantID: chi.URLParam(r, "participantId"),
	}

	_, err := mediator.Send[LeaveLobbyCommand, core.Unit](r.Context(), command)
	if err != nil {
		core.WriteCommandError(w, r, err)
		return
	}

	core.WriteOK(w, r, nil)
}

type LeaveLobbyCommandHandler struct {
	repo lobby.Repository
}

func NewLeaveLobbyCommandHandler(repo lobby.Repository) *LeaveLobbyCommandHandler {
	return &LeaveLobbyCommandHandler{repo}
}

// Handle removes the participant. The last participant leaving deletes the
// lobby; a leaving host hands the flag to the first remaining participant in
// roster order (host repair inside the write cycle).
func (h *LeaveLobbyCommandHandler) Handle(
	ctx context.Context,
	request LeaveLobbyCommand,
) (core.Unit, error) {
	err := updateSilent(ctx, h.repo, request.Code, func(l *domain.Lobby) error {
		l.Remove(request.ParticipantID)
		return nil
	})
	return core.Unit{}, err
}
