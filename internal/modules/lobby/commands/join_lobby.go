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

type JoinLobbyCommand struct {
	Code string `json:"-"`
	Name string `json:"name"`
}

func (c JoinLobbyCommand) Validate() error {
	if _, err := domain.NormalizeCode(c.Code); err != nil {
		return err
	}

	if _, err := domain.NormalizeName(c.Name); err != nil {
		return err
	}

	return nil
}

type JoinLobbyResponse struct {
	Code          string `json:"code"`
	ParticipantID string `json:"participantId"`
}

func HandleJoinLobby(w http.ResponseWriter, r *http.Request) {
	command, err := core.RequestBody[JoinLobbyCommand](r)
	if err != nil {
		core.WriteBadRequest(w, r, err)
		return
	}
	command.Code = chi.URLParam(r, "code")

	response, err := mediator.Send[JoinLobbyCommand, JoinLobbyResponse](
		r.Context(),
		command,
	)
	if err != nil {
		core.WriteCommandError(w, r, err)
		return
	}

	core.WriteOK(w, r, response)
}

type JoinLobbyCommandHandler struct {
	repo lobby.Repository
}

func NewJoinLobbyCommandHandler(repo lobby.Repository) *JoinLobbyCommandHandler {
	return &JoinLobbyCommandHandler{repo}
}

func (h *JoinLobbyCommandHandler) Handle(
	ctx context.Context,
	request JoinLobbyCommand,
) (JoinLobbyResponse, error) {
	code, err := domain.NormalizeCode(request.Code)
	if err != nil {
		return JoinLobbyResponse{}, core.NewCommandError(http.StatusBadRequest, err)
	}

	name, err := domain.NormalizeName(request.Name)
	if err != nil {
		return JoinLobbyResponse{}, core.NewCommandError(http.StatusBadRequest, err)
	}

	var joined domain.Participant
	err = lobby.UpdateLobby(ctx, h.repo, code, func(l *domain.Lobby) error {
		p, err := l.Join(name)
		if err != nil {
			return err
		}
		joined = p
		return nil
	})
	if err != nil {
		return JoinLobbyResponse{}, lobby.CommandErrorFrom(err)
	}

	return JoinLobbyResponse{Code: code, ParticipantID: joined.ID}, nil
}
