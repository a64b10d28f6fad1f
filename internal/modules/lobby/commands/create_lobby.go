package commands

import (
	"context"
	"errors"
	"net/http"
	"path"
	"time"

	"github.com/eskrenkovic/spyfall-go/internal/modules/core"
	"github.com/eskrenkovic/spyfall-go/internal/modules/lobby"
	"github.com/eskrenkovic/spyfall-go/internal/modules/lobby/domain"

	"github.com/eskrenkovic/mediator-go"
)

// maxCodeGenerationAttempts bounds the generate-probe-insert loop. At a
// 36^6 keyspace a collision streak this long means something else is wrong.
const maxCodeGenerationAttempts = 10

type CreateLobbyCommand struct {
	HostName string `json:"hostName"`
}

func (c CreateLobbyCommand) Validate() error {
	if _, err := domain.NormalizeName(c.HostName); err != nil {
		return err
	}

	return nil
}

type CreateLobbyResponse struct {
	Code          string `json:"code"`
	ParticipantID string `json:"participantId"`
}

func HandleCreateLobby(w http.ResponseWriter, r *http.Request) {
	command, err := core.RequestBody[CreateLobbyCommand](r)
	if err != nil {
		core.WriteBadRequest(w, r, err)
		return
	}

	response, err := mediator.Send[CreateLobbyCommand, CreateLobbyResponse](
		r.Context(),
		command,
	)
	if err != nil {
		core.WriteCommandError(w, r, err)
		return
	}

	location := path.Join(r.Host, "lobbies", response.Code)
	core.WriteCreated(w, r, location, response)
}

type CreateLobbyCommandHandler struct {
	repo lobby.Repository
}

func NewCreateLobbyCommandHandler(repo lobby.Repository) *CreateLobbyCommandHandler {
	return &CreateLobbyCommandHandler{repo}
}

func (h *CreateLobbyCommandHandler) Handle(
	ctx context.Context,
	request CreateLobbyCommand,
) (CreateLobbyResponse, error) {
	hostName, err := domain.NormalizeName(request.HostName)
	if err != nil {
		return CreateLobbyResponse{}, core.NewCommandError(http.StatusBadRequest, err)
	}

	for attempt := 0; attempt < maxCodeGenerationAttempts; attempt++ {
		code := domain.GenerateCode()

		exists, err := h.repo.Exists(ctx, code)
		if err != nil {
			return CreateLobbyResponse{}, lobby.CommandErrorFrom(err)
		}
		if exists {
			continue
		}

		l := domain.NewLobby(code, hostName, time.Now().UnixMilli())

		err = h.repo.Insert(ctx, l)
		if errors.Is(err, lobby.ErrCodeTaken) {
			// Lost a race against another create between probe and insert.
			continue
		}
		if err != nil {
			return CreateLobbyResponse{}, lobby.CommandErrorFrom(err)
		}

		return CreateLobbyResponse{
			Code:          code,
			ParticipantID: l.Participants[0].ID,
		}, nil
	}

	return CreateLobbyResponse{}, lobby.CommandErrorFrom(domain.ErrGenerationExhausted)
}
