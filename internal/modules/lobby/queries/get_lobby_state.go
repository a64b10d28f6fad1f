// Package queries holds the read side of the lobby module. Reads never
// block writers - they observe whichever snapshot the store serves.
package queries

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/eskrenkovic/spyfall-go/internal/modules/core"
	"github.com/eskrenkovic/spyfall-go/internal/modules/lobby"
	"github.com/eskrenkovic/spyfall-go/internal/modules/lobby/domain"

	"github.com/eskrenkovic/mediator-go"
	"github.com/go-chi/chi"
)

type GetLobbyStateQuery struct {
	Code          string
	ParticipantID string
}

func (q GetLobbyStateQuery) Validate() error {
	if _, err := domain.NormalizeCode(q.Code); err != nil {
		return err
	}

	if q.ParticipantID == "" {
		return fmt.Errorf("invalid ParticipantID - '%s'", q.ParticipantID)
	}

	return nil
}

func HandleGetLobbyState(w http.ResponseWriter, r *http.Request) {
	participantIDParam, found := r.URL.Query()["participantId"]
	if !found {
		core.WriteBadRequest(w, r, fmt.Errorf("missing required query param 'participantId'"))
		return
	}

	query := GetLobbyStateQuery{
		Code:          chi.URLParam(r, "code"),
		ParticipantID: participantIDParam[0],
	}

	response, err := mediator.Send[GetLobbyStateQuery, domain.LobbyView](
		r.Context(),
		query,
	)
	if err != nil {
		core.WriteCommandError(w, r, err)
		return
	}

	core.WriteOK(w, r, response)
}

type GetLobbyStateQueryHandler struct {
	repo lobby.Repository
	now  func() time.Time
}

func NewGetLobbyStateQueryHandler(repo lobby.Repository) *GetLobbyStateQueryHandler {
	return &GetLobbyStateQueryHandler{repo: repo, now: time.Now}
}

func (h *GetLobbyStateQueryHandler) Handle(
	ctx context.Context,
	request GetLobbyStateQuery,
) (domain.LobbyView, error) {
	code, err := domain.NormalizeCode(request.Code)
	if err != nil {
		return domain.LobbyView{}, core.NewCommandError(http.StatusBadRequest, err)
	}

	l, _, err := h.repo.Get(ctx, code)
	if err != nil {
		return domain.LobbyView{}, lobby.CommandErrorFrom(err)
	}

	view, err := domain.Project(l, request.ParticipantID, h.now().UnixMilli())
	if err != nil {
		return domain.LobbyView{}, lobby.CommandErrorFrom(err)
	}

	// Reads count as activity; renewal is best effort and never fails the
	// read itself.
	if err := h.repo.Touch(ctx, code); err != nil {
		core.LogError(ctx, "failed to renew lobby retention window")
	}

	return view, nil
}
