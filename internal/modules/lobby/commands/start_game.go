package commands

import (
	"context"
	"math/rand"
	"net/http"
	"sync"
	"time"

	"github.com/eskrenkovic/spyfall-go/internal/modules/core"
	"github.com/eskrenkovic/spyfall-go/internal/modules/lobby"
	"github.com/eskrenkovic/spyfall-go/internal/modules/lobby/domain"

	"github.com/eskrenkovic/mediator-go"
	"github.com/go-chi/chi"
)

type StartGameCommand struct {
	Code string `json:"-"`
}

func (c StartGameCommand) Validate() error {
	if _, err := domain.NormalizeCode(c.Code); err != nil {
		return err
	}

	return nil
}

func HandleStartGame(w http.ResponseWriter, r *http.Request) {
	command := StartGameCommand{Code: chi.URLParam(r, "code")}

	_, err := mediator.Send[StartGameCommand, core.Unit](r.Context(), command)
	if err != nil {
		core.WriteCommandError(w, r, err)
		return
	}

	core.WriteOK(w, r, nil)
}

type StartGameCommandHandler struct {
	repo    lobby.Repository
	catalog domain.Catalog

	// rand.Rand is not safe for concurrent use; handlers are.
	mu  sync.Mutex
	rng *rand.Rand

	now func() time.Time
}

func NewStartGameCommandHandler(repo lobby.Repository, catalog domain.Catalog) *StartGameCommandHandler {
	return &StartGameCommandHandler{
		repo:    repo,
		catalog: catalog,
		rng:     rand.New(rand.NewSource(time.Now().UnixNano())),
		now:     time.Now,
	}
}

// Handle deals the round and starts the clock. Only a LOBBY-status session
// transitions; a round already in progress keeps its assignment, and a
// finished one has to be reset first.
func (h *StartGameCommandHandler) Handle(
	ctx context.Context,
	request StartGameCommand,
) (core.Unit, error) {
	err := updateSilent(ctx, h.repo, request.Code, func(l *domain.Lobby) error {
		if l.Status != domain.StatusLobby || len(l.Participants) == 0 {
			return errSkipWrite
		}

		h.mu.Lock()
		assignment := domain.Assign(l.Participants, l.Settings, h.catalog, h.rng)
		h.mu.Unlock()

		l.StartRound(assignment, h.now().UnixMilli())
		return nil
	})
	return core.Unit{}, err
}
