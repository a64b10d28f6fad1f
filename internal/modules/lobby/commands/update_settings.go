package commands

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	"github.com/eskrenkovic/spyfall-go/internal/modules/core"
	"github.com/eskrenkovic/spyfall-go/internal/modules/lobby"
	"github.com/eskrenkovic/spyfall-go/internal/modules/lobby/domain"

	"github.com/eskrenkovic/mediator-go"
	"github.com/go-chi/chi"
)

type UpdateSettingsCommand struct {
	Code  string               `json:"-"`
	Patch domain.SettingsPatch `json:"patch"`
}

func (c UpdateSettingsCommand) Validate() error {
	if _, err := domain.NormalizeCode(c.Code); err != nil {
		return err
	}

	if c.Patch.TimerMinutes != nil {
		if m := *c.Patch.TimerMinutes; m < domain.MinTimerMinutes || m > domain.MaxTimerMinutes {
			return fmt.Errorf(
				"timerMinutes must be between %d and %d - got %d",
				domain.MinTimerMinutes, domain.MaxTimerMinutes, m,
			)
		}
	}

	// A host can configure more spies than participants; the assignment
	// engine clamps at deal time.
	if c.Patch.SpyCount != nil && *c.Patch.SpyCount < 1 {
		return fmt.Errorf("spyCount must be at least 1 - got %d", *c.Patch.SpyCount)
	}

	if c.Patch.LocationPool != nil {
		for _, key := range *c.Patch.LocationPool {
			if strings.TrimSpace(key) == "" {
				return fmt.Errorf("locationPool contains an empty set key")
			}
		}
	}

	return nil
}

func HandleUpdateSettings(w http.ResponseWriter, r *http.Request) {
	patch, err := core.RequestBody[domain.SettingsPatch](r)
	if err != nil {
		core.WriteBadRequest(w, r, err)
		return
	}

	command := UpdateSettingsCommand{
		Code:  chi.URLParam(r, "code"),
		Patch: patch,
	}

	_, err = mediator.Send[UpdateSettingsCommand, core.Unit](r.Context(), command)
	if err != nil {
		core.WriteCommandError(w, r, err)
		return
	}

	core.WriteOK(w, r, nil)
}

type UpdateSettingsCommandHandler struct {
	repo lobby.Repository
}

func NewUpdateSettingsCommandHandler(repo lobby.Repository) *UpdateSettingsCommandHandler {
	return &UpdateSettingsCommandHandler{repo}
}

func (h *UpdateSettingsCommandHandler) Handle(
	ctx context.Context,
	request UpdateSettingsCommand,
) (core.Unit, error) {
	err := updateSilent(ctx, h.repo, request.Code, func(l *domain.Lobby) error {
		l.Apply(request.Patch)
		return nil
	})
	return core.Unit{}, err
}
