package domain

import "github.com/eskrenkovic/spyfall-go/internal/modules/core"

// ParticipantView is the roster entry every viewer sees: never another
// participant's role or spy flag.
type ParticipantView struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	IsHost bool   `json:"isHost"`
}

// LobbyView is the per-viewer, information-hiding projection of a lobby.
// ServerTime is the authoritative clock the timer stamps were written with,
// so clients compute an offset instead of trusting their own wall clock.
type LobbyView struct {
	Code         string            `json:"code"`
	Status       Status            `json:"status"`
	Participants []ParticipantView `json:"participants"`
	Settings     Settings          `json:"settings"`

	TimerStartTime   int64 `json:"timerStartTime,omitempty"`
	TimerAccumulated int64 `json:"timerAccumulated"`
	IsPaused         bool  `json:"isPaused"`

	// Set only while the round is IN_PROGRESS.
	Location string `json:"location,omitempty"`
	Role     string `json:"role,omitempty"`
	IsSpy    *bool  `json:"isSpy,omitempty"`

	ServerTime int64 `json:"serverTime"`
}

// Project derives the viewer's snapshot. Spies never see the location; no
// viewer ever sees anyone else's role.
func Project(l Lobby, viewerID string, nowMs int64) (LobbyView, error) {
	viewer, ok := l.Participant(viewerID)
	if !ok {
		return LobbyView{}, ErrParticipantNotFound
	}

	view := LobbyView{
		Code:   l.Code,
		Status: l.Status,
		Participants: core.Map(l.Participants, func(p Participant) ParticipantView {
			return ParticipantView{ID: p.ID, Name: p.Name, IsHost: p.IsHost}
		}),
		Settings:         l.Settings,
		TimerStartTime:   l.TimerStartTime,
		TimerAccumulated: l.TimerAccumulated,
		IsPaused:         l.IsPaused,
		ServerTime:       nowMs,
	}

	if l.Status == StatusInProgress {
		isSpy := viewer.IsSpy
		view.IsSpy = &isSpy
		view.Role = viewer.Role
		if !isSpy {
			view.Location = l.Location
		}
	}

	return view, nil
}
