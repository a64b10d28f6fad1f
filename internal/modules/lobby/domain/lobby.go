package domain

import (
	"strings"

	"github.com/google/uuid"
)

type Status string

const (
	StatusLobby      Status = "LOBBY"
	StatusInProgress Status = "IN_PROGRESS"
	StatusFinished   Status = "FINISHED"
)

const (
	DefaultTimerMinutes = 8
	DefaultSpyCount     = 1

	MinTimerMinutes = 1
	MaxTimerMinutes = 60

	// RecommendedMinParticipants is advisory only - a host can start a round
	// with fewer, it just makes for a short game.
	RecommendedMinParticipants = 3
)

type Participant struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	IsHost bool   `json:"isHost"`
	Role   string `json:"role,omitempty"`
	IsSpy  bool   `json:"isSpy,omitempty"`
}

func NewParticipant(name string, isHost bool) Participant {
	return Participant{
		ID:     uuid.NewString(),
		Name:   name,
		IsHost: isHost,
	}
}

type Settings struct {
	LocationPool []string `json:"locationPool"`
	TimerMinutes int      `json:"timerMinutes"`
	SpyCount     int      `json:"spyCount"`
}

// DefaultSettings returns the concrete settings stamped onto a lobby at
// creation time. No field is ever inferred from absence later.
func DefaultSettings() Settings {
	return Settings{
		LocationPool: []string{DefaultPoolKey},
		TimerMinutes: DefaultTimerMinutes,
		SpyCount:     DefaultSpyCount,
	}
}

// SettingsPatch carries a shallow partial update. Nil fields are left
// untouched by Apply.
type SettingsPatch struct {
	LocationPool *[]string `json:"locationPool,omitempty"`
	TimerMinutes *int      `json:"timerMinutes,omitempty"`
	SpyCount     *int      `json:"spyCount,omitempty"`
}

// Lobby is the root entity, one per code. It is read and written as a whole
// snapshot; all timer state is stored as absolute unix-millisecond stamps so
// remaining time is always recomputable.
type Lobby struct {
	Code         string        `json:"code"`
	Status       Status        `json:"status"`
	Participants []Participant `json:"participants"`
	Settings     Settings      `json:"settings"`

	// Round secret, set only while Status is IN_PROGRESS.
	Location string `json:"location,omitempty"`

	// TimerStartTime is the start of the current running segment in unix
	// milliseconds, 0 while paused or not started.
	TimerStartTime   int64 `json:"timerStartTime,omitempty"`
	TimerAccumulated int64 `json:"timerAccumulated"`
	IsPaused         bool  `json:"isPaused"`

	// LastActivity drives repository retention, not core logic.
	LastActivity int64 `json:"lastActivity"`
}

func NewLobby(code, hostName string, nowMs int64) Lobby {
	return Lobby{
		Code:         code,
		Status:       StatusLobby,
		Participants: []Participant{NewParticipant(hostName, true)},
		Settings:     DefaultSettings(),
		LastActivity: nowMs,
	}
}

// Participant returns the roster entry with the given id.
func (l *Lobby) Participant(id string) (Participant, bool) {
	for _, p := range l.Participants {
		if p.ID == id {
			return p, true
		}
	}
	return Participant{}, false
}

func (l *Lobby) hasName(name string) bool {
	for _, p := range l.Participants {
		if strings.EqualFold(p.Name, name) {
			return true
		}
	}
	return false
}

// Join appends a non-host participant and returns it.
func (l *Lobby) Join(name string) (Participant, error) {
	if l.Status != StatusLobby {
		return Participant{}, ErrGameInProgress
	}

	if l.hasName(name) {
		return Participant{}, ErrNameTaken
	}

	p := NewParticipant(name, false)
	l.Participants = append(l.Participants, p)
	return p, nil
}

// Remove drops a participant from the roster. Removing an unknown id is a
// no-op - the participant may already be gone after a concurrent removal.
// Host repair is the caller's responsibility (it runs on every write).
func (l *Lobby) Remove(id string) {
	remaining := l.Participants[:0]
	for _, p := range l.Participants {
		if p.ID != id {
			remaining = append(remaining, p)
		}
	}
	l.Participants = remaining
}

// PromoteHost clears the host flag on everyone and sets it on the target.
// Unknown targets leave the lobby untouched.
func (l *Lobby) PromoteHost(id string) {
	if _, ok := l.Participant(id); !ok {
		return
	}

	for i := range l.Participants {
		l.Participants[i].IsHost = l.Participants[i].ID == id
	}
}

// RepairHost restores the exactly-one-host invariant: if zero or multiple
// participants carry the flag, the first in roster order becomes the single
// host. Runs as part of every write so interleaved removals can never leave
// a hostless lobby behind.
func (l *Lobby) RepairHost() {
	if len(l.Participants) == 0 {
		return
	}

	hosts := 0
	for _, p := range l.Participants {
		if p.IsHost {
			hosts++
		}
	}

	if hosts == 1 {
		return
	}

	for i := range l.Participants {
		l.Participants[i].IsHost = i == 0
	}
}

// Apply shallow-merges the patch into the lobby settings.
func (l *Lobby) Apply(patch SettingsPatch) {
	if patch.LocationPool != nil {
		l.Settings.LocationPool = *patch.LocationPool
	}
	if patch.TimerMinutes != nil {
		l.Settings.TimerMinutes = *patch.TimerMinutes
	}
	if patch.SpyCount != nil {
		l.Settings.SpyCount = *patch.SpyCount
	}
}

// StartRound applies an assignment and moves the lobby into IN_PROGRESS with
// a freshly started timer.
func (l *Lobby) StartRound(a Assignment, nowMs int64) {
	l.Location = a.Location
	for i := range l.Participants {
		r := a.Roles[l.Participants[i].ID]
		l.Participants[i].Role = r.Role
		l.Participants[i].IsSpy = r.IsSpy
	}

	l.Status = StatusInProgress
	l.TimerStartTime = nowMs
	l.TimerAccumulated = 0
	l.IsPaused = false
}

// EndRound clears every piece of round state and lands on the given status.
// Used by both endGame (FINISHED) and resetGame (LOBBY).
func (l *Lobby) EndRound(status Status) {
	l.Status = status
	l.Location = ""
	l.TimerStartTime = 0
	l.TimerAccumulated = 0
	l.IsPaused = false

	for i := range l.Participants {
		l.Participants[i].Role = ""
		l.Participants[i].IsSpy = false
	}
}

// Clone returns a deep copy. Snapshot stores hand these out so callers can
// mutate freely before writing back.
func (l Lobby) Clone() Lobby {
	clone := l
	clone.Participants = make([]Participant, len(l.Participants))
	copy(clone.Participants, l.Participants)
	clone.Settings.LocationPool = make([]string, len(l.Settings.LocationPool))
	copy(clone.Settings.LocationPool, l.Settings.LocationPool)
	return clone
}
