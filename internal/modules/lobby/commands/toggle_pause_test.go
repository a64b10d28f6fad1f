package commands

import (
	"context"
	"testing"
	"time"

	"github.com/eskrenkovic/spyfall-go/internal/modules/lobby"
	"github.com/eskrenkovic/spyfall-go/internal/modules/lobby/domain"

	"github.com/stretchr/testify/require"
)

func startedAt(t *testing.T, repo lobby.Repository, startMs int64) {
	t.Helper()

	seedLobby(t, repo, "Alice", "Bob", "Carol")

	start := newStartGameHandler(repo, startMs)
	_, err := start.Handle(context.Background(), StartGameCommand{Code: testCode})
	require.NoError(t, err)
}

func togglePauseAt(t *testing.T, repo lobby.Repository, nowMs int64) {
	t.Helper()

	handler := NewTogglePauseCommandHandler(repo)
	handler.now = func() time.Time { return time.UnixMilli(nowMs) }

	_, err := handler.Handle(context.Background(), TogglePauseCommand{Code: testCode})
	require.NoError(t, err)
}

func Test_TogglePause_Accumulates_The_Running_Segment(t *testing.T) {
	repo := lobby.NewMemoryRepository()
	startedAt(t, repo, 100_000)

	togglePauseAt(t, repo, 105_000)

	got := storedLobby(t, repo)
	require.True(t, got.IsPaused)
	require.Zero(t, got.TimerStartTime)
	require.Equal(t, int64(5_000), got.TimerAccumulated)
}

func Test_TogglePause_Resume_Restarts_The_Segment(t *testing.T) {
	repo := lobby.NewMemoryRepository()
	startedAt(t, repo, 100_000)

	togglePauseAt(t, repo, 105_000)
	togglePauseAt(t, repo, 130_000) // 25 s idle

	got := storedLobby(t, repo)
	require.False(t, got.IsPaused)
	require.Equal(t, int64(130_000), got.TimerStartTime)
	require.Equal(t, int64(5_000), got.TimerAccumulated)

	// Idle time does not count: 5 s before the pause plus 10 s after.
	require.Equal(t, int64(15_000), got.ElapsedMs(140_000))
}

// Pause immediately followed by resume leaves remaining time exactly where a
// non-paused run of the same wall-clock duration would.
func Test_TogglePause_Twice_Preserves_Remaining_Time(t *testing.T) {
	repo := lobby.NewMemoryRepository()
	startedAt(t, repo, 100_000)

	togglePauseAt(t, repo, 105_000)
	togglePauseAt(t, repo, 105_000)

	got := storedLobby(t, repo)
	total := got.TotalDurationMs()
	require.Equal(t, total-5_000, got.RemainingMs(105_000))
}

func Test_TogglePause_Is_A_Noop_Outside_InProgress(t *testing.T) {
	repo := lobby.NewMemoryRepository()
	seedLobby(t, repo, "Alice")

	togglePauseAt(t, repo, 105_000)

	got := storedLobby(t, repo)
	require.False(t, got.IsPaused)
	require.Zero(t, got.TimerStartTime)
}

func Test_TogglePause_Unknown_Lobby_Is_A_Silent_Noop(t *testing.T) {
	repo := lobby.NewMemoryRepository()

	handler := NewTogglePauseCommandHandler(repo)
	_, err := handler.Handle(context.Background(), TogglePauseCommand{Code: "ZZZZZZ"})

	require.NoError(t, err)
}

func Test_TogglePause_State_Invariants(t *testing.T) {
	repo := lobby.NewMemoryRepository()
	startedAt(t, repo, 100_000)

	// paused implies no start stamp; running while IN_PROGRESS implies one
	for i, nowMs := range []int64{101_000, 102_000, 103_000, 104_000} {
		togglePauseAt(t, repo, nowMs)

		got := storedLobby(t, repo)
		require.Equal(t, domain.StatusInProgress, got.Status)
		if i%2 == 0 {
			require.True(t, got.IsPaused)
			require.Zero(t, got.TimerStartTime)
		} else {
			require.False(t, got.IsPaused)
			require.NotZero(t, got.TimerStartTime)
		}
	}
}
