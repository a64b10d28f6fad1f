package domain

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func runningLobby(startMs int64, timerMinutes int) Lobby {
	l := NewLobby("ABC123", "Alice", startMs)
	l.Settings.TimerMinutes = timerMinutes
	l.StartRound(Assignment{Location: "Bank", Roles: map[string]RoleAssignment{
		l.Participants[0].ID: {Role: "Teller"},
	}}, startMs)
	return l
}

func Test_RemainingMs_Counts_Down_While_Running(t *testing.T) {
	l := runningLobby(1_000_000, 8)

	require.Equal(t, int64(8*60_000), l.RemainingMs(1_000_000))
	require.Equal(t, int64(8*60_000-5_000), l.RemainingMs(1_005_000))
	require.GreaterOrEqual(t, l.RemainingMs(1_005_000), l.RemainingMs(1_006_000))
}

func Test_RemainingMs_Is_Constant_While_Paused(t *testing.T) {
	l := runningLobby(1_000_000, 8)

	l.TogglePause(1_010_000)

	remaining := l.RemainingMs(1_010_000)
	require.Equal(t, remaining, l.RemainingMs(1_020_000))
	require.Equal(t, remaining, l.RemainingMs(9_999_999))
}

func Test_RemainingMs_Clamps_At_Zero_And_Stays_There(t *testing.T) {
	l := runningLobby(1_000_000, 1)

	expiry := int64(1_000_000 + 60_000)
	require.Equal(t, int64(0), l.RemainingMs(expiry))
	require.Equal(t, int64(0), l.RemainingMs(expiry+1))
	require.Equal(t, int64(0), l.RemainingMs(expiry+100_000_000))
}

func Test_Pause_Resume_Roundtrip_Excludes_Idle_Time(t *testing.T) {
	const (
		start = int64(1_000_000)
		t1    = int64(42_000) // running
		t2    = int64(17_000) // paused, must not count
		t3    = int64(13_000) // running again
	)

	l := runningLobby(start, 8)

	l.TogglePause(start + t1)
	require.True(t, l.IsPaused)
	require.Zero(t, l.TimerStartTime)
	require.Equal(t, t1, l.TimerAccumulated)

	l.TogglePause(start + t1 + t2)
	require.False(t, l.IsPaused)
	require.NotZero(t, l.TimerStartTime)

	now := start + t1 + t2 + t3
	require.Equal(t, t1+t3, l.ElapsedMs(now))
}

func Test_Immediate_Pause_Resume_Preserves_Remaining_Time(t *testing.T) {
	const start = int64(1_000_000)

	paused := runningLobby(start, 8)
	straight := runningLobby(start, 8)

	// 5 s running, pause, resume immediately.
	paused.TogglePause(start + 5_000)
	paused.TogglePause(start + 5_000)

	require.Equal(t, straight.RemainingMs(start+5_000), paused.RemainingMs(start+5_000))
}

func Test_TogglePause_Is_A_Noop_Outside_InProgress(t *testing.T) {
	l := NewLobby("ABC123", "Alice", 1_000_000)

	l.TogglePause(1_005_000)

	require.False(t, l.IsPaused)
	require.Zero(t, l.TimerStartTime)
	require.Zero(t, l.TimerAccumulated)
}

func Test_Elapsed_Is_Monotonic_Across_Pause_Boundaries(t *testing.T) {
	l := runningLobby(0, 8)

	var last int64
	checkpoints := []struct {
		now    int64
		toggle bool
	}{
		{1_000, false},
		{5_000, true},  // pause
		{20_000, false},
		{30_000, true}, // resume
		{31_000, false},
		{45_000, false},
	}

	for _, cp := range checkpoints {
		if cp.toggle {
			l.TogglePause(cp.now)
		}
		elapsed := l.ElapsedMs(cp.now)
		require.GreaterOrEqual(t, elapsed, last)
		last = elapsed
	}
}
