package domain

const millisPerMinute = 60_000

// TotalDurationMs is the full round length derived from settings.
func (l *Lobby) TotalDurationMs() int64 {
	return int64(l.Settings.TimerMinutes) * millisPerMinute
}

// ElapsedMs is the total elapsed round time: all previously accumulated
// running segments plus the currently running one, if any. The value is
// monotonically non-decreasing across a round because pausing folds the
// running segment into TimerAccumulated before clearing the start stamp.
func (l *Lobby) ElapsedMs(nowMs int64) int64 {
	elapsed := l.TimerAccumulated
	if !l.IsPaused && l.TimerStartTime != 0 {
		if segment := nowMs - l.TimerStartTime; segment > 0 {
			elapsed += segment
		}
	}
	return elapsed
}

// RemainingMs reconciles stored timestamps into the round's remaining time.
// 0 is the stable terminal value - repeated reads after expiry keep
// returning 0, never a negative.
func (l *Lobby) RemainingMs(nowMs int64) int64 {
	remaining := l.TotalDurationMs() - l.ElapsedMs(nowMs)
	if remaining < 0 {
		return 0
	}
	return remaining
}

// TogglePause flips between running and paused. Pausing accumulates the
// just-elapsed segment and clears the start stamp in the same mutation, so a
// later resume reproduces the exact remaining time. Outside IN_PROGRESS the
// call is a no-op.
func (l *Lobby) TogglePause(nowMs int64) {
	if l.Status != StatusInProgress {
		return
	}

	if l.IsPaused {
		l.TimerStartTime = nowMs
		l.IsPaused = false
		return
	}

	if l.TimerStartTime != 0 && nowMs > l.TimerStartTime {
		l.TimerAccumulated += nowMs - l.TimerStartTime
	}
	l.TimerStartTime = 0
	l.IsPaused = true
}
