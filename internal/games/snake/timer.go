package snake

import "time"

// Clock supplies wall-clock time to the move timer.
type Clock interface {
	Now() time.Time
}

// SystemClock reads time.Now.
type SystemClock struct{}

// Now returns the current local time.
func (SystemClock) Now() time.Time { return time.Now() }

// MoveTimer gates snake moves to a fixed wall-clock interval.
// It is not an accumulator: a late frame yields one move, not several.
type MoveTimer struct {
	interval time.Duration
	last     time.Time
}

// NewMoveTimer starts a timer whose first move is due after interval from start.
func NewMoveTimer(interval time.Duration, start time.Time) *MoveTimer {
	return &MoveTimer{interval: interval, last: start}
}

// Due reports whether strictly more than the interval has passed since the last move.
func (t *MoveTimer) Due(now time.Time) bool {
	return now.Sub(t.last) > t.interval
}

// Mark records a move at now.
func (t *MoveTimer) Mark(now time.Time) {
	t.last = now
}

// Interval returns the configured move interval.
func (t *MoveTimer) Interval() time.Duration { return t.interval }

// Last returns the time of the last recorded move.
func (t *MoveTimer) Last() time.Time { return t.last }
