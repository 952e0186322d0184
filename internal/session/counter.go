// Package session implements the success/fail tally state machine.
package session

import "time"

// State identifies the lifecycle phase of a counting session.
type State int

const (
	// StateIdle means no session has been started since creation or reset.
	StateIdle State = iota
	// StateRunning accepts outcome recording and accrues elapsed time.
	StateRunning
	// StateFinished keeps counts and freezes the elapsed time.
	StateFinished
)

// String returns a short human-readable state name.
func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateRunning:
		return "running"
	case StateFinished:
		return "finished"
	default:
		return "unknown"
	}
}

// Counter tracks success/fail outcomes for a single operator session.
// Every invalid transition is a silent no-op: an operator mis-click must
// never corrupt the tally.
type Counter struct {
	clock func() time.Time

	success int
	fail    int
	state   State

	startedAt time.Time
	endedAt   time.Time
}

// New returns an idle counter reading the wall clock.
func New() *Counter {
	return NewWithClock(time.Now)
}

// NewWithClock returns an idle counter reading time from clock.
func NewWithClock(clock func() time.Time) *Counter {
	if clock == nil {
		clock = time.Now
	}
	return &Counter{clock: clock}
}

// Start begins a session from Idle or Finished. Counts are preserved
// across start/finish cycles. No-op while already Running.
func (c *Counter) Start() {
	if c.state == StateRunning {
		return
	}
	c.state = StateRunning
	c.startedAt = c.clock()
	c.endedAt = time.Time{}
}

// Finish ends a running session and freezes the elapsed time. No-op
// unless Running.
func (c *Counter) Finish() {
	if c.state != StateRunning {
		return
	}
	c.state = StateFinished
	c.endedAt = c.clock()
}

// Reset zeroes counts and timestamps and returns to Idle from any state.
func (c *Counter) Reset() {
	c.success = 0
	c.fail = 0
	c.state = StateIdle
	c.startedAt = time.Time{}
	c.endedAt = time.Time{}
}

// RecordSuccess counts one successful outcome. Ignored unless Running.
func (c *Counter) RecordSuccess() {
	if c.state != StateRunning {
		return
	}
	c.success++
}

// RecordFail counts one failed outcome. Ignored unless Running.
func (c *Counter) RecordFail() {
	if c.state != StateRunning {
		return
	}
	c.fail++
}

// State returns the current lifecycle state.
func (c *Counter) State() State {
	return c.state
}

// Success returns the recorded success count.
func (c *Counter) Success() int {
	return c.success
}

// Fail returns the recorded fail count.
func (c *Counter) Fail() int {
	return c.fail
}

// Total returns the number of recorded outcomes.
func (c *Counter) Total() int {
	return c.success + c.fail
}

// StartedAt returns the start of the current or last session. Zero while Idle.
func (c *Counter) StartedAt() time.Time {
	return c.startedAt
}

// EndedAt returns the end of the last session. Zero unless Finished.
func (c *Counter) EndedAt() time.Time {
	return c.endedAt
}

// SuccessRatePercent returns 100*success/total, or 0 with no outcomes.
func (c *Counter) SuccessRatePercent() float64 {
	total := c.success + c.fail
	if total == 0 {
		return 0
	}
	return float64(c.success) / float64(total) * 100
}

// Elapsed returns the time from start to finish, or to now while Running.
// Zero before the first start, floored at zero otherwise.
func (c *Counter) Elapsed() time.Duration {
	if c.startedAt.IsZero() {
		return 0
	}
	end := c.endedAt
	if end.IsZero() {
		end = c.clock()
	}
	elapsed := end.Sub(c.startedAt)
	if elapsed < 0 {
		return 0
	}
	return elapsed
}

// ElapsedSeconds returns Elapsed truncated to whole seconds.
func (c *Counter) ElapsedSeconds() int64 {
	return int64(c.Elapsed() / time.Second)
}

// ThroughputPerMinute returns recorded outcomes per minute of elapsed
// session time, or 0 when no whole second has elapsed.
func (c *Counter) ThroughputPerMinute() float64 {
	secs := c.ElapsedSeconds()
	if secs <= 0 {
		return 0
	}
	return float64(c.success+c.fail) * 60 / float64(secs)
}
