package session

import (
	"testing"
	"time"
)

type fakeClock struct {
	now time.Time
}

func newFakeClock() *fakeClock {
	return &fakeClock{now: time.Unix(1000, 0)}
}

func (f *fakeClock) Now() time.Time {
	return f.now
}

func (f *fakeClock) Advance(d time.Duration) {
	f.now = f.now.Add(d)
}

func TestSuccessRatePercent(t *testing.T) {
	tests := []struct {
		name    string
		success int
		fail    int
		want    float64
	}{
		{name: "no outcomes", success: 0, fail: 0, want: 0},
		{name: "all success", success: 5, fail: 0, want: 100},
		{name: "all fail", success: 0, fail: 4, want: 0},
		{name: "three quarters", success: 3, fail: 1, want: 75},
		{name: "one quarter", success: 1, fail: 3, want: 25},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clock := newFakeClock()
			c := NewWithClock(clock.Now)
			c.Start()
			for i := 0; i < tt.success; i++ {
				c.RecordSuccess()
			}
			for i := 0; i < tt.fail; i++ {
				c.RecordFail()
			}
			if got := c.SuccessRatePercent(); got != tt.want {
				t.Fatalf("rate = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestRecordIgnoredUnlessRunning(t *testing.T) {
	clock := newFakeClock()
	c := NewWithClock(clock.Now)

	c.RecordSuccess()
	c.RecordFail()
	if c.Total() != 0 {
		t.Fatalf("idle counter accepted outcomes: %d", c.Total())
	}

	c.Start()
	c.RecordSuccess()
	c.Finish()
	c.RecordSuccess()
	c.RecordFail()
	if c.Success() != 1 || c.Fail() != 0 {
		t.Fatalf("finished counter accepted outcomes: %d/%d", c.Success(), c.Fail())
	}
}

func TestStartPreservesCounts(t *testing.T) {
	clock := newFakeClock()
	c := NewWithClock(clock.Now)
	c.Start()
	c.RecordSuccess()
	c.RecordSuccess()
	c.RecordFail()
	c.Finish()

	clock.Advance(time.Minute)
	c.Start()
	if c.Success() != 2 || c.Fail() != 1 {
		t.Fatalf("restart cleared counts: %d/%d", c.Success(), c.Fail())
	}
	if c.State() != StateRunning {
		t.Fatalf("state = %v, want running", c.State())
	}
	if !c.EndedAt().IsZero() {
		t.Fatalf("restart did not clear end timestamp")
	}
}

func TestStartWhileRunningIsNoOp(t *testing.T) {
	clock := newFakeClock()
	c := NewWithClock(clock.Now)
	c.Start()
	started := c.StartedAt()
	clock.Advance(10 * time.Second)
	c.Start()
	if !c.StartedAt().Equal(started) {
		t.Fatalf("start while running moved the start timestamp")
	}
}

func TestFinishFreezesElapsed(t *testing.T) {
	clock := newFakeClock()
	c := NewWithClock(clock.Now)
	c.Start()
	clock.Advance(10 * time.Second)
	c.Finish()
	if got := c.ElapsedSeconds(); got != 10 {
		t.Fatalf("elapsed = %d, want 10", got)
	}
	clock.Advance(time.Hour)
	if got := c.ElapsedSeconds(); got != 10 {
		t.Fatalf("elapsed moved after finish: %d", got)
	}
}

func TestFinishIgnoredUnlessRunning(t *testing.T) {
	clock := newFakeClock()
	c := NewWithClock(clock.Now)
	c.Finish()
	if c.State() != StateIdle || !c.EndedAt().IsZero() {
		t.Fatalf("finish while idle changed state")
	}
}

func TestResetClearsEverything(t *testing.T) {
	clock := newFakeClock()
	c := NewWithClock(clock.Now)
	c.Start()
	c.RecordSuccess()
	c.RecordFail()
	clock.Advance(30 * time.Second)
	c.Finish()

	c.Reset()
	if c.State() != StateIdle {
		t.Fatalf("state = %v, want idle", c.State())
	}
	if c.Total() != 0 {
		t.Fatalf("counts survived reset: %d", c.Total())
	}
	if c.ElapsedSeconds() != 0 {
		t.Fatalf("elapsed survived reset: %d", c.ElapsedSeconds())
	}
	if !c.StartedAt().IsZero() || !c.EndedAt().IsZero() {
		t.Fatalf("timestamps survived reset")
	}
}

func TestElapsedWhileRunning(t *testing.T) {
	clock := newFakeClock()
	c := NewWithClock(clock.Now)
	if c.ElapsedSeconds() != 0 {
		t.Fatalf("elapsed before start: %d", c.ElapsedSeconds())
	}
	c.Start()
	clock.Advance(90 * time.Second)
	if got := c.ElapsedSeconds(); got != 90 {
		t.Fatalf("elapsed = %d, want 90", got)
	}
}

func TestThroughputPerMinute(t *testing.T) {
	clock := newFakeClock()
	c := NewWithClock(clock.Now)
	c.Start()
	c.RecordSuccess()
	c.RecordFail()
	if got := c.ThroughputPerMinute(); got != 0 {
		t.Fatalf("throughput with 0 elapsed = %v, want 0", got)
	}
	clock.Advance(30 * time.Second)
	if got := c.ThroughputPerMinute(); got != 4 {
		t.Fatalf("throughput = %v, want 4", got)
	}
}

func TestStateString(t *testing.T) {
	if StateIdle.String() != "idle" || StateRunning.String() != "running" || StateFinished.String() != "finished" {
		t.Fatalf("unexpected state names: %v %v %v", StateIdle, StateRunning, StateFinished)
	}
}
