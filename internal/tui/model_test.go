package tui

import (
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/verte-zerg/picktally/internal/model"
	"github.com/verte-zerg/picktally/internal/session"
)

type testClock struct {
	now time.Time
}

func (c *testClock) Now() time.Time {
	return c.now
}

func newTestModel() (*Model, *testClock) {
	clock := &testClock{now: time.Unix(1000, 0)}
	counter := session.NewWithClock(clock.Now)
	m := NewModel(model.Config{Task: "picking", AutoSave: false}, nil, counter)
	return m, clock
}

func keyMsg(key string) tea.KeyMsg {
	switch key {
	case "left":
		return tea.KeyMsg{Type: tea.KeyLeft}
	case "right":
		return tea.KeyMsg{Type: tea.KeyRight}
	default:
		return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(key)}
	}
}

func TestArrowKeysRecordOnlyWhileRunning(t *testing.T) {
	m, _ := newTestModel()

	m.Update(keyMsg("right"))
	m.Update(keyMsg("left"))
	if m.counter.Total() != 0 {
		t.Fatalf("idle model recorded outcomes: %d", m.counter.Total())
	}

	m.Update(keyMsg("s"))
	m.Update(keyMsg("right"))
	m.Update(keyMsg("right"))
	m.Update(keyMsg("left"))
	if m.counter.Success() != 2 || m.counter.Fail() != 1 {
		t.Fatalf("unexpected counts: %d/%d", m.counter.Success(), m.counter.Fail())
	}

	m.Update(keyMsg("f"))
	m.Update(keyMsg("right"))
	if m.counter.Success() != 2 {
		t.Fatalf("finished model recorded outcome")
	}
}

func TestFinishFreezesDisplayedElapsed(t *testing.T) {
	m, clock := newTestModel()
	m.Update(keyMsg("s"))
	clock.now = clock.now.Add(10 * time.Second)
	m.Update(keyMsg("f"))
	clock.now = clock.now.Add(time.Hour)
	if got := m.counter.ElapsedSeconds(); got != 10 {
		t.Fatalf("elapsed = %d, want 10", got)
	}
	if !strings.Contains(m.renderTiming(), "00:00:10") {
		t.Fatalf("timing line missing frozen elapsed: %q", m.renderTiming())
	}
}

func TestResetKeyClearsSession(t *testing.T) {
	m, _ := newTestModel()
	m.Update(keyMsg("s"))
	m.Update(keyMsg("right"))
	m.Update(keyMsg("r"))
	if m.counter.State() != session.StateIdle || m.counter.Total() != 0 {
		t.Fatalf("reset did not clear session")
	}
}

func TestRenderRateFormats(t *testing.T) {
	m, _ := newTestModel()
	m.Update(keyMsg("s"))
	for i := 0; i < 3; i++ {
		m.Update(keyMsg("right"))
	}
	m.Update(keyMsg("left"))
	if got := m.renderRate(); got != "75.0% (3/4)" {
		t.Fatalf("unexpected rate line: %q", got)
	}
}

func TestRenderFooterFormats(t *testing.T) {
	m, _ := newTestModel()
	m.hasLast = true
	m.lastRate = 92.5
	m.lastPerMin = 14.2
	m.allSuccess = 90
	m.allFail = 10
	m.allRate = 90.0
	m.allPerMin = 13.0
	out := m.renderFooter()
	if out == "" {
		t.Fatalf("expected footer output")
	}
	for _, want := range []string{"Last 92.5%", "14.2/min", "All-time 90.0%", "13.0/min"} {
		if !strings.Contains(out, want) {
			t.Fatalf("footer missing %q: %s", want, out)
		}
	}
}

func TestTickDoesNotMutateCounter(t *testing.T) {
	m, clock := newTestModel()
	m.Update(keyMsg("s"))
	m.Update(keyMsg("right"))
	clock.now = clock.now.Add(time.Second)
	_, cmd := m.Update(tickMsg(clock.now))
	if cmd == nil {
		t.Fatalf("tick should reschedule itself")
	}
	if m.counter.Success() != 1 || m.counter.State() != session.StateRunning {
		t.Fatalf("tick mutated counter state")
	}
}
