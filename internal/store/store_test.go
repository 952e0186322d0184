package store

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/verte-zerg/picktally/internal/model"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	dir := t.TempDir()
	st, err := Open(filepath.Join(dir, "picktally.db"))
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	t.Cleanup(func() {
		_ = st.Close()
	})
	return st
}

func insertTestSession(t *testing.T, st *Store, task string, offset time.Duration, success, fail int) int64 {
	t.Helper()
	start := time.Unix(0, 0).Add(offset)
	end := start.Add(30 * time.Second)
	id, err := st.InsertSession(context.Background(), model.SessionRecord{
		StartedAt:  start,
		EndedAt:    end,
		Task:       task,
		Success:    success,
		Fail:       fail,
		DurationMs: end.Sub(start).Milliseconds(),
	})
	if err != nil {
		t.Fatalf("insert session: %v", err)
	}
	return id
}

func TestInsertAndListSessions(t *testing.T) {
	st := openTestStore(t)
	ctx := context.Background()

	first := insertTestSession(t, st, "picking", 0, 10, 2)
	second := insertTestSession(t, st, "picking", time.Minute, 8, 0)
	insertTestSession(t, st, "qa", 2*time.Minute, 5, 5)

	sessions, err := st.ListSessions(ctx, model.StatsConfig{Task: "picking"})
	if err != nil {
		t.Fatalf("list sessions: %v", err)
	}
	if len(sessions) != 2 {
		t.Fatalf("expected 2 sessions, got %d", len(sessions))
	}
	if sessions[0].SessionID != first || sessions[1].SessionID != second {
		t.Fatalf("unexpected order: %+v", sessions)
	}
	if sessions[0].Success != 10 || sessions[0].Fail != 2 {
		t.Fatalf("unexpected counts: %+v", sessions[0])
	}
	if sessions[0].DurationMs != 30000 {
		t.Fatalf("unexpected duration: %d", sessions[0].DurationMs)
	}
}

func TestListSessionsSinceFilter(t *testing.T) {
	st := openTestStore(t)
	ctx := context.Background()

	insertTestSession(t, st, "picking", 0, 1, 0)
	insertTestSession(t, st, "picking", time.Hour, 2, 0)

	since := time.Unix(0, 0).Add(30 * time.Minute)
	sessions, err := st.ListSessions(ctx, model.StatsConfig{Since: &since})
	if err != nil {
		t.Fatalf("list sessions: %v", err)
	}
	if len(sessions) != 1 {
		t.Fatalf("expected 1 session, got %d", len(sessions))
	}
	if sessions[0].Success != 2 {
		t.Fatalf("wrong session returned: %+v", sessions[0])
	}
}

func TestListTasks(t *testing.T) {
	st := openTestStore(t)
	ctx := context.Background()

	insertTestSession(t, st, "qa", 0, 1, 0)
	insertTestSession(t, st, "picking", time.Minute, 1, 0)
	insertTestSession(t, st, "picking", 2*time.Minute, 1, 0)

	tasks, err := st.ListTasks(ctx)
	if err != nil {
		t.Fatalf("list tasks: %v", err)
	}
	if len(tasks) != 2 || tasks[0] != "picking" || tasks[1] != "qa" {
		t.Fatalf("unexpected tasks: %v", tasks)
	}
}
