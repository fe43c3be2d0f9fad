package monitor

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"
	"time"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelError}))
}

func hasName(events []Event, name string) bool {
	for _, e := range events {
		if e.Name == name {
			return true
		}
	}
	return false
}

func TestMonitor_RecordsCreate(t *testing.T) {
	dir := t.TempDir()
	m, err := Start(dir, testLogger())
	if err != nil {
		t.Fatalf("Start: %v", err)
	}

	_ = os.WriteFile(filepath.Join(dir, "intruder.txt"), []byte("x"), 0o644)

	events := m.Stop(300 * time.Millisecond)
	if !hasName(events, "intruder.txt") {
		t.Errorf("expected event for intruder.txt, got %+v", events)
	}
}

func TestMonitor_StopWithoutEvents(t *testing.T) {
	m, err := Start(t.TempDir(), testLogger())
	if err != nil {
		t.Fatalf("Start: %v", err)
	}
	if events := m.Stop(0); len(events) != 0 {
		t.Errorf("events = %+v, want none", events)
	}
}

func TestStart_MissingDir(t *testing.T) {
	if _, err := Start(filepath.Join(t.TempDir(), "nope"), testLogger()); err == nil {
		t.Error("expected error for missing dir")
	}
}

func TestForeign(t *testing.T) {
	events := []Event{
		{Name: "a.txt", Op: "RENAME"},
		{Name: "z.log", Op: "CREATE"},
		{Name: "part 1.txt", Op: "CREATE"},
		{Name: "z.log", Op: "WRITE"},
		{Name: "b.tmp", Op: "CREATE"},
	}
	touched := map[string]bool{"a.txt": true, "part 1.txt": true}

	got := Foreign(events, touched)
	if len(got) != 2 {
		t.Fatalf("len = %d, want 2: %+v", len(got), got)
	}
	if got[0].Name != "b.tmp" || got[1].Name != "z.log" || got[1].Op != "CREATE" {
		t.Errorf("got %+v", got)
	}
}
