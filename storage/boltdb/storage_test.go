package boltdb

import (
	"path/filepath"
	"testing"
	"time"

	"plan2cal/schedule"
	"plan2cal/storage"
)

func testSession(t *testing.T, date, timeRange, subject string) schedule.ClassSession {
	t.Helper()
	tr, err := schedule.ParseTimeRange(timeRange)
	if err != nil {
		t.Fatalf("ParseTimeRange err: %v", err)
	}
	return schedule.ClassSession{
		Date:     date,
		Day:      "Monday",
		Time:     tr,
		Subject:  subject,
		Type:     "Lecture",
		Room:     "101",
		Lecturer: schedule.UnknownLecturer,
	}
}

func TestSaveLoadSessions(t *testing.T) {
	r := New(Config{Path: filepath.Join(t.TempDir(), "plan.bdb")})

	sessions := schedule.Sessions{
		testSession(t, "2025-02-17", "09:00 - 10:30", "Databases"),
		testSession(t, "2025-02-18", "11:00 - 12:30", "Algorithms"),
		testSession(t, "2025-03-03", "08:00 - 09:30", "Statistics"),
	}
	if err := r.SaveSessions(sessions); err != nil {
		t.Fatalf("SaveSessions err: %v", err)
	}

	start, _ := time.Parse("2006-01-02", "2025-02-17")
	got, err := r.LoadSessions(storage.Cursor(start, 7*24*time.Hour))
	if err != nil {
		t.Fatalf("LoadSessions err: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("loaded %d sessions, want 2: %s", len(got), got)
	}
	if !got.Contains(sessions[0]) || !got.Contains(sessions[1]) {
		t.Errorf("window contents wrong: %s", got)
	}
}

func TestSaveSessionsOverwrites(t *testing.T) {
	r := New(Config{Path: filepath.Join(t.TempDir(), "plan.bdb")})

	ses := testSession(t, "2025-02-17", "09:00 - 10:30", "Databases")
	if err := r.SaveSessions(schedule.Sessions{ses}); err != nil {
		t.Fatalf("SaveSessions err: %v", err)
	}
	// Re-fetching the same page must not duplicate the archive.
	if err := r.SaveSessions(schedule.Sessions{ses}); err != nil {
		t.Fatalf("SaveSessions err: %v", err)
	}

	start, _ := time.Parse("2006-01-02", "2025-02-17")
	got, err := r.LoadSessions(storage.Cursor(start, 24*time.Hour))
	if err != nil {
		t.Fatalf("LoadSessions err: %v", err)
	}
	if len(got) != 1 {
		t.Fatalf("loaded %d sessions, want 1", len(got))
	}
}

func TestLoadSessionsEmptyWindow(t *testing.T) {
	r := New(Config{Path: filepath.Join(t.TempDir(), "plan.bdb")})

	if err := r.SaveSessions(schedule.Sessions{testSession(t, "2025-02-17", "09:00 - 10:30", "Databases")}); err != nil {
		t.Fatalf("SaveSessions err: %v", err)
	}
	start, _ := time.Parse("2006-01-02", "2030-01-01")
	got, err := r.LoadSessions(storage.Cursor(start, 24*time.Hour))
	if err != nil {
		t.Fatalf("LoadSessions err: %v", err)
	}
	if len(got) != 0 {
		t.Fatalf("loaded %d sessions from empty window", len(got))
	}
}
