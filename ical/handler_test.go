package ical

import (
	"io"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"plan2cal/schedule"
	"plan2cal/storage/boltdb"
)

func TestFeedServesArchivedSessions(t *testing.T) {
	path := filepath.Join(t.TempDir(), "plan.bdb")
	tr, err := schedule.ParseTimeRange("09:00 - 10:30")
	if err != nil {
		t.Fatalf("ParseTimeRange err: %v", err)
	}
	st := boltdb.New(boltdb.Config{Path: path})
	err = st.SaveSessions(schedule.Sessions{{
		Date:     "2025-02-17",
		Day:      "Poniedziałek",
		Time:     tr,
		Subject:  "Bazy danych",
		Type:     "Wykład",
		Room:     "101",
		Lecturer: "Dr. Kowalski",
	}})
	if err != nil {
		t.Fatalf("SaveSessions err: %v", err)
	}

	srv := httptest.NewServer(Routes(path, time.UTC))
	defer srv.Close()

	res, err := srv.Client().Get(srv.URL + "/2025")
	if err != nil {
		t.Fatalf("GET err: %v", err)
	}
	defer res.Body.Close()
	if res.StatusCode != 200 {
		t.Fatalf("status %d", res.StatusCode)
	}

	raw, err := io.ReadAll(res.Body)
	if err != nil {
		t.Fatalf("read body: %v", err)
	}
	body := string(raw)
	for _, want := range []string{"BEGIN:VCALENDAR", "Bazy danych (Wykład)", "BEGIN:VEVENT"} {
		if !strings.Contains(body, want) {
			t.Errorf("feed missing %q:\n%s", want, body)
		}
	}
}

func TestFeedRejectsBadYear(t *testing.T) {
	srv := httptest.NewServer(Routes(filepath.Join(t.TempDir(), "plan.bdb"), time.UTC))
	defer srv.Close()

	res, err := srv.Client().Get(srv.URL + "/not-a-year")
	if err != nil {
		t.Fatalf("GET err: %v", err)
	}
	res.Body.Close()
	if res.StatusCode != 404 {
		t.Fatalf("status %d, want 404", res.StatusCode)
	}
}
