package schedule

import "testing"

func TestClassify(t *testing.T) {
	m := DefaultMarkers()
	tests := []struct {
		name  string
		cells []string
		kind  RowKind
	}{
		{"empty", nil, Noise},
		{"no cells", []string{}, Noise},
		{"header by DATA", []string{"DATA", "DZIEŃ", "GODZINY"}, Header},
		{"header by GRUPA", []string{"GODZINY", "PRZEDMIOT", "GRUPA"}, Header},
		{"header case-insensitive", []string{"data", "dzień"}, Header},
		{"date marker", []string{"2025-02-17", "Monday"}, DateMarker},
		{"date marker extra cells", []string{"2025-03-01", "Saturday", "", ""}, DateMarker},
		{"lone date", []string{"2025-02-17"}, Noise},
		{"not a date", []string{"17.02.2025", "Monday"}, Noise},
		{"no classes", []string{"2025-02-18", "Tuesday", "Brak zajęć", ""}, NoSession},
		{"no classes mixed case", []string{"", "", "brak zajęć", ""}, NoSession},
		{"session full", []string{"09:00 - 10:30", "Databases", "Lecture", "101", "Dr. Smith"}, Session},
		{"session no lecturer", []string{"11:00 - 12:30", "Algorithms", "Lab", "205"}, Session},
		{"session bad time", []string{"9:00-10:30", "Databases", "Lecture", "101"}, Noise},
		{"session too short", []string{"09:00 - 10:30", "Databases", "Lecture"}, Noise},
		{"footer legend", []string{"W - wykład", "C - ćwiczenia"}, Noise},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			r := Classify(tc.cells, m)
			if r.Kind != tc.kind {
				t.Fatalf("Classify(%v) = %s, want %s", tc.cells, r.Kind, tc.kind)
			}
		})
	}
}

func TestClassifyDateMarkerFields(t *testing.T) {
	r := Classify([]string{"2025-02-17", "Monday"}, DefaultMarkers())
	if r.Date != "2025-02-17" || r.Day != "Monday" {
		t.Errorf("unexpected marker fields: %q %q", r.Date, r.Day)
	}
}

func TestClassifySessionFields(t *testing.T) {
	m := DefaultMarkers()

	r := Classify([]string{"09:00 - 10:30", "Databases", "Lecture", "101", "Dr. Smith"}, m)
	if r.Subject != "Databases" || r.Type != "Lecture" || r.Room != "101" || r.Lecturer != "Dr. Smith" {
		t.Errorf("unexpected session fields: %+v", r)
	}

	r = Classify([]string{"11:00 - 12:30", "Algorithms", "Lab", "205"}, m)
	if r.Lecturer != UnknownLecturer {
		t.Errorf("lecturer = %q, want sentinel %q", r.Lecturer, UnknownLecturer)
	}

	// An empty fifth cell still means no lecturer.
	r = Classify([]string{"11:00 - 12:30", "Algorithms", "Lab", "205", ""}, m)
	if r.Lecturer != UnknownLecturer {
		t.Errorf("lecturer = %q, want sentinel %q", r.Lecturer, UnknownLecturer)
	}
}

func TestClassifyStructuralDateOnly(t *testing.T) {
	// A bogus month is still a date marker; it fails later, at instant
	// construction, as a per-session skip.
	r := Classify([]string{"2025-13-45", "Nieday"}, DefaultMarkers())
	if r.Kind != DateMarker {
		t.Errorf("Classify = %s, want %s", r.Kind, DateMarker)
	}
}
