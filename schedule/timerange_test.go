package schedule

import "testing"

func TestParseTimeRange(t *testing.T) {
	tests := []struct {
		in    string
		valid bool
	}{
		{"09:00 - 10:30", true},
		{"11:00 - 12:30", true},
		{"00:00 - 23:59", true},
		{"", false},
		{"9:00-10:30", false},
		{"09:00-10:30", false},
		{"25:00 - 10:30", false},
		{"09:00 - 10:60", false},
		{"10:30 - 09:00", false},
		{"09:00 - 09:00", false},
		{"09:00 - ", false},
		{"sala 101", false},
	}
	for _, tc := range tests {
		tr, err := ParseTimeRange(tc.in)
		if tc.valid && err != nil {
			t.Errorf("ParseTimeRange(%q) err: %v", tc.in, err)
		}
		if !tc.valid && err == nil {
			t.Errorf("ParseTimeRange(%q) expected error, got %v", tc.in, tr)
		}
		if ValidTimeRange(tc.in) != tc.valid {
			t.Errorf("ValidTimeRange(%q) = %v, want %v", tc.in, !tc.valid, tc.valid)
		}
	}
}

func TestTimeRangeString(t *testing.T) {
	tr, err := ParseTimeRange("09:00 - 10:30")
	if err != nil {
		t.Fatalf("ParseTimeRange err: %v", err)
	}
	if got := tr.String(); got != "09:00 - 10:30" {
		t.Errorf("String() = %q", got)
	}
}
