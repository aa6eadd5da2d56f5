package schedule

import (
	"fmt"
	"strings"
	"time"
)

const (
	clockLayout    = "15:04"
	rangeSeparator = " - "
)

// TimeRange is a pair of wall-clock times, start strictly before end.
// Both carry only the hour and minute; the date half lives on the session.
type TimeRange struct {
	Start time.Time
	End   time.Time
}

func (tr TimeRange) Equals(other TimeRange) bool {
	return tr.Start.Equal(other.Start) && tr.End.Equal(other.End)
}

func (tr TimeRange) String() string {
	return tr.Start.Format(clockLayout) + rangeSeparator + tr.End.Format(clockLayout)
}

// ParseTimeRange parses a "HH:MM - HH:MM" cell. The separator is the literal
// " - "; "9:00-10:30" style cells are rejected.
func ParseTimeRange(s string) (TimeRange, error) {
	var tr TimeRange
	parts := strings.Split(s, rangeSeparator)
	if len(parts) != 2 {
		return tr, fmt.Errorf("no %q separator in %q", rangeSeparator, s)
	}
	start, err := time.Parse(clockLayout, parts[0])
	if err != nil {
		return tr, fmt.Errorf("invalid start time in %q: %w", s, err)
	}
	end, err := time.Parse(clockLayout, parts[1])
	if err != nil {
		return tr, fmt.Errorf("invalid end time in %q: %w", s, err)
	}
	if !start.Before(end) {
		return tr, fmt.Errorf("start %s is not before end %s", parts[0], parts[1])
	}
	tr.Start = start
	tr.End = end
	return tr, nil
}

// ValidTimeRange reports whether s would parse as a session time cell.
func ValidTimeRange(s string) bool {
	_, err := ParseTimeRange(s)
	return err == nil
}
