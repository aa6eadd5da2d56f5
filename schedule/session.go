package schedule

import (
	"fmt"
	"strings"
)

// UnknownLecturer is the sentinel used when a session row has no lecturer cell.
const UnknownLecturer = "Unknown"

// ClassSession is one parsed, dated, timed class occurrence. It is a plain
// value: two sessions with equal fields are the same session.
type ClassSession struct {
	Date     string
	Day      string
	Time     TimeRange
	Subject  string
	Type     string
	Room     string
	Lecturer string
}

type Sessions []ClassSession

func (s ClassSession) IsValid() bool {
	return s.Date != "" && s.Time.Start.Before(s.Time.End) && s.Subject != ""
}

func (s ClassSession) Equals(other ClassSession) bool {
	return s.Date == other.Date &&
		s.Day == other.Day &&
		s.Time.Equals(other.Time) &&
		s.Subject == other.Subject &&
		s.Type == other.Type &&
		s.Room == other.Room &&
		s.Lecturer == other.Lecturer
}

func (s ClassSession) String() string {
	return s.GoString()
}

func (s ClassSession) GoString() string {
	return fmt.Sprintf("<%s %s %s: %s (%s) @ %s // %s>",
		s.Date, s.Day, s.Time, s.Subject, s.Type, s.Room, s.Lecturer)
}

func (s Sessions) Contains(inc ClassSession) bool {
	for _, ses := range s {
		if ses.Equals(inc) {
			return true
		}
	}
	return false
}

func (s Sessions) String() string {
	return s.GoString()
}

func (s Sessions) GoString() string {
	ss := make([]string, len(s))
	for i, ses := range s {
		ss[i] = ses.GoString()
	}
	return fmt.Sprintf("Sessions[%d]:\n\t%s\n", len(s), strings.Join(ss, "\n\t"))
}
