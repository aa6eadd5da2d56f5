package gcal

import (
	"fmt"
	"time"

	"git.sr.ht/~mariusor/lw"
	"google.golang.org/api/calendar/v3"

	"plan2cal/schedule"
)

const (
	dateLayout = "2006-01-02"

	// DefaultDedupWindow is the interval after a session's start that is
	// queried for an already published event.
	DefaultDedupWindow = time.Minute
	// DefaultReminderMinutes is the popup reminder lead time.
	DefaultReminderMinutes = 15
)

type Status int

const (
	Inserted Status = iota
	SkippedDuplicate
	SkippedParseError
	SkippedAPIError
)

func (s Status) String() string {
	switch s {
	case Inserted:
		return "added"
	case SkippedDuplicate:
		return "already exists"
	case SkippedParseError:
		return "skipped, invalid date/time"
	case SkippedAPIError:
		return "skipped, calendar error"
	}
	return "unknown"
}

// Outcome is the terminal state of one session. Every session gets exactly
// one outcome; none of them abort the batch.
type Outcome struct {
	Session schedule.ClassSession
	Status  Status
	EventID string
	Err     error
}

func (o Outcome) String() string {
	s := fmt.Sprintf("%s (%s): %s", o.Session.Subject, o.Session.Time, o.Status)
	if o.Err != nil {
		s = fmt.Sprintf("%s: %s", s, o.Err)
	}
	return s
}

type Summary struct {
	Inserted   int
	Duplicates int
	Skipped    int
}

func (s Summary) Total() int {
	return s.Inserted + s.Duplicates + s.Skipped
}

func (s Summary) String() string {
	return fmt.Sprintf("%d added, %d already existed, %d skipped", s.Inserted, s.Duplicates, s.Skipped)
}

// Syncer publishes class sessions as calendar events, one at a time, never
// twice. It keeps no state between runs; the remote calendar itself is the
// record of what was already published.
type Syncer struct {
	Cal      Calendar
	Location *time.Location
	Window   time.Duration
	Reminder int64
	Logger   lw.Logger
}

func NewSyncer(cal Calendar, loc *time.Location, l lw.Logger) *Syncer {
	if loc == nil {
		loc = time.Local
	}
	return &Syncer{
		Cal:      cal,
		Location: loc,
		Window:   DefaultDedupWindow,
		Reminder: DefaultReminderMinutes,
		Logger:   l,
	}
}

// Publish runs every session through the engine, in input order, and
// returns one outcome per session plus totals.
func (s *Syncer) Publish(sessions schedule.Sessions) ([]Outcome, Summary) {
	outcomes := make([]Outcome, 0, len(sessions))
	sum := Summary{}
	for _, ses := range sessions {
		out := s.publish(ses)
		switch out.Status {
		case Inserted:
			sum.Inserted++
		case SkippedDuplicate:
			sum.Duplicates++
		default:
			sum.Skipped++
		}
		outcomes = append(outcomes, out)
	}
	return outcomes, sum
}

func (s *Syncer) publish(ses schedule.ClassSession) Outcome {
	out := Outcome{Session: ses}

	start, end, err := s.interval(ses)
	if err != nil {
		out.Status = SkippedParseError
		out.Err = err
		s.warnf("unable to build session instant: %s", err)
		return out
	}

	existing, err := s.Cal.FindEvents(start, start.Add(s.window()))
	if err != nil {
		out.Status = SkippedAPIError
		out.Err = err
		s.warnf("duplicate check failed for %s: %s", ses.Subject, err)
		return out
	}
	if len(existing) > 0 {
		out.Status = SkippedDuplicate
		out.EventID = existing[0].Id
		return out
	}

	created, err := s.Cal.InsertEvent(s.event(ses, start, end))
	if err != nil {
		out.Status = SkippedAPIError
		out.Err = err
		s.warnf("insert failed for %s: %s", ses.Subject, err)
		return out
	}
	out.Status = Inserted
	out.EventID = created.Id
	return out
}

// interval combines the session's date with its wall-clock range in the
// configured zone. The classifier only checked the date's shape, so a
// bogus month or day surfaces here.
func (s *Syncer) interval(ses schedule.ClassSession) (time.Time, time.Time, error) {
	day, err := time.ParseInLocation(dateLayout, ses.Date, s.Location)
	if err != nil {
		return time.Time{}, time.Time{}, err
	}
	at := func(clock time.Time) time.Time {
		return time.Date(day.Year(), day.Month(), day.Day(),
			clock.Hour(), clock.Minute(), 0, 0, s.Location)
	}
	return at(ses.Time.Start), at(ses.Time.End), nil
}

func (s *Syncer) event(ses schedule.ClassSession, start, end time.Time) *calendar.Event {
	zone := s.Location.String()
	return &calendar.Event{
		Summary:     fmt.Sprintf("%s (%s)", ses.Subject, ses.Type),
		Location:    fmt.Sprintf("Sala %s", ses.Room),
		Description: fmt.Sprintf("Prowadzący: %s\nDzień: %s", ses.Lecturer, ses.Day),
		Start: &calendar.EventDateTime{
			DateTime: start.Format(time.RFC3339),
			TimeZone: zone,
		},
		End: &calendar.EventDateTime{
			DateTime: end.Format(time.RFC3339),
			TimeZone: zone,
		},
		Reminders: &calendar.EventReminders{
			UseDefault: false,
			Overrides: []*calendar.EventReminder{
				{Method: "popup", Minutes: s.reminder()},
			},
			// UseDefault=false is a zero value, the API client drops it
			// from the JSON body unless forced.
			ForceSendFields: []string{"UseDefault"},
		},
	}
}

func (s *Syncer) window() time.Duration {
	if s.Window <= 0 {
		return DefaultDedupWindow
	}
	return s.Window
}

func (s *Syncer) reminder() int64 {
	if s.Reminder <= 0 {
		return DefaultReminderMinutes
	}
	return s.Reminder
}

func (s *Syncer) warnf(msg string, args ...any) {
	if s.Logger == nil {
		return
	}
	s.Logger.Warnf(msg, args...)
}
