package gcal

import (
	"context"
	"fmt"
	"time"

	"golang.org/x/oauth2"
	"google.golang.org/api/calendar/v3"
	"google.golang.org/api/option"
)

// DefaultCalendarID is the authenticated user's primary calendar.
const DefaultCalendarID = "primary"

// Calendar is the narrow collaborator surface the sync engine needs: find
// what already exists in a time window, and insert one event. The Google
// implementation lives behind it so tests can run against a fake.
type Calendar interface {
	FindEvents(timeMin, timeMax time.Time) ([]*calendar.Event, error)
	InsertEvent(ev *calendar.Event) (*calendar.Event, error)
}

type googleCalendar struct {
	svc        *calendar.Service
	calendarID string
}

// NewCalendar builds an authenticated Calendar handle. This is the only
// step of a run that is allowed to be fatal: without a handle there is
// nothing to sync against.
func NewCalendar(ctx context.Context, conf *oauth2.Config, tok *oauth2.Token, calendarID string) (Calendar, error) {
	if conf == nil {
		return nil, fmt.Errorf("nil OAuth2 config")
	}
	if tok == nil {
		return nil, fmt.Errorf("nil OAuth2 token")
	}
	if calendarID == "" {
		calendarID = DefaultCalendarID
	}
	svc, err := calendar.NewService(ctx, option.WithHTTPClient(conf.Client(ctx, tok)))
	if err != nil {
		return nil, fmt.Errorf("unable to create calendar service: %w", err)
	}
	return &googleCalendar{svc: svc, calendarID: calendarID}, nil
}

func (g *googleCalendar) FindEvents(timeMin, timeMax time.Time) ([]*calendar.Event, error) {
	res, err := g.svc.Events.List(g.calendarID).
		TimeMin(timeMin.Format(time.RFC3339)).
		TimeMax(timeMax.Format(time.RFC3339)).
		SingleEvents(true).
		Do()
	if err != nil {
		return nil, err
	}
	return res.Items, nil
}

func (g *googleCalendar) InsertEvent(ev *calendar.Event) (*calendar.Event, error) {
	return g.svc.Events.Insert(g.calendarID, ev).Do()
}
