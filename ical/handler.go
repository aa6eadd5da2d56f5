package ical

import (
	"bytes"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/soh335/ical"

	"plan2cal/schedule"
	"plan2cal/storage"
	"plan2cal/storage/boltdb"
)

type handler struct {
	path string
	loc  *time.Location
}

func NewHandler(path string, loc *time.Location) *handler {
	if loc == nil {
		loc = time.Local
	}
	return &handler{path: path, loc: loc}
}

// one academic year's worth of archive
var feedWindow = 365 * 24 * time.Hour

func (h *handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	now := time.Now().In(h.loc)

	start := time.Date(now.Year(), time.January, 1, 0, 0, 0, 0, h.loc)
	if yearURL := chi.URLParam(r, "year"); yearURL != "" {
		year, err := strconv.Atoi(yearURL)
		if err != nil {
			w.WriteHeader(http.StatusNotFound)
			fmt.Fprintf(w, "invalid year %s", yearURL)
			return
		}
		start = time.Date(year, time.January, 1, 0, 0, 0, 0, h.loc)
	}

	st := boltdb.New(boltdb.Config{Path: h.path})
	sessions, err := st.LoadSessions(storage.Cursor(start, feedWindow))
	if err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		fmt.Fprintf(w, "unable to load sessions: %s", err)
		return
	}

	cal := ical.NewBasicVCalendar()
	cal.PRODID = "-//plan2cal//CLASS-SCHEDULE//PL"
	cal.VERSION = "2.0"

	name := "plan2cal"
	cal.NAME = name
	cal.X_WR_CALNAME = name
	description := fmt.Sprintf("Class schedule starting %s", start.Format("2006-01-02"))
	cal.DESCRIPTION = description
	cal.X_WR_CALDESC = description

	tz := h.loc.String()
	cal.TIMEZONE_ID = tz
	cal.X_WR_TIMEZONE = tz

	cal.REFRESH_INTERVAL = "PT12H"
	cal.X_PUBLISHED_TTL = "PT12H"
	cal.CALSCALE = "GREGORIAN"
	cal.METHOD = "PUBLISH"

	for _, ses := range sessions {
		ev, err := h.vevent(ses)
		if err != nil {
			continue
		}
		cal.VComponent = append(cal.VComponent, ev)
	}

	b := &bytes.Buffer{}
	if err = cal.Encode(b); err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		fmt.Fprintf(w, "%s", err)
		return
	}

	w.Header().Set("Content-Type", "text/calendar; charset=utf-8")
	w.Write(b.Bytes())
}

func (h *handler) vevent(ses schedule.ClassSession) (*ical.VEvent, error) {
	day, err := time.ParseInLocation("2006-01-02", ses.Date, h.loc)
	if err != nil {
		return nil, err
	}
	at := func(clock time.Time) time.Time {
		return time.Date(day.Year(), day.Month(), day.Day(),
			clock.Hour(), clock.Minute(), 0, 0, h.loc)
	}
	start := at(ses.Time.Start)
	return &ical.VEvent{
		UID:         fmt.Sprintf("%s-%s-%s@plan2cal", ses.Date, ses.Time.Start.Format("1504"), ses.Room),
		DTSTAMP:     start,
		DTSTART:     start,
		DTEND:       at(ses.Time.End),
		SUMMARY:     fmt.Sprintf("%s (%s)", ses.Subject, ses.Type),
		DESCRIPTION: fmt.Sprintf("Sala %s, %s, %s", ses.Room, ses.Lecturer, ses.Day),
		TZID:        h.loc.String(),
	}, nil
}
