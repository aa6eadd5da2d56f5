package schedule

// dateContext is the accumulator threaded through the extraction fold: the
// most recently seen (date, day) pair. A session row seen before any date
// marker has nothing to attach to and is dropped.
type dateContext struct {
	date string
	day  string
}

func (c dateContext) set() bool {
	return c.date != ""
}

// Extract folds the classifier over all rows, in source order, and returns
// the sessions in the order they appear. It always consumes the whole
// input; a schedule with no session rows yields an empty, valid result.
func Extract(rows [][]string, m Markers) Sessions {
	sessions := make(Sessions, 0, len(rows))
	ctx := dateContext{}
	for _, cells := range rows {
		var ses ClassSession
		var ok bool
		ctx, ses, ok = step(ctx, Classify(cells, m))
		if ok {
			sessions = append(sessions, ses)
		}
	}
	return sessions
}

func step(ctx dateContext, r Row) (dateContext, ClassSession, bool) {
	switch r.Kind {
	case DateMarker:
		return dateContext{date: r.Date, day: r.Day}, ClassSession{}, false
	case Session:
		if !ctx.set() {
			return ctx, ClassSession{}, false
		}
		ses := ClassSession{
			Date:     ctx.date,
			Day:      ctx.day,
			Time:     r.Time,
			Subject:  r.Subject,
			Type:     r.Type,
			Room:     r.Room,
			Lecturer: r.Lecturer,
		}
		return ctx, ses, true
	}
	// Header, NoSession and Noise rows change nothing.
	return ctx, ClassSession{}, false
}
