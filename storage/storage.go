package storage

import (
	"time"

	"plan2cal/schedule"
)

// DateCursor selects the archived sessions whose date falls inside
// [T, T+D). A negative D selects backwards from T.
type DateCursor struct {
	T time.Time
	D time.Duration
}

func Cursor(st time.Time, d time.Duration) DateCursor {
	return DateCursor{
		T: st,
		D: d,
	}
}

// Min and Max return the cursor bounds in ascending order.
func (c DateCursor) Min() time.Time {
	if c.D < 0 {
		return c.T.Add(c.D)
	}
	return c.T
}

func (c DateCursor) Max() time.Time {
	if c.D < 0 {
		return c.T
	}
	return c.T.Add(c.D)
}

type Saver interface {
	SaveSessions(schedule.Sessions) error
}

type Loader interface {
	LoadSessions(DateCursor) (schedule.Sessions, error)
}
