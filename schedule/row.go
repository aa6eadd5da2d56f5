package schedule

import "strings"

type RowKind int

const (
	// Noise is the catch-all for rows that match nothing below.
	Noise RowKind = iota
	// Header is a column-header row, recognized by its marker tokens.
	Header
	// DateMarker establishes the (date, day) context for the rows after it.
	DateMarker
	// NoSession is a dated "no classes" announcement; it carries no session.
	NoSession
	// Session is one timed class occurrence.
	Session
)

func (k RowKind) String() string {
	switch k {
	case Header:
		return "header"
	case DateMarker:
		return "date"
	case NoSession:
		return "no-session"
	case Session:
		return "session"
	}
	return "noise"
}

// Row is the classified form of one table row. Only the fields matching
// Kind are populated.
type Row struct {
	Kind     RowKind
	Date     string
	Day      string
	Time     TimeRange
	Subject  string
	Type     string
	Room     string
	Lecturer string
}

// Markers are the site-specific tokens the classifier keys on.
type Markers struct {
	HeaderTokens []string
	NoClasses    string
}

func DefaultMarkers() Markers {
	return Markers{
		HeaderTokens: []string{"DATA", "GRUPA"},
		NoClasses:    "Brak zajęć",
	}
}

// Classify maps one row of trimmed, whitespace-collapsed cells to exactly
// one Row variant. It is a pure function of the cells and markers; it never
// looks at neighboring rows. The marker checks run before the shape checks
// because header and no-classes rows can otherwise pass for date or session
// rows.
func Classify(cells []string, m Markers) Row {
	if len(cells) == 0 {
		return Row{Kind: Noise}
	}
	if isHeader(cells, m.HeaderTokens) {
		return Row{Kind: Header}
	}
	if m.NoClasses != "" && containsToken(cells, m.NoClasses) {
		return Row{Kind: NoSession}
	}
	if len(cells) >= 2 && isISODate(cells[0]) {
		return Row{Kind: DateMarker, Date: cells[0], Day: cells[1]}
	}
	if len(cells) >= 4 {
		if tr, err := ParseTimeRange(cells[0]); err == nil {
			r := Row{
				Kind:     Session,
				Time:     tr,
				Subject:  cells[1],
				Type:     cells[2],
				Room:     cells[3],
				Lecturer: UnknownLecturer,
			}
			if len(cells) >= 5 && cells[4] != "" {
				r.Lecturer = cells[4]
			}
			return r
		}
	}
	return Row{Kind: Noise}
}

func isHeader(cells, tokens []string) bool {
	for _, c := range cells {
		for _, t := range tokens {
			if strings.EqualFold(c, t) {
				return true
			}
		}
	}
	return false
}

func containsToken(cells []string, token string) bool {
	for _, c := range cells {
		if strings.Contains(strings.ToLower(c), strings.ToLower(token)) {
			return true
		}
	}
	return false
}

// isISODate is a structural check only: ten characters with dashes between
// the date parts. Semantic validation happens when the session is combined
// into a concrete instant, so a bogus month turns into a per-session skip
// instead of a silently dropped row.
func isISODate(s string) bool {
	if len(s) != 10 {
		return false
	}
	for i, c := range s {
		if i == 4 || i == 7 {
			if c != '-' {
				return false
			}
			continue
		}
		if c < '0' || c > '9' {
			return false
		}
	}
	return true
}
