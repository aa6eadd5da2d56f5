package schedule

import (
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// Rows flattens every table in the document into one row sequence, in
// document order. Cell text is trimmed and inner line breaks are collapsed
// to single spaces, which is the shape the classifier expects.
func Rows(doc *goquery.Document) [][]string {
	rows := make([][]string, 0)
	doc.Find("table").Each(func(i int, table *goquery.Selection) {
		table.Find("tr").Each(func(i int, tr *goquery.Selection) {
			cells := make([]string, 0)
			tr.Find("th, td").Each(func(i int, cell *goquery.Selection) {
				cells = append(cells, normalizeCell(cell.Text()))
			})
			rows = append(rows, cells)
		})
	})
	return rows
}

// ParseSessions reads an HTML schedule page and extracts its sessions.
func ParseSessions(r io.Reader, m Markers) (Sessions, error) {
	doc, err := goquery.NewDocumentFromReader(r)
	if err != nil {
		return nil, fmt.Errorf("unable to parse schedule page: %w", err)
	}
	return Extract(Rows(doc), m), nil
}

// LoadSessions fetches the schedule page over HTTP and extracts its
// sessions.
func LoadSessions(u *url.URL, m Markers) (Sessions, error) {
	if u == nil {
		return nil, fmt.Errorf("nil URL received")
	}
	res, err := http.Get(u.String())
	if err != nil {
		return nil, err
	}
	defer res.Body.Close()
	if res.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("status code error: %d %s", res.StatusCode, res.Status)
	}
	return ParseSessions(res.Body, m)
}

func normalizeCell(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
