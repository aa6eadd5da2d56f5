package cmd

import (
	"fmt"

	"github.com/urfave/cli"

	"plan2cal/storage"
	"plan2cal/storage/boltdb"
)

var ListCmd = cli.Command{
	Name:  "list",
	Usage: "Lists archived class sessions",
	Flags: []cli.Flag{
		&cli.StringFlag{
			Name:  "start",
			Usage: "Date at which to start",
			Value: defaultStartTime.Format("2006-01-02"),
		},
		&cli.DurationFlag{
			Name:  "end",
			Usage: "Date interval to check",
			Value: defaultDuration,
		},
	},
	Action: listSessions,
}

func listSessions(c *cli.Context) error {
	start := parseStartDate(c.String("start"))
	duration := c.Duration("end")

	st := boltdb.New(boltdb.Config{
		Path:  dbPath(c),
		ErrFn: errFn,
	})

	info("Loading sessions for period: %s - %s",
		start.Format("2006-01-02 Mon"), start.Add(duration).Format("2006-01-02 Mon"))
	sessions, err := st.LoadSessions(storage.Cursor(start, duration))
	if err != nil {
		return fmt.Errorf("unable to load sessions: %w", err)
	}
	if len(sessions) == 0 {
		info("nothing found")
		return nil
	}
	for _, ses := range sessions {
		info("%s", ses)
	}
	return nil
}
