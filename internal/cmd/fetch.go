package cmd

import (
	"fmt"
	"net/url"

	"github.com/urfave/cli"

	"plan2cal/schedule"
	"plan2cal/storage/boltdb"
)

var FetchCmd = cli.Command{
	Name:  "fetch",
	Usage: "Fetches the schedule page and extracts class sessions",
	Flags: []cli.Flag{
		&cli.StringFlag{
			Name:  "url",
			Usage: "Schedule page to load, overrides the configured one",
		},
		&cli.BoolFlag{
			Name:  "save",
			Usage: "Archive the extracted sessions locally",
		},
	},
	Action: fetchSchedule,
}

func loadSchedule(c *cli.Context) (schedule.Sessions, error) {
	cfg, err := loadConfig(c)
	if err != nil {
		return nil, err
	}
	rawURL := c.String("url")
	if rawURL == "" {
		rawURL = cfg.ScheduleURL
	}
	if rawURL == "" {
		return nil, fmt.Errorf("no schedule URL configured, pass --url or set schedule_url")
	}
	u, err := url.Parse(rawURL)
	if err != nil {
		return nil, fmt.Errorf("invalid schedule URL %s: %w", rawURL, err)
	}
	return schedule.LoadSessions(u, cfg.Markers())
}

func fetchSchedule(c *cli.Context) error {
	sessions, err := loadSchedule(c)
	if err != nil {
		return err
	}
	info("%s", sessions)

	if !c.Bool("save") {
		return nil
	}
	if c.GlobalBool("dry-run") {
		info("dry-run: not archiving %d sessions", len(sessions))
		return nil
	}
	conf := boltdb.Config{
		Path:  dbPath(c),
		ErrFn: errFn,
	}
	if c.GlobalBool("debug") {
		conf.LogFn = info
	}
	return boltdb.New(conf).SaveSessions(sessions)
}
