package cmd

import (
	"context"
	"fmt"

	"git.sr.ht/~mariusor/lw"
	"github.com/urfave/cli"

	"plan2cal/gcal"
	"plan2cal/schedule"
	"plan2cal/storage"
	"plan2cal/storage/boltdb"
)

var SyncCmd = cli.Command{
	Name:  "sync",
	Usage: "Publishes class sessions to Google Calendar, skipping ones already there",
	Flags: []cli.Flag{
		&cli.StringFlag{
			Name:  "url",
			Usage: "Schedule page to load, overrides the configured one",
		},
		&cli.BoolFlag{
			Name:  "archived",
			Usage: "Publish from the local archive instead of fetching the page",
		},
		&cli.StringFlag{
			Name:  "start",
			Usage: "Date at which to start, with --archived",
			Value: defaultStartTime.Format("2006-01-02"),
		},
		&cli.DurationFlag{
			Name:  "end",
			Usage: "Date interval to check, with --archived",
			Value: defaultDuration,
		},
	},
	Action: syncSchedule,
}

func syncSchedule(c *cli.Context) error {
	cfg, err := loadConfig(c)
	if err != nil {
		return err
	}
	loc, err := cfg.Location()
	if err != nil {
		return fmt.Errorf("invalid timezone %s: %w", cfg.Timezone, err)
	}

	var sessions schedule.Sessions
	if c.Bool("archived") {
		st := boltdb.New(boltdb.Config{Path: dbPath(c), ErrFn: errFn})
		sessions, err = st.LoadSessions(storage.Cursor(parseStartDate(c.String("start")), c.Duration("end")))
	} else {
		sessions, err = loadSchedule(c)
	}
	if err != nil {
		return err
	}
	if len(sessions) == 0 {
		info("no sessions to publish")
		return nil
	}
	if c.GlobalBool("dry-run") {
		info("%s", sessions)
		info("dry-run: %d sessions not published", len(sessions))
		return nil
	}

	// The only fatal part of a run: without an authenticated handle there
	// is nothing to publish against.
	ctx := context.Background()
	conf, err := gcal.LoadOAuthConfig(cfg.CredentialsFile)
	if err != nil {
		return err
	}
	tok, err := gcal.Authorize(ctx, conf, cfg.TokenFile, getAccessToken(authCodePrompt), info)
	if err != nil {
		return err
	}
	cal, err := gcal.NewCalendar(ctx, conf, tok, cfg.CalendarID)
	if err != nil {
		return err
	}

	s := gcal.NewSyncer(cal, loc, lw.Dev())
	s.Reminder = cfg.ReminderMinutes

	outcomes, sum := s.Publish(sessions)
	for _, out := range outcomes {
		info("%s", out)
	}
	info("%s", sum)
	return nil
}
