package main

import (
	"fmt"
	"os"

	"github.com/urfave/cli"

	"plan2cal/internal/cmd"
)

func main() {
	var err error

	ctl := cli.App{
		Name:    fmt.Sprintf("%sctl", cmd.AppName),
		Version: cmd.AppVersion,
		Usage:   "Publishes a university class schedule to Google Calendar",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "path",
				Usage: "The path for storage",
				Value: cmd.DataPath(),
			},
			&cli.StringFlag{
				Name:  "config",
				Usage: "The configuration file to use",
			},
			&cli.BoolFlag{
				Name:  "dry-run",
				Usage: "Don't persist or publish anything",
			},
			&cli.BoolFlag{
				Name:  "debug",
				Usage: "Output debug messages",
			},
		},
		Commands: []cli.Command{
			cmd.FetchCmd,
			cmd.ListCmd,
			cmd.SyncCmd,
			cmd.AuthorizeCmd,
			cmd.ServerCmd,
		},
	}

	err = ctl.Run(os.Args)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %s\n", err)
		os.Exit(1)
	}
}
