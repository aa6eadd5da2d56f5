package cmd

import (
	"errors"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"time"

	"github.com/urfave/cli"

	"plan2cal/internal/config"
)

var now = time.Now()

var (
	defaultDuration  = time.Hour * 336 // 2 weeks
	defaultStartTime = time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
)

const (
	AppName    = "plan2cal"
	AppVersion = "(unknown)"
)

var info = func(s string, args ...interface{}) {
	fmt.Printf(s+"\n", args...)
}

var errFn = func(s string, args ...interface{}) {
	fmt.Fprintf(os.Stderr, s+"\n", args...)
}

func MkDirIfNotExists(p string) error {
	fi, err := os.Stat(p)
	if err != nil && os.IsNotExist(err) {
		err = os.MkdirAll(p, os.ModeDir|os.ModePerm|0700)
	}
	if err != nil {
		return err
	}
	fi, err = os.Stat(p)
	if err != nil {
		return err
	} else if !fi.IsDir() {
		return fmt.Errorf("path exists, and is not a folder %s", p)
	}
	return nil
}

func DataPath() string {
	homeDir, _ := os.UserHomeDir()
	xdgDataPath := filepath.Join(homeDir, ".local", "share")
	appPath := filepath.Join(xdgDataPath, AppName)

	if _, err := os.Stat(appPath); err != nil && errors.Is(err, os.ErrNotExist) {
		err := MkDirIfNotExists(appPath)
		if err != nil {
			log.Fatalf("Error: %s", err.Error())
		}
	}
	return appPath
}

func dataPath(c *cli.Context) string {
	if p := c.GlobalString("path"); p != "" {
		return p
	}
	return DataPath()
}

func dbPath(c *cli.Context) string {
	return filepath.Join(dataPath(c), "plan.bdb")
}

func loadConfig(c *cli.Context) (*config.Config, error) {
	path := c.GlobalString("config")
	if path == "" {
		path = filepath.Join(dataPath(c), "config.yml")
	}
	return config.Load(path, dataPath(c))
}

func parseStartDate(s string) time.Time {
	d := defaultStartTime
	if s != "" {
		if parsed, err := time.Parse("2006-01-02", s); err == nil {
			d = parsed
		}
	}
	return d
}
