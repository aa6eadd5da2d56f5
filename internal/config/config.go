package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"

	"plan2cal/schedule"
)

// Config is the application configuration, read from a yaml file under the
// data directory. Every field has a default so a missing file is fine.
type Config struct {
	// ScheduleURL is the published class-schedule page.
	ScheduleURL string `yaml:"schedule_url"`

	// Timezone is the IANA zone the institution publishes wall-clock
	// times in (e.g. "Europe/Warsaw").
	Timezone string `yaml:"timezone"`

	// CalendarID is the Google calendar to publish into.
	CalendarID string `yaml:"calendar_id"`

	// HeaderTokens mark column-header rows in the schedule tables.
	HeaderTokens []string `yaml:"header_tokens"`

	// NoClassesMarker marks dated rows announcing there are no classes.
	NoClassesMarker string `yaml:"no_classes_marker"`

	// ReminderMinutes is the popup reminder lead time on created events.
	ReminderMinutes int64 `yaml:"reminder_minutes"`

	// CredentialsFile is the Google client-secrets JSON path.
	CredentialsFile string `yaml:"credentials_file"`

	// TokenFile is where the OAuth2 token is cached.
	TokenFile string `yaml:"token_file"`
}

func Default(dataPath string) *Config {
	return &Config{
		Timezone:        "Europe/Warsaw",
		CalendarID:      "primary",
		HeaderTokens:    []string{"DATA", "GRUPA"},
		NoClassesMarker: "Brak zajęć",
		ReminderMinutes: 15,
		CredentialsFile: filepath.Join(dataPath, "credentials.json"),
		TokenFile:       filepath.Join(dataPath, "token.json"),
	}
}

// Load reads the config file at path, falling back to defaults when the
// file does not exist.
func Load(path, dataPath string) (*Config, error) {
	c := Default(dataPath)
	raw, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return c, nil
		}
		return nil, fmt.Errorf("unable to read config %s: %w", path, err)
	}
	if err = yaml.Unmarshal(raw, c); err != nil {
		return nil, fmt.Errorf("unable to parse config %s: %w", path, err)
	}
	return c, nil
}

func (c *Config) Save(path string) error {
	raw, err := yaml.Marshal(c)
	if err != nil {
		return err
	}
	return os.WriteFile(path, raw, 0600)
}

func (c *Config) Location() (*time.Location, error) {
	return time.LoadLocation(c.Timezone)
}

func (c *Config) Markers() schedule.Markers {
	m := schedule.DefaultMarkers()
	if len(c.HeaderTokens) > 0 {
		m.HeaderTokens = c.HeaderTokens
	}
	if c.NoClassesMarker != "" {
		m.NoClasses = c.NoClassesMarker
	}
	return m
}
