package gcal

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
	"google.golang.org/api/calendar/v3"
)

// CodePromptFn asks the user for the authorization code shown after they
// visit the consent URL.
type CodePromptFn func() (string, error)

type logFn func(string, ...interface{})

// LoadOAuthConfig reads a Google client-secrets JSON file, the one the
// API console hands out for installed applications.
func LoadOAuthConfig(credentialsPath string) (*oauth2.Config, error) {
	raw, err := os.ReadFile(credentialsPath)
	if err != nil {
		return nil, fmt.Errorf("unable to read client credentials %s: %w", credentialsPath, err)
	}
	conf, err := google.ConfigFromJSON(raw, calendar.CalendarScope)
	if err != nil {
		return nil, fmt.Errorf("unable to parse client credentials: %w", err)
	}
	return conf, nil
}

func LoadToken(path string) (*oauth2.Token, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	tok := new(oauth2.Token)
	if err := json.NewDecoder(f).Decode(tok); err != nil {
		return nil, fmt.Errorf("unable to decode token %s: %w", path, err)
	}
	return tok, nil
}

func SaveToken(path string, tok *oauth2.Token) error {
	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0600)
	if err != nil {
		return fmt.Errorf("unable to open file %w", err)
	}
	defer f.Close()

	return json.NewEncoder(f).Encode(tok)
}

// Authorize returns a usable token, in order of preference: the cached one
// if still valid, a refresh of the cached one, or a fresh token from the
// interactive consent flow. Whatever it ends up with gets written back to
// tokenPath.
func Authorize(ctx context.Context, conf *oauth2.Config, tokenPath string, getCode CodePromptFn, infFn logFn) (*oauth2.Token, error) {
	if infFn == nil {
		infFn = func(string, ...interface{}) {}
	}
	if tok, err := LoadToken(tokenPath); err == nil {
		if tok.Valid() {
			return tok, nil
		}
		if tok.RefreshToken != "" {
			if fresh, err := conf.TokenSource(ctx, tok).Token(); err == nil {
				if err := SaveToken(tokenPath, fresh); err != nil {
					return nil, err
				}
				infFn("Refreshed OAuth2 token")
				return fresh, nil
			}
			infFn("Token refresh failed, starting a new authorization")
		}
	}
	if getCode == nil {
		return nil, fmt.Errorf("no cached token and no way to ask for an authorization code")
	}

	infFn("Open the following URL in your browser:\n\n%s", conf.AuthCodeURL("state-token", oauth2.AccessTypeOffline))
	code, err := getCode()
	if err != nil {
		return nil, fmt.Errorf("unable to read authorization code: %w", err)
	}
	tok, err := conf.Exchange(ctx, code)
	if err != nil {
		return nil, fmt.Errorf("unable to exchange authorization code: %w", err)
	}
	return tok, SaveToken(tokenPath, tok)
}
