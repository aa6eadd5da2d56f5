package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/urfave/cli"

	"plan2cal/gcal"
)

const authCodePrompt = "Paste authorization code: "

var AuthorizeCmd = cli.Command{
	Name:    "auth",
	Aliases: []string{"authorize"},
	Usage:   "Authorizes the application against Google Calendar",
	Flags: []cli.Flag{
		&cli.BoolFlag{
			Name:  "force",
			Usage: "Discard the cached token and run the consent flow again",
		},
	},
	Action: Authorize,
}

func Authorize(c *cli.Context) error {
	cfg, err := loadConfig(c)
	if err != nil {
		return err
	}
	conf, err := gcal.LoadOAuthConfig(cfg.CredentialsFile)
	if err != nil {
		return err
	}

	if c.Bool("force") {
		if err := os.Remove(cfg.TokenFile); err != nil && !os.IsNotExist(err) {
			return err
		}
	}
	if c.GlobalBool("dry-run") {
		info("dry-run: not running the consent flow")
		return nil
	}

	tok, err := gcal.Authorize(context.Background(), conf, cfg.TokenFile, getAccessToken(authCodePrompt), info)
	if err != nil {
		return err
	}
	info("Success, token cached in %s (expires %s)", cfg.TokenFile, tok.Expiry.Format("2006-01-02 15:04"))
	return nil
}

type model struct {
	prompt    string
	textInput *textinput.Model
	err       error
}

func initialModel(prompt string) model {
	ti := textinput.New()
	ti.Placeholder = "..."
	ti.Focus()
	ti.CharLimit = 156
	ti.Width = 45

	return model{
		prompt:    prompt,
		textInput: &ti,
		err:       nil,
	}
}

func (m model) Init() tea.Cmd {
	return textinput.Blink
}

type errMsg error

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.Type {
		case tea.KeyEnter, tea.KeyCtrlC, tea.KeyEsc:
			return m, tea.Quit
		}

	case errMsg:
		m.err = msg
		return m, nil
	}

	*m.textInput, cmd = m.textInput.Update(msg)
	return m, cmd
}

func (m model) View() string {
	return fmt.Sprintf(
		"%s\n\n%s",
		m.prompt,
		m.textInput.View(),
	) + "\n"
}

func getAccessToken(prompt string) func() (string, error) {
	return func() (string, error) {
		m := initialModel(prompt)
		err := tea.NewProgram(m).Start()
		return m.textInput.Value(), err
	}
}
