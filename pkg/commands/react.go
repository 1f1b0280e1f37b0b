package commands

import (
	"context"
	"errors"
	"fmt"

	"github.com/fatih/color"

	"tableflip.dev/spond/pkg/permalink"
	"tableflip.dev/spond/pkg/runner/react"
	"tableflip.dev/spond/pkg/slack"
)

func runReact(ctx context.Context, link string) error {
	ref, err := permalink.Parse(link)
	if err != nil {
		return err
	}

	client, err := newClient()
	if err != nil {
		return err
	}

	r := react.React{
		Ref:     ref,
		Fetcher: client,
		Reactor: client,
	}
	return r.Do(ctx)
}

// newClient resolves the token (flag wins over env/config) and builds the
// Slack client. A missing token fails here, before any network call.
func newClient() (*slack.Client, error) {
	token := so.Token
	if token == "" {
		cfg, err := slack.LoadConfig()
		if errors.Is(err, slack.ErrNoToken) {
			printTokenHelp()
			return nil, err
		}
		if err != nil {
			return nil, err
		}
		token = cfg.Token
	}
	return slack.New(token), nil
}

func printTokenHelp() {
	f := color.New(color.Faint)
	_, _ = fmt.Fprintln(color.Error, "SLACK_USER_TOKEN environment variable not set.")
	_, _ = f.Fprintln(color.Error, "")
	_, _ = f.Fprintln(color.Error, "To get a user token:")
	_, _ = f.Fprintln(color.Error, "1. Create a Slack app at https://api.slack.com/apps")
	_, _ = f.Fprintln(color.Error, "2. Add 'reactions:write' and 'channels:history' to User Token Scopes")
	_, _ = f.Fprintln(color.Error, "3. Install the app to your workspace")
	_, _ = f.Fprintln(color.Error, "4. Copy the User OAuth Token (starts with xoxp-)")
}
