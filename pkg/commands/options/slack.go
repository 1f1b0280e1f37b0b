// Package options defines shared flag helpers for CLI commands.
package options

import (
	"github.com/spf13/cobra"
)

// SlackOptions captures credential flags shared by all commands.
type SlackOptions struct {
	Token string
}

// AddSlackArgs wires the Slack credential flags on the provided command.
func AddSlackArgs(cmd *cobra.Command, o *SlackOptions) {
	cmd.PersistentFlags().StringVar(&o.Token, "token", "",
		"Slack user token. Overrides SLACK_USER_TOKEN.")
}
