package commands

import (
	"context"

	"github.com/spf13/cobra"

	base "github.com/n3wscott/cli-base/pkg/commands/options"

	"tableflip.dev/spond/pkg/commands/options"
)

var (
	so = &options.SlackOptions{}
)

func New() *cobra.Command {

	cmd := &cobra.Command{
		Use:   "spond <permalink>",
		Short: base.Wrap80("Add weekday emoji reactions to a Slack scheduling message."),
		Example: `
spond https://myteam.slack.com/archives/C024BE91L/p1401383885000061
`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				return cmd.Help()
			}
			return runReact(context.Background(), args[0])
		},
	}

	options.AddSlackArgs(cmd, so)

	AddCommands(cmd)
	return cmd
}

func AddCommands(topLevel *cobra.Command) {
	addParse(topLevel)
	addVersion(topLevel)
}
