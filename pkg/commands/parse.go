package commands

import (
	"context"

	"github.com/spf13/cobra"

	"tableflip.dev/spond/pkg/permalink"
	"tableflip.dev/spond/pkg/runner/parse"
)

func addParse(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "parse <permalink>",
		Short: "Fetch a message and print its weekday/emoji candidates without reacting",
		Example: `
spond parse https://myteam.slack.com/archives/C024BE91L/p1401383885000061
`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ref, err := permalink.Parse(args[0])
			if err != nil {
				return err
			}
			client, err := newClient()
			if err != nil {
				return err
			}
			p := parse.Parse{Ref: ref, Fetcher: client}
			return p.Do(context.Background())
		},
	}

	topLevel.AddCommand(cmd)
}
