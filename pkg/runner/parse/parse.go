// Package parse implements the dry-run listing: fetch a message and print the
// weekday/emoji candidates without reacting.
package parse

import (
	"context"
	"errors"

	"tableflip.dev/spond/pkg/permalink"
	"tableflip.dev/spond/pkg/printers"
	"tableflip.dev/spond/pkg/schedule"
)

// Fetcher fetches a single message's text.
type Fetcher interface {
	Message(ctx context.Context, ref permalink.Ref) (string, error)
}

type Parse struct {
	Ref     permalink.Ref
	Fetcher Fetcher
}

func (p *Parse) Do(ctx context.Context) error {
	if p.Fetcher == nil {
		return errors.New("can not parse, no slack client")
	}

	pp := printers.PrettyPrint{}

	text, err := p.Fetcher.Message(ctx, p.Ref)
	if err != nil {
		return err
	}

	candidates := schedule.Parse(text)
	if len(candidates) == 0 {
		pp.Empty(text)
		return nil
	}

	pp.NewLine()
	pp.Title("Candidates")
	pp.Candidates(candidates...)
	return nil
}
