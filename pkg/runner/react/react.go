// Package react orchestrates the main flow: fetch the message, parse the
// weekday/emoji candidates, run the interactive selection, then submit one
// reaction per chosen candidate.
package react

import (
	"context"
	"errors"
	"fmt"

	"tableflip.dev/spond/pkg/permalink"
	"tableflip.dev/spond/pkg/picker"
	"tableflip.dev/spond/pkg/printers"
	"tableflip.dev/spond/pkg/schedule"
	"tableflip.dev/spond/pkg/slack"
)

// Fetcher fetches a single message's text.
type Fetcher interface {
	Message(ctx context.Context, ref permalink.Ref) (string, error)
}

// Reactor adds a single emoji reaction to a message.
type Reactor interface {
	React(ctx context.Context, ref permalink.Ref, emoji string) error
}

type React struct {
	Ref     permalink.Ref
	Fetcher Fetcher
	Reactor Reactor

	// Pick overrides the interactive selection. Defaults to picker.Run.
	Pick func([]schedule.Candidate) ([]schedule.Candidate, error)
}

// Do runs the flow end to end. User cancellation and an empty parse are both
// graceful no-ops; a non-nil error comes back only for fetch failures or when
// at least one submission failed after all were attempted.
func (r *React) Do(ctx context.Context) error {
	if r.Fetcher == nil || r.Reactor == nil {
		return errors.New("can not react, no slack client")
	}

	pp := printers.PrettyPrint{}

	text, err := r.Fetcher.Message(ctx, r.Ref)
	if err != nil {
		return err
	}

	candidates := schedule.Parse(text)
	if len(candidates) == 0 {
		pp.Empty(text)
		return nil
	}

	pick := r.Pick
	if pick == nil {
		pick = picker.Run
	}
	chosen, err := pick(candidates)
	if errors.Is(err, picker.ErrCancelled) {
		pp.Cancelled()
		return nil
	}
	if err != nil {
		return err
	}
	if len(chosen) == 0 {
		pp.Cancelled()
		return nil
	}

	// One attempt per candidate; a failure never blocks the rest.
	failed := 0
	for _, c := range chosen {
		err := r.Reactor.React(ctx, r.Ref, c.Emoji)
		switch {
		case errors.Is(err, slack.ErrAlreadyReacted):
			pp.AlreadyReacted(c)
		case err != nil:
			failed++
			pp.Failed(c, err)
		default:
			pp.Added(c)
		}
	}
	pp.Summary(len(chosen)-failed, failed)

	if failed > 0 {
		return fmt.Errorf("%d of %d reactions failed", failed, len(chosen))
	}
	return nil
}
