package react

import (
	"context"
	"errors"
	"strings"
	"testing"

	"tableflip.dev/spond/pkg/permalink"
	"tableflip.dev/spond/pkg/picker"
	"tableflip.dev/spond/pkg/schedule"
	"tableflip.dev/spond/pkg/slack"
)

type fakeSlack struct {
	text     string
	fetchErr error

	reacted  []string
	reactErr map[string]error
}

func (f *fakeSlack) Message(ctx context.Context, ref permalink.Ref) (string, error) {
	if f.fetchErr != nil {
		return "", f.fetchErr
	}
	return f.text, nil
}

func (f *fakeSlack) React(ctx context.Context, ref permalink.Ref, emoji string) error {
	f.reacted = append(f.reacted, emoji)
	return f.reactErr[emoji]
}

func pickAll(candidates []schedule.Candidate) ([]schedule.Candidate, error) {
	return candidates, nil
}

func newReact(f *fakeSlack, pick func([]schedule.Candidate) ([]schedule.Candidate, error)) *React {
	return &React{
		Ref:     permalink.Ref{Channel: "C024BE91L", Timestamp: "1401383885.000061"},
		Fetcher: f,
		Reactor: f,
		Pick:    pick,
	}
}

func TestDoSubmitsSelectedReactionsInOrder(t *testing.T) {
	f := &fakeSlack{text: ":red_circle: Monday\n:blue_circle: Tuesday\n:tada: Friday"}

	r := newReact(f, pickAll)
	if err := r.Do(context.Background()); err != nil {
		t.Fatalf("Do() unexpected error: %v", err)
	}

	want := []string{"red_circle", "blue_circle", "tada"}
	if len(f.reacted) != len(want) {
		t.Fatalf("reacted %v, want %v", f.reacted, want)
	}
	for i := range want {
		if f.reacted[i] != want[i] {
			t.Errorf("reacted[%d] = %s, want %s", i, f.reacted[i], want[i])
		}
	}
}

func TestDoNoCandidatesIsGracefulNoOp(t *testing.T) {
	f := &fakeSlack{text: "no schedule in here"}

	r := newReact(f, func([]schedule.Candidate) ([]schedule.Candidate, error) {
		t.Fatal("picker must not run without candidates")
		return nil, nil
	})
	if err := r.Do(context.Background()); err != nil {
		t.Fatalf("Do() unexpected error: %v", err)
	}
	if len(f.reacted) != 0 {
		t.Errorf("no reactions expected, got %v", f.reacted)
	}
}

func TestDoCancelledSelectionIsNoOpSuccess(t *testing.T) {
	f := &fakeSlack{text: ":red_circle: Monday"}

	r := newReact(f, func([]schedule.Candidate) ([]schedule.Candidate, error) {
		return nil, picker.ErrCancelled
	})
	if err := r.Do(context.Background()); err != nil {
		t.Fatalf("cancelled selection should not error, got %v", err)
	}
	if len(f.reacted) != 0 {
		t.Errorf("no reactions expected after cancel, got %v", f.reacted)
	}
}

func TestDoEmptySelectionIsNoOpSuccess(t *testing.T) {
	f := &fakeSlack{text: ":red_circle: Monday"}

	r := newReact(f, func([]schedule.Candidate) ([]schedule.Candidate, error) {
		return nil, nil
	})
	if err := r.Do(context.Background()); err != nil {
		t.Fatalf("empty selection should not error, got %v", err)
	}
	if len(f.reacted) != 0 {
		t.Errorf("no reactions expected, got %v", f.reacted)
	}
}

func TestDoFetchErrorAborts(t *testing.T) {
	fetchErr := errors.New("fetch message: boom")
	f := &fakeSlack{fetchErr: fetchErr}

	r := newReact(f, pickAll)
	if err := r.Do(context.Background()); !errors.Is(err, fetchErr) {
		t.Errorf("Do() = %v, want fetch error", err)
	}
	if len(f.reacted) != 0 {
		t.Errorf("no reactions expected after fetch failure, got %v", f.reacted)
	}
}

func TestDoOneFailureDoesNotBlockTheRest(t *testing.T) {
	f := &fakeSlack{
		text:     ":red_circle: Monday\n:blue_circle: Tuesday\n:tada: Friday",
		reactErr: map[string]error{"blue_circle": errors.New("internal_error")},
	}

	r := newReact(f, pickAll)
	err := r.Do(context.Background())
	if err == nil {
		t.Fatal("expected an error when a submission fails")
	}
	if !strings.Contains(err.Error(), "1 of 3") {
		t.Errorf("err = %v, want failure count", err)
	}
	if len(f.reacted) != 3 {
		t.Errorf("all reactions should be attempted, got %v", f.reacted)
	}
}

func TestDoAlreadyReactedIsNotFatal(t *testing.T) {
	f := &fakeSlack{
		text:     ":red_circle: Monday\n:blue_circle: Tuesday",
		reactErr: map[string]error{"red_circle": slack.ErrAlreadyReacted},
	}

	r := newReact(f, pickAll)
	if err := r.Do(context.Background()); err != nil {
		t.Fatalf("already_reacted should not fail the run, got %v", err)
	}
	if len(f.reacted) != 2 {
		t.Errorf("both reactions should be attempted, got %v", f.reacted)
	}
}

func TestDoWithoutClient(t *testing.T) {
	r := &React{}
	if err := r.Do(context.Background()); err == nil {
		t.Error("expected an error with no slack client configured")
	}
}
