// Package picker implements the interactive weekday multi-select UI.
package picker

import (
	"errors"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea/v2"
	isatty "github.com/mattn/go-isatty"

	"tableflip.dev/spond/pkg/schedule"
)

// ErrCancelled reports that the user aborted the selection.
var ErrCancelled = errors.New("selection cancelled")

// Run presents the candidates and blocks until the user confirms or cancels,
// returning the confirmed subset in candidate order. An empty candidate list
// returns immediately without rendering anything; cancelling is ErrCancelled.
func Run(candidates []schedule.Candidate) ([]schedule.Candidate, error) {
	if len(candidates) == 0 {
		return nil, nil
	}
	if !isatty.IsTerminal(os.Stdin.Fd()) && !isatty.IsCygwinTerminal(os.Stdin.Fd()) {
		return nil, errors.New("interactive selection requires a terminal")
	}

	p := tea.NewProgram(New(candidates), tea.WithAltScreen())
	out, err := p.Run()
	if err != nil {
		return nil, err
	}
	m, ok := out.(Model)
	if !ok {
		return nil, fmt.Errorf("unexpected model type %T", out)
	}
	if m.cancelled || !m.confirmed {
		return nil, ErrCancelled
	}
	return m.Selected(), nil
}
