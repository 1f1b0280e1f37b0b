package picker

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/v2/help"
	tea "github.com/charmbracelet/bubbletea/v2"
	"github.com/charmbracelet/lipgloss/v2"

	"tableflip.dev/spond/pkg/schedule"
)

var (
	titleStyle    = lipgloss.NewStyle().Bold(true)
	cursorStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("212"))
	selectedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("78"))
)

// Model is the multi-select state over the candidate list: a cursor, a
// selected index set, and the terminal confirmed/cancelled flags.
type Model struct {
	items    []schedule.Candidate
	selected map[int]bool
	cursor   int

	confirmed bool
	cancelled bool

	keys keyMap
	help help.Model
}

// New creates a picker model over the candidates, nothing selected.
func New(candidates []schedule.Candidate) Model {
	return Model{
		items:    candidates,
		selected: make(map[int]bool),
		keys:     defaultKeyMap(),
		help:     help.New(),
	}
}

func (m Model) Init() tea.Cmd {
	return nil
}

// Update handles messages and keybindings
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyPressMsg:
		return m.handleKey(msg.String())
	}
	return m, nil
}

// handleKey applies one key event to the selection state. Unknown keys are
// no-ops so stray input never disturbs the selection.
func (m Model) handleKey(k string) (tea.Model, tea.Cmd) {
	switch k {
	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		}
	case "down", "j":
		if m.cursor < len(m.items)-1 {
			m.cursor++
		}
	case " ", "space":
		m.selected[m.cursor] = !m.selected[m.cursor]
	case "a":
		for i := range m.items {
			m.selected[i] = true
		}
	case "i":
		for i := range m.items {
			m.selected[i] = !m.selected[i]
		}
	case "enter":
		m.confirmed = true
		return m, tea.Quit
	case "q", "esc", "ctrl+c":
		m.cancelled = true
		return m, tea.Quit
	}
	return m, nil
}

// Selected returns the chosen candidates in original candidate order.
func (m Model) Selected() []schedule.Candidate {
	out := make([]schedule.Candidate, 0, len(m.selected))
	for i, c := range m.items {
		if m.selected[i] {
			out = append(out, c)
		}
	}
	return out
}

// View renders the full list: cursor marker, selection mark, candidate label.
func (m Model) View() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("Select days:"))
	b.WriteString("\n\n")
	for i, c := range m.items {
		indicator := "  "
		if i == m.cursor {
			indicator = cursorStyle.Render("→ ")
		}
		mark := "[ ]"
		if m.selected[i] {
			mark = selectedStyle.Render("[x]")
		}
		b.WriteString(fmt.Sprintf("%s%s %s\n", indicator, mark, c.Label()))
	}
	b.WriteString("\n")
	b.WriteString(m.help.View(m.keys))
	return b.String()
}
