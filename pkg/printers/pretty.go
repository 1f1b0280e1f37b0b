package printers

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/gosuri/uitable"

	"tableflip.dev/spond/pkg/schedule"
)

// PrettyPrint renders candidate tables and reaction outcomes to the terminal.
type PrettyPrint struct{}

func (pp *PrettyPrint) NewLine() {
	_, _ = fmt.Fprintln(color.Output, "")
}

func (pp *PrettyPrint) Title(title string) {
	t := color.New(color.Bold, color.Underline)
	_, _ = t.Fprintln(color.Output, title)
}

// Candidates prints one row per parsed weekday/emoji pair, source line last.
func (pp *PrettyPrint) Candidates(candidates ...schedule.Candidate) {
	if len(candidates) == 0 {
		f := color.New(color.Faint, color.Italic)
		_, _ = f.Fprint(color.Output, " none\n\n")
		return
	}

	faint := color.New(color.Faint)

	tbl := uitable.New()
	tbl.Separator = "  "
	for _, c := range candidates {
		tbl.AddRow(schedule.RenderEmoji(c.Emoji), c.Day.String(), ":"+c.Emoji+":", faint.Sprint(c.Line))
	}
	_, _ = fmt.Fprintln(color.Output, tbl)
}

// Empty reports that the message yielded no candidates, echoing the raw text
// so the user can see what was (not) matched.
func (pp *PrettyPrint) Empty(text string) {
	_, _ = fmt.Fprintln(color.Error, "No weekday/emoji pairs found in message, nothing to react to.")
	f := color.New(color.Faint)
	_, _ = f.Fprintf(color.Error, "Message text:\n%s\n", text)
}

func (pp *PrettyPrint) Cancelled() {
	f := color.New(color.Faint)
	_, _ = f.Fprintln(color.Error, "Selection cancelled, no reactions submitted.")
}

func (pp *PrettyPrint) Added(c schedule.Candidate) {
	g := color.New(color.FgGreen)
	_, _ = g.Fprintf(color.Output, "✔ %s :%s: added\n", c.Day, c.Emoji)
}

func (pp *PrettyPrint) AlreadyReacted(c schedule.Candidate) {
	f := color.New(color.Faint)
	_, _ = f.Fprintf(color.Output, "• %s :%s: already reacted\n", c.Day, c.Emoji)
}

func (pp *PrettyPrint) Failed(c schedule.Candidate, err error) {
	r := color.New(color.FgRed)
	_, _ = r.Fprintf(color.Error, "✘ %s :%s: failed: %v\n", c.Day, c.Emoji, err)
}

// Summary prints the closing count line after all submissions were attempted.
func (pp *PrettyPrint) Summary(succeeded, failed int) {
	if failed == 0 {
		_, _ = fmt.Fprintf(color.Output, "\nSubmitted %d reaction(s).\n", succeeded)
		return
	}
	_, _ = fmt.Fprintf(color.Output, "\nSubmitted %d reaction(s), %d failed.\n", succeeded, failed)
}
