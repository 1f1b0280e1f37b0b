package schedule

import (
	"fmt"
	"strings"

	emoji "github.com/kyokomi/emoji/v2"
)

// RenderEmoji returns the Unicode character for a Slack emoji name, falling
// back to the :name: form when the name is unknown. Slack prefixes some color
// variants with "large_" that the emoji tables do not carry.
func RenderEmoji(name string) string {
	base := strings.TrimPrefix(name, "large_")
	if ch, ok := emoji.CodeMap()[":"+base+":"]; ok {
		return strings.TrimRight(ch, " ")
	}
	return ":" + name + ":"
}

// Label is the human-facing form of a candidate, emoji first.
func (c Candidate) Label() string {
	return fmt.Sprintf("%s  %s", RenderEmoji(c.Emoji), c.Day)
}

// firstUnicodeEmoji locates the leftmost literal emoji character on the line
// and resolves it to a Slack-style name via the reverse code map. Ties at the
// same byte offset prefer the longest sequence so composed emoji win over
// their base character.
func firstUnicodeEmoji(line string) (int, string, bool) {
	rev := emoji.RevCodeMap()
	best := -1
	bestKey := ""
	for ch := range rev {
		i := strings.Index(line, ch)
		if i < 0 {
			continue
		}
		if best < 0 || i < best || (i == best && len(ch) > len(bestKey)) {
			best = i
			bestKey = ch
		}
	}
	if best < 0 {
		return -1, "", false
	}
	codes := rev[bestKey]
	if len(codes) == 0 {
		return -1, "", false
	}
	return best, strings.Trim(codes[0], ":"), true
}
