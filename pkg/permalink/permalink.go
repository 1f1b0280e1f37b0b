// Package permalink resolves Slack message permalinks into API coordinates.
package permalink

import (
	"fmt"
	"regexp"
)

// Ref identifies a single message for the Slack web API.
type Ref struct {
	Channel   string
	Timestamp string
}

// Links look like:
// https://workspace.slack.com/archives/C1234567890/p1234567890123456
var linkPattern = regexp.MustCompile(`/archives/([A-Z0-9]+)/p(\d+)`)

// Parse extracts the channel id and message timestamp from a permalink.
// The p-suffixed digit run encodes "<seconds><6 microsecond digits>" and is
// rewritten to the "<seconds>.<micros>" form the API expects.
func Parse(link string) (Ref, error) {
	m := linkPattern.FindStringSubmatch(link)
	if m == nil {
		return Ref{}, fmt.Errorf("cannot parse Slack permalink: %s", link)
	}
	digits := m[2]
	if len(digits) <= 6 {
		return Ref{}, fmt.Errorf("cannot parse Slack permalink: %s", link)
	}
	return Ref{
		Channel:   m[1],
		Timestamp: digits[:len(digits)-6] + "." + digits[len(digits)-6:],
	}, nil
}
