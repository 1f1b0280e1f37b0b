// Package schedule extracts weekday/emoji pairs from Slack message text.
//
// Messages like
//
//	:red_circle: Monday
//	:large_green_circle: Tuesday
//
// are turned into an ordered candidate list, one per qualifying line.
package schedule

import (
	"regexp"
	"strings"
	"time"
)

// Candidate is a weekday/emoji pair parsed from one line of message text.
type Candidate struct {
	Day   time.Weekday
	Emoji string // Slack-style emoji name, no colons
	Line  string // source line, verbatim
}

// Longer spellings come first within each day so the leftmost match captures
// the full word, not its abbreviation prefix.
var dayPattern = regexp.MustCompile(
	`(?i)\b(monday|mon|tuesday|tues|tue|wednesday|weds|wed|thursday|thurs|thur|thu|friday|fri|saturday|sat|sunday|sun)\b`)

// Emoji names must contain at least one letter or underscore so timestamps
// like 10:30:45 do not read as :30:.
var emojiPattern = regexp.MustCompile(`:([a-z0-9_+-]*[a-z_][a-z0-9_+-]*):`)

var days = map[string]time.Weekday{
	"mon": time.Monday,
	"tue": time.Tuesday,
	"wed": time.Wednesday,
	"thu": time.Thursday,
	"fri": time.Friday,
	"sat": time.Saturday,
	"sun": time.Sunday,
}

// Parse scans text line by line and returns every line that carries both a
// weekday token and an emoji token, in source order. Lines with only one of
// the two are skipped. When a line holds several weekday or emoji tokens the
// leftmost of each wins; duplicates across lines are preserved.
func Parse(text string) []Candidate {
	var out []Candidate
	for _, line := range strings.Split(text, "\n") {
		if c, ok := parseLine(line); ok {
			out = append(out, c)
		}
	}
	return out
}

func parseLine(line string) (Candidate, bool) {
	loc := dayPattern.FindStringSubmatchIndex(line)
	if loc == nil {
		return Candidate{}, false
	}
	day, ok := dayFromToken(line[loc[2]:loc[3]])
	if !ok {
		return Candidate{}, false
	}
	name, ok := firstEmoji(line)
	if !ok {
		return Candidate{}, false
	}
	return Candidate{Day: day, Emoji: name, Line: line}, true
}

func dayFromToken(tok string) (time.Weekday, bool) {
	tok = strings.ToLower(tok)
	if len(tok) < 3 {
		return 0, false
	}
	d, ok := days[tok[:3]]
	return d, ok
}

// firstEmoji finds the leftmost emoji token on the line, either a :name:
// identifier or a literal Unicode emoji character.
func firstEmoji(line string) (string, bool) {
	idx := -1
	name := ""
	if loc := emojiPattern.FindStringSubmatchIndex(line); loc != nil {
		idx = loc[0]
		name = line[loc[2]:loc[3]]
	}
	if i, n, ok := firstUnicodeEmoji(line); ok && (idx < 0 || i < idx) {
		idx = i
		name = n
	}
	return name, idx >= 0
}
