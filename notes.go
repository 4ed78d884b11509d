package relcand

import (
	"strings"
	"time"
)

// ShortHashLen is the number of hash characters printed per commit.
const ShortHashLen = 8

// NoteDateLayout is the date layout printed per commit.
const NoteDateLayout = "2006-01-02"

// Commit is a read-only commit record supplied by the version-control layer.
type Commit struct {
	Hash    string
	Author  string
	When    time.Time
	Message string
}

// FormatCommit renders c as a single release-note line:
//
//	<hash[:8]> <YYYY-MM-DD> <author> <summary>
//
// A commit without a message still yields a line, with an empty summary.
// The date is printed in the commit's own time zone.
func FormatCommit(c Commit) string {
	var b strings.Builder
	b.Grow(ShortHashLen + len(NoteDateLayout) + len(c.Author) + 64)

	b.WriteString(shortHash(c.Hash))
	b.WriteByte(' ')
	b.WriteString(c.When.Format(NoteDateLayout))
	b.WriteByte(' ')
	b.WriteString(c.Author)
	b.WriteByte(' ')
	b.WriteString(Summary(c.Message))

	return b.String()
}

// Summary returns the first non-blank line of message, trimmed.
func Summary(message string) string {
	for line := range strings.Lines(message) {
		if s := strings.TrimSpace(line); s != "" {
			return s
		}
	}

	return ""
}

func shortHash(h string) string {
	if len(h) > ShortHashLen {
		return h[:ShortHashLen]
	}

	return h
}
