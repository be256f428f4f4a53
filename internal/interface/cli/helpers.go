package cli

import (
	"time"

	"github.com/dustin/go-humanize"
)

func formatTimestamp(t time.Time) string {
	return t.Format("Jan 02, 2006 15:04:05")
}

// relativeTime renders "3 hours ago" style ages for list output.
func relativeTime(t time.Time) string {
	if t.IsZero() {
		return "unknown"
	}
	return humanize.Time(t)
}

func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	if max <= 3 {
		return s[:max]
	}
	return s[:max-3] + "..."
}

func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}
