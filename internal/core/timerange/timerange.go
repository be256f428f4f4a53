// Package timerange parses user-supplied time expressions into the absolute
// range a session covers.
package timerange

import (
	"fmt"
	"strings"
	"time"

	"github.com/olebedev/when"
	"github.com/olebedev/when/rules/common"
	"github.com/olebedev/when/rules/en"
)

// Parse resolves a time expression relative to base. It accepts natural
// language ("yesterday", "2 hours ago", "last friday") as well as absolute
// forms (RFC 3339, "2006-01-02", "2006-01-02 15:04").
func Parse(expr string, base time.Time) (time.Time, error) {
	expr = strings.TrimSpace(expr)
	if expr == "" {
		return time.Time{}, fmt.Errorf("empty time expression")
	}
	if strings.EqualFold(expr, "now") {
		return base, nil
	}

	// Absolute formats first; "when" is happy to misread bare dates.
	formats := []string{
		time.RFC3339,
		"2006-01-02 15:04:05",
		"2006-01-02 15:04",
		"2006-01-02",
	}
	for _, format := range formats {
		if t, err := time.Parse(format, expr); err == nil {
			return t, nil
		}
	}

	w := when.New(nil)
	w.Add(en.All...)
	w.Add(common.All...)

	result, err := w.Parse(expr, base)
	if err != nil {
		return time.Time{}, fmt.Errorf("parse %q: %w", expr, err)
	}
	if result == nil {
		return time.Time{}, fmt.Errorf("unrecognized time expression %q", expr)
	}
	return result.Time, nil
}

// ParseRange resolves a (from, to) pair and checks ordering. An empty "to"
// means now.
func ParseRange(fromExpr, toExpr string, base time.Time) (time.Time, time.Time, error) {
	from, err := Parse(fromExpr, base)
	if err != nil {
		return time.Time{}, time.Time{}, fmt.Errorf("invalid --from: %w", err)
	}

	to := base
	if toExpr != "" {
		to, err = Parse(toExpr, base)
		if err != nil {
			return time.Time{}, time.Time{}, fmt.Errorf("invalid --to: %w", err)
		}
	}

	if !from.Before(to) {
		return time.Time{}, time.Time{}, fmt.Errorf("range start %s is not before end %s", from.Format(time.RFC3339), to.Format(time.RFC3339))
	}
	return from, to, nil
}
