package timerange

import (
	"testing"
	"time"
)

var base = time.Date(2026, 8, 28, 12, 0, 0, 0, time.UTC)

func TestParse_Now(t *testing.T) {
	got, err := Parse("now", base)
	if err != nil {
		t.Fatalf("Parse(now) error = %v", err)
	}
	if !got.Equal(base) {
		t.Errorf("Parse(now) = %v, want %v", got, base)
	}
}

func TestParse_AbsoluteDate(t *testing.T) {
	got, err := Parse("2026-08-27", base)
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	want := time.Date(2026, 8, 27, 0, 0, 0, 0, time.UTC)
	if !got.Equal(want) {
		t.Errorf("Parse() = %v, want %v", got, want)
	}
}

func TestParse_Natural(t *testing.T) {
	got, err := Parse("yesterday", base)
	if err != nil {
		t.Fatalf("Parse(yesterday) error = %v", err)
	}
	if got.Day() != 27 {
		t.Errorf("Parse(yesterday) = %v, want day 27", got)
	}
}

func TestParse_Garbage(t *testing.T) {
	if _, err := Parse("not a time at all xyzzy", base); err == nil {
		t.Error("Parse() should fail on gibberish")
	}
	if _, err := Parse("", base); err == nil {
		t.Error("Parse() should fail on empty input")
	}
}

func TestParseRange(t *testing.T) {
	from, to, err := ParseRange("2026-08-27", "", base)
	if err != nil {
		t.Fatalf("ParseRange() error = %v", err)
	}
	if !to.Equal(base) {
		t.Errorf("empty --to should mean now, got %v", to)
	}
	if !from.Before(to) {
		t.Errorf("from %v should precede to %v", from, to)
	}
}

func TestParseRange_Inverted(t *testing.T) {
	if _, _, err := ParseRange("2026-08-28 13:00", "2026-08-28 11:00", base); err == nil {
		t.Error("ParseRange() should reject start after end")
	}
}
