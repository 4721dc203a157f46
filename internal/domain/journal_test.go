package domain

import (
	"testing"
	"time"
)

func TestDayKey_UsesLocation(t *testing.T) {
	t.Parallel()

	ts := time.Date(2026, 3, 1, 23, 30, 0, 0, time.UTC)
	tokyo := time.FixedZone("JST", 9*60*60)

	if got := DayKey(ts, time.UTC); got != "2026-03-01" {
		t.Errorf("DayKey(UTC) = %q, want 2026-03-01", got)
	}
	if got := DayKey(ts, tokyo); got != "2026-03-02" {
		t.Errorf("DayKey(JST) = %q, want 2026-03-02", got)
	}
}

func TestValidDay(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in   string
		want bool
	}{
		{"2026-10-18", true},
		{"2026-02-30", false},
		{"18-10-2026", false},
		{"", false},
	}
	for _, tt := range tests {
		if got := ValidDay(tt.in); got != tt.want {
			t.Errorf("ValidDay(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}
