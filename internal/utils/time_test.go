package utils

import (
	"testing"
	"time"
)

func TestDayKey(t *testing.T) {
	ts := time.Date(2025, 3, 5, 23, 59, 59, 0, time.Local)
	if got := DayKey(ts); got != "2025-03-05" {
		t.Errorf("expected 2025-03-05, got %s", got)
	}
}

func TestDayKeyFromMillis(t *testing.T) {
	ts := time.Date(2025, 12, 31, 8, 0, 0, 0, time.Local)
	if got := DayKeyFromMillis(ts.UnixMilli()); got != "2025-12-31" {
		t.Errorf("expected 2025-12-31, got %s", got)
	}
}

func TestDaysAgo(t *testing.T) {
	now := time.Date(2025, 3, 1, 12, 0, 0, 0, time.Local)

	if got := DaysAgo(now, 0); got != "2025-03-01" {
		t.Errorf("offset 0: got %s", got)
	}
	// Month boundary.
	if got := DaysAgo(now, 1); got != "2025-02-28" {
		t.Errorf("offset 1: got %s", got)
	}
	if got := DaysAgo(now, 7); got != "2025-02-22" {
		t.Errorf("offset 7: got %s", got)
	}
}

func TestTimeOfDayFor(t *testing.T) {
	cases := []struct {
		hour int
		want TimeOfDay
	}{
		{0, Morning},
		{11, Morning},
		{12, Afternoon},
		{16, Afternoon},
		{17, Evening},
		{23, Evening},
	}

	for _, tc := range cases {
		ts := time.Date(2025, 6, 1, tc.hour, 30, 0, 0, time.Local)
		if got := TimeOfDayFor(ts); got != tc.want {
			t.Errorf("hour %d: expected %s, got %s", tc.hour, tc.want, got)
		}
	}
}
