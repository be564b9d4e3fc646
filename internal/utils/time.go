package utils

import (
	"time"

	"github.com/lunarhare/mindease/internal/constants"
)

// DayKey normalizes a time to its calendar day string (YYYY-MM-DD) in local
// time. Both streak walks and habit completion dates go through this one
// helper so day equality is always computed the same way.
func DayKey(t time.Time) string {
	return t.Local().Format(constants.DateFormat)
}

// DayKeyFromMillis returns the calendar day string for an epoch-milliseconds
// timestamp.
func DayKeyFromMillis(ms int64) string {
	return DayKey(time.UnixMilli(ms))
}

// DaysAgo returns the calendar day string for n days before t.
func DaysAgo(t time.Time, n int) string {
	return DayKey(t.AddDate(0, 0, -n))
}

// TimeOfDay is a coarse bucket used by the suggestion catalog.
type TimeOfDay string

const (
	Morning   TimeOfDay = "morning"
	Afternoon TimeOfDay = "afternoon"
	Evening   TimeOfDay = "evening"
)

// TimeOfDayFor buckets a clock time: before noon is morning, before 5pm is
// afternoon, the rest is evening.
func TimeOfDayFor(t time.Time) TimeOfDay {
	switch h := t.Local().Hour(); {
	case h < 12:
		return Morning
	case h < 17:
		return Afternoon
	default:
		return Evening
	}
}

// DisplayDate renders a timestamp the way check-in entries record their
// display date.
func DisplayDate(t time.Time) string {
	return t.Local().Format("1/2/2006")
}
