package domain

import (
	"fmt"
	"time"
)

// TimeOfDay is an offset from midnight with microsecond precision, matching
// the resolution of a Postgres TIME column.
type TimeOfDay time.Duration

const day = TimeOfDay(24 * time.Hour)

var timeOfDayLayouts = []string{"15:04:05", "15:04"}

func ParseTimeOfDay(s string) (TimeOfDay, error) {
	for _, layout := range timeOfDayLayouts {
		t, err := time.Parse(layout, s)
		if err == nil {
			return NewTimeOfDay(t.Hour(), t.Minute(), t.Second()), nil
		}
	}
	return 0, fmt.Errorf("invalid time of day %q", s)
}

func NewTimeOfDay(hour, minute, second int) TimeOfDay {
	return TimeOfDay(time.Duration(hour)*time.Hour + time.Duration(minute)*time.Minute + time.Duration(second)*time.Second)
}

// TimeOfDayOf drops the date component of t, keeping its wall clock in t's location.
func TimeOfDayOf(t time.Time) TimeOfDay {
	return NewTimeOfDay(t.Hour(), t.Minute(), t.Second()) + TimeOfDay(time.Duration(t.Nanosecond()).Truncate(time.Microsecond))
}

func TimeOfDayFromMicros(us int64) TimeOfDay {
	return TimeOfDay(time.Duration(us) * time.Microsecond)
}

func (t TimeOfDay) Micros() int64 {
	return time.Duration(t).Microseconds()
}

func (t TimeOfDay) Valid() bool {
	return t >= 0 && t < day
}

func (t TimeOfDay) String() string {
	d := time.Duration(t)
	h := d / time.Hour
	m := (d % time.Hour) / time.Minute
	s := (d % time.Minute) / time.Second
	return fmt.Sprintf("%02d:%02d:%02d", h, m, s)
}

// Until returns the duration from now until t on the same day, or zero if t has passed.
func (t TimeOfDay) Until(now time.Time) time.Duration {
	left := time.Duration(t - TimeOfDayOf(now))
	if left < 0 {
		return 0
	}
	return left
}
