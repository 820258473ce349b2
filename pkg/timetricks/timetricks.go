// Package timetricks holds small calendar helpers shared by the scraper's
// presentation layers.
package timetricks

import (
	"time"
)

const dayFormat = "20060102"

func SameDay(t time.Time, t2 time.Time) bool {
	return t.Format(dayFormat) == t2.Format(dayFormat)
}

func Today(t time.Time) bool {
	return SameDay(t, time.Now())
}

func Tomorrow(t time.Time) bool {
	return Today(t.Add(-24 * time.Hour))
}

// TrimClock drops the wall clock component of t, leaving midnight of the
// same calendar day.
func TrimClock(t time.Time) time.Time {
	h, m, s := t.Clock()
	return t.Add(-1 *
		(time.Duration(h)*time.Hour +
			time.Duration(m)*time.Minute +
			time.Duration(s)*time.Second))
}

func SetClock(t time.Time, hour, minute time.Duration) time.Time {
	return TrimClock(t).Add(hour*time.Hour + minute*time.Minute)
}

// UniqueDay returns a string representation of t that is unique by the day.
// Two separate times on the same calendar day return identical strings.
func UniqueDay(t time.Time) string {
	return t.Format(dayFormat)
}

// Day renders t's calendar day for humans: Today, Tomorrow, or the date.
func Day(t time.Time) string {
	switch {
	case Today(t):
		return "Today"
	case Tomorrow(t):
		return "Tomorrow"
	default:
		return t.Format("01/02")
	}
}
