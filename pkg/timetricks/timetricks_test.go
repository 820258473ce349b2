package timetricks

import (
	"testing"
	"time"
)

func TestSameDay(t *testing.T) {
	a := time.Date(2024, time.November, 4, 1, 0, 0, 0, time.Local)
	b := time.Date(2024, time.November, 4, 23, 59, 0, 0, time.Local)
	c := time.Date(2024, time.November, 5, 0, 0, 0, 0, time.Local)

	if !SameDay(a, b) {
		t.Errorf("SameDay(%s, %s) = false, want true", a, b)
	}
	if SameDay(a, c) {
		t.Errorf("SameDay(%s, %s) = true, want false", a, c)
	}
}

func TestTrimClock(t *testing.T) {
	in := time.Date(2024, time.November, 4, 13, 45, 59, 0, time.Local)
	got := TrimClock(in)
	want := time.Date(2024, time.November, 4, 0, 0, 0, 0, time.Local)
	if !got.Equal(want) {
		t.Errorf("TrimClock(%s) = %s, want %s", in, got, want)
	}
}

func TestSetClock(t *testing.T) {
	in := time.Date(2024, time.November, 4, 13, 45, 59, 0, time.Local)
	got := SetClock(in, 6, 30)
	want := time.Date(2024, time.November, 4, 6, 30, 0, 0, time.Local)
	if !got.Equal(want) {
		t.Errorf("SetClock(%s, 6, 30) = %s, want %s", in, got, want)
	}
}

func TestDay(t *testing.T) {
	if got := Day(time.Now()); got != "Today" {
		t.Errorf("Day(now) = %q, want Today", got)
	}
	if got := Day(time.Now().Add(24 * time.Hour)); got != "Tomorrow" {
		t.Errorf("Day(now+24h) = %q, want Tomorrow", got)
	}
	far := time.Now().Add(10 * 24 * time.Hour)
	if got, want := Day(far), far.Format("01/02"); got != want {
		t.Errorf("Day(%s) = %q, want %q", far, got, want)
	}
}
