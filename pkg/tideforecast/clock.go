package tideforecast

import (
	"strings"
	"time"
)

const (
	// clockFormat matches the site's times, e.g. "05:45AM".
	clockFormat = "03:04PM"
	// dayHeaderFormat matches the site's dates, e.g. "Mon 04 November".
	// There is no year; see parseDay.
	dayHeaderFormat = "Mon 02 January"
)

// normalizeHour repairs the site's hour quirk before generic parsing: the
// whole string is left-padded with a zero, the hour is its last two digits,
// and an hour of "00" means "12" on the site's 12-hour clock.
func normalizeHour(s string) string {
	s = "0" + strings.TrimSpace(s)
	i := strings.IndexByte(s, ':')
	if i < 2 {
		return s
	}
	hr := s[i-2 : i]
	if hr == "00" {
		hr = "12"
	}
	return hr + s[i:]
}

// ParseClock reads a 12-hour time like "05:45AM" or "5:45PM".  Unparseable
// input is a soft miss: ok is false and the caller treats it as no reading.
func ParseClock(s string) (Clock, bool) {
	t, err := time.Parse(clockFormat, normalizeHour(s))
	if err != nil {
		return 0, false
	}
	return NewClock(t.Hour(), t.Minute()), true
}

// ParseDay reads a header date like "Mon 04 November".  The site omits the
// year, so it is inferred from the current date.  Unparseable input is a
// soft miss.
func ParseDay(s string) (time.Time, bool) {
	return parseDay(s, time.Now())
}

// parseDay performs ParseDay's work with the wall clock factored out.  The
// inferred year is today's, except that a January date seen in December
// belongs to next year (the forecast spans the new year).
func parseDay(s string, today time.Time) (time.Time, bool) {
	t, err := time.Parse(dayHeaderFormat, strings.TrimSpace(s))
	if err != nil {
		return time.Time{}, false
	}
	year := today.Year()
	if today.Month() == time.December && t.Month() == time.January {
		year++
	}
	return time.Date(year, t.Month(), t.Day(), 0, 0, 0, 0, time.Local), true
}
