package tideforecast

import (
	"encoding/json"
	"errors"
	"fmt"
	"time"
)

// Clock is a time of day with minute resolution, counted in minutes from
// midnight.  The tide table never carries seconds.
type Clock int

// NewClock builds a Clock from a 24-hour clock reading.
func NewClock(hour, minute int) Clock {
	return Clock(hour*60 + minute)
}

func (c Clock) Hour() int   { return int(c) / 60 }
func (c Clock) Minute() int { return int(c) % 60 }

func (c Clock) String() string {
	return time.Date(0, time.January, 1, c.Hour(), c.Minute(), 0, 0, time.UTC).
		Format("3:04 PM")
}

var _ json.Marshaler = Clock(0)

func (c Clock) MarshalJSON() ([]byte, error) {
	return json.Marshal(c.String())
}

// Reading is a single low tide event pulled out of one table cell.
type Reading struct {
	Time   Clock   `json:"time"`
	Height float64 `json:"height"`
	Units  string  `json:"units"`
}

func (r Reading) String() string {
	return fmt.Sprintf("%s %.1f %s", r.Time, r.Height, r.Units)
}

// DayColumn describes one forecast day in the table header.  Cols is the
// day's colspan; 0 means the day occupies exactly one cell, not zero.
type DayColumn struct {
	Date time.Time
	Cols int
}

// SunWindow is the daylight interval for one forecast day.  Either bound may
// be nil when the page had no parseable time for it; an incomplete window
// admits no readings.
type SunWindow struct {
	Sunrise *Clock
	Sunset  *Clock
}

// Complete reports whether both bounds are known.
func (w SunWindow) Complete() bool {
	return w.Sunrise != nil && w.Sunset != nil
}

// Contains reports whether c falls inside the window, sunrise and sunset
// themselves included.
func (w SunWindow) Contains(c Clock) bool {
	return w.Complete() && *w.Sunrise <= c && c <= *w.Sunset
}

// DayTides is the ordered readings of one forecast day.
type DayTides struct {
	Date     time.Time `json:"date"`
	Readings []Reading `json:"readings"`
}

// TideTable holds one DayTides per forecast day, in table (left to right)
// order.  Every day from the header is present even when it collected no
// readings.
type TideTable []DayTides

// ErrNoTable means neither the state-qualified nor the bare-city page had a
// tide table.  Callers check for it before parsing anything.
var ErrNoTable = errors.New("tideforecast: no tide table found")

// FetchError wraps a transport failure or non-2xx response for one URL.
type FetchError struct {
	URL string
	Err error
}

func (e *FetchError) Error() string {
	return fmt.Sprintf("tideforecast: fetch %s: %v", e.URL, e.Err)
}

func (e *FetchError) Unwrap() error { return e.Err }

// ParseError means the table violated the schema in a way that cannot be
// skipped over, like a day header without a date or a non-numeric height.
type ParseError struct {
	Element string
	Reason  string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("tideforecast: bad %s: %s", e.Element, e.Reason)
}

// AlignmentError means the sun window sequence cannot be lined up with the
// forecast days, so filtering would silently misattribute windows.
type AlignmentError struct {
	Days    int
	Windows int
}

func (e *AlignmentError) Error() string {
	return fmt.Sprintf("tideforecast: %d forecast days but %d sun windows", e.Days, e.Windows)
}
