// Package sunset computes astronomical sunrise and sunset times for the
// places the scraper knows about.  The scraped page carries its own sun row;
// these computed values exist to sanity check it and to serve clients that
// only want daylight data.
package sunset

import (
	"math"
	"time"

	"github.com/mgard/lowtide/pkg/timetricks"

	"github.com/keep94/sunrise"
)

// GetSunEvents returns ordered sun events from the starting time through the
// given duration in the given place. The first result is always a sunrise.
func GetSunEvents(start time.Time, duration time.Duration, place Place) SunEvents {
	var s sunrise.Sunrise
	s.Around(place.Lat, place.Long, start)

	// The sunrise package is loose about which day it lands on; walk
	// forward until the events match the requested start day.
	for !timetricks.SameDay(start, s.Sunrise()) {
		s.AddDays(1)
	}

	numDays := int(math.Ceil(duration.Hours() / 24))
	ret := make(SunEvents, numDays*2)
	for i := 0; i < numDays*2; i += 2 {
		ret[i] = SunEvent{s.Sunrise(), Sunrise}
		ret[i+1] = SunEvent{s.Sunset(), Sunset}
		s.AddDays(1)
	}
	return ret
}

// Window returns the computed sunrise and sunset bounding daylight on the
// calendar day of t in the given place.
func Window(t time.Time, place Place) (rise, set time.Time) {
	events := GetSunEvents(timetricks.TrimClock(t), 24*time.Hour, place)
	return events[0].Time, events[1].Time
}
