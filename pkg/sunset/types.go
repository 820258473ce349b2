package sunset

import (
	"fmt"
	"strings"
	"time"
)

// Place is a lat/long coordinate on the Earth matched with its time zone.
type Place struct {
	Lat, Long float64
	Location  *time.Location
}

var (
	SantaCruz = Place{
		36.9741, -122.0308,
		locationOrPanic("America/Los_Angeles"),
	}
	HalfMoonBay = Place{
		37.4636, -122.4286,
		locationOrPanic("America/Los_Angeles"),
	}
	HuntingtonBeach = Place{
		33.6595, -117.9988,
		locationOrPanic("America/Los_Angeles"),
	}
	Providence = Place{
		41.8240, -71.4128,
		locationOrPanic("America/New_York"),
	}
	WrightsvilleBeach = Place{
		34.2085, -77.7964,
		locationOrPanic("America/New_York"),
	}
)

// places indexes the known places by the city part of a location name.
var places = map[string]Place{
	"santa cruz":         SantaCruz,
	"half moon bay":      HalfMoonBay,
	"huntington beach":   HuntingtonBeach,
	"providence":         Providence,
	"wrightsville beach": WrightsvilleBeach,
}

// Lookup finds the Place for a scraper location like
// "Half Moon Bay, California".  The state part is ignored.
func Lookup(location string) (Place, bool) {
	city, _, _ := strings.Cut(location, ",")
	p, ok := places[strings.ToLower(strings.TrimSpace(city))]
	return p, ok
}

// SunEvents is a time series of SunEvent.
type SunEvents []SunEvent

// SunEvent is a sunrise or sunset event.
type SunEvent struct {
	Time  time.Time
	Event Event
}

func (s *SunEvent) String() string {
	name := "Sunset"
	if s.Event == Sunrise {
		name = "Sunrise"
	}
	return fmt.Sprintf("%s %s", s.Time.Format(time.RFC822), name)
}

// Event encodes a sunrise or sunset event.
type Event bool

const (
	Sunrise Event = true
	Sunset  Event = false
)

func locationOrPanic(name string) *time.Location {
	loc, err := time.LoadLocation(name)
	if err != nil {
		panic(err)
	}
	return loc
}
