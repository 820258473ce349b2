package tideforecast

import (
	"strings"

	"golang.org/x/net/html"
)

// SunWindows reads the table's sun row into one window per forecast day, in
// day order.  The table is expected to carry exactly one such row; the first
// row with sun cells wins.  No sun row yields an empty sequence, which the
// daylight filter later rejects if tide data exists.
//
// The row's layout is irregular: the first two non-empty cells are today's
// sunrise and sunset, and every later cell nests a (sunrise, sunset) pair of
// divs for one more day.  A nested pair where neither time parses is the
// site's "no data" rendering and is dropped.
func (s *Scraper) SunWindows(table *html.Node) []SunWindow {
	for _, tr := range findAll(table, "tr", "") {
		cells := findAll(tr, "td", s.Schema.SunCell)
		if len(cells) == 0 {
			continue
		}

		var windows []SunWindow
		var sunrise, sunset *Clock
		seen := 0
		for _, td := range cells {
			if strings.TrimSpace(collectText(td)) == "" {
				continue
			}

			switch seen {
			case 0:
				sunrise = cellClock(findFirst(td, "div", ""))
			case 1:
				sunset = cellClock(findFirst(td, "div", ""))
			default:
				divs := findAll(td, "div", "")
				var w SunWindow
				if len(divs) > 0 {
					w.Sunrise = cellClock(divs[0])
				}
				if len(divs) > 1 {
					w.Sunset = cellClock(divs[1])
				}
				if w.Sunrise != nil || w.Sunset != nil {
					windows = append(windows, w)
				}
			}
			seen++
		}

		if sunrise != nil && sunset != nil {
			windows = append([]SunWindow{{Sunrise: sunrise, Sunset: sunset}}, windows...)
		}
		return windows
	}
	return nil
}

// cellClock parses the text of a node as a clock time, nil on a soft miss.
func cellClock(n *html.Node) *Clock {
	if n == nil {
		return nil
	}
	c, ok := ParseClock(strings.TrimSpace(collectText(n)))
	if !ok {
		return nil
	}
	return &c
}
