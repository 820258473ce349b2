package tideforecast

import (
	"fmt"
	"strconv"
	"strings"

	"golang.org/x/net/html"
)

// ExtractTides reads the table's tide rows into one DayTides per forecast
// day.  Only rows that contain at least one low tide cell contribute; high
// tide rows are skipped whole.  Within a row, cells are handed out to days
// left to right according to each day's column count, and a day's readings
// accumulate across rows in row order.
//
// A row whose cell count does not line up with the day columns (too few
// cells for the days, or cells left over after every day is served) stops
// extraction at that row; whatever accumulated up to that point is returned
// as is.  Malformed tables degrade to partial data rather than misattributed
// data.
func (s *Scraper) ExtractTides(table *html.Node, days []DayColumn) (TideTable, error) {
	out := make(TideTable, len(days))
	for i, d := range days {
		out[i] = DayTides{Date: d.Date}
	}

	for _, tr := range findAll(table, "tr", s.Schema.TideRow) {
		if !s.rowHasLow(tr) {
			continue
		}
		overrun, err := s.consumeRow(tr, days, out)
		if err != nil {
			return nil, err
		}
		if overrun {
			break
		}
	}
	return out, nil
}

// rowHasLow reports whether any cell in the row is marked as a low tide.
func (s *Scraper) rowHasLow(tr *html.Node) bool {
	return findFirst(tr, "td", s.Schema.LowCell) != nil
}

// consumeRow distributes one row's cells across the days.  A day with Cols 0
// takes exactly one cell, a day with Cols N takes N.  overrun means the row
// did not divide cleanly and extraction must stop.
func (s *Scraper) consumeRow(tr *html.Node, days []DayColumn, out TideTable) (overrun bool, err error) {
	cells := findAll(tr, "td", "")
	next := 0
	for i, day := range days {
		take := day.Cols
		if take == 0 {
			take = 1
		}
		for ; take > 0; take-- {
			if next >= len(cells) {
				return true, nil
			}
			readings, err := s.cellReadings(cells[next])
			if err != nil {
				return false, err
			}
			out[i].Readings = append(out[i].Readings, readings...)
			next++
		}
	}
	return next < len(cells), nil
}

// cellReadings extracts the readings nested in one cell.  A cell holds its
// value/height/units spans either directly (one div) or once per div (two
// divs); any other div count means the cell is not a reading.  Each group is
// checked independently, so one incomplete group does not discard its
// sibling.
func (s *Scraper) cellReadings(td *html.Node) ([]Reading, error) {
	divs := findAll(td, "div", "")

	var groups []*html.Node
	switch len(divs) {
	case 1:
		groups = []*html.Node{td}
	case 2:
		groups = divs
	default:
		return nil, nil
	}

	var out []Reading
	for _, g := range groups {
		r, ok, err := s.readingFrom(g)
		if err != nil {
			return nil, err
		}
		if ok {
			out = append(out, r)
		}
	}
	return out, nil
}

// readingFrom builds a Reading from one value/height/units group.  A group
// missing any of the three spans yields nothing.  Once the group is
// structurally complete a non-numeric height is a *ParseError, while an
// unreadable time is a soft miss.
func (s *Scraper) readingFrom(n *html.Node) (Reading, bool, error) {
	value := findFirst(n, "span", s.Schema.ValueSpan)
	height := findFirst(n, "span", s.Schema.HeightSpan)
	units := findFirst(n, "span", s.Schema.UnitsSpan)
	if value == nil || height == nil || units == nil {
		return Reading{}, false, nil
	}

	raw := strings.TrimSpace(collectText(height))
	h, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return Reading{}, false, &ParseError{
			Element: "tide cell",
			Reason:  fmt.Sprintf("height %q is not a number", raw),
		}
	}

	t, ok := ParseClock(strings.TrimSpace(collectText(value)))
	if !ok {
		return Reading{}, false, nil
	}

	return Reading{
		Time:   t,
		Height: h,
		Units:  strings.TrimSpace(collectText(units)),
	}, true, nil
}
