package tideforecast

import (
	"fmt"
	"strconv"
	"time"

	"golang.org/x/net/html"
)

const isoDate = "2006-01-02"

// ResolveDays reads the table header into the ordered forecast days.  Each
// day header carries its date in an attribute and, when the day spans more
// than one cell, a colspan.  A header without the date attribute is a
// *ParseError; the rest of the table cannot be attributed without it.
func (s *Scraper) ResolveDays(table *html.Node) ([]DayColumn, error) {
	var days []DayColumn
	for _, th := range findAll(table, "th", s.Schema.DayHeader) {
		raw, ok := attr(th, s.Schema.DateAttr)
		if !ok {
			return nil, &ParseError{
				Element: "day header",
				Reason:  fmt.Sprintf("missing %s attribute", s.Schema.DateAttr),
			}
		}
		date, err := time.ParseInLocation(isoDate, raw, time.Local)
		if err != nil {
			return nil, &ParseError{
				Element: "day header",
				Reason:  fmt.Sprintf("%s %q is not a date", s.Schema.DateAttr, raw),
			}
		}

		// Absent colspan means the day occupies a single cell.
		cols := 0
		if v, ok := attr(th, "colspan"); ok {
			cols, err = strconv.Atoi(v)
			if err != nil {
				return nil, &ParseError{
					Element: "day header",
					Reason:  fmt.Sprintf("colspan %q is not a number", v),
				}
			}
		}
		days = append(days, DayColumn{Date: date, Cols: cols})
	}
	return days, nil
}
