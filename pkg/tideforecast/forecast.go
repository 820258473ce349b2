package tideforecast

// Forecast runs the whole extraction for one location: locate the table,
// resolve the day columns, pull the sun windows and tide readings, and keep
// only daylight lows.  Each call is self contained; nothing is shared across
// calls or locations.
func (s *Scraper) Forecast(location string) (TideTable, error) {
	table, err := s.FindTable(location)
	if err != nil {
		return nil, err
	}

	days, err := s.ResolveDays(table)
	if err != nil {
		return nil, err
	}

	windows := s.SunWindows(table)

	tides, err := s.ExtractTides(table, days)
	if err != nil {
		return nil, err
	}

	return FilterDaylight(tides, windows)
}
