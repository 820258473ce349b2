package tideforecast

// FilterDaylight keeps only the readings that fall inside each day's sun
// window, sunrise and sunset instants included.  The two sequences are
// positionally aligned by day index; that join is load bearing, so a length
// mismatch (including a missing sun row alongside real tide data) is an
// *AlignmentError rather than a guess at a default window.
//
// A window that is present but missing a bound keeps nothing for its day;
// the page had no usable daylight data there.
func FilterDaylight(tides TideTable, windows []SunWindow) (TideTable, error) {
	if len(tides) != len(windows) {
		return nil, &AlignmentError{Days: len(tides), Windows: len(windows)}
	}

	out := make(TideTable, len(tides))
	for i, day := range tides {
		kept := DayTides{Date: day.Date}
		for _, r := range day.Readings {
			if windows[i].Contains(r.Time) {
				kept.Readings = append(kept.Readings, r)
			}
		}
		out[i] = kept
	}
	return out, nil
}
