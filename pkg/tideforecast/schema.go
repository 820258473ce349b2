package tideforecast

// Schema names the markup hooks the extractors key on.  The zero value is
// useless; start from DefaultSchema and override fields when the site's
// markup changes.
type Schema struct {
	// Table is the class of the forecast table element.
	Table string
	// DayHeader is the class of a th describing one forecast day.
	DayHeader string
	// DateAttr is the attribute on a day header holding its ISO date.
	DateAttr string
	// SunCell is the class of a td holding sunrise/sunset times.
	SunCell string
	// TideRow is the class of a tr holding tide extremes.
	TideRow string
	// LowCell is the class token marking a cell as a low tide.
	LowCell string
	// ValueSpan, HeightSpan and UnitsSpan are the classes of the three
	// spans that together make up one tide reading.
	ValueSpan  string
	HeightSpan string
	UnitsSpan  string
}

// DefaultSchema matches tide-forecast.com as of this writing.
var DefaultSchema = Schema{
	Table:      "tide-table__table",
	DayHeader:  "tide-table__day",
	DateAttr:   "data-date",
	SunCell:    "tide-table__part--sun",
	TideRow:    "tide-table__separator",
	LowCell:    "tide-table__part--low",
	ValueSpan:  "tide-table__value-low",
	HeightSpan: "tide-table__height",
	UnitsSpan:  "tide-table__units",
}
