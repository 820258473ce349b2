package tideforecast

import (
	"strings"
	"testing"

	"golang.org/x/net/html"
)

// clk is shorthand for a Clock pointer in fixtures.
func clk(hour, minute int) *Clock {
	c := NewClock(hour, minute)
	return &c
}

// mustTable parses an HTML fixture and returns its tide table node.
func mustTable(t *testing.T, doc string) *html.Node {
	t.Helper()
	root, err := html.Parse(strings.NewReader(doc))
	if err != nil {
		t.Fatalf("failed to parse fixture: %v", err)
	}
	table := findFirst(root, "table", DefaultSchema.Table)
	if table == nil {
		t.Fatalf("fixture has no tide table")
	}
	return table
}

// forecastPage is a trimmed tide-forecast page: two forecast days where the
// first occupies one cell and the second spans two, a sun row, and one low
// tide row with two readings for each day.
const forecastPage = `<html><body>
<table class="tide-table__table">
<thead><tr>
<th class="tide-table__day" data-date="2024-11-04">Mon 04 November</th>
<th class="tide-table__day" data-date="2024-11-05" colspan="2">Tue 05 November</th>
</tr></thead>
<tbody>
<tr>
<td class="tide-table__part--sun"><div>06:00AM</div></td>
<td class="tide-table__part--sun"><div>05:30PM</div></td>
<td class="tide-table__part--sun"><div>06:01AM</div><div>05:29PM</div></td>
</tr>
<tr class="tide-table__separator">
<td class="tide-table__part--low">
<div><span class="tide-table__value-low">05:45AM</span><span class="tide-table__height">1.2</span><span class="tide-table__units">ft</span></div>
<div><span class="tide-table__value-low">12:00PM</span><span class="tide-table__height">0.8</span><span class="tide-table__units">ft</span></div>
</td>
<td class="tide-table__part--low">
<div><span class="tide-table__value-low">06:30AM</span><span class="tide-table__height">1.0</span><span class="tide-table__units">ft</span></div>
</td>
<td class="tide-table__part--low">
<div><span class="tide-table__value-low">06:00PM</span><span class="tide-table__height">0.9</span><span class="tide-table__units">ft</span></div>
</td>
</tr>
</tbody>
</table>
</body></html>`
