package tideforecast

import (
	"errors"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
)

func TestCellReadings(t *testing.T) {
	table := []struct {
		name string
		td   string
		want []Reading
	}{{
		name: "no value groups",
		td:   `<td class="tide-table__part--low">low tide</td>`,
		want: nil,
	}, {
		name: "one complete group",
		td: `<td class="tide-table__part--low"><div>
			<span class="tide-table__value-low">05:45AM</span>
			<span class="tide-table__height">1.2</span>
			<span class="tide-table__units">ft</span>
			</div></td>`,
		want: []Reading{{Time: NewClock(5, 45), Height: 1.2, Units: "ft"}},
	}, {
		name: "two complete groups",
		td: `<td class="tide-table__part--low"><div>
			<span class="tide-table__value-low">05:45AM</span>
			<span class="tide-table__height">1.2</span>
			<span class="tide-table__units">ft</span>
			</div><div>
			<span class="tide-table__value-low">12:00PM</span>
			<span class="tide-table__height">0.8</span>
			<span class="tide-table__units">ft</span>
			</div></td>`,
		want: []Reading{
			{Time: NewClock(5, 45), Height: 1.2, Units: "ft"},
			{Time: NewClock(12, 0), Height: 0.8, Units: "ft"},
		},
	}, {
		name: "incomplete sibling does not discard the complete group",
		td: `<td class="tide-table__part--low"><div>
			<span class="tide-table__value-low">05:45AM</span>
			<span class="tide-table__height">1.2</span>
			<span class="tide-table__units">ft</span>
			</div><div>
			<span class="tide-table__value-low">12:00PM</span>
			<span class="tide-table__units">ft</span>
			</div></td>`,
		want: []Reading{{Time: NewClock(5, 45), Height: 1.2, Units: "ft"}},
	}, {
		name: "three groups is not a reading cell",
		td: `<td class="tide-table__part--low"><div></div><div></div><div></div></td>`,
		want: nil,
	}, {
		name: "unreadable time is a soft miss",
		td: `<td class="tide-table__part--low"><div>
			<span class="tide-table__value-low">whenever</span>
			<span class="tide-table__height">1.2</span>
			<span class="tide-table__units">ft</span>
			</div></td>`,
		want: nil,
	}}

	for _, tc := range table {
		t.Run(tc.name, func(t *testing.T) {
			doc := `<table class="tide-table__table"><tbody><tr>` + tc.td + `</tr></tbody></table>`
			td := findFirst(mustTable(t, doc), "td", "")
			if td == nil {
				t.Fatalf("fixture has no cell")
			}

			got, err := New().cellReadings(td)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if diff := cmp.Diff(tc.want, got); diff != "" {
				t.Errorf("wrong readings (-want,+got):\n%s", diff)
			}
		})
	}
}

func TestCellReadingsBadHeight(t *testing.T) {
	doc := `<table class="tide-table__table"><tbody><tr>
		<td class="tide-table__part--low"><div>
		<span class="tide-table__value-low">05:45AM</span>
		<span class="tide-table__height">tall</span>
		<span class="tide-table__units">ft</span>
		</div></td></tr></tbody></table>`
	td := findFirst(mustTable(t, doc), "td", "")

	_, err := New().cellReadings(td)
	var perr *ParseError
	if !errors.As(err, &perr) {
		t.Errorf("got err %v, want a *ParseError", err)
	}
}

func TestExtractTides(t *testing.T) {
	days := []DayColumn{
		{Date: time.Date(2024, time.November, 4, 0, 0, 0, 0, time.Local), Cols: 0},
		{Date: time.Date(2024, time.November, 5, 0, 0, 0, 0, time.Local), Cols: 2},
	}

	got, err := New().ExtractTides(mustTable(t, forecastPage), days)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := TideTable{{
		Date: days[0].Date,
		Readings: []Reading{
			{Time: NewClock(5, 45), Height: 1.2, Units: "ft"},
			{Time: NewClock(12, 0), Height: 0.8, Units: "ft"},
		},
	}, {
		Date: days[1].Date,
		Readings: []Reading{
			{Time: NewClock(6, 30), Height: 1.0, Units: "ft"},
			{Time: NewClock(18, 0), Height: 0.9, Units: "ft"},
		},
	}}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("wrong tides (-want,+got):\n%s", diff)
	}
}

func TestExtractTidesSkipsHighOnlyRows(t *testing.T) {
	doc := `<table class="tide-table__table"><tbody>
		<tr class="tide-table__separator">
		<td class="tide-table__part--high"><div>
		<span class="tide-table__value-low">09:00AM</span>
		<span class="tide-table__height">5.5</span>
		<span class="tide-table__units">ft</span>
		</div></td>
		</tr></tbody></table>`
	days := []DayColumn{
		{Date: time.Date(2024, time.November, 4, 0, 0, 0, 0, time.Local), Cols: 0},
	}

	got, err := New().ExtractTides(mustTable(t, doc), days)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) != 1 || len(got[0].Readings) != 0 {
		t.Errorf("high-only row contributed readings: %+v", got)
	}
}

// lowCell renders a single-reading low tide cell for row fixtures.
func lowCell(value, height string) string {
	return `<td class="tide-table__part--low"><div>` +
		`<span class="tide-table__value-low">` + value + `</span>` +
		`<span class="tide-table__height">` + height + `</span>` +
		`<span class="tide-table__units">ft</span>` +
		`</div></td>`
}

func TestExtractTidesRowOverrun(t *testing.T) {
	// The second row has one more cell than the day columns account for, so
	// extraction stops there; the third row must not contribute.
	doc := `<table class="tide-table__table"><tbody>
		<tr class="tide-table__separator">` +
		lowCell("07:00AM", "1.1") +
		`</tr>
		<tr class="tide-table__separator">` +
		lowCell("01:00PM", "0.5") + lowCell("02:00PM", "0.6") +
		`</tr>
		<tr class="tide-table__separator">` +
		lowCell("08:00PM", "0.2") +
		`</tr></tbody></table>`
	days := []DayColumn{
		{Date: time.Date(2024, time.November, 4, 0, 0, 0, 0, time.Local), Cols: 0},
	}

	got, err := New().ExtractTides(mustTable(t, doc), days)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := TideTable{{
		Date: days[0].Date,
		Readings: []Reading{
			{Time: NewClock(7, 0), Height: 1.1, Units: "ft"},
			{Time: NewClock(13, 0), Height: 0.5, Units: "ft"},
		},
	}}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("wrong tides after overrun (-want,+got):\n%s", diff)
	}
}

func TestExtractTidesRowUnderrun(t *testing.T) {
	// The row runs out of cells before the second day is served.
	doc := `<table class="tide-table__table"><tbody>
		<tr class="tide-table__separator">` +
		lowCell("07:00AM", "1.1") +
		`</tr></tbody></table>`
	days := []DayColumn{
		{Date: time.Date(2024, time.November, 4, 0, 0, 0, 0, time.Local), Cols: 0},
		{Date: time.Date(2024, time.November, 5, 0, 0, 0, 0, time.Local), Cols: 2},
	}

	got, err := New().ExtractTides(mustTable(t, doc), days)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := TideTable{{
		Date: days[0].Date,
		Readings: []Reading{
			{Time: NewClock(7, 0), Height: 1.1, Units: "ft"},
		},
	}, {
		Date: days[1].Date,
	}}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("wrong tides after underrun (-want,+got):\n%s", diff)
	}
}
