package tideforecast

import (
	"fmt"
	"net/http"
	"strings"

	"golang.org/x/net/html"
)

const defaultBaseURL = "https://www.tide-forecast.com"

// Scraper fetches and parses tide forecast pages.  The zero value is not
// usable; construct with New.  A Scraper holds no per-request state, so one
// may serve many locations, concurrently if desired.
type Scraper struct {
	// BaseURL is the site root, without a trailing slash.
	BaseURL string
	// Client performs the page fetches.
	Client *http.Client
	// Schema holds the markup hooks.
	Schema Schema
}

// New returns a Scraper pointed at tide-forecast.com.
func New() *Scraper {
	return &Scraper{
		BaseURL: defaultBaseURL,
		Client:  http.DefaultClient,
		Schema:  DefaultSchema,
	}
}

// Slug turns a "city, state" location into its two URL path forms: the
// state-qualified slug and the bare-city fallback.  Spaces become hyphens.
// A location without a comma yields the same slug twice.
func Slug(location string) (full, city string) {
	city, state, _ := strings.Cut(strings.TrimSpace(location), ",")
	city = strings.ReplaceAll(strings.TrimSpace(city), " ", "-")
	state = strings.ReplaceAll(strings.TrimSpace(state), " ", "-")
	if state == "" {
		return city, city
	}
	return city + "-" + state, city
}

func (s *Scraper) url(slug string) string {
	return fmt.Sprintf("%s/locations/%s/tides/latest", s.BaseURL, slug)
}

// FindTable locates the tide table for a location.  It tries the
// state-qualified URL first and falls back to the bare city name, since some
// locations' canonical pages omit the state.  Transport failures surface as
// a *FetchError; two clean misses surface as ErrNoTable.
func (s *Scraper) FindTable(location string) (*html.Node, error) {
	full, city := Slug(location)

	table, err := s.tableAt(s.url(full))
	if err != nil {
		return nil, err
	}
	if table != nil {
		return table, nil
	}

	if city != full {
		table, err = s.tableAt(s.url(city))
		if err != nil {
			return nil, err
		}
		if table != nil {
			return table, nil
		}
	}
	return nil, ErrNoTable
}

// tableAt fetches one URL and returns its tide table node, or nil when the
// page has no such table.  An unknown slug 404s, which counts as a miss so
// FindTable can try the fallback URL; other non-2xx statuses are fetch
// failures.
func (s *Scraper) tableAt(url string) (*html.Node, error) {
	resp, err := s.Client.Get(url)
	if err != nil {
		return nil, &FetchError{URL: url, Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return nil, nil
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &FetchError{URL: url, Err: fmt.Errorf("status %s", resp.Status)}
	}

	doc, err := html.Parse(resp.Body)
	if err != nil {
		return nil, &FetchError{URL: url, Err: err}
	}
	return findFirst(doc, "table", s.Schema.Table), nil
}
