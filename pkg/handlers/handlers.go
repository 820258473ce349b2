package handlers

import (
	"bytes"
	"crypto/sha1"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"
	"os"
	"time"

	"github.com/mgard/lowtide/pkg/cache"
	"github.com/mgard/lowtide/pkg/data"
	"github.com/mgard/lowtide/pkg/metrics"
	"github.com/mgard/lowtide/pkg/sunset"
	"github.com/mgard/lowtide/pkg/tideforecast"

	"github.com/gorilla/mux"
	"github.com/gorilla/securecookie"
	"github.com/gorilla/sessions"
	"golang.org/x/crypto/pbkdf2"
	"gorm.io/gorm"
)

const (
	day = 24 * time.Hour

	// cache for slightly less than one day so daily clients don't see
	// stale data
	cacheTTL = 23 * time.Hour

	sessionName         = "lowtide"
	sessionLastLocation = "last-location"
	sessionSecretEnv    = "LOWTIDE_SESSION_SECRET"
	// See https://developer.chrome.com/blog/cookie-max-age-expires.
	defaultMaxAge = 60 * 60 * 24 * 400 // 400 days in seconds.

	defaultLocation = "Wrightsville Beach, North Carolina"
)

var store = &sessions.CookieStore{
	Codecs: securecookie.CodecsFromPairs(sessionKey(), nil),
	Options: &sessions.Options{
		Path:     "/",
		MaxAge:   defaultMaxAge,
		HttpOnly: true,
	},
}

func init() {
	store.MaxAge(defaultMaxAge)
}

func sessionKey() []byte {
	secret := os.Getenv(sessionSecretEnv)
	if secret == "" {
		secret = "lowtide-dev"
	}
	return pbkdf2.Key([]byte(secret), []byte{}, 4096, 32, sha1.New)
}

// Register installs all routes on r.
func Register(r *mux.Router) {
	db, err := data.PostgresFromEnv()
	if err != nil {
		log.Printf("Archive disabled: %v", err)
		db = nil
	}

	r.Handle("/", makeIndexHandler())
	r.Handle("/api/v1/lowtides", makeServeLowTides(tideforecast.New(), db))
	r.Handle("/api/v1/sunevents", makeServeSunEvents())
}

func makeIndexHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Add("Content-Type", "text/plain")
		fmt.Fprintf(w, "lowtide: daylight low tides scraped from tide-forecast.com\n\n")
		fmt.Fprintf(w, "GET /api/v1/lowtides?location=City,+State[&o=json]\n")
		fmt.Fprintf(w, "GET /api/v1/sunevents?location=City,+State[&o=json]\n")
	})
}

// makeServeLowTides serves the filtered forecast for one location.  The
// requested location sticks in a cookie session and becomes the default for
// the client's next request.
func makeServeLowTides(s *tideforecast.Scraper, db *gorm.DB) http.Handler {
	timeCache := cache.NewTimed(cacheTTL)

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		session, _ := store.Get(r, sessionName)

		location := r.FormValue("location")
		if location == "" {
			if last, ok := session.Values[sessionLastLocation].(string); ok {
				location = last
			}
		}
		if location == "" {
			location = defaultLocation
		}
		session.Values[sessionLastLocation] = location
		if err := session.Save(r, w); err != nil {
			log.Printf("Failed to save session: %v", err)
		}

		outputFormat := r.FormValue("o")
		key := fmt.Sprintf("%s %s", location, outputFormat)

		// serve cached version from memory if possible
		if cached, ok := timeCache.Get(key); ok {
			w.Header().Add("Content-Type", contentType(outputFormat))
			w.WriteHeader(http.StatusOK)
			w.Write(cached)
			return
		}

		start := time.Now()
		tides, err := s.Forecast(location)
		metrics.ObserveScrape(scrapeOutcome(err), time.Since(start).Seconds())
		if err != nil {
			code := http.StatusInternalServerError
			if errors.Is(err, tideforecast.ErrNoTable) {
				code = http.StatusNotFound
			}
			w.WriteHeader(code)
			fmt.Fprintf(w, "Failed to get tides for %q: %+v", location, err)
			log.Printf("Failed to get tides for %q: %+v", location, err)
			return
		}

		if db != nil {
			go func() {
				if err := data.SaveForecast(db, location, tides); err != nil {
					log.Printf("Failed to archive %q: %v", location, err)
				}
			}()
		}

		// duplicate the http response onto a buffer for the cache
		var toCache bytes.Buffer
		mw := io.MultiWriter(w, &toCache)

		w.Header().Add("Content-Type", contentType(outputFormat))
		w.WriteHeader(http.StatusOK)
		if outputFormat == "json" {
			if err := json.NewEncoder(mw).Encode(tides); err != nil {
				log.Printf("Failed to encode JSON result: %+v", err)
			}
		} else {
			writeTideText(mw, location, tides)
		}

		// save the result asynchronously as the cache may block
		go func() {
			timeCache.Set(key, toCache.Bytes())
		}()
	})
}

func writeTideText(w io.Writer, location string, tides tideforecast.TideTable) {
	fmt.Fprintf(w, "Location: %s\n", location)
	for _, d := range tides {
		for _, reading := range d.Readings {
			fmt.Fprintf(w, "%s %s\n", d.Date.Format("2006-01-02"), reading)
		}
	}
}

// makeServeSunEvents serves computed sunrise/sunset times for locations with
// known coordinates, as a cross check on the scraped daylight windows.
func makeServeSunEvents() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		location := r.FormValue("location")
		if location == "" {
			location = defaultLocation
		}
		place, ok := sunset.Lookup(location)
		if !ok {
			w.WriteHeader(http.StatusNotFound)
			fmt.Fprintf(w, "No coordinates for %q", location)
			return
		}

		events := sunset.GetSunEvents(time.Now().In(place.Location), 7*day, place)

		if r.FormValue("o") == "json" {
			w.Header().Add("Content-Type", "application/json")
			w.WriteHeader(http.StatusOK)
			if err := json.NewEncoder(w).Encode(events); err != nil {
				log.Printf("Failed to encode JSON result: %+v", err)
			}
			return
		}

		w.Header().Add("Content-Type", "text/plain")
		w.WriteHeader(http.StatusOK)
		for i := range events {
			fmt.Fprintf(w, "%s\n", events[i].String())
		}
	})
}

func contentType(outputFormat string) string {
	if outputFormat == "json" {
		return "application/json"
	}
	return "text/plain"
}

// scrapeOutcome buckets a Forecast error for metrics.
func scrapeOutcome(err error) string {
	var ferr *tideforecast.FetchError
	var perr *tideforecast.ParseError
	var aerr *tideforecast.AlignmentError
	switch {
	case err == nil:
		return "ok"
	case errors.Is(err, tideforecast.ErrNoTable):
		return "notable"
	case errors.As(err, &ferr):
		return "fetch"
	case errors.As(err, &perr):
		return "parse"
	case errors.As(err, &aerr):
		return "align"
	default:
		return "error"
	}
}
