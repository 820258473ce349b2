// Package data archives filtered low tide observations in Postgres.  The
// archive is optional: without PGHOST the rest of the system runs without a
// database.
package data

import (
	"fmt"
	"os"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/mgard/lowtide/pkg/tideforecast"
)

// Observation is one daylight low tide kept from a scrape.
type Observation struct {
	gorm.Model
	Location string
	Date     time.Time
	TideTime string
	Height   float64
	Units    string
}

// PostgresFromEnv opens the archive database described by the standard PG*
// environment variables.  When PGHOST is unset there is no archive and both
// return values are nil.
func PostgresFromEnv() (*gorm.DB, error) {
	host := os.Getenv("PGHOST")
	if host == "" {
		return nil, nil
	}
	dsn := fmt.Sprintf("host=%s user=postgres password=%s dbname=lowtide port=%s sslmode=disable",
		host,
		os.Getenv("PGPASSWORD"),
		os.Getenv("PGPORT"))
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	if err := db.AutoMigrate(&Observation{}); err != nil {
		return nil, fmt.Errorf("failed to migrate: %w", err)
	}
	return db, nil
}

// SaveForecast archives every reading of a filtered forecast.
func SaveForecast(db *gorm.DB, location string, tides tideforecast.TideTable) error {
	var obs []Observation
	for _, day := range tides {
		for _, r := range day.Readings {
			obs = append(obs, Observation{
				Location: location,
				Date:     day.Date,
				TideTime: r.Time.String(),
				Height:   r.Height,
				Units:    r.Units,
			})
		}
	}
	if len(obs) == 0 {
		return nil
	}
	return db.Create(&obs).Error
}
