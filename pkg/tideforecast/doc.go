// Package tideforecast scrapes tide-forecast.com for low tide events.  A
// forecast is requested per location ("city, state") and parsed out of the
// page's tide table.  The result keeps only low tides that happen between
// sunrise and sunset on each forecast day.  All markup hooks live in a Schema
// so the extraction code survives class name churn on the site.
package tideforecast
