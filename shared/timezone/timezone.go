// Package timezone keeps every timestamp the service produces in one
// configured IANA zone (APP_TIMEZONE, default UTC).
//
//	now := timezone.Now()
//	checkIn, err := timezone.ParseISO("2026-12-20")
//	label := timezone.Format(booking.CreatedAt, time.RFC3339)
package timezone

import (
	"fmt"
	"sync"
	"time"

	"github.com/rs/zerolog/log"

	"hotel/config"
)

// ISODateLayout is the calendar-date form accepted alongside RFC 3339.
const ISODateLayout = "2006-01-02"

var (
	loadOnce    sync.Once
	appLocation = time.UTC
)

func location() *time.Location {
	loadOnce.Do(func() {
		name := config.Get().App.Timezone
		if name == "" {
			log.Warn().Msg("No timezone configured, using UTC")

			return
		}

		loc, err := time.LoadLocation(name)
		if err != nil {
			log.Error().Err(err).Str("timezone", name).Msg("Failed to load timezone, using UTC")

			return
		}

		appLocation = loc

		log.Info().Str("timezone", loc.String()).Msg("Application timezone initialized")
	})

	return appLocation
}

// SetLocation overrides the configured zone. It must run before the first
// timestamp is produced, so it is meant for tests and tooling only.
func SetLocation(name string) error {
	loc, err := time.LoadLocation(name)
	if err != nil {
		return fmt.Errorf("unknown timezone %q: %w", name, err)
	}

	loadOnce.Do(func() {})
	appLocation = loc

	return nil
}

func Now() time.Time {
	return time.Now().In(location())
}

func ToAppTime(t time.Time) time.Time {
	return t.In(location())
}

func GetLocation() *time.Location {
	return location()
}

// Parse interprets value in the application zone when layout has no offset.
func Parse(layout, value string) (time.Time, error) {
	return time.ParseInLocation(layout, value, location())
}

func Format(t time.Time, layout string) string {
	return ToAppTime(t).Format(layout)
}

// ParseISO accepts either a calendar date or an RFC 3339 timestamp. Calendar
// dates are UTC midnight so that a day is always 24h, whatever the app zone's
// DST rules.
func ParseISO(value string) (time.Time, error) {
	if t, err := time.ParseInLocation(ISODateLayout, value, time.UTC); err == nil {
		return t, nil
	}

	t, err := time.Parse(time.RFC3339, value)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid ISO-8601 date %q: %w", value, err)
	}

	return t, nil
}
