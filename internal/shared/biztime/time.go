// Package biztime provides the business timezone used for display values
// such as the copyright year in notification footers. Calendar dates entered
// by clients are never converted between timezones.
package biztime

import (
	"fmt"
	"sync"
	"time"
)

const (
	// DefaultTimezone is the default business timezone.
	DefaultTimezone = "America/Bogota"
)

var (
	bizLocation     *time.Location
	bizLocationOnce sync.Once
	initErr         error

	// now is replaced in tests.
	now = time.Now
)

// Init initializes the business timezone. Should be called once at startup.
// If tz is empty, defaults to America/Bogota.
func Init(tz string) error {
	bizLocationOnce.Do(func() {
		if tz == "" {
			tz = DefaultTimezone
		}
		bizLocation, initErr = time.LoadLocation(tz)
		if initErr != nil {
			bizLocation = time.UTC
		}
	})
	return initErr
}

// MustInit initializes the business timezone and panics on error.
func MustInit(tz string) {
	if err := Init(tz); err != nil {
		panic(fmt.Sprintf("failed to initialize business timezone %q: %v", tz, err))
	}
}

// Location returns the business timezone location, initializing the default
// one on first use. Falls back to UTC when the timezone database is missing.
func Location() *time.Location {
	_ = Init("")
	return bizLocation
}

// NowUTC returns current time in UTC.
func NowUTC() time.Time {
	return now().UTC()
}

// Now returns the current time in the business timezone.
func Now() time.Time {
	return now().In(Location())
}

// CurrentYear returns the current year in the business timezone.
func CurrentYear() int {
	return Now().Year()
}
