package biztime

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestCurrentYearUsesBusinessTimezone(t *testing.T) {
	previous := now
	t.Cleanup(func() { now = previous })

	// 02:00 UTC on New Year's Day is still the previous year in Bogota (UTC-5).
	now = func() time.Time { return time.Date(2026, time.January, 1, 2, 0, 0, 0, time.UTC) }

	if Location() == time.UTC {
		t.Skip("timezone database not available")
	}
	assert.Equal(t, 2025, CurrentYear())
	assert.Equal(t, 2026, NowUTC().Year())
}
