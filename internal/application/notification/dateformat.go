package notification

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"obleafusion/internal/infrastructure/i18n"
	"obleafusion/internal/shared/logger"
)

// dateLayouts are tried in order. Layouts carrying an offset keep the
// calendar date as written in the input.
var dateLayouts = []string{
	time.DateOnly,
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
}

// FormatDate renders raw as a long-form date in lang ("domingo, 1 de junio de
// 2025" / "Sunday, June 1, 2025"). Input that is not a date is returned
// unchanged and a warning is logged to log when it is non-nil.
func FormatDate(raw string, lang i18n.Lang, log logger.Interface) string {
	formatted, err := formatLongDate(raw, i18n.TableFor(lang))
	if err != nil {
		if log != nil {
			log.Warnw("date could not be formatted, using raw value",
				"date", raw,
				"lang", lang,
				"error", err,
			)
		}
		return raw
	}
	return formatted
}

func parseCalendarDate(raw string) (year int, month time.Month, day int, err error) {
	s := strings.TrimSpace(raw)
	for _, layout := range dateLayouts {
		t, parseErr := time.Parse(layout, s)
		if parseErr == nil {
			year, month, day = t.Date()
			return year, month, day, nil
		}
	}
	return 0, 0, 0, fmt.Errorf("unrecognized date %q", raw)
}

func formatLongDate(raw string, table *i18n.Table) (string, error) {
	if table == nil {
		return "", fmt.Errorf("no translation table")
	}
	cal := table.Calendar
	if len(cal.Weekdays) != 7 || len(cal.Months) != 12 || cal.LongDate == "" {
		return "", fmt.Errorf("incomplete calendar for %q", table.Lang)
	}

	year, month, day, err := parseCalendarDate(raw)
	if err != nil {
		return "", err
	}
	weekday := time.Date(year, month, day, 0, 0, 0, 0, time.UTC).Weekday()

	r := strings.NewReplacer(
		"{weekday}", cal.Weekdays[weekday],
		"{day}", strconv.Itoa(day),
		"{month}", cal.Months[month-1],
		"{year}", strconv.Itoa(year),
	)
	return r.Replace(cal.LongDate), nil
}
