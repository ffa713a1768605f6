package utils

import (
	"fmt"
	"strings"
	"time"

	"github.com/hance08/caja/internal/constants"
)

// ParseDate reads a YYYY-MM-DD date in local time. An empty input returns
// fallback unchanged.
func ParseDate(s string, fallback time.Time) (time.Time, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return fallback, nil
	}

	d, err := time.ParseInLocation(constants.DateFormat, s, time.Local)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q (use YYYY-MM-DD)", s)
	}
	return d, nil
}

func FormatDate(t time.Time) string {
	return t.Format(constants.DateFormat)
}

// MonthBounds returns the first and last instant of t's calendar month.
func MonthBounds(t time.Time) (time.Time, time.Time) {
	start := time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, t.Location())
	end := start.AddDate(0, 1, 0).Add(-time.Second)
	return start, end
}
