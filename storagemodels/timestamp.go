/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package storagemodels

import "time"

// TimestampLayout renders local wall-clock time at microsecond precision, without zone.
const TimestampLayout = "2006-01-02T15:04:05.000000"

// parseLayout also accepts a missing or longer fractional part.
const parseLayout = "2006-01-02T15:04:05.999999999"

// Now returns the current local time truncated to the stored precision.
func Now() time.Time {
	return time.Now().Truncate(time.Microsecond)
}

// FormatTimestamp renders t with TimestampLayout in local time.
func FormatTimestamp(t time.Time) string {
	return t.Local().Format(TimestampLayout)
}

// ParseTimestamp parses a value written by FormatTimestamp.
func ParseTimestamp(s string) (time.Time, error) {
	t, err := time.ParseInLocation(parseLayout, s, time.Local)
	if err != nil {
		return time.Time{}, err
	}
	return t.Truncate(time.Microsecond), nil
}
