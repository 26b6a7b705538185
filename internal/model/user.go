// Package model defines domain entities for the application.
package model

import (
	"fmt"
	"time"
)

// TimestampLayout is the wire format for creation timestamps: local time,
// no offset, seconds precision.
const TimestampLayout = "2006-01-02T15:04:05"

const timestampMicroLayout = TimestampLayout + ".000000"

// User is a single entry in the directory.
type User struct {
	ID        string
	Name      string
	Email     string
	CreatedAt time.Time
}

// FormatTimestamp renders t in local time without a zone offset.
// The microsecond fraction is only included when it is non-zero.
func FormatTimestamp(t time.Time) string {
	t = t.Local()
	if t.Nanosecond()/int(time.Microsecond) == 0 {
		return t.Format(TimestampLayout)
	}
	return t.Format(timestampMicroLayout)
}

// ParseTimestamp parses a value produced by FormatTimestamp in local time.
func ParseTimestamp(s string) (time.Time, error) {
	layout := TimestampLayout
	if len(s) > len(TimestampLayout) {
		layout = timestampMicroLayout
	}
	t, err := time.ParseInLocation(layout, s, time.Local)
	if err != nil {
		return time.Time{}, fmt.Errorf("parse timestamp %q: %w", s, err)
	}
	return t, nil
}
