package model

import (
	"testing"
	"time"
)

func TestFormatTimestamp_WholeSeconds(t *testing.T) {
	t.Parallel()

	ts := time.Date(2024, 1, 1, 10, 0, 0, 0, time.Local)

	if got := FormatTimestamp(ts); got != "2024-01-01T10:00:00" {
		t.Errorf("FormatTimestamp = %s, want 2024-01-01T10:00:00", got)
	}
}

func TestFormatTimestamp_Microseconds(t *testing.T) {
	t.Parallel()

	ts := time.Date(2024, 1, 2, 11, 30, 0, 123456789, time.Local)

	if got := FormatTimestamp(ts); got != "2024-01-02T11:30:00.123456" {
		t.Errorf("FormatTimestamp = %s, want 2024-01-02T11:30:00.123456", got)
	}
}

func TestFormatTimestamp_SubMicrosecondDropped(t *testing.T) {
	t.Parallel()

	ts := time.Date(2024, 1, 3, 14, 15, 0, 999, time.Local)

	if got := FormatTimestamp(ts); got != "2024-01-03T14:15:00" {
		t.Errorf("FormatTimestamp = %s, want 2024-01-03T14:15:00", got)
	}
}

func TestParseTimestamp_RoundTrip(t *testing.T) {
	t.Parallel()

	for _, s := range []string{"2024-01-01T10:00:00", "2024-06-30T23:59:59.000001"} {
		parsed, err := ParseTimestamp(s)
		if err != nil {
			t.Fatalf("ParseTimestamp(%q) error: %v", s, err)
		}
		if got := FormatTimestamp(parsed); got != s {
			t.Errorf("round trip %q -> %q", s, got)
		}
	}
}

func TestParseTimestamp_Invalid(t *testing.T) {
	t.Parallel()

	if _, err := ParseTimestamp("yesterday"); err == nil {
		t.Error("expected error for invalid timestamp")
	}
}
