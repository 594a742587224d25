package types

import (
	"database/sql/driver"
	"fmt"
	"time"
)

// TimeFormat layout used for parsing and rendering time-of-day values
const TimeFormat = "15:04"

// minutesPerDay is the upper bound for time-of-day arithmetic
const minutesPerDay = 24 * 60

// TimeString represents a time of day in "HH:MM" format.
// It is the single time-of-day representation used across the service:
// shift windows, appointment start times and candidate times all use it,
// so comparisons never mix formats.
type TimeString string

// NewTimeString creates a TimeString from the time-of-day part of t
func NewTimeString(t time.Time) TimeString {
	return TimeString(t.Format(TimeFormat))
}

// NewTimeStringFromString parses and validates a "HH:MM" string
func NewTimeStringFromString(s string) (TimeString, error) {
	ts := TimeString(s)
	if err := ts.Validate(); err != nil {
		return "", err
	}
	return ts, nil
}

// String returns the raw "HH:MM" value
func (t TimeString) String() string {
	return string(t)
}

// IsZero returns true if the value is empty
func (t TimeString) IsZero() bool {
	return t == ""
}

// Validate checks that the value is a well-formed "HH:MM" time of day
func (t TimeString) Validate() error {
	if len(t) != 5 || t[2] != ':' {
		return fmt.Errorf("invalid time format %q, expected HH:MM", string(t))
	}
	if _, err := time.Parse(TimeFormat, string(t)); err != nil {
		return fmt.Errorf("invalid time %q: %v", string(t), err)
	}
	return nil
}

// minutes converts the value to minutes since midnight.
// "24:00" is accepted as the end-of-day sentinel produced by AddMinutes.
func (t TimeString) minutes() (int, error) {
	if t == "24:00" {
		return minutesPerDay, nil
	}
	parsed, err := time.Parse(TimeFormat, string(t))
	if err != nil {
		return 0, fmt.Errorf("invalid time %q: %v", string(t), err)
	}
	return parsed.Hour()*60 + parsed.Minute(), nil
}

// Compare returns -1, 0 or 1 ordering t against other on (hour, minute)
func (t TimeString) Compare(other TimeString) int {
	a, errA := t.minutes()
	b, errB := other.minutes()
	if errA != nil || errB != nil {
		// Malformed values fall back to lexicographic ordering,
		// which matches numeric ordering for well-formed HH:MM
		switch {
		case t < other:
			return -1
		case t > other:
			return 1
		default:
			return 0
		}
	}
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}

// IsBefore returns true if t is strictly earlier than other
func (t TimeString) IsBefore(other TimeString) bool {
	return t.Compare(other) < 0
}

// IsAfter returns true if t is strictly later than other
func (t TimeString) IsAfter(other TimeString) bool {
	return t.Compare(other) > 0
}

// Equal returns true if both values denote the same time of day
func (t TimeString) Equal(other TimeString) bool {
	return t.Compare(other) == 0
}

// AddMinutes returns the time of day n minutes after t.
// The result may be exactly "24:00" (end of day); anything past
// midnight is an error, time-of-day arithmetic never wraps.
func (t TimeString) AddMinutes(n int) (TimeString, error) {
	m, err := t.minutes()
	if err != nil {
		return "", err
	}
	m += n
	if m < 0 || m > minutesPerDay {
		return "", fmt.Errorf("time %s%+d minutes is outside the day", string(t), n)
	}
	if m == minutesPerDay {
		return "24:00", nil
	}
	return TimeString(fmt.Sprintf("%02d:%02d", m/60, m%60)), nil
}

// Within reports whether t falls inside the [start, end) window,
// or [start, end] when inclusiveEnd is true.
//
// Both interval policies of the scheduling engine live here:
//   - appointment occupancy uses inclusiveEnd=true, so a candidate
//     landing exactly on another appointment's end instant still
//     counts as occupied
//   - business hours use inclusiveEnd=false, so a slot starting
//     exactly at closing time is rejected while one starting at
//     opening time is kept
func (t TimeString) Within(start, end TimeString, inclusiveEnd bool) bool {
	if t.Compare(start) < 0 {
		return false
	}
	if inclusiveEnd {
		return t.Compare(end) <= 0
	}
	return t.Compare(end) < 0
}

// Value implements driver.Valuer so TimeString can be written directly
// to a Postgres time/text column
func (t TimeString) Value() (driver.Value, error) {
	if t.IsZero() {
		return nil, nil
	}
	return string(t), nil
}

// Scan implements sql.Scanner for reading back time columns
func (t *TimeString) Scan(src interface{}) error {
	switch v := src.(type) {
	case nil:
		*t = ""
		return nil
	case string:
		*t = normalizeScanned(v)
		return nil
	case []byte:
		*t = normalizeScanned(string(v))
		return nil
	case time.Time:
		*t = NewTimeString(v)
		return nil
	default:
		return fmt.Errorf("cannot scan %T into TimeString", src)
	}
}

// normalizeScanned trims Postgres time values like "10:00:00" down to "HH:MM"
func normalizeScanned(s string) TimeString {
	if len(s) > 5 {
		s = s[:5]
	}
	return TimeString(s)
}
