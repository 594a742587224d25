package domain

import (
	"fmt"
	"sort"
	"time"

	"github.com/agendafacil/AF-SchedulingService/pkg/types"
)

// ShiftStatus represents the lifecycle status of a shift
type ShiftStatus string

const (
	ShiftStatusActive   ShiftStatus = "active"
	ShiftStatusInactive ShiftStatus = "inactive"
)

// Weekdays is a set of weekday numbers, 0 = Sunday through 6 = Saturday
type Weekdays []int

// Contains reports whether the set includes weekday d
func (w Weekdays) Contains(d int) bool {
	for _, v := range w {
		if v == d {
			return true
		}
	}
	return false
}

// Intersect returns the sorted intersection of two weekday sets
func (w Weekdays) Intersect(other Weekdays) Weekdays {
	result := make(Weekdays, 0)
	for _, d := range w {
		if other.Contains(d) && !result.Contains(d) {
			result = append(result, d)
		}
	}
	sort.Ints(result)
	return result
}

// Normalize returns the set sorted with duplicates removed
func (w Weekdays) Normalize() Weekdays {
	result := make(Weekdays, 0, len(w))
	for _, d := range w {
		if !result.Contains(d) {
			result = append(result, d)
		}
	}
	sort.Ints(result)
	return result
}

// Validate checks the set is non-empty and every value is 0-6
func (w Weekdays) Validate() error {
	if len(w) == 0 {
		return fmt.Errorf("weekdays must not be empty")
	}
	for _, d := range w {
		if d < 0 || d > 6 {
			return fmt.Errorf("weekday %d out of range 0-6", d)
		}
	}
	return nil
}

// Names returns the human-readable weekday names for the set
func (w Weekdays) Names() []string {
	names := make([]string, len(w))
	for i, d := range w {
		names[i] = WeekdayName(d)
	}
	return names
}

// WeekdayName returns the English weekday name for 0-6, matching
// time.Weekday numbering (0 = Sunday)
func WeekdayName(d int) string {
	if d < 0 || d > 6 {
		return fmt.Sprintf("weekday(%d)", d)
	}
	return time.Weekday(d).String()
}

// Shift is a named recurring availability window for an establishment
// or a single professional: the weekdays it covers and a same-day
// time-of-day range. Among active shifts of the same scope no two may
// share a weekday; activation is gated on that invariant, deactivation
// is always allowed.
type Shift struct {
	ID              int64
	EstablishmentID int64
	Scope           Scope
	Name            string
	Weekdays        Weekdays
	StartTime       types.TimeString
	EndTime         types.TimeString
	Status          ShiftStatus

	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsActive returns true if the shift participates in conflict checks
// and business-hours filtering
func (s *Shift) IsActive() bool {
	return s.Status == ShiftStatusActive
}

// CoversWeekday reports whether the shift applies on weekday d
func (s *Shift) CoversWeekday(d int) bool {
	return s.Weekdays.Contains(d)
}

// SameScope reports whether another shift competes in the same conflict
// domain: same establishment and equal scope
func (s *Shift) SameScope(other *Shift) bool {
	return s.EstablishmentID == other.EstablishmentID && s.Scope.Equal(other.Scope)
}

// Validate rejects malformed shifts before they reach storage or the
// conflict validator: empty or out-of-range weekdays, missing or
// inverted time window, bad scope. Fail-fast, no partial state.
func (s *Shift) Validate() error {
	if s.EstablishmentID <= 0 {
		return fmt.Errorf("establishment id must be positive")
	}
	if err := s.Scope.Validate(); err != nil {
		return err
	}
	if len(s.Name) > MaxShiftNameLength {
		return fmt.Errorf("name exceeds %d characters", MaxShiftNameLength)
	}
	if err := s.Weekdays.Validate(); err != nil {
		return err
	}
	if err := s.StartTime.Validate(); err != nil {
		return fmt.Errorf("start time: %v", err)
	}
	if err := s.EndTime.Validate(); err != nil {
		return fmt.Errorf("end time: %v", err)
	}
	if !s.StartTime.IsBefore(s.EndTime) {
		return fmt.Errorf("start time %s must be before end time %s", s.StartTime, s.EndTime)
	}
	switch s.Status {
	case ShiftStatusActive, ShiftStatusInactive:
	default:
		return fmt.Errorf("unknown shift status %q", s.Status)
	}
	return nil
}
