package tznorm

import "time"

// Normalizer converts between the server timestamp convention used for
// persisted instants and the display (salon-local) convention used for
// every user-facing comparison: weekday selection, business-hours
// windows and candidate time matching.
//
// The server stores instants at a fixed offset behind display time, so
// reading applies a constant forward shift and writing applies the same
// constant shift backwards. The offset is configuration, applied
// uniformly year-round; this is deliberately not calendar-aware DST
// logic. All code must go through this type - mixing a raw server
// instant with a display instant is a programming error.
type Normalizer struct {
	offset time.Duration
}

// New creates a Normalizer with the given display offset in hours.
// A positive value means display time runs ahead of server time.
func New(displayOffsetHours int) *Normalizer {
	return &Normalizer{offset: time.Duration(displayOffsetHours) * time.Hour}
}

// ToDisplay converts a stored server instant to display time
func (n *Normalizer) ToDisplay(serverInstant time.Time) time.Time {
	return serverInstant.Add(n.offset)
}

// ToServer converts a display instant back to the storage convention.
// ToServer(ToDisplay(x)) == x holds for every instant.
func (n *Normalizer) ToServer(localInstant time.Time) time.Time {
	return localInstant.Add(-n.offset)
}

// Offset returns the configured display offset
func (n *Normalizer) Offset() time.Duration {
	return n.offset
}
