package models

import (
	"fmt"
	"strings"
	"time"
)

// State is the rental state filter used when listing bookings.
type State string

const (
	StateAll      State = "ALL"
	StateWaiting  State = "WAITING"
	StateRejected State = "REJECTED"
	StatePast     State = "PAST"
	StateCurrent  State = "CURRENT"
	StateFuture   State = "FUTURE"
)

// ParseState maps a raw filter token to a State. An empty token means ALL.
func ParseState(token string) (State, error) {
	if strings.TrimSpace(token) == "" {
		return StateAll, nil
	}
	switch State(strings.ToUpper(token)) {
	case StateAll:
		return StateAll, nil
	case StateWaiting:
		return StateWaiting, nil
	case StateRejected:
		return StateRejected, nil
	case StatePast:
		return StatePast, nil
	case StateCurrent:
		return StateCurrent, nil
	case StateFuture:
		return StateFuture, nil
	default:
		return "", fmt.Errorf("unknown state: %s", token)
	}
}

// IsTimeClassified reports whether the filter is applied by comparing the
// booking period against the current time rather than by status.
func (s State) IsTimeClassified() bool {
	return s == StatePast || s == StateCurrent || s == StateFuture
}

func InPast(b *Booking, now time.Time) bool {
	return b.End.Before(now)
}

func InCurrent(b *Booking, now time.Time) bool {
	return b.Start.Before(now) && b.End.After(now)
}

func InFuture(b *Booking, now time.Time) bool {
	return b.End.After(now)
}

// Matches applies the time classification for PAST, CURRENT and FUTURE.
// Status-backed filters never reach this path.
func (s State) Matches(b *Booking, now time.Time) bool {
	switch s {
	case StatePast:
		return InPast(b, now)
	case StateCurrent:
		return InCurrent(b, now)
	case StateFuture:
		return InFuture(b, now)
	default:
		return true
	}
}
