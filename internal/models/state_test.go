package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseState(t *testing.T) {
	cases := map[string]State{
		"":         StateAll,
		"ALL":      StateAll,
		"all":      StateAll,
		"WAITING":  StateWaiting,
		"REJECTED": StateRejected,
		"PAST":     StatePast,
		"current":  StateCurrent,
		"FUTURE":   StateFuture,
	}
	for token, want := range cases {
		got, err := ParseState(token)
		require.NoError(t, err, token)
		assert.Equal(t, want, got, token)
	}

	_, err := ParseState("SOMETHING")
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "unknown state")
}

func TestStatePredicates(t *testing.T) {
	now := time.Now()
	past := &Booking{Start: now.Add(-48 * time.Hour), End: now.Add(-24 * time.Hour)}
	current := &Booking{Start: now.Add(-24 * time.Hour), End: now.Add(24 * time.Hour)}
	future := &Booking{Start: now.Add(24 * time.Hour), End: now.Add(48 * time.Hour)}

	assert.True(t, InPast(past, now))
	assert.False(t, InPast(current, now))
	assert.False(t, InPast(future, now))

	assert.False(t, InCurrent(past, now))
	assert.True(t, InCurrent(current, now))
	assert.False(t, InCurrent(future, now))

	// FUTURE matches anything still running, mirroring the end-based cut.
	assert.False(t, InFuture(past, now))
	assert.True(t, InFuture(current, now))
	assert.True(t, InFuture(future, now))
}

func TestStateMatches(t *testing.T) {
	now := time.Now()
	current := &Booking{Start: now.Add(-time.Hour), End: now.Add(time.Hour)}

	assert.True(t, StateCurrent.Matches(current, now))
	assert.False(t, StatePast.Matches(current, now))
	assert.True(t, StateFuture.Matches(current, now))

	assert.True(t, StateCurrent.IsTimeClassified())
	assert.False(t, StateWaiting.IsTimeClassified())
}
