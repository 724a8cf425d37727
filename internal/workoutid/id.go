// Package workoutid derives the Hevy workout id of an imported activity.
// The id is a UUIDv4 drawn from a Mersenne Twister seeded with the activity
// start epoch, so importing the same activity twice always yields the same id.
package workoutid

import (
	"bytes"

	"github.com/google/uuid"
)

// FromSeed returns the deterministic workout id for the given seed.
func FromSeed(seed int64) uuid.UUID {
	bits := NewMT19937(seed).Bits128()
	id, err := uuid.NewRandomFromReader(bytes.NewReader(bits[:]))
	if err != nil {
		// reading 16 bytes from a 16 byte reader cannot fail
		panic(err)
	}
	return id
}

// ForStartTime returns the workout id string for an activity starting at startEpoch.
func ForStartTime(startEpoch int64) string {
	return FromSeed(startEpoch).String()
}
