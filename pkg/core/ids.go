package core

import (
	"strconv"
	"time"

	"github.com/google/uuid"
)

// Clock returns the current time.
type Clock func() time.Time

// IDGenerator produces entity IDs.
type IDGenerator func() string

// TimestampIDs generates IDs from the millisecond timestamp of clock.
// Two IDs requested within the same millisecond collide.
func TimestampIDs(clock Clock) IDGenerator {
	if clock == nil {
		clock = time.Now
	}
	return func() string {
		return strconv.FormatInt(clock().UnixMilli(), 10)
	}
}

// UUIDs generates random version 4 UUIDs.
func UUIDs() IDGenerator {
	return uuid.NewString
}
