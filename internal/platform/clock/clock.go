// Package clock abstracts time so records and transcripts get deterministic
// stamps under test.
package clock

import "time"

// Clock yields the current instant. Adapters stamp domain objects with it;
// tests substitute a fixed implementation.
type Clock interface {
	Now() time.Time
}

// SystemClock reads the wall clock in UTC.
type SystemClock struct{}

func (SystemClock) Now() time.Time {
	return time.Now().UTC()
}
