package utils

import (
	"fmt"
	"time"
)

// ValidateTimezone validates that the given timezone string is a valid IANA timezone name
func ValidateTimezone(timezone string) error {
	if timezone == "" {
		return fmt.Errorf("timezone cannot be empty")
	}

	if _, err := time.LoadLocation(timezone); err != nil {
		return fmt.Errorf("invalid timezone '%s': %w", timezone, err)
	}

	return nil
}

func IsValidTimezone(timezone string) bool {
	return ValidateTimezone(timezone) == nil
}

// Clock returns the current instant
type Clock func() time.Time

// NewClock returns a Clock reading the wall time in timezone. An empty
// timezone means UTC.
func NewClock(timezone string) (Clock, error) {
	if timezone == "" {
		timezone = "UTC"
	}
	if err := ValidateTimezone(timezone); err != nil {
		return nil, err
	}

	loc, _ := time.LoadLocation(timezone)
	return func() time.Time {
		return time.Now().In(loc)
	}, nil
}

// FixedClock always returns at
func FixedClock(at time.Time) Clock {
	return func() time.Time {
		return at
	}
}
