package timezone

import "time"

const DefaultTimezone = "UTC"

// Clock returns the current time. Use cases take one so tests can pin it.
type Clock func() time.Time

func IsValid(tz string) bool {
	if tz == "" {
		return false
	}
	_, err := time.LoadLocation(tz)
	return err == nil
}

func Location(tz string) *time.Location {
	if IsValid(tz) {
		if loc, err := time.LoadLocation(tz); err == nil {
			return loc
		}
	}
	return time.UTC
}

// SystemClock reports wall-clock time in the given zone.
func SystemClock(tz string) Clock {
	loc := Location(tz)
	return func() time.Time {
		return time.Now().In(loc)
	}
}

// Fixed always reports t.
func Fixed(t time.Time) Clock {
	return func() time.Time { return t }
}
