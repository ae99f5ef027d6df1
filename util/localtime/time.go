package localtime

import "time"

// Now returns the current time; if a TimeSyncer is set, its offset against
// the time server is applied.
func Now() time.Time {
	syncerLock.RLock()
	defer syncerLock.RUnlock()

	if timeSyncer == nil {
		return time.Now()
	}

	return time.Now().Add(timeSyncer.Offset())
}

func UTCNow() time.Time {
	return Now().UTC()
}

// ParseRFC3339 parses RFC3339 string.
func ParseRFC3339(s string) (time.Time, error) {
	t, err := time.Parse(time.RFC3339Nano, s)
	if err != nil {
		return time.Time{}, err
	}

	return t, nil
}

// RFC3339 formats time.Time to RFC3339Nano string.
func RFC3339(t time.Time) string {
	return t.Format(time.RFC3339Nano)
}

// Normalize clears the nanoseconds part from Time and makes time to UTC.
// "2009-11-10T23:00:00.00101010Z" -> "2009-11-10T23:00:00.001Z",
func Normalize(t time.Time) time.Time {
	n := t.UTC()

	return time.Date(
		n.Year(),
		n.Month(),
		n.Day(),
		n.Hour(),
		n.Minute(),
		n.Second(),
		(n.Nanosecond()/1000000)*1000000,
		time.UTC,
	)
}

func String(t time.Time) string {
	return RFC3339(t)
}

func Equal(a, b time.Time) bool {
	return Normalize(a).Equal(Normalize(b))
}
