package types

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// Time is a Unix epoch timestamp that can be unmarshalled from a JSON number
// or a quoted string. Seconds are expected, millisecond values are detected by
// length.
type Time time.Time

// UnmarshalJSON deserializes json timestamp information
func (t *Time) UnmarshalJSON(data []byte) error {
	s := string(data)

	switch s {
	case "null", "0", `""`, `"0"`:
		*t = Time(time.Time{})
		return nil
	}

	s = strings.Trim(s, `"`)
	if i := strings.IndexByte(s, '.'); i != -1 {
		s = s[:i]
	}

	standard, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return fmt.Errorf("cannot unmarshal %s into Time: %w", string(data), err)
	}

	switch {
	case len(s) <= 10:
		*t = Time(time.Unix(standard, 0))
	case len(s) == 13:
		*t = Time(time.UnixMilli(standard))
	default:
		return fmt.Errorf("cannot unmarshal %s into Time", string(data))
	}
	return nil
}

// MarshalJSON serializes the time as Unix seconds
func (t Time) MarshalJSON() ([]byte, error) {
	if t.Time().IsZero() {
		return []byte("0"), nil
	}
	return []byte(strconv.FormatInt(t.Unix(), 10)), nil
}

// Time represents a time instance.
func (t Time) Time() time.Time { return time.Time(t) }

// Unix returns the raw epoch seconds, zero when unset
func (t Time) Unix() int64 {
	if t.Time().IsZero() {
		return 0
	}
	return t.Time().Unix()
}

// Local returns the timestamp in the local time zone
func (t Time) Local() time.Time { return t.Time().Local() }

// String returns a string representation of the time.
func (t Time) String() string {
	return t.Time().String()
}
