package types

import (
	"fmt"
	"strconv"
)

// Bool is a boolean that can be unmarshalled from either a JSON bool or a
// quoted string such as "true".
type Bool bool

// UnmarshalJSON deserializes a bool or a quoted bool
func (b *Bool) UnmarshalJSON(data []byte) error {
	s := string(data)
	switch s {
	case "null", `""`:
		*b = false
		return nil
	}
	if s[0] == '"' {
		s = s[1 : len(s)-1]
	}
	v, err := strconv.ParseBool(s)
	if err != nil {
		return fmt.Errorf("cannot unmarshal %s into Bool: %w", string(data), err)
	}
	*b = Bool(v)
	return nil
}

// MarshalJSON serializes as a JSON bool
func (b Bool) MarshalJSON() ([]byte, error) {
	return []byte(strconv.FormatBool(bool(b))), nil
}
