package models

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"strings"
)

// DelimitedList is stored as a comma-separated string and exposed as a
// JSON array.
type DelimitedList []string

func ParseDelimited(s string) DelimitedList {
	out := DelimitedList{}
	for _, part := range strings.Split(s, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}

func (l DelimitedList) String() string {
	return strings.Join(l, ",")
}

func (l DelimitedList) Value() (driver.Value, error) {
	return l.String(), nil
}

func (l *DelimitedList) Scan(src any) error {
	switch v := src.(type) {
	case nil:
		*l = DelimitedList{}
	case string:
		*l = ParseDelimited(v)
	case []byte:
		*l = ParseDelimited(string(v))
	default:
		return fmt.Errorf("models: cannot scan %T into DelimitedList", src)
	}
	return nil
}

func (l DelimitedList) MarshalJSON() ([]byte, error) {
	if l == nil {
		return []byte("[]"), nil
	}
	return json.Marshal([]string(l))
}

// UnmarshalJSON accepts either an array or a comma-separated string.
func (l *DelimitedList) UnmarshalJSON(b []byte) error {
	var arr []string
	if err := json.Unmarshal(b, &arr); err == nil {
		out := DelimitedList{}
		for _, s := range arr {
			if s = strings.TrimSpace(s); s != "" {
				out = append(out, s)
			}
		}
		*l = out
		return nil
	}
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return fmt.Errorf("models: list must be an array or a string")
	}
	*l = ParseDelimited(s)
	return nil
}
