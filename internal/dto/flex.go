// Package dto turns tolerant request bodies into canonical inputs. Each
// endpoint normalizes once here and business code only sees the result.
package dto

import (
	"bytes"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/goccy/go-json"
)

// FlexInt accepts a JSON number or a numeric string. Fractions are
// truncated; an empty string is zero.
type FlexInt int64

func (n *FlexInt) UnmarshalJSON(b []byte) error {
	f, err := parseFlexNumber(b)
	if err != nil {
		return err
	}
	*n = FlexInt(math.Trunc(f))
	return nil
}

func (n *FlexInt) Int() int {
	if n == nil {
		return 0
	}
	return int(*n)
}

func (n *FlexInt) Uint() uint {
	if n == nil || *n < 0 {
		return 0
	}
	return uint(*n)
}

// FlexFloat keeps fractions so callers can reject non-integers.
type FlexFloat float64

func (n *FlexFloat) UnmarshalJSON(b []byte) error {
	f, err := parseFlexNumber(b)
	if err != nil {
		return err
	}
	*n = FlexFloat(f)
	return nil
}

// FlexBool accepts true/false, 1/0 and their string forms.
type FlexBool bool

func (v *FlexBool) UnmarshalJSON(b []byte) error {
	s := strings.Trim(strings.TrimSpace(string(b)), `"`)
	switch strings.ToLower(s) {
	case "true", "1":
		*v = true
	case "false", "0", "", "null":
		*v = false
	default:
		return fmt.Errorf("invalid boolean %s", b)
	}
	return nil
}

func parseFlexNumber(b []byte) (float64, error) {
	b = bytes.TrimSpace(b)
	if len(b) == 0 || string(b) == "null" {
		return 0, nil
	}
	if b[0] == '"' {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return 0, err
		}
		s = strings.TrimSpace(s)
		if s == "" {
			return 0, nil
		}
		return strconv.ParseFloat(s, 64)
	}
	var f float64
	if err := json.Unmarshal(b, &f); err != nil {
		return 0, fmt.Errorf("invalid number %s", b)
	}
	return f, nil
}

func firstInt(vals ...*FlexInt) *FlexInt {
	for _, v := range vals {
		if v != nil && *v != 0 {
			return v
		}
	}
	return nil
}

func firstBool(vals ...*FlexBool) *FlexBool {
	for _, v := range vals {
		if v != nil {
			return v
		}
	}
	return nil
}

func firstString(vals ...string) string {
	for _, v := range vals {
		if s := strings.TrimSpace(v); s != "" {
			return s
		}
	}
	return ""
}

func uintPtr(id uint) *uint {
	if id == 0 {
		return nil
	}
	return &id
}
