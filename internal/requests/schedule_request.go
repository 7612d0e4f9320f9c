package requests

import (
	"bytes"
	"encoding/json"
	"strconv"
	"strings"
)

// Value holds a numeric field exactly as the caller typed it. It accepts a
// JSON number, a JSON string or null, so malformed input reaches the
// engine's normalization instead of failing the whole request.
type Value string

func (v *Value) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		*v = ""
		return nil
	}
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*v = Value(s)
		return nil
	}
	*v = Value(data)
	return nil
}

func (v Value) MarshalJSON() ([]byte, error) {
	return json.Marshal(string(v))
}

// MaxValue bounds every parsed number. Larger magnitudes are malformed.
const MaxValue = 1_000_000_000

// Int reads an optional sign and the leading run of decimal digits, so
// "2.7" is 2, "5ms" is 5 and "1e3" is 1. Input without a leading digit, or
// whose magnitude exceeds MaxValue, reports ok=false.
func (v Value) Int() (n int, ok bool) {
	s := strings.TrimSpace(string(v))
	negative := false
	if s != "" && (s[0] == '+' || s[0] == '-') {
		negative = s[0] == '-'
		s = s[1:]
	}

	digits := 0
	for digits < len(s) && s[digits] >= '0' && s[digits] <= '9' {
		n = n*10 + int(s[digits]-'0')
		if n > MaxValue {
			return 0, false
		}
		digits++
	}
	if digits == 0 {
		return 0, false
	}
	if negative {
		n = -n
	}
	return n, true
}

// IntOr parses the value, returning fallback when it is not a number.
func (v Value) IntOr(fallback int) int {
	if n, ok := v.Int(); ok {
		return n
	}
	return fallback
}

// Number builds a Value from an int.
func Number(n int) Value {
	return Value(strconv.Itoa(n))
}

type Job struct {
	ProcessId   string `json:"process_id"`
	BurstTime   Value  `json:"burst_time"`
	ArrivalTime Value  `json:"arrival_time"`
	Priority    Value  `json:"priority"`
}

type ScheduleRequests struct {
	Jobs        []Job `json:"jobs"`
	TimeQuantum Value `json:"time_quantum"`
}
