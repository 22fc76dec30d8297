package api

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// Number is a numeric field that tolerates the backend's historical schemas:
// it decodes from a JSON number, a numeric string, or null.
type Number string

// UnmarshalJSON accepts `42`, `"42"`, and `null`.
func (n *Number) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || string(data) == "null" {
		*n = ""
		return nil
	}
	if data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return fmt.Errorf("numeric string: %w", err)
		}
		*n = Number(s)
		return nil
	}
	var num json.Number
	if err := json.Unmarshal(data, &num); err != nil {
		return fmt.Errorf("numeric value: %w", err)
	}
	*n = Number(num)
	return nil
}

// MarshalJSON writes the value back as a JSON number, or null when unset.
// Non-numeric content — the decoder accepts any quoted string — goes back
// out as a string so a re-marshaled record stays valid JSON.
func (n Number) MarshalJSON() ([]byte, error) {
	if n == "" {
		return []byte("null"), nil
	}
	var check json.Number
	if err := json.Unmarshal([]byte(n), &check); err != nil {
		return json.Marshal(string(n))
	}
	return []byte(n), nil
}

func (n Number) String() string { return string(n) }
