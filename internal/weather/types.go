package weather

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"
)

// Reading is a measured value kept in its display form. The refresher
// sends numbers for live data and strings such as "N/A" or "60 - 72".
type Reading string

// UnmarshalJSON accepts a JSON number, string or null.
func (r *Reading) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		*r = ""
		return nil
	}

	if data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*r = Reading(strings.TrimSpace(s))
		return nil
	}

	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return fmt.Errorf("reading: %w", err)
	}
	*r = Reading(n.String())
	return nil
}

// String returns the display text, "N/A" when the reading is missing.
func (r Reading) String() string {
	if r == "" {
		return "N/A"
	}
	return string(r)
}

// Snapshot is one complete weather record. Each render replaces every
// displayed value; State, Country, Icon and Description are optional.
type Snapshot struct {
	City        string  `json:"city"`
	State       string  `json:"state,omitempty"`
	Country     string  `json:"country,omitempty"`
	Icon        string  `json:"icon,omitempty"`
	Description string  `json:"description,omitempty"`
	Feel        Reading `json:"feel"`
	Temp        Reading `json:"temp"`
	Humid       Reading `json:"humid"`
	Clouds      Reading `json:"clouds"`
	Wind        string  `json:"wind"`
}
