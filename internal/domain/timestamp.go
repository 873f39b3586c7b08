package domain

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"
)

// WireLayout is the backend's literal timestamp format, MM/DD/YYYY HH:mm:ss.
const WireLayout = "01/02/2006 15:04:05"

// Timestamp carries a time.Time across the JSON boundary in WireLayout.
// The zero value encodes as an empty string.
type Timestamp struct {
	time.Time
}

// NewTimestamp truncates t to whole seconds, the wire resolution.
func NewTimestamp(t time.Time) Timestamp {
	return Timestamp{Time: t.Truncate(time.Second)}
}

// ParseTimestamp accepts WireLayout and, for lenience, RFC 3339.
func ParseTimestamp(s string) (Timestamp, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return Timestamp{}, nil
	}
	if t, err := time.ParseInLocation(WireLayout, s, time.Local); err == nil {
		return Timestamp{Time: t}, nil
	}
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return Timestamp{Time: t}, nil
	}
	return Timestamp{}, fmt.Errorf("timestamp: unrecognized format %q", s)
}

// Wire formats the timestamp for the backend.
func (ts Timestamp) Wire() string {
	if ts.IsZero() {
		return ""
	}
	return ts.Time.Format(WireLayout)
}

func (ts Timestamp) MarshalJSON() ([]byte, error) {
	return json.Marshal(ts.Wire())
}

func (ts *Timestamp) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		*ts = Timestamp{}
		return nil
	}
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return fmt.Errorf("timestamp: %w", err)
	}
	parsed, err := ParseTimestamp(s)
	if err != nil {
		return err
	}
	*ts = parsed
	return nil
}
