package models

import (
	"encoding/json"
	"fmt"
	"strings"
	"sync/atomic"
	"time"
)

// TimestampLayout matches the ISO-8601 form produced by browsers' Date.toISOString.
const TimestampLayout = "2006-01-02T15:04:05.000Z07:00"

// zone-less layouts are read in the local zone
var timestampLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05.999999999",
	"2006-01-02T15:04",
}

var localZone atomic.Pointer[time.Location]

// SetLocalZone sets the zone that zone-less timestamps are read in. It is the
// viewer zone: the server passes its chart time zone. nil restores time.Local.
func SetLocalZone(loc *time.Location) {
	localZone.Store(loc)
}

// LocalZone returns the zone set by SetLocalZone, time.Local by default.
func LocalZone() *time.Location {
	if loc := localZone.Load(); loc != nil {
		return loc
	}
	return time.Local
}

// Timestamp is a point in time serialized as an ISO-8601 string.
type Timestamp struct {
	time.Time
}

// NewTimestamp truncates t to milliseconds, the precision kept on the wire.
func NewTimestamp(t time.Time) Timestamp {
	return Timestamp{Time: t.UTC().Truncate(time.Millisecond)}
}

// ParseTimestamp accepts RFC 3339 and zone-less date-times, which are read in
// LocalZone.
func ParseTimestamp(s string) (Timestamp, error) {
	return ParseTimestampIn(s, LocalZone())
}

// ParseTimestampIn is ParseTimestamp with zone-less date-times read in loc.
func ParseTimestampIn(s string, loc *time.Location) (Timestamp, error) {
	s = strings.TrimSpace(s)
	for _, layout := range timestampLayouts {
		t, err := time.ParseInLocation(layout, s, loc)
		if err == nil {
			return NewTimestamp(t), nil
		}
	}

	return Timestamp{}, fmt.Errorf("invalid timestamp %q", s)
}

func (t Timestamp) String() string {
	return t.UTC().Format(TimestampLayout)
}

func (t Timestamp) MarshalJSON() ([]byte, error) {
	return json.Marshal(t.String())
}

func (t Timestamp) MarshalYAML() (interface{}, error) {
	return t.String(), nil
}

// UnmarshalJSON leaves t untouched on null.
func (t *Timestamp) UnmarshalJSON(b []byte) error {
	if string(b) == "null" {
		return nil
	}

	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return err
	}

	parsed, err := ParseTimestamp(s)
	if err != nil {
		return err
	}

	*t = parsed
	return nil
}
