// Package walltime holds timestamps that carry a date and a time of day but
// no zone, the form task due dates and schedule times are entered in.
package walltime

import (
	"encoding/json"
	"fmt"
	"time"
)

// Layout is the text form callers supply, e.g. "2024-01-15 09:00:00".
const Layout = "2006-01-02 15:04:05"

const (
	encodeLayout = "2006-01-02T15:04:05.999999999"
	decodeLayout = "2006-01-02T15:04:05"
)

// Time is a zone-less timestamp. The wall clock fields live in a UTC
// time.Time so two values compare equal with == when they name the same
// instant on the wall.
type Time struct {
	time.Time
}

// Parse reads s in Layout.
func Parse(s string) (Time, error) {
	t, err := time.ParseInLocation(Layout, s, time.UTC)
	if err != nil {
		return Time{}, err
	}
	return Time{Time: t}, nil
}

// MustParse is Parse for literals known to be valid.
func MustParse(s string) Time {
	t, err := Parse(s)
	if err != nil {
		panic(err)
	}
	return t
}

// ParseOptional returns nil when s is nil or does not parse in Layout.
func ParseOptional(s *string) *Time {
	if s == nil {
		return nil
	}
	t, err := Parse(*s)
	if err != nil {
		return nil
	}
	return &t
}

// Clone returns a fresh pointer holding the same value, or nil.
func Clone(t *Time) *Time {
	if t == nil {
		return nil
	}
	cp := *t
	return &cp
}

// String formats t in Layout.
func (t Time) String() string {
	return t.Format(Layout)
}

// MarshalJSON writes the ISO form without an offset, e.g. "2024-01-15T09:00:00".
func (t Time) MarshalJSON() ([]byte, error) {
	return json.Marshal(t.Format(encodeLayout))
}

// UnmarshalJSON accepts the ISO form, with or without fractional seconds,
// and Layout.
func (t *Time) UnmarshalJSON(b []byte) error {
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return fmt.Errorf("walltime: %w", err)
	}
	for _, layout := range []string{decodeLayout, Layout} {
		if p, err := time.ParseInLocation(layout, s, time.UTC); err == nil {
			t.Time = p
			return nil
		}
	}
	return fmt.Errorf("walltime: cannot parse %q", s)
}
