package cjson

import (
	"time"

	"github.com/ncruces/go-strftime"
)

// TemporalKind distinguishes the three host calendar/clock shapes the
// encoder knows how to format (§3 Temporal, §4.5, §4.7 step 10).
type TemporalKind int

const (
	// KindDateTime is checked first in dispatch, since a datetime often
	// derives from a date (§4.7 step 10 ordering note).
	KindDateTime TemporalKind = iota
	KindDate
	KindTime
)

// Temporal is the capability interface a host value implements to be
// formatted as a JSON string via a strftime-style pattern, replacing the
// C source's reliance on a `datetime` module with `.strftime()` methods
// (§6 "external calendar/clock library").
type Temporal interface {
	TemporalKind() TemporalKind
	Time() time.Time
}

// DateTime wraps a time.Time that should format with the datetime pattern.
type DateTime struct{ T time.Time }

// TemporalKind implements Temporal.
func (d DateTime) TemporalKind() TemporalKind { return KindDateTime }

// Time implements Temporal.
func (d DateTime) Time() time.Time { return d.T }

// Date wraps a time.Time that should format with the date-only pattern.
type Date struct{ T time.Time }

// TemporalKind implements Temporal.
func (d Date) TemporalKind() TemporalKind { return KindDate }

// Time implements Temporal.
func (d Date) Time() time.Time { return d.T }

// Clock wraps a time.Time that should format with the time-only pattern.
// Named Clock rather than Time to avoid colliding with the time.Time
// method of the same name on the interface.
type Clock struct{ T time.Time }

// TemporalKind implements Temporal.
func (c Clock) TemporalKind() TemporalKind { return KindTime }

// Time implements Temporal.
func (c Clock) Time() time.Time { return c.T }

// formatTemporal renders t using the strftime-style pattern (§4.5).
// strftime.Format reports no errors, so the only EncodeError returned here
// is for an unknown TemporalKind.
func formatTemporal(t Temporal, cfg *encodeConfig) (string, error) {
	var pattern string
	switch t.TemporalKind() {
	case KindDateTime:
		pattern = cfg.fmtDateTime
	case KindDate:
		pattern = cfg.fmtDate
	case KindTime:
		pattern = cfg.fmtTime
	default:
		return "", newEncodeErr("unknown temporal kind")
	}
	out := strftime.Format(pattern, t.Time())
	return out, nil
}
