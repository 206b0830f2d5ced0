// Package punch derives work sessions, live status, hour totals and
// forgotten-stop anomalies from an employee's raw punch event log. Every
// function here is a pure computation over the snapshot passed in: no I/O,
// no clock reads, no mutation of the input slice. Callers inject "now".
package punch

import (
	"sort"
	"time"
)

// Kind identifies a punch event type.
type Kind string

const (
	KindStartWork  Kind = "START_WORK"
	KindStartBreak Kind = "START_BREAK"
	KindStopBreak  Kind = "STOP_BREAK"
	KindStopWork   Kind = "STOP_WORK"

	// Legacy two-state kinds. Logs written before the four-state model only
	// distinguish IN and OUT; Normalize upgrades them once, at the entry
	// point, so no derivation ever branches on the log version.
	KindPunchIn  Kind = "IN"
	KindPunchOut Kind = "OUT"
)

// Valid reports whether k is a known event kind, legacy kinds included.
func (k Kind) Valid() bool {
	switch k {
	case KindStartWork, KindStartBreak, KindStopBreak, KindStopWork, KindPunchIn, KindPunchOut:
		return true
	}
	return false
}

// IsLegacy reports whether k belongs to the two-state model.
func (k Kind) IsLegacy() bool {
	return k == KindPunchIn || k == KindPunchOut
}

// Event is a single timestamped punch action in an employee's log.
type Event struct {
	ID        string
	Timestamp time.Time
	Kind      Kind
}

// legacyUpgrade maps the position of a legacy event within its day (mod 4)
// to the explicit four-state kind. Odd positions are IN punches, even
// positions OUT punches; the first OUT of a cycle starts a break, the
// second ends the work day.
var legacyUpgrade = [4]Kind{KindStartWork, KindStartBreak, KindStopBreak, KindStopWork}

// Normalize returns a copy of events sorted chronologically with legacy
// two-state kinds upgraded to the four-state model. Insertion order is
// assumed chronological but never trusted; every derivation in this package
// starts from a Normalize pass.
//
// The upgrade applies the positional rule per calendar day in loc, counting
// legacy events only. An odd trailing count leaves the final event in
// whatever role its parity implies, which downstream code treats as a
// pending start.
func Normalize(events []Event, loc *time.Location) []Event {
	out := make([]Event, len(events))
	copy(out, events)
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Timestamp.Before(out[j].Timestamp)
	})

	day := ""
	pos := 0
	for i := range out {
		if !out[i].Kind.IsLegacy() {
			continue
		}
		d := out[i].Timestamp.In(loc).Format("2006-01-02")
		if d != day {
			day = d
			pos = 0
		}
		out[i].Kind = legacyUpgrade[pos%4]
		pos++
	}
	return out
}

// DayStart returns midnight of t's calendar day in loc.
func DayStart(t time.Time, loc *time.Location) time.Time {
	local := t.In(loc)
	return time.Date(local.Year(), local.Month(), local.Day(), 0, 0, 0, 0, loc)
}
