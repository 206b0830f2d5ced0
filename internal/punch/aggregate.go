package punch

import "time"

// Totals are aggregate hours over a day or a date range.
type Totals struct {
	WorkedHours float64
	BreakHours  float64
	BreakCount  int
}

// RangeTotals computes worked hours, break hours and break count for
// sessions starting within [from, to], both bounds inclusive. Callers that
// hold date-only bounds are expected to pass to as the end of its day.
//
// Worked hours sum (stop ?? now) - start per session, so paid breaks stay
// inside worked time. An open session accrues up to now, capped at the range
// end so an abandoned clock-in on a past day cannot grow without bound. A
// stop before its paired start contributes zero rather than a negative
// duration.
//
// Break hours and count come from the day-bucketed pairing (see
// DayBreakTotals), not from the nested session breaks.
func RangeTotals(events []Event, from, to, now time.Time, loc *time.Location) Totals {
	norm := Normalize(events, loc)

	var totals Totals
	for _, s := range Reconstruct(norm) {
		if s.Start.Before(from) || s.Start.After(to) {
			continue
		}
		end := now
		if s.Stop != nil {
			end = *s.Stop
		} else if end.After(to) {
			end = to
		}
		if end.After(s.Start) {
			totals.WorkedHours += end.Sub(s.Start).Hours()
		}
	}

	for day := DayStart(from, loc); !day.After(to); day = day.AddDate(0, 0, 1) {
		hours, count := dayBreaks(norm, day, now, loc)
		totals.BreakHours += hours
		totals.BreakCount += count
	}
	return totals
}

// DayBreakTotals pairs StartBreak/StopBreak events bucketed to a single
// calendar day, ignoring session boundaries. Per-day breakdown rows have
// always been reported from this simpler pairing; around cross-midnight
// sessions it can disagree slightly with the session-nested breaks of
// Reconstruct, and that divergence is a documented property of the report,
// not a defect to reconcile.
func DayBreakTotals(events []Event, day, now time.Time, loc *time.Location) (hours float64, count int) {
	return dayBreaks(Normalize(events, loc), day, now, loc)
}

func dayBreaks(norm []Event, day, now time.Time, loc *time.Location) (hours float64, count int) {
	start := DayStart(day, loc)
	end := start.AddDate(0, 0, 1)

	var pending *time.Time
	for _, ev := range norm {
		if ev.Timestamp.Before(start) || !ev.Timestamp.Before(end) {
			continue
		}
		switch ev.Kind {
		case KindStartBreak:
			// Counts attempted breaks, completed or not. A duplicate start
			// abandons the prior pending one.
			count++
			ts := ev.Timestamp
			pending = &ts
		case KindStopBreak:
			if pending == nil {
				continue // orphan, dropped like an orphan StopWork
			}
			if ev.Timestamp.After(*pending) {
				hours += ev.Timestamp.Sub(*pending).Hours()
			}
			pending = nil
		}
	}

	if pending != nil {
		cap := end
		if now.Before(end) {
			cap = now
		}
		if cap.After(*pending) {
			hours += cap.Sub(*pending).Hours()
		}
	}
	return hours, count
}

// Earnings converts worked hours to money, clamped at zero.
func Earnings(workedHours, hourlyRate float64) float64 {
	amount := workedHours * hourlyRate
	if amount < 0 {
		return 0
	}
	return amount
}
