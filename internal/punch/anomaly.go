package punch

import "time"

// Anomaly is a work or break start with no matching stop anywhere later in
// the log, on a day before today. These are first-class report output for
// human review, never errors.
type Anomaly struct {
	Kind  string // "work" or "break"
	Day   time.Time
	Start time.Time
}

const (
	AnomalyWork  = "work"
	AnomalyBreak = "break"
)

// Anomalies replays the full log and reports forgotten stops: every
// unmatched work or break start from a day before today. That covers both a
// trailing open session and one force-closed by a later duplicate start.
// Opens from today itself are excluded, the employee may still legitimately
// be mid-session.
func Anomalies(events []Event, today time.Time, loc *time.Location) []Anomaly {
	todayDay := DayStart(today, loc)

	var out []Anomaly
	for _, s := range Reconstruct(Normalize(events, loc)) {
		if s.Open() || s.Unmatched {
			if day := DayStart(s.Start, loc); day.Before(todayDay) {
				out = append(out, Anomaly{Kind: AnomalyWork, Day: day, Start: s.Start})
			}
		}
		for _, b := range s.Breaks {
			if b.Stop != nil {
				continue
			}
			if day := DayStart(b.Start, loc); day.Before(todayDay) {
				out = append(out, Anomaly{Kind: AnomalyBreak, Day: day, Start: b.Start})
			}
		}
	}
	return out
}
