package punch

import "time"

// Break is a paid pause nested inside a work session. Stop is nil while the
// break is still open or was never closed.
type Break struct {
	Start time.Time
	Stop  *time.Time
}

// Session is a reconstructed interval of continuous paid work. Stop is nil
// while the session is open. Unmatched marks a session that was force-closed
// by a later duplicate start and never saw its own stop.
type Session struct {
	Start     time.Time
	Stop      *time.Time
	Breaks    []Break
	Unmatched bool
}

// Open reports whether the session has no stop event.
func (s Session) Open() bool {
	return s.Stop == nil
}

// Reconstruct pairs normalized events into sessions with nested breaks.
//
// Pairing rules: a StartWork while another session is pending closes the
// pending one as unmatched and opens a new session (starts never stack, the
// older anomaly is surfaced, not dropped). A StopWork with no pending start
// is an orphan and is skipped. Breaks follow the same rules with their own
// pending pointer and never close the surrounding work session; a StopWork
// while a break is open closes both, which matches the lenient transition
// the legacy displays accepted. A trailing pending start is returned as the
// final, open session.
//
// Events must already be normalized; callers that hold a raw log should go
// through Normalize first.
func Reconstruct(events []Event) []Session {
	var (
		sessions []Session
		open     *Session
		openBr   *Break
	)

	flushBreak := func() {
		if openBr != nil && open != nil {
			open.Breaks = append(open.Breaks, *openBr)
		}
		openBr = nil
	}

	for _, ev := range events {
		switch ev.Kind {
		case KindStartWork:
			if open != nil {
				flushBreak()
				open.Unmatched = true
				sessions = append(sessions, *open)
			}
			open = &Session{Start: ev.Timestamp}
		case KindStopWork:
			if open == nil {
				continue // orphan stop
			}
			flushBreak()
			stop := ev.Timestamp
			open.Stop = &stop
			sessions = append(sessions, *open)
			open = nil
		case KindStartBreak:
			if open == nil {
				continue // break outside any session
			}
			flushBreak()
			openBr = &Break{Start: ev.Timestamp}
		case KindStopBreak:
			if openBr == nil {
				continue // orphan break stop
			}
			stop := ev.Timestamp
			openBr.Stop = &stop
			flushBreak()
		}
	}

	if open != nil {
		flushBreak()
		sessions = append(sessions, *open)
	}
	return sessions
}

// SessionsInRange reconstructs the full log and keeps the sessions whose
// start falls within [from, to]. The filter applies to the session start
// only: a session that starts before midnight and stops the next day belongs
// to the start day, its stop is simply displayed under the next day.
func SessionsInRange(events []Event, from, to time.Time, loc *time.Location) []Session {
	var out []Session
	for _, s := range Reconstruct(Normalize(events, loc)) {
		if s.Start.Before(from) || s.Start.After(to) {
			continue
		}
		out = append(out, s)
	}
	return out
}
