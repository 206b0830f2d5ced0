package punch

import "time"

// State is the live punch-clock status of one employee. LastAction and
// LastActionTime are zero values when the log is empty.
type State struct {
	Working        bool
	OnBreak        bool
	LastAction     Kind
	LastActionTime time.Time
}

// LiveState answers "what is this employee doing right now" from the full
// log. In the four-state model the most recent event alone determines the
// state; legacy logs are upgraded by Normalize first, so the positionally
// ambiguous OUT never reaches the mapping. An empty log yields the idle
// zero state, never an error.
func LiveState(events []Event, loc *time.Location) State {
	norm := Normalize(events, loc)
	if len(norm) == 0 {
		return State{}
	}

	last := norm[len(norm)-1]
	st := State{LastAction: last.Kind, LastActionTime: last.Timestamp}
	switch last.Kind {
	case KindStartWork, KindStopBreak:
		st.Working = true
	case KindStartBreak:
		st.Working = true
		st.OnBreak = true
	case KindStopWork:
		// idle
	}
	return st
}
