package punch

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testLoc = time.UTC

func at(day int, hour, min int) time.Time {
	return time.Date(2024, 3, day, hour, min, 0, 0, testLoc)
}

func ev(kind Kind, ts time.Time) Event {
	return Event{Timestamp: ts, Kind: kind}
}

func TestNormalize_SortsDefensively(t *testing.T) {
	events := []Event{
		ev(KindStopWork, at(4, 17, 0)),
		ev(KindStartWork, at(4, 9, 0)),
	}

	norm := Normalize(events, testLoc)

	require.Len(t, norm, 2)
	assert.Equal(t, KindStartWork, norm[0].Kind)
	assert.Equal(t, KindStopWork, norm[1].Kind)
	// Input must not be reordered in place.
	assert.Equal(t, KindStopWork, events[0].Kind)
}

func TestNormalize_UpgradesLegacyParity(t *testing.T) {
	// [IN, OUT, IN, OUT] on one day: first OUT starts the break, second OUT
	// ends the day.
	events := []Event{
		ev(KindPunchIn, at(4, 9, 0)),
		ev(KindPunchOut, at(4, 12, 0)),
		ev(KindPunchIn, at(4, 12, 30)),
		ev(KindPunchOut, at(4, 17, 0)),
	}

	norm := Normalize(events, testLoc)

	require.Len(t, norm, 4)
	assert.Equal(t, KindStartWork, norm[0].Kind)
	assert.Equal(t, KindStartBreak, norm[1].Kind)
	assert.Equal(t, KindStopBreak, norm[2].Kind)
	assert.Equal(t, KindStopWork, norm[3].Kind)
}

func TestNormalize_LegacyParityResetsPerDay(t *testing.T) {
	events := []Event{
		ev(KindPunchIn, at(4, 9, 0)),
		ev(KindPunchOut, at(4, 17, 0)),
		ev(KindPunchIn, at(5, 9, 0)),
	}

	norm := Normalize(events, testLoc)

	assert.Equal(t, KindStartWork, norm[0].Kind)
	assert.Equal(t, KindStartBreak, norm[1].Kind)
	assert.Equal(t, KindStartWork, norm[2].Kind)
}

func TestNormalize_OddLegacyCountLeavesPendingStart(t *testing.T) {
	events := []Event{
		ev(KindPunchIn, at(4, 9, 0)),
		ev(KindPunchOut, at(4, 12, 0)),
		ev(KindPunchIn, at(4, 12, 30)),
	}

	sessions := Reconstruct(Normalize(events, testLoc))

	require.Len(t, sessions, 1)
	assert.True(t, sessions[0].Open())
	require.Len(t, sessions[0].Breaks, 1)
	assert.Nil(t, sessions[0].Breaks[0].Stop)
}

func TestReconstruct_AlternatingPairsCloseCleanly(t *testing.T) {
	var events []Event
	for d := 4; d < 7; d++ {
		events = append(events,
			ev(KindStartWork, at(d, 9, 0)),
			ev(KindStopWork, at(d, 17, 0)),
		)
	}

	sessions := Reconstruct(Normalize(events, testLoc))

	require.Len(t, sessions, 3)
	for _, s := range sessions {
		assert.False(t, s.Open())
		assert.False(t, s.Unmatched)
	}
}

func TestReconstruct_DuplicateStartSurfacesUnmatched(t *testing.T) {
	events := []Event{
		ev(KindStartWork, at(4, 9, 0)),
		ev(KindStartWork, at(5, 9, 0)),
		ev(KindStopWork, at(5, 17, 0)),
	}

	sessions := Reconstruct(Normalize(events, testLoc))

	require.Len(t, sessions, 2)
	assert.True(t, sessions[0].Unmatched)
	assert.True(t, sessions[0].Open())
	assert.False(t, sessions[1].Unmatched)
	require.NotNil(t, sessions[1].Stop)
	assert.Equal(t, at(5, 17, 0), *sessions[1].Stop)
}

func TestReconstruct_OrphanStopsAreDropped(t *testing.T) {
	events := []Event{
		ev(KindStopWork, at(4, 8, 0)),
		ev(KindStopBreak, at(4, 8, 30)),
		ev(KindStartWork, at(4, 9, 0)),
		ev(KindStopWork, at(4, 17, 0)),
	}

	sessions := Reconstruct(Normalize(events, testLoc))

	require.Len(t, sessions, 1)
	assert.Equal(t, at(4, 9, 0), sessions[0].Start)
	assert.Empty(t, sessions[0].Breaks)
}

func TestReconstruct_EmptyLog(t *testing.T) {
	assert.Empty(t, Reconstruct(nil))
}

func TestReconstruct_StopWorkClosesOpenBreak(t *testing.T) {
	events := []Event{
		ev(KindStartWork, at(4, 9, 0)),
		ev(KindStartBreak, at(4, 12, 0)),
		ev(KindStopWork, at(4, 17, 0)),
	}

	sessions := Reconstruct(Normalize(events, testLoc))

	require.Len(t, sessions, 1)
	assert.False(t, sessions[0].Open())
	require.Len(t, sessions[0].Breaks, 1)
	assert.Nil(t, sessions[0].Breaks[0].Stop)
}

func TestSessionsInRange_CrossMidnightBelongsToStartDay(t *testing.T) {
	// Mon 22:00 - Tue 06:00.
	events := []Event{
		ev(KindStartWork, at(4, 22, 0)),
		ev(KindStopWork, at(5, 6, 0)),
	}

	monday := SessionsInRange(events, at(4, 0, 0), at(4, 23, 59), testLoc)
	tuesday := SessionsInRange(events, at(5, 0, 0), at(5, 23, 59), testLoc)

	require.Len(t, monday, 1)
	assert.Empty(t, tuesday)

	totals := RangeTotals(events, at(4, 0, 0), at(4, 23, 59), at(6, 12, 0), testLoc)
	assert.InDelta(t, 8.0, totals.WorkedHours, 1e-9)
}

func TestLiveState(t *testing.T) {
	tests := []struct {
		name    string
		events  []Event
		working bool
		onBreak bool
	}{
		{"empty log", nil, false, false},
		{"working", []Event{ev(KindStartWork, at(4, 9, 0))}, true, false},
		{"on break", []Event{
			ev(KindStartWork, at(4, 9, 0)),
			ev(KindStartBreak, at(4, 12, 0)),
		}, true, true},
		{"back from break", []Event{
			ev(KindStartWork, at(4, 9, 0)),
			ev(KindStartBreak, at(4, 12, 0)),
			ev(KindStopBreak, at(4, 12, 30)),
		}, true, false},
		{"idle after stop", []Event{
			ev(KindStartWork, at(4, 9, 0)),
			ev(KindStopWork, at(4, 17, 0)),
		}, false, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			st := LiveState(tt.events, testLoc)
			assert.Equal(t, tt.working, st.Working)
			assert.Equal(t, tt.onBreak, st.OnBreak)
		})
	}
}

func TestLiveState_LegacyLogNeedsReplay(t *testing.T) {
	// The second OUT of the day means end of work, not break start; the last
	// event alone cannot tell, parity can.
	events := []Event{
		ev(KindPunchIn, at(4, 9, 0)),
		ev(KindPunchOut, at(4, 12, 0)),
		ev(KindPunchIn, at(4, 12, 30)),
		ev(KindPunchOut, at(4, 17, 0)),
	}

	st := LiveState(events, testLoc)
	assert.False(t, st.Working)
	assert.False(t, st.OnBreak)

	onBreak := LiveState(events[:2], testLoc)
	assert.True(t, onBreak.Working)
	assert.True(t, onBreak.OnBreak)
}

func TestRangeTotals_PaidBreakInsideWorkedTime(t *testing.T) {
	// 09:00-17:00 with a half-hour break: 8h worked, 0.5h break, 1 break.
	events := []Event{
		ev(KindStartWork, at(4, 9, 0)),
		ev(KindStartBreak, at(4, 12, 0)),
		ev(KindStopBreak, at(4, 12, 30)),
		ev(KindStopWork, at(4, 17, 0)),
	}

	totals := RangeTotals(events, at(4, 0, 0), at(4, 23, 59), at(4, 18, 0), testLoc)

	assert.InDelta(t, 8.0, totals.WorkedHours, 1e-9)
	assert.InDelta(t, 0.5, totals.BreakHours, 1e-9)
	assert.Equal(t, 1, totals.BreakCount)
}

func TestRangeTotals_OpenSessionAccruesToNow(t *testing.T) {
	events := []Event{ev(KindStartWork, at(4, 9, 0))}

	totals := RangeTotals(events, at(4, 0, 0), at(4, 23, 59), at(4, 11, 0), testLoc)

	assert.InDelta(t, 2.0, totals.WorkedHours, 1e-9)
}

func TestRangeTotals_AbandonedSessionCappedAtRangeEnd(t *testing.T) {
	// Clock-in forgotten on day 4, queried days later: caps at end of range.
	events := []Event{ev(KindStartWork, at(4, 9, 0))}

	totals := RangeTotals(events, at(4, 0, 0), at(4, 23, 59), at(10, 12, 0), testLoc)

	assert.InDelta(t, at(4, 23, 59).Sub(at(4, 9, 0)).Hours(), totals.WorkedHours, 1e-9)
}

func TestRangeTotals_StopBeforeStartClampsToZero(t *testing.T) {
	stopFirst := []Event{
		{Timestamp: at(4, 9, 0), Kind: KindStartWork},
		{Timestamp: at(4, 9, 0).Add(-time.Hour), Kind: KindStopWork},
	}
	// The early stop sorts before the start and becomes an orphan; the start
	// stays open and is capped, never negative.
	totals := RangeTotals(stopFirst, at(4, 0, 0), at(4, 23, 59), at(4, 9, 0), testLoc)
	assert.GreaterOrEqual(t, totals.WorkedHours, 0.0)
}

func TestRangeTotals_CountsAttemptedBreaks(t *testing.T) {
	events := []Event{
		ev(KindStartWork, at(4, 9, 0)),
		ev(KindStartBreak, at(4, 10, 0)),
		ev(KindStartBreak, at(4, 11, 0)), // duplicate, abandons the first
		ev(KindStopBreak, at(4, 11, 15)),
		ev(KindStopWork, at(4, 17, 0)),
	}

	totals := RangeTotals(events, at(4, 0, 0), at(4, 23, 59), at(4, 18, 0), testLoc)

	assert.Equal(t, 2, totals.BreakCount)
	assert.InDelta(t, 0.25, totals.BreakHours, 1e-9)
}

func TestRangeTotals_Idempotent(t *testing.T) {
	events := []Event{
		ev(KindStartWork, at(4, 9, 0)),
		ev(KindStartBreak, at(4, 12, 0)),
		ev(KindStopBreak, at(4, 12, 30)),
		ev(KindStopWork, at(4, 17, 0)),
	}
	now := at(4, 18, 0)

	first := RangeTotals(events, at(4, 0, 0), at(4, 23, 59), now, testLoc)
	second := RangeTotals(events, at(4, 0, 0), at(4, 23, 59), now, testLoc)

	assert.Equal(t, first, second)
}

func TestDayBreakTotals_OpenBreakCappedAtDayEnd(t *testing.T) {
	events := []Event{
		ev(KindStartWork, at(4, 9, 0)),
		ev(KindStartBreak, at(4, 23, 0)),
	}

	hours, count := DayBreakTotals(events, at(4, 0, 0), at(6, 12, 0), testLoc)

	assert.Equal(t, 1, count)
	assert.InDelta(t, 1.0, hours, 1e-9)
}

func TestAnomalies_ForgottenWorkStart(t *testing.T) {
	events := []Event{ev(KindStartWork, at(4, 9, 0))}
	today := at(5, 10, 0)

	anomalies := Anomalies(events, today, testLoc)

	require.Len(t, anomalies, 1)
	assert.Equal(t, AnomalyWork, anomalies[0].Kind)
	assert.Equal(t, at(4, 0, 0), anomalies[0].Day)

	// The same log still reads as "working" live; the two outputs coexist.
	assert.True(t, LiveState(events, testLoc).Working)
}

func TestAnomalies_TodayOpenExcluded(t *testing.T) {
	events := []Event{ev(KindStartWork, at(4, 9, 0))}

	assert.Empty(t, Anomalies(events, at(4, 15, 0), testLoc))
}

func TestAnomalies_DuplicateClosedStartStillReported(t *testing.T) {
	events := []Event{
		ev(KindStartWork, at(4, 9, 0)),
		ev(KindStartWork, at(5, 9, 0)),
		ev(KindStopWork, at(5, 17, 0)),
	}

	anomalies := Anomalies(events, at(5, 18, 0), testLoc)

	require.Len(t, anomalies, 1)
	assert.Equal(t, at(4, 0, 0), anomalies[0].Day)
}

func TestAnomalies_ForgottenBreak(t *testing.T) {
	events := []Event{
		ev(KindStartWork, at(4, 9, 0)),
		ev(KindStartBreak, at(4, 12, 0)),
		ev(KindStopWork, at(4, 17, 0)),
	}

	anomalies := Anomalies(events, at(5, 9, 0), testLoc)

	require.Len(t, anomalies, 1)
	assert.Equal(t, AnomalyBreak, anomalies[0].Kind)
}

func TestEarnings_ClampsAtZero(t *testing.T) {
	assert.Equal(t, 120.0, Earnings(8, 15))
	assert.Equal(t, 0.0, Earnings(-1, 15))
}
