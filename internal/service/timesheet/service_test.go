package timesheet

import (
	"context"
	"testing"
	"time"

	"github.com/punchclock-hq/punchclock-backend/internal/domain/employee"
	"github.com/punchclock-hq/punchclock-backend/internal/domain/timesheet"
	"github.com/punchclock-hq/punchclock-backend/internal/punch"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeEmployeeRepo struct {
	employees map[string]employee.Employee
	earned    map[string]float64
}

func newFakeEmployeeRepo(emps ...employee.Employee) *fakeEmployeeRepo {
	f := &fakeEmployeeRepo{
		employees: make(map[string]employee.Employee),
		earned:    make(map[string]float64),
	}
	for _, emp := range emps {
		f.employees[emp.ID] = emp
	}
	return f
}

func (f *fakeEmployeeRepo) Create(ctx context.Context, emp employee.Employee) (employee.Employee, error) {
	f.employees[emp.ID] = emp
	return emp, nil
}

func (f *fakeEmployeeRepo) GetByID(ctx context.Context, id string) (employee.Employee, error) {
	emp, ok := f.employees[id]
	if !ok {
		return employee.Employee{}, employee.ErrEmployeeNotFound
	}
	return emp, nil
}

func (f *fakeEmployeeRepo) GetBySecretCode(ctx context.Context, code string) (employee.Employee, error) {
	for _, emp := range f.employees {
		if emp.SecretCode == code {
			return emp, nil
		}
	}
	return employee.Employee{}, employee.ErrEmployeeNotFound
}

func (f *fakeEmployeeRepo) List(ctx context.Context) ([]employee.Employee, error) {
	var out []employee.Employee
	for _, emp := range f.employees {
		out = append(out, emp)
	}
	return out, nil
}

func (f *fakeEmployeeRepo) Update(ctx context.Context, emp employee.Employee) error {
	f.employees[emp.ID] = emp
	return nil
}

func (f *fakeEmployeeRepo) Delete(ctx context.Context, id string) error {
	delete(f.employees, id)
	return nil
}

func (f *fakeEmployeeRepo) SecretCodeTaken(ctx context.Context, code string, excludeID string) (bool, error) {
	return false, nil
}

func (f *fakeEmployeeRepo) UpdateEarnedAmount(ctx context.Context, id string, amount float64) error {
	f.earned[id] = amount
	return nil
}

type fakePunchLogRepo struct {
	logs map[string][]punch.Event
}

func (f *fakePunchLogRepo) GetFullLog(ctx context.Context, employeeID string) ([]punch.Event, error) {
	return append([]punch.Event(nil), f.logs[employeeID]...), nil
}

func (f *fakePunchLogRepo) AppendEvent(ctx context.Context, employeeID string, ev punch.Event) (punch.Event, error) {
	f.logs[employeeID] = append(f.logs[employeeID], ev)
	return ev, nil
}

func (f *fakePunchLogRepo) ReplaceEventAt(ctx context.Context, employeeID string, index int, ev punch.Event) error {
	f.logs[employeeID][index] = ev
	return nil
}

func (f *fakePunchLogRepo) DeleteEventAt(ctx context.Context, employeeID string, index int) error {
	log := f.logs[employeeID]
	f.logs[employeeID] = append(log[:index], log[index+1:]...)
	return nil
}

func seedWorkDay(log []punch.Event, day time.Time) []punch.Event {
	return append(log,
		punch.Event{ID: "s1", Timestamp: day.Add(9 * time.Hour), Kind: punch.KindStartWork},
		punch.Event{ID: "s2", Timestamp: day.Add(12 * time.Hour), Kind: punch.KindStartBreak},
		punch.Event{ID: "s3", Timestamp: day.Add(12*time.Hour + 30*time.Minute), Kind: punch.KindStopBreak},
		punch.Event{ID: "s4", Timestamp: day.Add(17 * time.Hour), Kind: punch.KindStopWork},
	)
}

func newTestService(empRepo *fakeEmployeeRepo, logRepo *fakePunchLogRepo, now time.Time) *TimesheetServiceImpl {
	return &TimesheetServiceImpl{
		EmployeeRepository: empRepo,
		PunchLogRepository: logRepo,
		loc:                time.UTC,
		now:                func() time.Time { return now },
	}
}

func TestGetTimesheetDayRowsAndTotals(t *testing.T) {
	ctx := context.Background()

	empRepo := newFakeEmployeeRepo(employee.Employee{ID: "emp-1", Name: "Alice", HourlyRate: 25})
	monday := time.Date(2024, 3, 4, 0, 0, 0, 0, time.UTC)
	tuesday := monday.AddDate(0, 0, 1)

	logRepo := &fakePunchLogRepo{logs: map[string][]punch.Event{}}
	logRepo.logs["emp-1"] = seedWorkDay(logRepo.logs["emp-1"], monday)
	logRepo.logs["emp-1"] = seedWorkDay(logRepo.logs["emp-1"], tuesday)

	svc := newTestService(empRepo, logRepo, tuesday.AddDate(0, 0, 1))

	resp, err := svc.GetTimesheet(ctx, timesheet.TimesheetFilter{
		EmployeeID: "emp-1",
		StartDate:  "2024-03-04",
		EndDate:    "2024-03-06",
	})
	require.NoError(t, err)

	require.Len(t, resp.Days, 3)
	assert.Equal(t, "2024-03-04", resp.Days[0].Date)
	assert.InDelta(t, 8.0, resp.Days[0].WorkedHours, 1e-9)
	assert.InDelta(t, 0.5, resp.Days[0].BreakHours, 1e-9)
	assert.Len(t, resp.Days[0].Sessions, 1)
	require.Len(t, resp.Days[0].Sessions[0].Breaks, 1)

	// Wednesday has no punches.
	assert.Zero(t, resp.Days[2].WorkedHours)
	assert.Empty(t, resp.Days[2].Sessions)

	assert.InDelta(t, 16.0, resp.WorkedHours, 1e-9)
	assert.InDelta(t, 1.0, resp.BreakHours, 1e-9)
	assert.Equal(t, 2, resp.BreakCount)
	assert.InDelta(t, 400.0, resp.EarnedAmount, 1e-9)
}

func TestGetTimesheetCrossMidnightSessionStaysOnStartDay(t *testing.T) {
	ctx := context.Background()

	empRepo := newFakeEmployeeRepo(employee.Employee{ID: "emp-1", Name: "Alice", HourlyRate: 25})
	monday := time.Date(2024, 3, 4, 0, 0, 0, 0, time.UTC)

	logRepo := &fakePunchLogRepo{logs: map[string][]punch.Event{
		"emp-1": {
			{ID: "s1", Timestamp: monday.Add(22 * time.Hour), Kind: punch.KindStartWork},
			{ID: "s2", Timestamp: monday.Add(30 * time.Hour), Kind: punch.KindStopWork}, // Tuesday 06:00
		},
	}}

	svc := newTestService(empRepo, logRepo, monday.AddDate(0, 0, 3))

	resp, err := svc.GetTimesheet(ctx, timesheet.TimesheetFilter{
		EmployeeID: "emp-1",
		StartDate:  "2024-03-04",
		EndDate:    "2024-03-05",
	})
	require.NoError(t, err)

	require.Len(t, resp.Days, 2)
	assert.InDelta(t, 8.0, resp.Days[0].WorkedHours, 1e-9)
	require.Len(t, resp.Days[0].Sessions, 1)
	assert.True(t, resp.Days[0].Sessions[0].StopNextDay)

	// Tuesday shows nothing; the session belongs to Monday.
	assert.Zero(t, resp.Days[1].WorkedHours)
	assert.Empty(t, resp.Days[1].Sessions)

	assert.InDelta(t, 8.0, resp.WorkedHours, 1e-9)
}

func TestGetTimesheetUnknownEmployee(t *testing.T) {
	ctx := context.Background()
	svc := newTestService(newFakeEmployeeRepo(), &fakePunchLogRepo{logs: map[string][]punch.Event{}}, time.Now())

	_, err := svc.GetTimesheet(ctx, timesheet.TimesheetFilter{
		EmployeeID: "missing",
		StartDate:  "2024-03-04",
		EndDate:    "2024-03-05",
	})
	assert.ErrorIs(t, err, employee.ErrEmployeeNotFound)
}

func TestGetRosterRefreshesEarnedAmountCache(t *testing.T) {
	ctx := context.Background()

	empRepo := newFakeEmployeeRepo(employee.Employee{ID: "emp-1", Name: "Alice", HourlyRate: 25, EarnedAmount: 0})
	monday := time.Date(2024, 3, 4, 0, 0, 0, 0, time.UTC)
	logRepo := &fakePunchLogRepo{logs: map[string][]punch.Event{}}
	logRepo.logs["emp-1"] = seedWorkDay(logRepo.logs["emp-1"], monday)

	svc := newTestService(empRepo, logRepo, monday.AddDate(0, 0, 1))

	resp, err := svc.GetRoster(ctx)
	require.NoError(t, err)

	require.Len(t, resp.Employees, 1)
	row := resp.Employees[0]
	assert.Equal(t, "Alice", row.EmployeeName)
	assert.False(t, row.Working)
	assert.InDelta(t, 200.0, row.EarnedAmount, 1e-9)

	// The stale cache was rewritten during the read.
	assert.InDelta(t, 200.0, empRepo.earned["emp-1"], 1e-9)
}

func TestListAnomaliesReportsForgottenStops(t *testing.T) {
	ctx := context.Background()

	empRepo := newFakeEmployeeRepo(employee.Employee{ID: "emp-1", Name: "Alice", HourlyRate: 25})
	monday := time.Date(2024, 3, 4, 0, 0, 0, 0, time.UTC)

	// Forgot to stop on Monday; working again on Wednesday.
	logRepo := &fakePunchLogRepo{logs: map[string][]punch.Event{
		"emp-1": {
			{ID: "s1", Timestamp: monday.Add(9 * time.Hour), Kind: punch.KindStartWork},
			{ID: "s2", Timestamp: monday.AddDate(0, 0, 2).Add(9 * time.Hour), Kind: punch.KindStartWork},
		},
	}}

	now := monday.AddDate(0, 0, 2).Add(10 * time.Hour)
	svc := newTestService(empRepo, logRepo, now)

	resp, err := svc.ListAnomalies(ctx)
	require.NoError(t, err)

	require.Len(t, resp.Anomalies, 1)
	assert.Equal(t, "emp-1", resp.Anomalies[0].EmployeeID)
	assert.Equal(t, punch.AnomalyWork, resp.Anomalies[0].Kind)
	assert.Equal(t, "2024-03-04", resp.Anomalies[0].Date)
}

func TestRefreshEarnedAmountsWritesEveryEmployee(t *testing.T) {
	ctx := context.Background()

	empRepo := newFakeEmployeeRepo(
		employee.Employee{ID: "emp-1", Name: "Alice", HourlyRate: 25},
		employee.Employee{ID: "emp-2", Name: "Bob", HourlyRate: 30},
	)
	monday := time.Date(2024, 3, 4, 0, 0, 0, 0, time.UTC)
	logRepo := &fakePunchLogRepo{logs: map[string][]punch.Event{}}
	logRepo.logs["emp-1"] = seedWorkDay(logRepo.logs["emp-1"], monday)

	svc := newTestService(empRepo, logRepo, monday.AddDate(0, 0, 1))

	require.NoError(t, svc.RefreshEarnedAmounts(ctx))

	assert.InDelta(t, 200.0, empRepo.earned["emp-1"], 1e-9)
	assert.InDelta(t, 0.0, empRepo.earned["emp-2"], 1e-9)
}
