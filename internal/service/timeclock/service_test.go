package timeclock

import (
	"context"
	"testing"
	"time"

	"github.com/punchclock-hq/punchclock-backend/internal/domain/employee"
	"github.com/punchclock-hq/punchclock-backend/internal/domain/timeclock"
	"github.com/punchclock-hq/punchclock-backend/internal/punch"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	testEmployeeID = "emp-1"
	testSecretCode = "12345678"
)

type fakeEmployeeRepo struct {
	employees map[string]employee.Employee
}

func newFakeEmployeeRepo() *fakeEmployeeRepo {
	return &fakeEmployeeRepo{
		employees: map[string]employee.Employee{
			testEmployeeID: {
				ID:         testEmployeeID,
				Name:       "Alice",
				SecretCode: testSecretCode,
				HourlyRate: 25,
			},
		},
	}
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
	for _, emp := range f.employees {
		if emp.SecretCode == code && emp.ID != excludeID {
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeEmployeeRepo) UpdateEarnedAmount(ctx context.Context, id string, amount float64) error {
	emp, ok := f.employees[id]
	if !ok {
		return employee.ErrEmployeeNotFound
	}
	emp.EarnedAmount = amount
	f.employees[id] = emp
	return nil
}

type fakePunchLogRepo struct {
	logs map[string][]punch.Event
}

func newFakePunchLogRepo() *fakePunchLogRepo {
	return &fakePunchLogRepo{logs: make(map[string][]punch.Event)}
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

func newTestService(logRepo *fakePunchLogRepo, now time.Time) *TimeclockServiceImpl {
	return &TimeclockServiceImpl{
		EmployeeRepository: newFakeEmployeeRepo(),
		PunchLogRepository: logRepo,
		loc:                time.UTC,
		now:                func() time.Time { return now },
	}
}

func TestPunchAppendsEventAndReportsStatus(t *testing.T) {
	ctx := context.Background()
	logRepo := newFakePunchLogRepo()
	svc := newTestService(logRepo, time.Date(2024, 3, 4, 9, 0, 0, 0, time.UTC))

	resp, err := svc.Punch(ctx, timeclock.PunchRequest{
		SecretCode: testSecretCode,
		Action:     string(punch.KindStartWork),
	})
	require.NoError(t, err)

	assert.Equal(t, "Alice", resp.EmployeeName)
	assert.Equal(t, "START_WORK", resp.Action)
	assert.True(t, resp.Status.Working)
	assert.False(t, resp.Status.OnBreak)

	require.Len(t, logRepo.logs[testEmployeeID], 1)
	assert.NotEmpty(t, logRepo.logs[testEmployeeID][0].ID)
}

func TestPunchUnknownSecretCode(t *testing.T) {
	ctx := context.Background()
	svc := newTestService(newFakePunchLogRepo(), time.Date(2024, 3, 4, 9, 0, 0, 0, time.UTC))

	_, err := svc.Punch(ctx, timeclock.PunchRequest{
		SecretCode: "99999999",
		Action:     string(punch.KindStartWork),
	})
	assert.ErrorIs(t, err, timeclock.ErrUnknownSecretCode)
}

func TestPunchRejectsInvalidTransitions(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name    string
		prior   []punch.Kind
		action  punch.Kind
		wantErr error
	}{
		{"start while working", []punch.Kind{punch.KindStartWork}, punch.KindStartWork, timeclock.ErrAlreadyWorking},
		{"stop while idle", nil, punch.KindStopWork, timeclock.ErrNotWorking},
		{"break while idle", nil, punch.KindStartBreak, timeclock.ErrNotWorking},
		{"break while on break", []punch.Kind{punch.KindStartWork, punch.KindStartBreak}, punch.KindStartBreak, timeclock.ErrAlreadyOnBreak},
		{"stop break while working", []punch.Kind{punch.KindStartWork}, punch.KindStopBreak, timeclock.ErrNotOnBreak},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			logRepo := newFakePunchLogRepo()
			base := time.Date(2024, 3, 4, 9, 0, 0, 0, time.UTC)
			for i, kind := range tt.prior {
				logRepo.logs[testEmployeeID] = append(logRepo.logs[testEmployeeID], punch.Event{
					ID:        "seed",
					Timestamp: base.Add(time.Duration(i) * time.Minute),
					Kind:      kind,
				})
			}
			svc := newTestService(logRepo, base.Add(time.Hour))

			_, err := svc.Punch(ctx, timeclock.PunchRequest{
				SecretCode: testSecretCode,
				Action:     string(tt.action),
			})
			assert.ErrorIs(t, err, tt.wantErr)

			// Rejected punches must not reach the log.
			assert.Len(t, logRepo.logs[testEmployeeID], len(tt.prior))
		})
	}
}

func TestPunchRejectsLegacyKinds(t *testing.T) {
	ctx := context.Background()
	svc := newTestService(newFakePunchLogRepo(), time.Date(2024, 3, 4, 9, 0, 0, 0, time.UTC))

	_, err := svc.Punch(ctx, timeclock.PunchRequest{
		SecretCode: testSecretCode,
		Action:     string(punch.KindPunchIn),
	})
	require.Error(t, err)
	assert.NotErrorIs(t, err, timeclock.ErrUnknownSecretCode)
}

func TestStatusComputesTodayTotals(t *testing.T) {
	ctx := context.Background()
	logRepo := newFakePunchLogRepo()

	// 09:00 start, 12:00-12:30 break, 17:00 stop.
	day := time.Date(2024, 3, 4, 0, 0, 0, 0, time.UTC)
	events := []struct {
		hour, min int
		kind      punch.Kind
	}{
		{9, 0, punch.KindStartWork},
		{12, 0, punch.KindStartBreak},
		{12, 30, punch.KindStopBreak},
		{17, 0, punch.KindStopWork},
	}
	for _, e := range events {
		logRepo.logs[testEmployeeID] = append(logRepo.logs[testEmployeeID], punch.Event{
			ID:        "seed",
			Timestamp: day.Add(time.Duration(e.hour)*time.Hour + time.Duration(e.min)*time.Minute),
			Kind:      e.kind,
		})
	}
	svc := newTestService(logRepo, day.Add(18*time.Hour))

	status, err := svc.Status(ctx, timeclock.StatusRequest{SecretCode: testSecretCode})
	require.NoError(t, err)

	assert.False(t, status.Working)
	assert.InDelta(t, 8.0, status.WorkedHoursToday, 1e-9)
	assert.InDelta(t, 0.5, status.BreakHoursToday, 1e-9)
	assert.Equal(t, 1, status.BreakCountToday)
	require.NotNil(t, status.LastAction)
	assert.Equal(t, "STOP_WORK", *status.LastAction)
}

func TestStatusOpenSessionAccruesToNow(t *testing.T) {
	ctx := context.Background()
	logRepo := newFakePunchLogRepo()

	day := time.Date(2024, 3, 4, 0, 0, 0, 0, time.UTC)
	logRepo.logs[testEmployeeID] = []punch.Event{
		{ID: "seed", Timestamp: day.Add(9 * time.Hour), Kind: punch.KindStartWork},
	}
	svc := newTestService(logRepo, day.Add(11*time.Hour))

	status, err := svc.Status(ctx, timeclock.StatusRequest{SecretCode: testSecretCode})
	require.NoError(t, err)

	assert.True(t, status.Working)
	assert.InDelta(t, 2.0, status.WorkedHoursToday, 1e-9)
}
