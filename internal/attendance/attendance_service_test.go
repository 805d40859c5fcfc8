package attendance

import (
	"context"
	"database/sql"
	"encoding/json"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	attendanceerrors "github.com/Bang334/QuanAn-sub002/internal/attendance/errors"
	"github.com/Bang334/QuanAn-sub002/internal/events"
	"github.com/Bang334/QuanAn-sub002/internal/messaging/kafka"
	"github.com/Bang334/QuanAn-sub002/internal/schedule"
)

type fakeAttendanceRepo struct {
	rows map[string]*Attendance
}

func newFakeAttendanceRepo() *fakeAttendanceRepo {
	return &fakeAttendanceRepo{rows: map[string]*Attendance{}}
}

func (f *fakeAttendanceRepo) WithTx(tx *sql.Tx) Repository { return f }

func (f *fakeAttendanceRepo) Create(ctx context.Context, a *Attendance) error {
	cp := *a
	f.rows[a.ID.String()] = &cp
	return nil
}

func (f *fakeAttendanceRepo) FindByID(ctx context.Context, id string) (*Attendance, error) {
	if a, ok := f.rows[id]; ok {
		cp := *a
		return &cp, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeAttendanceRepo) FindByEmployeeAndDate(ctx context.Context, employeeID string, date time.Time) (*Attendance, error) {
	for _, a := range f.rows {
		if a.EmployeeID.String() == employeeID && a.WorkDate.Equal(date) {
			cp := *a
			return &cp, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeAttendanceRepo) FindAll(ctx context.Context, filter ListAttendanceFilter) ([]Attendance, error) {
	var out []Attendance
	for _, a := range f.rows {
		out = append(out, *a)
	}
	return out, nil
}

func (f *fakeAttendanceRepo) FindAllByEmployee(ctx context.Context, employeeID string, filter ListAttendanceFilter) ([]Attendance, error) {
	var out []Attendance
	for _, a := range f.rows {
		if a.EmployeeID.String() == employeeID {
			out = append(out, *a)
		}
	}
	return out, nil
}

func (f *fakeAttendanceRepo) Update(ctx context.Context, a *Attendance) error {
	cp := *a
	f.rows[a.ID.String()] = &cp
	return nil
}

type fakeScheduleService struct {
	shift string
}

func (f *fakeScheduleService) Assign(ctx context.Context, actorID string, req schedule.AssignShiftRequest) (schedule.AssignmentResponse, error) {
	return schedule.AssignmentResponse{}, nil
}
func (f *fakeScheduleService) GetAll(ctx context.Context, filter schedule.ListAssignmentsFilter) ([]schedule.AssignmentResponse, error) {
	return nil, nil
}
func (f *fakeScheduleService) ShiftFor(ctx context.Context, employeeID string, date time.Time) string {
	if f.shift == "" {
		return schedule.DefaultShift
	}
	return f.shift
}
func (f *fakeScheduleService) Delete(ctx context.Context, id string) error { return nil }

type fakeOutboxRepo struct {
	created []kafka.OutboxEvent
}

func (f *fakeOutboxRepo) WithTx(tx *sql.Tx) kafka.OutboxRepository { return f }
func (f *fakeOutboxRepo) Create(ctx context.Context, event kafka.OutboxEvent) error {
	f.created = append(f.created, event)
	return nil
}
func (f *fakeOutboxRepo) ListPending(ctx context.Context, limit int) ([]kafka.OutboxEvent, error) {
	return nil, nil
}
func (f *fakeOutboxRepo) MarkSent(ctx context.Context, id string) error              { return nil }
func (f *fakeOutboxRepo) MarkFailed(ctx context.Context, id string, r string) error  { return nil }

func newTestAttendanceService(t *testing.T) (Service, *fakeAttendanceRepo, *fakeOutboxRepo, sqlmock.Sqlmock) {
	t.Helper()

	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	repo := newFakeAttendanceRepo()
	outbox := &fakeOutboxRepo{}
	svc := NewServiceWithOutbox(db, repo, &fakeScheduleService{}, outbox)
	return svc, repo, outbox, mock
}

func expectTx(mock sqlmock.Sqlmock) {
	mock.ExpectBegin()
	mock.ExpectCommit()
}

func pendingClockedOut(employeeID uuid.UUID, hours float64) *Attendance {
	clockIn := time.Date(2025, 6, 2, 7, 0, 0, 0, time.UTC)
	clockOut := clockIn.Add(time.Duration(hours * float64(time.Hour)))
	return &Attendance{
		ID:          uuid.New(),
		EmployeeID:  employeeID,
		WorkDate:    time.Date(2025, 6, 2, 0, 0, 0, 0, time.UTC),
		Shift:       schedule.ShiftMorning,
		ClockIn:     clockIn,
		ClockOut:    &clockOut,
		HoursWorked: hours,
		Status:      StatusPending,
	}
}

func TestClockInCreatesPendingAttendance(t *testing.T) {
	svc, repo, _, mock := newTestAttendanceService(t)

	employeeID := uuid.New()

	expectTx(mock)
	got, err := svc.ClockIn(context.Background(), employeeID.String(), ClockInRequest{})
	require.NoError(t, err)

	assert.Equal(t, StatusPending, got.Status)
	assert.Equal(t, schedule.ShiftMorning, got.Shift)
	assert.Len(t, repo.rows, 1)
}

func TestClockInTwiceSameDayRejected(t *testing.T) {
	svc, _, _, mock := newTestAttendanceService(t)

	employeeID := uuid.New()

	expectTx(mock)
	_, err := svc.ClockIn(context.Background(), employeeID.String(), ClockInRequest{})
	require.NoError(t, err)

	mock.ExpectBegin()
	mock.ExpectRollback()
	_, err = svc.ClockIn(context.Background(), employeeID.String(), ClockInRequest{})
	assert.ErrorIs(t, err, attendanceerrors.ErrAlreadyClockedIn)
}

func TestClockOutDerivesHours(t *testing.T) {
	svc, repo, _, mock := newTestAttendanceService(t)

	employeeID := uuid.New()
	now := time.Now().UTC()
	today := now.Truncate(24 * time.Hour)
	row := &Attendance{
		ID:         uuid.New(),
		EmployeeID: employeeID,
		WorkDate:   today,
		Shift:      schedule.ShiftMorning,
		ClockIn:    now.Add(-8 * time.Hour),
		Status:     StatusPending,
	}
	repo.rows[row.ID.String()] = row

	expectTx(mock)
	got, err := svc.ClockOut(context.Background(), employeeID.String(), ClockOutRequest{})
	require.NoError(t, err)

	require.NotNil(t, got.ClockOut)
	assert.InDelta(t, 8, got.HoursWorked, 0.01)
}

func TestClockOutWithoutClockInRejected(t *testing.T) {
	svc, _, _, mock := newTestAttendanceService(t)

	mock.ExpectBegin()
	mock.ExpectRollback()
	_, err := svc.ClockOut(context.Background(), uuid.NewString(), ClockOutRequest{})
	assert.ErrorIs(t, err, attendanceerrors.ErrClockInNotFound)
}

func TestApproveQueuesReconciliationEvent(t *testing.T) {
	svc, repo, outbox, mock := newTestAttendanceService(t)

	employeeID := uuid.New()
	row := pendingClockedOut(employeeID, 8)
	repo.rows[row.ID.String()] = row

	adminID := uuid.New()
	expectTx(mock)
	got, err := svc.Approve(context.Background(), adminID.String(), row.ID.String())
	require.NoError(t, err)

	assert.Equal(t, StatusApproved, got.Status)
	require.NotNil(t, got.ApprovedBy)
	assert.Equal(t, adminID.String(), *got.ApprovedBy)

	require.Len(t, outbox.created, 1)
	assert.Equal(t, events.AttendanceApprovedTopic, outbox.created[0].Topic)

	var event events.AttendanceApprovedEvent
	require.NoError(t, json.Unmarshal(outbox.created[0].Payload, &event))
	assert.Equal(t, row.ID.String(), event.AttendanceID)
	assert.Equal(t, employeeID.String(), event.EmployeeID)
	assert.Equal(t, "2025-06-02", event.WorkDate)
}

func TestApproveRequiresClockOut(t *testing.T) {
	svc, repo, outbox, mock := newTestAttendanceService(t)

	row := pendingClockedOut(uuid.New(), 8)
	row.ClockOut = nil
	repo.rows[row.ID.String()] = row

	mock.ExpectBegin()
	mock.ExpectRollback()
	_, err := svc.Approve(context.Background(), uuid.NewString(), row.ID.String())
	assert.ErrorIs(t, err, attendanceerrors.ErrNotClockedOut)
	assert.Empty(t, outbox.created)
}

func TestApproveNonPendingRejected(t *testing.T) {
	svc, repo, _, mock := newTestAttendanceService(t)

	row := pendingClockedOut(uuid.New(), 8)
	row.Status = StatusApproved
	repo.rows[row.ID.String()] = row

	mock.ExpectBegin()
	mock.ExpectRollback()
	_, err := svc.Approve(context.Background(), uuid.NewString(), row.ID.String())
	assert.ErrorIs(t, err, attendanceerrors.ErrNotPending)
}

func TestRejectStampsApprover(t *testing.T) {
	svc, repo, outbox, mock := newTestAttendanceService(t)

	row := pendingClockedOut(uuid.New(), 8)
	repo.rows[row.ID.String()] = row

	reason := "shift was covered by another waiter"
	expectTx(mock)
	got, err := svc.Reject(context.Background(), uuid.NewString(), row.ID.String(), RejectRequest{Reason: &reason})
	require.NoError(t, err)

	assert.Equal(t, StatusRejected, got.Status)
	require.NotNil(t, got.Notes)
	assert.Equal(t, reason, *got.Notes)
	assert.Empty(t, outbox.created)
}

func TestAdjustHoursOnApprovedReEmitsEvent(t *testing.T) {
	svc, repo, outbox, mock := newTestAttendanceService(t)

	row := pendingClockedOut(uuid.New(), 8)
	row.Status = StatusApproved
	repo.rows[row.ID.String()] = row

	expectTx(mock)
	got, err := svc.AdjustHours(context.Background(), uuid.NewString(), row.ID.String(), AdjustHoursRequest{HoursWorked: 6.5})
	require.NoError(t, err)

	assert.Equal(t, 6.5, got.HoursWorked)
	assert.Len(t, outbox.created, 1)
}

func TestAdjustHoursOnPendingDoesNotEmit(t *testing.T) {
	svc, repo, outbox, mock := newTestAttendanceService(t)

	row := pendingClockedOut(uuid.New(), 8)
	repo.rows[row.ID.String()] = row

	expectTx(mock)
	_, err := svc.AdjustHours(context.Background(), uuid.NewString(), row.ID.String(), AdjustHoursRequest{HoursWorked: 7})
	require.NoError(t, err)
	assert.Empty(t, outbox.created)
}
