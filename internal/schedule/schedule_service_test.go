package schedule

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	scheduleerrors "github.com/Bang334/QuanAn-sub002/internal/schedule/errors"
)

type fakeScheduleRepo struct {
	rows map[string]*ShiftAssignment
}

func newFakeScheduleRepo() *fakeScheduleRepo {
	return &fakeScheduleRepo{rows: map[string]*ShiftAssignment{}}
}

func (f *fakeScheduleRepo) WithTx(tx *sql.Tx) Repository { return f }

func (f *fakeScheduleRepo) Create(ctx context.Context, a *ShiftAssignment) error {
	cp := *a
	f.rows[a.ID.String()] = &cp
	return nil
}

func (f *fakeScheduleRepo) FindByEmployeeAndDate(ctx context.Context, employeeID string, date time.Time) (*ShiftAssignment, error) {
	for _, a := range f.rows {
		if a.EmployeeID.String() == employeeID && a.WorkDate.Equal(date) {
			cp := *a
			return &cp, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeScheduleRepo) FindAll(ctx context.Context, filter ListAssignmentsFilter) ([]ShiftAssignment, error) {
	var out []ShiftAssignment
	for _, a := range f.rows {
		out = append(out, *a)
	}
	return out, nil
}

func (f *fakeScheduleRepo) Update(ctx context.Context, a *ShiftAssignment) error {
	cp := *a
	f.rows[a.ID.String()] = &cp
	return nil
}

func (f *fakeScheduleRepo) Delete(ctx context.Context, id string) error {
	if _, ok := f.rows[id]; !ok {
		return gorm.ErrRecordNotFound
	}
	delete(f.rows, id)
	return nil
}

func newTestScheduleService(t *testing.T) (Service, *fakeScheduleRepo, sqlmock.Sqlmock) {
	t.Helper()

	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	repo := newFakeScheduleRepo()
	return NewService(db, repo), repo, mock
}

func TestAssignCreatesAssignment(t *testing.T) {
	svc, repo, mock := newTestScheduleService(t)

	mock.ExpectBegin()
	mock.ExpectCommit()

	got, err := svc.Assign(context.Background(), uuid.NewString(), AssignShiftRequest{
		EmployeeID: uuid.NewString(),
		WorkDate:   "2025-06-02",
		Shift:      ShiftEvening,
	})
	require.NoError(t, err)

	assert.Equal(t, ShiftEvening, got.Shift)
	assert.Equal(t, "2025-06-02", got.WorkDate)
	assert.Len(t, repo.rows, 1)
}

func TestAssignDuplicateDayRejected(t *testing.T) {
	svc, _, mock := newTestScheduleService(t)

	employeeID := uuid.NewString()

	mock.ExpectBegin()
	mock.ExpectCommit()
	_, err := svc.Assign(context.Background(), uuid.NewString(), AssignShiftRequest{
		EmployeeID: employeeID,
		WorkDate:   "2025-06-02",
		Shift:      ShiftMorning,
	})
	require.NoError(t, err)

	mock.ExpectBegin()
	mock.ExpectRollback()
	_, err = svc.Assign(context.Background(), uuid.NewString(), AssignShiftRequest{
		EmployeeID: employeeID,
		WorkDate:   "2025-06-02",
		Shift:      ShiftNight,
	})
	assert.ErrorIs(t, err, scheduleerrors.ErrAssignmentExists)
}

func TestShiftForFallsBackToDefault(t *testing.T) {
	svc, repo, _ := newTestScheduleService(t)

	employeeID := uuid.New()
	day := time.Date(2025, 6, 2, 0, 0, 0, 0, time.UTC)

	assert.Equal(t, DefaultShift, svc.ShiftFor(context.Background(), employeeID.String(), day))

	repo.rows["a"] = &ShiftAssignment{
		ID:         uuid.New(),
		EmployeeID: employeeID,
		WorkDate:   day,
		Shift:      ShiftNight,
	}
	assert.Equal(t, ShiftNight, svc.ShiftFor(context.Background(), employeeID.String(), day))
}
