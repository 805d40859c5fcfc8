package salary

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/Bang334/QuanAn-sub002/internal/attendance"
	"github.com/Bang334/QuanAn-sub002/internal/employee"
	salaryerrors "github.com/Bang334/QuanAn-sub002/internal/salary/errors"
	"github.com/Bang334/QuanAn-sub002/internal/wagerate"
)

type fakeSalaryRepo struct {
	records     map[string]*SalaryRecord
	items       map[string]*SalaryLineItem
	attendances map[string]*attendance.Attendance

	// createErrFor fails Create for the given employee id, simulating a
	// constraint violation raised by a concurrent writer.
	createErrFor map[string]error
}

func newFakeSalaryRepo() *fakeSalaryRepo {
	return &fakeSalaryRepo{
		records:      map[string]*SalaryRecord{},
		items:        map[string]*SalaryLineItem{},
		attendances:  map[string]*attendance.Attendance{},
		createErrFor: map[string]error{},
	}
}

func (f *fakeSalaryRepo) WithTx(tx *sql.Tx) Repository { return f }

func (f *fakeSalaryRepo) Create(ctx context.Context, r *SalaryRecord) error {
	if err, ok := f.createErrFor[r.EmployeeID.String()]; ok {
		return err
	}
	cp := *r
	f.records[r.ID.String()] = &cp
	return nil
}

func (f *fakeSalaryRepo) FindByID(ctx context.Context, id string) (*SalaryRecord, error) {
	if r, ok := f.records[id]; ok {
		cp := *r
		return &cp, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeSalaryRepo) FindByEmployeePeriod(ctx context.Context, employeeID string, month, year int) (*SalaryRecord, error) {
	for _, r := range f.records {
		if r.EmployeeID.String() == employeeID && r.Month == month && r.Year == year {
			cp := *r
			return &cp, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeSalaryRepo) FindAll(ctx context.Context, filter ListSalaryFilter) ([]SalaryRecord, error) {
	var out []SalaryRecord
	for _, r := range f.records {
		out = append(out, *r)
	}
	return out, nil
}

func (f *fakeSalaryRepo) Update(ctx context.Context, r *SalaryRecord) error {
	cp := *r
	f.records[r.ID.String()] = &cp
	return nil
}

func (f *fakeSalaryRepo) CreateLineItem(ctx context.Context, item *SalaryLineItem) error {
	cp := *item
	f.items[item.ID.String()] = &cp
	return nil
}

func (f *fakeSalaryRepo) ListLineItems(ctx context.Context, recordID string) ([]SalaryLineItem, error) {
	var out []SalaryLineItem
	for _, item := range f.items {
		if item.SalaryRecordID.String() == recordID {
			out = append(out, *item)
		}
	}
	return out, nil
}

func (f *fakeSalaryRepo) DeleteLineItemsByRecord(ctx context.Context, recordID string) error {
	for id, item := range f.items {
		if item.SalaryRecordID.String() == recordID {
			delete(f.items, id)
		}
	}
	return nil
}

func (f *fakeSalaryRepo) DeleteLineItemByAttendance(ctx context.Context, recordID, attendanceID string) error {
	for id, item := range f.items {
		if item.SalaryRecordID.String() == recordID &&
			item.AttendanceID != nil && item.AttendanceID.String() == attendanceID {
			delete(f.items, id)
		}
	}
	return nil
}

func (f *fakeSalaryRepo) DeletePlaceholderLineItems(ctx context.Context, recordID string) error {
	for id, item := range f.items {
		if item.SalaryRecordID.String() == recordID && item.AttendanceID == nil {
			delete(f.items, id)
		}
	}
	return nil
}

func (f *fakeSalaryRepo) FindAttendanceByID(ctx context.Context, attendanceID string) (*attendance.Attendance, error) {
	if a, ok := f.attendances[attendanceID]; ok {
		cp := *a
		return &cp, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeSalaryRepo) ListApprovedAttendance(ctx context.Context, employeeID string, month, year int) ([]attendance.Attendance, error) {
	var out []attendance.Attendance
	for _, a := range f.attendances {
		if a.EmployeeID.String() == employeeID &&
			a.Status == attendance.StatusApproved &&
			int(a.WorkDate.Month()) == month && a.WorkDate.Year() == year {
			out = append(out, *a)
		}
	}
	return out, nil
}

type fakeEmployeeRepo struct {
	roles  map[string]string
	active []employee.Employee
}

func (f *fakeEmployeeRepo) WithTx(tx *sql.Tx) employee.Repository           { return f }
func (f *fakeEmployeeRepo) Create(ctx context.Context, e *employee.Employee) error { return nil }
func (f *fakeEmployeeRepo) FindAll(ctx context.Context) ([]employee.Employee, error) {
	return f.active, nil
}
func (f *fakeEmployeeRepo) FindAllActiveByRoles(ctx context.Context, roles []string) ([]employee.Employee, error) {
	var out []employee.Employee
	for _, e := range f.active {
		for _, role := range roles {
			if e.Role == role {
				out = append(out, e)
			}
		}
	}
	return out, nil
}
func (f *fakeEmployeeRepo) FindByID(ctx context.Context, id string) (*employee.Employee, error) {
	return nil, gorm.ErrRecordNotFound
}
func (f *fakeEmployeeRepo) GetRoleByID(ctx context.Context, id string) (string, error) {
	if role, ok := f.roles[id]; ok {
		return role, nil
	}
	return "", gorm.ErrRecordNotFound
}
func (f *fakeEmployeeRepo) Update(ctx context.Context, e *employee.Employee) error { return nil }
func (f *fakeEmployeeRepo) Delete(ctx context.Context, id string) error            { return nil }

type fakeRateService struct {
	rate    wagerate.WageRate
	missing bool
}

func (f *fakeRateService) Resolve(ctx context.Context, role, shift string, asOf time.Time) (*wagerate.WageRate, error) {
	if f.missing {
		return nil, gorm.ErrRecordNotFound
	}
	cp := f.rate
	return &cp, nil
}
func (f *fakeRateService) Create(ctx context.Context, req wagerate.CreateWageRateRequest) (wagerate.WageRateResponse, error) {
	return wagerate.WageRateResponse{}, nil
}
func (f *fakeRateService) GetAll(ctx context.Context, filter wagerate.ListWageRateFilter) ([]wagerate.WageRateResponse, error) {
	return nil, nil
}
func (f *fakeRateService) Deactivate(ctx context.Context, id string) error { return nil }

func newTestService(t *testing.T) (Service, *fakeSalaryRepo, *fakeEmployeeRepo, sqlmock.Sqlmock) {
	t.Helper()

	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	repo := newFakeSalaryRepo()
	empRepo := &fakeEmployeeRepo{roles: map[string]string{}}
	rates := &fakeRateService{rate: wagerate.WageRate{
		ID:         uuid.New(),
		Role:       employee.RoleWaiter,
		Shift:      "MORNING",
		HourlyRate: 20000,
	}}

	return NewService(db, repo, empRepo, rates), repo, empRepo, mock
}

func expectTx(mock sqlmock.Sqlmock) {
	mock.ExpectBegin()
	mock.ExpectCommit()
}

func approvedAttendance(employeeID uuid.UUID, day time.Time, hours float64) *attendance.Attendance {
	clockOut := day.Add(time.Duration(hours * float64(time.Hour)))
	return &attendance.Attendance{
		ID:          uuid.New(),
		EmployeeID:  employeeID,
		WorkDate:    day,
		Shift:       "MORNING",
		ClockIn:     day,
		ClockOut:    &clockOut,
		HoursWorked: hours,
		Status:      attendance.StatusApproved,
	}
}

func TestRecomputeAggregatesApprovedAttendance(t *testing.T) {
	svc, repo, empRepo, mock := newTestService(t)

	employeeID := uuid.New()
	empRepo.roles[employeeID.String()] = employee.RoleWaiter

	a1 := approvedAttendance(employeeID, time.Date(2025, 6, 2, 7, 0, 0, 0, time.UTC), 8)
	a2 := approvedAttendance(employeeID, time.Date(2025, 6, 3, 7, 0, 0, 0, time.UTC), 7.5)
	repo.attendances[a1.ID.String()] = a1
	repo.attendances[a2.ID.String()] = a2

	record := &SalaryRecord{ID: uuid.New(), EmployeeID: employeeID, Month: 6, Year: 2025, Status: StatusPending}
	repo.records[record.ID.String()] = record

	expectTx(mock)
	got, err := svc.Recompute(context.Background(), record.ID.String())
	require.NoError(t, err)

	assert.Equal(t, 15.5, got.TotalHours)
	assert.Equal(t, int64(310000), got.TotalHourlyPay)
	assert.Equal(t, 2, got.WorkingDays)
	assert.Equal(t, int64(310000), got.NetPay)

	items, err := repo.ListLineItems(context.Background(), record.ID.String())
	require.NoError(t, err)
	assert.Len(t, items, 2)
}

func TestRecomputeRoundsToWholeCurrency(t *testing.T) {
	svc, repo, empRepo, mock := newTestService(t)

	employeeID := uuid.New()
	empRepo.roles[employeeID.String()] = employee.RoleWaiter

	// 7.55h at 20000/h is 151000; 0.33h would be 6600, but 7.33h at
	// 20001/h is 146607.33 and must round to 146607.
	a := approvedAttendance(employeeID, time.Date(2025, 6, 2, 7, 0, 0, 0, time.UTC), 7.33)
	repo.attendances[a.ID.String()] = a

	record := &SalaryRecord{ID: uuid.New(), EmployeeID: employeeID, Month: 6, Year: 2025, Status: StatusPending}
	repo.records[record.ID.String()] = record

	svcImpl := svc.(*service)
	svcImpl.rates.(*fakeRateService).rate.HourlyRate = 20001

	expectTx(mock)
	got, err := svc.Recompute(context.Background(), record.ID.String())
	require.NoError(t, err)
	assert.Equal(t, int64(146607), got.TotalHourlyPay)
}

func TestRecomputeEmptyMonthWritesPlaceholder(t *testing.T) {
	svc, repo, empRepo, mock := newTestService(t)

	employeeID := uuid.New()
	empRepo.roles[employeeID.String()] = employee.RoleWaiter

	record := &SalaryRecord{ID: uuid.New(), EmployeeID: employeeID, Month: 2, Year: 2025, Status: StatusPending}
	repo.records[record.ID.String()] = record

	expectTx(mock)
	got, err := svc.Recompute(context.Background(), record.ID.String())
	require.NoError(t, err)

	assert.Zero(t, got.TotalHours)
	assert.Zero(t, got.TotalHourlyPay)
	assert.Zero(t, got.WorkingDays)

	items, err := repo.ListLineItems(context.Background(), record.ID.String())
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Nil(t, items[0].AttendanceID)
	assert.Zero(t, items[0].Amount)
	assert.Equal(t, "2025-02-01", items[0].WorkDate.Format("2006-01-02"))
}

func TestRecomputeSkipsNonPositiveHours(t *testing.T) {
	svc, repo, empRepo, mock := newTestService(t)

	employeeID := uuid.New()
	empRepo.roles[employeeID.String()] = employee.RoleWaiter

	good := approvedAttendance(employeeID, time.Date(2025, 6, 2, 7, 0, 0, 0, time.UTC), 8)
	zero := approvedAttendance(employeeID, time.Date(2025, 6, 3, 7, 0, 0, 0, time.UTC), 0)
	repo.attendances[good.ID.String()] = good
	repo.attendances[zero.ID.String()] = zero

	record := &SalaryRecord{ID: uuid.New(), EmployeeID: employeeID, Month: 6, Year: 2025, Status: StatusPending}
	repo.records[record.ID.String()] = record

	expectTx(mock)
	got, err := svc.Recompute(context.Background(), record.ID.String())
	require.NoError(t, err)

	assert.Equal(t, float64(8), got.TotalHours)
	assert.Equal(t, 1, got.WorkingDays)

	items, _ := repo.ListLineItems(context.Background(), record.ID.String())
	assert.Len(t, items, 1)
}

func TestRecomputeIsIdempotent(t *testing.T) {
	svc, repo, empRepo, mock := newTestService(t)

	employeeID := uuid.New()
	empRepo.roles[employeeID.String()] = employee.RoleWaiter

	a := approvedAttendance(employeeID, time.Date(2025, 6, 2, 7, 0, 0, 0, time.UTC), 8)
	repo.attendances[a.ID.String()] = a

	record := &SalaryRecord{ID: uuid.New(), EmployeeID: employeeID, Month: 6, Year: 2025, Status: StatusPending}
	repo.records[record.ID.String()] = record

	expectTx(mock)
	first, err := svc.Recompute(context.Background(), record.ID.String())
	require.NoError(t, err)

	expectTx(mock)
	second, err := svc.Recompute(context.Background(), record.ID.String())
	require.NoError(t, err)

	assert.Equal(t, first.TotalHours, second.TotalHours)
	assert.Equal(t, first.TotalHourlyPay, second.TotalHourlyPay)

	items, _ := repo.ListLineItems(context.Background(), record.ID.String())
	assert.Len(t, items, 1)
}

func TestRecomputePaidRecordForbidden(t *testing.T) {
	svc, repo, _, mock := newTestService(t)

	now := time.Now()
	record := &SalaryRecord{ID: uuid.New(), EmployeeID: uuid.New(), Month: 6, Year: 2025, Status: StatusPaid, PaidAt: &now}
	repo.records[record.ID.String()] = record

	mock.ExpectBegin()
	mock.ExpectRollback()

	_, err := svc.Recompute(context.Background(), record.ID.String())
	assert.ErrorIs(t, err, salaryerrors.ErrRecordPaidRecomputeForbidden)
}

func TestReopenThenRecompute(t *testing.T) {
	svc, repo, empRepo, mock := newTestService(t)

	employeeID := uuid.New()
	empRepo.roles[employeeID.String()] = employee.RoleWaiter

	now := time.Now()
	record := &SalaryRecord{ID: uuid.New(), EmployeeID: employeeID, Month: 6, Year: 2025, Status: StatusPaid, PaidAt: &now}
	repo.records[record.ID.String()] = record

	expectTx(mock)
	reopened, err := svc.Reopen(context.Background(), record.ID.String())
	require.NoError(t, err)
	assert.Equal(t, StatusPending, reopened.Status)
	assert.Nil(t, reopened.PaidAt)

	expectTx(mock)
	_, err = svc.Recompute(context.Background(), record.ID.String())
	assert.NoError(t, err)
}

func TestReconcileAttendanceMatchesFullRecompute(t *testing.T) {
	svc, repo, empRepo, mock := newTestService(t)

	employeeID := uuid.New()
	empRepo.roles[employeeID.String()] = employee.RoleWaiter

	a1 := approvedAttendance(employeeID, time.Date(2025, 6, 2, 7, 0, 0, 0, time.UTC), 8)
	a2 := approvedAttendance(employeeID, time.Date(2025, 6, 3, 7, 0, 0, 0, time.UTC), 6)
	repo.attendances[a1.ID.String()] = a1
	repo.attendances[a2.ID.String()] = a2

	// Reconcile both one at a time; the record is created on first touch.
	expectTx(mock)
	_, err := svc.ReconcileAttendance(context.Background(), a1.ID.String())
	require.NoError(t, err)

	expectTx(mock)
	reconciled, err := svc.ReconcileAttendance(context.Background(), a2.ID.String())
	require.NoError(t, err)

	// A full recompute of the same record lands on identical totals.
	expectTx(mock)
	recomputed, err := svc.Recompute(context.Background(), reconciled.ID)
	require.NoError(t, err)

	assert.Equal(t, recomputed.TotalHours, reconciled.TotalHours)
	assert.Equal(t, recomputed.TotalHourlyPay, reconciled.TotalHourlyPay)
	assert.Equal(t, recomputed.WorkingDays, reconciled.WorkingDays)
}

func TestReconcileAttendanceIsIdempotent(t *testing.T) {
	svc, repo, empRepo, mock := newTestService(t)

	employeeID := uuid.New()
	empRepo.roles[employeeID.String()] = employee.RoleWaiter

	a := approvedAttendance(employeeID, time.Date(2025, 6, 2, 7, 0, 0, 0, time.UTC), 8)
	repo.attendances[a.ID.String()] = a

	expectTx(mock)
	first, err := svc.ReconcileAttendance(context.Background(), a.ID.String())
	require.NoError(t, err)

	expectTx(mock)
	second, err := svc.ReconcileAttendance(context.Background(), a.ID.String())
	require.NoError(t, err)

	assert.Equal(t, first.TotalHours, second.TotalHours)
	assert.Equal(t, first.TotalHourlyPay, second.TotalHourlyPay)

	items, _ := repo.ListLineItems(context.Background(), first.ID)
	assert.Len(t, items, 1)
}

func TestReconcileRemovesPlaceholder(t *testing.T) {
	svc, repo, empRepo, mock := newTestService(t)

	employeeID := uuid.New()
	empRepo.roles[employeeID.String()] = employee.RoleWaiter

	record := &SalaryRecord{ID: uuid.New(), EmployeeID: employeeID, Month: 6, Year: 2025, Status: StatusPending}
	repo.records[record.ID.String()] = record

	expectTx(mock)
	_, err := svc.Recompute(context.Background(), record.ID.String())
	require.NoError(t, err)

	items, _ := repo.ListLineItems(context.Background(), record.ID.String())
	require.Len(t, items, 1)
	require.Nil(t, items[0].AttendanceID)

	a := approvedAttendance(employeeID, time.Date(2025, 6, 10, 7, 0, 0, 0, time.UTC), 8)
	repo.attendances[a.ID.String()] = a

	expectTx(mock)
	_, err = svc.ReconcileAttendance(context.Background(), a.ID.String())
	require.NoError(t, err)

	items, _ = repo.ListLineItems(context.Background(), record.ID.String())
	require.Len(t, items, 1)
	assert.NotNil(t, items[0].AttendanceID)
}

func TestReconcileRejectsUnapprovedAttendance(t *testing.T) {
	svc, repo, _, _ := newTestService(t)

	a := approvedAttendance(uuid.New(), time.Date(2025, 6, 2, 7, 0, 0, 0, time.UTC), 8)
	a.Status = attendance.StatusPending
	repo.attendances[a.ID.String()] = a

	_, err := svc.ReconcileAttendance(context.Background(), a.ID.String())
	assert.ErrorIs(t, err, salaryerrors.ErrAttendanceNotApproved)
}

func TestMarkPaidAndReopenLifecycle(t *testing.T) {
	svc, repo, _, mock := newTestService(t)

	record := &SalaryRecord{ID: uuid.New(), EmployeeID: uuid.New(), Month: 6, Year: 2025, Status: StatusPending}
	repo.records[record.ID.String()] = record

	expectTx(mock)
	paid, err := svc.MarkPaid(context.Background(), record.ID.String())
	require.NoError(t, err)
	assert.Equal(t, StatusPaid, paid.Status)
	require.NotNil(t, paid.PaidAt)

	mock.ExpectBegin()
	mock.ExpectRollback()
	_, err = svc.MarkPaid(context.Background(), record.ID.String())
	assert.ErrorIs(t, err, salaryerrors.ErrSalaryAlreadyPaid)

	expectTx(mock)
	reopened, err := svc.Reopen(context.Background(), record.ID.String())
	require.NoError(t, err)
	assert.Equal(t, StatusPending, reopened.Status)

	mock.ExpectBegin()
	mock.ExpectRollback()
	_, err = svc.Reopen(context.Background(), record.ID.String())
	assert.ErrorIs(t, err, salaryerrors.ErrSalaryNotPaid)
}

func TestNetPayDerivedOnRead(t *testing.T) {
	svc, repo, _, _ := newTestService(t)

	record := &SalaryRecord{
		ID:             uuid.New(),
		EmployeeID:     uuid.New(),
		Month:          6,
		Year:           2025,
		TotalHourlyPay: 500000,
		Bonus:          100000,
		Deduction:      30000,
		Status:         StatusPending,
	}
	repo.records[record.ID.String()] = record

	got, err := svc.GetByID(context.Background(), record.ID.String())
	require.NoError(t, err)
	assert.Equal(t, int64(570000), got.NetPay)
}

func TestUpsertSetsBonusAndRecomputes(t *testing.T) {
	svc, repo, empRepo, mock := newTestService(t)

	employeeID := uuid.New()
	empRepo.roles[employeeID.String()] = employee.RoleWaiter

	a := approvedAttendance(employeeID, time.Date(2025, 6, 2, 7, 0, 0, 0, time.UTC), 8)
	repo.attendances[a.ID.String()] = a

	bonus := int64(50000)
	deduction := int64(20000)

	expectTx(mock)
	got, err := svc.Upsert(context.Background(), UpsertSalaryRequest{
		EmployeeID: employeeID.String(),
		Month:      6,
		Year:       2025,
		Bonus:      &bonus,
		Deduction:  &deduction,
	})
	require.NoError(t, err)

	assert.Equal(t, int64(160000), got.TotalHourlyPay)
	assert.Equal(t, bonus, got.Bonus)
	assert.Equal(t, deduction, got.Deduction)
	assert.Equal(t, int64(190000), got.NetPay)
}

func TestBatchGenerateSkipsExistingRecords(t *testing.T) {
	svc, repo, empRepo, mock := newTestService(t)

	waiter := employee.Employee{ID: uuid.New(), Role: employee.RoleWaiter, IsActive: true}
	cook := employee.Employee{ID: uuid.New(), Role: employee.RoleKitchen, IsActive: true}
	empRepo.active = []employee.Employee{waiter, cook}

	existing := &SalaryRecord{ID: uuid.New(), EmployeeID: waiter.ID, Month: 6, Year: 2025, Status: StatusPending}
	repo.records[existing.ID.String()] = existing

	expectTx(mock)
	got, err := svc.BatchGenerate(context.Background(), BatchGenerateRequest{Month: 6, Year: 2025})
	require.NoError(t, err)

	assert.Equal(t, 1, got.Created)
	assert.Equal(t, 1, got.Skipped)

	_, err = repo.FindByEmployeePeriod(context.Background(), cook.ID.String(), 6, 2025)
	assert.NoError(t, err)
}

func TestBatchGenerateCountsConcurrentDuplicateAsSkipped(t *testing.T) {
	svc, repo, empRepo, mock := newTestService(t)

	waiter := employee.Employee{ID: uuid.New(), Role: employee.RoleWaiter, IsActive: true}
	cook := employee.Employee{ID: uuid.New(), Role: employee.RoleKitchen, IsActive: true}
	empRepo.active = []employee.Employee{waiter, cook}

	// A reconcile racing the batch creates the waiter's record between the
	// existence check and the insert, surfacing as a duplicate-key error.
	repo.createErrFor[waiter.ID.String()] = &pgconn.PgError{
		Code:           "23505",
		ConstraintName: "idx_salary_employee_period",
	}

	expectTx(mock)
	got, err := svc.BatchGenerate(context.Background(), BatchGenerateRequest{Month: 6, Year: 2025})
	require.NoError(t, err)

	assert.Equal(t, 1, got.Created)
	assert.Equal(t, 1, got.Skipped)
}

func TestReconcileToZeroHoursRestoresPlaceholder(t *testing.T) {
	svc, repo, empRepo, mock := newTestService(t)

	employeeID := uuid.New()
	empRepo.roles[employeeID.String()] = employee.RoleWaiter

	a := approvedAttendance(employeeID, time.Date(2025, 6, 2, 7, 0, 0, 0, time.UTC), 8)
	repo.attendances[a.ID.String()] = a

	expectTx(mock)
	_, err := svc.ReconcileAttendance(context.Background(), a.ID.String())
	require.NoError(t, err)

	// An admin adjustment zeroes the hours; reconciling again removes the
	// month's only real line item.
	repo.attendances[a.ID.String()].HoursWorked = 0

	expectTx(mock)
	got, err := svc.ReconcileAttendance(context.Background(), a.ID.String())
	require.NoError(t, err)

	assert.Equal(t, float64(0), got.TotalHours)
	assert.Equal(t, int64(0), got.TotalHourlyPay)
	assert.Equal(t, 0, got.WorkingDays)

	record, err := repo.FindByEmployeePeriod(context.Background(), employeeID.String(), 6, 2025)
	require.NoError(t, err)

	items, err := repo.ListLineItems(context.Background(), record.ID.String())
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Nil(t, items[0].AttendanceID)
	assert.Equal(t, time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC), items[0].WorkDate)
	assert.Equal(t, int64(0), items[0].Amount)
}
