package wagerate

import (
	"context"
	"database/sql"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	wagerateerrors "github.com/Bang334/QuanAn-sub002/internal/wagerate/errors"
)

type fakeWageRateRepo struct {
	mu    sync.Mutex
	rates []WageRate
}

func (f *fakeWageRateRepo) WithTx(tx *sql.Tx) Repository { return f }

func (f *fakeWageRateRepo) Create(ctx context.Context, rate *WageRate) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.rates = append(f.rates, *rate)
	return nil
}

func (f *fakeWageRateRepo) FindByID(ctx context.Context, id string) (*WageRate, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for i := range f.rates {
		if f.rates[i].ID.String() == id {
			return &f.rates[i], nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeWageRateRepo) FindAll(ctx context.Context, filter ListWageRateFilter) ([]WageRate, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]WageRate(nil), f.rates...), nil
}

func (f *fakeWageRateRepo) FindEffective(ctx context.Context, role, shift string, asOf time.Time) (*WageRate, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var best *WageRate
	for i := range f.rates {
		r := &f.rates[i]
		if r.Role != role || r.Shift != shift || !r.IsActive || r.EffectiveDate.After(asOf) {
			continue
		}
		if best == nil || r.EffectiveDate.After(best.EffectiveDate) {
			best = r
		}
	}
	if best == nil {
		return nil, gorm.ErrRecordNotFound
	}
	return best, nil
}

func (f *fakeWageRateRepo) FindEffectiveByRole(ctx context.Context, role string, asOf time.Time) (*WageRate, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var best *WageRate
	for i := range f.rates {
		r := &f.rates[i]
		if r.Role != role || !r.IsActive || r.EffectiveDate.After(asOf) {
			continue
		}
		if best == nil || r.EffectiveDate.After(best.EffectiveDate) {
			best = r
		}
	}
	if best == nil {
		return nil, gorm.ErrRecordNotFound
	}
	return best, nil
}

func (f *fakeWageRateRepo) Deactivate(ctx context.Context, id string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	for i := range f.rates {
		if f.rates[i].ID.String() == id {
			f.rates[i].IsActive = false
			return nil
		}
	}
	return gorm.ErrRecordNotFound
}

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func newRate(role, shift string, hourly int64, effective time.Time) WageRate {
	return WageRate{
		ID:            uuid.New(),
		Role:          role,
		Shift:         shift,
		HourlyRate:    hourly,
		EffectiveDate: effective,
		IsActive:      true,
	}
}

func TestResolvePicksLatestEffectiveRate(t *testing.T) {
	repo := &fakeWageRateRepo{rates: []WageRate{
		newRate("waiter", "MORNING", 20000, date(2025, 1, 1)),
		newRate("waiter", "MORNING", 25000, date(2025, 6, 1)),
	}}
	svc := NewService(repo, Config{})

	got, err := svc.Resolve(context.Background(), "waiter", "MORNING", date(2025, 3, 15))
	require.NoError(t, err)
	assert.Equal(t, int64(20000), got.HourlyRate)

	got, err = svc.Resolve(context.Background(), "waiter", "MORNING", date(2025, 7, 1))
	require.NoError(t, err)
	assert.Equal(t, int64(25000), got.HourlyRate)

	// The boundary day already uses the newer rate.
	got, err = svc.Resolve(context.Background(), "waiter", "MORNING", date(2025, 6, 1))
	require.NoError(t, err)
	assert.Equal(t, int64(25000), got.HourlyRate)
}

func TestResolveFallsBackToRoleRate(t *testing.T) {
	repo := &fakeWageRateRepo{rates: []WageRate{
		newRate("waiter", "MORNING", 22000, date(2025, 1, 1)),
	}}
	svc := NewService(repo, Config{})

	got, err := svc.Resolve(context.Background(), "waiter", "NIGHT", date(2025, 2, 1))
	require.NoError(t, err)
	assert.Equal(t, int64(22000), got.HourlyRate)
}

func TestResolveIgnoresInactiveRates(t *testing.T) {
	inactive := newRate("kitchen", "EVENING", 30000, date(2025, 1, 1))
	inactive.IsActive = false
	repo := &fakeWageRateRepo{rates: []WageRate{inactive}}
	svc := NewService(repo, Config{})

	_, err := svc.Resolve(context.Background(), "kitchen", "EVENING", date(2025, 2, 1))
	assert.ErrorIs(t, err, wagerateerrors.ErrMissingRateConfiguration)
}

func TestResolveMissingRateWithoutAutoDefault(t *testing.T) {
	repo := &fakeWageRateRepo{}
	svc := NewService(repo, Config{AllowAutoDefaultRate: false})

	_, err := svc.Resolve(context.Background(), "kitchen", "NIGHT", date(2025, 4, 10))
	assert.ErrorIs(t, err, wagerateerrors.ErrMissingRateConfiguration)
	assert.Empty(t, repo.rates)
}

func TestResolveAutoCreatesDefaultRate(t *testing.T) {
	repo := &fakeWageRateRepo{}
	svc := NewService(repo, Config{DefaultHourlyRate: 25000, AllowAutoDefaultRate: true})

	got, err := svc.Resolve(context.Background(), "kitchen", "NIGHT", date(2025, 4, 10))
	require.NoError(t, err)
	assert.Equal(t, int64(25000), got.HourlyRate)
	assert.True(t, got.IsActive)
	assert.Equal(t, date(2025, 4, 1), got.EffectiveDate)

	require.Len(t, repo.rates, 1)

	// A second resolve reuses the persisted default instead of creating
	// another row.
	again, err := svc.Resolve(context.Background(), "kitchen", "NIGHT", date(2025, 4, 20))
	require.NoError(t, err)
	assert.Equal(t, got.ID, again.ID)
	assert.Len(t, repo.rates, 1)
}

func TestResolveAutoCreateConcurrentSingleRow(t *testing.T) {
	repo := &fakeWageRateRepo{}
	svc := NewService(repo, Config{DefaultHourlyRate: 20000, AllowAutoDefaultRate: true})

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := svc.Resolve(context.Background(), "waiter", "EVENING", date(2025, 5, 3))
			assert.NoError(t, err)
		}()
	}
	wg.Wait()

	assert.Len(t, repo.rates, 1)
}

func TestDeactivateUnknownRate(t *testing.T) {
	svc := NewService(&fakeWageRateRepo{}, Config{})

	err := svc.Deactivate(context.Background(), uuid.NewString())
	assert.ErrorIs(t, err, wagerateerrors.ErrWageRateNotFound)
}
