package punch

import (
	"context"
	"testing"
	"time"

	"github.com/pontohr/ponto-backend-go/internal/domain/employee"
	"github.com/pontohr/ponto-backend-go/internal/domain/punch"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakePunchRepo struct {
	createFn func(ctx context.Context, p punch.Punch) (punch.Punch, error)
	updateFn func(ctx context.Context, p punch.Punch) error
	getFn    func(ctx context.Context, employeeID string, date time.Time) (*punch.Punch, error)
	listFn   func(ctx context.Context, employeeID string, start, end time.Time) ([]punch.Punch, error)
}

func (f *fakePunchRepo) Create(ctx context.Context, p punch.Punch) (punch.Punch, error) {
	return f.createFn(ctx, p)
}

func (f *fakePunchRepo) Update(ctx context.Context, p punch.Punch) error {
	return f.updateFn(ctx, p)
}

func (f *fakePunchRepo) GetByEmployeeAndDate(ctx context.Context, employeeID string, date time.Time) (*punch.Punch, error) {
	return f.getFn(ctx, employeeID, date)
}

func (f *fakePunchRepo) ListByEmployeeAndRange(ctx context.Context, employeeID string, start, end time.Time) ([]punch.Punch, error) {
	return f.listFn(ctx, employeeID, start, end)
}

type fakeEmployeeRepo struct {
	getByIDFn func(ctx context.Context, id string) (employee.Employee, error)
}

func (f *fakeEmployeeRepo) GetByID(ctx context.Context, id string) (employee.Employee, error) {
	return f.getByIDFn(ctx, id)
}

func (f *fakeEmployeeRepo) GetByUserID(ctx context.Context, userID string) (employee.Employee, error) {
	return employee.Employee{}, employee.ErrEmployeeNotFound
}

func (f *fakeEmployeeRepo) Create(ctx context.Context, e employee.Employee) (employee.Employee, error) {
	return e, nil
}

func (f *fakeEmployeeRepo) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	return false, nil
}

func (f *fakeEmployeeRepo) ListActive(ctx context.Context) ([]employee.Employee, error) {
	return nil, nil
}

func (f *fakeEmployeeRepo) Terminate(ctx context.Context, id string, terminationDate time.Time) error {
	return nil
}

func activeEmployeeRepo() *fakeEmployeeRepo {
	return &fakeEmployeeRepo{
		getByIDFn: func(ctx context.Context, id string) (employee.Employee, error) {
			return employee.Employee{
				ID:            id,
				FullName:      "Maria Souza",
				MonthlySalary: decimal.NewFromFloat(1940.00),
				Active:        true,
			}, nil
		},
	}
}

func strPtr(s string) *string { return &s }

func TestClockIn(t *testing.T) {
	ctx := context.Background()

	t.Run("creates record for a fresh day", func(t *testing.T) {
		var created punch.Punch
		punchRepo := &fakePunchRepo{
			getFn: func(ctx context.Context, employeeID string, date time.Time) (*punch.Punch, error) {
				return nil, nil
			},
			createFn: func(ctx context.Context, p punch.Punch) (punch.Punch, error) {
				created = p
				return p, nil
			},
		}
		svc := NewPunchService(punchRepo, activeEmployeeRepo())

		resp, err := svc.ClockIn(ctx, "emp-1", punch.ClockInRequest{
			Date: strPtr("2025-03-10"),
			Time: strPtr("08:00:00"),
		})

		require.NoError(t, err)
		assert.Equal(t, "emp-1", created.EmployeeID)
		require.NotNil(t, created.ClockIn)
		assert.Nil(t, created.ClockOut)
		assert.Equal(t, "2025-03-10", resp.Date)
		require.NotNil(t, resp.ClockIn)
		assert.Equal(t, "08:00:00", *resp.ClockIn)
		assert.Nil(t, resp.ClockOut)
	})

	t.Run("rejects duplicate clock-in without touching state", func(t *testing.T) {
		in := time.Date(2025, 3, 10, 8, 0, 0, 0, time.Local)
		createCalled := false
		punchRepo := &fakePunchRepo{
			getFn: func(ctx context.Context, employeeID string, date time.Time) (*punch.Punch, error) {
				return &punch.Punch{ID: "p-1", EmployeeID: employeeID, Date: date, ClockIn: &in}, nil
			},
			createFn: func(ctx context.Context, p punch.Punch) (punch.Punch, error) {
				createCalled = true
				return p, nil
			},
		}
		svc := NewPunchService(punchRepo, activeEmployeeRepo())

		_, err := svc.ClockIn(ctx, "emp-1", punch.ClockInRequest{
			Date: strPtr("2025-03-10"),
			Time: strPtr("09:00:00"),
		})

		assert.ErrorIs(t, err, punch.ErrAlreadyClockedIn)
		assert.False(t, createCalled)
	})

	t.Run("rejects terminated employee", func(t *testing.T) {
		punchRepo := &fakePunchRepo{}
		empRepo := &fakeEmployeeRepo{
			getByIDFn: func(ctx context.Context, id string) (employee.Employee, error) {
				return employee.Employee{ID: id, Active: false}, nil
			},
		}
		svc := NewPunchService(punchRepo, empRepo)

		_, err := svc.ClockIn(ctx, "emp-1", punch.ClockInRequest{
			Date: strPtr("2025-03-10"),
			Time: strPtr("08:00:00"),
		})

		assert.ErrorIs(t, err, employee.ErrEmployeeInactive)
	})

	t.Run("rejects date without time", func(t *testing.T) {
		svc := NewPunchService(&fakePunchRepo{}, activeEmployeeRepo())

		_, err := svc.ClockIn(ctx, "emp-1", punch.ClockInRequest{Date: strPtr("2025-03-10")})

		assert.Error(t, err)
	})
}

func TestClockOut(t *testing.T) {
	ctx := context.Background()

	t.Run("closes an open day", func(t *testing.T) {
		in := time.Date(2025, 3, 10, 8, 0, 0, 0, time.Local)
		var updated punch.Punch
		punchRepo := &fakePunchRepo{
			getFn: func(ctx context.Context, employeeID string, date time.Time) (*punch.Punch, error) {
				return &punch.Punch{ID: "p-1", EmployeeID: employeeID, Date: date, ClockIn: &in}, nil
			},
			updateFn: func(ctx context.Context, p punch.Punch) error {
				updated = p
				return nil
			},
		}
		svc := NewPunchService(punchRepo, activeEmployeeRepo())

		resp, err := svc.ClockOut(ctx, "emp-1", punch.ClockOutRequest{
			Date: strPtr("2025-03-10"),
			Time: strPtr("19:30:00"),
		})

		require.NoError(t, err)
		require.NotNil(t, updated.ClockOut)
		assert.Equal(t, "19:30:00", updated.ClockOut.Format("15:04:05"))
		require.NotNil(t, resp.ClockOut)
		assert.Equal(t, "19:30:00", *resp.ClockOut)
	})

	t.Run("rejects clock-out without prior clock-in", func(t *testing.T) {
		punchRepo := &fakePunchRepo{
			getFn: func(ctx context.Context, employeeID string, date time.Time) (*punch.Punch, error) {
				return nil, nil
			},
		}
		svc := NewPunchService(punchRepo, activeEmployeeRepo())

		_, err := svc.ClockOut(ctx, "emp-1", punch.ClockOutRequest{
			Date: strPtr("2025-03-10"),
			Time: strPtr("18:00:00"),
		})

		assert.ErrorIs(t, err, punch.ErrNoOpenClockIn)
	})

	t.Run("rejects re-closing a closed day", func(t *testing.T) {
		in := time.Date(2025, 3, 10, 8, 0, 0, 0, time.Local)
		out := time.Date(2025, 3, 10, 18, 0, 0, 0, time.Local)
		updateCalled := false
		punchRepo := &fakePunchRepo{
			getFn: func(ctx context.Context, employeeID string, date time.Time) (*punch.Punch, error) {
				return &punch.Punch{ID: "p-1", EmployeeID: employeeID, Date: date, ClockIn: &in, ClockOut: &out}, nil
			},
			updateFn: func(ctx context.Context, p punch.Punch) error {
				updateCalled = true
				return nil
			},
		}
		svc := NewPunchService(punchRepo, activeEmployeeRepo())

		_, err := svc.ClockOut(ctx, "emp-1", punch.ClockOutRequest{
			Date: strPtr("2025-03-10"),
			Time: strPtr("19:00:00"),
		})

		assert.ErrorIs(t, err, punch.ErrAlreadyClockedOut)
		assert.False(t, updateCalled)
	})
}

func TestPunchesInRange(t *testing.T) {
	ctx := context.Background()

	t.Run("rejects inverted range", func(t *testing.T) {
		svc := NewPunchService(&fakePunchRepo{}, activeEmployeeRepo())

		start := time.Date(2025, 3, 31, 0, 0, 0, 0, time.Local)
		end := time.Date(2025, 3, 1, 0, 0, 0, 0, time.Local)
		_, err := svc.PunchesInRange(ctx, "emp-1", start, end)

		assert.ErrorIs(t, err, punch.ErrInvalidRange)
	})

	t.Run("returns chronological records", func(t *testing.T) {
		day1 := time.Date(2025, 3, 10, 0, 0, 0, 0, time.Local)
		day2 := time.Date(2025, 3, 11, 0, 0, 0, 0, time.Local)
		punchRepo := &fakePunchRepo{
			listFn: func(ctx context.Context, employeeID string, start, end time.Time) ([]punch.Punch, error) {
				return []punch.Punch{
					{ID: "p-1", EmployeeID: employeeID, Date: day1},
					{ID: "p-2", EmployeeID: employeeID, Date: day2},
				}, nil
			},
		}
		svc := NewPunchService(punchRepo, activeEmployeeRepo())

		start := time.Date(2025, 3, 1, 0, 0, 0, 0, time.Local)
		end := time.Date(2025, 3, 31, 0, 0, 0, 0, time.Local)
		punches, err := svc.PunchesInRange(ctx, "emp-1", start, end)

		require.NoError(t, err)
		require.Len(t, punches, 2)
		assert.True(t, punches[0].Date.Before(punches[1].Date))
	})
}
