package payroll

import (
	"context"
	"testing"
	"time"

	"github.com/pontohr/ponto-backend-go/internal/domain/employee"
	"github.com/pontohr/ponto-backend-go/internal/domain/payroll"
	"github.com/pontohr/ponto-backend-go/internal/domain/punch"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakePunchRepo struct {
	listFn func(ctx context.Context, employeeID string, start, end time.Time) ([]punch.Punch, error)
}

func (f *fakePunchRepo) Create(ctx context.Context, p punch.Punch) (punch.Punch, error) {
	return p, nil
}

func (f *fakePunchRepo) Update(ctx context.Context, p punch.Punch) error {
	return nil
}

func (f *fakePunchRepo) GetByEmployeeAndDate(ctx context.Context, employeeID string, date time.Time) (*punch.Punch, error) {
	return nil, nil
}

func (f *fakePunchRepo) ListByEmployeeAndRange(ctx context.Context, employeeID string, start, end time.Time) ([]punch.Punch, error) {
	if f.listFn == nil {
		return nil, nil
	}
	return f.listFn(ctx, employeeID, start, end)
}

type fakeEmployeeRepo struct {
	getByIDFn   func(ctx context.Context, id string) (employee.Employee, error)
	terminateFn func(ctx context.Context, id string, terminationDate time.Time) error
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
	if f.terminateFn == nil {
		return nil
	}
	return f.terminateFn(ctx, id, terminationDate)
}

func mariaRepo() *fakeEmployeeRepo {
	return &fakeEmployeeRepo{
		getByIDFn: func(ctx context.Context, id string) (employee.Employee, error) {
			return employee.Employee{
				ID:            id,
				FullName:      "Maria Souza",
				MonthlySalary: decimal.NewFromFloat(1940.00),
				AdmissionDate: time.Date(2023, 1, 10, 0, 0, 0, 0, time.Local),
				Active:        true,
			}, nil
		},
	}
}

func TestMonthlyPayslip(t *testing.T) {
	ctx := context.Background()

	t.Run("rejects unparsable month", func(t *testing.T) {
		svc := NewPayrollService(&fakePunchRepo{}, mariaRepo(), testPolicy())

		_, err := svc.MonthlyPayslip(ctx, "emp-1", "2025/03")

		assert.ErrorIs(t, err, punch.ErrInvalidRange)
	})

	t.Run("builds the payslip from the month's punches", func(t *testing.T) {
		punchRepo := &fakePunchRepo{
			listFn: func(ctx context.Context, employeeID string, start, end time.Time) ([]punch.Punch, error) {
				return fullMonth(22, 10*time.Hour), nil
			},
		}
		svc := NewPayrollService(punchRepo, mariaRepo(), testPolicy())

		slip, err := svc.MonthlyPayslip(ctx, "emp-1", "2025-03")

		require.NoError(t, err)
		assert.Equal(t, "Maria Souza", slip.EmployeeName)
		assert.Equal(t, "2025-03", slip.Month)
		assert.Equal(t, 22, slip.DaysWorked)
		assertMoney(t, "1940.00", slip.Gross)
		assertMoney(t, "1687.80", slip.Net)
	})
}

func TestTerminate(t *testing.T) {
	ctx := context.Background()

	t.Run("computes the statement and flips the employee", func(t *testing.T) {
		var terminatedID string
		var terminatedDate time.Time
		empRepo := mariaRepo()
		empRepo.terminateFn = func(ctx context.Context, id string, terminationDate time.Time) error {
			terminatedID = id
			terminatedDate = terminationDate
			return nil
		}
		svc := NewPayrollService(&fakePunchRepo{}, empRepo, testPolicy())

		resp, err := svc.Terminate(ctx, payroll.TerminateEmployeeRequest{
			EmployeeID:      "emp-1",
			TerminationDate: "2023-07-15",
		})

		require.NoError(t, err)
		assert.Equal(t, "emp-1", terminatedID)
		assert.Equal(t, "2023-07-15", terminatedDate.Format("2006-01-02"))
		assert.Equal(t, 6, resp.MonthsWorked)
		assertMoney(t, "970.00", resp.SalaryBalance)
		assertMoney(t, "6101.95", resp.Net)
	})

	t.Run("already terminated leaves state untouched", func(t *testing.T) {
		terminateCalled := false
		terminated := time.Date(2023, 5, 1, 0, 0, 0, 0, time.Local)
		empRepo := &fakeEmployeeRepo{
			getByIDFn: func(ctx context.Context, id string) (employee.Employee, error) {
				return employee.Employee{
					ID:              id,
					MonthlySalary:   decimal.NewFromFloat(1940.00),
					AdmissionDate:   time.Date(2023, 1, 10, 0, 0, 0, 0, time.Local),
					TerminationDate: &terminated,
					Active:          false,
				}, nil
			},
			terminateFn: func(ctx context.Context, id string, terminationDate time.Time) error {
				terminateCalled = true
				return nil
			},
		}
		svc := NewPayrollService(&fakePunchRepo{}, empRepo, testPolicy())

		_, err := svc.Terminate(ctx, payroll.TerminateEmployeeRequest{
			EmployeeID:      "emp-1",
			TerminationDate: "2023-07-15",
		})

		assert.ErrorIs(t, err, payroll.ErrAlreadyTerminated)
		assert.False(t, terminateCalled)
	})

	t.Run("rejects malformed date", func(t *testing.T) {
		svc := NewPayrollService(&fakePunchRepo{}, mariaRepo(), testPolicy())

		_, err := svc.Terminate(ctx, payroll.TerminateEmployeeRequest{
			EmployeeID:      "emp-1",
			TerminationDate: "15/07/2023",
		})

		assert.Error(t, err)
	})
}
