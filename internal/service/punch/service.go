package punch

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/pontohr/ponto-backend-go/internal/domain/employee"
	"github.com/pontohr/ponto-backend-go/internal/domain/punch"
)

type PunchServiceImpl struct {
	punch.PunchRepository
	employee.EmployeeRepository
}

func NewPunchService(
	punchRepo punch.PunchRepository,
	employeeRepo employee.EmployeeRepository,
) punch.PunchService {
	return &PunchServiceImpl{
		PunchRepository:    punchRepo,
		EmployeeRepository: employeeRepo,
	}
}

// resolveTimestamp combines an optional explicit date and clock time into the
// punch instant plus its calendar day. Falls back to the current local time.
func resolveTimestamp(dateStr, clockStr *string) (day time.Time, at time.Time) {
	if dateStr != nil && clockStr != nil {
		date, _ := time.Parse("2006-01-02", *dateStr)
		clock, _ := time.Parse("15:04:05", *clockStr)
		at = time.Date(date.Year(), date.Month(), date.Day(),
			clock.Hour(), clock.Minute(), clock.Second(), 0, time.Local)
	} else {
		at = time.Now()
	}
	day = time.Date(at.Year(), at.Month(), at.Day(), 0, 0, 0, 0, time.Local)
	return day, at
}

func (s *PunchServiceImpl) activeEmployee(ctx context.Context, employeeID string) (employee.Employee, error) {
	emp, err := s.EmployeeRepository.GetByID(ctx, employeeID)
	if err != nil {
		return employee.Employee{}, err
	}
	if emp.IsTerminated() {
		return employee.Employee{}, employee.ErrEmployeeInactive
	}
	return emp, nil
}

// ClockIn implements punch.PunchService.
func (s *PunchServiceImpl) ClockIn(ctx context.Context, employeeID string, req punch.ClockInRequest) (punch.PunchResponse, error) {
	if err := req.Validate(); err != nil {
		return punch.PunchResponse{}, err
	}

	if _, err := s.activeEmployee(ctx, employeeID); err != nil {
		return punch.PunchResponse{}, err
	}

	day, at := resolveTimestamp(req.Date, req.Time)

	existing, err := s.PunchRepository.GetByEmployeeAndDate(ctx, employeeID, day)
	if err != nil {
		return punch.PunchResponse{}, fmt.Errorf("failed to look up punch record: %w", err)
	}
	if existing != nil && existing.ClockIn != nil {
		return punch.PunchResponse{}, fmt.Errorf("employee %s on %s: %w",
			employeeID, day.Format("2006-01-02"), punch.ErrAlreadyClockedIn)
	}

	id, err := uuid.NewV7()
	if err != nil {
		return punch.PunchResponse{}, fmt.Errorf("failed to generate punch id: %w", err)
	}

	created, err := s.PunchRepository.Create(ctx, punch.Punch{
		ID:         id.String(),
		EmployeeID: employeeID,
		Date:       day,
		ClockIn:    &at,
	})
	if err != nil {
		return punch.PunchResponse{}, fmt.Errorf("failed to record clock-in: %w", err)
	}

	return toPunchResponse(created), nil
}

// ClockOut implements punch.PunchService.
func (s *PunchServiceImpl) ClockOut(ctx context.Context, employeeID string, req punch.ClockOutRequest) (punch.PunchResponse, error) {
	if err := req.Validate(); err != nil {
		return punch.PunchResponse{}, err
	}

	if _, err := s.activeEmployee(ctx, employeeID); err != nil {
		return punch.PunchResponse{}, err
	}

	day, at := resolveTimestamp(req.Date, req.Time)

	existing, err := s.PunchRepository.GetByEmployeeAndDate(ctx, employeeID, day)
	if err != nil {
		return punch.PunchResponse{}, fmt.Errorf("failed to look up punch record: %w", err)
	}
	if existing == nil || existing.ClockIn == nil {
		return punch.PunchResponse{}, fmt.Errorf("employee %s on %s: %w",
			employeeID, day.Format("2006-01-02"), punch.ErrNoOpenClockIn)
	}
	if existing.ClockOut != nil {
		return punch.PunchResponse{}, fmt.Errorf("employee %s on %s: %w",
			employeeID, day.Format("2006-01-02"), punch.ErrAlreadyClockedOut)
	}

	existing.ClockOut = &at
	if err := s.PunchRepository.Update(ctx, *existing); err != nil {
		return punch.PunchResponse{}, fmt.Errorf("failed to record clock-out: %w", err)
	}

	return toPunchResponse(*existing), nil
}

// PunchesInRange implements punch.PunchService.
func (s *PunchServiceImpl) PunchesInRange(ctx context.Context, employeeID string, start, end time.Time) ([]punch.Punch, error) {
	if start.After(end) {
		return nil, fmt.Errorf("employee %s, %s to %s: %w",
			employeeID, start.Format("2006-01-02"), end.Format("2006-01-02"), punch.ErrInvalidRange)
	}

	if _, err := s.EmployeeRepository.GetByID(ctx, employeeID); err != nil {
		return nil, err
	}

	punches, err := s.PunchRepository.ListByEmployeeAndRange(ctx, employeeID, start, end)
	if err != nil {
		return nil, fmt.Errorf("failed to list punches: %w", err)
	}

	return punches, nil
}

func clockToString(t *time.Time) *string {
	if t == nil {
		return nil
	}
	formatted := t.Format("15:04:05")
	return &formatted
}

func toPunchResponse(p punch.Punch) punch.PunchResponse {
	return punch.PunchResponse{
		ID:         p.ID,
		EmployeeID: p.EmployeeID,
		Date:       p.Date.Format("2006-01-02"),
		ClockIn:    clockToString(p.ClockIn),
		ClockOut:   clockToString(p.ClockOut),
	}
}
