package postgresql

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/pontohr/ponto-backend-go/internal/domain/punch"
	"github.com/pontohr/ponto-backend-go/internal/pkg/database"
)

type punchRepository struct {
	db *database.DB
}

func NewPunchRepository(db *database.DB) punch.PunchRepository {
	return &punchRepository{db: db}
}

// Create implements punch.PunchRepository.
func (r *punchRepository) Create(ctx context.Context, newPunch punch.Punch) (punch.Punch, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO punches (id, employee_id, date, clock_in, clock_out)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING created_at, updated_at
	`

	err := q.QueryRow(ctx, query,
		newPunch.ID,
		newPunch.EmployeeID,
		newPunch.Date,
		newPunch.ClockIn,
		newPunch.ClockOut,
	).Scan(&newPunch.CreatedAt, &newPunch.UpdatedAt)

	if err != nil {
		return punch.Punch{}, fmt.Errorf("failed to create punch: %w", err)
	}

	return newPunch, nil
}

// Update implements punch.PunchRepository.
func (r *punchRepository) Update(ctx context.Context, p punch.Punch) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE punches
		SET clock_in = $2, clock_out = $3, updated_at = NOW()
		WHERE id = $1
	`

	tag, err := q.Exec(ctx, query, p.ID, p.ClockIn, p.ClockOut)
	if err != nil {
		return fmt.Errorf("failed to update punch: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return punch.ErrPunchNotFound
	}

	return nil
}

// GetByEmployeeAndDate implements punch.PunchRepository.
func (r *punchRepository) GetByEmployeeAndDate(ctx context.Context, employeeID string, date time.Time) (*punch.Punch, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, employee_id, date, clock_in, clock_out, created_at, updated_at
		FROM punches
		WHERE employee_id = $1
		  AND date = $2
		LIMIT 1
	`

	var p punch.Punch
	err := q.QueryRow(ctx, query, employeeID, date).Scan(
		&p.ID, &p.EmployeeID, &p.Date, &p.ClockIn, &p.ClockOut,
		&p.CreatedAt, &p.UpdatedAt,
	)

	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get punch by employee and date: %w", err)
	}

	return &p, nil
}

// ListByEmployeeAndRange implements punch.PunchRepository.
func (r *punchRepository) ListByEmployeeAndRange(ctx context.Context, employeeID string, start, end time.Time) ([]punch.Punch, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, employee_id, date, clock_in, clock_out, created_at, updated_at
		FROM punches
		WHERE employee_id = $1
		  AND date >= $2
		  AND date <= $3
		ORDER BY date ASC
	`

	rows, err := q.Query(ctx, query, employeeID, start, end)
	if err != nil {
		return nil, fmt.Errorf("failed to list punches: %w", err)
	}
	defer rows.Close()

	var punches []punch.Punch
	for rows.Next() {
		var p punch.Punch
		if err := rows.Scan(
			&p.ID, &p.EmployeeID, &p.Date, &p.ClockIn, &p.ClockOut,
			&p.CreatedAt, &p.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan punch: %w", err)
		}
		punches = append(punches, p)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate punches: %w", err)
	}

	return punches, nil
}
