package postgresql

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/sevaksoft/payroll-backend-go/internal/domain/salary"
	"github.com/sevaksoft/payroll-backend-go/internal/pkg/database"
)

type overtimeToggleRepository struct {
	db *database.DB
}

func NewOvertimeToggleRepository(db *database.DB) salary.OvertimeToggleRepository {
	return &overtimeToggleRepository{db: db}
}

func (r *overtimeToggleRepository) IsEnabled(ctx context.Context, employeeCode, month string) (bool, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT isovertimeenabled
		FROM monthly_ot_toggle
		WHERE employeecode = $1 AND month = $2
	`

	var enabled bool
	err := q.QueryRow(ctx, query, employeeCode, month).Scan(&enabled)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return false, nil
		}
		return false, fmt.Errorf("failed to get overtime toggle: %w", err)
	}
	return enabled, nil
}

func (r *overtimeToggleRepository) Set(ctx context.Context, toggle salary.OvertimeToggle) error {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO monthly_ot_toggle (employeecode, month, isovertimeenabled)
		VALUES ($1, $2, $3)
		ON CONFLICT (employeecode, month) DO UPDATE SET
			isovertimeenabled = EXCLUDED.isovertimeenabled
	`

	if _, err := q.Exec(ctx, query, toggle.EmployeeCode, toggle.Month, toggle.IsOvertimeEnabled); err != nil {
		return fmt.Errorf("failed to set overtime toggle: %w", err)
	}
	return nil
}
