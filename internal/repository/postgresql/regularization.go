package postgresql

import (
	"context"
	"fmt"
	"time"

	"github.com/sevaksoft/payroll-backend-go/internal/domain/regularization"
	"github.com/sevaksoft/payroll-backend-go/internal/pkg/database"
	"github.com/sevaksoft/payroll-backend-go/internal/pkg/paycycle"
)

type regularizationRepository struct {
	db *database.DB
}

func NewRegularizationRepository(db *database.DB) regularization.RegularizationRepository {
	return &regularizationRepository{db: db}
}

func (r *regularizationRepository) ListApprovedBetween(ctx context.Context, employeeCode string, from, to paycycle.LocalDate) ([]regularization.Regularization, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT employeecode, regularizationdate, originalstatus, regularizedstatus,
			   reason, approvedby, status
		FROM attendanceregularization
		WHERE employeecode = $1
		  AND regularizationdate >= $2 AND regularizationdate <= $3
		  AND status = $4
		ORDER BY regularizationdate
	`

	rows, err := q.Query(ctx, query, employeeCode, from.Time(), to.Time(), regularization.StatusApproved)
	if err != nil {
		return nil, fmt.Errorf("failed to list regularizations: %w", err)
	}
	defer rows.Close()

	var regs []regularization.Regularization
	for rows.Next() {
		var (
			reg  regularization.Regularization
			date time.Time
		)
		if err := rows.Scan(
			&reg.EmployeeCode, &date, &reg.OriginalStatus, &reg.RegularizedStatus,
			&reg.Reason, &reg.ApprovedBy, &reg.Status,
		); err != nil {
			return nil, fmt.Errorf("failed to scan regularization: %w", err)
		}
		reg.Date = paycycle.DateOf(date)
		regs = append(regs, reg)
	}
	return regs, rows.Err()
}

func (r *regularizationRepository) Upsert(ctx context.Context, reg regularization.Regularization) error {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO attendanceregularization (
			employeecode, regularizationdate, originalstatus, regularizedstatus,
			reason, approvedby, status
		) VALUES ($1, $2, $3, $4, $5, $6, $7)
		ON CONFLICT (employeecode, regularizationdate) DO UPDATE SET
			originalstatus = EXCLUDED.originalstatus,
			regularizedstatus = EXCLUDED.regularizedstatus,
			reason = EXCLUDED.reason,
			approvedby = EXCLUDED.approvedby,
			status = EXCLUDED.status
	`

	_, err := q.Exec(ctx, query,
		reg.EmployeeCode, reg.Date.Time(), reg.OriginalStatus, reg.RegularizedStatus,
		reg.Reason, reg.ApprovedBy, reg.Status,
	)
	if err != nil {
		return fmt.Errorf("failed to upsert regularization: %w", err)
	}
	return nil
}

func (r *regularizationRepository) Delete(ctx context.Context, employeeCode string, date paycycle.LocalDate) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `
		DELETE FROM attendanceregularization
		WHERE employeecode = $1 AND regularizationdate = $2
	`, employeeCode, date.Time())
	if err != nil {
		return fmt.Errorf("failed to delete regularization: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return regularization.ErrRegularizationNotFound
	}
	return nil
}
