package postgresql

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/sevaksoft/payroll-backend-go/internal/domain/salary"
	"github.com/sevaksoft/payroll-backend-go/internal/pkg/database"
)

type salaryRepository struct {
	db *database.DB
}

func NewSalaryRepository(db *database.DB) salary.SalaryRepository {
	return &salaryRepository{db: db}
}

const salaryColumns = `
	employeecode, month, grosssalary, netsalary, basesalary, perdayrate,
	paiddays, absentdays, leavedays, totaldeductions, totaladditions,
	totalworkedhours, overtimehours, overtimeamount, tdsdeduction,
	professionaltax, incentiveamount, isheld, holdreason, breakdownjson,
	status, calculatedat, calculatedby
`

func (r *salaryRepository) Upsert(ctx context.Context, record salary.MonthlySalary) error {
	q := GetQuerier(ctx, r.db)

	// A FINALIZED row keeps its status: recomputes refresh the numbers but
	// never reopen the latch.
	query := `
		INSERT INTO monthlysalary (` + salaryColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15,
			$16, $17, $18, $19, $20, $21, $22, $23)
		ON CONFLICT (employeecode, month) DO UPDATE SET
			grosssalary = EXCLUDED.grosssalary,
			netsalary = EXCLUDED.netsalary,
			basesalary = EXCLUDED.basesalary,
			perdayrate = EXCLUDED.perdayrate,
			paiddays = EXCLUDED.paiddays,
			absentdays = EXCLUDED.absentdays,
			leavedays = EXCLUDED.leavedays,
			totaldeductions = EXCLUDED.totaldeductions,
			totaladditions = EXCLUDED.totaladditions,
			totalworkedhours = EXCLUDED.totalworkedhours,
			overtimehours = EXCLUDED.overtimehours,
			overtimeamount = EXCLUDED.overtimeamount,
			tdsdeduction = EXCLUDED.tdsdeduction,
			professionaltax = EXCLUDED.professionaltax,
			incentiveamount = EXCLUDED.incentiveamount,
			isheld = EXCLUDED.isheld,
			holdreason = EXCLUDED.holdreason,
			breakdownjson = EXCLUDED.breakdownjson,
			status = CASE WHEN monthlysalary.status = 1 THEN 1 ELSE EXCLUDED.status END,
			calculatedat = EXCLUDED.calculatedat,
			calculatedby = EXCLUDED.calculatedby
	`

	_, err := q.Exec(ctx, query,
		record.EmployeeCode, record.Month, record.GrossSalary, record.NetSalary,
		record.BaseSalary, record.PerDayRate, record.PaidDays, record.AbsentDays,
		record.LeaveDays, record.TotalDeductions, record.TotalAdditions,
		record.TotalWorkedHours, record.OvertimeHours, record.OvertimeAmount,
		record.TDSDeduction, record.ProfessionalTax, record.IncentiveAmount,
		record.IsHeld, record.HoldReason, record.BreakdownJSON,
		int(record.Status), record.CalculatedAt, record.CalculatedBy,
	)
	if err != nil {
		return fmt.Errorf("failed to upsert monthly salary: %w", err)
	}
	return nil
}

func (r *salaryRepository) Get(ctx context.Context, employeeCode, month string, finalizedOnly bool) (salary.MonthlySalary, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + salaryColumns + `
		FROM monthlysalary
		WHERE employeecode = $1 AND month = $2
	`

	record, err := scanMonthlySalary(q.QueryRow(ctx, query, employeeCode, month))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return salary.MonthlySalary{}, salary.ErrSalaryNotFound
		}
		return salary.MonthlySalary{}, fmt.Errorf("failed to get monthly salary: %w", err)
	}
	if finalizedOnly && record.Status != salary.StatusFinalized {
		return salary.MonthlySalary{}, salary.ErrSalaryNotFinalized
	}
	return record, nil
}

func (r *salaryRepository) GetLatest(ctx context.Context, employeeCode string, finalizedOnly bool) (salary.MonthlySalary, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + salaryColumns + `
		FROM monthlysalary
		WHERE employeecode = $1
	`
	if finalizedOnly {
		query += ` AND status = 1`
	}
	query += ` ORDER BY month DESC LIMIT 1`

	record, err := scanMonthlySalary(q.QueryRow(ctx, query, employeeCode))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return salary.MonthlySalary{}, salary.ErrSalaryNotFound
		}
		return salary.MonthlySalary{}, fmt.Errorf("failed to get latest monthly salary: %w", err)
	}
	return record, nil
}

func (r *salaryRepository) Finalize(ctx context.Context, employeeCode, month, actor string) error {
	q := GetQuerier(ctx, r.db)

	// Already-finalized rows match the WHERE but are a no-op update, which
	// keeps the latch idempotent.
	query := `
		UPDATE monthlysalary
		SET status = 1, calculatedby = $3
		WHERE employeecode = $1 AND month = $2
	`

	tag, err := q.Exec(ctx, query, employeeCode, month, actor)
	if err != nil {
		return fmt.Errorf("failed to finalize monthly salary: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return salary.ErrSalaryNotFound
	}
	return nil
}

func (r *salaryRepository) FinalizeAll(ctx context.Context, month, actor string) (int64, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE monthlysalary
		SET status = 1, calculatedby = $2
		WHERE month = $1 AND status = 0
	`

	tag, err := q.Exec(ctx, query, month, actor)
	if err != nil {
		return 0, fmt.Errorf("failed to finalize monthly salaries: %w", err)
	}
	return tag.RowsAffected(), nil
}

func scanMonthlySalary(row pgx.Row) (salary.MonthlySalary, error) {
	var (
		record salary.MonthlySalary
		status int
	)
	err := row.Scan(
		&record.EmployeeCode, &record.Month, &record.GrossSalary, &record.NetSalary,
		&record.BaseSalary, &record.PerDayRate, &record.PaidDays, &record.AbsentDays,
		&record.LeaveDays, &record.TotalDeductions, &record.TotalAdditions,
		&record.TotalWorkedHours, &record.OvertimeHours, &record.OvertimeAmount,
		&record.TDSDeduction, &record.ProfessionalTax, &record.IncentiveAmount,
		&record.IsHeld, &record.HoldReason, &record.BreakdownJSON,
		&status, &record.CalculatedAt, &record.CalculatedBy,
	)
	if err != nil {
		return salary.MonthlySalary{}, err
	}
	record.Status = salary.Status(status)
	return record, nil
}
