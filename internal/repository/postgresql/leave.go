package postgresql

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/sevaksoft/payroll-backend-go/internal/domain/leave"
	"github.com/sevaksoft/payroll-backend-go/internal/pkg/database"
)

type leaveRepository struct {
	db *database.DB
}

func NewLeaveRepository(db *database.DB) leave.LeaveRepository {
	return &leaveRepository{db: db}
}

func (r *leaveRepository) GetMonthlyUsage(ctx context.Context, employeeCode, month string) (leave.MonthlyUsage, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT employeecode, leavemonth, paidleavedates, casualleavedates, updatedby, updatedat
		FROM monthlyleaveusage
		WHERE employeecode = $1 AND leavemonth = $2
	`

	usage, err := scanMonthlyUsage(q.QueryRow(ctx, query, employeeCode, month))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return leave.MonthlyUsage{}, leave.ErrUsageNotFound
		}
		return leave.MonthlyUsage{}, fmt.Errorf("failed to get monthly leave usage: %w", err)
	}
	return usage, nil
}

func (r *leaveRepository) UpsertMonthlyUsage(ctx context.Context, usage leave.MonthlyUsage) error {
	q := GetQuerier(ctx, r.db)

	paidJSON, err := json.Marshal(usage.PaidLeaveDates)
	if err != nil {
		return fmt.Errorf("failed to marshal paid leave dates: %w", err)
	}
	casualJSON, err := json.Marshal(usage.CasualLeaveDates)
	if err != nil {
		return fmt.Errorf("failed to marshal casual leave dates: %w", err)
	}

	var paidUsed, casualUsed float64
	for _, d := range usage.PaidLeaveDates {
		paidUsed += d.Value
	}
	for _, d := range usage.CasualLeaveDates {
		casualUsed += d.Value
	}

	query := `
		INSERT INTO monthlyleaveusage (
			employeecode, leavemonth, paidleavedates, casualleavedates,
			paidleavedaysused, casualleavedaysused, updatedby, updatedat
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		ON CONFLICT (employeecode, leavemonth) DO UPDATE SET
			paidleavedates = EXCLUDED.paidleavedates,
			casualleavedates = EXCLUDED.casualleavedates,
			paidleavedaysused = EXCLUDED.paidleavedaysused,
			casualleavedaysused = EXCLUDED.casualleavedaysused,
			updatedby = EXCLUDED.updatedby,
			updatedat = EXCLUDED.updatedat
	`

	_, err = q.Exec(ctx, query,
		usage.EmployeeCode, usage.Month, string(paidJSON), string(casualJSON),
		paidUsed, casualUsed, usage.UpdatedBy, usage.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to upsert monthly leave usage: %w", err)
	}
	return nil
}

func (r *leaveRepository) ListUsageForYear(ctx context.Context, employeeCode string, year int) ([]leave.MonthlyUsage, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT employeecode, leavemonth, paidleavedates, casualleavedates, updatedby, updatedat
		FROM monthlyleaveusage
		WHERE employeecode = $1 AND leavemonth LIKE $2
		ORDER BY leavemonth
	`

	rows, err := q.Query(ctx, query, employeeCode, fmt.Sprintf("%04d-%%", year))
	if err != nil {
		return nil, fmt.Errorf("failed to list monthly leave usage: %w", err)
	}
	defer rows.Close()

	var usages []leave.MonthlyUsage
	for rows.Next() {
		usage, err := scanMonthlyUsage(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan monthly leave usage: %w", err)
		}
		usages = append(usages, usage)
	}
	return usages, rows.Err()
}

func (r *leaveRepository) GetEntitlement(ctx context.Context, employeeCode string, year int) (leave.Entitlement, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT employeecode, leaveyear, allowedleaves, usedpaidleaves, usedcasualleaves
		FROM employeeleaves
		WHERE employeecode = $1 AND leaveyear = $2
	`

	var ent leave.Entitlement
	err := q.QueryRow(ctx, query, employeeCode, year).Scan(
		&ent.EmployeeCode, &ent.Year, &ent.AllowedLeaves, &ent.UsedPaidLeaves, &ent.UsedCasualLeaves,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return leave.Entitlement{}, leave.ErrEntitlementNotFound
		}
		return leave.Entitlement{}, fmt.Errorf("failed to get leave entitlement: %w", err)
	}
	return ent, nil
}

func (r *leaveRepository) UpdateEntitlementUsage(ctx context.Context, employeeCode string, year int, usedPaid, usedCasual float64) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE employeeleaves
		SET usedpaidleaves = $3, usedcasualleaves = $4
		WHERE employeecode = $1 AND leaveyear = $2
	`

	tag, err := q.Exec(ctx, query, employeeCode, year, usedPaid, usedCasual)
	if err != nil {
		return fmt.Errorf("failed to update leave entitlement usage: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return leave.ErrEntitlementNotFound
	}
	return nil
}

func scanMonthlyUsage(row pgx.Row) (leave.MonthlyUsage, error) {
	var (
		usage     leave.MonthlyUsage
		paidRaw   *string
		casualRaw *string
	)
	err := row.Scan(
		&usage.EmployeeCode, &usage.Month, &paidRaw, &casualRaw,
		&usage.UpdatedBy, &usage.UpdatedAt,
	)
	if err != nil {
		return leave.MonthlyUsage{}, err
	}

	if paidRaw != nil {
		if usage.PaidLeaveDates, err = leave.ParseLeaveDates(*paidRaw, leave.DefaultPaidValue); err != nil {
			return leave.MonthlyUsage{}, fmt.Errorf("paid leave dates: %w", err)
		}
	}
	if casualRaw != nil {
		if usage.CasualLeaveDates, err = leave.ParseLeaveDates(*casualRaw, leave.DefaultCasualValue); err != nil {
			return leave.MonthlyUsage{}, fmt.Errorf("casual leave dates: %w", err)
		}
	}
	return usage, nil
}
