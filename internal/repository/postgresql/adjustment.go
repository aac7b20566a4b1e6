package postgresql

import (
	"context"
	"fmt"

	"github.com/sevaksoft/payroll-backend-go/internal/domain/salary"
	"github.com/sevaksoft/payroll-backend-go/internal/pkg/database"
)

type adjustmentRepository struct {
	db *database.DB
}

func NewAdjustmentRepository(db *database.DB) salary.AdjustmentRepository {
	return &adjustmentRepository{db: db}
}

func (r *adjustmentRepository) ListForMonth(ctx context.Context, employeeCode, month string) ([]salary.Adjustment, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, employeecode, month, type, category, amount, description
		FROM salaryadjustments
		WHERE employeecode = $1 AND month = $2
		ORDER BY id
	`

	rows, err := q.Query(ctx, query, employeeCode, month)
	if err != nil {
		return nil, fmt.Errorf("failed to list adjustments: %w", err)
	}
	defer rows.Close()

	var adjustments []salary.Adjustment
	for rows.Next() {
		var (
			adj     salary.Adjustment
			adjType string
		)
		if err := rows.Scan(
			&adj.ID, &adj.EmployeeCode, &adj.Month, &adjType,
			&adj.Category, &adj.Amount, &adj.Description,
		); err != nil {
			return nil, fmt.Errorf("failed to scan adjustment: %w", err)
		}
		adj.Type = salary.AdjustmentType(adjType)
		adjustments = append(adjustments, adj)
	}
	return adjustments, rows.Err()
}

func (r *adjustmentRepository) Upsert(ctx context.Context, adj salary.Adjustment) (salary.Adjustment, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO salaryadjustments (employeecode, month, type, category, amount, description)
		VALUES ($1, $2, $3, $4, $5, $6)
		ON CONFLICT (employeecode, month, type, category) DO UPDATE SET
			amount = EXCLUDED.amount,
			description = EXCLUDED.description
		RETURNING id
	`

	err := q.QueryRow(ctx, query,
		adj.EmployeeCode, adj.Month, string(adj.Type), adj.Category, adj.Amount, adj.Description,
	).Scan(&adj.ID)
	if err != nil {
		return salary.Adjustment{}, fmt.Errorf("failed to upsert adjustment: %w", err)
	}
	return adj, nil
}

func (r *adjustmentRepository) Delete(ctx context.Context, id int64) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `DELETE FROM salaryadjustments WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete adjustment: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return salary.ErrAdjustmentNotFound
	}
	return nil
}
