package postgresql

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/sevaksoft/payroll-backend-go/internal/domain/salary"
	"github.com/sevaksoft/payroll-backend-go/internal/pkg/database"
)

// pgUniqueViolation fires on the partial unique index over unreleased
// holds, making concurrent creates race-safe.
const pgUniqueViolation = "23505"

type holdRepository struct {
	db *database.DB
}

func NewHoldRepository(db *database.DB) salary.HoldRepository {
	return &holdRepository{db: db}
}

const holdColumns = `
	id, employeecode, month, holdtype, reason, isreleased, createdat, releasedat
`

func (r *holdRepository) GetActive(ctx context.Context, employeeCode, month string) (*salary.Hold, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + holdColumns + `
		FROM salaryholds
		WHERE employeecode = $1 AND month = $2 AND isreleased = FALSE
	`

	hold, err := scanHold(q.QueryRow(ctx, query, employeeCode, month))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get active hold: %w", err)
	}
	return &hold, nil
}

func (r *holdRepository) Create(ctx context.Context, hold salary.Hold) (salary.Hold, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO salaryholds (employeecode, month, holdtype, reason, isreleased, createdat)
		VALUES ($1, $2, $3, $4, FALSE, NOW())
		RETURNING ` + holdColumns

	created, err := scanHold(q.QueryRow(ctx, query,
		hold.EmployeeCode, hold.Month, string(hold.HoldType), hold.Reason,
	))
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation {
			return salary.Hold{}, salary.ErrActiveHoldExists
		}
		return salary.Hold{}, fmt.Errorf("failed to create hold: %w", err)
	}
	return created, nil
}

func (r *holdRepository) Release(ctx context.Context, id int64, actor string) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE salaryholds
		SET isreleased = TRUE, releasedat = NOW(), releasedby = $2
		WHERE id = $1 AND isreleased = FALSE
	`

	tag, err := q.Exec(ctx, query, id, actor)
	if err != nil {
		return fmt.Errorf("failed to release hold: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return salary.ErrHoldNotFound
	}
	return nil
}

func (r *holdRepository) ListForMonth(ctx context.Context, month string) ([]salary.Hold, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + holdColumns + `
		FROM salaryholds
		WHERE month = $1
		ORDER BY createdat DESC
	`

	rows, err := q.Query(ctx, query, month)
	if err != nil {
		return nil, fmt.Errorf("failed to list holds: %w", err)
	}
	defer rows.Close()

	var holds []salary.Hold
	for rows.Next() {
		hold, err := scanHold(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan hold: %w", err)
		}
		holds = append(holds, hold)
	}
	return holds, rows.Err()
}

func scanHold(row pgx.Row) (salary.Hold, error) {
	var (
		hold     salary.Hold
		holdType string
	)
	err := row.Scan(
		&hold.ID, &hold.EmployeeCode, &hold.Month, &holdType, &hold.Reason,
		&hold.IsReleased, &hold.CreatedAt, &hold.ReleasedAt,
	)
	if err != nil {
		return salary.Hold{}, err
	}
	hold.HoldType = salary.HoldType(holdType)
	return hold, nil
}
