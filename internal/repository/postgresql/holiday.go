package postgresql

import (
	"context"
	"fmt"
	"time"

	"github.com/sevaksoft/payroll-backend-go/internal/domain/holiday"
	"github.com/sevaksoft/payroll-backend-go/internal/pkg/database"
	"github.com/sevaksoft/payroll-backend-go/internal/pkg/paycycle"
)

type holidayRepository struct {
	db *database.DB
}

func NewHolidayRepository(db *database.DB) holiday.HolidayRepository {
	return &holidayRepository{db: db}
}

func (r *holidayRepository) ListActiveBetween(ctx context.Context, from, to paycycle.LocalDate) ([]holiday.Holiday, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT holidaydate, holidayname, isactive
		FROM holidays
		WHERE holidaydate >= $1 AND holidaydate <= $2 AND isactive = TRUE
		ORDER BY holidaydate
	`

	rows, err := q.Query(ctx, query, from.Time(), to.Time())
	if err != nil {
		return nil, fmt.Errorf("failed to list holidays: %w", err)
	}
	defer rows.Close()

	var holidays []holiday.Holiday
	for rows.Next() {
		var (
			h    holiday.Holiday
			date time.Time
		)
		if err := rows.Scan(&date, &h.Name, &h.IsActive); err != nil {
			return nil, fmt.Errorf("failed to scan holiday: %w", err)
		}
		h.Date = paycycle.DateOf(date)
		holidays = append(holidays, h)
	}
	return holidays, rows.Err()
}

func (r *holidayRepository) Upsert(ctx context.Context, h holiday.Holiday) error {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO holidays (holidaydate, holidayname, isactive)
		VALUES ($1, $2, $3)
		ON CONFLICT (holidaydate) DO UPDATE SET
			holidayname = EXCLUDED.holidayname,
			isactive = EXCLUDED.isactive
	`

	if _, err := q.Exec(ctx, query, h.Date.Time(), h.Name, h.IsActive); err != nil {
		return fmt.Errorf("failed to upsert holiday: %w", err)
	}
	return nil
}

func (r *holidayRepository) Deactivate(ctx context.Context, date paycycle.LocalDate) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `UPDATE holidays SET isactive = FALSE WHERE holidaydate = $1`, date.Time())
	if err != nil {
		return fmt.Errorf("failed to deactivate holiday: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return holiday.ErrHolidayNotFound
	}
	return nil
}
