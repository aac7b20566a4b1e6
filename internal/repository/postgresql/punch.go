package postgresql

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/sevaksoft/payroll-backend-go/internal/domain/punch"
	"github.com/sevaksoft/payroll-backend-go/internal/pkg/database"
	"github.com/sevaksoft/payroll-backend-go/internal/pkg/paycycle"
)

// The device sync job writes punches into one table per calendar month.
const punchTablePattern = "devicelogs_%02d_%04d"

// pgUndefinedTable is raised when a month's partition was never created;
// that month simply has no punches.
const pgUndefinedTable = "42P01"

type punchLogRepository struct {
	db *database.DB
}

func NewPunchLogRepository(db *database.DB) punch.LogRepository {
	return &punchLogRepository{db: db}
}

func (r *punchLogRepository) GetForDates(ctx context.Context, employeeCode string, from, to paycycle.LocalDate) ([]punch.Log, error) {
	// Early-morning punches up to the crossover hour belong to the last
	// workday of the range, so read one extra partial day.
	lowerBound := from.At(0, 0).Time()
	upperBound := to.AddDays(1).At(5, 0).Time()

	var logs []punch.Log
	for _, table := range partitionTables(from, to.AddDays(1)) {
		rows, err := r.queryPartition(ctx, table, employeeCode, lowerBound, upperBound)
		if err != nil {
			var pgErr *pgconn.PgError
			if errors.As(err, &pgErr) && pgErr.Code == pgUndefinedTable {
				slog.Debug("punch partition missing, treating as empty", "table", table)
				continue
			}
			return nil, fmt.Errorf("failed to read punch logs from %s: %w", table, err)
		}
		logs = append(logs, rows...)
	}
	return logs, nil
}

func (r *punchLogRepository) queryPartition(ctx context.Context, table, employeeCode string, lower, upper time.Time) ([]punch.Log, error) {
	q := GetQuerier(ctx, r.db)

	// The table name comes from partitionTables, never from input.
	query := fmt.Sprintf(`
		SELECT userid, logdate, direction
		FROM %s
		WHERE userid = $1 AND logdate >= $2 AND logdate < $3
		ORDER BY logdate
	`, table)

	rows, err := q.Query(ctx, query, employeeCode, lower, upper)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var logs []punch.Log
	for rows.Next() {
		var (
			log     punch.Log
			logDate time.Time
		)
		if err := rows.Scan(&log.EmployeeCode, &logDate, &log.Direction); err != nil {
			return nil, err
		}
		log.LogTime = paycycle.LocalTimeOf(logDate)
		logs = append(logs, log)
	}
	return logs, rows.Err()
}

// partitionTables lists the monthly tables covering [from, to] inclusive.
func partitionTables(from, to paycycle.LocalDate) []string {
	var tables []string
	y, m := from.Year(), from.Month()
	for {
		tables = append(tables, fmt.Sprintf(punchTablePattern, int(m), y))
		if y == to.Year() && m == to.Month() {
			return tables
		}
		next := time.Date(y, m+1, 1, 0, 0, 0, 0, time.UTC)
		y, m = next.Year(), next.Month()
	}
}
