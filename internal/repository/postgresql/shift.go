package postgresql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/sevaksoft/payroll-backend-go/internal/domain/shift"
	"github.com/sevaksoft/payroll-backend-go/internal/pkg/database"
	"github.com/sevaksoft/payroll-backend-go/internal/pkg/paycycle"
)

type shiftRepository struct {
	db *database.DB
}

func NewShiftRepository(db *database.DB) shift.ShiftRepository {
	return &shiftRepository{db: db}
}

const shiftColumns = `
	shiftname, starttime, endtime, workhours, latethresholdminutes,
	issplitshift, slot1start, slot1end, slot2start, slot2end
`

func (r *shiftRepository) GetByName(ctx context.Context, name string) (shift.Shift, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + shiftColumns + ` FROM shifts WHERE shiftname = $1`

	var s shift.Shift
	err := q.QueryRow(ctx, query, name).Scan(
		&s.Name, &s.StartTime, &s.EndTime, &s.WorkHours, &s.LateThresholdMinutes,
		&s.IsSplitShift, &s.Slot1Start, &s.Slot1End, &s.Slot2Start, &s.Slot2End,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return shift.Shift{}, shift.ErrShiftNotFound
		}
		return shift.Shift{}, fmt.Errorf("failed to get shift: %w", err)
	}
	return s, nil
}

func (r *shiftRepository) List(ctx context.Context) ([]shift.Shift, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + shiftColumns + ` FROM shifts ORDER BY shiftname`

	rows, err := q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list shifts: %w", err)
	}
	defer rows.Close()

	var shifts []shift.Shift
	for rows.Next() {
		var s shift.Shift
		if err := rows.Scan(
			&s.Name, &s.StartTime, &s.EndTime, &s.WorkHours, &s.LateThresholdMinutes,
			&s.IsSplitShift, &s.Slot1Start, &s.Slot1End, &s.Slot2Start, &s.Slot2End,
		); err != nil {
			return nil, fmt.Errorf("failed to scan shift: %w", err)
		}
		shifts = append(shifts, s)
	}
	return shifts, rows.Err()
}

func (r *shiftRepository) Create(ctx context.Context, s shift.Shift) error {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO shifts (` + shiftColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
	`

	_, err := q.Exec(ctx, query,
		s.Name, s.StartTime, s.EndTime, s.WorkHours, s.LateThresholdMinutes,
		s.IsSplitShift, s.Slot1Start, s.Slot1End, s.Slot2Start, s.Slot2End,
	)
	if err != nil {
		return fmt.Errorf("failed to create shift: %w", err)
	}
	return nil
}

func (r *shiftRepository) Update(ctx context.Context, s shift.Shift) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE shifts SET
			starttime = $2, endtime = $3, workhours = $4, latethresholdminutes = $5,
			issplitshift = $6, slot1start = $7, slot1end = $8, slot2start = $9, slot2end = $10
		WHERE shiftname = $1
	`

	tag, err := q.Exec(ctx, query,
		s.Name, s.StartTime, s.EndTime, s.WorkHours, s.LateThresholdMinutes,
		s.IsSplitShift, s.Slot1Start, s.Slot1End, s.Slot2Start, s.Slot2End,
	)
	if err != nil {
		return fmt.Errorf("failed to update shift: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return shift.ErrShiftNotFound
	}
	return nil
}

func (r *shiftRepository) Delete(ctx context.Context, name string) error {
	q := GetQuerier(ctx, r.db)

	var inUse bool
	err := q.QueryRow(ctx, `
		SELECT EXISTS (SELECT 1 FROM employeedetails WHERE shift = $1)
			OR EXISTS (SELECT 1 FROM employee_shift_assignments WHERE shiftname = $1)
	`, name).Scan(&inUse)
	if err != nil {
		return fmt.Errorf("failed to check shift usage: %w", err)
	}
	if inUse {
		return shift.ErrShiftInUse
	}

	tag, err := q.Exec(ctx, `DELETE FROM shifts WHERE shiftname = $1`, name)
	if err != nil {
		return fmt.Errorf("failed to delete shift: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return shift.ErrShiftNotFound
	}
	return nil
}

type shiftAssignmentRepository struct {
	db *database.DB
}

func NewShiftAssignmentRepository(db *database.DB) shift.AssignmentRepository {
	return &shiftAssignmentRepository{db: db}
}

func (r *shiftAssignmentRepository) ListOverlapping(ctx context.Context, employeeCode string, from, to paycycle.LocalDate) ([]shift.Assignment, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, employeecode, shiftname, fromdate, todate
		FROM employee_shift_assignments
		WHERE employeecode = $1 AND fromdate <= $2 AND todate >= $3
		ORDER BY id
	`

	rows, err := q.Query(ctx, query, employeeCode, to.Time(), from.Time())
	if err != nil {
		return nil, fmt.Errorf("failed to list shift assignments: %w", err)
	}
	defer rows.Close()
	return scanAssignments(rows)
}

func (r *shiftAssignmentRepository) ListForEmployee(ctx context.Context, employeeCode string) ([]shift.Assignment, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, employeecode, shiftname, fromdate, todate
		FROM employee_shift_assignments
		WHERE employeecode = $1
		ORDER BY fromdate, id
	`

	rows, err := q.Query(ctx, query, employeeCode)
	if err != nil {
		return nil, fmt.Errorf("failed to list shift assignments: %w", err)
	}
	defer rows.Close()
	return scanAssignments(rows)
}

func (r *shiftAssignmentRepository) Create(ctx context.Context, a shift.Assignment) (shift.Assignment, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO employee_shift_assignments (employeecode, shiftname, fromdate, todate)
		VALUES ($1, $2, $3, $4)
		RETURNING id
	`

	err := q.QueryRow(ctx, query, a.EmployeeCode, a.ShiftName, a.FromDate.Time(), a.ToDate.Time()).Scan(&a.ID)
	if err != nil {
		return shift.Assignment{}, fmt.Errorf("failed to create shift assignment: %w", err)
	}
	return a, nil
}

func (r *shiftAssignmentRepository) Delete(ctx context.Context, id int64) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `DELETE FROM employee_shift_assignments WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete shift assignment: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return shift.ErrAssignmentNotFound
	}
	return nil
}

func scanAssignments(rows pgx.Rows) ([]shift.Assignment, error) {
	var assignments []shift.Assignment
	for rows.Next() {
		var (
			a        shift.Assignment
			fromDate time.Time
			toDate   time.Time
		)
		if err := rows.Scan(&a.ID, &a.EmployeeCode, &a.ShiftName, &fromDate, &toDate); err != nil {
			return nil, fmt.Errorf("failed to scan shift assignment: %w", err)
		}
		a.FromDate = paycycle.DateOf(fromDate)
		a.ToDate = paycycle.DateOf(toDate)
		assignments = append(assignments, a)
	}
	return assignments, rows.Err()
}
