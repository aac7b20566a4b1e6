package postgresql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/sevaksoft/payroll-backend-go/internal/domain/employee"
	"github.com/sevaksoft/payroll-backend-go/internal/pkg/database"
	"github.com/sevaksoft/payroll-backend-go/internal/pkg/paycycle"
)

type employeeRepository struct {
	db *database.DB
}

func NewEmployeeRepository(db *database.DB) employee.EmployeeRepository {
	return &employeeRepository{db: db}
}

const employeeColumns = `
	e.employeecode, e.employeename,
	d.basicsalary, d.joiningdate, d.exitdate, d.shift, d.phonenumber,
	d.department, d.designation, d.branchlocation, d.bankaccno, d.ifsccode
`

func (r *employeeRepository) GetByCode(ctx context.Context, employeeCode string) (employee.Employee, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + employeeColumns + `
		FROM employees e
		JOIN employeedetails d ON d.employeecode = e.employeecode
		WHERE e.employeecode = $1
	`

	emp, err := scanEmployee(q.QueryRow(ctx, query, employeeCode))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return employee.Employee{}, employee.ErrEmployeeNotFound
		}
		return employee.Employee{}, fmt.Errorf("failed to get employee: %w", err)
	}
	return emp, nil
}

func (r *employeeRepository) GetByPhone(ctx context.Context, phoneNumber string) (employee.Employee, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + employeeColumns + `
		FROM employees e
		JOIN employeedetails d ON d.employeecode = e.employeecode
		WHERE d.phonenumber = $1
	`

	emp, err := scanEmployee(q.QueryRow(ctx, query, phoneNumber))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return employee.Employee{}, employee.ErrEmployeeNotFound
		}
		return employee.Employee{}, fmt.Errorf("failed to get employee by phone: %w", err)
	}
	return emp, nil
}

func (r *employeeRepository) ListActiveInCycle(ctx context.Context, cycleStart, cycleEnd paycycle.LocalDate) ([]employee.Employee, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + employeeColumns + `
		FROM employees e
		JOIN employeedetails d ON d.employeecode = e.employeecode
		WHERE d.joiningdate <= $1
		  AND (d.exitdate IS NULL OR d.exitdate >= $2)
		ORDER BY e.employeecode
	`

	rows, err := q.Query(ctx, query, cycleEnd.Time(), cycleStart.Time())
	if err != nil {
		return nil, fmt.Errorf("failed to list employees: %w", err)
	}
	defer rows.Close()

	var employees []employee.Employee
	for rows.Next() {
		emp, err := scanEmployee(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan employee: %w", err)
		}
		employees = append(employees, emp)
	}
	return employees, rows.Err()
}

func scanEmployee(row pgx.Row) (employee.Employee, error) {
	var (
		emp         employee.Employee
		joiningDate time.Time
		exitDate    *time.Time
	)
	err := row.Scan(
		&emp.EmployeeCode, &emp.Name,
		&emp.BasicSalary, &joiningDate, &exitDate, &emp.ShiftName, &emp.PhoneNumber,
		&emp.Department, &emp.Designation, &emp.BranchLocation, &emp.BankAccNo, &emp.IFSCCode,
	)
	if err != nil {
		return employee.Employee{}, err
	}

	emp.JoiningDate = paycycle.DateOf(joiningDate)
	if exitDate != nil {
		d := paycycle.DateOf(*exitDate)
		emp.ExitDate = &d
	}
	return emp, nil
}
