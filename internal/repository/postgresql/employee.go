package postgresql

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/staffpoint/presence-backend-go/internal/domain/auth"
	"github.com/staffpoint/presence-backend-go/internal/domain/employee"
	"github.com/staffpoint/presence-backend-go/internal/pkg/database"
)

type employeeRepositoryImpl struct {
	db *database.DB
}

func NewEmployeeRepository(db *database.DB) employee.EmployeeRepository {
	return &employeeRepositoryImpl{db: db}
}

const employeeSelect = `
	SELECT e.id, e.full_name, e.email, e.password_hash, e.role, e.work_mode,
	       e.hire_date, e.termination_date, e.work_schedule,
	       e.position_id, e.main_department_id, e.main_team_id,
	       e.created_at, e.updated_at,
	       p.name, d.name, t.name
	FROM employees e
	LEFT JOIN positions p ON p.id = e.position_id
	LEFT JOIN departments d ON d.id = e.main_department_id
	LEFT JOIN teams t ON t.id = e.main_team_id
`

func scanEmployee(row pgx.Row) (employee.Employee, error) {
	var emp employee.Employee
	var role, workMode string
	err := row.Scan(
		&emp.ID,
		&emp.FullName,
		&emp.Email,
		&emp.PasswordHash,
		&role,
		&workMode,
		&emp.HireDate,
		&emp.TerminationDate,
		&emp.WorkSchedule,
		&emp.PositionID,
		&emp.MainDepartmentID,
		&emp.MainTeamID,
		&emp.CreatedAt,
		&emp.UpdatedAt,
		&emp.PositionName,
		&emp.MainDepartmentName,
		&emp.MainTeamName,
	)
	if err != nil {
		return employee.Employee{}, err
	}
	emp.Role = auth.Role(role)
	emp.WorkMode = employee.WorkMode(workMode)
	return emp, nil
}

func (r *employeeRepositoryImpl) Create(ctx context.Context, emp employee.Employee) (employee.Employee, error) {
	q := GetQuerier(ctx, r.db)

	id := uuid.NewString()
	query := `
		INSERT INTO employees (
			id, full_name, email, password_hash, role, work_mode,
			hire_date, termination_date, work_schedule,
			position_id, main_department_id, main_team_id,
			created_at, updated_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, NOW(), NOW())
	`
	_, err := q.Exec(ctx, query,
		id,
		emp.FullName,
		emp.Email,
		emp.PasswordHash,
		string(emp.Role),
		string(emp.WorkMode),
		emp.HireDate,
		emp.TerminationDate,
		emp.WorkSchedule,
		emp.PositionID,
		emp.MainDepartmentID,
		emp.MainTeamID,
	)
	if err != nil {
		return employee.Employee{}, fmt.Errorf("insert employee: %w", err)
	}

	return r.GetByID(ctx, id)
}

func (r *employeeRepositoryImpl) GetByID(ctx context.Context, id string) (employee.Employee, error) {
	q := GetQuerier(ctx, r.db)

	row := q.QueryRow(ctx, employeeSelect+` WHERE e.id = $1`, id)
	emp, err := scanEmployee(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return employee.Employee{}, employee.ErrEmployeeNotFound
		}
		return employee.Employee{}, err
	}
	return emp, nil
}

func (r *employeeRepositoryImpl) GetByEmail(ctx context.Context, email string) (employee.Employee, error) {
	q := GetQuerier(ctx, r.db)

	row := q.QueryRow(ctx, employeeSelect+` WHERE e.email = $1`, email)
	emp, err := scanEmployee(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return employee.Employee{}, employee.ErrEmployeeNotFound
		}
		return employee.Employee{}, err
	}
	return emp, nil
}

func (r *employeeRepositoryImpl) List(ctx context.Context) ([]employee.Employee, error) {
	q := GetQuerier(ctx, r.db)

	rows, err := q.Query(ctx, employeeSelect+` ORDER BY e.full_name ASC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var employees []employee.Employee
	for rows.Next() {
		emp, err := scanEmployee(rows)
		if err != nil {
			return nil, err
		}
		employees = append(employees, emp)
	}
	return employees, rows.Err()
}

func (r *employeeRepositoryImpl) Update(ctx context.Context, emp employee.Employee) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE employees
		SET full_name = $2, email = $3, password_hash = $4, role = $5, work_mode = $6,
		    hire_date = $7, termination_date = $8, work_schedule = $9,
		    position_id = $10, main_department_id = $11, main_team_id = $12,
		    updated_at = NOW()
		WHERE id = $1
	`
	commandTag, err := q.Exec(ctx, query,
		emp.ID,
		emp.FullName,
		emp.Email,
		emp.PasswordHash,
		string(emp.Role),
		string(emp.WorkMode),
		emp.HireDate,
		emp.TerminationDate,
		emp.WorkSchedule,
		emp.PositionID,
		emp.MainDepartmentID,
		emp.MainTeamID,
	)
	if err != nil {
		return fmt.Errorf("update employee: %w", err)
	}
	if commandTag.RowsAffected() != 1 {
		return employee.ErrEmployeeNotFound
	}
	return nil
}

func (r *employeeRepositoryImpl) Delete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	commandTag, err := q.Exec(ctx, `DELETE FROM employees WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if commandTag.RowsAffected() != 1 {
		return employee.ErrEmployeeNotFound
	}
	return nil
}

func (r *employeeRepositoryImpl) Exists(ctx context.Context, id string) (bool, error) {
	q := GetQuerier(ctx, r.db)

	var exists bool
	err := q.QueryRow(ctx, `SELECT EXISTS (SELECT 1 FROM employees WHERE id = $1)`, id).Scan(&exists)
	if err != nil {
		return false, err
	}
	return exists, nil
}

func (r *employeeRepositoryImpl) GetDepartments(ctx context.Context, employeeID string) ([]employee.Reference, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT d.id, d.name
		FROM employee_departments ed
		INNER JOIN departments d ON d.id = ed.department_id
		WHERE ed.employee_id = $1
		ORDER BY d.name ASC
	`
	return collectReferences(ctx, q, query, employeeID)
}

func (r *employeeRepositoryImpl) SetDepartments(ctx context.Context, employeeID string, departmentIDs []string) error {
	q := GetQuerier(ctx, r.db)

	if _, err := q.Exec(ctx, `DELETE FROM employee_departments WHERE employee_id = $1`, employeeID); err != nil {
		return err
	}
	for _, departmentID := range departmentIDs {
		_, err := q.Exec(ctx,
			`INSERT INTO employee_departments (employee_id, department_id) VALUES ($1, $2)`,
			employeeID, departmentID,
		)
		if err != nil {
			return fmt.Errorf("link department %s: %w", departmentID, err)
		}
	}
	return nil
}

func (r *employeeRepositoryImpl) GetTeams(ctx context.Context, employeeID string) ([]employee.Reference, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT t.id, t.name
		FROM employee_teams et
		INNER JOIN teams t ON t.id = et.team_id
		WHERE et.employee_id = $1
		ORDER BY t.name ASC
	`
	return collectReferences(ctx, q, query, employeeID)
}

func (r *employeeRepositoryImpl) SetTeams(ctx context.Context, employeeID string, teamIDs []string) error {
	q := GetQuerier(ctx, r.db)

	if _, err := q.Exec(ctx, `DELETE FROM employee_teams WHERE employee_id = $1`, employeeID); err != nil {
		return err
	}
	for _, teamID := range teamIDs {
		_, err := q.Exec(ctx,
			`INSERT INTO employee_teams (employee_id, team_id) VALUES ($1, $2)`,
			employeeID, teamID,
		)
		if err != nil {
			return fmt.Errorf("link team %s: %w", teamID, err)
		}
	}
	return nil
}

func (r *employeeRepositoryImpl) GetProjectAssignments(ctx context.Context, employeeID string) ([]employee.ProjectAssignment, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ep.project_id, p.name, ep.participation_percentage
		FROM employee_projects ep
		INNER JOIN projects p ON p.id = ep.project_id
		WHERE ep.employee_id = $1
		ORDER BY p.name ASC
	`
	rows, err := q.Query(ctx, query, employeeID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var assignments []employee.ProjectAssignment
	for rows.Next() {
		var a employee.ProjectAssignment
		if err := rows.Scan(&a.ProjectID, &a.ProjectName, &a.ParticipationPercentage); err != nil {
			return nil, err
		}
		assignments = append(assignments, a)
	}
	return assignments, rows.Err()
}

func (r *employeeRepositoryImpl) SetProjectAssignments(ctx context.Context, employeeID string, assignments []employee.ProjectAssignmentRequest) error {
	q := GetQuerier(ctx, r.db)

	if _, err := q.Exec(ctx, `DELETE FROM employee_projects WHERE employee_id = $1`, employeeID); err != nil {
		return err
	}
	for _, a := range assignments {
		_, err := q.Exec(ctx,
			`INSERT INTO employee_projects (employee_id, project_id, participation_percentage) VALUES ($1, $2, $3)`,
			employeeID, a.ProjectID, a.ParticipationPercentage,
		)
		if err != nil {
			return fmt.Errorf("link project %s: %w", a.ProjectID, err)
		}
	}
	return nil
}

func collectReferences(ctx context.Context, q database.Querier, query string, args ...interface{}) ([]employee.Reference, error) {
	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var refs []employee.Reference
	for rows.Next() {
		var ref employee.Reference
		if err := rows.Scan(&ref.ID, &ref.Name); err != nil {
			return nil, err
		}
		refs = append(refs, ref)
	}
	return refs, rows.Err()
}
