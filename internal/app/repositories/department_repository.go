package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"campusregistry/internal/app/models"
)

// DepartmentRepository handles database operations for departments
type DepartmentRepository struct {
	db *pgxpool.Pool
}

// NewDepartmentRepository creates a new department repository
func NewDepartmentRepository(db *pgxpool.Pool) *DepartmentRepository {
	return &DepartmentRepository{
		db: db,
	}
}

// GetAll retrieves all departments ordered by primary key
func (r *DepartmentRepository) GetAll(ctx context.Context) ([]*models.Department, error) {
	query := `
		SELECT department_id, department_name, head_of_department
		FROM departments
		ORDER BY department_id
	`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var departments []*models.Department
	for rows.Next() {
		var department models.Department
		if err := rows.Scan(
			&department.DepartmentID,
			&department.DepartmentName,
			&department.HeadOfDepartment,
		); err != nil {
			return nil, err
		}
		departments = append(departments, &department)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return departments, nil
}

// GetByID retrieves a department by ID
func (r *DepartmentRepository) GetByID(ctx context.Context, id int64) (*models.Department, error) {
	query := `
		SELECT department_id, department_name, head_of_department
		FROM departments
		WHERE department_id = $1
	`

	var department models.Department
	err := r.db.QueryRow(ctx, query, id).Scan(
		&department.DepartmentID,
		&department.DepartmentName,
		&department.HeadOfDepartment,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("error retrieving department: %w", err)
	}

	return &department, nil
}

// ExistsByID checks whether a department with the given ID exists
func (r *DepartmentRepository) ExistsByID(ctx context.Context, id int64) (bool, error) {
	var exists bool
	err := r.db.QueryRow(ctx,
		`SELECT EXISTS(SELECT 1 FROM departments WHERE department_id = $1)`, id).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("error checking department existence: %w", err)
	}
	return exists, nil
}

// Create inserts a new department and fills in the generated key
func (r *DepartmentRepository) Create(ctx context.Context, department *models.Department) error {
	query := `
		INSERT INTO departments (department_name, head_of_department)
		VALUES ($1, $2)
		RETURNING department_id
	`

	return r.db.QueryRow(ctx, query,
		department.DepartmentName,
		department.HeadOfDepartment,
	).Scan(&department.DepartmentID)
}

// Update replaces all mutable fields of a department
func (r *DepartmentRepository) Update(ctx context.Context, department *models.Department) error {
	query := `
		UPDATE departments
		SET department_name = $1, head_of_department = $2
		WHERE department_id = $3
	`

	cmdTag, err := r.db.Exec(ctx, query,
		department.DepartmentName,
		department.HeadOfDepartment,
		department.DepartmentID,
	)
	if err != nil {
		return err
	}

	if cmdTag.RowsAffected() == 0 {
		return ErrNotFound
	}

	return nil
}

// HasDependents checks whether any student, course, or instructor still
// references the department.
func (r *DepartmentRepository) HasDependents(ctx context.Context, id int64) (bool, error) {
	var inUse bool
	err := r.db.QueryRow(ctx, `
		SELECT EXISTS(SELECT 1 FROM students WHERE department_id = $1)
		    OR EXISTS(SELECT 1 FROM courses WHERE department_id = $1)
		    OR EXISTS(SELECT 1 FROM instructors WHERE department_id = $1)`,
		id).Scan(&inUse)
	if err != nil {
		return false, fmt.Errorf("error checking department dependents: %w", err)
	}
	return inUse, nil
}

// Delete removes a department by ID. Deletion is rejected while other
// records reference the department.
func (r *DepartmentRepository) Delete(ctx context.Context, id int64) error {
	inUse, err := r.HasDependents(ctx, id)
	if err != nil {
		return err
	}
	if inUse {
		return ErrDepartmentInUse
	}

	cmdTag, err := r.db.Exec(ctx, `DELETE FROM departments WHERE department_id = $1`, id)
	if err != nil {
		return fmt.Errorf("error deleting department: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return ErrNotFound
	}

	return nil
}
