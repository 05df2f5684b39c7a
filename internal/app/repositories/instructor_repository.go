package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"campusregistry/internal/app/models"
)

// InstructorRepository handles database operations for instructors
type InstructorRepository struct {
	db *pgxpool.Pool
}

// NewInstructorRepository creates a new instructor repository
func NewInstructorRepository(db *pgxpool.Pool) *InstructorRepository {
	return &InstructorRepository{
		db: db,
	}
}

const instructorColumns = `instructor_id, name, email, phone_number, to_char(hire_date, 'YYYY-MM-DD'), department_id`

func scanInstructor(row pgx.Row) (*models.Instructor, error) {
	var instructor models.Instructor
	err := row.Scan(
		&instructor.InstructorID,
		&instructor.Name,
		&instructor.Email,
		&instructor.PhoneNumber,
		&instructor.HireDate,
		&instructor.DepartmentID,
	)
	if err != nil {
		return nil, err
	}
	return &instructor, nil
}

// GetAll retrieves all instructors ordered by primary key
func (r *InstructorRepository) GetAll(ctx context.Context) ([]*models.Instructor, error) {
	query := fmt.Sprintf(`SELECT %s FROM instructors ORDER BY instructor_id`, instructorColumns)

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var instructors []*models.Instructor
	for rows.Next() {
		instructor, err := scanInstructor(rows)
		if err != nil {
			return nil, err
		}
		instructors = append(instructors, instructor)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return instructors, nil
}

// GetByID retrieves an instructor by ID
func (r *InstructorRepository) GetByID(ctx context.Context, id int64) (*models.Instructor, error) {
	query := fmt.Sprintf(`SELECT %s FROM instructors WHERE instructor_id = $1`, instructorColumns)

	instructor, err := scanInstructor(r.db.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("error retrieving instructor: %w", err)
	}

	return instructor, nil
}

// Create inserts a new instructor and fills in the generated key
func (r *InstructorRepository) Create(ctx context.Context, instructor *models.Instructor) error {
	query := `
		INSERT INTO instructors (name, email, phone_number, hire_date, department_id)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING instructor_id
	`

	return r.db.QueryRow(ctx, query,
		instructor.Name,
		instructor.Email,
		instructor.PhoneNumber,
		instructor.HireDate,
		instructor.DepartmentID,
	).Scan(&instructor.InstructorID)
}

// Update replaces all mutable fields of an instructor
func (r *InstructorRepository) Update(ctx context.Context, instructor *models.Instructor) error {
	query := `
		UPDATE instructors
		SET name = $1, email = $2, phone_number = $3, hire_date = $4, department_id = $5
		WHERE instructor_id = $6
	`

	cmdTag, err := r.db.Exec(ctx, query,
		instructor.Name,
		instructor.Email,
		instructor.PhoneNumber,
		instructor.HireDate,
		instructor.DepartmentID,
		instructor.InstructorID,
	)
	if err != nil {
		return err
	}

	if cmdTag.RowsAffected() == 0 {
		return ErrNotFound
	}

	return nil
}

// Delete removes an instructor by ID
func (r *InstructorRepository) Delete(ctx context.Context, id int64) error {
	cmdTag, err := r.db.Exec(ctx, `DELETE FROM instructors WHERE instructor_id = $1`, id)
	if err != nil {
		return fmt.Errorf("error deleting instructor: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return ErrNotFound
	}

	return nil
}
