package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"campusregistry/internal/app/models"
	"campusregistry/internal/db"
)

// StudentRepository handles database operations for students
type StudentRepository struct {
	db *pgxpool.Pool
}

// NewStudentRepository creates a new student repository
func NewStudentRepository(db *pgxpool.Pool) *StudentRepository {
	return &StudentRepository{
		db: db,
	}
}

const studentColumns = `student_id, name, to_char(date_of_birth, 'YYYY-MM-DD'), email, phone_number, admission_year, department_id`

func scanStudent(row pgx.Row) (*models.Student, error) {
	var student models.Student
	err := row.Scan(
		&student.StudentID,
		&student.Name,
		&student.DateOfBirth,
		&student.Email,
		&student.PhoneNumber,
		&student.AdmissionYear,
		&student.DepartmentID,
	)
	if err != nil {
		return nil, err
	}
	return &student, nil
}

// GetAll retrieves all students ordered by primary key
func (r *StudentRepository) GetAll(ctx context.Context) ([]*models.Student, error) {
	query := fmt.Sprintf(`SELECT %s FROM students ORDER BY student_id`, studentColumns)

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var students []*models.Student
	for rows.Next() {
		student, err := scanStudent(rows)
		if err != nil {
			return nil, err
		}
		students = append(students, student)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return students, nil
}

// GetByID retrieves a student by ID
func (r *StudentRepository) GetByID(ctx context.Context, id int64) (*models.Student, error) {
	query := fmt.Sprintf(`SELECT %s FROM students WHERE student_id = $1`, studentColumns)

	student, err := scanStudent(r.db.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("error retrieving student: %w", err)
	}

	return student, nil
}

// ExistsByID checks whether a student with the given ID exists
func (r *StudentRepository) ExistsByID(ctx context.Context, id int64) (bool, error) {
	var exists bool
	err := r.db.QueryRow(ctx,
		`SELECT EXISTS(SELECT 1 FROM students WHERE student_id = $1)`, id).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("error checking student existence: %w", err)
	}
	return exists, nil
}

// Create inserts a new student with the caller-supplied key
func (r *StudentRepository) Create(ctx context.Context, student *models.Student) error {
	query := `
		INSERT INTO students (student_id, name, date_of_birth, email, phone_number, admission_year, department_id)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`

	_, err := r.db.Exec(ctx, query,
		student.StudentID,
		student.Name,
		student.DateOfBirth,
		student.Email,
		student.PhoneNumber,
		student.AdmissionYear,
		student.DepartmentID,
	)
	return err
}

// Update replaces all mutable fields of a student
func (r *StudentRepository) Update(ctx context.Context, student *models.Student) error {
	query := `
		UPDATE students
		SET name = $1, date_of_birth = $2, email = $3, phone_number = $4, admission_year = $5, department_id = $6
		WHERE student_id = $7
	`

	cmdTag, err := r.db.Exec(ctx, query,
		student.Name,
		student.DateOfBirth,
		student.Email,
		student.PhoneNumber,
		student.AdmissionYear,
		student.DepartmentID,
		student.StudentID,
	)
	if err != nil {
		return err
	}

	if cmdTag.RowsAffected() == 0 {
		return ErrNotFound
	}

	return nil
}

// Delete removes a student and all rows that reference it. Enrollments,
// attendance, and alumni records go in the same transaction as the
// student row.
func (r *StudentRepository) Delete(ctx context.Context, id int64) error {
	return db.WithTransaction(ctx, r.db, func(ctx context.Context, tx pgx.Tx) error {
		if _, err := tx.Exec(ctx, `DELETE FROM enrollments WHERE student_id = $1`, id); err != nil {
			return fmt.Errorf("error deleting student enrollments: %w", err)
		}

		if _, err := tx.Exec(ctx, `DELETE FROM attendance WHERE student_id = $1`, id); err != nil {
			return fmt.Errorf("error deleting student attendance: %w", err)
		}

		if _, err := tx.Exec(ctx, `DELETE FROM alumni WHERE student_id = $1`, id); err != nil {
			return fmt.Errorf("error deleting student alumni records: %w", err)
		}

		cmdTag, err := tx.Exec(ctx, `DELETE FROM students WHERE student_id = $1`, id)
		if err != nil {
			return fmt.Errorf("error deleting student: %w", err)
		}

		if cmdTag.RowsAffected() == 0 {
			return ErrNotFound
		}

		return nil
	})
}
