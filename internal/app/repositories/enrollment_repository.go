package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"campusregistry/internal/app/models"
)

// EnrollmentRepository handles database operations for enrollments
type EnrollmentRepository struct {
	db *pgxpool.Pool
}

// NewEnrollmentRepository creates a new enrollment repository
func NewEnrollmentRepository(db *pgxpool.Pool) *EnrollmentRepository {
	return &EnrollmentRepository{
		db: db,
	}
}

const enrollmentColumns = `enrollment_id, student_id, course_id, to_char(enrollment_date, 'YYYY-MM-DD'), grade`

func scanEnrollment(row pgx.Row) (*models.Enrollment, error) {
	var enrollment models.Enrollment
	err := row.Scan(
		&enrollment.EnrollmentID,
		&enrollment.StudentID,
		&enrollment.CourseID,
		&enrollment.EnrollmentDate,
		&enrollment.Grade,
	)
	if err != nil {
		return nil, err
	}
	return &enrollment, nil
}

// GetAll retrieves all enrollments ordered by primary key
func (r *EnrollmentRepository) GetAll(ctx context.Context) ([]*models.Enrollment, error) {
	query := fmt.Sprintf(`SELECT %s FROM enrollments ORDER BY enrollment_id`, enrollmentColumns)

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var enrollments []*models.Enrollment
	for rows.Next() {
		enrollment, err := scanEnrollment(rows)
		if err != nil {
			return nil, err
		}
		enrollments = append(enrollments, enrollment)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return enrollments, nil
}

// GetByID retrieves an enrollment by ID
func (r *EnrollmentRepository) GetByID(ctx context.Context, id int64) (*models.Enrollment, error) {
	query := fmt.Sprintf(`SELECT %s FROM enrollments WHERE enrollment_id = $1`, enrollmentColumns)

	enrollment, err := scanEnrollment(r.db.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("error retrieving enrollment: %w", err)
	}

	return enrollment, nil
}

// ExistsByID checks whether an enrollment with the given ID exists
func (r *EnrollmentRepository) ExistsByID(ctx context.Context, id int64) (bool, error) {
	var exists bool
	err := r.db.QueryRow(ctx,
		`SELECT EXISTS(SELECT 1 FROM enrollments WHERE enrollment_id = $1)`, id).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("error checking enrollment existence: %w", err)
	}
	return exists, nil
}

// Create inserts a new enrollment with the caller-supplied key
func (r *EnrollmentRepository) Create(ctx context.Context, enrollment *models.Enrollment) error {
	query := `
		INSERT INTO enrollments (enrollment_id, student_id, course_id, enrollment_date, grade)
		VALUES ($1, $2, $3, $4, $5)
	`

	_, err := r.db.Exec(ctx, query,
		enrollment.EnrollmentID,
		enrollment.StudentID,
		enrollment.CourseID,
		enrollment.EnrollmentDate,
		enrollment.Grade,
	)
	return err
}

// Update replaces all mutable fields of an enrollment
func (r *EnrollmentRepository) Update(ctx context.Context, enrollment *models.Enrollment) error {
	query := `
		UPDATE enrollments
		SET student_id = $1, course_id = $2, enrollment_date = $3, grade = $4
		WHERE enrollment_id = $5
	`

	cmdTag, err := r.db.Exec(ctx, query,
		enrollment.StudentID,
		enrollment.CourseID,
		enrollment.EnrollmentDate,
		enrollment.Grade,
		enrollment.EnrollmentID,
	)
	if err != nil {
		return err
	}

	if cmdTag.RowsAffected() == 0 {
		return ErrNotFound
	}

	return nil
}

// Delete removes an enrollment by ID
func (r *EnrollmentRepository) Delete(ctx context.Context, id int64) error {
	cmdTag, err := r.db.Exec(ctx, `DELETE FROM enrollments WHERE enrollment_id = $1`, id)
	if err != nil {
		return fmt.Errorf("error deleting enrollment: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return ErrNotFound
	}

	return nil
}
