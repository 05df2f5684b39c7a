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

// CourseRepository handles database operations for courses
type CourseRepository struct {
	db *pgxpool.Pool
}

// NewCourseRepository creates a new course repository
func NewCourseRepository(db *pgxpool.Pool) *CourseRepository {
	return &CourseRepository{
		db: db,
	}
}

func scanCourse(row pgx.Row) (*models.Course, error) {
	var course models.Course
	err := row.Scan(
		&course.CourseID,
		&course.CourseName,
		&course.Credits,
		&course.DepartmentID,
		&course.Semester,
	)
	if err != nil {
		return nil, err
	}
	return &course, nil
}

// GetAll retrieves all courses ordered by primary key
func (r *CourseRepository) GetAll(ctx context.Context) ([]*models.Course, error) {
	query := `
		SELECT course_id, course_name, credits, department_id, semester
		FROM courses
		ORDER BY course_id
	`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var courses []*models.Course
	for rows.Next() {
		course, err := scanCourse(rows)
		if err != nil {
			return nil, err
		}
		courses = append(courses, course)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return courses, nil
}

// GetByID retrieves a course by ID
func (r *CourseRepository) GetByID(ctx context.Context, id int64) (*models.Course, error) {
	query := `
		SELECT course_id, course_name, credits, department_id, semester
		FROM courses
		WHERE course_id = $1
	`

	course, err := scanCourse(r.db.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("error retrieving course: %w", err)
	}

	return course, nil
}

// ExistsByID checks whether a course with the given ID exists
func (r *CourseRepository) ExistsByID(ctx context.Context, id int64) (bool, error) {
	var exists bool
	err := r.db.QueryRow(ctx,
		`SELECT EXISTS(SELECT 1 FROM courses WHERE course_id = $1)`, id).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("error checking course existence: %w", err)
	}
	return exists, nil
}

// Create inserts a new course with the caller-supplied key
func (r *CourseRepository) Create(ctx context.Context, course *models.Course) error {
	query := `
		INSERT INTO courses (course_id, course_name, credits, department_id, semester)
		VALUES ($1, $2, $3, $4, $5)
	`

	_, err := r.db.Exec(ctx, query,
		course.CourseID,
		course.CourseName,
		course.Credits,
		course.DepartmentID,
		course.Semester,
	)
	return err
}

// Update replaces all mutable fields of a course
func (r *CourseRepository) Update(ctx context.Context, course *models.Course) error {
	query := `
		UPDATE courses
		SET course_name = $1, credits = $2, department_id = $3, semester = $4
		WHERE course_id = $5
	`

	cmdTag, err := r.db.Exec(ctx, query,
		course.CourseName,
		course.Credits,
		course.DepartmentID,
		course.Semester,
		course.CourseID,
	)
	if err != nil {
		return err
	}

	if cmdTag.RowsAffected() == 0 {
		return ErrNotFound
	}

	return nil
}

// Delete removes a course together with its enrollments and attendance
// rows in a single transaction.
func (r *CourseRepository) Delete(ctx context.Context, id int64) error {
	return db.WithTransaction(ctx, r.db, func(ctx context.Context, tx pgx.Tx) error {
		if _, err := tx.Exec(ctx, `DELETE FROM enrollments WHERE course_id = $1`, id); err != nil {
			return fmt.Errorf("error deleting course enrollments: %w", err)
		}

		if _, err := tx.Exec(ctx, `DELETE FROM attendance WHERE course_id = $1`, id); err != nil {
			return fmt.Errorf("error deleting course attendance: %w", err)
		}

		cmdTag, err := tx.Exec(ctx, `DELETE FROM courses WHERE course_id = $1`, id)
		if err != nil {
			return fmt.Errorf("error deleting course: %w", err)
		}

		if cmdTag.RowsAffected() == 0 {
			return ErrNotFound
		}

		return nil
	})
}
