package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"campusregistry/internal/app/models"
)

// AttendanceRepository handles database operations for attendance records
type AttendanceRepository struct {
	db *pgxpool.Pool
}

// NewAttendanceRepository creates a new attendance repository
func NewAttendanceRepository(db *pgxpool.Pool) *AttendanceRepository {
	return &AttendanceRepository{
		db: db,
	}
}

const attendanceColumns = `attendance_id, student_id, course_id, to_char(attendance_date, 'YYYY-MM-DD'), status`

func scanAttendance(row pgx.Row) (*models.Attendance, error) {
	var attendance models.Attendance
	err := row.Scan(
		&attendance.AttendanceID,
		&attendance.StudentID,
		&attendance.CourseID,
		&attendance.AttendanceDate,
		&attendance.Status,
	)
	if err != nil {
		return nil, err
	}
	return &attendance, nil
}

// GetAll retrieves all attendance records in insertion order
func (r *AttendanceRepository) GetAll(ctx context.Context) ([]*models.Attendance, error) {
	query := fmt.Sprintf(`SELECT %s FROM attendance ORDER BY attendance_id ASC`, attendanceColumns)

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var records []*models.Attendance
	for rows.Next() {
		record, err := scanAttendance(rows)
		if err != nil {
			return nil, err
		}
		records = append(records, record)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return records, nil
}

// GetByID retrieves an attendance record by ID
func (r *AttendanceRepository) GetByID(ctx context.Context, id int64) (*models.Attendance, error) {
	query := fmt.Sprintf(`SELECT %s FROM attendance WHERE attendance_id = $1`, attendanceColumns)

	record, err := scanAttendance(r.db.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("error retrieving attendance record: %w", err)
	}

	return record, nil
}

// ExistsForStudentCourseDate checks whether an attendance record already
// exists for the (student, course, date) tuple.
func (r *AttendanceRepository) ExistsForStudentCourseDate(ctx context.Context, studentID, courseID int64, date string) (bool, error) {
	var exists bool
	err := r.db.QueryRow(ctx, `
		SELECT EXISTS(
			SELECT 1 FROM attendance
			WHERE student_id = $1 AND course_id = $2 AND attendance_date = $3
		)`,
		studentID, courseID, date).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("error checking attendance existence: %w", err)
	}
	return exists, nil
}

// Create inserts a new attendance record and fills in the generated key
func (r *AttendanceRepository) Create(ctx context.Context, attendance *models.Attendance) error {
	query := `
		INSERT INTO attendance (student_id, course_id, attendance_date, status)
		VALUES ($1, $2, $3, $4)
		RETURNING attendance_id
	`

	return r.db.QueryRow(ctx, query,
		attendance.StudentID,
		attendance.CourseID,
		attendance.AttendanceDate,
		attendance.Status,
	).Scan(&attendance.AttendanceID)
}

// Update replaces all mutable fields of an attendance record
func (r *AttendanceRepository) Update(ctx context.Context, attendance *models.Attendance) error {
	query := `
		UPDATE attendance
		SET student_id = $1, course_id = $2, attendance_date = $3, status = $4
		WHERE attendance_id = $5
	`

	cmdTag, err := r.db.Exec(ctx, query,
		attendance.StudentID,
		attendance.CourseID,
		attendance.AttendanceDate,
		attendance.Status,
		attendance.AttendanceID,
	)
	if err != nil {
		return err
	}

	if cmdTag.RowsAffected() == 0 {
		return ErrNotFound
	}

	return nil
}

// Delete removes an attendance record by ID
func (r *AttendanceRepository) Delete(ctx context.Context, id int64) error {
	cmdTag, err := r.db.Exec(ctx, `DELETE FROM attendance WHERE attendance_id = $1`, id)
	if err != nil {
		return fmt.Errorf("error deleting attendance record: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return ErrNotFound
	}

	return nil
}
