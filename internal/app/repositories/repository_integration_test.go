package repositories_test

import (
	"context"
	"errors"
	"os"
	"testing"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"campusregistry/internal/app/migrations"
	"campusregistry/internal/app/models"
	"campusregistry/internal/app/repositories"
)

// These tests run the SQL paths, in particular the transactional
// cascade deletes, against a real database. Set DATABASE_URL to enable
// them; without it they are skipped.

func setupRepositories(t *testing.T) (*repositories.Repositories, *pgxpool.Pool) {
	t.Helper()

	url := os.Getenv("DATABASE_URL")
	if url == "" {
		t.Skip("DATABASE_URL not set, skipping database tests")
	}

	pool, err := pgxpool.New(context.Background(), url)
	require.NoError(t, err)
	t.Cleanup(pool.Close)

	require.NoError(t, migrations.NewMigrator(pool).MigrateFromDirectory("../../../migrations"))

	return repositories.NewRepositories(pool), pool
}

// cleanupRecords removes everything a test seeded, dependents first.
func cleanupRecords(t *testing.T, pool *pgxpool.Pool, studentID, courseID, departmentID int64) {
	t.Helper()
	t.Cleanup(func() {
		ctx := context.Background()
		_, _ = pool.Exec(ctx, `DELETE FROM attendance WHERE student_id = $1 OR course_id = $2`, studentID, courseID)
		_, _ = pool.Exec(ctx, `DELETE FROM enrollments WHERE student_id = $1 OR course_id = $2`, studentID, courseID)
		_, _ = pool.Exec(ctx, `DELETE FROM alumni WHERE student_id = $1`, studentID)
		_, _ = pool.Exec(ctx, `DELETE FROM students WHERE student_id = $1`, studentID)
		_, _ = pool.Exec(ctx, `DELETE FROM courses WHERE course_id = $1`, courseID)
		_, _ = pool.Exec(ctx, `DELETE FROM departments WHERE department_id = $1`, departmentID)
	})
}

func seedStudentWithCourse(t *testing.T, repos *repositories.Repositories, studentID, courseID, enrollmentID int64) (departmentID int64) {
	t.Helper()
	ctx := context.Background()

	department := &models.Department{
		DepartmentName:   "Computer Engineering",
		HeadOfDepartment: "Dr. Ada Lovelace",
	}
	require.NoError(t, repos.DepartmentRepository.Create(ctx, department))

	require.NoError(t, repos.StudentRepository.Create(ctx, &models.Student{
		StudentID:     studentID,
		Name:          "John Doe",
		DateOfBirth:   "2004-05-17",
		Email:         "john.doe@example.com",
		PhoneNumber:   "5551234567",
		AdmissionYear: 2023,
		DepartmentID:  department.DepartmentID,
	}))

	require.NoError(t, repos.CourseRepository.Create(ctx, &models.Course{
		CourseID:     courseID,
		CourseName:   "Algorithms",
		Credits:      6,
		DepartmentID: department.DepartmentID,
		Semester:     "Fall",
	}))

	require.NoError(t, repos.EnrollmentRepository.Create(ctx, &models.Enrollment{
		EnrollmentID:   enrollmentID,
		StudentID:      studentID,
		CourseID:       courseID,
		EnrollmentDate: "2023-09-15",
		Grade:          "A",
	}))

	return department.DepartmentID
}

func TestCourseDeleteCascades(t *testing.T) {
	repos, pool := setupRepositories(t)
	ctx := context.Background()

	const (
		studentID    = int64(90230001)
		courseID     = int64(90101)
		enrollmentID = int64(90201)
	)

	departmentID := seedStudentWithCourse(t, repos, studentID, courseID, enrollmentID)
	cleanupRecords(t, pool, studentID, courseID, departmentID)

	attendance := &models.Attendance{
		StudentID:      studentID,
		CourseID:       courseID,
		AttendanceDate: "2023-10-02",
		Status:         "Present",
	}
	require.NoError(t, repos.AttendanceRepository.Create(ctx, attendance))

	require.NoError(t, repos.CourseRepository.Delete(ctx, courseID))

	_, err := repos.EnrollmentRepository.GetByID(ctx, enrollmentID)
	assert.True(t, errors.Is(err, repositories.ErrNotFound))

	_, err = repos.AttendanceRepository.GetByID(ctx, attendance.AttendanceID)
	assert.True(t, errors.Is(err, repositories.ErrNotFound))

	// The student referenced by the deleted rows survives.
	_, err = repos.StudentRepository.GetByID(ctx, studentID)
	require.NoError(t, err)

	err = repos.CourseRepository.Delete(ctx, courseID)
	assert.True(t, errors.Is(err, repositories.ErrNotFound))
}

func TestStudentDeleteCascades(t *testing.T) {
	repos, pool := setupRepositories(t)
	ctx := context.Background()

	const (
		studentID    = int64(90230002)
		courseID     = int64(90102)
		enrollmentID = int64(90202)
	)

	departmentID := seedStudentWithCourse(t, repos, studentID, courseID, enrollmentID)
	cleanupRecords(t, pool, studentID, courseID, departmentID)

	attendance := &models.Attendance{
		StudentID:      studentID,
		CourseID:       courseID,
		AttendanceDate: "2023-10-02",
		Status:         "Absent",
	}
	require.NoError(t, repos.AttendanceRepository.Create(ctx, attendance))

	alumnus := &models.Alumnus{
		StudentID:       studentID,
		GraduationYear:  2027,
		CurrentJobTitle: "Engineer",
		Company:         "Acme",
	}
	require.NoError(t, repos.AlumnusRepository.Create(ctx, alumnus))

	require.NoError(t, repos.StudentRepository.Delete(ctx, studentID))

	_, err := repos.EnrollmentRepository.GetByID(ctx, enrollmentID)
	assert.True(t, errors.Is(err, repositories.ErrNotFound))

	_, err = repos.AttendanceRepository.GetByID(ctx, attendance.AttendanceID)
	assert.True(t, errors.Is(err, repositories.ErrNotFound))

	_, err = repos.AlumnusRepository.GetByID(ctx, alumnus.AlumniID)
	assert.True(t, errors.Is(err, repositories.ErrNotFound))

	// The course survives the student delete.
	_, err = repos.CourseRepository.GetByID(ctx, courseID)
	require.NoError(t, err)

	err = repos.StudentRepository.Delete(ctx, studentID)
	assert.True(t, errors.Is(err, repositories.ErrNotFound))
}

func TestDepartmentDeleteInUse(t *testing.T) {
	repos, pool := setupRepositories(t)
	ctx := context.Background()

	const studentID = int64(90230003)

	department := &models.Department{
		DepartmentName:   "Physics",
		HeadOfDepartment: "Dr. Marie Curie",
	}
	require.NoError(t, repos.DepartmentRepository.Create(ctx, department))
	cleanupRecords(t, pool, studentID, 0, department.DepartmentID)

	require.NoError(t, repos.StudentRepository.Create(ctx, &models.Student{
		StudentID:     studentID,
		Name:          "Jane Roe",
		DateOfBirth:   "2003-01-20",
		Email:         "jane.roe@example.com",
		PhoneNumber:   "5557654321",
		AdmissionYear: 2022,
		DepartmentID:  department.DepartmentID,
	}))

	err := repos.DepartmentRepository.Delete(ctx, department.DepartmentID)
	assert.True(t, errors.Is(err, repositories.ErrDepartmentInUse))

	require.NoError(t, repos.StudentRepository.Delete(ctx, studentID))
	require.NoError(t, repos.DepartmentRepository.Delete(ctx, department.DepartmentID))

	_, err = repos.DepartmentRepository.GetByID(ctx, department.DepartmentID)
	assert.True(t, errors.Is(err, repositories.ErrNotFound))
}
