package services

import (
	"context"

	"campusregistry/internal/app/models"
)

// Store contracts consumed by the services. The pgx-backed repositories
// satisfy them; tests substitute in-memory fakes to drive the pipeline
// without a database.

// existsChecker is the contract for referential existence pre-checks.
type existsChecker interface {
	ExistsByID(ctx context.Context, id int64) (bool, error)
}

type studentStore interface {
	GetAll(ctx context.Context) ([]*models.Student, error)
	GetByID(ctx context.Context, id int64) (*models.Student, error)
	ExistsByID(ctx context.Context, id int64) (bool, error)
	Create(ctx context.Context, student *models.Student) error
	Update(ctx context.Context, student *models.Student) error
	Delete(ctx context.Context, id int64) error
}

type courseStore interface {
	GetAll(ctx context.Context) ([]*models.Course, error)
	GetByID(ctx context.Context, id int64) (*models.Course, error)
	ExistsByID(ctx context.Context, id int64) (bool, error)
	Create(ctx context.Context, course *models.Course) error
	Update(ctx context.Context, course *models.Course) error
	Delete(ctx context.Context, id int64) error
}

type departmentStore interface {
	GetAll(ctx context.Context) ([]*models.Department, error)
	GetByID(ctx context.Context, id int64) (*models.Department, error)
	Create(ctx context.Context, department *models.Department) error
	Update(ctx context.Context, department *models.Department) error
	Delete(ctx context.Context, id int64) error
}

type enrollmentStore interface {
	GetAll(ctx context.Context) ([]*models.Enrollment, error)
	GetByID(ctx context.Context, id int64) (*models.Enrollment, error)
	ExistsByID(ctx context.Context, id int64) (bool, error)
	Create(ctx context.Context, enrollment *models.Enrollment) error
	Update(ctx context.Context, enrollment *models.Enrollment) error
	Delete(ctx context.Context, id int64) error
}

type classroomStore interface {
	GetAll(ctx context.Context) ([]*models.Classroom, error)
	GetByID(ctx context.Context, id int64) (*models.Classroom, error)
	ExistsByID(ctx context.Context, id int64) (bool, error)
	Create(ctx context.Context, classroom *models.Classroom) error
	Update(ctx context.Context, classroom *models.Classroom) error
	Delete(ctx context.Context, id int64) error
}

type alumnusStore interface {
	GetAll(ctx context.Context) ([]*models.Alumnus, error)
	GetByID(ctx context.Context, id int64) (*models.Alumnus, error)
	Create(ctx context.Context, alumnus *models.Alumnus) error
	Update(ctx context.Context, alumnus *models.Alumnus) error
	Delete(ctx context.Context, id int64) error
}

type instructorStore interface {
	GetAll(ctx context.Context) ([]*models.Instructor, error)
	GetByID(ctx context.Context, id int64) (*models.Instructor, error)
	Create(ctx context.Context, instructor *models.Instructor) error
	Update(ctx context.Context, instructor *models.Instructor) error
	Delete(ctx context.Context, id int64) error
}

type attendanceStore interface {
	GetAll(ctx context.Context) ([]*models.Attendance, error)
	GetByID(ctx context.Context, id int64) (*models.Attendance, error)
	ExistsForStudentCourseDate(ctx context.Context, studentID, courseID int64, date string) (bool, error)
	Create(ctx context.Context, attendance *models.Attendance) error
	Update(ctx context.Context, attendance *models.Attendance) error
	Delete(ctx context.Context, id int64) error
}
