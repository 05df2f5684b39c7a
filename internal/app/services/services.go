package services

import (
	"context"
	"errors"

	"campusregistry/internal/app/models"
	"campusregistry/internal/app/repositories"
	"campusregistry/internal/pkg/apperrors"
	"campusregistry/internal/pkg/dberrors"
)

// Each entity endpoint group is backed by one service implementing the
// shared record-validation-and-persistence pipeline: required fields,
// format checks, date normalization, duplicate pre-checks, referential
// existence checks, then the store call. Controllers depend on these
// interfaces so the HTTP layer can be tested without a database.

// StudentService handles student-related operations
type StudentService interface {
	GetAllStudents(ctx context.Context) ([]*models.Student, error)
	GetStudentByID(ctx context.Context, id int64) (*models.Student, error)
	CreateStudent(ctx context.Context, student *models.Student) error
	UpdateStudent(ctx context.Context, student *models.Student) error
	DeleteStudent(ctx context.Context, id int64) error
}

// CourseService handles course-related operations
type CourseService interface {
	GetAllCourses(ctx context.Context) ([]*models.Course, error)
	GetCourseByID(ctx context.Context, id int64) (*models.Course, error)
	CreateCourse(ctx context.Context, course *models.Course) error
	UpdateCourse(ctx context.Context, course *models.Course) error
	DeleteCourse(ctx context.Context, id int64) error
}

// DepartmentService handles department-related operations
type DepartmentService interface {
	GetAllDepartments(ctx context.Context) ([]*models.Department, error)
	GetDepartmentByID(ctx context.Context, id int64) (*models.Department, error)
	CreateDepartment(ctx context.Context, department *models.Department) error
	UpdateDepartment(ctx context.Context, department *models.Department) error
	DeleteDepartment(ctx context.Context, id int64) error
}

// EnrollmentService handles enrollment-related operations
type EnrollmentService interface {
	GetAllEnrollments(ctx context.Context) ([]*models.Enrollment, error)
	GetEnrollmentByID(ctx context.Context, id int64) (*models.Enrollment, error)
	CreateEnrollment(ctx context.Context, enrollment *models.Enrollment) error
	UpdateEnrollment(ctx context.Context, enrollment *models.Enrollment) (*models.Enrollment, error)
	DeleteEnrollment(ctx context.Context, id int64) error
}

// ClassroomService handles classroom-related operations
type ClassroomService interface {
	GetAllClassrooms(ctx context.Context) ([]*models.Classroom, error)
	GetClassroomByID(ctx context.Context, id int64) (*models.Classroom, error)
	CreateClassroom(ctx context.Context, classroom *models.Classroom) error
	UpdateClassroom(ctx context.Context, classroom *models.Classroom) error
	DeleteClassroom(ctx context.Context, id int64) error
}

// AlumnusService handles alumni-related operations
type AlumnusService interface {
	GetAllAlumni(ctx context.Context) ([]*models.Alumnus, error)
	GetAlumnusByID(ctx context.Context, id int64) (*models.Alumnus, error)
	CreateAlumnus(ctx context.Context, alumnus *models.Alumnus) error
	UpdateAlumnus(ctx context.Context, alumnus *models.Alumnus) error
	DeleteAlumnus(ctx context.Context, id int64) error
}

// InstructorService handles instructor-related operations
type InstructorService interface {
	GetAllInstructors(ctx context.Context) ([]*models.Instructor, error)
	GetInstructorByID(ctx context.Context, id int64) (*models.Instructor, error)
	CreateInstructor(ctx context.Context, instructor *models.Instructor) error
	UpdateInstructor(ctx context.Context, instructor *models.Instructor) error
	DeleteInstructor(ctx context.Context, id int64) error
}

// AttendanceService handles attendance-related operations
type AttendanceService interface {
	GetAllAttendance(ctx context.Context) ([]*models.Attendance, error)
	GetAttendanceByID(ctx context.Context, id int64) (*models.Attendance, error)
	CreateAttendance(ctx context.Context, attendance *models.Attendance) error
	UpdateAttendance(ctx context.Context, attendance *models.Attendance) error
	DeleteAttendance(ctx context.Context, id int64) error
}

// translateStoreError maps repository and driver errors onto the API
// error taxonomy. Constraint violations can still surface from the store
// when a referenced row disappears between the pipeline's pre-check and
// the write.
func translateStoreError(err error, notFoundMessage, internalMessage string) error {
	switch {
	case errors.Is(err, repositories.ErrNotFound):
		return apperrors.NewNotFoundError(notFoundMessage)
	case dberrors.IsForeignKeyViolation(err):
		return apperrors.NewValidationError("Referenced record does not exist").WithDetails(err.Error())
	case dberrors.IsUniqueViolation(err):
		return apperrors.NewConflictError("Record already exists").WithDetails(err.Error())
	default:
		return apperrors.NewInternalError(err, internalMessage)
	}
}
