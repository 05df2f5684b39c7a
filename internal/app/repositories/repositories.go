package repositories

import (
	"errors"

	"github.com/jackc/pgx/v5/pgxpool"
)

// Shared repository errors. Services translate these into API errors.
var (
	// ErrNotFound is returned when a query by primary key matches no row
	// or an update/delete affects zero rows.
	ErrNotFound = errors.New("record not found")

	// ErrDepartmentInUse is returned when a department delete is rejected
	// because students, courses, or instructors still reference it.
	ErrDepartmentInUse = errors.New("department is referenced by other records")
)

// Repositories holds all the repository instances
type Repositories struct {
	StudentRepository    *StudentRepository
	CourseRepository     *CourseRepository
	DepartmentRepository *DepartmentRepository
	EnrollmentRepository *EnrollmentRepository
	ClassroomRepository  *ClassroomRepository
	AlumnusRepository    *AlumnusRepository
	InstructorRepository *InstructorRepository
	AttendanceRepository *AttendanceRepository
}

// NewRepositories initializes all repositories
func NewRepositories(db *pgxpool.Pool) *Repositories {
	return &Repositories{
		StudentRepository:    NewStudentRepository(db),
		CourseRepository:     NewCourseRepository(db),
		DepartmentRepository: NewDepartmentRepository(db),
		EnrollmentRepository: NewEnrollmentRepository(db),
		ClassroomRepository:  NewClassroomRepository(db),
		AlumnusRepository:    NewAlumnusRepository(db),
		InstructorRepository: NewInstructorRepository(db),
		AttendanceRepository: NewAttendanceRepository(db),
	}
}
