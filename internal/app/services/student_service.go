package services

import (
	"context"

	"campusregistry/internal/app/models"
	"campusregistry/internal/app/repositories"
	"campusregistry/internal/pkg/apperrors"
	"campusregistry/internal/pkg/validation"
)

type studentService struct {
	studentRepo    studentStore
	departmentRepo existsChecker
}

// NewStudentService creates a new student service instance
func NewStudentService(studentRepo *repositories.StudentRepository, departmentRepo *repositories.DepartmentRepository) StudentService {
	return &studentService{
		studentRepo:    studentRepo,
		departmentRepo: departmentRepo,
	}
}

// validateStudent runs the required-field and format checks shared by
// create and update. The date of birth is normalized in place.
func (s *studentService) validateStudent(student *models.Student, requireID bool) error {
	if requireID && student.StudentID <= 0 {
		return apperrors.NewValidationError("All fields are required.")
	}

	if student.Name == "" || student.DateOfBirth == "" || student.Email == "" ||
		student.PhoneNumber == "" || student.AdmissionYear == 0 || student.DepartmentID <= 0 {
		return apperrors.NewValidationError("All fields are required.")
	}

	if !validation.IsValidEmail(student.Email) {
		return apperrors.NewValidationError("Invalid email format")
	}

	if !validation.IsValidPhone(student.PhoneNumber) {
		return apperrors.NewValidationError("Phone number must contain only digits")
	}

	normalized, err := validation.NormalizeDate(student.DateOfBirth)
	if err != nil {
		return apperrors.NewValidationError("Invalid date format for date_of_birth")
	}
	student.DateOfBirth = normalized

	return nil
}

// checkDepartmentExists verifies the referenced department before a write.
func (s *studentService) checkDepartmentExists(ctx context.Context, departmentID int64) error {
	exists, err := s.departmentRepo.ExistsByID(ctx, departmentID)
	if err != nil {
		return apperrors.NewInternalError(err, "Failed to verify department")
	}
	if !exists {
		return apperrors.NewValidationError("Referenced department does not exist")
	}
	return nil
}

// GetAllStudents retrieves all students
func (s *studentService) GetAllStudents(ctx context.Context) ([]*models.Student, error) {
	students, err := s.studentRepo.GetAll(ctx)
	if err != nil {
		return nil, apperrors.NewInternalError(err, "Failed to fetch students")
	}
	return students, nil
}

// GetStudentByID retrieves a student by ID
func (s *studentService) GetStudentByID(ctx context.Context, id int64) (*models.Student, error) {
	student, err := s.studentRepo.GetByID(ctx, id)
	if err != nil {
		return nil, translateStoreError(err, "Student not found", "Failed to fetch student")
	}
	return student, nil
}

// CreateStudent validates and persists a new student record
func (s *studentService) CreateStudent(ctx context.Context, student *models.Student) error {
	if err := s.validateStudent(student, true); err != nil {
		return err
	}

	exists, err := s.studentRepo.ExistsByID(ctx, student.StudentID)
	if err != nil {
		return apperrors.NewInternalError(err, "Failed to add student.")
	}
	if exists {
		return apperrors.NewConflictError("Student ID already exists.")
	}

	if err := s.checkDepartmentExists(ctx, student.DepartmentID); err != nil {
		return err
	}

	if err := s.studentRepo.Create(ctx, student); err != nil {
		return translateStoreError(err, "Student not found", "Failed to add student.")
	}
	return nil
}

// UpdateStudent validates and replaces all mutable fields of a student
func (s *studentService) UpdateStudent(ctx context.Context, student *models.Student) error {
	if err := s.validateStudent(student, false); err != nil {
		return err
	}

	if err := s.checkDepartmentExists(ctx, student.DepartmentID); err != nil {
		return err
	}

	if err := s.studentRepo.Update(ctx, student); err != nil {
		return translateStoreError(err, "Student not found", "Failed to update student")
	}
	return nil
}

// DeleteStudent removes a student and its dependent records
func (s *studentService) DeleteStudent(ctx context.Context, id int64) error {
	if err := s.studentRepo.Delete(ctx, id); err != nil {
		return translateStoreError(err, "Student not found", "Failed to delete student")
	}
	return nil
}
