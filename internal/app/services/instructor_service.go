package services

import (
	"context"

	"campusregistry/internal/app/models"
	"campusregistry/internal/app/repositories"
	"campusregistry/internal/pkg/apperrors"
	"campusregistry/internal/pkg/validation"
)

type instructorService struct {
	instructorRepo instructorStore
	departmentRepo existsChecker
}

// NewInstructorService creates a new instructor service instance
func NewInstructorService(instructorRepo *repositories.InstructorRepository, departmentRepo *repositories.DepartmentRepository) InstructorService {
	return &instructorService{
		instructorRepo: instructorRepo,
		departmentRepo: departmentRepo,
	}
}

// validateInstructor applies the same email and phone format checks as
// the student pipeline; the fields are the same kind of data.
func (s *instructorService) validateInstructor(instructor *models.Instructor) error {
	if instructor.Name == "" || instructor.Email == "" || instructor.PhoneNumber == "" ||
		instructor.HireDate == "" || instructor.DepartmentID <= 0 {
		return apperrors.NewValidationError("All fields are required.")
	}

	if !validation.IsValidEmail(instructor.Email) {
		return apperrors.NewValidationError("Invalid email format")
	}

	if !validation.IsValidPhone(instructor.PhoneNumber) {
		return apperrors.NewValidationError("Phone number must contain only digits")
	}

	normalized, err := validation.NormalizeDate(instructor.HireDate)
	if err != nil {
		return apperrors.NewValidationError("Invalid date format for hire_date")
	}
	instructor.HireDate = normalized

	return nil
}

func (s *instructorService) checkDepartmentExists(ctx context.Context, departmentID int64) error {
	exists, err := s.departmentRepo.ExistsByID(ctx, departmentID)
	if err != nil {
		return apperrors.NewInternalError(err, "Failed to verify department")
	}
	if !exists {
		return apperrors.NewValidationError("Referenced department does not exist")
	}
	return nil
}

// GetAllInstructors retrieves all instructors
func (s *instructorService) GetAllInstructors(ctx context.Context) ([]*models.Instructor, error) {
	instructors, err := s.instructorRepo.GetAll(ctx)
	if err != nil {
		return nil, apperrors.NewInternalError(err, "Failed to fetch instructors")
	}
	return instructors, nil
}

// GetInstructorByID retrieves an instructor by ID
func (s *instructorService) GetInstructorByID(ctx context.Context, id int64) (*models.Instructor, error) {
	instructor, err := s.instructorRepo.GetByID(ctx, id)
	if err != nil {
		return nil, translateStoreError(err, "Instructor not found", "Failed to fetch instructor")
	}
	return instructor, nil
}

// CreateInstructor validates and persists a new instructor, filling in
// the store-generated key.
func (s *instructorService) CreateInstructor(ctx context.Context, instructor *models.Instructor) error {
	if err := s.validateInstructor(instructor); err != nil {
		return err
	}

	if err := s.checkDepartmentExists(ctx, instructor.DepartmentID); err != nil {
		return err
	}

	if err := s.instructorRepo.Create(ctx, instructor); err != nil {
		return translateStoreError(err, "Instructor not found", "Failed to add instructor")
	}
	return nil
}

// UpdateInstructor validates and replaces all mutable fields of an instructor
func (s *instructorService) UpdateInstructor(ctx context.Context, instructor *models.Instructor) error {
	if err := s.validateInstructor(instructor); err != nil {
		return err
	}

	if err := s.checkDepartmentExists(ctx, instructor.DepartmentID); err != nil {
		return err
	}

	if err := s.instructorRepo.Update(ctx, instructor); err != nil {
		return translateStoreError(err, "Instructor not found", "Failed to update instructor")
	}
	return nil
}

// DeleteInstructor removes an instructor by ID
func (s *instructorService) DeleteInstructor(ctx context.Context, id int64) error {
	if err := s.instructorRepo.Delete(ctx, id); err != nil {
		return translateStoreError(err, "Instructor not found", "Failed to delete instructor")
	}
	return nil
}
