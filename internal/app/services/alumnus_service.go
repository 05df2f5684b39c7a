package services

import (
	"context"

	"campusregistry/internal/app/models"
	"campusregistry/internal/app/repositories"
	"campusregistry/internal/pkg/apperrors"
)

type alumnusService struct {
	alumnusRepo alumnusStore
	studentRepo existsChecker
}

// NewAlumnusService creates a new alumnus service instance
func NewAlumnusService(alumnusRepo *repositories.AlumnusRepository, studentRepo *repositories.StudentRepository) AlumnusService {
	return &alumnusService{
		alumnusRepo: alumnusRepo,
		studentRepo: studentRepo,
	}
}

func (s *alumnusService) validateAlumnus(alumnus *models.Alumnus) error {
	if alumnus.StudentID <= 0 || alumnus.GraduationYear == 0 ||
		alumnus.CurrentJobTitle == "" || alumnus.Company == "" {
		return apperrors.NewValidationError("All fields are required.")
	}
	return nil
}

func (s *alumnusService) checkStudentExists(ctx context.Context, studentID int64) error {
	exists, err := s.studentRepo.ExistsByID(ctx, studentID)
	if err != nil {
		return apperrors.NewInternalError(err, "Failed to verify student")
	}
	if !exists {
		return apperrors.NewValidationError("Referenced student does not exist")
	}
	return nil
}

// GetAllAlumni retrieves all alumni records
func (s *alumnusService) GetAllAlumni(ctx context.Context) ([]*models.Alumnus, error) {
	alumni, err := s.alumnusRepo.GetAll(ctx)
	if err != nil {
		return nil, apperrors.NewInternalError(err, "Error fetching alumni data")
	}
	return alumni, nil
}

// GetAlumnusByID retrieves an alumnus by ID
func (s *alumnusService) GetAlumnusByID(ctx context.Context, id int64) (*models.Alumnus, error) {
	alumnus, err := s.alumnusRepo.GetByID(ctx, id)
	if err != nil {
		return nil, translateStoreError(err, "Alumnus not found", "Error fetching alumnus data")
	}
	return alumnus, nil
}

// CreateAlumnus validates and persists a new alumnus record, filling in
// the store-generated key.
func (s *alumnusService) CreateAlumnus(ctx context.Context, alumnus *models.Alumnus) error {
	if err := s.validateAlumnus(alumnus); err != nil {
		return err
	}

	if err := s.checkStudentExists(ctx, alumnus.StudentID); err != nil {
		return err
	}

	if err := s.alumnusRepo.Create(ctx, alumnus); err != nil {
		return translateStoreError(err, "Alumnus not found", "Error adding alumnus data")
	}
	return nil
}

// UpdateAlumnus validates and replaces all mutable fields of an alumnus record
func (s *alumnusService) UpdateAlumnus(ctx context.Context, alumnus *models.Alumnus) error {
	if err := s.validateAlumnus(alumnus); err != nil {
		return err
	}

	if err := s.checkStudentExists(ctx, alumnus.StudentID); err != nil {
		return err
	}

	if err := s.alumnusRepo.Update(ctx, alumnus); err != nil {
		return translateStoreError(err, "Alumnus not found", "Error updating alumnus data")
	}
	return nil
}

// DeleteAlumnus removes an alumnus record by ID
func (s *alumnusService) DeleteAlumnus(ctx context.Context, id int64) error {
	if err := s.alumnusRepo.Delete(ctx, id); err != nil {
		return translateStoreError(err, "Alumnus not found", "Error deleting alumnus data")
	}
	return nil
}
