package services

import (
	"context"

	"campusregistry/internal/app/models"
	"campusregistry/internal/app/repositories"
	"campusregistry/internal/pkg/apperrors"
	"campusregistry/internal/pkg/validation"
)

type enrollmentService struct {
	enrollmentRepo enrollmentStore
	studentRepo    existsChecker
	courseRepo     existsChecker
}

// NewEnrollmentService creates a new enrollment service instance
func NewEnrollmentService(
	enrollmentRepo *repositories.EnrollmentRepository,
	studentRepo *repositories.StudentRepository,
	courseRepo *repositories.CourseRepository,
) EnrollmentService {
	return &enrollmentService{
		enrollmentRepo: enrollmentRepo,
		studentRepo:    studentRepo,
		courseRepo:     courseRepo,
	}
}

func (s *enrollmentService) validateEnrollment(enrollment *models.Enrollment, requireID bool) error {
	if requireID && enrollment.EnrollmentID <= 0 {
		return apperrors.NewValidationError("All fields are required.")
	}

	if enrollment.StudentID <= 0 || enrollment.CourseID <= 0 ||
		enrollment.EnrollmentDate == "" || enrollment.Grade == "" {
		return apperrors.NewValidationError("All fields are required.")
	}

	normalized, err := validation.NormalizeDate(enrollment.EnrollmentDate)
	if err != nil {
		return apperrors.NewValidationError("Invalid date format for enrollment_date")
	}
	enrollment.EnrollmentDate = normalized

	return nil
}

// checkReferences verifies the referenced student and course before a write.
func (s *enrollmentService) checkReferences(ctx context.Context, studentID, courseID int64) error {
	studentExists, err := s.studentRepo.ExistsByID(ctx, studentID)
	if err != nil {
		return apperrors.NewInternalError(err, "Failed to verify student")
	}
	if !studentExists {
		return apperrors.NewValidationError("Referenced student does not exist")
	}

	courseExists, err := s.courseRepo.ExistsByID(ctx, courseID)
	if err != nil {
		return apperrors.NewInternalError(err, "Failed to verify course")
	}
	if !courseExists {
		return apperrors.NewValidationError("Referenced course does not exist")
	}

	return nil
}

// GetAllEnrollments retrieves all enrollments
func (s *enrollmentService) GetAllEnrollments(ctx context.Context) ([]*models.Enrollment, error) {
	enrollments, err := s.enrollmentRepo.GetAll(ctx)
	if err != nil {
		return nil, apperrors.NewInternalError(err, "Failed to fetch enrollments")
	}
	return enrollments, nil
}

// GetEnrollmentByID retrieves an enrollment by ID
func (s *enrollmentService) GetEnrollmentByID(ctx context.Context, id int64) (*models.Enrollment, error) {
	enrollment, err := s.enrollmentRepo.GetByID(ctx, id)
	if err != nil {
		return nil, translateStoreError(err, "Enrollment not found", "Failed to fetch enrollment")
	}
	return enrollment, nil
}

// CreateEnrollment validates and persists a new enrollment record
func (s *enrollmentService) CreateEnrollment(ctx context.Context, enrollment *models.Enrollment) error {
	if err := s.validateEnrollment(enrollment, true); err != nil {
		return err
	}

	exists, err := s.enrollmentRepo.ExistsByID(ctx, enrollment.EnrollmentID)
	if err != nil {
		return apperrors.NewInternalError(err, "Failed to add enrollment.")
	}
	if exists {
		return apperrors.NewConflictError("Enrollment ID already exists")
	}

	if err := s.checkReferences(ctx, enrollment.StudentID, enrollment.CourseID); err != nil {
		return err
	}

	if err := s.enrollmentRepo.Create(ctx, enrollment); err != nil {
		return translateStoreError(err, "Enrollment not found", "Failed to add enrollment.")
	}
	return nil
}

// UpdateEnrollment validates and replaces all mutable fields of an
// enrollment, returning the post-update row.
func (s *enrollmentService) UpdateEnrollment(ctx context.Context, enrollment *models.Enrollment) (*models.Enrollment, error) {
	if err := s.validateEnrollment(enrollment, false); err != nil {
		return nil, err
	}

	if err := s.checkReferences(ctx, enrollment.StudentID, enrollment.CourseID); err != nil {
		return nil, err
	}

	if err := s.enrollmentRepo.Update(ctx, enrollment); err != nil {
		return nil, translateStoreError(err, "Enrollment not found", "Failed to update enrollment")
	}

	updated, err := s.enrollmentRepo.GetByID(ctx, enrollment.EnrollmentID)
	if err != nil {
		return nil, translateStoreError(err, "Enrollment not found", "Failed to fetch enrollment")
	}
	return updated, nil
}

// DeleteEnrollment removes an enrollment by ID
func (s *enrollmentService) DeleteEnrollment(ctx context.Context, id int64) error {
	if err := s.enrollmentRepo.Delete(ctx, id); err != nil {
		return translateStoreError(err, "Enrollment not found", "Failed to delete enrollment")
	}
	return nil
}
