package services

import (
	"context"

	"campusregistry/internal/app/models"
	"campusregistry/internal/app/repositories"
	"campusregistry/internal/pkg/apperrors"
)

type classroomService struct {
	classroomRepo classroomStore
}

// NewClassroomService creates a new classroom service instance
func NewClassroomService(classroomRepo *repositories.ClassroomRepository) ClassroomService {
	return &classroomService{
		classroomRepo: classroomRepo,
	}
}

func (s *classroomService) validateClassroom(classroom *models.Classroom, requireID bool) error {
	if requireID && classroom.ClassroomID <= 0 {
		return apperrors.NewValidationError("All fields are required.")
	}

	if classroom.Building == "" || classroom.RoomNumber == "" || classroom.Capacity == 0 {
		return apperrors.NewValidationError("All fields are required.")
	}

	return nil
}

// GetAllClassrooms retrieves all classrooms
func (s *classroomService) GetAllClassrooms(ctx context.Context) ([]*models.Classroom, error) {
	classrooms, err := s.classroomRepo.GetAll(ctx)
	if err != nil {
		return nil, apperrors.NewInternalError(err, "Failed to fetch classrooms")
	}
	return classrooms, nil
}

// GetClassroomByID retrieves a classroom by ID
func (s *classroomService) GetClassroomByID(ctx context.Context, id int64) (*models.Classroom, error) {
	classroom, err := s.classroomRepo.GetByID(ctx, id)
	if err != nil {
		return nil, translateStoreError(err, "Classroom not found", "Failed to fetch classroom")
	}
	return classroom, nil
}

// CreateClassroom validates and persists a new classroom record
func (s *classroomService) CreateClassroom(ctx context.Context, classroom *models.Classroom) error {
	if err := s.validateClassroom(classroom, true); err != nil {
		return err
	}

	exists, err := s.classroomRepo.ExistsByID(ctx, classroom.ClassroomID)
	if err != nil {
		return apperrors.NewInternalError(err, "Failed to create classroom")
	}
	if exists {
		return apperrors.NewConflictError("Classroom ID already exists")
	}

	if err := s.classroomRepo.Create(ctx, classroom); err != nil {
		return translateStoreError(err, "Classroom not found", "Failed to create classroom")
	}
	return nil
}

// UpdateClassroom validates and replaces all mutable fields of a classroom
func (s *classroomService) UpdateClassroom(ctx context.Context, classroom *models.Classroom) error {
	if err := s.validateClassroom(classroom, false); err != nil {
		return err
	}

	if err := s.classroomRepo.Update(ctx, classroom); err != nil {
		return translateStoreError(err, "Classroom not found", "Failed to update classroom")
	}
	return nil
}

// DeleteClassroom removes a classroom by ID
func (s *classroomService) DeleteClassroom(ctx context.Context, id int64) error {
	if err := s.classroomRepo.Delete(ctx, id); err != nil {
		return translateStoreError(err, "Classroom not found", "Failed to delete classroom")
	}
	return nil
}
