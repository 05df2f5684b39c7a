package services

import (
	"context"
	"errors"

	"campusregistry/internal/app/models"
	"campusregistry/internal/app/repositories"
	"campusregistry/internal/pkg/apperrors"
	"campusregistry/internal/pkg/dberrors"
)

type departmentService struct {
	departmentRepo departmentStore
}

// NewDepartmentService creates a new department service instance
func NewDepartmentService(departmentRepo *repositories.DepartmentRepository) DepartmentService {
	return &departmentService{
		departmentRepo: departmentRepo,
	}
}

func (s *departmentService) validateDepartment(department *models.Department) error {
	if department.DepartmentName == "" || department.HeadOfDepartment == "" {
		return apperrors.NewValidationError("All fields are required.")
	}
	return nil
}

// GetAllDepartments retrieves all departments
func (s *departmentService) GetAllDepartments(ctx context.Context) ([]*models.Department, error) {
	departments, err := s.departmentRepo.GetAll(ctx)
	if err != nil {
		return nil, apperrors.NewInternalError(err, "Error fetching departments")
	}
	return departments, nil
}

// GetDepartmentByID retrieves a department by ID
func (s *departmentService) GetDepartmentByID(ctx context.Context, id int64) (*models.Department, error) {
	department, err := s.departmentRepo.GetByID(ctx, id)
	if err != nil {
		return nil, translateStoreError(err, "Department not found", "Error fetching department")
	}
	return department, nil
}

// CreateDepartment validates and persists a new department, filling in
// the store-generated key.
func (s *departmentService) CreateDepartment(ctx context.Context, department *models.Department) error {
	if err := s.validateDepartment(department); err != nil {
		return err
	}

	if err := s.departmentRepo.Create(ctx, department); err != nil {
		return translateStoreError(err, "Department not found", "Error adding department")
	}
	return nil
}

// UpdateDepartment validates and replaces all mutable fields of a department
func (s *departmentService) UpdateDepartment(ctx context.Context, department *models.Department) error {
	if err := s.validateDepartment(department); err != nil {
		return err
	}

	if err := s.departmentRepo.Update(ctx, department); err != nil {
		return translateStoreError(err, "Department not found", "Error updating department")
	}
	return nil
}

// DeleteDepartment removes a department. Deletion is rejected while
// students, courses, or instructors still reference it. A dependent
// inserted between the pre-check and the delete surfaces as a foreign
// key violation and is reported the same way.
func (s *departmentService) DeleteDepartment(ctx context.Context, id int64) error {
	err := s.departmentRepo.Delete(ctx, id)
	if err != nil {
		if errors.Is(err, repositories.ErrDepartmentInUse) || dberrors.IsForeignKeyViolation(err) {
			return apperrors.NewConflictError("Department is referenced by students, courses, or instructors")
		}
		return translateStoreError(err, "Department not found", "Error deleting department")
	}
	return nil
}
