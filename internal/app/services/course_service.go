package services

import (
	"context"

	"campusregistry/internal/app/models"
	"campusregistry/internal/app/repositories"
	"campusregistry/internal/pkg/apperrors"
)

type courseService struct {
	courseRepo     courseStore
	departmentRepo existsChecker
}

// NewCourseService creates a new course service instance
func NewCourseService(courseRepo *repositories.CourseRepository, departmentRepo *repositories.DepartmentRepository) CourseService {
	return &courseService{
		courseRepo:     courseRepo,
		departmentRepo: departmentRepo,
	}
}

func (s *courseService) validateCourse(course *models.Course, requireID bool) error {
	if requireID && course.CourseID <= 0 {
		return apperrors.NewValidationError("All fields are required.")
	}

	if course.CourseName == "" || course.Credits == 0 || course.DepartmentID <= 0 || course.Semester == "" {
		return apperrors.NewValidationError("All fields are required.")
	}

	return nil
}

func (s *courseService) checkDepartmentExists(ctx context.Context, departmentID int64) error {
	exists, err := s.departmentRepo.ExistsByID(ctx, departmentID)
	if err != nil {
		return apperrors.NewInternalError(err, "Failed to verify department")
	}
	if !exists {
		return apperrors.NewValidationError("Referenced department does not exist")
	}
	return nil
}

// GetAllCourses retrieves all courses
func (s *courseService) GetAllCourses(ctx context.Context) ([]*models.Course, error) {
	courses, err := s.courseRepo.GetAll(ctx)
	if err != nil {
		return nil, apperrors.NewInternalError(err, "Failed to fetch courses")
	}
	return courses, nil
}

// GetCourseByID retrieves a course by ID
func (s *courseService) GetCourseByID(ctx context.Context, id int64) (*models.Course, error) {
	course, err := s.courseRepo.GetByID(ctx, id)
	if err != nil {
		return nil, translateStoreError(err, "Course not found", "Failed to fetch course")
	}
	return course, nil
}

// CreateCourse validates and persists a new course record
func (s *courseService) CreateCourse(ctx context.Context, course *models.Course) error {
	if err := s.validateCourse(course, true); err != nil {
		return err
	}

	exists, err := s.courseRepo.ExistsByID(ctx, course.CourseID)
	if err != nil {
		return apperrors.NewInternalError(err, "Failed to create course.")
	}
	if exists {
		return apperrors.NewConflictError("Course ID already exists")
	}

	if err := s.checkDepartmentExists(ctx, course.DepartmentID); err != nil {
		return err
	}

	if err := s.courseRepo.Create(ctx, course); err != nil {
		return translateStoreError(err, "Course not found", "Failed to create course.")
	}
	return nil
}

// UpdateCourse validates and replaces all mutable fields of a course
func (s *courseService) UpdateCourse(ctx context.Context, course *models.Course) error {
	if err := s.validateCourse(course, false); err != nil {
		return err
	}

	if err := s.checkDepartmentExists(ctx, course.DepartmentID); err != nil {
		return err
	}

	if err := s.courseRepo.Update(ctx, course); err != nil {
		return translateStoreError(err, "Course not found", "Failed to update course.")
	}
	return nil
}

// DeleteCourse removes a course and its dependent enrollments and
// attendance records in one transaction.
func (s *courseService) DeleteCourse(ctx context.Context, id int64) error {
	if err := s.courseRepo.Delete(ctx, id); err != nil {
		return translateStoreError(err, "Course not found", "Failed to delete course.")
	}
	return nil
}
