package services

import (
	"context"

	"campusregistry/internal/app/models"
	"campusregistry/internal/app/repositories"
	"campusregistry/internal/pkg/apperrors"
	"campusregistry/internal/pkg/validation"
)

type attendanceService struct {
	attendanceRepo attendanceStore
	studentRepo    existsChecker
	courseRepo     existsChecker
}

// NewAttendanceService creates a new attendance service instance
func NewAttendanceService(
	attendanceRepo *repositories.AttendanceRepository,
	studentRepo *repositories.StudentRepository,
	courseRepo *repositories.CourseRepository,
) AttendanceService {
	return &attendanceService{
		attendanceRepo: attendanceRepo,
		studentRepo:    studentRepo,
		courseRepo:     courseRepo,
	}
}

func (s *attendanceService) validateAttendance(attendance *models.Attendance) error {
	if attendance.StudentID <= 0 || attendance.CourseID <= 0 ||
		attendance.AttendanceDate == "" || attendance.Status == "" {
		return apperrors.NewValidationError("All fields are required.")
	}

	normalized, err := validation.NormalizeDate(attendance.AttendanceDate)
	if err != nil {
		return apperrors.NewValidationError("Invalid date format for attendance_date")
	}
	attendance.AttendanceDate = normalized

	return nil
}

func (s *attendanceService) checkReferences(ctx context.Context, studentID, courseID int64) error {
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

// GetAllAttendance retrieves all attendance records
func (s *attendanceService) GetAllAttendance(ctx context.Context) ([]*models.Attendance, error) {
	records, err := s.attendanceRepo.GetAll(ctx)
	if err != nil {
		return nil, apperrors.NewInternalError(err, "Failed to fetch attendance records")
	}
	return records, nil
}

// GetAttendanceByID retrieves an attendance record by ID
func (s *attendanceService) GetAttendanceByID(ctx context.Context, id int64) (*models.Attendance, error) {
	record, err := s.attendanceRepo.GetByID(ctx, id)
	if err != nil {
		return nil, translateStoreError(err, "Attendance record not found", "Failed to fetch attendance record")
	}
	return record, nil
}

// CreateAttendance validates and persists a new attendance record,
// filling in the store-generated key. A second record for the same
// student, course, and date is rejected.
func (s *attendanceService) CreateAttendance(ctx context.Context, attendance *models.Attendance) error {
	if err := s.validateAttendance(attendance); err != nil {
		return err
	}

	if err := s.checkReferences(ctx, attendance.StudentID, attendance.CourseID); err != nil {
		return err
	}

	exists, err := s.attendanceRepo.ExistsForStudentCourseDate(ctx, attendance.StudentID, attendance.CourseID, attendance.AttendanceDate)
	if err != nil {
		return apperrors.NewInternalError(err, "Failed to add attendance record")
	}
	if exists {
		return apperrors.NewConflictError("Duplicate attendance entry for this student, course, and date.")
	}

	if err := s.attendanceRepo.Create(ctx, attendance); err != nil {
		return translateStoreError(err, "Attendance record not found", "Failed to add attendance record")
	}
	return nil
}

// UpdateAttendance validates and replaces all mutable fields of an
// attendance record
func (s *attendanceService) UpdateAttendance(ctx context.Context, attendance *models.Attendance) error {
	if err := s.validateAttendance(attendance); err != nil {
		return err
	}

	if err := s.checkReferences(ctx, attendance.StudentID, attendance.CourseID); err != nil {
		return err
	}

	if err := s.attendanceRepo.Update(ctx, attendance); err != nil {
		return translateStoreError(err, "Attendance record not found", "Failed to update attendance record")
	}
	return nil
}

// DeleteAttendance removes an attendance record by ID
func (s *attendanceService) DeleteAttendance(ctx context.Context, id int64) error {
	if err := s.attendanceRepo.Delete(ctx, id); err != nil {
		return translateStoreError(err, "Attendance record not found", "Failed to delete attendance record")
	}
	return nil
}
