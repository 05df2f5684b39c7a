package services

import (
	"context"

	"campusregistry/internal/app/models"
	"campusregistry/internal/app/repositories"
)

// In-memory store fakes. Each one records writes and lets a test
// script the pre-check answers, so the service pipeline runs without
// a database.

type fakeExistsChecker struct {
	exists bool
	err    error
	checks int
}

func (f *fakeExistsChecker) ExistsByID(ctx context.Context, id int64) (bool, error) {
	f.checks++
	return f.exists, f.err
}

type fakeStudentStore struct {
	exists    bool
	existsErr error
	created   []*models.Student
	createErr error
}

func (f *fakeStudentStore) GetAll(ctx context.Context) ([]*models.Student, error) {
	return nil, nil
}

func (f *fakeStudentStore) GetByID(ctx context.Context, id int64) (*models.Student, error) {
	return nil, repositories.ErrNotFound
}

func (f *fakeStudentStore) ExistsByID(ctx context.Context, id int64) (bool, error) {
	return f.exists, f.existsErr
}

func (f *fakeStudentStore) Create(ctx context.Context, student *models.Student) error {
	if f.createErr != nil {
		return f.createErr
	}
	f.created = append(f.created, student)
	return nil
}

func (f *fakeStudentStore) Update(ctx context.Context, student *models.Student) error {
	return nil
}

func (f *fakeStudentStore) Delete(ctx context.Context, id int64) error {
	return nil
}

type fakeDepartmentStore struct {
	deleteErr error
	deleted   []int64
}

func (f *fakeDepartmentStore) GetAll(ctx context.Context) ([]*models.Department, error) {
	return nil, nil
}

func (f *fakeDepartmentStore) GetByID(ctx context.Context, id int64) (*models.Department, error) {
	return nil, repositories.ErrNotFound
}

func (f *fakeDepartmentStore) Create(ctx context.Context, department *models.Department) error {
	return nil
}

func (f *fakeDepartmentStore) Update(ctx context.Context, department *models.Department) error {
	return nil
}

func (f *fakeDepartmentStore) Delete(ctx context.Context, id int64) error {
	f.deleted = append(f.deleted, id)
	return f.deleteErr
}

type fakeAttendanceStore struct {
	duplicateTuple bool
	tupleErr       error
	tupleChecks    int
	created        []*models.Attendance
	createErr      error
}

func (f *fakeAttendanceStore) GetAll(ctx context.Context) ([]*models.Attendance, error) {
	return nil, nil
}

func (f *fakeAttendanceStore) GetByID(ctx context.Context, id int64) (*models.Attendance, error) {
	return nil, repositories.ErrNotFound
}

func (f *fakeAttendanceStore) ExistsForStudentCourseDate(ctx context.Context, studentID, courseID int64, date string) (bool, error) {
	f.tupleChecks++
	return f.duplicateTuple, f.tupleErr
}

func (f *fakeAttendanceStore) Create(ctx context.Context, attendance *models.Attendance) error {
	if f.createErr != nil {
		return f.createErr
	}
	attendance.AttendanceID = int64(len(f.created) + 1)
	f.created = append(f.created, attendance)
	return nil
}

func (f *fakeAttendanceStore) Update(ctx context.Context, attendance *models.Attendance) error {
	return nil
}

func (f *fakeAttendanceStore) Delete(ctx context.Context, id int64) error {
	return nil
}
