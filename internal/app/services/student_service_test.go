package services

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"campusregistry/internal/app/models"
	"campusregistry/internal/pkg/apperrors"
)

// Validation runs before any store access, so a service with nil
// repositories is enough to exercise the input checks.

func validStudent() *models.Student {
	return &models.Student{
		StudentID:     20230001,
		Name:          "John Doe",
		DateOfBirth:   "2004-05-17",
		Email:         "john.doe@example.com",
		PhoneNumber:   "5551234567",
		AdmissionYear: 2023,
		DepartmentID:  1,
	}
}

func TestCreateStudentValidation(t *testing.T) {
	svc := &studentService{}
	ctx := context.Background()

	cases := []struct {
		name    string
		mutate  func(s *models.Student)
		message string
	}{
		{
			"missing name",
			func(s *models.Student) { s.Name = "" },
			"All fields are required.",
		},
		{
			"missing student ID",
			func(s *models.Student) { s.StudentID = 0 },
			"All fields are required.",
		},
		{
			"missing department",
			func(s *models.Student) { s.DepartmentID = 0 },
			"All fields are required.",
		},
		{
			"bad email",
			func(s *models.Student) { s.Email = "not-an-email" },
			"Invalid email format",
		},
		{
			"phone with separators",
			func(s *models.Student) { s.PhoneNumber = "555-123-4567" },
			"Phone number must contain only digits",
		},
		{
			"unparseable date of birth",
			func(s *models.Student) { s.DateOfBirth = "17/05/2004" },
			"Invalid date format for date_of_birth",
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			student := validStudent()
			tc.mutate(student)

			err := svc.CreateStudent(ctx, student)
			require.Error(t, err)
			assert.True(t, errors.Is(err, apperrors.ErrValidation))
			assert.Equal(t, tc.message, err.Error())
		})
	}
}

func TestCreateStudentDuplicateID(t *testing.T) {
	store := &fakeStudentStore{exists: true}
	svc := &studentService{
		studentRepo:    store,
		departmentRepo: &fakeExistsChecker{exists: true},
	}

	err := svc.CreateStudent(context.Background(), validStudent())
	require.Error(t, err)
	assert.True(t, errors.Is(err, apperrors.ErrConflict))
	assert.Equal(t, "Student ID already exists.", err.Error())
	assert.Empty(t, store.created)
}

func TestCreateStudentUnknownDepartment(t *testing.T) {
	store := &fakeStudentStore{}
	svc := &studentService{
		studentRepo:    store,
		departmentRepo: &fakeExistsChecker{exists: false},
	}

	err := svc.CreateStudent(context.Background(), validStudent())
	require.Error(t, err)
	assert.True(t, errors.Is(err, apperrors.ErrValidation))
	assert.Equal(t, "Referenced department does not exist", err.Error())
	assert.Empty(t, store.created)
}

func TestCreateStudentPersistsRecord(t *testing.T) {
	store := &fakeStudentStore{}
	svc := &studentService{
		studentRepo:    store,
		departmentRepo: &fakeExistsChecker{exists: true},
	}

	student := validStudent()
	require.NoError(t, svc.CreateStudent(context.Background(), student))
	require.Len(t, store.created, 1)
	assert.Equal(t, student, store.created[0])
}

func TestValidateStudentNormalizesDate(t *testing.T) {
	svc := &studentService{}

	student := validStudent()
	student.DateOfBirth = "2004-05-17T00:00:00Z"

	require.NoError(t, svc.validateStudent(student, true))
	assert.Equal(t, "2004-05-17", student.DateOfBirth)
}

func TestUpdateStudentDoesNotRequireBodyID(t *testing.T) {
	svc := &studentService{}

	student := validStudent()
	student.StudentID = 0

	// The controller fills the ID from the path; update validation
	// must not reject a zero ID in the payload.
	err := svc.validateStudent(student, false)
	require.NoError(t, err)
}
