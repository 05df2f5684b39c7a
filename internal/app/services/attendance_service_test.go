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

func TestCreateAttendanceValidation(t *testing.T) {
	svc := &attendanceService{}
	ctx := context.Background()

	cases := []struct {
		name    string
		record  *models.Attendance
		message string
	}{
		{
			"missing status",
			&models.Attendance{StudentID: 20230001, CourseID: 101, AttendanceDate: "2023-10-02"},
			"All fields are required.",
		},
		{
			"missing student",
			&models.Attendance{CourseID: 101, AttendanceDate: "2023-10-02", Status: "Present"},
			"All fields are required.",
		},
		{
			"unparseable date",
			&models.Attendance{StudentID: 20230001, CourseID: 101, AttendanceDate: "October 2nd", Status: "Present"},
			"Invalid date format for attendance_date",
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := svc.CreateAttendance(ctx, tc.record)
			require.Error(t, err)
			assert.True(t, errors.Is(err, apperrors.ErrValidation))
			assert.Equal(t, tc.message, err.Error())
		})
	}
}

func TestCreateAttendanceRejectsDuplicateTuple(t *testing.T) {
	store := &fakeAttendanceStore{duplicateTuple: true}
	svc := &attendanceService{
		attendanceRepo: store,
		studentRepo:    &fakeExistsChecker{exists: true},
		courseRepo:     &fakeExistsChecker{exists: true},
	}

	record := &models.Attendance{
		StudentID:      20230001,
		CourseID:       101,
		AttendanceDate: "2023-10-02",
		Status:         "Present",
	}

	err := svc.CreateAttendance(context.Background(), record)
	require.Error(t, err)
	assert.True(t, errors.Is(err, apperrors.ErrConflict))
	assert.Equal(t, "Duplicate attendance entry for this student, course, and date.", err.Error())
	assert.Empty(t, store.created)
}

func TestCreateAttendanceChecksReferencesBeforeDuplicate(t *testing.T) {
	// The duplicate-tuple check answers "exists", but the unknown
	// student must win and the tuple query must not run at all.
	store := &fakeAttendanceStore{duplicateTuple: true}
	svc := &attendanceService{
		attendanceRepo: store,
		studentRepo:    &fakeExistsChecker{exists: false},
		courseRepo:     &fakeExistsChecker{exists: true},
	}

	record := &models.Attendance{
		StudentID:      99999999,
		CourseID:       101,
		AttendanceDate: "2023-10-02",
		Status:         "Present",
	}

	err := svc.CreateAttendance(context.Background(), record)
	require.Error(t, err)
	assert.True(t, errors.Is(err, apperrors.ErrValidation))
	assert.Equal(t, "Referenced student does not exist", err.Error())
	assert.Zero(t, store.tupleChecks)
	assert.Empty(t, store.created)
}

func TestCreateAttendanceStoresNormalizedDate(t *testing.T) {
	store := &fakeAttendanceStore{}
	svc := &attendanceService{
		attendanceRepo: store,
		studentRepo:    &fakeExistsChecker{exists: true},
		courseRepo:     &fakeExistsChecker{exists: true},
	}

	record := &models.Attendance{
		StudentID:      20230001,
		CourseID:       101,
		AttendanceDate: "2023-10-02T00:00:00Z",
		Status:         "Present",
	}

	require.NoError(t, svc.CreateAttendance(context.Background(), record))
	require.Len(t, store.created, 1)
	assert.Equal(t, "2023-10-02", store.created[0].AttendanceDate)
	assert.Equal(t, int64(1), record.AttendanceID)
	assert.Equal(t, 1, store.tupleChecks)
}

func TestValidateAttendanceNormalizesDate(t *testing.T) {
	svc := &attendanceService{}

	record := &models.Attendance{
		StudentID:      20230001,
		CourseID:       101,
		AttendanceDate: "2023-10-02T00:00:00Z",
		Status:         "Present",
	}

	require.NoError(t, svc.validateAttendance(record))
	assert.Equal(t, "2023-10-02", record.AttendanceDate)
}
