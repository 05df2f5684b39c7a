package controllers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"campusregistry/internal/app/controllers"
	"campusregistry/internal/app/models"
	"campusregistry/internal/app/models/dto"
	"campusregistry/internal/app/services"
	"campusregistry/internal/pkg/apperrors"
)

type stubAttendanceService struct {
	getAll  func(ctx context.Context) ([]*models.Attendance, error)
	getByID func(ctx context.Context, id int64) (*models.Attendance, error)
	create  func(ctx context.Context, attendance *models.Attendance) error
	update  func(ctx context.Context, attendance *models.Attendance) error
	remove  func(ctx context.Context, id int64) error
}

func (s *stubAttendanceService) GetAllAttendance(ctx context.Context) ([]*models.Attendance, error) {
	return s.getAll(ctx)
}

func (s *stubAttendanceService) GetAttendanceByID(ctx context.Context, id int64) (*models.Attendance, error) {
	return s.getByID(ctx, id)
}

func (s *stubAttendanceService) CreateAttendance(ctx context.Context, attendance *models.Attendance) error {
	return s.create(ctx, attendance)
}

func (s *stubAttendanceService) UpdateAttendance(ctx context.Context, attendance *models.Attendance) error {
	return s.update(ctx, attendance)
}

func (s *stubAttendanceService) DeleteAttendance(ctx context.Context, id int64) error {
	return s.remove(ctx, id)
}

func newAttendanceRouter(svc services.AttendanceService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	c := controllers.NewAttendanceController(svc)
	router.GET("/api/attendance", c.GetAllAttendance)
	router.GET("/api/attendance/:id", c.GetAttendanceByID)
	router.POST("/api/attendance", c.CreateAttendance)
	router.PUT("/api/attendance/:id", c.UpdateAttendance)
	router.DELETE("/api/attendance/:id", c.DeleteAttendance)
	return router
}

func TestCreateAttendanceEchoesRecord(t *testing.T) {
	svc := &stubAttendanceService{
		create: func(ctx context.Context, attendance *models.Attendance) error {
			attendance.AttendanceID = 42
			attendance.AttendanceDate = "2023-10-02"
			return nil
		},
	}
	router := newAttendanceRouter(svc)

	body := []byte(`{"student_id": 20230001, "course_id": 101, "attendance_date": "2023-10-02T00:00:00Z", "status": "Present"}`)
	req := httptest.NewRequest(http.MethodPost, "/api/attendance", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusCreated, w.Code)

	var resp models.Attendance
	require.NoError(t, json.NewDecoder(w.Body).Decode(&resp))
	assert.Equal(t, int64(42), resp.AttendanceID)
	assert.Equal(t, "2023-10-02", resp.AttendanceDate)
	assert.Equal(t, "Present", resp.Status)
}

func TestCreateAttendanceDuplicateTuple(t *testing.T) {
	svc := &stubAttendanceService{
		create: func(ctx context.Context, attendance *models.Attendance) error {
			return apperrors.NewConflictError("Duplicate attendance entry for this student, course, and date.")
		},
	}
	router := newAttendanceRouter(svc)

	body := []byte(`{"student_id": 20230001, "course_id": 101, "attendance_date": "2023-10-02", "status": "Present"}`)
	req := httptest.NewRequest(http.MethodPost, "/api/attendance", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusConflict, w.Code)

	var resp dto.ErrorResponse
	require.NoError(t, json.NewDecoder(w.Body).Decode(&resp))
	assert.Equal(t, "Duplicate attendance entry for this student, course, and date.", resp.Error)
}

func TestUpdateAttendance(t *testing.T) {
	svc := &stubAttendanceService{
		update: func(ctx context.Context, attendance *models.Attendance) error {
			return nil
		},
	}
	router := newAttendanceRouter(svc)

	body := []byte(`{"student_id": 20230001, "course_id": 101, "attendance_date": "2023-10-02", "status": "Absent"}`)
	req := httptest.NewRequest(http.MethodPut, "/api/attendance/42", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp dto.MessageResponse
	require.NoError(t, json.NewDecoder(w.Body).Decode(&resp))
	assert.Equal(t, "Attendance record updated successfully", resp.Message)
}

func TestGetAllAttendance(t *testing.T) {
	svc := &stubAttendanceService{
		getAll: func(ctx context.Context) ([]*models.Attendance, error) {
			return []*models.Attendance{
				{AttendanceID: 1, StudentID: 20230001, CourseID: 101, AttendanceDate: "2023-10-02", Status: "Present"},
				{AttendanceID: 2, StudentID: 20230001, CourseID: 101, AttendanceDate: "2023-10-03", Status: "Absent"},
			}, nil
		},
	}
	router := newAttendanceRouter(svc)

	req := httptest.NewRequest(http.MethodGet, "/api/attendance", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var records []models.Attendance
	require.NoError(t, json.NewDecoder(w.Body).Decode(&records))
	require.Len(t, records, 2)
	assert.Equal(t, int64(1), records[0].AttendanceID)
}
