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

type stubEnrollmentService struct {
	getAll  func(ctx context.Context) ([]*models.Enrollment, error)
	getByID func(ctx context.Context, id int64) (*models.Enrollment, error)
	create  func(ctx context.Context, enrollment *models.Enrollment) error
	update  func(ctx context.Context, enrollment *models.Enrollment) (*models.Enrollment, error)
	remove  func(ctx context.Context, id int64) error
}

func (s *stubEnrollmentService) GetAllEnrollments(ctx context.Context) ([]*models.Enrollment, error) {
	return s.getAll(ctx)
}

func (s *stubEnrollmentService) GetEnrollmentByID(ctx context.Context, id int64) (*models.Enrollment, error) {
	return s.getByID(ctx, id)
}

func (s *stubEnrollmentService) CreateEnrollment(ctx context.Context, enrollment *models.Enrollment) error {
	return s.create(ctx, enrollment)
}

func (s *stubEnrollmentService) UpdateEnrollment(ctx context.Context, enrollment *models.Enrollment) (*models.Enrollment, error) {
	return s.update(ctx, enrollment)
}

func (s *stubEnrollmentService) DeleteEnrollment(ctx context.Context, id int64) error {
	return s.remove(ctx, id)
}

func newEnrollmentRouter(svc services.EnrollmentService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	c := controllers.NewEnrollmentController(svc)
	router.GET("/api/enrollments", c.GetAllEnrollments)
	router.GET("/api/enrollments/:id", c.GetEnrollmentByID)
	router.POST("/api/enrollments", c.CreateEnrollment)
	router.PUT("/api/enrollments/:id", c.UpdateEnrollment)
	router.DELETE("/api/enrollments/:id", c.DeleteEnrollment)
	return router
}

func TestCreateEnrollment(t *testing.T) {
	svc := &stubEnrollmentService{
		create: func(ctx context.Context, enrollment *models.Enrollment) error {
			return nil
		},
	}
	router := newEnrollmentRouter(svc)

	body := []byte(`{"enrollment_id": 1, "student_id": 20230001, "course_id": 101, "enrollment_date": "2023-09-01", "grade": "A"}`)
	req := httptest.NewRequest(http.MethodPost, "/api/enrollments", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusCreated, w.Code)

	var resp dto.EnrollmentCreatedResponse
	require.NoError(t, json.NewDecoder(w.Body).Decode(&resp))
	assert.Equal(t, "Enrollment added successfully", resp.Message)
	assert.Equal(t, int64(1), resp.EnrollmentID)
}

func TestCreateEnrollmentMissingReference(t *testing.T) {
	svc := &stubEnrollmentService{
		create: func(ctx context.Context, enrollment *models.Enrollment) error {
			return apperrors.NewValidationError("Referenced student does not exist")
		},
	}
	router := newEnrollmentRouter(svc)

	body := []byte(`{"enrollment_id": 1, "student_id": 999, "course_id": 101, "enrollment_date": "2023-09-01", "grade": "A"}`)
	req := httptest.NewRequest(http.MethodPost, "/api/enrollments", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)

	var resp dto.ErrorResponse
	require.NoError(t, json.NewDecoder(w.Body).Decode(&resp))
	assert.Equal(t, "Referenced student does not exist", resp.Error)
}

func TestUpdateEnrollmentReturnsRow(t *testing.T) {
	svc := &stubEnrollmentService{
		update: func(ctx context.Context, enrollment *models.Enrollment) (*models.Enrollment, error) {
			return &models.Enrollment{
				EnrollmentID:   enrollment.EnrollmentID,
				StudentID:      enrollment.StudentID,
				CourseID:       enrollment.CourseID,
				EnrollmentDate: "2023-09-01",
				Grade:          enrollment.Grade,
			}, nil
		},
	}
	router := newEnrollmentRouter(svc)

	body := []byte(`{"student_id": 20230001, "course_id": 101, "enrollment_date": "2023-09-01", "grade": "B"}`)
	req := httptest.NewRequest(http.MethodPut, "/api/enrollments/1", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp models.Enrollment
	require.NoError(t, json.NewDecoder(w.Body).Decode(&resp))
	assert.Equal(t, int64(1), resp.EnrollmentID)
	assert.Equal(t, "B", resp.Grade)
	assert.Equal(t, "2023-09-01", resp.EnrollmentDate)
}

func TestDeleteEnrollmentNotFound(t *testing.T) {
	svc := &stubEnrollmentService{
		remove: func(ctx context.Context, id int64) error {
			return apperrors.NewNotFoundError("Enrollment not found")
		},
	}
	router := newEnrollmentRouter(svc)

	req := httptest.NewRequest(http.MethodDelete, "/api/enrollments/1", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
}
