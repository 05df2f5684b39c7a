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

type stubStudentService struct {
	getAll  func(ctx context.Context) ([]*models.Student, error)
	getByID func(ctx context.Context, id int64) (*models.Student, error)
	create  func(ctx context.Context, student *models.Student) error
	update  func(ctx context.Context, student *models.Student) error
	remove  func(ctx context.Context, id int64) error
}

func (s *stubStudentService) GetAllStudents(ctx context.Context) ([]*models.Student, error) {
	return s.getAll(ctx)
}

func (s *stubStudentService) GetStudentByID(ctx context.Context, id int64) (*models.Student, error) {
	return s.getByID(ctx, id)
}

func (s *stubStudentService) CreateStudent(ctx context.Context, student *models.Student) error {
	return s.create(ctx, student)
}

func (s *stubStudentService) UpdateStudent(ctx context.Context, student *models.Student) error {
	return s.update(ctx, student)
}

func (s *stubStudentService) DeleteStudent(ctx context.Context, id int64) error {
	return s.remove(ctx, id)
}

func newStudentRouter(svc services.StudentService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	c := controllers.NewStudentController(svc)
	router.GET("/api/students", c.GetAllStudents)
	router.GET("/api/students/:id", c.GetStudentByID)
	router.POST("/api/students", c.CreateStudent)
	router.PUT("/api/students/:id", c.UpdateStudent)
	router.DELETE("/api/students/:id", c.DeleteStudent)
	return router
}

func TestGetAllStudents(t *testing.T) {
	svc := &stubStudentService{
		getAll: func(ctx context.Context) ([]*models.Student, error) {
			return []*models.Student{
				{StudentID: 20230001, Name: "John Doe", Email: "john@example.com"},
				{StudentID: 20230002, Name: "Jane Doe", Email: "jane@example.com"},
			}, nil
		},
	}
	router := newStudentRouter(svc)

	req := httptest.NewRequest(http.MethodGet, "/api/students", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var students []models.Student
	require.NoError(t, json.NewDecoder(w.Body).Decode(&students))
	require.Len(t, students, 2)
	assert.Equal(t, int64(20230001), students[0].StudentID)
}

func TestGetStudentByIDInvalidID(t *testing.T) {
	router := newStudentRouter(&stubStudentService{})

	req := httptest.NewRequest(http.MethodGet, "/api/students/abc", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)

	var resp dto.ErrorResponse
	require.NoError(t, json.NewDecoder(w.Body).Decode(&resp))
	assert.Equal(t, "Invalid student ID", resp.Error)
}

func TestGetStudentByIDNotFound(t *testing.T) {
	svc := &stubStudentService{
		getByID: func(ctx context.Context, id int64) (*models.Student, error) {
			return nil, apperrors.NewNotFoundError("Student not found")
		},
	}
	router := newStudentRouter(svc)

	req := httptest.NewRequest(http.MethodGet, "/api/students/999", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)

	var resp dto.ErrorResponse
	require.NoError(t, json.NewDecoder(w.Body).Decode(&resp))
	assert.Equal(t, "Student not found", resp.Error)
}

func TestCreateStudent(t *testing.T) {
	svc := &stubStudentService{
		create: func(ctx context.Context, student *models.Student) error {
			return nil
		},
	}
	router := newStudentRouter(svc)

	payload := map[string]interface{}{
		"student_id":     20230001,
		"name":           "John Doe",
		"date_of_birth":  "2004-05-17",
		"email":          "john.doe@example.com",
		"phone_number":   "5551234567",
		"admission_year": 2023,
		"department_id":  1,
	}
	body, _ := json.Marshal(payload)

	req := httptest.NewRequest(http.MethodPost, "/api/students", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusCreated, w.Code)

	var resp dto.StudentCreatedResponse
	require.NoError(t, json.NewDecoder(w.Body).Decode(&resp))
	assert.Equal(t, "Student added successfully", resp.Message)
	assert.Equal(t, int64(20230001), resp.StudentID)
}

func TestCreateStudentValidationError(t *testing.T) {
	svc := &stubStudentService{
		create: func(ctx context.Context, student *models.Student) error {
			return apperrors.NewValidationError("All fields are required.")
		},
	}
	router := newStudentRouter(svc)

	req := httptest.NewRequest(http.MethodPost, "/api/students", bytes.NewReader([]byte(`{}`)))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)

	var resp dto.ErrorResponse
	require.NoError(t, json.NewDecoder(w.Body).Decode(&resp))
	assert.Equal(t, "All fields are required.", resp.Error)
}

func TestCreateStudentDuplicateID(t *testing.T) {
	svc := &stubStudentService{
		create: func(ctx context.Context, student *models.Student) error {
			return apperrors.NewConflictError("Student ID already exists.")
		},
	}
	router := newStudentRouter(svc)

	body := []byte(`{"student_id": 20230001, "name": "John Doe"}`)
	req := httptest.NewRequest(http.MethodPost, "/api/students", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusConflict, w.Code)

	var resp dto.ErrorResponse
	require.NoError(t, json.NewDecoder(w.Body).Decode(&resp))
	assert.Equal(t, "Student ID already exists.", resp.Error)
}

func TestUpdateStudentUsesPathID(t *testing.T) {
	var got *models.Student
	svc := &stubStudentService{
		update: func(ctx context.Context, student *models.Student) error {
			got = student
			return nil
		},
	}
	router := newStudentRouter(svc)

	// The body carries a different key; the path parameter must win
	body := []byte(`{"student_id": 999, "name": "John Doe"}`)
	req := httptest.NewRequest(http.MethodPut, "/api/students/20230001", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	require.NotNil(t, got)
	assert.Equal(t, int64(20230001), got.StudentID)

	var resp dto.MessageResponse
	require.NoError(t, json.NewDecoder(w.Body).Decode(&resp))
	assert.Equal(t, "Student updated successfully", resp.Message)
}

func TestDeleteStudentNotFound(t *testing.T) {
	svc := &stubStudentService{
		remove: func(ctx context.Context, id int64) error {
			return apperrors.NewNotFoundError("Student not found")
		},
	}
	router := newStudentRouter(svc)

	req := httptest.NewRequest(http.MethodDelete, "/api/students/20230001", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestDeleteStudent(t *testing.T) {
	svc := &stubStudentService{
		remove: func(ctx context.Context, id int64) error {
			return nil
		},
	}
	router := newStudentRouter(svc)

	req := httptest.NewRequest(http.MethodDelete, "/api/students/20230001", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp dto.MessageResponse
	require.NoError(t, json.NewDecoder(w.Body).Decode(&resp))
	assert.Equal(t, "Student deleted successfully", resp.Message)
}
