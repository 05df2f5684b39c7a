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

type stubDepartmentService struct {
	getAll  func(ctx context.Context) ([]*models.Department, error)
	getByID func(ctx context.Context, id int64) (*models.Department, error)
	create  func(ctx context.Context, department *models.Department) error
	update  func(ctx context.Context, department *models.Department) error
	remove  func(ctx context.Context, id int64) error
}

func (s *stubDepartmentService) GetAllDepartments(ctx context.Context) ([]*models.Department, error) {
	return s.getAll(ctx)
}

func (s *stubDepartmentService) GetDepartmentByID(ctx context.Context, id int64) (*models.Department, error) {
	return s.getByID(ctx, id)
}

func (s *stubDepartmentService) CreateDepartment(ctx context.Context, department *models.Department) error {
	return s.create(ctx, department)
}

func (s *stubDepartmentService) UpdateDepartment(ctx context.Context, department *models.Department) error {
	return s.update(ctx, department)
}

func (s *stubDepartmentService) DeleteDepartment(ctx context.Context, id int64) error {
	return s.remove(ctx, id)
}

func newDepartmentRouter(svc services.DepartmentService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	c := controllers.NewDepartmentController(svc)
	router.GET("/api/departments", c.GetAllDepartments)
	router.GET("/api/departments/:id", c.GetDepartmentByID)
	router.POST("/api/departments", c.CreateDepartment)
	router.PUT("/api/departments/:id", c.UpdateDepartment)
	router.DELETE("/api/departments/:id", c.DeleteDepartment)
	return router
}

func TestCreateDepartmentEchoesRecord(t *testing.T) {
	svc := &stubDepartmentService{
		create: func(ctx context.Context, department *models.Department) error {
			department.DepartmentID = 3
			return nil
		},
	}
	router := newDepartmentRouter(svc)

	body := []byte(`{"department_name": "Computer Engineering", "head_of_department": "Dr. Smith"}`)
	req := httptest.NewRequest(http.MethodPost, "/api/departments", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusCreated, w.Code)

	var resp models.Department
	require.NoError(t, json.NewDecoder(w.Body).Decode(&resp))
	assert.Equal(t, int64(3), resp.DepartmentID)
	assert.Equal(t, "Computer Engineering", resp.DepartmentName)
	assert.Equal(t, "Dr. Smith", resp.HeadOfDepartment)
}

func TestGetDepartmentByID(t *testing.T) {
	svc := &stubDepartmentService{
		getByID: func(ctx context.Context, id int64) (*models.Department, error) {
			return &models.Department{
				DepartmentID:     id,
				DepartmentName:   "Computer Engineering",
				HeadOfDepartment: "Dr. Smith",
			}, nil
		},
	}
	router := newDepartmentRouter(svc)

	req := httptest.NewRequest(http.MethodGet, "/api/departments/3", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp models.Department
	require.NoError(t, json.NewDecoder(w.Body).Decode(&resp))
	assert.Equal(t, int64(3), resp.DepartmentID)
	assert.Equal(t, "Computer Engineering", resp.DepartmentName)
}

func TestDeleteDepartmentStillReferenced(t *testing.T) {
	svc := &stubDepartmentService{
		remove: func(ctx context.Context, id int64) error {
			return apperrors.NewConflictError("Department is referenced by students, courses, or instructors")
		},
	}
	router := newDepartmentRouter(svc)

	req := httptest.NewRequest(http.MethodDelete, "/api/departments/3", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusConflict, w.Code)

	var resp dto.ErrorResponse
	require.NoError(t, json.NewDecoder(w.Body).Decode(&resp))
	assert.Equal(t, "Department is referenced by students, courses, or instructors", resp.Error)
}

func TestDeleteDepartment(t *testing.T) {
	svc := &stubDepartmentService{
		remove: func(ctx context.Context, id int64) error {
			return nil
		},
	}
	router := newDepartmentRouter(svc)

	req := httptest.NewRequest(http.MethodDelete, "/api/departments/3", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp dto.MessageResponse
	require.NoError(t, json.NewDecoder(w.Body).Decode(&resp))
	assert.Equal(t, "Department deleted successfully", resp.Message)
}
