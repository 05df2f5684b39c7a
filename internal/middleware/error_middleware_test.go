package middleware

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"campusregistry/internal/app/models/dto"
	"campusregistry/internal/pkg/apperrors"
)

func runHandler(t *testing.T, err error) *httptest.ResponseRecorder {
	t.Helper()
	gin.SetMode(gin.TestMode)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/api/students/1", nil)

	HandleAPIError(c, err)
	return w
}

func TestHandleAPIErrorStatusMapping(t *testing.T) {
	cases := []struct {
		name   string
		err    error
		status int
	}{
		{"validation", apperrors.NewValidationError("All fields are required."), http.StatusBadRequest},
		{"conflict", apperrors.NewConflictError("Student ID already exists."), http.StatusConflict},
		{"not found", apperrors.NewNotFoundError("Student not found"), http.StatusNotFound},
		{"internal", apperrors.NewInternalError(errors.New("boom"), "Failed to fetch student"), http.StatusInternalServerError},
		{"unknown", errors.New("boom"), http.StatusInternalServerError},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			w := runHandler(t, tc.err)
			assert.Equal(t, tc.status, w.Code)

			var resp dto.ErrorResponse
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
			assert.Equal(t, tc.err.Error(), resp.Error)
		})
	}
}

func TestHandleAPIErrorDetailVerbosity(t *testing.T) {
	err := apperrors.NewInternalError(errors.New("connection refused"), "Failed to fetch student")

	SetErrorVerbosity(false)
	w := runHandler(t, err)
	var resp dto.ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Empty(t, resp.Details)

	SetErrorVerbosity(true)
	t.Cleanup(func() { SetErrorVerbosity(false) })
	w = runHandler(t, err)
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "connection refused", resp.Details)
}
