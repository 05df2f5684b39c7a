package services

import (
	"context"
	"errors"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"campusregistry/internal/app/repositories"
	"campusregistry/internal/pkg/apperrors"
)

func TestDeleteDepartmentInUse(t *testing.T) {
	store := &fakeDepartmentStore{deleteErr: repositories.ErrDepartmentInUse}
	svc := &departmentService{departmentRepo: store}

	err := svc.DeleteDepartment(context.Background(), 1)
	require.Error(t, err)
	assert.True(t, errors.Is(err, apperrors.ErrConflict))
	assert.Equal(t, "Department is referenced by students, courses, or instructors", err.Error())
}

func TestDeleteDepartmentForeignKeyRace(t *testing.T) {
	// A dependent inserted after the pre-check passes makes the delete
	// fail with a foreign key violation. That still reports as a
	// conflict, not a validation error.
	store := &fakeDepartmentStore{deleteErr: &pgconn.PgError{Code: "23503"}}
	svc := &departmentService{departmentRepo: store}

	err := svc.DeleteDepartment(context.Background(), 1)
	require.Error(t, err)
	assert.True(t, errors.Is(err, apperrors.ErrConflict))
	assert.Equal(t, "Department is referenced by students, courses, or instructors", err.Error())
}

func TestDeleteDepartmentNotFound(t *testing.T) {
	store := &fakeDepartmentStore{deleteErr: repositories.ErrNotFound}
	svc := &departmentService{departmentRepo: store}

	err := svc.DeleteDepartment(context.Background(), 42)
	require.Error(t, err)
	assert.True(t, errors.Is(err, apperrors.ErrNotFound))
	assert.Equal(t, "Department not found", err.Error())
	assert.Equal(t, []int64{42}, store.deleted)
}
