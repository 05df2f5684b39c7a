package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"campusregistry/internal/app/models"
)

// AlumnusRepository handles database operations for alumni records
type AlumnusRepository struct {
	db *pgxpool.Pool
}

// NewAlumnusRepository creates a new alumnus repository
func NewAlumnusRepository(db *pgxpool.Pool) *AlumnusRepository {
	return &AlumnusRepository{
		db: db,
	}
}

// GetAll retrieves all alumni records ordered by primary key
func (r *AlumnusRepository) GetAll(ctx context.Context) ([]*models.Alumnus, error) {
	query := `
		SELECT alumni_id, student_id, graduation_year, current_job_title, company
		FROM alumni
		ORDER BY alumni_id
	`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var alumni []*models.Alumnus
	for rows.Next() {
		var alumnus models.Alumnus
		if err := rows.Scan(
			&alumnus.AlumniID,
			&alumnus.StudentID,
			&alumnus.GraduationYear,
			&alumnus.CurrentJobTitle,
			&alumnus.Company,
		); err != nil {
			return nil, err
		}
		alumni = append(alumni, &alumnus)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return alumni, nil
}

// GetByID retrieves an alumnus by ID
func (r *AlumnusRepository) GetByID(ctx context.Context, id int64) (*models.Alumnus, error) {
	query := `
		SELECT alumni_id, student_id, graduation_year, current_job_title, company
		FROM alumni
		WHERE alumni_id = $1
	`

	var alumnus models.Alumnus
	err := r.db.QueryRow(ctx, query, id).Scan(
		&alumnus.AlumniID,
		&alumnus.StudentID,
		&alumnus.GraduationYear,
		&alumnus.CurrentJobTitle,
		&alumnus.Company,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("error retrieving alumnus: %w", err)
	}

	return &alumnus, nil
}

// Create inserts a new alumnus record and fills in the generated key
func (r *AlumnusRepository) Create(ctx context.Context, alumnus *models.Alumnus) error {
	query := `
		INSERT INTO alumni (student_id, graduation_year, current_job_title, company)
		VALUES ($1, $2, $3, $4)
		RETURNING alumni_id
	`

	return r.db.QueryRow(ctx, query,
		alumnus.StudentID,
		alumnus.GraduationYear,
		alumnus.CurrentJobTitle,
		alumnus.Company,
	).Scan(&alumnus.AlumniID)
}

// Update replaces all mutable fields of an alumnus record
func (r *AlumnusRepository) Update(ctx context.Context, alumnus *models.Alumnus) error {
	query := `
		UPDATE alumni
		SET student_id = $1, graduation_year = $2, current_job_title = $3, company = $4
		WHERE alumni_id = $5
	`

	cmdTag, err := r.db.Exec(ctx, query,
		alumnus.StudentID,
		alumnus.GraduationYear,
		alumnus.CurrentJobTitle,
		alumnus.Company,
		alumnus.AlumniID,
	)
	if err != nil {
		return err
	}

	if cmdTag.RowsAffected() == 0 {
		return ErrNotFound
	}

	return nil
}

// Delete removes an alumnus record by ID
func (r *AlumnusRepository) Delete(ctx context.Context, id int64) error {
	cmdTag, err := r.db.Exec(ctx, `DELETE FROM alumni WHERE alumni_id = $1`, id)
	if err != nil {
		return fmt.Errorf("error deleting alumnus: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return ErrNotFound
	}

	return nil
}
