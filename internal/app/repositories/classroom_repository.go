package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"campusregistry/internal/app/models"
)

// ClassroomRepository handles database operations for classrooms
type ClassroomRepository struct {
	db *pgxpool.Pool
}

// NewClassroomRepository creates a new classroom repository
func NewClassroomRepository(db *pgxpool.Pool) *ClassroomRepository {
	return &ClassroomRepository{
		db: db,
	}
}

// GetAll retrieves all classrooms ordered by primary key
func (r *ClassroomRepository) GetAll(ctx context.Context) ([]*models.Classroom, error) {
	query := `
		SELECT classroom_id, building, room_number, capacity
		FROM classrooms
		ORDER BY classroom_id
	`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var classrooms []*models.Classroom
	for rows.Next() {
		var classroom models.Classroom
		if err := rows.Scan(
			&classroom.ClassroomID,
			&classroom.Building,
			&classroom.RoomNumber,
			&classroom.Capacity,
		); err != nil {
			return nil, err
		}
		classrooms = append(classrooms, &classroom)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return classrooms, nil
}

// GetByID retrieves a classroom by ID
func (r *ClassroomRepository) GetByID(ctx context.Context, id int64) (*models.Classroom, error) {
	query := `
		SELECT classroom_id, building, room_number, capacity
		FROM classrooms
		WHERE classroom_id = $1
	`

	var classroom models.Classroom
	err := r.db.QueryRow(ctx, query, id).Scan(
		&classroom.ClassroomID,
		&classroom.Building,
		&classroom.RoomNumber,
		&classroom.Capacity,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("error retrieving classroom: %w", err)
	}

	return &classroom, nil
}

// ExistsByID checks whether a classroom with the given ID exists
func (r *ClassroomRepository) ExistsByID(ctx context.Context, id int64) (bool, error) {
	var exists bool
	err := r.db.QueryRow(ctx,
		`SELECT EXISTS(SELECT 1 FROM classrooms WHERE classroom_id = $1)`, id).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("error checking classroom existence: %w", err)
	}
	return exists, nil
}

// Create inserts a new classroom with the caller-supplied key
func (r *ClassroomRepository) Create(ctx context.Context, classroom *models.Classroom) error {
	query := `
		INSERT INTO classrooms (classroom_id, building, room_number, capacity)
		VALUES ($1, $2, $3, $4)
	`

	_, err := r.db.Exec(ctx, query,
		classroom.ClassroomID,
		classroom.Building,
		classroom.RoomNumber,
		classroom.Capacity,
	)
	return err
}

// Update replaces all mutable fields of a classroom
func (r *ClassroomRepository) Update(ctx context.Context, classroom *models.Classroom) error {
	query := `
		UPDATE classrooms
		SET building = $1, room_number = $2, capacity = $3
		WHERE classroom_id = $4
	`

	cmdTag, err := r.db.Exec(ctx, query,
		classroom.Building,
		classroom.RoomNumber,
		classroom.Capacity,
		classroom.ClassroomID,
	)
	if err != nil {
		return err
	}

	if cmdTag.RowsAffected() == 0 {
		return ErrNotFound
	}

	return nil
}

// Delete removes a classroom by ID
func (r *ClassroomRepository) Delete(ctx context.Context, id int64) error {
	cmdTag, err := r.db.Exec(ctx, `DELETE FROM classrooms WHERE classroom_id = $1`, id)
	if err != nil {
		return fmt.Errorf("error deleting classroom: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return ErrNotFound
	}

	return nil
}
