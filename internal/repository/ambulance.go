package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shenikar/emergency_dispatch_system/internal/models"
	"github.com/shenikar/emergency_dispatch_system/internal/service"
)

const ambulanceColumns = `
	id,
	vehicle_number,
	status,
	ST_X(location::geometry) as longitude,
	ST_Y(location::geometry) as latitude,
	assigned_hospital_id,
	owner_id,
	created_at,
	updated_at
`

type AmbulanceRepository struct {
	db *pgxpool.Pool
}

func NewAmbulanceRepository(db *pgxpool.Pool) service.AmbulanceRepository {
	return &AmbulanceRepository{db: db}
}

// Create создает новую запись о скорой в бд
func (r *AmbulanceRepository) Create(ctx context.Context, a *models.Ambulance) error {
	query := `
		INSERT INTO ambulances (vehicle_number, status, location, assigned_hospital_id, owner_id)
		VALUES ($1, $2, ST_SetSRID(ST_MakePoint($3, $4), 4326), $5, $6)
		RETURNING id, created_at, updated_at;
	`
	err := r.db.QueryRow(ctx, query,
		a.VehicleNumber,
		a.Status,
		a.Location.Longitude,
		a.Location.Latitude,
		a.AssignedHospitalID,
		a.OwnerID,
	).Scan(&a.ID, &a.CreatedAt, &a.UpdatedAt)
	if err != nil {
		return fmt.Errorf("failed to create ambulance: %w", err)
	}
	return nil
}

func (r *AmbulanceRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.Ambulance, error) {
	query := `SELECT ` + ambulanceColumns + ` FROM ambulances WHERE id = $1;`
	a, err := scanAmbulance(r.db.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("ambulance with id %s: %w", id, models.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get ambulance by id: %w", err)
	}
	return a, nil
}

// UpdateLocation сохраняет последнюю известную позицию скорой
func (r *AmbulanceRepository) UpdateLocation(ctx context.Context, id uuid.UUID, location models.Point) error {
	query := `
		UPDATE ambulances SET
			location = ST_SetSRID(ST_MakePoint($1, $2), 4326),
			updated_at = NOW()
		WHERE id = $3;
	`
	cmdTag, err := r.db.Exec(ctx, query, location.Longitude, location.Latitude, id)
	if err != nil {
		return fmt.Errorf("failed to update ambulance location: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return fmt.Errorf("ambulance with id %s not found for location update: %w", id, models.ErrNotFound)
	}
	return nil
}

func (r *AmbulanceRepository) UpdateStatus(ctx context.Context, id uuid.UUID, status models.AmbulanceStatus, assignedHospitalID *uuid.UUID) error {
	query := `
		UPDATE ambulances SET
			status = $1,
			assigned_hospital_id = $2,
			updated_at = NOW()
		WHERE id = $3;
	`
	cmdTag, err := r.db.Exec(ctx, query, status, assignedHospitalID, id)
	if err != nil {
		return fmt.Errorf("failed to update ambulance status: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return fmt.Errorf("ambulance with id %s not found for status update: %w", id, models.ErrNotFound)
	}
	return nil
}

func (r *AmbulanceRepository) Delete(ctx context.Context, id uuid.UUID) error {
	cmdTag, err := r.db.Exec(ctx, `DELETE FROM ambulances WHERE id = $1;`, id)
	if err != nil {
		return fmt.Errorf("failed to delete ambulance: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return fmt.Errorf("ambulance with id %s not found for delete: %w", id, models.ErrNotFound)
	}
	return nil
}

// List возвращает список скорых с пагинацией
func (r *AmbulanceRepository) List(ctx context.Context, page, pageSize int) ([]*models.Ambulance, error) {
	offset := (page - 1) * pageSize
	query := `SELECT ` + ambulanceColumns + ` FROM ambulances ORDER BY created_at DESC LIMIT $1 OFFSET $2;`
	rows, err := r.db.Query(ctx, query, pageSize, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to list ambulances: %w", err)
	}
	return collectAmbulances(rows)
}

func (r *AmbulanceRepository) ListAll(ctx context.Context) ([]*models.Ambulance, error) {
	query := `SELECT ` + ambulanceColumns + ` FROM ambulances ORDER BY id;`
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list all ambulances: %w", err)
	}
	return collectAmbulances(rows)
}

func collectAmbulances(rows pgx.Rows) ([]*models.Ambulance, error) {
	defer rows.Close()

	ambulances := make([]*models.Ambulance, 0)
	for rows.Next() {
		a, err := scanAmbulance(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan ambulance row: %w", err)
		}
		ambulances = append(ambulances, a)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error list iteration: %w", err)
	}
	return ambulances, nil
}

func scanAmbulance(row pgx.Row) (*models.Ambulance, error) {
	a := &models.Ambulance{}
	err := row.Scan(
		&a.ID,
		&a.VehicleNumber,
		&a.Status,
		&a.Location.Longitude,
		&a.Location.Latitude,
		&a.AssignedHospitalID,
		&a.OwnerID,
		&a.CreatedAt,
		&a.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return a, nil
}
