package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
	"github.com/shenikar/emergency_dispatch_system/internal/models"
	"github.com/shenikar/emergency_dispatch_system/internal/service"
)

const hospitalCacheTTL = 5 * time.Minute

const hospitalColumns = `
	id,
	name,
	address,
	contact,
	ST_X(location::geometry) as longitude,
	ST_Y(location::geometry) as latitude,
	total_beds,
	available_beds,
	er_wait_minutes,
	er_capacity_percent,
	ambulances_en_route,
	owner_id,
	created_at,
	updated_at
`

type HospitalRepository struct {
	db          *pgxpool.Pool
	redisClient *redis.Client
}

// NewHospitalRepository создает репозиторий больниц. redisClient может быть nil, тогда кэш не используется.
func NewHospitalRepository(db *pgxpool.Pool, redisClient *redis.Client) service.HospitalRepository {
	return &HospitalRepository{
		db:          db,
		redisClient: redisClient,
	}
}

// Create создает новую запись о больнице в бд
func (r *HospitalRepository) Create(ctx context.Context, h *models.Hospital) error {
	query := `
		INSERT INTO hospitals (
			name, address, contact, location, total_beds, available_beds,
			er_wait_minutes, er_capacity_percent, ambulances_en_route, owner_id
		)
		VALUES ($1, $2, $3, ST_SetSRID(ST_MakePoint($4, $5), 4326), $6, $7, $8, $9, $10, $11)
		RETURNING id, created_at, updated_at;
	`
	err := r.db.QueryRow(ctx, query,
		h.Name,
		h.Address,
		h.Contact,
		h.Location.Longitude,
		h.Location.Latitude,
		h.TotalBeds,
		h.AvailableBeds,
		h.ERWaitMinutes,
		h.ERCapacityPercent,
		h.AmbulancesEnRoute,
		h.OwnerID,
	).Scan(&h.ID, &h.CreatedAt, &h.UpdatedAt)
	if err != nil {
		return fmt.Errorf("failed to create hospital: %w", err)
	}
	return nil
}

// GetByID возвращает больницу по UUID, сначала пробуя кэш
func (r *HospitalRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.Hospital, error) {
	if cached, err := r.getFromCache(ctx, id); err == nil && cached != nil {
		return cached, nil
	}

	query := `SELECT ` + hospitalColumns + ` FROM hospitals WHERE id = $1;`
	h, err := scanHospital(r.db.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("hospital with id %s: %w", id, models.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get hospital by id: %w", err)
	}

	// Ошибка кэша не ломает чтение
	_ = r.setCache(ctx, h)
	return h, nil
}

func (r *HospitalRepository) Update(ctx context.Context, h *models.Hospital) error {
	query := `
		UPDATE hospitals SET
			name = $1,
			address = $2,
			contact = $3,
			location = ST_SetSRID(ST_MakePoint($4, $5), 4326),
			total_beds = $6,
			available_beds = $7,
			er_wait_minutes = $8,
			er_capacity_percent = $9,
			ambulances_en_route = $10,
			updated_at = NOW()
		WHERE id = $11
		RETURNING updated_at;
	`
	err := r.db.QueryRow(ctx, query,
		h.Name,
		h.Address,
		h.Contact,
		h.Location.Longitude,
		h.Location.Latitude,
		h.TotalBeds,
		h.AvailableBeds,
		h.ERWaitMinutes,
		h.ERCapacityPercent,
		h.AmbulancesEnRoute,
		h.ID,
	).Scan(&h.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return fmt.Errorf("hospital with id %s not found for update: %w", h.ID, models.ErrNotFound)
		}
		return fmt.Errorf("failed to update hospital: %w", err)
	}
	_ = r.invalidateCache(ctx, h.ID)
	return nil
}

// Delete удаляет больницу; назначения скорых сбрасываются внешним ключом
func (r *HospitalRepository) Delete(ctx context.Context, id uuid.UUID) error {
	cmdTag, err := r.db.Exec(ctx, `DELETE FROM hospitals WHERE id = $1;`, id)
	if err != nil {
		return fmt.Errorf("failed to delete hospital: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return fmt.Errorf("hospital with id %s not found for delete: %w", id, models.ErrNotFound)
	}
	_ = r.invalidateCache(ctx, id)
	return nil
}

// List возвращает список больниц с пагинацией
func (r *HospitalRepository) List(ctx context.Context, page, pageSize int) ([]*models.Hospital, error) {
	offset := (page - 1) * pageSize
	query := `SELECT ` + hospitalColumns + ` FROM hospitals ORDER BY created_at DESC LIMIT $1 OFFSET $2;`
	rows, err := r.db.Query(ctx, query, pageSize, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to list hospitals: %w", err)
	}
	return collectHospitals(rows)
}

// ListAll возвращает все больницы для прогрева индекса
func (r *HospitalRepository) ListAll(ctx context.Context) ([]*models.Hospital, error) {
	query := `SELECT ` + hospitalColumns + ` FROM hospitals ORDER BY id;`
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list all hospitals: %w", err)
	}
	return collectHospitals(rows)
}

func collectHospitals(rows pgx.Rows) ([]*models.Hospital, error) {
	defer rows.Close()

	hospitals := make([]*models.Hospital, 0)
	for rows.Next() {
		h, err := scanHospital(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan hospital row: %w", err)
		}
		hospitals = append(hospitals, h)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error list iteration: %w", err)
	}
	return hospitals, nil
}

func scanHospital(row pgx.Row) (*models.Hospital, error) {
	h := &models.Hospital{}
	err := row.Scan(
		&h.ID,
		&h.Name,
		&h.Address,
		&h.Contact,
		&h.Location.Longitude,
		&h.Location.Latitude,
		&h.TotalBeds,
		&h.AvailableBeds,
		&h.ERWaitMinutes,
		&h.ERCapacityPercent,
		&h.AmbulancesEnRoute,
		&h.OwnerID,
		&h.CreatedAt,
		&h.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return h, nil
}

func hospitalCacheKey(id uuid.UUID) string {
	return fmt.Sprintf("hospital:%s", id.String())
}

// getFromCache возвращает nil, nil при промахе
func (r *HospitalRepository) getFromCache(ctx context.Context, id uuid.UUID) (*models.Hospital, error) {
	if r.redisClient == nil {
		return nil, nil
	}
	val, err := r.redisClient.Get(ctx, hospitalCacheKey(id)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get hospital from cache: %w", err)
	}

	h := &models.Hospital{}
	if err := json.Unmarshal(val, h); err != nil {
		return nil, fmt.Errorf("failed to unmarshal hospital from cache: %w", err)
	}
	return h, nil
}

func (r *HospitalRepository) setCache(ctx context.Context, h *models.Hospital) error {
	if r.redisClient == nil {
		return nil
	}
	val, err := json.Marshal(h)
	if err != nil {
		return fmt.Errorf("failed to marshal hospital for cache: %w", err)
	}
	if err := r.redisClient.Set(ctx, hospitalCacheKey(h.ID), val, hospitalCacheTTL).Err(); err != nil {
		return fmt.Errorf("failed to set hospital in cache: %w", err)
	}
	return nil
}

func (r *HospitalRepository) invalidateCache(ctx context.Context, id uuid.UUID) error {
	if r.redisClient == nil {
		return nil
	}
	if err := r.redisClient.Del(ctx, hospitalCacheKey(id)).Err(); err != nil {
		return fmt.Errorf("failed to invalidate hospital cache: %w", err)
	}
	return nil
}
