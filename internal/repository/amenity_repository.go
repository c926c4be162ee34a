package repository

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/spec-kit/estate-cms/internal/domain"
)

// AmenityRepository encapsulates amenity persistence.
type AmenityRepository interface {
	Create(ctx context.Context, amenity *domain.Amenity) error
	Update(ctx context.Context, amenity *domain.Amenity) error
	Delete(ctx context.Context, id string) error
	GetByID(ctx context.Context, id string) (*domain.Amenity, error)
	GetByName(ctx context.Context, name string) (*domain.Amenity, error)
	List(ctx context.Context) ([]domain.Amenity, error)
}

type amenityRepository struct {
	pool *pgxpool.Pool
}

// NewAmenityRepository returns a Postgres-backed implementation.
func NewAmenityRepository(pool *pgxpool.Pool) AmenityRepository {
	return &amenityRepository{pool: pool}
}

func (r *amenityRepository) Create(ctx context.Context, amenity *domain.Amenity) error {
	const query = `
        INSERT INTO amenities (name, icon, category)
        VALUES ($1,$2,$3)
        RETURNING id, created_at, updated_at`
	return r.pool.QueryRow(ctx, query,
		amenity.Name,
		amenity.Icon,
		amenity.Category,
	).Scan(&amenity.ID, &amenity.CreatedAt, &amenity.UpdatedAt)
}

func (r *amenityRepository) Update(ctx context.Context, amenity *domain.Amenity) error {
	const query = `
        UPDATE amenities SET name=$1, icon=$2, category=$3, updated_at=NOW()
        WHERE id=$4`
	cmd, err := r.pool.Exec(ctx, query,
		amenity.Name,
		amenity.Icon,
		amenity.Category,
		amenity.ID,
	)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (r *amenityRepository) Delete(ctx context.Context, id string) error {
	cmd, err := r.pool.Exec(ctx, `DELETE FROM amenities WHERE id=$1`, id)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (r *amenityRepository) GetByID(ctx context.Context, id string) (*domain.Amenity, error) {
	const query = `
        SELECT id, name, icon, category, created_at, updated_at
        FROM amenities WHERE id=$1`
	return r.fetchSingle(ctx, query, id)
}

func (r *amenityRepository) GetByName(ctx context.Context, name string) (*domain.Amenity, error) {
	const query = `
        SELECT id, name, icon, category, created_at, updated_at
        FROM amenities WHERE name=$1`
	return r.fetchSingle(ctx, query, name)
}

func (r *amenityRepository) fetchSingle(ctx context.Context, query string, arg any) (*domain.Amenity, error) {
	var amenity domain.Amenity
	if err := r.pool.QueryRow(ctx, query, arg).Scan(
		&amenity.ID,
		&amenity.Name,
		&amenity.Icon,
		&amenity.Category,
		&amenity.CreatedAt,
		&amenity.UpdatedAt,
	); err != nil {
		return nil, err
	}
	return &amenity, nil
}

func (r *amenityRepository) List(ctx context.Context) ([]domain.Amenity, error) {
	const query = `
        SELECT id, name, icon, category, created_at, updated_at
        FROM amenities ORDER BY name ASC`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	amenities := []domain.Amenity{}
	for rows.Next() {
		var amenity domain.Amenity
		if err := rows.Scan(
			&amenity.ID,
			&amenity.Name,
			&amenity.Icon,
			&amenity.Category,
			&amenity.CreatedAt,
			&amenity.UpdatedAt,
		); err != nil {
			return nil, err
		}
		amenities = append(amenities, amenity)
	}
	return amenities, rows.Err()
}
