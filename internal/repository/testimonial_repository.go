package repository

import (
	"context"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/spec-kit/estate-cms/internal/domain"
)

// TestimonialFilter captures listing parameters.
type TestimonialFilter struct {
	Approved  *bool
	ProjectID *string
	Limit     int
	Offset    int
}

// TestimonialRepository encapsulates testimonial persistence.
type TestimonialRepository interface {
	Create(ctx context.Context, t *domain.Testimonial) error
	Update(ctx context.Context, t *domain.Testimonial) error
	Delete(ctx context.Context, id string) error
	GetByID(ctx context.Context, id string) (*domain.Testimonial, error)
	List(ctx context.Context, filter TestimonialFilter) ([]domain.Testimonial, int, error)
}

type testimonialRepository struct {
	pool *pgxpool.Pool
}

// NewTestimonialRepository returns a Postgres-backed implementation.
func NewTestimonialRepository(pool *pgxpool.Pool) TestimonialRepository {
	return &testimonialRepository{pool: pool}
}

const testimonialSelect = `
        SELECT id, author_name, author_title, quote, rating, project_id, is_approved, created_at, updated_at
        FROM testimonials`

func (r *testimonialRepository) Create(ctx context.Context, t *domain.Testimonial) error {
	const query = `
        INSERT INTO testimonials (author_name, author_title, quote, rating, project_id, is_approved)
        VALUES ($1,$2,$3,$4,$5,$6)
        RETURNING id, created_at, updated_at`
	return r.pool.QueryRow(ctx, query,
		t.AuthorName,
		t.AuthorTitle,
		t.Quote,
		t.Rating,
		t.ProjectID,
		t.IsApproved,
	).Scan(&t.ID, &t.CreatedAt, &t.UpdatedAt)
}

func (r *testimonialRepository) Update(ctx context.Context, t *domain.Testimonial) error {
	const query = `
        UPDATE testimonials SET author_name=$1, author_title=$2, quote=$3, rating=$4, is_approved=$5, updated_at=NOW()
        WHERE id=$6`
	cmd, err := r.pool.Exec(ctx, query,
		t.AuthorName,
		t.AuthorTitle,
		t.Quote,
		t.Rating,
		t.IsApproved,
		t.ID,
	)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (r *testimonialRepository) Delete(ctx context.Context, id string) error {
	cmd, err := r.pool.Exec(ctx, `DELETE FROM testimonials WHERE id=$1`, id)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (r *testimonialRepository) GetByID(ctx context.Context, id string) (*domain.Testimonial, error) {
	var t domain.Testimonial
	if err := r.pool.QueryRow(ctx, testimonialSelect+` WHERE id=$1`, id).Scan(
		&t.ID,
		&t.AuthorName,
		&t.AuthorTitle,
		&t.Quote,
		&t.Rating,
		&t.ProjectID,
		&t.IsApproved,
		&t.CreatedAt,
		&t.UpdatedAt,
	); err != nil {
		return nil, err
	}
	return &t, nil
}

func (r *testimonialRepository) List(ctx context.Context, filter TestimonialFilter) ([]domain.Testimonial, int, error) {
	clauses := []string{"1=1"}
	args := []any{}

	if filter.Approved != nil {
		args = append(args, *filter.Approved)
		clauses = append(clauses, fmt.Sprintf("is_approved=$%d", len(args)))
	}
	if filter.ProjectID != nil {
		args = append(args, *filter.ProjectID)
		clauses = append(clauses, fmt.Sprintf("project_id=$%d", len(args)))
	}

	where := strings.Join(clauses, " AND ")

	var total int
	if err := r.pool.QueryRow(ctx, fmt.Sprintf(`SELECT COUNT(*) FROM testimonials WHERE %s`, where), args...).Scan(&total); err != nil {
		return nil, 0, err
	}

	limit := filter.Limit
	if limit <= 0 {
		limit = 10
	}
	offset := filter.Offset
	if offset < 0 {
		offset = 0
	}

	query := fmt.Sprintf(`%s WHERE %s ORDER BY created_at DESC LIMIT %d OFFSET %d`,
		testimonialSelect, where, limit, offset)

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	testimonials := []domain.Testimonial{}
	for rows.Next() {
		var t domain.Testimonial
		if err := rows.Scan(
			&t.ID,
			&t.AuthorName,
			&t.AuthorTitle,
			&t.Quote,
			&t.Rating,
			&t.ProjectID,
			&t.IsApproved,
			&t.CreatedAt,
			&t.UpdatedAt,
		); err != nil {
			return nil, 0, err
		}
		testimonials = append(testimonials, t)
	}
	return testimonials, total, rows.Err()
}
