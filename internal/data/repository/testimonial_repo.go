package repository

import (
	"context"
	"errors"
	"fmt"

	"studio-site/internal/data/entity"
	"studio-site/pkg/database"
	"studio-site/pkg/reorder"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

type TestimonialRepository interface {
	Create(ctx context.Context, t *entity.Testimonial) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Testimonial, error)
	FindAll(ctx context.Context, activeOnly bool) ([]*entity.Testimonial, error)
	Update(ctx context.Context, t *entity.Testimonial) error
	Delete(ctx context.Context, id uuid.UUID) error
	Reorder(ctx context.Context, positions []reorder.Position) error
}

type testimonialRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewTestimonialRepository(db database.PgxIface, log *zap.Logger) TestimonialRepository {
	return &testimonialRepository{
		db:  db,
		log: log.With(zap.String("repository", "testimonial")),
	}
}

const testimonialColumns = `id, name, role, message, image_url, is_active, display_order, created_at`

func scanTestimonial(row rowScanner) (*entity.Testimonial, error) {
	var t entity.Testimonial
	err := row.Scan(
		&t.ID,
		&t.Name,
		&t.Role,
		&t.Message,
		&t.ImageURL,
		&t.IsActive,
		&t.DisplayOrder,
		&t.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &t, nil
}

func (r *testimonialRepository) Create(ctx context.Context, t *entity.Testimonial) error {
	query := `
		INSERT INTO testimonials (id, name, role, message, image_url, is_active, display_order, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`

	_, err := r.db.Exec(ctx, query,
		t.ID,
		t.Name,
		t.Role,
		t.Message,
		t.ImageURL,
		t.IsActive,
		t.DisplayOrder,
		t.CreatedAt,
	)

	if err != nil {
		r.log.Error("Failed to create testimonial",
			zap.Error(err),
			zap.String("name", t.Name),
		)
		return fmt.Errorf("failed to create testimonial: %w", err)
	}

	return nil
}

func (r *testimonialRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Testimonial, error) {
	query := `SELECT ` + testimonialColumns + ` FROM testimonials WHERE id = $1`

	t, err := scanTestimonial(r.db.QueryRow(ctx, query, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find testimonial by ID",
			zap.Error(err),
			zap.String("testimonial_id", id.String()),
		)
		return nil, fmt.Errorf("failed to find testimonial: %w", err)
	}

	return t, nil
}

func (r *testimonialRepository) FindAll(ctx context.Context, activeOnly bool) ([]*entity.Testimonial, error) {
	query := `SELECT ` + testimonialColumns + ` FROM testimonials`
	if activeOnly {
		query += ` WHERE is_active = TRUE`
	}
	query += ` ORDER BY display_order ASC, created_at ASC, id ASC`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		r.log.Error("Failed to find testimonials",
			zap.Error(err),
			zap.Bool("active_only", activeOnly),
		)
		return nil, fmt.Errorf("failed to find testimonials: %w", err)
	}
	defer rows.Close()

	testimonials := make([]*entity.Testimonial, 0)
	for rows.Next() {
		t, err := scanTestimonial(rows)
		if err != nil {
			r.log.Error("Failed to scan testimonial row", zap.Error(err))
			return nil, fmt.Errorf("failed to scan testimonial: %w", err)
		}
		testimonials = append(testimonials, t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate testimonials: %w", err)
	}

	return testimonials, nil
}

func (r *testimonialRepository) Update(ctx context.Context, t *entity.Testimonial) error {
	query := `
		UPDATE testimonials
		SET name = $2, role = $3, message = $4, image_url = $5, is_active = $6, display_order = $7
		WHERE id = $1
	`

	result, err := r.db.Exec(ctx, query,
		t.ID,
		t.Name,
		t.Role,
		t.Message,
		t.ImageURL,
		t.IsActive,
		t.DisplayOrder,
	)

	if err != nil {
		r.log.Error("Failed to update testimonial",
			zap.Error(err),
			zap.String("testimonial_id", t.ID.String()),
		)
		return fmt.Errorf("failed to update testimonial: %w", err)
	}

	if result.RowsAffected() == 0 {
		return ErrNotFound
	}

	return nil
}

func (r *testimonialRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result, err := r.db.Exec(ctx, `DELETE FROM testimonials WHERE id = $1`, id)
	if err != nil {
		r.log.Error("Failed to delete testimonial",
			zap.Error(err),
			zap.String("testimonial_id", id.String()),
		)
		return fmt.Errorf("failed to delete testimonial: %w", err)
	}

	r.log.Info("Testimonial deleted",
		zap.String("testimonial_id", id.String()),
		zap.Int64("rows", result.RowsAffected()),
	)
	return nil
}

func (r *testimonialRepository) Reorder(ctx context.Context, positions []reorder.Position) error {
	_, err := applyOrder(ctx, r.db, r.log, "testimonials", positions)
	return err
}
