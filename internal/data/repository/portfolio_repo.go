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

type PortfolioRepository interface {
	Create(ctx context.Context, item *entity.PortfolioItem) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.PortfolioItem, error)
	// FindAll returns every item, or only those in categories when non-empty.
	FindAll(ctx context.Context, categories []entity.Category) ([]*entity.PortfolioItem, error)
	Update(ctx context.Context, item *entity.PortfolioItem) error
	Delete(ctx context.Context, id uuid.UUID) error
	Reorder(ctx context.Context, positions []reorder.Position) error
}

type portfolioRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewPortfolioRepository(db database.PgxIface, log *zap.Logger) PortfolioRepository {
	return &portfolioRepository{
		db:  db,
		log: log.With(zap.String("repository", "portfolio")),
	}
}

const portfolioColumns = `id, title, category, video_url, thumbnail_url, description, display_order, created_at, updated_at`

func scanPortfolioItem(row rowScanner) (*entity.PortfolioItem, error) {
	var item entity.PortfolioItem
	var category string
	err := row.Scan(
		&item.ID,
		&item.Title,
		&category,
		&item.VideoURL,
		&item.ThumbnailURL,
		&item.Description,
		&item.DisplayOrder,
		&item.CreatedAt,
		&item.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	item.Category = entity.Category(category)
	return &item, nil
}

func (r *portfolioRepository) Create(ctx context.Context, item *entity.PortfolioItem) error {
	query := `
		INSERT INTO portfolio_items (id, title, category, video_url, thumbnail_url, description, display_order, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
	`

	_, err := r.db.Exec(ctx, query,
		item.ID,
		item.Title,
		string(item.Category),
		item.VideoURL,
		item.ThumbnailURL,
		item.Description,
		item.DisplayOrder,
		item.CreatedAt,
		item.UpdatedAt,
	)

	if err != nil {
		r.log.Error("Failed to create portfolio item",
			zap.Error(err),
			zap.String("title", item.Title),
		)
		return fmt.Errorf("failed to create portfolio item: %w", err)
	}

	return nil
}

func (r *portfolioRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.PortfolioItem, error) {
	query := `SELECT ` + portfolioColumns + ` FROM portfolio_items WHERE id = $1`

	item, err := scanPortfolioItem(r.db.QueryRow(ctx, query, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find portfolio item by ID",
			zap.Error(err),
			zap.String("portfolio_id", id.String()),
		)
		return nil, fmt.Errorf("failed to find portfolio item: %w", err)
	}

	return item, nil
}

func (r *portfolioRepository) FindAll(ctx context.Context, categories []entity.Category) ([]*entity.PortfolioItem, error) {
	query := `SELECT ` + portfolioColumns + ` FROM portfolio_items`
	var args []any
	if len(categories) > 0 {
		names := make([]string, len(categories))
		for i, c := range categories {
			names[i] = string(c)
		}
		query += ` WHERE category = ANY($1)`
		args = append(args, names)
	}
	query += ` ORDER BY display_order ASC, created_at ASC, id ASC`

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		r.log.Error("Failed to find portfolio items", zap.Error(err))
		return nil, fmt.Errorf("failed to find portfolio items: %w", err)
	}
	defer rows.Close()

	items := make([]*entity.PortfolioItem, 0)
	for rows.Next() {
		item, err := scanPortfolioItem(rows)
		if err != nil {
			r.log.Error("Failed to scan portfolio row", zap.Error(err))
			return nil, fmt.Errorf("failed to scan portfolio item: %w", err)
		}
		items = append(items, item)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate portfolio items: %w", err)
	}

	return items, nil
}

func (r *portfolioRepository) Update(ctx context.Context, item *entity.PortfolioItem) error {
	query := `
		UPDATE portfolio_items
		SET title = $2, category = $3, video_url = $4, thumbnail_url = $5,
		    description = $6, display_order = $7, updated_at = $8
		WHERE id = $1
	`

	result, err := r.db.Exec(ctx, query,
		item.ID,
		item.Title,
		string(item.Category),
		item.VideoURL,
		item.ThumbnailURL,
		item.Description,
		item.DisplayOrder,
		item.UpdatedAt,
	)

	if err != nil {
		r.log.Error("Failed to update portfolio item",
			zap.Error(err),
			zap.String("portfolio_id", item.ID.String()),
		)
		return fmt.Errorf("failed to update portfolio item: %w", err)
	}

	if result.RowsAffected() == 0 {
		return ErrNotFound
	}

	return nil
}

func (r *portfolioRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result, err := r.db.Exec(ctx, `DELETE FROM portfolio_items WHERE id = $1`, id)
	if err != nil {
		r.log.Error("Failed to delete portfolio item",
			zap.Error(err),
			zap.String("portfolio_id", id.String()),
		)
		return fmt.Errorf("failed to delete portfolio item: %w", err)
	}

	r.log.Info("Portfolio item deleted",
		zap.String("portfolio_id", id.String()),
		zap.Int64("rows", result.RowsAffected()),
	)
	return nil
}

func (r *portfolioRepository) Reorder(ctx context.Context, positions []reorder.Position) error {
	_, err := applyOrder(ctx, r.db, r.log, "portfolio_items", positions)
	return err
}
