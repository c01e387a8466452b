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

type PackageRepository interface {
	Create(ctx context.Context, pkg *entity.Package) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Package, error)
	FindAll(ctx context.Context) ([]*entity.Package, error)
	Update(ctx context.Context, pkg *entity.Package) error
	Delete(ctx context.Context, id uuid.UUID) error
	Reorder(ctx context.Context, positions []reorder.Position) error
}

type packageRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewPackageRepository(db database.PgxIface, log *zap.Logger) PackageRepository {
	return &packageRepository{
		db:  db,
		log: log.With(zap.String("repository", "package")),
	}
}

const packageColumns = `id, name, description, starting_price, deliverables, is_popular, display_order, created_at, updated_at`

func scanPackage(row rowScanner) (*entity.Package, error) {
	var p entity.Package
	err := row.Scan(
		&p.ID,
		&p.Name,
		&p.Description,
		&p.StartingPrice,
		&p.Deliverables,
		&p.IsPopular,
		&p.DisplayOrder,
		&p.CreatedAt,
		&p.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	if p.Deliverables == nil {
		p.Deliverables = []string{}
	}
	return &p, nil
}

func (r *packageRepository) Create(ctx context.Context, pkg *entity.Package) error {
	query := `
		INSERT INTO packages (id, name, description, starting_price, deliverables, is_popular, display_order, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
	`

	deliverables := pkg.Deliverables
	if deliverables == nil {
		deliverables = []string{}
	}

	_, err := r.db.Exec(ctx, query,
		pkg.ID,
		pkg.Name,
		pkg.Description,
		pkg.StartingPrice,
		deliverables,
		pkg.IsPopular,
		pkg.DisplayOrder,
		pkg.CreatedAt,
		pkg.UpdatedAt,
	)

	if err != nil {
		r.log.Error("Failed to create package",
			zap.Error(err),
			zap.String("name", pkg.Name),
		)
		return fmt.Errorf("failed to create package: %w", err)
	}

	return nil
}

func (r *packageRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Package, error) {
	query := `SELECT ` + packageColumns + ` FROM packages WHERE id = $1`

	pkg, err := scanPackage(r.db.QueryRow(ctx, query, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find package by ID",
			zap.Error(err),
			zap.String("package_id", id.String()),
		)
		return nil, fmt.Errorf("failed to find package: %w", err)
	}

	return pkg, nil
}

func (r *packageRepository) FindAll(ctx context.Context) ([]*entity.Package, error) {
	query := `
		SELECT ` + packageColumns + `
		FROM packages
		ORDER BY display_order ASC, created_at ASC, id ASC
	`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		r.log.Error("Failed to find packages", zap.Error(err))
		return nil, fmt.Errorf("failed to find packages: %w", err)
	}
	defer rows.Close()

	packages := make([]*entity.Package, 0)
	for rows.Next() {
		pkg, err := scanPackage(rows)
		if err != nil {
			r.log.Error("Failed to scan package row", zap.Error(err))
			return nil, fmt.Errorf("failed to scan package: %w", err)
		}
		packages = append(packages, pkg)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate packages: %w", err)
	}

	return packages, nil
}

func (r *packageRepository) Update(ctx context.Context, pkg *entity.Package) error {
	query := `
		UPDATE packages
		SET name = $2, description = $3, starting_price = $4, deliverables = $5,
		    is_popular = $6, display_order = $7, updated_at = $8
		WHERE id = $1
	`

	result, err := r.db.Exec(ctx, query,
		pkg.ID,
		pkg.Name,
		pkg.Description,
		pkg.StartingPrice,
		pkg.Deliverables,
		pkg.IsPopular,
		pkg.DisplayOrder,
		pkg.UpdatedAt,
	)

	if err != nil {
		r.log.Error("Failed to update package",
			zap.Error(err),
			zap.String("package_id", pkg.ID.String()),
		)
		return fmt.Errorf("failed to update package: %w", err)
	}

	if result.RowsAffected() == 0 {
		return ErrNotFound
	}

	return nil
}

// Delete is idempotent, a missing id is not an error.
func (r *packageRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result, err := r.db.Exec(ctx, `DELETE FROM packages WHERE id = $1`, id)
	if err != nil {
		r.log.Error("Failed to delete package",
			zap.Error(err),
			zap.String("package_id", id.String()),
		)
		return fmt.Errorf("failed to delete package: %w", err)
	}

	r.log.Info("Package deleted",
		zap.String("package_id", id.String()),
		zap.Int64("rows", result.RowsAffected()),
	)
	return nil
}

func (r *packageRepository) Reorder(ctx context.Context, positions []reorder.Position) error {
	_, err := applyOrder(ctx, r.db, r.log, "packages", positions)
	return err
}
