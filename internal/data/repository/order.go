package repository

import (
	"context"
	"fmt"

	"studio-site/pkg/database"
	"studio-site/pkg/reorder"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

// orderQueries holds the display_order update per table. Table names never come from input.
var orderQueries = map[string]string{
	"packages":        `UPDATE packages SET display_order = $2, updated_at = NOW() WHERE id = $1`,
	"portfolio_items": `UPDATE portfolio_items SET display_order = $2, updated_at = NOW() WHERE id = $1`,
	"testimonials":    `UPDATE testimonials SET display_order = $2 WHERE id = $1`,
}

// applyOrder rewrites display_order for every listed record in one transaction.
// Ids that no longer exist are skipped; the number of rows actually updated is returned.
func applyOrder(ctx context.Context, db database.PgxIface, log *zap.Logger, table string, positions []reorder.Position) (int64, error) {
	query, ok := orderQueries[table]
	if !ok {
		return 0, fmt.Errorf("reorder not supported for table %s", table)
	}
	if len(positions) == 0 {
		return 0, nil
	}

	batch := &pgx.Batch{}
	for _, p := range positions {
		id, err := uuid.Parse(p.ID)
		if err != nil {
			return 0, fmt.Errorf("invalid id %q: %w", p.ID, err)
		}
		batch.Queue(query, id, p.DisplayOrder)
	}

	tx, err := db.Begin(ctx)
	if err != nil {
		log.Error("Failed to begin reorder transaction", zap.Error(err), zap.String("table", table))
		return 0, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	br := tx.SendBatch(ctx, batch)
	var updated int64
	for range positions {
		tag, err := br.Exec()
		if err != nil {
			br.Close()
			log.Error("Failed to update display order",
				zap.Error(err),
				zap.String("table", table),
			)
			return 0, fmt.Errorf("failed to update display order: %w", err)
		}
		updated += tag.RowsAffected()
	}
	if err := br.Close(); err != nil {
		return 0, fmt.Errorf("failed to close batch: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		log.Error("Failed to commit reorder", zap.Error(err), zap.String("table", table))
		return 0, fmt.Errorf("failed to commit reorder: %w", err)
	}

	if updated != int64(len(positions)) {
		log.Warn("Reorder skipped missing records",
			zap.String("table", table),
			zap.Int("requested", len(positions)),
			zap.Int64("updated", updated),
		)
	}

	return updated, nil
}
