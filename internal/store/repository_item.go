// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-task-keeper/internal/logger"
	"github.com/MKhiriev/go-task-keeper/models"
)

// itemRepository is the SQL implementation of [ItemRepository]. Every
// statement carries owner_id in its WHERE clause or VALUES list, so a user
// can never read or touch another user's rows.
type itemRepository struct {
	*DB
	logger *logger.Logger
}

// NewItemRepository constructs an [ItemRepository] backed by db.
func NewItemRepository(db *DB, logger *logger.Logger) ItemRepository {
	logger.Debug().Msg("creating item repository")
	return &itemRepository{
		DB:     db,
		logger: logger,
	}
}

// rowScanner is satisfied by *sql.Row and *sql.Rows.
type rowScanner interface {
	Scan(dest ...any) error
}

func scanItem(row rowScanner) (models.Item, error) {
	var item models.Item
	err := row.Scan(
		&item.ID,
		&item.OwnerID,
		&item.Name,
		&item.Description,
		&item.Category,
		&item.Priority,
		&item.Done,
		&item.CreatedAt,
		&item.UpdatedAt,
	)
	return item, err
}

// List returns the owner's items matching filter. No match yields an empty,
// non-nil slice.
func (r *itemRepository) List(ctx context.Context, filter models.ItemFilter) ([]models.Item, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildListItemsQuery(r.builder, filter)
	if err != nil {
		log.Err(err).
			Str("func", "itemRepository.List").
			Str("owner_id", filter.OwnerID).
			Msg("failed to create query")
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var rows *sql.Rows
	err = r.withRetry(ctx, "itemRepository.List", func(ctx context.Context) error {
		var queryErr error
		rows, queryErr = r.QueryContext(ctx, query, args...)
		return queryErr
	})
	if err != nil {
		r.logQueryError(ctx, err, "itemRepository.List", "failed to execute query for listing items")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	items := make([]models.Item, 0, 50)

	for rows.Next() {
		item, scanErr := scanItem(rows)
		if scanErr != nil {
			log.Err(scanErr).
				Str("func", "itemRepository.List").
				Str("owner_id", filter.OwnerID).
				Msg("failed to scan item row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, scanErr)
		}

		items = append(items, item)
	}

	if rowsErr := rows.Err(); rowsErr != nil {
		log.Err(rowsErr).
			Str("func", "itemRepository.List").
			Str("owner_id", filter.OwnerID).
			Msg("error occurred during rows iteration")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, rowsErr)
	}

	return items, nil
}

// Create inserts item and returns the stored row.
func (r *itemRepository) Create(ctx context.Context, item models.Item) (models.Item, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildInsertItemQuery(r.builder, item)
	if err != nil {
		log.Err(err).Str("func", "itemRepository.Create").Msg("failed to create query")
		return models.Item{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	created, err := scanItem(r.QueryRowContext(ctx, query, args...))
	if err != nil {
		r.logQueryError(ctx, err, "itemRepository.Create", "failed to insert item")
		return models.Item{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return created, nil
}

// Update applies the non-nil fields of update to the owner's item and
// returns the new row. Returns [ErrItemNotFound] when no row matches id and
// owner.
func (r *itemRepository) Update(ctx context.Context, update models.ItemUpdate) (models.Item, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildUpdateItemQuery(r.builder, update)
	if err != nil {
		log.Err(err).Str("func", "itemRepository.Update").Msg("failed to create query")
		return models.Item{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	updated, err := scanItem(r.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		log.Debug().
			Str("func", "itemRepository.Update").
			Str("item_id", update.ID).
			Str("owner_id", update.OwnerID).
			Msg("item not found")
		return models.Item{}, ErrItemNotFound
	}
	if err != nil {
		r.logQueryError(ctx, err, "itemRepository.Update", "failed to update item")
		return models.Item{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return updated, nil
}

// Delete removes the owner's item. Deleting a missing item is not an error.
func (r *itemRepository) Delete(ctx context.Context, ownerID, itemID string) error {
	log := logger.FromContext(ctx)

	query, args, err := buildDeleteItemQuery(r.builder, ownerID, itemID)
	if err != nil {
		log.Err(err).Str("func", "itemRepository.Delete").Msg("failed to create query")
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	result, err := r.ExecContext(ctx, query, args...)
	if err != nil {
		r.logQueryError(ctx, err, "itemRepository.Delete", "failed to delete item")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	if affected, _ := result.RowsAffected(); affected == 0 {
		log.Debug().
			Str("func", "itemRepository.Delete").
			Str("item_id", itemID).
			Msg("nothing to delete")
	}

	return nil
}
