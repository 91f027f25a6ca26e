package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/dtroode/itemvault/internal/model"
)

var _ model.ItemStore = (*ItemRepository)(nil)

type ItemRepository struct {
	db *Connection
}

func NewItemRepository(db *Connection) *ItemRepository {
	return &ItemRepository{
		db: db,
	}
}

func (r *ItemRepository) Create(ctx context.Context, item model.Item) (model.Item, error) {
	query := `INSERT INTO items (id, owner_id, title, description, status, file_name, file_path)
			  VALUES ($1, $2, $3, $4, $5, $6, $7)
			  RETURNING id, owner_id, title, description, status, file_name, file_path, created_at`

	var saved model.Item
	err := r.db.QueryRow(ctx, query,
		item.ID, item.OwnerID, item.Title, item.Description, item.Status,
		item.Attachment.FileName, item.Attachment.FilePath,
	).Scan(
		&saved.ID, &saved.OwnerID, &saved.Title, &saved.Description, &saved.Status,
		&saved.Attachment.FileName, &saved.Attachment.FilePath, &saved.CreatedAt,
	)
	if err != nil {
		return model.Item{}, fmt.Errorf("failed to create item: %w", err)
	}

	return saved, nil
}

func (r *ItemRepository) GetByID(ctx context.Context, id uuid.UUID) (model.Item, error) {
	query := `SELECT id, owner_id, title, description, status, file_name, file_path, created_at
			  FROM items WHERE id = $1`

	var item model.Item
	err := r.db.QueryRow(ctx, query, id).Scan(
		&item.ID, &item.OwnerID, &item.Title, &item.Description, &item.Status,
		&item.Attachment.FileName, &item.Attachment.FilePath, &item.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return model.Item{}, model.ErrNotFound
		}
		return model.Item{}, fmt.Errorf("failed to get item by id: %w", err)
	}

	return item, nil
}

func (r *ItemRepository) GetByOwnerID(ctx context.Context, ownerID uuid.UUID) ([]model.Item, error) {
	query := `SELECT id, owner_id, title, description, status, file_name, file_path, created_at
			  FROM items WHERE owner_id = $1
			  ORDER BY created_at DESC`

	rows, err := r.db.Query(ctx, query, ownerID)
	if err != nil {
		return nil, fmt.Errorf("failed to get items by owner id: %w", err)
	}
	defer rows.Close()

	var items []model.Item
	for rows.Next() {
		var item model.Item
		err := rows.Scan(
			&item.ID, &item.OwnerID, &item.Title, &item.Description, &item.Status,
			&item.Attachment.FileName, &item.Attachment.FilePath, &item.CreatedAt,
		)
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return items, nil
}

// Update merges only non-nil patch fields; owner_id is never part of the
// statement.
func (r *ItemRepository) Update(ctx context.Context, id uuid.UUID, patch model.ItemPatch) (model.Item, error) {
	query := `UPDATE items SET
				title = COALESCE($2, title),
				description = COALESCE($3, description),
				status = COALESCE($4, status),
				file_name = COALESCE($5, file_name),
				file_path = COALESCE($6, file_path)
			  WHERE id = $1
			  RETURNING id, owner_id, title, description, status, file_name, file_path, created_at`

	var fileName, filePath *string
	if patch.Attachment != nil {
		fileName = &patch.Attachment.FileName
		filePath = &patch.Attachment.FilePath
	}

	var item model.Item
	err := r.db.QueryRow(ctx, query,
		id, patch.Title, patch.Description, patch.Status, fileName, filePath,
	).Scan(
		&item.ID, &item.OwnerID, &item.Title, &item.Description, &item.Status,
		&item.Attachment.FileName, &item.Attachment.FilePath, &item.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return model.Item{}, model.ErrNotFound
		}
		return model.Item{}, fmt.Errorf("failed to update item: %w", err)
	}

	return item, nil
}

func (r *ItemRepository) Delete(ctx context.Context, id uuid.UUID) error {
	const query = `DELETE FROM items WHERE id = $1`

	cmd, err := r.db.Exec(ctx, query, id)
	if err != nil {
		return fmt.Errorf("failed to delete item: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return model.ErrNotFound
	}

	return nil
}
