package repositories

import (
	"context"
	"strings"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/sbilibin2017/gw-trading-hub/internal/logger"
	"github.com/sbilibin2017/gw-trading-hub/internal/models"
)

const itemColumns = `
	item_id, username, picture1, picture2, picture3,
	name, description, created_at, updated_at, deleted_at
`

// ItemReadRepository provides read access to item records.
type ItemReadRepository struct {
	db *sqlx.DB
}

// NewItemReadRepository creates a new ItemReadRepository.
func NewItemReadRepository(db *sqlx.DB) *ItemReadRepository {
	return &ItemReadRepository{db: db}
}

// ListAll returns every item in insertion order.
func (r *ItemReadRepository) ListAll(ctx context.Context) ([]models.ItemDB, error) {
	const query = `
		SELECT ` + itemColumns + `
		FROM items
		ORDER BY created_at
	`

	items := []models.ItemDB{}
	err := r.db.SelectContext(ctx, &items, query)

	logger.Log.Infow("item select all",
		"query", strings.Join(strings.Fields(query), " "),
		"count", len(items),
		"error", err,
	)

	if err != nil {
		return nil, err
	}
	return items, nil
}

// ListByUsername returns the items owned by username in insertion order.
func (r *ItemReadRepository) ListByUsername(ctx context.Context, username string) ([]models.ItemDB, error) {
	const query = `
		SELECT ` + itemColumns + `
		FROM items
		WHERE username = $1
		ORDER BY created_at
	`

	items := []models.ItemDB{}
	err := r.db.SelectContext(ctx, &items, query, username)

	logger.Log.Infow("item select by username",
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{username},
		"count", len(items),
		"error", err,
	)

	if err != nil {
		return nil, err
	}
	return items, nil
}

// ItemWriteRepository provides write access to item records.
type ItemWriteRepository struct {
	db *sqlx.DB
}

// NewItemWriteRepository creates a new ItemWriteRepository.
func NewItemWriteRepository(db *sqlx.DB) *ItemWriteRepository {
	return &ItemWriteRepository{db: db}
}

// Save inserts a new item and returns the persisted row, including the
// store-generated identifier.
func (r *ItemWriteRepository) Save(ctx context.Context, item models.ItemDB) (*models.ItemDB, error) {
	const query = `
		INSERT INTO items (username, picture1, picture2, picture3, name, description)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING ` + itemColumns

	args := []any{
		item.Username, item.Picture1, item.Picture2, item.Picture3,
		item.Name, item.Description,
	}

	var saved models.ItemDB
	err := r.db.GetContext(ctx, &saved, query, args...)

	logger.Log.Infow("item insert",
		"query", strings.Join(strings.Fields(query), " "),
		"username", item.Username,
		"error", err,
	)

	if err != nil {
		return nil, err
	}
	return &saved, nil
}

// Update overwrites the name and description of an item and stamps its
// update timestamp. Pictures and owner are left untouched. Returns the
// number of rows affected; zero means no item with that identifier exists.
func (r *ItemWriteRepository) Update(ctx context.Context, itemID uuid.UUID, name, description string) (int64, error) {
	const query = `
		UPDATE items
		SET name = $2, description = $3, updated_at = NOW()
		WHERE item_id = $1
	`

	res, err := r.db.ExecContext(ctx, query, itemID, name, description)
	var rowsAffected int64
	if res != nil {
		rowsAffected, _ = res.RowsAffected()
	}

	logger.Log.Infow("item update",
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{itemID, name, description},
		"rows", rowsAffected,
		"error", err,
	)

	return rowsAffected, err
}

// Delete removes an item record. The delete is hard: the deleted_at column
// is never written. Returns the number of rows affected; zero means no item
// with that identifier exists.
func (r *ItemWriteRepository) Delete(ctx context.Context, itemID uuid.UUID) (int64, error) {
	const query = `
		DELETE FROM items
		WHERE item_id = $1
	`

	res, err := r.db.ExecContext(ctx, query, itemID)
	var rowsAffected int64
	if res != nil {
		rowsAffected, _ = res.RowsAffected()
	}

	logger.Log.Infow("item delete",
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{itemID},
		"rows", rowsAffected,
		"error", err,
	)

	return rowsAffected, err
}
