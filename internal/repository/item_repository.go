package repository

import (
	"database/sql"
	"errors"

	"github.com/lib/pq"

	"cartly-be/internal/apperr"
	"cartly-be/internal/entities"
)

// ItemRepository defines the interface for item database operations
type ItemRepository interface {
	Create(name string, quantity int, notes, category *string, tags []string) (*entities.Item, error)
	FindAll(offset, limit int) ([]entities.Item, error)
	Count() (int, error)
	FindByID(id string) (*entities.Item, error)
	Update(id string, name *string, quantity *int, notes, category *string, tags []string) (*entities.Item, error)
	Delete(id string) error
}

type itemRepository struct {
	db *sql.DB
}

// NewItemRepository creates a new item repository
func NewItemRepository(db *sql.DB) ItemRepository {
	return &itemRepository{db: db}
}

// Create inserts a new item into the database
func (r *itemRepository) Create(name string, quantity int, notes, category *string, tags []string) (*entities.Item, error) {
	if tags == nil {
		tags = []string{}
	}

	query := `
		INSERT INTO items (name, quantity, notes, category, tags)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, name, quantity, notes, category, tags, created_at, updated_at
	`

	var item entities.Item
	err := r.db.QueryRow(query, name, quantity, notes, category, pq.Array(tags)).Scan(
		&item.ID,
		&item.Name,
		&item.Quantity,
		&item.Notes,
		&item.Category,
		pq.Array(&item.Tags),
		&item.CreatedAt,
		&item.UpdatedAt,
	)

	if err != nil {
		return nil, apperr.Internal("failed to create item", err)
	}

	return &item, nil
}

// FindAll retrieves one page of items in insertion order
func (r *itemRepository) FindAll(offset, limit int) ([]entities.Item, error) {
	query := `
		SELECT id, name, quantity, notes, category, tags, created_at, updated_at
		FROM items
		ORDER BY created_at ASC, id ASC
		OFFSET $1 LIMIT $2
	`

	rows, err := r.db.Query(query, offset, limit)
	if err != nil {
		return nil, apperr.Internal("failed to fetch items", err)
	}
	defer rows.Close()

	items := []entities.Item{}
	for rows.Next() {
		var item entities.Item
		err := rows.Scan(
			&item.ID,
			&item.Name,
			&item.Quantity,
			&item.Notes,
			&item.Category,
			pq.Array(&item.Tags),
			&item.CreatedAt,
			&item.UpdatedAt,
		)
		if err != nil {
			return nil, apperr.Internal("failed to scan item", err)
		}
		items = append(items, item)
	}

	if err := rows.Err(); err != nil {
		return nil, apperr.Internal("error iterating items", err)
	}

	return items, nil
}

// Count returns the total number of items, independent of any page slice
func (r *itemRepository) Count() (int, error) {
	var total int
	if err := r.db.QueryRow(`SELECT COUNT(*) FROM items`).Scan(&total); err != nil {
		return 0, apperr.Internal("failed to count items", err)
	}
	return total, nil
}

// FindByID finds an item by ID (UUID)
func (r *itemRepository) FindByID(id string) (*entities.Item, error) {
	query := `
		SELECT id, name, quantity, notes, category, tags, created_at, updated_at
		FROM items
		WHERE id = $1
	`

	var item entities.Item
	err := r.db.QueryRow(query, id).Scan(
		&item.ID,
		&item.Name,
		&item.Quantity,
		&item.Notes,
		&item.Category,
		pq.Array(&item.Tags),
		&item.CreatedAt,
		&item.UpdatedAt,
	)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, apperr.NotFound("Item not found")
	}
	if err != nil {
		return nil, apperr.Internal("failed to find item", err)
	}

	return &item, nil
}

// Update applies a partial update and returns the record as it was BEFORE the
// update. Reading the pre-image and writing the new values happen in one
// statement, so no interleaved writer can slip between them.
func (r *itemRepository) Update(id string, name *string, quantity *int, notes, category *string, tags []string) (*entities.Item, error) {
	query := `
		WITH before AS (
			SELECT id, name, quantity, notes, category, tags, created_at, updated_at
			FROM items
			WHERE id = $1
			FOR UPDATE
		), updated AS (
			UPDATE items
			SET name = COALESCE($2, name),
			    quantity = COALESCE($3, quantity),
			    notes = COALESCE($4, notes),
			    category = COALESCE($5, category),
			    tags = COALESCE($6, tags),
			    updated_at = NOW()
			WHERE id IN (SELECT id FROM before)
		)
		SELECT id, name, quantity, notes, category, tags, created_at, updated_at
		FROM before
	`

	var item entities.Item
	err := r.db.QueryRow(query, id, name, quantity, notes, category, pq.Array(tags)).Scan(
		&item.ID,
		&item.Name,
		&item.Quantity,
		&item.Notes,
		&item.Category,
		pq.Array(&item.Tags),
		&item.CreatedAt,
		&item.UpdatedAt,
	)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, apperr.NotFound("Item not found")
	}
	if err != nil {
		return nil, apperr.Internal("failed to update item", err)
	}

	return &item, nil
}

// Delete removes an item from the database
func (r *itemRepository) Delete(id string) error {
	result, err := r.db.Exec(`DELETE FROM items WHERE id = $1`, id)
	if err != nil {
		return apperr.Internal("failed to delete item", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return apperr.Internal("failed to get rows affected", err)
	}

	if rowsAffected == 0 {
		return apperr.NotFound("Item not found")
	}

	return nil
}
