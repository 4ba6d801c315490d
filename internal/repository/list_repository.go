package repository

import (
	"database/sql"
	"encoding/json"
	"errors"

	"cartly-be/internal/apperr"
	"cartly-be/internal/entities"
)

// ListRepository defines the interface for list database operations
type ListRepository interface {
	Create(name string, items []entities.ListItem) (*entities.List, error)
	FindAll(offset, limit int) ([]entities.List, error)
	Count() (int, error)
	FindByID(id string) (*entities.List, error)
	Update(id string, name *string) (*entities.List, error)
	Delete(id string) error
	AddItem(listID string, snapshot entities.ListItem) error
	RemoveItem(listID, itemID string) ([]entities.ListItem, error)
}

type listRepository struct {
	db *sql.DB
}

// NewListRepository creates a new list repository
func NewListRepository(db *sql.DB) ListRepository {
	return &listRepository{db: db}
}

func scanList(row interface{ Scan(...interface{}) error }) (*entities.List, error) {
	var list entities.List
	var rawItems []byte
	if err := row.Scan(&list.ID, &list.Name, &rawItems, &list.CreatedAt); err != nil {
		return nil, err
	}
	if err := json.Unmarshal(rawItems, &list.Items); err != nil {
		return nil, err
	}
	return &list, nil
}

// Create inserts a new list, optionally seeded with item snapshots
func (r *listRepository) Create(name string, items []entities.ListItem) (*entities.List, error) {
	if items == nil {
		items = []entities.ListItem{}
	}
	rawItems, err := json.Marshal(items)
	if err != nil {
		return nil, apperr.Internal("failed to encode list items", err)
	}

	query := `
		INSERT INTO lists (name, items)
		VALUES ($1, $2::jsonb)
		RETURNING id, name, items, created_at
	`

	// string, not []byte: pq would encode raw bytes as bytea, breaking the cast
	list, err := scanList(r.db.QueryRow(query, name, string(rawItems)))
	if err != nil {
		return nil, apperr.Internal("failed to create list", err)
	}

	return list, nil
}

// FindAll retrieves one page of lists in insertion order
func (r *listRepository) FindAll(offset, limit int) ([]entities.List, error) {
	query := `
		SELECT id, name, items, created_at
		FROM lists
		ORDER BY created_at ASC, id ASC
		OFFSET $1 LIMIT $2
	`

	rows, err := r.db.Query(query, offset, limit)
	if err != nil {
		return nil, apperr.Internal("failed to fetch lists", err)
	}
	defer rows.Close()

	lists := []entities.List{}
	for rows.Next() {
		list, err := scanList(rows)
		if err != nil {
			return nil, apperr.Internal("failed to scan list", err)
		}
		lists = append(lists, *list)
	}

	if err := rows.Err(); err != nil {
		return nil, apperr.Internal("error iterating lists", err)
	}

	return lists, nil
}

// Count returns the total number of lists, independent of any page slice
func (r *listRepository) Count() (int, error) {
	var total int
	if err := r.db.QueryRow(`SELECT COUNT(*) FROM lists`).Scan(&total); err != nil {
		return 0, apperr.Internal("failed to count lists", err)
	}
	return total, nil
}

// FindByID finds a list by ID (UUID)
func (r *listRepository) FindByID(id string) (*entities.List, error) {
	query := `
		SELECT id, name, items, created_at
		FROM lists
		WHERE id = $1
	`

	list, err := scanList(r.db.QueryRow(query, id))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, apperr.NotFound("List not found")
	}
	if err != nil {
		return nil, apperr.Internal("failed to find list", err)
	}

	return list, nil
}

// Update applies a partial update and returns the post-update record
func (r *listRepository) Update(id string, name *string) (*entities.List, error) {
	query := `
		UPDATE lists
		SET name = COALESCE($2, name)
		WHERE id = $1
		RETURNING id, name, items, created_at
	`

	list, err := scanList(r.db.QueryRow(query, id, name))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, apperr.NotFound("List not found")
	}
	if err != nil {
		return nil, apperr.Internal("failed to update list", err)
	}

	return list, nil
}

// Delete removes a list. Standalone items embedded in it are untouched: the
// list only ever held copies.
func (r *listRepository) Delete(id string) error {
	result, err := r.db.Exec(`DELETE FROM lists WHERE id = $1`, id)
	if err != nil {
		return apperr.Internal("failed to delete list", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return apperr.Internal("failed to get rows affected", err)
	}

	if rowsAffected == 0 {
		return apperr.NotFound("List not found")
	}

	return nil
}

// AddItem appends an item snapshot to the list's embedded sequence. The
// duplicate guard sits in the UPDATE predicate, so append and uniqueness check
// are one atomic write, not a read-then-push.
func (r *listRepository) AddItem(listID string, snapshot entities.ListItem) error {
	rawSnapshot, err := json.Marshal(snapshot)
	if err != nil {
		return apperr.Internal("failed to encode item snapshot", err)
	}

	query := `
		UPDATE lists
		SET items = items || jsonb_build_array($2::jsonb)
		WHERE id = $1
		AND NOT EXISTS (
			SELECT 1 FROM jsonb_array_elements(items) AS e
			WHERE e->>'id' = $3
		)
	`

	result, err := r.db.Exec(query, listID, string(rawSnapshot), snapshot.ID)
	if err != nil {
		return apperr.Internal("failed to add item to list", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return apperr.Internal("failed to get rows affected", err)
	}
	if rowsAffected > 0 {
		return nil
	}

	// Nothing updated: either the list is missing or the guard fired.
	var exists bool
	if err := r.db.QueryRow(`SELECT EXISTS (SELECT 1 FROM lists WHERE id = $1)`, listID).Scan(&exists); err != nil {
		return apperr.Internal("failed to check list existence", err)
	}
	if !exists {
		return apperr.NotFound("List not found")
	}
	return apperr.Conflict("Item already exists in the list")
}

// RemoveItem drops the snapshot matching itemID from the list and returns the
// remaining items. Removing a non-member is a no-op success.
func (r *listRepository) RemoveItem(listID, itemID string) ([]entities.ListItem, error) {
	query := `
		UPDATE lists
		SET items = COALESCE(
			(SELECT jsonb_agg(e) FROM jsonb_array_elements(items) AS e WHERE e->>'id' <> $2),
			'[]'::jsonb
		)
		WHERE id = $1
		RETURNING items
	`

	var rawItems []byte
	err := r.db.QueryRow(query, listID, itemID).Scan(&rawItems)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, apperr.NotFound("List or item not found")
	}
	if err != nil {
		return nil, apperr.Internal("failed to remove item from list", err)
	}

	items := []entities.ListItem{}
	if err := json.Unmarshal(rawItems, &items); err != nil {
		return nil, apperr.Internal("failed to decode list items", err)
	}

	return items, nil
}
