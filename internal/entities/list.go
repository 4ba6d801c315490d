package entities

import "time"

// ListItem is a snapshot of an Item embedded in a list. The copy is taken
// when the item is added; later edits to the standalone Item do not reach it.
// ID carries the source item's identifier and is unique within one list.
type ListItem struct {
	ID        string    `json:"id"` // source item UUID
	Name      string    `json:"name"`
	Quantity  int       `json:"quantity"`
	Notes     *string   `json:"notes,omitempty"`
	Category  *string   `json:"category,omitempty"`
	Tags      []string  `json:"tags"`
	CreatedAt time.Time `json:"createdAt"`
	AddedAt   time.Time `json:"addedAt"`
}

// List represents a shopping list with its embedded item snapshots
type List struct {
	ID        string     `json:"id"` // UUID
	Name      string     `json:"name"`
	Items     []ListItem `json:"items"`
	CreatedAt time.Time  `json:"createdAt"`
}
