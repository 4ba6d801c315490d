package entities

import "time"

// Item represents a standalone shopping item in the database
type Item struct {
	ID        string    `json:"id"` // UUID
	Name      string    `json:"name"`
	Quantity  int       `json:"quantity"`
	Notes     *string   `json:"notes,omitempty"`
	Category  *string   `json:"category,omitempty"`
	Tags      []string  `json:"tags"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
