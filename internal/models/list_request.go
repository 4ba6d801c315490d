package models

// CreateListRequest represents the request body for creating a list.
// Items may seed the list with initial snapshots, mirroring item fields.
type CreateListRequest struct {
	Name  string              `json:"name" binding:"required"`
	Items []CreateItemRequest `json:"items,omitempty"`
}

// UpdateListRequest represents a partial list update
type UpdateListRequest struct {
	Name *string `json:"name,omitempty"`
}

// AddListItemRequest carries the id of the standalone item to copy into a list
type AddListItemRequest struct {
	ItemID string `json:"itemId" binding:"required"`
}
