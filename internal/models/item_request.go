package models

// CreateItemRequest represents the request body for creating an item.
// Quantity has no binding tag: zero is a valid quantity and "required"
// would reject it. Range checks live in the service.
type CreateItemRequest struct {
	Name     string   `json:"name" binding:"required"`
	Quantity *int     `json:"quantity" binding:"required"`
	Notes    *string  `json:"notes,omitempty"`
	Category *string  `json:"category,omitempty"`
	Tags     []string `json:"tags,omitempty"`
}

// UpdateItemRequest represents a partial item update; nil fields are left
// untouched.
type UpdateItemRequest struct {
	Name     *string  `json:"name,omitempty"`
	Quantity *int     `json:"quantity,omitempty"`
	Notes    *string  `json:"notes,omitempty"`
	Category *string  `json:"category,omitempty"`
	Tags     []string `json:"tags,omitempty"`
}
