package models

import "cartly-be/internal/entities"

// ItemPageResponse represents one page of items plus the collection total
type ItemPageResponse struct {
	Items      []entities.Item `json:"items"`
	TotalItems int             `json:"totalItems"`
	Page       int             `json:"page"`
	Limit      int             `json:"limit"`
}

// MessageResponse is the confirmation body used by delete-style endpoints
type MessageResponse struct {
	Message string `json:"message"`
}
