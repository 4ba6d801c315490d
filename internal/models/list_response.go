package models

import "cartly-be/internal/entities"

// ListPageResponse represents one page of lists plus the collection total
type ListPageResponse struct {
	Lists      []entities.List `json:"lists"`
	TotalLists int             `json:"totalLists"`
	Page       int             `json:"page"`
	Limit      int             `json:"limit"`
}

// RemoveListItemResponse confirms a removal and echoes the list's remaining
// embedded items
type RemoveListItemResponse struct {
	Message string              `json:"message"`
	Items   []entities.ListItem `json:"items"`
}
