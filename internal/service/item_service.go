package service

import (
	"strings"

	"github.com/google/uuid"

	"cartly-be/internal/apperr"
	"cartly-be/internal/entities"
	"cartly-be/internal/models"
	"cartly-be/internal/pagination"
	"cartly-be/internal/repository"
)

const minNameLength = 3

// ItemService defines the interface for item business logic
type ItemService interface {
	Create(req *models.CreateItemRequest) (*entities.Item, error)
	List(pageStr, limitStr string) (*models.ItemPageResponse, error)
	GetByID(id string) (*entities.Item, error)
	Update(id string, req *models.UpdateItemRequest) (*entities.Item, error)
	Delete(id string) error
}

type itemService struct {
	repo repository.ItemRepository
}

// NewItemService creates a new item service
func NewItemService(repo repository.ItemRepository) ItemService {
	return &itemService{repo: repo}
}

// validateName trims the name and enforces the minimum length
func validateName(name string) (string, error) {
	trimmed := strings.TrimSpace(name)
	if len(trimmed) < minNameLength {
		return "", apperr.Validation("Name must be at least 3 characters long")
	}
	return trimmed, nil
}

func validateQuantity(quantity int) error {
	if quantity < 0 {
		return apperr.Validation("Quantity must not be negative")
	}
	return nil
}

func parseID(id, message string) error {
	if _, err := uuid.Parse(id); err != nil {
		return apperr.InvalidID(message)
	}
	return nil
}

// Create validates the fields and persists a new item
func (s *itemService) Create(req *models.CreateItemRequest) (*entities.Item, error) {
	name, err := validateName(req.Name)
	if err != nil {
		return nil, err
	}
	if req.Quantity == nil {
		return nil, apperr.Validation("Quantity is required")
	}
	if err := validateQuantity(*req.Quantity); err != nil {
		return nil, err
	}

	return s.repo.Create(name, *req.Quantity, req.Notes, req.Category, req.Tags)
}

// List returns one page of items plus the full collection count
func (s *itemService) List(pageStr, limitStr string) (*models.ItemPageResponse, error) {
	p := pagination.Parse(pageStr, limitStr)

	items, err := s.repo.FindAll(p.Offset, p.Limit)
	if err != nil {
		return nil, err
	}

	total, err := s.repo.Count()
	if err != nil {
		return nil, err
	}

	return &models.ItemPageResponse{
		Items:      items,
		TotalItems: total,
		Page:       p.Page,
		Limit:      p.Limit,
	}, nil
}

// GetByID fetches an item by a structurally valid identifier
func (s *itemService) GetByID(id string) (*entities.Item, error) {
	if err := parseID(id, "Invalid item ID"); err != nil {
		return nil, err
	}
	return s.repo.FindByID(id)
}

// Update applies a partial update and returns the pre-update record
func (s *itemService) Update(id string, req *models.UpdateItemRequest) (*entities.Item, error) {
	if err := parseID(id, "Invalid item ID"); err != nil {
		return nil, err
	}

	name := req.Name
	if name != nil {
		trimmed, err := validateName(*name)
		if err != nil {
			return nil, err
		}
		name = &trimmed
	}
	if req.Quantity != nil {
		if err := validateQuantity(*req.Quantity); err != nil {
			return nil, err
		}
	}

	return s.repo.Update(id, name, req.Quantity, req.Notes, req.Category, req.Tags)
}

// Delete removes an item by id
func (s *itemService) Delete(id string) error {
	if err := parseID(id, "Invalid item ID"); err != nil {
		return err
	}
	return s.repo.Delete(id)
}
