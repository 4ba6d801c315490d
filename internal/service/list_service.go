package service

import (
	"time"

	"github.com/google/uuid"

	"cartly-be/internal/apperr"
	"cartly-be/internal/entities"
	"cartly-be/internal/models"
	"cartly-be/internal/pagination"
	"cartly-be/internal/repository"
)

// ListService defines the interface for list business logic
type ListService interface {
	Create(req *models.CreateListRequest) (*entities.List, error)
	List(pageStr, limitStr string) (*models.ListPageResponse, error)
	GetByID(id string) (*entities.List, error)
	Update(id string, req *models.UpdateListRequest) (*entities.List, error)
	Delete(id string) error
	AddItem(listID, itemID string) error
	RemoveItem(listID, itemID string) ([]entities.ListItem, error)
}

type listService struct {
	listRepo repository.ListRepository
	itemRepo repository.ItemRepository
}

// NewListService creates a new list service
func NewListService(listRepo repository.ListRepository, itemRepo repository.ItemRepository) ListService {
	return &listService{
		listRepo: listRepo,
		itemRepo: itemRepo,
	}
}

// snapshot copies an item's current field values into an embedded list entry.
// Later edits to the item will not reach the copy.
func snapshot(item *entities.Item, now time.Time) entities.ListItem {
	tags := make([]string, len(item.Tags))
	copy(tags, item.Tags)

	return entities.ListItem{
		ID:        item.ID,
		Name:      item.Name,
		Quantity:  item.Quantity,
		Notes:     item.Notes,
		Category:  item.Category,
		Tags:      tags,
		CreatedAt: item.CreatedAt,
		AddedAt:   now,
	}
}

// Create validates the fields and persists a new list, optionally seeded with
// inline item snapshots. Seeded snapshots get fresh ids; they are copies, not
// references to standalone items.
func (s *listService) Create(req *models.CreateListRequest) (*entities.List, error) {
	name, err := validateName(req.Name)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	items := make([]entities.ListItem, 0, len(req.Items))
	for _, ir := range req.Items {
		itemName, err := validateName(ir.Name)
		if err != nil {
			return nil, err
		}
		if ir.Quantity == nil {
			return nil, apperr.Validation("Quantity is required")
		}
		if err := validateQuantity(*ir.Quantity); err != nil {
			return nil, err
		}

		items = append(items, entities.ListItem{
			ID:        uuid.NewString(),
			Name:      itemName,
			Quantity:  *ir.Quantity,
			Notes:     ir.Notes,
			Category:  ir.Category,
			Tags:      ir.Tags,
			CreatedAt: now,
			AddedAt:   now,
		})
	}

	return s.listRepo.Create(name, items)
}

// List returns one page of lists plus the full collection count
func (s *listService) List(pageStr, limitStr string) (*models.ListPageResponse, error) {
	p := pagination.Parse(pageStr, limitStr)

	lists, err := s.listRepo.FindAll(p.Offset, p.Limit)
	if err != nil {
		return nil, err
	}

	total, err := s.listRepo.Count()
	if err != nil {
		return nil, err
	}

	return &models.ListPageResponse{
		Lists:      lists,
		TotalLists: total,
		Page:       p.Page,
		Limit:      p.Limit,
	}, nil
}

// GetByID fetches a list by a structurally valid identifier
func (s *listService) GetByID(id string) (*entities.List, error) {
	if err := parseID(id, "Invalid list ID"); err != nil {
		return nil, err
	}
	return s.listRepo.FindByID(id)
}

// Update applies a partial update and returns the post-update record
func (s *listService) Update(id string, req *models.UpdateListRequest) (*entities.List, error) {
	if err := parseID(id, "Invalid list ID"); err != nil {
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

	return s.listRepo.Update(id, name)
}

// Delete removes a list; standalone items are unaffected
func (s *listService) Delete(id string) error {
	if err := parseID(id, "Invalid list ID"); err != nil {
		return err
	}
	return s.listRepo.Delete(id)
}

// AddItem copies the item's current state into the list. The repository
// rejects a second copy of the same item atomically.
func (s *listService) AddItem(listID, itemID string) error {
	if err := parseID(listID, "Invalid list ID"); err != nil {
		return err
	}
	if err := parseID(itemID, "Invalid item ID"); err != nil {
		return err
	}

	item, err := s.itemRepo.FindByID(itemID)
	if err != nil {
		return err
	}

	return s.listRepo.AddItem(listID, snapshot(item, time.Now().UTC()))
}

// RemoveItem drops the embedded snapshot matching itemID and returns the
// remaining items. A non-member itemID is a no-op success.
func (s *listService) RemoveItem(listID, itemID string) ([]entities.ListItem, error) {
	if err := parseID(listID, "Invalid list ID"); err != nil {
		return nil, err
	}
	if err := parseID(itemID, "Invalid item ID"); err != nil {
		return nil, err
	}

	return s.listRepo.RemoveItem(listID, itemID)
}
