package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"cartly-be/internal/apperr"
	"cartly-be/internal/models"
	"cartly-be/internal/service"
)

type ListController struct {
	listService service.ListService
}

func NewListController(listService service.ListService) *ListController {
	return &ListController{
		listService: listService,
	}
}

// CreateList handles POST /api/v1/lists
func (lc *ListController) CreateList(c *gin.Context) {
	var req models.CreateListRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	list, err := lc.listService.Create(&req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, list)
}

// GetLists handles GET /api/v1/lists?page&limit
func (lc *ListController) GetLists(c *gin.Context) {
	page, err := lc.listService.List(c.Query("page"), c.Query("limit"))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, page)
}

// GetList handles GET /api/v1/lists/:id. Same contract as items: absent but
// well-formed ids answer 200 with a null body.
func (lc *ListController) GetList(c *gin.Context) {
	list, err := lc.listService.GetByID(c.Param("id"))
	if err != nil {
		if apperr.KindOf(err) == apperr.KindNotFound {
			c.JSON(http.StatusOK, nil)
			return
		}
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, list)
}

// UpdateList handles PUT /api/v1/lists/:id and, unlike item updates, returns
// the post-update record and 404s when the list does not exist
func (lc *ListController) UpdateList(c *gin.Context) {
	var req models.UpdateListRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	list, err := lc.listService.Update(c.Param("id"), &req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, list)
}

// DeleteList handles DELETE /api/v1/lists/:id. Standalone items that were
// copied into the list are not deleted with it.
func (lc *ListController) DeleteList(c *gin.Context) {
	if err := lc.listService.Delete(c.Param("id")); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, models.MessageResponse{Message: "List deleted successfully"})
}

// AddItemToList handles POST /api/v1/lists/:id/items
func (lc *ListController) AddItemToList(c *gin.Context) {
	var req models.AddListItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	if err := lc.listService.AddItem(c.Param("id"), req.ItemID); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, models.MessageResponse{Message: "Item added to list successfully"})
}

// RemoveItemFromList handles DELETE /api/v1/lists/:id/items/:itemId
func (lc *ListController) RemoveItemFromList(c *gin.Context) {
	items, err := lc.listService.RemoveItem(c.Param("id"), c.Param("itemId"))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, models.RemoveListItemResponse{
		Message: "Item removed from list successfully",
		Items:   items,
	})
}
