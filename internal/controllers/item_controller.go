package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"cartly-be/internal/apperr"
	"cartly-be/internal/models"
	"cartly-be/internal/service"
)

type ItemController struct {
	itemService service.ItemService
}

func NewItemController(itemService service.ItemService) *ItemController {
	return &ItemController{
		itemService: itemService,
	}
}

// CreateItem handles POST /api/v1/items
func (ic *ItemController) CreateItem(c *gin.Context) {
	var req models.CreateItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	item, err := ic.itemService.Create(&req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, item)
}

// GetItems handles GET /api/v1/items?page&limit
func (ic *ItemController) GetItems(c *gin.Context) {
	page, err := ic.itemService.List(c.Query("page"), c.Query("limit"))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, page)
}

// GetItem handles GET /api/v1/items/:id. A well-formed id with no matching
// record answers 200 with a null body; only a malformed id is a 400.
func (ic *ItemController) GetItem(c *gin.Context) {
	item, err := ic.itemService.GetByID(c.Param("id"))
	if err != nil {
		if apperr.KindOf(err) == apperr.KindNotFound {
			c.JSON(http.StatusOK, nil)
			return
		}
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, item)
}

// UpdateItem handles PUT /api/v1/items/:id and returns the record as it was
// before the update
func (ic *ItemController) UpdateItem(c *gin.Context) {
	var req models.UpdateItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	item, err := ic.itemService.Update(c.Param("id"), &req)
	if err != nil {
		if apperr.KindOf(err) == apperr.KindNotFound {
			c.JSON(http.StatusOK, nil)
			return
		}
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, item)
}

// DeleteItem handles DELETE /api/v1/items/:id
func (ic *ItemController) DeleteItem(c *gin.Context) {
	if err := ic.itemService.Delete(c.Param("id")); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, models.MessageResponse{Message: "Item deleted successfully"})
}
