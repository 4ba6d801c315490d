package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/skip2/go-qrcode"

	"cartly-be/internal/service"
)

type QRCodeController struct {
	listService service.ListService
	frontendURL string
}

func NewQRCodeController(listService service.ListService, frontendURL string) *QRCodeController {
	return &QRCodeController{
		listService: listService,
		frontendURL: frontendURL,
	}
}

// GenerateQRCode handles GET /api/v1/lists/:id/qrcode - renders a QR code
// pointing at the shareable frontend page for the list
func (qc *QRCodeController) GenerateQRCode(c *gin.Context) {
	id := c.Param("id")

	list, err := qc.listService.GetByID(id)
	if err != nil {
		respondError(c, err)
		return
	}

	shareURL := qc.frontendURL + "/lists/" + list.ID

	// 256x256 pixels, medium error recovery
	png, err := qrcode.Encode(shareURL, qrcode.Medium, 256)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Failed to generate QR code",
		})
		return
	}

	c.Header("Content-Disposition", "inline; filename=qrcode.png")
	c.Data(http.StatusOK, "image/png", png)
}
