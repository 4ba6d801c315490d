package controllers

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"cartly-be/internal/apperr"
)

// respondError maps an error kind to its HTTP status and body. Not-found and
// conflict responses use a "message" key, everything else an "error" key,
// matching the contract the frontend already depends on. Internal causes are
// logged and never echoed to the client.
func respondError(c *gin.Context, err error) {
	e, ok := apperr.AsError(err)
	if !ok {
		e = apperr.Internal("An error occurred", err)
	}

	switch e.Kind {
	case apperr.KindValidation, apperr.KindInvalidID, apperr.KindAlreadyExists:
		c.JSON(http.StatusBadRequest, gin.H{"error": e.Message})
	case apperr.KindUnauthorized, apperr.KindInvalidCredentials:
		c.JSON(http.StatusUnauthorized, gin.H{"error": e.Message})
	case apperr.KindNotFound:
		c.JSON(http.StatusNotFound, gin.H{"message": e.Message})
	case apperr.KindConflict:
		c.JSON(http.StatusConflict, gin.H{"message": e.Message})
	default:
		log.Printf("ERROR: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "An error occurred"})
	}
}

// respondBindError reports a malformed request body
func respondBindError(c *gin.Context, err error) {
	c.JSON(http.StatusBadRequest, gin.H{
		"error":   "Invalid request body",
		"details": err.Error(),
	})
}
