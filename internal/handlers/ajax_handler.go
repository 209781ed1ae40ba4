package handlers

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"water_store/internal/services"
)

// AjaxHandler serves the two JSON lookups behind the order form's
// state → branch cascade and product quick info.
type AjaxHandler struct {
	lookupService services.LookupService
}

func NewAjaxHandler(lookupService services.LookupService) *AjaxHandler {
	return &AjaxHandler{lookupService: lookupService}
}

// GET /ajax/branches/?state_id=<id>
func (h *AjaxHandler) BranchesByState(c *gin.Context) {
	results, err := h.lookupService.BranchesByState(c.Query("state_id"))
	if err != nil {
		log.Printf("Error looking up branches: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "lookup failed"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"results": results})
}

// GET /ajax/product-info/?product_id=<uuid>
func (h *AjaxHandler) ProductInfo(c *gin.Context) {
	productID := c.Query("product_id")
	if productID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "product_id required"})
		return
	}

	info, err := h.lookupService.ProductInfo(productID)
	if errors.Is(err, services.ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "product not found"})
		return
	}
	if err != nil {
		log.Printf("Error looking up product info: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "lookup failed"})
		return
	}

	c.JSON(http.StatusOK, info)
}
