package handlers

import (
	"net/http"

	"product-relations-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// ProductHandler handles catalog mirror updates
type ProductHandler struct {
	service service.ProductServiceInterface
}

// NewProductHandler creates a new product handler
func NewProductHandler(service service.ProductServiceInterface) *ProductHandler {
	return &ProductHandler{service: service}
}

// UpsertProduct creates or refreshes the catalog mirror of a product
// @Summary Upsert a product
// @Description Create or refresh the name, permalink, images and attribute values mirrored for a product
// @Tags products
// @Accept json
// @Produce json
// @Param id path int true "Product ID"
// @Param product body service.UpsertProductRequest true "Catalog data"
// @Success 200 {object} service.ProductResponse "Stored product"
// @Failure 400 {object} ErrorResponse "Invalid request"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /products/{id} [put]
func (h *ProductHandler) UpsertProduct(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	var req service.UpsertProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	product, err := h.service.UpsertProduct(id, &req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, product)
}
