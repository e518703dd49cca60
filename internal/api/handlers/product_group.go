package handlers

import (
	"net/http"

	"product-relations-backend/internal/database/models"
	apperrors "product-relations-backend/internal/errors"
	"product-relations-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// ProductGroupHandler serves the assembled relation groups of a product
type ProductGroupHandler struct {
	service service.ProductGroupServiceInterface
}

// NewProductGroupHandler creates a new product group handler
func NewProductGroupHandler(service service.ProductGroupServiceInterface) *ProductGroupHandler {
	return &ProductGroupHandler{service: service}
}

// LabelResponse carries the resolved label of a group member
type LabelResponse struct {
	ProductID        uint64 `json:"product_id"`
	RelatedProductID uint64 `json:"related_product_id"`
	GroupID          uint64 `json:"group_id"`
	Label            string `json:"label"`
}

// SwatchResponse carries the swatch image of a group member; Image is null
// when the group renders text or a dropdown in the requested context
type SwatchResponse struct {
	ProductID        uint64                  `json:"product_id"`
	RelatedProductID uint64                  `json:"related_product_id"`
	GroupID          uint64                  `json:"group_id"`
	Image            *service.ImageReference `json:"image"`
}

// GetProductGroups returns the relation groups to render for a product
// @Summary Get product relation groups
// @Description Assemble the relation groups of a product for a display context. "archive" is accepted as an alias of "listing".
// @Tags product-groups
// @Produce json
// @Param id path int true "Product ID"
// @Param context query string false "Display context (single, listing)" default(single)
// @Success 200 {array} service.GroupView "Assembled groups in display order"
// @Failure 400 {object} ErrorResponse "Invalid product ID or context"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Router /products/{id}/groups [get]
func (h *ProductGroupHandler) GetProductGroups(c *gin.Context) {
	productID, ok := parseID(c, "id")
	if !ok {
		return
	}
	displayCtx, ok := models.ParseDisplayContext(c.Query("context"))
	if !ok {
		respondError(c, apperrors.ErrInvalidContext)
		return
	}

	groups, err := h.service.BuildGroups(c, productID, displayCtx)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, groups)
}

// GetMemberLabel returns the label of one member of a product's group
// @Summary Get member label
// @Description Resolve the label of a related product: custom label, then the group's attribute value, then the product name
// @Tags product-groups
// @Produce json
// @Param id path int true "Product ID"
// @Param groupId path int true "Relation group ID"
// @Param relatedId path int true "Related product ID"
// @Success 200 {object} LabelResponse "Resolved label"
// @Failure 400 {object} ErrorResponse "Invalid ID"
// @Failure 404 {object} ErrorResponse "Relation, group or product not found"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Router /products/{id}/groups/{groupId}/members/{relatedId}/label [get]
func (h *ProductGroupHandler) GetMemberLabel(c *gin.Context) {
	productID, groupID, relatedID, ok := memberParams(c)
	if !ok {
		return
	}

	label, err := h.service.GetProductLabel(productID, relatedID, groupID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, LabelResponse{
		ProductID:        productID,
		RelatedProductID: relatedID,
		GroupID:          groupID,
		Label:            label,
	})
}

// GetMemberSwatch returns the swatch image of one member of a product's group
// @Summary Get member swatch image
// @Description Resolve the swatch image of a related product. The image is null for text and dropdown styles.
// @Tags product-groups
// @Produce json
// @Param id path int true "Product ID"
// @Param groupId path int true "Relation group ID"
// @Param relatedId path int true "Related product ID"
// @Param size query string false "Image size" default(thumbnail)
// @Param context query string false "Display context (single, listing)" default(single)
// @Param class query string false "CSS class for the rendered image"
// @Success 200 {object} SwatchResponse "Swatch image"
// @Failure 400 {object} ErrorResponse "Invalid ID or context"
// @Failure 404 {object} ErrorResponse "Relation, group or product not found"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Router /products/{id}/groups/{groupId}/members/{relatedId}/swatch [get]
func (h *ProductGroupHandler) GetMemberSwatch(c *gin.Context) {
	productID, groupID, relatedID, ok := memberParams(c)
	if !ok {
		return
	}
	displayCtx, ok := models.ParseDisplayContext(c.Query("context"))
	if !ok {
		respondError(c, apperrors.ErrInvalidContext)
		return
	}

	image, err := h.service.GetProductSwatchImage(productID, relatedID, groupID, c.Query("size"), service.RenderOptions{
		Context: displayCtx,
		Class:   c.Query("class"),
	})
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, SwatchResponse{
		ProductID:        productID,
		RelatedProductID: relatedID,
		GroupID:          groupID,
		Image:            image,
	})
}

func memberParams(c *gin.Context) (productID, groupID, relatedID uint64, ok bool) {
	if productID, ok = parseID(c, "id"); !ok {
		return
	}
	if groupID, ok = parseID(c, "groupId"); !ok {
		return
	}
	relatedID, ok = parseID(c, "relatedId")
	return
}
