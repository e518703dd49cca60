package handlers

import (
	"net/http"

	"product-relations-backend/internal/auth"
	"product-relations-backend/internal/database/models"
	apperrors "product-relations-backend/internal/errors"
	"product-relations-backend/internal/logger"
	"product-relations-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// RelationHandler handles HTTP requests for product relations
type RelationHandler struct {
	service service.RelationServiceInterface
}

// NewRelationHandler creates a new relation handler
func NewRelationHandler(service service.RelationServiceInterface) *RelationHandler {
	return &RelationHandler{service: service}
}

// GetRelations lists the relation rows of a product
// @Summary List product relations
// @Description List the relation rows leaving a product, ordered by group and position. The listing context only returns groups shown on product lists.
// @Tags relations
// @Produce json
// @Param id path int true "Product ID"
// @Param context query string false "Display context (single, listing)" default(single)
// @Success 200 {array} service.RelationResponse "Relation rows"
// @Failure 400 {object} ErrorResponse "Invalid product ID or context"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Router /products/{id}/relations [get]
func (h *RelationHandler) GetRelations(c *gin.Context) {
	productID, ok := parseID(c, "id")
	if !ok {
		return
	}
	displayCtx, ok := models.ParseDisplayContext(c.Query("context"))
	if !ok {
		respondError(c, apperrors.ErrInvalidContext)
		return
	}

	relations, err := h.service.GetRelations(productID, displayCtx)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, relations)
}

// CreateRelation relates two products in both directions
// @Summary Create a relation
// @Description Relate two products within a group. Both directions are stored; creating an existing pair returns it unchanged.
// @Tags relations
// @Accept json
// @Produce json
// @Param relation body service.CreateRelationRequest true "Relation data"
// @Success 201 {object} service.RelationPairResponse "Relation created"
// @Success 200 {object} service.RelationPairResponse "Relation already existed"
// @Failure 400 {object} ErrorResponse "Invalid request or self relation"
// @Failure 404 {object} ErrorResponse "Relation group not found"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /relations [post]
func (h *RelationHandler) CreateRelation(c *gin.Context) {
	var req service.CreateRelationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	pair, err := h.service.CreateRelation(&req)
	if err != nil {
		respondError(c, err)
		return
	}

	status := http.StatusOK
	if pair.Created {
		status = http.StatusCreated
		log := logger.FromGinContext(c).WithFields(map[string]interface{}{
			"relation_id": pair.ID,
			"product_id":  pair.ProductID,
			"related_id":  pair.RelatedProductID,
			"group_id":    pair.GroupID,
		})
		if subject, ok := auth.GetSubject(c); ok {
			log = log.WithField("admin", subject)
		}
		log.Info("Relation created")
	}
	c.JSON(status, pair)
}

// DeleteRelation removes both directions of a relation
// @Summary Delete a relation
// @Description Remove a relation pair and its settings. Deleting an absent pair succeeds.
// @Tags relations
// @Accept json
// @Produce json
// @Param product_id query int true "Product ID"
// @Param related_product_id query int true "Related product ID"
// @Param group_id query int true "Relation group ID"
// @Success 204 "Relation deleted"
// @Failure 400 {object} ErrorResponse "Invalid request"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /relations [delete]
func (h *RelationHandler) DeleteRelation(c *gin.Context) {
	var req service.DeleteRelationRequest
	if err := c.ShouldBind(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	if err := h.service.DeleteRelation(&req); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// SetRelationSettings stores the overrides of a relation pair
// @Summary Set relation settings
// @Description Attach a custom label and image to a relation pair. Both directions share the settings.
// @Tags relations
// @Accept json
// @Produce json
// @Param settings body service.SetRelationSettingsRequest true "Settings"
// @Success 200 {object} service.SettingsResponse "Stored settings"
// @Failure 400 {object} ErrorResponse "Invalid request"
// @Failure 404 {object} ErrorResponse "Relation not found"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /relations/settings [put]
func (h *RelationHandler) SetRelationSettings(c *gin.Context) {
	var req service.SetRelationSettingsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	settings, err := h.service.SetRelationSettings(&req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, settings)
}

// UpdateSettings replaces a settings row
// @Summary Update settings
// @Description Replace the custom label and image of a settings row
// @Tags relations
// @Accept json
// @Produce json
// @Param id path int true "Settings ID"
// @Param settings body service.UpdateSettingsRequest true "Settings"
// @Success 200 {object} service.SettingsResponse "Updated settings"
// @Failure 400 {object} ErrorResponse "Invalid request"
// @Failure 404 {object} ErrorResponse "Settings not found"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /settings/{id} [put]
func (h *RelationHandler) UpdateSettings(c *gin.Context) {
	settingsID, ok := parseID(c, "id")
	if !ok {
		return
	}

	var req service.UpdateSettingsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	settings, err := h.service.UpdateSettings(settingsID, &req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, settings)
}

// ReorderRelations sets the order of a product's members within a group
// @Summary Reorder relations
// @Description Set the display order of a product's related products within one group
// @Tags relations
// @Accept json
// @Produce json
// @Param id path int true "Product ID"
// @Param groupId path int true "Relation group ID"
// @Param order body service.ReorderRelationsRequest true "Related product IDs in display order"
// @Success 204 "Order updated"
// @Failure 400 {object} ErrorResponse "Invalid request"
// @Failure 404 {object} ErrorResponse "Relation not found"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /products/{id}/groups/{groupId}/order [put]
func (h *RelationHandler) ReorderRelations(c *gin.Context) {
	productID, ok := parseID(c, "id")
	if !ok {
		return
	}
	groupID, ok := parseID(c, "groupId")
	if !ok {
		return
	}

	var req service.ReorderRelationsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	if err := h.service.ReorderRelations(productID, groupID, &req); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
