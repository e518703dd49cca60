package handlers

import (
	"net/http"
	"strconv"

	"product-relations-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// RelationGroupHandler handles HTTP requests for relation groups
type RelationGroupHandler struct {
	service service.RelationGroupServiceInterface
}

// NewRelationGroupHandler creates a new relation group handler
func NewRelationGroupHandler(service service.RelationGroupServiceInterface) *RelationGroupHandler {
	return &RelationGroupHandler{service: service}
}

// CreateGroup creates a new relation group
// @Summary Create a relation group
// @Description Create a relation group. Unknown or empty display styles fall back to image_product.
// @Tags relation-groups
// @Accept json
// @Produce json
// @Param group body service.CreateRelationGroupRequest true "Relation group data"
// @Success 201 {object} service.RelationGroupResponse "Relation group created"
// @Failure 400 {object} ErrorResponse "Invalid request body"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /relation-groups [post]
func (h *RelationGroupHandler) CreateGroup(c *gin.Context) {
	var req service.CreateRelationGroupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	group, err := h.service.CreateGroup(&req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, group)
}

// GetGroup retrieves a relation group by ID
// @Summary Get relation group by ID
// @Tags relation-groups
// @Produce json
// @Param id path int true "Relation group ID"
// @Success 200 {object} service.RelationGroupResponse "Relation group"
// @Failure 400 {object} ErrorResponse "Invalid relation group ID"
// @Failure 404 {object} ErrorResponse "Relation group not found"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /relation-groups/{id} [get]
func (h *RelationGroupHandler) GetGroup(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	group, err := h.service.GetGroupByID(id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, group)
}

// ListGroups lists relation groups in display order
// @Summary List relation groups
// @Tags relation-groups
// @Produce json
// @Param page query int false "Page number" default(1)
// @Param page_size query int false "Page size" default(20)
// @Success 200 {object} service.RelationGroupListResponse "Relation groups"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /relation-groups [get]
func (h *RelationGroupHandler) ListGroups(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("page_size", "20"))

	groups, err := h.service.GetAllGroups(page, pageSize)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, groups)
}

// UpdateGroup applies a partial update to a relation group
// @Summary Update a relation group
// @Tags relation-groups
// @Accept json
// @Produce json
// @Param id path int true "Relation group ID"
// @Param group body service.UpdateRelationGroupRequest true "Fields to update"
// @Success 200 {object} service.RelationGroupResponse "Updated relation group"
// @Failure 400 {object} ErrorResponse "Invalid request"
// @Failure 404 {object} ErrorResponse "Relation group not found"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /relation-groups/{id} [put]
func (h *RelationGroupHandler) UpdateGroup(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	var req service.UpdateRelationGroupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	group, err := h.service.UpdateGroup(id, &req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, group)
}

// DeleteGroup removes a relation group
// @Summary Delete a relation group
// @Description Delete a relation group. A group still used by relations is refused unless cascade=true, which also removes those relations.
// @Tags relation-groups
// @Produce json
// @Param id path int true "Relation group ID"
// @Param cascade query bool false "Delete the group's relations as well"
// @Success 204 "Relation group deleted"
// @Failure 400 {object} ErrorResponse "Invalid relation group ID"
// @Failure 404 {object} ErrorResponse "Relation group not found"
// @Failure 409 {object} ErrorResponse "Relation group still in use"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /relation-groups/{id} [delete]
func (h *RelationGroupHandler) DeleteGroup(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	cascade, err := strconv.ParseBool(c.DefaultQuery("cascade", "false"))
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid cascade flag"})
		return
	}

	if err := h.service.DeleteGroup(id, cascade); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
