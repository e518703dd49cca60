package service

import (
	"errors"
	"fmt"
	"time"

	"product-relations-backend/internal/database/models"
	apperrors "product-relations-backend/internal/errors"
	"product-relations-backend/internal/repository"

	"github.com/go-playground/validator/v10"
	"gorm.io/gorm"
)

// RelationGroupService handles business logic for relation groups
type RelationGroupService struct {
	repo      repository.RelationGroupRepositoryInterface
	relations repository.RelationRepositoryInterface
	validator *validator.Validate
}

// Ensure RelationGroupService implements RelationGroupServiceInterface
var _ RelationGroupServiceInterface = (*RelationGroupService)(nil)

// NewRelationGroupService creates a new relation group service
func NewRelationGroupService(repo repository.RelationGroupRepositoryInterface, relations repository.RelationRepositoryInterface, validator *validator.Validate) *RelationGroupService {
	return &RelationGroupService{
		repo:      repo,
		relations: relations,
		validator: validator,
	}
}

// CreateRelationGroupRequest represents the request to create a relation group
type CreateRelationGroupRequest struct {
	Name                string  `json:"name" validate:"required,min=1,max=200"`
	AttributeID         *uint64 `json:"attribute_id"`
	DisplayOnList       bool    `json:"display_on_list"`
	DisplayStyleSingle  string  `json:"display_style_single" validate:"omitempty,oneof=image_product image_custom text dropdown"`
	DisplayStyleArchive string  `json:"display_style_archive" validate:"omitempty,oneof=image_product image_custom text dropdown"`
	SortOrder           int     `json:"sort_order"`
}

// UpdateRelationGroupRequest represents a partial update of a relation group
type UpdateRelationGroupRequest struct {
	Name                *string `json:"name,omitempty" validate:"omitempty,min=1,max=200"`
	AttributeID         *uint64 `json:"attribute_id,omitempty"`
	ClearAttribute      bool    `json:"clear_attribute,omitempty"`
	DisplayOnList       *bool   `json:"display_on_list,omitempty"`
	DisplayStyleSingle  *string `json:"display_style_single,omitempty" validate:"omitempty,oneof=image_product image_custom text dropdown"`
	DisplayStyleArchive *string `json:"display_style_archive,omitempty" validate:"omitempty,oneof=image_product image_custom text dropdown"`
	SortOrder           *int    `json:"sort_order,omitempty"`
}

// RelationGroupResponse represents the response for relation group operations
type RelationGroupResponse struct {
	ID                  uint64              `json:"id"`
	Name                string              `json:"name"`
	AttributeID         *uint64             `json:"attribute_id"`
	DisplayOnList       bool                `json:"display_on_list"`
	DisplayStyleSingle  models.DisplayStyle `json:"display_style_single"`
	DisplayStyleArchive models.DisplayStyle `json:"display_style_archive"`
	SortOrder           int                 `json:"sort_order"`
	CreatedAt           time.Time           `json:"created_at"`
	UpdatedAt           time.Time           `json:"updated_at"`
}

// RelationGroupListResponse represents a paginated list of relation groups
type RelationGroupListResponse struct {
	Groups   []RelationGroupResponse `json:"groups"`
	Total    int64                   `json:"total"`
	Page     int                     `json:"page"`
	PageSize int                     `json:"page_size"`
}

// CreateGroup creates a new relation group
func (s *RelationGroupService) CreateGroup(req *CreateRelationGroupRequest) (*RelationGroupResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, validationFailed(err)
	}

	group := &models.RelationGroup{
		Name:                req.Name,
		AttributeID:         req.AttributeID,
		DisplayOnList:       req.DisplayOnList,
		DisplayStyleSingle:  styleOrDefault(req.DisplayStyleSingle),
		DisplayStyleArchive: styleOrDefault(req.DisplayStyleArchive),
		SortOrder:           req.SortOrder,
	}

	if err := s.repo.Create(group); err != nil {
		return nil, fmt.Errorf("failed to create relation group: %w", err)
	}

	return s.toResponse(group), nil
}

// GetGroupByID retrieves a relation group by ID
func (s *RelationGroupService) GetGroupByID(id uint64) (*RelationGroupResponse, error) {
	group, err := s.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrRelationGroupNotFound
		}
		return nil, fmt.Errorf("failed to get relation group: %w", err)
	}
	return s.toResponse(group), nil
}

// GetAllGroups retrieves relation groups in display order with pagination
func (s *RelationGroupService) GetAllGroups(page, pageSize int) (*RelationGroupListResponse, error) {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 || pageSize > 100 {
		pageSize = 20
	}

	offset := (page - 1) * pageSize
	groups, total, err := s.repo.GetAll(pageSize, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to get relation groups: %w", err)
	}

	responses := make([]RelationGroupResponse, len(groups))
	for i := range groups {
		responses[i] = *s.toResponse(&groups[i])
	}

	return &RelationGroupListResponse{
		Groups:   responses,
		Total:    total,
		Page:     page,
		PageSize: pageSize,
	}, nil
}

// UpdateGroup applies the fields present in req to a relation group
func (s *RelationGroupService) UpdateGroup(id uint64, req *UpdateRelationGroupRequest) (*RelationGroupResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, validationFailed(err)
	}

	updates := map[string]interface{}{}
	if req.Name != nil {
		updates["name"] = *req.Name
	}
	if req.ClearAttribute {
		updates["attribute_id"] = nil
	} else if req.AttributeID != nil {
		updates["attribute_id"] = *req.AttributeID
	}
	if req.DisplayOnList != nil {
		updates["display_on_list"] = *req.DisplayOnList
	}
	if req.DisplayStyleSingle != nil {
		updates["display_style_single"] = styleOrDefault(*req.DisplayStyleSingle)
	}
	if req.DisplayStyleArchive != nil {
		updates["display_style_archive"] = styleOrDefault(*req.DisplayStyleArchive)
	}
	if req.SortOrder != nil {
		updates["sort_order"] = *req.SortOrder
	}

	if len(updates) > 0 {
		if err := s.repo.Update(id, updates); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, apperrors.ErrRelationGroupNotFound
			}
			return nil, fmt.Errorf("failed to update relation group: %w", err)
		}
	}

	return s.GetGroupByID(id)
}

// DeleteGroup removes a relation group. A group with relations is refused
// unless cascade is set.
func (s *RelationGroupService) DeleteGroup(id uint64, cascade bool) error {
	return s.relations.DeleteGroup(id, cascade)
}

func (s *RelationGroupService) toResponse(group *models.RelationGroup) *RelationGroupResponse {
	return &RelationGroupResponse{
		ID:                  group.ID,
		Name:                group.Name,
		AttributeID:         group.AttributeID,
		DisplayOnList:       group.DisplayOnList,
		DisplayStyleSingle:  group.DisplayStyleSingle,
		DisplayStyleArchive: group.DisplayStyleArchive,
		SortOrder:           group.SortOrder,
		CreatedAt:           group.CreatedAt,
		UpdatedAt:           group.UpdatedAt,
	}
}

func styleOrDefault(style string) models.DisplayStyle {
	s := models.DisplayStyle(style)
	if !s.IsValid() {
		return models.DefaultDisplayStyle
	}
	return s
}
