package service

import (
	"fmt"
	"time"

	"product-relations-backend/internal/database/models"
	"product-relations-backend/internal/repository"

	"github.com/go-playground/validator/v10"
)

// RelationService handles administrative changes to relation pairs
type RelationService struct {
	repo      repository.RelationRepositoryInterface
	validator *validator.Validate
}

// Ensure RelationService implements RelationServiceInterface
var _ RelationServiceInterface = (*RelationService)(nil)

// NewRelationService creates a new relation service
func NewRelationService(repo repository.RelationRepositoryInterface, validator *validator.Validate) *RelationService {
	return &RelationService{
		repo:      repo,
		validator: validator,
	}
}

// SettingsRequest is the per-pair override record accepted by the API
type SettingsRequest struct {
	CustomLabel string `json:"custom_label" validate:"max=200"`
	CustomImage string `json:"custom_image" validate:"omitempty,url,max=2000"`
}

func (r *SettingsRequest) data() models.RelationSettingsData {
	return models.RelationSettingsData{CustomLabel: r.CustomLabel, CustomImage: r.CustomImage}
}

// CreateRelationRequest represents the request to relate two products
type CreateRelationRequest struct {
	ProductID        uint64           `json:"product_id" validate:"required"`
	RelatedProductID uint64           `json:"related_product_id" validate:"required"`
	GroupID          uint64           `json:"group_id" validate:"required"`
	Settings         *SettingsRequest `json:"settings,omitempty"`
}

// DeleteRelationRequest represents the request to remove a relation pair
type DeleteRelationRequest struct {
	ProductID        uint64 `json:"product_id" form:"product_id" validate:"required"`
	RelatedProductID uint64 `json:"related_product_id" form:"related_product_id" validate:"required"`
	GroupID          uint64 `json:"group_id" form:"group_id" validate:"required"`
}

// SetRelationSettingsRequest attaches overrides to an existing pair
type SetRelationSettingsRequest struct {
	ProductID        uint64          `json:"product_id" validate:"required"`
	RelatedProductID uint64          `json:"related_product_id" validate:"required"`
	GroupID          uint64          `json:"group_id" validate:"required"`
	Settings         SettingsRequest `json:"settings"`
}

// UpdateSettingsRequest replaces the data of a settings row
type UpdateSettingsRequest struct {
	SettingsRequest
}

// ReorderRelationsRequest lists a product's related ids in their new order
type ReorderRelationsRequest struct {
	RelatedProductIDs []uint64 `json:"related_product_ids" validate:"required,min=1,dive,required"`
}

// RelationPairResponse describes a stored relation pair
type RelationPairResponse struct {
	ID               uint64  `json:"id"`
	ProductID        uint64  `json:"product_id"`
	RelatedProductID uint64  `json:"related_product_id"`
	GroupID          uint64  `json:"group_id"`
	SettingsID       *uint64 `json:"settings_id"`
	Created          bool    `json:"created"`
}

// RelationResponse represents one directed relation row
type RelationResponse struct {
	ID               uint64                      `json:"id"`
	ProductID        uint64                      `json:"product_id"`
	RelatedProductID uint64                      `json:"related_product_id"`
	GroupID          uint64                      `json:"group_id"`
	GroupName        string                      `json:"group_name"`
	SortOrder        int                         `json:"sort_order"`
	SettingsID       *uint64                     `json:"settings_id"`
	Settings         models.RelationSettingsData `json:"settings"`
	CreatedAt        time.Time                   `json:"created_at"`
}

// SettingsResponse represents a shared settings row
type SettingsResponse struct {
	ID          uint64 `json:"id"`
	CustomLabel string `json:"custom_label"`
	CustomImage string `json:"custom_image"`
}

// CreateRelation relates two products in both directions
func (s *RelationService) CreateRelation(req *CreateRelationRequest) (*RelationPairResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, validationFailed(err)
	}

	var settings *models.RelationSettingsData
	if req.Settings != nil {
		data := req.Settings.data()
		if !data.IsEmpty() {
			settings = &data
		}
	}

	pair, err := s.repo.CreateRelation(req.ProductID, req.RelatedProductID, req.GroupID, settings)
	if err != nil {
		return nil, err
	}

	return &RelationPairResponse{
		ID:               pair.ID,
		ProductID:        req.ProductID,
		RelatedProductID: req.RelatedProductID,
		GroupID:          req.GroupID,
		SettingsID:       pair.SettingsID,
		Created:          pair.Created,
	}, nil
}

// DeleteRelation removes a relation pair; removing an absent pair succeeds
func (s *RelationService) DeleteRelation(req *DeleteRelationRequest) error {
	if err := s.validator.Struct(req); err != nil {
		return validationFailed(err)
	}
	return s.repo.DeleteRelation(req.ProductID, req.RelatedProductID, req.GroupID)
}

// GetRelations lists the relation rows leaving productID
func (s *RelationService) GetRelations(productID uint64, displayCtx models.DisplayContext) ([]RelationResponse, error) {
	relations, err := s.repo.GetRelationsForProduct(productID, displayCtx)
	if err != nil {
		return nil, err
	}

	responses := make([]RelationResponse, len(relations))
	for i := range relations {
		responses[i] = toRelationResponse(&relations[i])
	}
	return responses, nil
}

// SetRelationSettings stores overrides shared by both directions of a pair
func (s *RelationService) SetRelationSettings(req *SetRelationSettingsRequest) (*SettingsResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, validationFailed(err)
	}

	setting, err := s.repo.SetRelationSettings(req.ProductID, req.RelatedProductID, req.GroupID, req.Settings.data())
	if err != nil {
		return nil, err
	}
	return toSettingsResponse(setting.ID, setting.Data()), nil
}

// UpdateSettings replaces a settings row by id
func (s *RelationService) UpdateSettings(settingsID uint64, req *UpdateSettingsRequest) (*SettingsResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, validationFailed(err)
	}

	data := req.data()
	if err := s.repo.UpdateSettings(settingsID, data); err != nil {
		return nil, err
	}
	return toSettingsResponse(settingsID, data), nil
}

// ReorderRelations sets the order of productID's members within a group
func (s *RelationService) ReorderRelations(productID, groupID uint64, req *ReorderRelationsRequest) error {
	if err := s.validator.Struct(req); err != nil {
		return validationFailed(err)
	}

	seen := make(map[uint64]bool, len(req.RelatedProductIDs))
	for _, id := range req.RelatedProductIDs {
		if seen[id] {
			return validationFailed(fmt.Errorf("related product %d listed twice", id))
		}
		seen[id] = true
	}

	return s.repo.ReorderRelations(productID, groupID, req.RelatedProductIDs)
}

func toRelationResponse(relation *models.ProductRelation) RelationResponse {
	response := RelationResponse{
		ID:               relation.ID,
		ProductID:        relation.ProductID,
		RelatedProductID: relation.RelatedProductID,
		GroupID:          relation.GroupID,
		SortOrder:        relation.SortOrder,
		SettingsID:       relation.SettingsID,
		Settings:         relation.SettingsData(),
		CreatedAt:        relation.CreatedAt,
	}
	if relation.Group != nil {
		response.GroupName = relation.Group.Name
	}
	return response
}

func toSettingsResponse(id uint64, data models.RelationSettingsData) *SettingsResponse {
	return &SettingsResponse{
		ID:          id,
		CustomLabel: data.CustomLabel,
		CustomImage: data.CustomImage,
	}
}
