package service

import (
	"errors"
	"fmt"
	"time"

	"product-relations-backend/internal/database/models"
	apperrors "product-relations-backend/internal/errors"
	"product-relations-backend/internal/repository"

	"github.com/go-playground/validator/v10"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// ProductService maintains the local catalog mirror
type ProductService struct {
	repo      repository.ProductRepositoryInterface
	validator *validator.Validate
}

// Ensure ProductService implements ProductServiceInterface
var _ ProductServiceInterface = (*ProductService)(nil)

// NewProductService creates a new product service
func NewProductService(repo repository.ProductRepositoryInterface, validator *validator.Validate) *ProductService {
	return &ProductService{
		repo:      repo,
		validator: validator,
	}
}

// UpsertProductRequest carries the catalog fields mirrored for a product
type UpsertProductRequest struct {
	Name       string            `json:"name" validate:"required,min=1,max=255"`
	Permalink  string            `json:"permalink" validate:"omitempty,url,max=2000"`
	Images     map[string]string `json:"images" validate:"omitempty,dive,keys,required,max=50,endkeys,url"`
	Attributes map[uint64]string `json:"attributes" validate:"omitempty,dive,max=255"`
}

// ProductResponse represents a mirrored catalog product
type ProductResponse struct {
	ID         uint64            `json:"id"`
	Name       string            `json:"name"`
	Permalink  string            `json:"permalink"`
	Images     map[string]string `json:"images"`
	Attributes map[uint64]string `json:"attributes,omitempty"`
	UpdatedAt  time.Time         `json:"updated_at"`
}

// UpsertProduct creates or refreshes the mirror of product id together with
// the attribute values given in the request
func (s *ProductService) UpsertProduct(id uint64, req *UpsertProductRequest) (*ProductResponse, error) {
	if id == 0 {
		return nil, apperrors.NewValidationError("id", "is required")
	}
	if err := s.validator.Struct(req); err != nil {
		return nil, validationFailed(err)
	}

	images := models.ImageSet{}
	for size, url := range req.Images {
		images[size] = url
	}

	product := &models.Product{
		ID:        id,
		Name:      req.Name,
		Permalink: req.Permalink,
		Images:    datatypes.NewJSONType(images),
	}
	if err := s.repo.Upsert(product); err != nil {
		return nil, fmt.Errorf("failed to upsert product: %w", err)
	}

	for attributeID, value := range req.Attributes {
		if err := s.repo.SetAttributeValue(id, attributeID, value); err != nil {
			return nil, fmt.Errorf("failed to set attribute %d: %w", attributeID, err)
		}
	}

	stored, err := s.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrProductNotFound
		}
		return nil, fmt.Errorf("failed to get product: %w", err)
	}

	return &ProductResponse{
		ID:         stored.ID,
		Name:       stored.Name,
		Permalink:  stored.Permalink,
		Images:     stored.Images.Data(),
		Attributes: req.Attributes,
		UpdatedAt:  stored.UpdatedAt,
	}, nil
}
