package service

import (
	"context"

	"product-relations-backend/internal/database/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mocks/service_mocks.go -package=mocks

// ProductGroupServiceInterface defines the read path that turns a product's
// relations into renderable groups
type ProductGroupServiceInterface interface {
	BuildGroups(ctx context.Context, productID uint64, displayCtx models.DisplayContext) ([]GroupView, error)
	GetProductLabel(productID, relatedProductID, groupID uint64) (string, error)
	GetProductSwatchImage(productID, relatedProductID, groupID uint64, size string, opts RenderOptions) (*ImageReference, error)
}

// RelationServiceInterface defines the administrative operations on relation pairs
type RelationServiceInterface interface {
	CreateRelation(req *CreateRelationRequest) (*RelationPairResponse, error)
	DeleteRelation(req *DeleteRelationRequest) error
	GetRelations(productID uint64, displayCtx models.DisplayContext) ([]RelationResponse, error)
	SetRelationSettings(req *SetRelationSettingsRequest) (*SettingsResponse, error)
	UpdateSettings(settingsID uint64, req *UpdateSettingsRequest) (*SettingsResponse, error)
	ReorderRelations(productID, groupID uint64, req *ReorderRelationsRequest) error
}

// RelationGroupServiceInterface defines the interface for relation group service
type RelationGroupServiceInterface interface {
	CreateGroup(req *CreateRelationGroupRequest) (*RelationGroupResponse, error)
	GetGroupByID(id uint64) (*RelationGroupResponse, error)
	GetAllGroups(page, pageSize int) (*RelationGroupListResponse, error)
	UpdateGroup(id uint64, req *UpdateRelationGroupRequest) (*RelationGroupResponse, error)
	DeleteGroup(id uint64, cascade bool) error
}

// PriceHistoryServiceInterface defines the interface for price history service
type PriceHistoryServiceInterface interface {
	RecordPrice(productID uint64, req *RecordPriceRequest) (*RecordPriceResponse, error)
	LowestPrice(productID uint64, days int) (*LowestPriceResponse, error)
	GetHistory(productID uint64, page, pageSize int) (*PriceHistoryListResponse, error)
	PurgeHistory(olderThanDays int) (*PurgeHistoryResponse, error)
}

// ProductServiceInterface defines the catalog mirror maintenance
type ProductServiceInterface interface {
	UpsertProduct(id uint64, req *UpsertProductRequest) (*ProductResponse, error)
}
