package repository

import (
	"time"

	"product-relations-backend/internal/database/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mocks/repository_mocks.go -package=mocks

// RelationRepositoryInterface defines the relation storage operations. It is the
// only writer of product_relations and relation_settings.
type RelationRepositoryInterface interface {
	CreateRelation(productID, relatedProductID, groupID uint64, settings *models.RelationSettingsData) (*RelationPair, error)
	DeleteRelation(productID, relatedProductID, groupID uint64) error
	GetRelationsForProduct(productID uint64, ctx models.DisplayContext) ([]models.ProductRelation, error)
	GetRelation(productID, relatedProductID, groupID uint64) (*models.ProductRelation, error)
	HasRelations(productID, groupID uint64) (bool, error)
	GetSettings(settingsID uint64) (*models.RelationSetting, error)
	UpdateSettings(settingsID uint64, data models.RelationSettingsData) error
	SetRelationSettings(productID, relatedProductID, groupID uint64, data models.RelationSettingsData) (*models.RelationSetting, error)
	ReorderRelations(productID, groupID uint64, relatedProductIDs []uint64) error
	DeleteGroup(groupID uint64, cascade bool) error
}

// RelationGroupRepositoryInterface defines the interface for relation group operations
type RelationGroupRepositoryInterface interface {
	Create(group *models.RelationGroup) error
	GetByID(id uint64) (*models.RelationGroup, error)
	GetAll(limit, offset int) ([]models.RelationGroup, int64, error)
	Update(id uint64, updates map[string]interface{}) error
	CountRelations(id uint64) (int64, error)
}

// ProductRepositoryInterface defines the catalog lookups used to render relation members
type ProductRepositoryInterface interface {
	GetByID(id uint64) (*models.Product, error)
	GetByIDs(ids []uint64) ([]models.Product, error)
	GetAttributeValue(productID, attributeID uint64) (string, error)
	Upsert(product *models.Product) error
	SetAttributeValue(productID, attributeID uint64, value string) error
}

// PriceHistoryRepositoryInterface defines the interface for the append-only price log
type PriceHistoryRepositoryInterface interface {
	Record(entry *models.PriceHistoryEntry) error
	Latest(productID uint64) (*models.PriceHistoryEntry, error)
	LowestSince(productID uint64, since time.Time) (*models.PriceHistoryEntry, error)
	LowestSinceMany(productIDs []uint64, since time.Time) (map[uint64]float64, error)
	GetByProduct(productID uint64, limit, offset int) ([]models.PriceHistoryEntry, int64, error)
	PurgeBefore(before time.Time) (int64, error)
}
