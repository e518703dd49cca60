package repository

import (
	"errors"

	"product-relations-backend/internal/database/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// ProductRepository reads and maintains the local catalog mirror
type ProductRepository struct {
	db *gorm.DB
}

// NewProductRepository creates a new product repository
func NewProductRepository(db *gorm.DB) *ProductRepository {
	return &ProductRepository{db: db}
}

// GetByID retrieves a product by ID
func (r *ProductRepository) GetByID(id uint64) (*models.Product, error) {
	var product models.Product
	err := r.db.First(&product, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &product, nil
}

// GetByIDs retrieves the products that exist among ids
func (r *ProductRepository) GetByIDs(ids []uint64) ([]models.Product, error) {
	var products []models.Product
	if len(ids) == 0 {
		return products, nil
	}
	err := r.db.Where("id IN ?", ids).Find(&products).Error
	return products, err
}

// GetAttributeValue returns the product's value for an attribute, or "" when unset
func (r *ProductRepository) GetAttributeValue(productID, attributeID uint64) (string, error) {
	var value models.ProductAttributeValue
	err := r.db.Where("product_id = ? AND attribute_id = ?", productID, attributeID).First(&value).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", nil
		}
		return "", err
	}
	return value.Value, nil
}

// Upsert inserts the product or overwrites the mirrored fields of an existing one
func (r *ProductRepository) Upsert(product *models.Product) error {
	return r.db.Omit("Attributes").Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "id"}},
		DoUpdates: clause.AssignmentColumns([]string{"name", "permalink", "images", "updated_at"}),
	}).Create(product).Error
}

// SetAttributeValue stores the product's value for an attribute
func (r *ProductRepository) SetAttributeValue(productID, attributeID uint64, value string) error {
	return r.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "product_id"}, {Name: "attribute_id"}},
		DoUpdates: clause.AssignmentColumns([]string{"value"}),
	}).Create(&models.ProductAttributeValue{
		ProductID:   productID,
		AttributeID: attributeID,
		Value:       value,
	}).Error
}
