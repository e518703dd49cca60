package testutils

import (
	"fmt"
	"sync/atomic"

	"product-relations-backend/internal/database/models"

	"gorm.io/datatypes"
)

// productSeq hands out catalog ids; catalog ids come from the commerce platform
// so tests pick them instead of the database.
var productSeq uint64 = 1000

// NextProductID returns a fresh catalog product id
func NextProductID() uint64 {
	return atomic.AddUint64(&productSeq, 1)
}

// RelationGroupFactory provides methods to create test RelationGroup data
type RelationGroupFactory struct{}

// NewRelationGroupFactory creates a new RelationGroupFactory
func NewRelationGroupFactory() *RelationGroupFactory {
	return &RelationGroupFactory{}
}

// Create creates a test RelationGroup with default values
func (f *RelationGroupFactory) Create() *models.RelationGroup {
	return &models.RelationGroup{
		Name:                "Color",
		DisplayOnList:       true,
		DisplayStyleSingle:  models.DisplayStyleImageProduct,
		DisplayStyleArchive: models.DisplayStyleText,
	}
}

// WithName sets a custom name for the group
func (f *RelationGroupFactory) WithName(name string) *models.RelationGroup {
	group := f.Create()
	group.Name = name
	return group
}

// WithSortOrder creates a group with a custom sort order
func (f *RelationGroupFactory) WithSortOrder(name string, sortOrder int) *models.RelationGroup {
	group := f.WithName(name)
	group.SortOrder = sortOrder
	return group
}

// WithAttribute binds the group to an attribute taxonomy
func (f *RelationGroupFactory) WithAttribute(name string, attributeID uint64) *models.RelationGroup {
	group := f.WithName(name)
	group.AttributeID = &attributeID
	return group
}

// HiddenOnList creates a group that only shows on single product pages
func (f *RelationGroupFactory) HiddenOnList(name string) *models.RelationGroup {
	group := f.WithName(name)
	group.DisplayOnList = false
	return group
}

// ProductFactory provides methods to create test catalog products
type ProductFactory struct{}

// NewProductFactory creates a new ProductFactory
func NewProductFactory() *ProductFactory {
	return &ProductFactory{}
}

// Create creates a test Product with a fresh id and default images
func (f *ProductFactory) Create() *models.Product {
	id := NextProductID()
	return &models.Product{
		ID:        id,
		Name:      fmt.Sprintf("Product %d", id),
		Permalink: fmt.Sprintf("https://shop.example.com/product/%d", id),
		Images: datatypes.NewJSONType(models.ImageSet{
			"thumbnail":          fmt.Sprintf("https://cdn.example.com/%d-150x150.jpg", id),
			models.ImageSizeFull: fmt.Sprintf("https://cdn.example.com/%d.jpg", id),
		}),
	}
}

// WithName creates a product with a custom name
func (f *ProductFactory) WithName(name string) *models.Product {
	product := f.Create()
	product.Name = name
	return product
}

// SettingsFactory provides relation settings records
type SettingsFactory struct{}

// NewSettingsFactory creates a new SettingsFactory
func NewSettingsFactory() *SettingsFactory {
	return &SettingsFactory{}
}

// Create returns a settings record with a label and image override
func (f *SettingsFactory) Create() *models.RelationSettingsData {
	return &models.RelationSettingsData{
		CustomLabel: "Ocean Blue",
		CustomImage: "https://cdn.example.com/swatches/ocean-blue.png",
	}
}

// WithLabel returns a settings record carrying only a label override
func (f *SettingsFactory) WithLabel(label string) *models.RelationSettingsData {
	return &models.RelationSettingsData{CustomLabel: label}
}

// FactorySet provides access to all factories
type FactorySet struct {
	Group    *RelationGroupFactory
	Product  *ProductFactory
	Settings *SettingsFactory
}

// NewFactorySet creates a new FactorySet with all factories initialized
func NewFactorySet() *FactorySet {
	return &FactorySet{
		Group:    NewRelationGroupFactory(),
		Product:  NewProductFactory(),
		Settings: NewSettingsFactory(),
	}
}
