package models

import (
	"time"

	"gorm.io/datatypes"
)

// ImageSizeFull is the fallback image size every catalog product should carry
const ImageSizeFull = "full"

// ImageSet maps an image size name to its URL
type ImageSet map[string]string

// Product is the local mirror of a commerce-platform product. Its ID is the
// platform's identifier and is never generated here.
type Product struct {
	ID        uint64                       `json:"id" gorm:"primaryKey;autoIncrement:false"`
	Name      string                       `json:"name" gorm:"size:255;not null" validate:"required,min=1,max=255"`
	Permalink string                       `json:"permalink" gorm:"size:2000" validate:"omitempty,url,max=2000"`
	Images    datatypes.JSONType[ImageSet] `json:"images"`
	CreatedAt time.Time                    `json:"created_at"`
	UpdatedAt time.Time                    `json:"updated_at"`

	Attributes []ProductAttributeValue `json:"attributes,omitempty" gorm:"foreignKey:ProductID;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for Product
func (Product) TableName() string {
	return "products"
}

// ImageURL returns the image for size, falling back to the full size
func (p *Product) ImageURL(size string) string {
	images := p.Images.Data()
	if url := images[size]; url != "" {
		return url
	}
	return images[ImageSizeFull]
}

// ProductAttributeValue is the value a product carries for one attribute taxonomy
type ProductAttributeValue struct {
	ID          uint64 `json:"id" gorm:"primaryKey;autoIncrement"`
	ProductID   uint64 `json:"product_id" gorm:"not null;uniqueIndex:idx_product_attribute,priority:1"`
	AttributeID uint64 `json:"attribute_id" gorm:"not null;uniqueIndex:idx_product_attribute,priority:2"`
	Value       string `json:"value" gorm:"size:255;not null"`
}

// TableName returns the table name for ProductAttributeValue
func (ProductAttributeValue) TableName() string {
	return "product_attribute_values"
}
