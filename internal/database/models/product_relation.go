package models

import (
	"time"
)

// ProductRelation is a directed edge between two products within a group.
// Every edge has a mirror (RelatedProductID -> ProductID) in the same group
// that references the same settings row.
type ProductRelation struct {
	ID               uint64    `json:"id" gorm:"primaryKey;autoIncrement"`
	ProductID        uint64    `json:"product_id" gorm:"not null;uniqueIndex:idx_product_relations_triple,priority:1"`
	RelatedProductID uint64    `json:"related_product_id" gorm:"not null;uniqueIndex:idx_product_relations_triple,priority:2;index"`
	GroupID          uint64    `json:"group_id" gorm:"not null;uniqueIndex:idx_product_relations_triple,priority:3;index"`
	SettingsID       *uint64   `json:"settings_id" gorm:"index"`
	SortOrder        int       `json:"sort_order" gorm:"not null;default:0"`
	CreatedAt        time.Time `json:"created_at"`

	// Relationships
	Group    *RelationGroup   `json:"group,omitempty" gorm:"foreignKey:GroupID;constraint:OnDelete:RESTRICT"`
	Settings *RelationSetting `json:"settings,omitempty" gorm:"foreignKey:SettingsID;constraint:OnDelete:SET NULL"`
}

// TableName returns the table name for ProductRelation
func (ProductRelation) TableName() string {
	return "product_relations"
}

// Mirror returns the reverse edge sharing group and settings. Sort order is
// per direction and starts at zero.
func (r *ProductRelation) Mirror() *ProductRelation {
	return &ProductRelation{
		ProductID:        r.RelatedProductID,
		RelatedProductID: r.ProductID,
		GroupID:          r.GroupID,
		SettingsID:       r.SettingsID,
	}
}

// SettingsData returns the shared override record, empty when none is attached
func (r *ProductRelation) SettingsData() RelationSettingsData {
	return r.Settings.Data()
}
