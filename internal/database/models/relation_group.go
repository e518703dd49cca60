package models

// RelationGroup is an attribute-based category ("Color", "Size") that governs
// how a set of mutually related products is displayed.
type RelationGroup struct {
	BaseModel
	Name                string       `json:"name" gorm:"size:200;not null" validate:"required,min=1,max=200"`
	AttributeID         *uint64      `json:"attribute_id" gorm:"index"`
	DisplayOnList       bool         `json:"display_on_list" gorm:"not null;default:false"`
	DisplayStyleSingle  DisplayStyle `json:"display_style_single" gorm:"type:varchar(20);not null;default:'image_product'"`
	DisplayStyleArchive DisplayStyle `json:"display_style_archive" gorm:"type:varchar(20);not null;default:'image_product'"`
	SortOrder           int          `json:"sort_order" gorm:"not null;default:0"`
}

// TableName returns the table name for RelationGroup
func (RelationGroup) TableName() string {
	return "relation_groups"
}

// StyleFor returns the display style configured for the given context
func (g *RelationGroup) StyleFor(ctx DisplayContext) DisplayStyle {
	style := g.DisplayStyleSingle
	if ctx == ContextListing {
		style = g.DisplayStyleArchive
	}
	if !style.IsValid() {
		return DefaultDisplayStyle
	}
	return style
}

// VisibleIn reports whether the group's switch UI appears in the given context
func (g *RelationGroup) VisibleIn(ctx DisplayContext) bool {
	return ctx != ContextListing || g.DisplayOnList
}
