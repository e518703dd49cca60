package models

import (
	"gorm.io/datatypes"
)

// RelationSettingsData is the override record shared by both directions of a
// relation pair.
type RelationSettingsData struct {
	CustomLabel string `json:"custom_label,omitempty" validate:"max=200"`
	CustomImage string `json:"custom_image,omitempty" validate:"omitempty,url,max=2000"`
}

// IsEmpty reports whether no override is set
func (d RelationSettingsData) IsEmpty() bool {
	return d.CustomLabel == "" && d.CustomImage == ""
}

// RelationSetting stores one RelationSettingsData row referenced by a mirrored pair
type RelationSetting struct {
	BaseModel
	Settings datatypes.JSONType[RelationSettingsData] `json:"settings"`
}

// TableName returns the table name for RelationSetting
func (RelationSetting) TableName() string {
	return "relation_settings"
}

// NewRelationSetting builds a settings row from its data
func NewRelationSetting(data RelationSettingsData) *RelationSetting {
	return &RelationSetting{Settings: datatypes.NewJSONType(data)}
}

// Data returns the typed settings record
func (s *RelationSetting) Data() RelationSettingsData {
	if s == nil {
		return RelationSettingsData{}
	}
	return s.Settings.Data()
}
