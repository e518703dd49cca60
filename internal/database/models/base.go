package models

import (
	"time"
)

// BaseModel provides common fields for all models with numeric primary keys.
// Identifiers are 64-bit everywhere, including references to relation groups.
type BaseModel struct {
	ID        uint64    `json:"id" gorm:"primaryKey;autoIncrement"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
