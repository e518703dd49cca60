package models

import (
	"time"
)

// PriceHistoryEntry is one row of the append-only price log
type PriceHistoryEntry struct {
	ID           uint64    `json:"id" gorm:"primaryKey;autoIncrement"`
	ProductID    uint64    `json:"product_id" gorm:"not null;index:idx_price_history_product_time,priority:1"`
	Price        float64   `json:"price" gorm:"type:numeric(15,4);not null"`
	RegularPrice *float64  `json:"regular_price" gorm:"type:numeric(15,4)"`
	Currency     string    `json:"currency" gorm:"size:3;not null;default:'EUR'"`
	RecordedAt   time.Time `json:"recorded_at" gorm:"not null;index:idx_price_history_product_time,priority:2"`
}

// TableName returns the table name for PriceHistoryEntry
func (PriceHistoryEntry) TableName() string {
	return "price_history_entries"
}
