package repository

import (
	"errors"
	"time"

	"product-relations-backend/internal/database/models"

	"gorm.io/gorm"
)

// PriceHistoryRepository handles the append-only price log
type PriceHistoryRepository struct {
	db *gorm.DB
}

// NewPriceHistoryRepository creates a new price history repository
func NewPriceHistoryRepository(db *gorm.DB) *PriceHistoryRepository {
	return &PriceHistoryRepository{db: db}
}

// Record appends an entry to the log
func (r *PriceHistoryRepository) Record(entry *models.PriceHistoryEntry) error {
	if entry.RecordedAt.IsZero() {
		entry.RecordedAt = time.Now().UTC()
	}
	return r.db.Create(entry).Error
}

// Latest returns the most recent entry for a product, or nil when none exists
func (r *PriceHistoryRepository) Latest(productID uint64) (*models.PriceHistoryEntry, error) {
	var entry models.PriceHistoryEntry
	err := r.db.Where("product_id = ?", productID).
		Order("recorded_at DESC").Order("id DESC").
		First(&entry).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &entry, nil
}

// LowestSince returns the cheapest entry recorded at or after since, or nil
func (r *PriceHistoryRepository) LowestSince(productID uint64, since time.Time) (*models.PriceHistoryEntry, error) {
	var entry models.PriceHistoryEntry
	err := r.db.Where("product_id = ? AND recorded_at >= ?", productID, since).
		Order("price ASC").Order("recorded_at DESC").
		First(&entry).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &entry, nil
}

// LowestSinceMany returns the lowest price recorded at or after since for each
// of productIDs. Products without entries in the window are absent from the map.
func (r *PriceHistoryRepository) LowestSinceMany(productIDs []uint64, since time.Time) (map[uint64]float64, error) {
	lowest := make(map[uint64]float64, len(productIDs))
	if len(productIDs) == 0 {
		return lowest, nil
	}

	var rows []struct {
		ProductID uint64
		Price     float64
	}
	err := r.db.Model(&models.PriceHistoryEntry{}).
		Select("product_id, MIN(price) AS price").
		Where("product_id IN ? AND recorded_at >= ?", productIDs, since).
		Group("product_id").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	for _, row := range rows {
		lowest[row.ProductID] = row.Price
	}
	return lowest, nil
}

// GetByProduct lists a product's entries, newest first, with pagination
func (r *PriceHistoryRepository) GetByProduct(productID uint64, limit, offset int) ([]models.PriceHistoryEntry, int64, error) {
	var entries []models.PriceHistoryEntry
	var total int64

	if err := r.db.Model(&models.PriceHistoryEntry{}).Where("product_id = ?", productID).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := r.db.Where("product_id = ?", productID).
		Order("recorded_at DESC").Order("id DESC").
		Limit(limit).Offset(offset).
		Find(&entries).Error
	if err != nil {
		return nil, 0, err
	}

	return entries, total, nil
}

// PurgeBefore deletes entries older than before and reports how many were removed
func (r *PriceHistoryRepository) PurgeBefore(before time.Time) (int64, error) {
	result := r.db.Where("recorded_at < ?", before).Delete(&models.PriceHistoryEntry{})
	return result.RowsAffected, result.Error
}
