package repository

import (
	"product-relations-backend/internal/database/models"

	"gorm.io/gorm"
)

// RelationGroupRepository handles database operations for relation groups.
// Groups are removed through RelationRepository.DeleteGroup, which guards
// the relations that reference them.
type RelationGroupRepository struct {
	db *gorm.DB
}

// NewRelationGroupRepository creates a new relation group repository
func NewRelationGroupRepository(db *gorm.DB) *RelationGroupRepository {
	return &RelationGroupRepository{db: db}
}

// Create creates a new relation group
func (r *RelationGroupRepository) Create(group *models.RelationGroup) error {
	return r.db.Create(group).Error
}

// GetByID retrieves a relation group by ID
func (r *RelationGroupRepository) GetByID(id uint64) (*models.RelationGroup, error) {
	var group models.RelationGroup
	err := r.db.First(&group, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &group, nil
}

// GetAll retrieves relation groups in display order with pagination
func (r *RelationGroupRepository) GetAll(limit, offset int) ([]models.RelationGroup, int64, error) {
	var groups []models.RelationGroup
	var total int64

	// Get total count
	if err := r.db.Model(&models.RelationGroup{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	// Get paginated results
	err := r.db.Order("sort_order ASC").Order("id ASC").Limit(limit).Offset(offset).Find(&groups).Error
	if err != nil {
		return nil, 0, err
	}

	return groups, total, nil
}

// Update updates a relation group using a map of updates
func (r *RelationGroupRepository) Update(id uint64, updates map[string]interface{}) error {
	result := r.db.Model(&models.RelationGroup{}).Where("id = ?", id).Updates(updates)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// CountRelations counts the directed edges that reference a group
func (r *RelationGroupRepository) CountRelations(id uint64) (int64, error) {
	var count int64
	err := r.db.Model(&models.ProductRelation{}).Where("group_id = ?", id).Count(&count).Error
	return count, err
}
