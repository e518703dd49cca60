package repository

import (
	"errors"

	"product-relations-backend/internal/database/models"
	apperrors "product-relations-backend/internal/errors"

	"gorm.io/datatypes"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// RelationPair identifies both rows of a mirrored relation. ID is the smaller
// of the two row ids, so it does not depend on the direction used to create it.
type RelationPair struct {
	ID         uint64  `json:"id"`
	ForwardID  uint64  `json:"forward_id"`
	ReverseID  uint64  `json:"reverse_id"`
	SettingsID *uint64 `json:"settings_id"`
	Created    bool    `json:"created"`
}

func newRelationPair(forward, reverse *models.ProductRelation, created bool) *RelationPair {
	id := forward.ID
	if reverse.ID < id {
		id = reverse.ID
	}
	return &RelationPair{
		ID:         id,
		ForwardID:  forward.ID,
		ReverseID:  reverse.ID,
		SettingsID: forward.SettingsID,
		Created:    created,
	}
}

// RelationRepository handles database operations for product relations and
// their shared settings. Every mutation runs in a single transaction.
type RelationRepository struct {
	db *gorm.DB
}

// NewRelationRepository creates a new relation repository
func NewRelationRepository(db *gorm.DB) *RelationRepository {
	return &RelationRepository{db: db}
}

// CreateRelation stores the edge productID -> relatedProductID and its mirror.
// Creating an existing pair is not an error: the existing pair is returned.
func (r *RelationRepository) CreateRelation(productID, relatedProductID, groupID uint64, settings *models.RelationSettingsData) (*RelationPair, error) {
	if err := validateEdge(productID, relatedProductID, groupID); err != nil {
		return nil, err
	}

	var pair *RelationPair
	err := r.db.Transaction(func(tx *gorm.DB) error {
		// The group must outlive the insert; a concurrent cascade delete waits.
		if err := lockGroup(tx, groupID, clause.LockingStrengthShare); err != nil {
			return err
		}

		forward, err := findEdge(tx, productID, relatedProductID, groupID)
		if err != nil {
			return err
		}
		reverse, err := findEdge(tx, relatedProductID, productID, groupID)
		if err != nil {
			return err
		}

		// Existing or half-existing pair: complete it, never duplicate it.
		switch {
		case forward != nil && reverse != nil:
			pair = newRelationPair(forward, reverse, false)
			return nil
		case forward != nil:
			reverse = forward.Mirror()
			if err := tx.Create(reverse).Error; err != nil {
				return err
			}
			pair = newRelationPair(forward, reverse, true)
			return nil
		case reverse != nil:
			forward = reverse.Mirror()
			if err := tx.Create(forward).Error; err != nil {
				return err
			}
			pair = newRelationPair(forward, reverse, true)
			return nil
		}

		var settingsID *uint64
		if settings != nil {
			row := models.NewRelationSetting(*settings)
			if err := tx.Create(row).Error; err != nil {
				return err
			}
			settingsID = &row.ID
		}

		forward = &models.ProductRelation{
			ProductID:        productID,
			RelatedProductID: relatedProductID,
			GroupID:          groupID,
			SettingsID:       settingsID,
		}
		if err := tx.Create(forward).Error; err != nil {
			return err
		}
		reverse = forward.Mirror()
		if err := tx.Create(reverse).Error; err != nil {
			return err
		}

		pair = newRelationPair(forward, reverse, true)
		return nil
	})
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		// A concurrent writer stored the same triple first; report its pair.
		return r.existingPair(productID, relatedProductID, groupID, err)
	}
	if err != nil {
		return nil, wrapStorage("create relation", err)
	}
	return pair, nil
}

func (r *RelationRepository) existingPair(productID, relatedProductID, groupID uint64, cause error) (*RelationPair, error) {
	forward, err := findEdge(r.db, productID, relatedProductID, groupID)
	if err != nil {
		return nil, wrapStorage("create relation", err)
	}
	reverse, err := findEdge(r.db, relatedProductID, productID, groupID)
	if err != nil {
		return nil, wrapStorage("create relation", err)
	}
	if forward == nil || reverse == nil {
		return nil, wrapStorage("create relation", cause)
	}
	return newRelationPair(forward, reverse, false), nil
}

// DeleteRelation removes both directions of a pair and its settings row.
// Deleting a pair that does not exist is a no-op.
func (r *RelationRepository) DeleteRelation(productID, relatedProductID, groupID uint64) error {
	err := r.db.Transaction(func(tx *gorm.DB) error {
		var edges []models.ProductRelation
		err := tx.Where(
			"group_id = ? AND ((product_id = ? AND related_product_id = ?) OR (product_id = ? AND related_product_id = ?))",
			groupID, productID, relatedProductID, relatedProductID, productID,
		).Find(&edges).Error
		if err != nil {
			return err
		}
		if len(edges) == 0 {
			return nil
		}

		ids := make([]uint64, 0, len(edges))
		var settingsIDs []uint64
		for _, edge := range edges {
			ids = append(ids, edge.ID)
			if edge.SettingsID != nil {
				settingsIDs = append(settingsIDs, *edge.SettingsID)
			}
		}

		if err := tx.Delete(&models.ProductRelation{}, ids).Error; err != nil {
			return err
		}
		return deleteOrphanSettings(tx, settingsIDs)
	})
	return wrapStorage("delete relation", err)
}

// GetRelationsForProduct returns every edge leaving productID with its group and
// settings loaded. The listing context drops groups not shown on lists.
// Rows are ordered by group sort order, relation sort order, then id.
func (r *RelationRepository) GetRelationsForProduct(productID uint64, ctx models.DisplayContext) ([]models.ProductRelation, error) {
	if !ctx.IsValid() {
		return nil, apperrors.ErrInvalidContext
	}

	query := r.db.Model(&models.ProductRelation{}).
		Select("product_relations.*").
		Joins("JOIN relation_groups rg ON rg.id = product_relations.group_id").
		Where("product_relations.product_id = ?", productID)
	if ctx == models.ContextListing {
		query = query.Where("rg.display_on_list = ?", true)
	}

	var relations []models.ProductRelation
	err := query.
		Preload("Group").
		Preload("Settings").
		Order("rg.sort_order ASC").
		Order("product_relations.sort_order ASC").
		Order("product_relations.id ASC").
		Find(&relations).Error
	if err != nil {
		return nil, wrapStorage("get relations for product", err)
	}
	return relations, nil
}

// GetRelation retrieves one directed edge with its group and settings
func (r *RelationRepository) GetRelation(productID, relatedProductID, groupID uint64) (*models.ProductRelation, error) {
	var relation models.ProductRelation
	err := r.db.Preload("Group").Preload("Settings").
		Where("product_id = ? AND related_product_id = ? AND group_id = ?", productID, relatedProductID, groupID).
		First(&relation).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrRelationNotFound
		}
		return nil, wrapStorage("get relation", err)
	}
	return &relation, nil
}

// HasRelations reports whether productID has at least one relation in groupID
func (r *RelationRepository) HasRelations(productID, groupID uint64) (bool, error) {
	var count int64
	err := r.db.Model(&models.ProductRelation{}).
		Where("product_id = ? AND group_id = ?", productID, groupID).
		Count(&count).Error
	if err != nil {
		return false, wrapStorage("count relations", err)
	}
	return count > 0, nil
}

// GetSettings retrieves a shared settings row
func (r *RelationRepository) GetSettings(settingsID uint64) (*models.RelationSetting, error) {
	var setting models.RelationSetting
	if err := r.db.First(&setting, "id = ?", settingsID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrRelationSettingsNotFound
		}
		return nil, wrapStorage("get settings", err)
	}
	return &setting, nil
}

// UpdateSettings replaces the data of a settings row. Both directions of the
// pair reference the row, so the change is visible from either side.
func (r *RelationRepository) UpdateSettings(settingsID uint64, data models.RelationSettingsData) error {
	result := r.db.Model(&models.RelationSetting{}).
		Where("id = ?", settingsID).
		Update("settings", datatypes.NewJSONType(data))
	if result.Error != nil {
		return wrapStorage("update settings", result.Error)
	}
	if result.RowsAffected == 0 {
		return apperrors.ErrRelationSettingsNotFound
	}
	return nil
}

// SetRelationSettings attaches data to a pair, creating the shared settings row
// when the pair has none yet.
func (r *RelationRepository) SetRelationSettings(productID, relatedProductID, groupID uint64, data models.RelationSettingsData) (*models.RelationSetting, error) {
	var setting *models.RelationSetting
	err := r.db.Transaction(func(tx *gorm.DB) error {
		forward, err := findEdge(tx, productID, relatedProductID, groupID)
		if err != nil {
			return err
		}
		reverse, err := findEdge(tx, relatedProductID, productID, groupID)
		if err != nil {
			return err
		}
		if forward == nil || reverse == nil {
			return apperrors.ErrRelationNotFound
		}

		if forward.SettingsID != nil {
			setting = &models.RelationSetting{}
			if err := tx.First(setting, "id = ?", *forward.SettingsID).Error; err != nil {
				return err
			}
			setting.Settings = datatypes.NewJSONType(data)
			if err := tx.Model(setting).Update("settings", setting.Settings).Error; err != nil {
				return err
			}
		} else {
			setting = models.NewRelationSetting(data)
			if err := tx.Create(setting).Error; err != nil {
				return err
			}
		}

		var previous []uint64
		if reverse.SettingsID != nil && *reverse.SettingsID != setting.ID {
			previous = append(previous, *reverse.SettingsID)
		}
		err = tx.Model(&models.ProductRelation{}).
			Where("id IN ?", []uint64{forward.ID, reverse.ID}).
			Update("settings_id", setting.ID).Error
		if err != nil {
			return err
		}
		return deleteOrphanSettings(tx, previous)
	})
	if err != nil {
		return nil, wrapStorage("set relation settings", err)
	}
	return setting, nil
}

// ReorderRelations assigns sort_order to productID's edges in a group following
// the order of relatedProductIDs. Mirror edges keep their own order.
func (r *RelationRepository) ReorderRelations(productID, groupID uint64, relatedProductIDs []uint64) error {
	err := r.db.Transaction(func(tx *gorm.DB) error {
		for position, relatedID := range relatedProductIDs {
			result := tx.Model(&models.ProductRelation{}).
				Where("product_id = ? AND group_id = ? AND related_product_id = ?", productID, groupID, relatedID).
				Update("sort_order", position)
			if result.Error != nil {
				return result.Error
			}
			if result.RowsAffected == 0 {
				return apperrors.ErrRelationNotFound
			}
		}
		return nil
	})
	return wrapStorage("reorder relations", err)
}

// DeleteGroup removes a relation group. A group that still has relations is
// only removed when cascade is set, together with those relations.
func (r *RelationRepository) DeleteGroup(groupID uint64, cascade bool) error {
	err := r.db.Transaction(func(tx *gorm.DB) error {
		if err := lockGroup(tx, groupID, clause.LockingStrengthUpdate); err != nil {
			return err
		}

		var count int64
		if err := tx.Model(&models.ProductRelation{}).Where("group_id = ?", groupID).Count(&count).Error; err != nil {
			return err
		}
		if count > 0 && !cascade {
			return &apperrors.GroupInUseError{GroupID: groupID, Relations: count}
		}

		if count > 0 {
			var settingsIDs []uint64
			err := tx.Model(&models.ProductRelation{}).
				Where("group_id = ? AND settings_id IS NOT NULL", groupID).
				Pluck("settings_id", &settingsIDs).Error
			if err != nil {
				return err
			}
			if err := tx.Where("group_id = ?", groupID).Delete(&models.ProductRelation{}).Error; err != nil {
				return err
			}
			if err := deleteOrphanSettings(tx, settingsIDs); err != nil {
				return err
			}
		}

		return tx.Delete(&models.RelationGroup{}, "id = ?", groupID).Error
	})
	return wrapStorage("delete group", err)
}

func validateEdge(productID, relatedProductID, groupID uint64) error {
	if productID == 0 || relatedProductID == 0 {
		return &apperrors.InvalidRelationError{
			ProductID:        productID,
			RelatedProductID: relatedProductID,
			Reason:           "both product ids are required",
		}
	}
	if productID == relatedProductID {
		return &apperrors.InvalidRelationError{
			ProductID:        productID,
			RelatedProductID: relatedProductID,
			Reason:           "a product cannot relate to itself",
		}
	}
	if groupID == 0 {
		return &apperrors.UnknownGroupError{GroupID: groupID}
	}
	return nil
}

// lockGroup checks that groupID exists and locks its row until the
// transaction ends
func lockGroup(tx *gorm.DB, groupID uint64, strength string) error {
	var ids []uint64
	err := tx.Model(&models.RelationGroup{}).
		Clauses(clause.Locking{Strength: strength}).
		Where("id = ?", groupID).
		Pluck("id", &ids).Error
	if err != nil {
		return wrapStorage("lookup group", err)
	}
	if len(ids) == 0 {
		return &apperrors.UnknownGroupError{GroupID: groupID}
	}
	return nil
}

func findEdge(db *gorm.DB, productID, relatedProductID, groupID uint64) (*models.ProductRelation, error) {
	var relation models.ProductRelation
	result := db.Where("product_id = ? AND related_product_id = ? AND group_id = ?", productID, relatedProductID, groupID).
		Limit(1).
		Find(&relation)
	if result.Error != nil {
		return nil, result.Error
	}
	if result.RowsAffected == 0 {
		return nil, nil
	}
	return &relation, nil
}

// deleteOrphanSettings removes the given settings rows once no relation references them
func deleteOrphanSettings(tx *gorm.DB, settingsIDs []uint64) error {
	if len(settingsIDs) == 0 {
		return nil
	}
	return tx.
		Where("id IN ?", settingsIDs).
		Where("NOT EXISTS (SELECT 1 FROM product_relations pr WHERE pr.settings_id = relation_settings.id)").
		Delete(&models.RelationSetting{}).Error
}

// wrapStorage leaves domain errors untouched and wraps everything else
func wrapStorage(op string, err error) error {
	if err == nil {
		return nil
	}
	if apperrors.IsInvalidRelation(err) || apperrors.IsUnknownGroup(err) ||
		apperrors.IsGroupInUse(err) || apperrors.IsNotFound(err) {
		return err
	}
	return apperrors.NewStorageError(op, err)
}
