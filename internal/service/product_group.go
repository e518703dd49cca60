package service

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"time"

	"product-relations-backend/internal/database/models"
	apperrors "product-relations-backend/internal/errors"
	"product-relations-backend/internal/logger"
	"product-relations-backend/internal/repository"

	"gorm.io/gorm"
)

// DefaultSwatchSize is the image size used for group members
const DefaultSwatchSize = "thumbnail"

// ProductGroupService assembles the relation groups shown next to a product
type ProductGroupService struct {
	relations repository.RelationRepositoryInterface
	groups    repository.RelationGroupRepositoryInterface
	products  repository.ProductRepositoryInterface
	prices    repository.PriceHistoryRepositoryInterface
	priceDays int
	now       func() time.Time
}

// Ensure ProductGroupService implements ProductGroupServiceInterface
var _ ProductGroupServiceInterface = (*ProductGroupService)(nil)

// NewProductGroupService creates a new ProductGroupService. A priceDays of zero
// or less leaves MemberView.LowestPrice unset.
func NewProductGroupService(
	relations repository.RelationRepositoryInterface,
	groups repository.RelationGroupRepositoryInterface,
	products repository.ProductRepositoryInterface,
	prices repository.PriceHistoryRepositoryInterface,
	priceDays int,
) *ProductGroupService {
	return &ProductGroupService{
		relations: relations,
		groups:    groups,
		products:  products,
		prices:    prices,
		priceDays: priceDays,
		now:       time.Now,
	}
}

// RenderOptions carries the rendering situation of a swatch
type RenderOptions struct {
	Context models.DisplayContext
	Class   string
}

// ImageReference points at the image used for a swatch
type ImageReference struct {
	URL    string `json:"url"`
	Size   string `json:"size"`
	Alt    string `json:"alt,omitempty"`
	Class  string `json:"class,omitempty"`
	Custom bool   `json:"custom"`
}

// MemberView is one product in a group, ready for templating
type MemberView struct {
	ProductID   uint64          `json:"product_id"`
	Label       string          `json:"label"`
	Permalink   string          `json:"permalink"`
	Image       *ImageReference `json:"image,omitempty"`
	Current     bool            `json:"current"`
	LowestPrice *float64        `json:"lowest_price,omitempty"`
}

// GroupView is one relation group of a product. Relations always starts with
// the product itself.
type GroupView struct {
	GroupID     uint64              `json:"group_id"`
	GroupName   string              `json:"group_name"`
	Layout      models.DisplayStyle `json:"layout"`
	AttributeID *uint64             `json:"attribute_id,omitempty"`
	Relations   []uint64            `json:"relations"`
	Members     []MemberView        `json:"members"`
}

// partition holds the rows of one group in repository order
type partition struct {
	group *models.RelationGroup
	rows  []models.ProductRelation
}

// BuildGroups loads productID's relations for the display context and groups
// them by relation group. A product without relations yields an empty slice.
func (s *ProductGroupService) BuildGroups(ctx context.Context, productID uint64, displayCtx models.DisplayContext) ([]GroupView, error) {
	log := logger.WithContext(ctx).WithFields(map[string]interface{}{
		"product_id": productID,
		"context":    displayCtx,
	})

	if !displayCtx.IsValid() {
		return nil, apperrors.ErrInvalidContext
	}

	rows, err := s.relations.GetRelationsForProduct(productID, displayCtx)
	if err != nil {
		log.WithError(err).Error("Failed to load product relations")
		return nil, fmt.Errorf("failed to load relations: %w", err)
	}

	partitions := partitionByGroup(rows, displayCtx)
	views := make([]GroupView, 0, len(partitions))
	if len(partitions) == 0 {
		return views, nil
	}

	// Catalog lookups are batched across all groups
	var memberIDs []uint64
	seen := map[uint64]bool{}
	for _, p := range partitions {
		for _, id := range memberList(productID, p.rows) {
			if !seen[id] {
				seen[id] = true
				memberIDs = append(memberIDs, id)
			}
		}
	}
	products, err := s.products.GetByIDs(memberIDs)
	if err != nil {
		log.WithError(err).Error("Failed to load member products")
		return nil, fmt.Errorf("failed to load products: %w", err)
	}
	catalog := make(map[uint64]*models.Product, len(products))
	for i := range products {
		catalog[products[i].ID] = &products[i]
	}

	lowest := s.lowestPrices(log, memberIDs)

	for _, p := range partitions {
		style := p.group.StyleFor(displayCtx)
		view := GroupView{
			GroupID:     p.group.ID,
			GroupName:   p.group.Name,
			Layout:      style,
			AttributeID: p.group.AttributeID,
			Relations:   memberList(productID, p.rows),
			Members:     []MemberView{},
		}

		settingsByMember := make(map[uint64]models.RelationSettingsData, len(p.rows))
		for i := range p.rows {
			related := p.rows[i].RelatedProductID
			if _, ok := settingsByMember[related]; ok || related == productID {
				continue
			}
			settingsByMember[related] = p.rows[i].SettingsData()
		}

		for _, memberID := range view.Relations {
			product, ok := catalog[memberID]
			if !ok {
				log.WithField("member_id", memberID).Warn("Related product missing from catalog")
				continue
			}
			settings := settingsByMember[memberID]

			label, err := s.resolveLabel(product, p.group, settings)
			if err != nil {
				return nil, err
			}
			member := MemberView{
				ProductID:   memberID,
				Label:       label,
				Permalink:   product.Permalink,
				Current:     memberID == productID,
				LowestPrice: lowest[memberID],
			}
			if style.IsImage() {
				member.Image = swatchImage(product, settings, DefaultSwatchSize, label, "")
			}
			view.Members = append(view.Members, member)
		}

		views = append(views, view)
	}

	log.WithField("groups", len(views)).Debug("Built product groups")
	return views, nil
}

// GetProductLabel resolves the label of relatedProductID inside productID's
// group: the pair's custom label, then the attribute value bound to the group,
// then the product name.
func (s *ProductGroupService) GetProductLabel(productID, relatedProductID, groupID uint64) (string, error) {
	group, settings, err := s.loadMember(productID, relatedProductID, groupID)
	if err != nil {
		return "", err
	}
	product, err := s.loadProduct(relatedProductID)
	if err != nil {
		return "", err
	}
	return s.resolveLabel(product, group, settings)
}

// GetProductSwatchImage returns the swatch image of relatedProductID, or nil when
// the group does not render images in the given context.
func (s *ProductGroupService) GetProductSwatchImage(productID, relatedProductID, groupID uint64, size string, opts RenderOptions) (*ImageReference, error) {
	displayCtx := opts.Context
	if displayCtx == "" {
		displayCtx = models.ContextSingle
	}
	if !displayCtx.IsValid() {
		return nil, apperrors.ErrInvalidContext
	}

	group, settings, err := s.loadMember(productID, relatedProductID, groupID)
	if err != nil {
		return nil, err
	}
	if !group.StyleFor(displayCtx).IsImage() {
		return nil, nil
	}

	product, err := s.loadProduct(relatedProductID)
	if err != nil {
		return nil, err
	}
	if size == "" {
		size = DefaultSwatchSize
	}
	return swatchImage(product, settings, size, product.Name, opts.Class), nil
}

// loadMember returns the group and the pair's settings for one member. The
// product itself is a member of every group it has relations in, without
// settings, and of no other group.
func (s *ProductGroupService) loadMember(productID, relatedProductID, groupID uint64) (*models.RelationGroup, models.RelationSettingsData, error) {
	if productID == relatedProductID {
		group, err := s.groups.GetByID(groupID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, models.RelationSettingsData{}, &apperrors.UnknownGroupError{GroupID: groupID}
			}
			return nil, models.RelationSettingsData{}, fmt.Errorf("failed to get relation group: %w", err)
		}
		member, err := s.relations.HasRelations(productID, groupID)
		if err != nil {
			return nil, models.RelationSettingsData{}, err
		}
		if !member {
			return nil, models.RelationSettingsData{}, apperrors.ErrRelationNotFound
		}
		return group, models.RelationSettingsData{}, nil
	}

	relation, err := s.relations.GetRelation(productID, relatedProductID, groupID)
	if err != nil {
		return nil, models.RelationSettingsData{}, err
	}
	if relation.Group == nil {
		return nil, models.RelationSettingsData{}, &apperrors.UnknownGroupError{GroupID: groupID}
	}
	return relation.Group, relation.SettingsData(), nil
}

func (s *ProductGroupService) loadProduct(id uint64) (*models.Product, error) {
	product, err := s.products.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrProductNotFound
		}
		return nil, fmt.Errorf("failed to get product: %w", err)
	}
	return product, nil
}

func (s *ProductGroupService) resolveLabel(product *models.Product, group *models.RelationGroup, settings models.RelationSettingsData) (string, error) {
	if settings.CustomLabel != "" {
		return settings.CustomLabel, nil
	}
	if group.AttributeID != nil {
		value, err := s.products.GetAttributeValue(product.ID, *group.AttributeID)
		if err != nil {
			return "", fmt.Errorf("failed to get attribute value: %w", err)
		}
		if value != "" {
			return value, nil
		}
	}
	return product.Name, nil
}

// lowestPrices looks up the lowest price of every member in one query. Price
// history is auxiliary, so a failure is logged and leaves the prices unset.
func (s *ProductGroupService) lowestPrices(log *logger.Logger, ids []uint64) map[uint64]*float64 {
	prices := map[uint64]*float64{}
	if s.prices == nil || s.priceDays <= 0 || len(ids) == 0 {
		return prices
	}
	since := s.now().UTC().AddDate(0, 0, -s.priceDays)
	lowest, err := s.prices.LowestSinceMany(ids, since)
	if err != nil {
		log.WithError(err).WithField("members", len(ids)).Warn("Failed to load lowest prices")
		return prices
	}
	for id, price := range lowest {
		prices[id] = &price
	}
	return prices
}

// partitionByGroup splits rows by group, ordered by group sort order then group
// id. Rows keep relation sort order within their group.
func partitionByGroup(rows []models.ProductRelation, displayCtx models.DisplayContext) []*partition {
	sorted := make([]models.ProductRelation, 0, len(rows))
	for _, row := range rows {
		if row.Group == nil || !row.Group.VisibleIn(displayCtx) {
			continue
		}
		sorted = append(sorted, row)
	}
	sort.SliceStable(sorted, func(i, j int) bool {
		a, b := sorted[i], sorted[j]
		if a.Group.SortOrder != b.Group.SortOrder {
			return a.Group.SortOrder < b.Group.SortOrder
		}
		if a.GroupID != b.GroupID {
			return a.GroupID < b.GroupID
		}
		if a.SortOrder != b.SortOrder {
			return a.SortOrder < b.SortOrder
		}
		return a.ID < b.ID
	})

	var partitions []*partition
	index := map[uint64]*partition{}
	for _, row := range sorted {
		p, ok := index[row.GroupID]
		if !ok {
			p = &partition{group: row.Group}
			index[row.GroupID] = p
			partitions = append(partitions, p)
		}
		p.rows = append(p.rows, row)
	}
	return partitions
}

// memberList returns productID followed by the related ids of rows, skipping
// self references and repeats.
func memberList(productID uint64, rows []models.ProductRelation) []uint64 {
	members := []uint64{productID}
	seen := map[uint64]bool{productID: true}
	for _, row := range rows {
		if seen[row.RelatedProductID] {
			continue
		}
		seen[row.RelatedProductID] = true
		members = append(members, row.RelatedProductID)
	}
	return members
}

func swatchImage(product *models.Product, settings models.RelationSettingsData, size, alt, class string) *ImageReference {
	if settings.CustomImage != "" {
		return &ImageReference{URL: settings.CustomImage, Size: size, Alt: alt, Class: class, Custom: true}
	}
	url := product.ImageURL(size)
	if url == "" {
		return nil
	}
	return &ImageReference{URL: url, Size: size, Alt: alt, Class: class}
}
