package service

import (
	"fmt"
	"math"
	"strings"
	"time"

	"product-relations-backend/internal/database/models"
	apperrors "product-relations-backend/internal/errors"
	"product-relations-backend/internal/repository"

	"github.com/go-playground/validator/v10"
)

// maxPriceHistoryDays caps the lookback window of LowestPrice
const maxPriceHistoryDays = 365

// PriceHistoryService records product prices and answers lowest-price queries
type PriceHistoryService struct {
	repo        repository.PriceHistoryRepositoryInterface
	validator   *validator.Validate
	defaultDays int
	now         func() time.Time
}

// Ensure PriceHistoryService implements PriceHistoryServiceInterface
var _ PriceHistoryServiceInterface = (*PriceHistoryService)(nil)

// NewPriceHistoryService creates a new price history service
func NewPriceHistoryService(repo repository.PriceHistoryRepositoryInterface, validator *validator.Validate, defaultDays int) *PriceHistoryService {
	return &PriceHistoryService{
		repo:        repo,
		validator:   validator,
		defaultDays: defaultDays,
		now:         time.Now,
	}
}

// RecordPriceRequest represents a price observation for a product
type RecordPriceRequest struct {
	Price        float64  `json:"price" validate:"gte=0"`
	RegularPrice *float64 `json:"regular_price,omitempty" validate:"omitempty,gte=0"`
	Currency     string   `json:"currency" validate:"omitempty,len=3,alpha"`
}

// PriceEntryResponse represents one entry of the price log
type PriceEntryResponse struct {
	ID           uint64    `json:"id"`
	ProductID    uint64    `json:"product_id"`
	Price        float64   `json:"price"`
	RegularPrice *float64  `json:"regular_price,omitempty"`
	Currency     string    `json:"currency"`
	RecordedAt   time.Time `json:"recorded_at"`
}

// RecordPriceResponse reports whether a new entry was appended
type RecordPriceResponse struct {
	Recorded bool               `json:"recorded"`
	Entry    PriceEntryResponse `json:"entry"`
}

// LowestPriceResponse represents the lowest price within a window
type LowestPriceResponse struct {
	ProductID uint64              `json:"product_id"`
	Days      int                 `json:"days"`
	Lowest    *PriceEntryResponse `json:"lowest"`
}

// PriceHistoryListResponse represents a page of a product's price log, newest first
type PriceHistoryListResponse struct {
	ProductID uint64               `json:"product_id"`
	Entries   []PriceEntryResponse `json:"entries"`
	Total     int64                `json:"total"`
	Page      int                  `json:"page"`
	PageSize  int                  `json:"page_size"`
}

// PurgeHistoryResponse reports how many entries a purge removed
type PurgeHistoryResponse struct {
	Before  time.Time `json:"before"`
	Deleted int64     `json:"deleted"`
}

// RecordPrice appends a price to the log unless it equals the latest entry
func (s *PriceHistoryService) RecordPrice(productID uint64, req *RecordPriceRequest) (*RecordPriceResponse, error) {
	if productID == 0 {
		return nil, apperrors.NewValidationError("product_id", "is required")
	}
	if err := s.validator.Struct(req); err != nil {
		return nil, validationFailed(err)
	}

	currency := strings.ToUpper(req.Currency)
	if currency == "" {
		currency = "EUR"
	}

	latest, err := s.repo.Latest(productID)
	if err != nil {
		return nil, fmt.Errorf("failed to get latest price: %w", err)
	}
	if latest != nil && samePrice(latest, req.Price, req.RegularPrice, currency) {
		return &RecordPriceResponse{Recorded: false, Entry: toPriceEntryResponse(latest)}, nil
	}

	entry := &models.PriceHistoryEntry{
		ProductID:    productID,
		Price:        req.Price,
		RegularPrice: req.RegularPrice,
		Currency:     currency,
		RecordedAt:   s.now().UTC(),
	}
	if err := s.repo.Record(entry); err != nil {
		return nil, fmt.Errorf("failed to record price: %w", err)
	}

	return &RecordPriceResponse{Recorded: true, Entry: toPriceEntryResponse(entry)}, nil
}

// LowestPrice returns the lowest price recorded in the last days days. Zero
// days selects the configured default. Lowest is nil when nothing was recorded.
func (s *PriceHistoryService) LowestPrice(productID uint64, days int) (*LowestPriceResponse, error) {
	if days == 0 {
		days = s.defaultDays
	}
	if days < 1 || days > maxPriceHistoryDays {
		return nil, apperrors.ErrInvalidPeriod
	}

	since := s.now().UTC().AddDate(0, 0, -days)
	entry, err := s.repo.LowestSince(productID, since)
	if err != nil {
		return nil, fmt.Errorf("failed to get lowest price: %w", err)
	}

	response := &LowestPriceResponse{ProductID: productID, Days: days}
	if entry != nil {
		lowest := toPriceEntryResponse(entry)
		response.Lowest = &lowest
	}
	return response, nil
}

// GetHistory returns a page of productID's price log
func (s *PriceHistoryService) GetHistory(productID uint64, page, pageSize int) (*PriceHistoryListResponse, error) {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 || pageSize > 100 {
		pageSize = 20
	}

	entries, total, err := s.repo.GetByProduct(productID, pageSize, (page-1)*pageSize)
	if err != nil {
		return nil, fmt.Errorf("failed to get price history: %w", err)
	}

	responses := make([]PriceEntryResponse, len(entries))
	for i := range entries {
		responses[i] = toPriceEntryResponse(&entries[i])
	}
	return &PriceHistoryListResponse{
		ProductID: productID,
		Entries:   responses,
		Total:     total,
		Page:      page,
		PageSize:  pageSize,
	}, nil
}

// PurgeHistory removes entries older than olderThanDays. The window must
// cover at least the lowest-price lookback.
func (s *PriceHistoryService) PurgeHistory(olderThanDays int) (*PurgeHistoryResponse, error) {
	if olderThanDays < s.defaultDays || olderThanDays < 1 {
		return nil, apperrors.NewValidationError("older_than_days",
			fmt.Sprintf("must be at least %d", max(s.defaultDays, 1)))
	}

	before := s.now().UTC().AddDate(0, 0, -olderThanDays)
	deleted, err := s.repo.PurgeBefore(before)
	if err != nil {
		return nil, fmt.Errorf("failed to purge price history: %w", err)
	}
	return &PurgeHistoryResponse{Before: before, Deleted: deleted}, nil
}

// prices are stored as numeric(15,4)
func samePrice(entry *models.PriceHistoryEntry, price float64, regular *float64, currency string) bool {
	const epsilon = 0.00005
	if entry.Currency != currency || math.Abs(entry.Price-price) > epsilon {
		return false
	}
	if (entry.RegularPrice == nil) != (regular == nil) {
		return false
	}
	return regular == nil || math.Abs(*entry.RegularPrice-*regular) <= epsilon
}

func toPriceEntryResponse(entry *models.PriceHistoryEntry) PriceEntryResponse {
	return PriceEntryResponse{
		ID:           entry.ID,
		ProductID:    entry.ProductID,
		Price:        entry.Price,
		RegularPrice: entry.RegularPrice,
		Currency:     entry.Currency,
		RecordedAt:   entry.RecordedAt,
	}
}
