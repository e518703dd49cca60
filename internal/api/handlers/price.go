package handlers

import (
	"net/http"
	"strconv"

	"product-relations-backend/internal/logger"
	"product-relations-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// PriceHandler handles HTTP requests for the price history
type PriceHandler struct {
	service service.PriceHistoryServiceInterface
}

// NewPriceHandler creates a new price handler
func NewPriceHandler(service service.PriceHistoryServiceInterface) *PriceHandler {
	return &PriceHandler{service: service}
}

// GetLowestPrice returns the lowest price of a product within a period
// @Summary Get lowest price
// @Description Return the lowest price recorded for a product in the last N days. lowest is null when nothing was recorded.
// @Tags prices
// @Produce json
// @Param id path int true "Product ID"
// @Param days query int false "Lookback window in days (1-365); defaults to PRICE_HISTORY_DAYS"
// @Success 200 {object} service.LowestPriceResponse "Lowest price"
// @Failure 400 {object} ErrorResponse "Invalid product ID or period"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Router /products/{id}/prices/lowest [get]
func (h *PriceHandler) GetLowestPrice(c *gin.Context) {
	productID, ok := parseID(c, "id")
	if !ok {
		return
	}

	days := 0
	if raw := c.Query("days"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 1 {
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid days"})
			return
		}
		days = parsed
	}

	lowest, err := h.service.LowestPrice(productID, days)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, lowest)
}

// RecordPrice appends a price observation to a product's history
// @Summary Record a price
// @Description Append a price to the product's history unless it equals the latest entry
// @Tags prices
// @Accept json
// @Produce json
// @Param id path int true "Product ID"
// @Param price body service.RecordPriceRequest true "Price observation"
// @Success 201 {object} service.RecordPriceResponse "Price recorded"
// @Success 200 {object} service.RecordPriceResponse "Price unchanged"
// @Failure 400 {object} ErrorResponse "Invalid request"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /products/{id}/prices [post]
func (h *PriceHandler) RecordPrice(c *gin.Context) {
	productID, ok := parseID(c, "id")
	if !ok {
		return
	}

	var req service.RecordPriceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	result, err := h.service.RecordPrice(productID, &req)
	if err != nil {
		respondError(c, err)
		return
	}

	status := http.StatusOK
	if result.Recorded {
		status = http.StatusCreated
	}
	c.JSON(status, result)
}

// GetPriceHistory returns a page of a product's price log
// @Summary Get price history
// @Description List recorded prices of a product, newest first
// @Tags prices
// @Produce json
// @Param id path int true "Product ID"
// @Param page query int false "Page number" default(1)
// @Param page_size query int false "Page size" default(20)
// @Success 200 {object} service.PriceHistoryListResponse "Price history"
// @Failure 400 {object} ErrorResponse "Invalid product ID"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Router /products/{id}/prices [get]
func (h *PriceHandler) GetPriceHistory(c *gin.Context) {
	productID, ok := parseID(c, "id")
	if !ok {
		return
	}
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("page_size", "20"))

	history, err := h.service.GetHistory(productID, page, pageSize)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, history)
}

// PurgePriceHistory deletes old price entries
// @Summary Purge price history
// @Description Delete price entries older than the given number of days. The window may not be shorter than PRICE_HISTORY_DAYS.
// @Tags prices
// @Produce json
// @Param older_than_days query int true "Age in days"
// @Success 200 {object} service.PurgeHistoryResponse "Purge result"
// @Failure 400 {object} ErrorResponse "Invalid age"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /prices [delete]
func (h *PriceHandler) PurgePriceHistory(c *gin.Context) {
	days, err := strconv.Atoi(c.Query("older_than_days"))
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid older_than_days"})
		return
	}

	result, err := h.service.PurgeHistory(days)
	if err != nil {
		respondError(c, err)
		return
	}
	logger.FromGinContext(c).WithFields(map[string]interface{}{
		"before":  result.Before,
		"deleted": result.Deleted,
	}).Info("Purged price history")
	c.JSON(http.StatusOK, result)
}
