package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"github.com/bagoessprasetyo/pos-ai-sub001/internal/service"
)

type AnalyticsHandler struct {
	service *service.AnalyticsService
}

func NewAnalyticsHandler(service *service.AnalyticsService) *AnalyticsHandler {
	return &AnalyticsHandler{service: service}
}

func (h *AnalyticsHandler) GetCustomerReport(c *gin.Context) {
	storeID, ok := h.storeID(c)
	if !ok {
		return
	}

	report, err := h.service.CustomerReport(c.Request.Context(), storeID)
	if err != nil {
		log.Error().Err(err).Str("store_id", storeID).Msg("customer report failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to build customer report"})
		return
	}

	c.JSON(http.StatusOK, report)
}

func (h *AnalyticsHandler) GetInventoryReport(c *gin.Context) {
	storeID, ok := h.storeID(c)
	if !ok {
		return
	}

	report, err := h.service.InventoryReport(c.Request.Context(), storeID)
	if err != nil {
		log.Error().Err(err).Str("store_id", storeID).Msg("inventory report failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to build inventory report"})
		return
	}

	c.JSON(http.StatusOK, report)
}

func (h *AnalyticsHandler) GetStores(c *gin.Context) {
	stores, err := h.service.ListStoreIDs(c.Request.Context())
	if err != nil {
		log.Error().Err(err).Msg("list stores failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list stores"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"stores": stores})
}

func (h *AnalyticsHandler) InvalidateCache(c *gin.Context) {
	storeID, ok := h.storeID(c)
	if !ok {
		return
	}

	if err := h.service.InvalidateStore(c.Request.Context(), storeID); err != nil {
		log.Error().Err(err).Str("store_id", storeID).Msg("cache invalidation failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to invalidate cache"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

func (h *AnalyticsHandler) storeID(c *gin.Context) (string, bool) {
	storeID := strings.TrimSpace(c.Query("store_id"))
	if storeID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "store_id is required"})
		return "", false
	}
	return storeID, true
}
