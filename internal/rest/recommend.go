package rest

import (
	"context"
	"net/http"
	"strconv"
	"time"

	"souqStore/business/recommend"
	"souqStore/domain"
	"souqStore/pkg/logger"
	"souqStore/pkg/metrics"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"
)

type RecommendationService interface {
	Suggestions(ctx context.Context, productID uint64, minSupport float64) ([]domain.ProductSuggestion, error)
	TopAssociations(ctx context.Context) ([]domain.AssociationPair, error)
}

type RecommendationHandler struct {
	service RecommendationService
	timeout time.Duration
}

func NewRecommendationHandler(service RecommendationService) *RecommendationHandler {
	return &RecommendationHandler{
		service: service,
		timeout: 10 * time.Second,
	}
}

// GetSuggestions serves GET /api/products/:id/suggestions. An id that no
// order references comes back as an empty array, not a 404; existence is
// not checked separately.
func (h *RecommendationHandler) GetSuggestions(c echo.Context) error {
	timer := prometheus.NewTimer(metrics.SuggestionLatency)
	defer timer.ObserveDuration()
	metrics.SuggestionRequests.Inc()

	productID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		logger.Error("Invalid product id", err)
		return c.JSON(http.StatusBadRequest, ResponseError{Message: "invalid product id"})
	}

	minSupport := parseMinSupport(c.QueryParam("min_support"))

	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	suggestions, err := h.service.Suggestions(ctx, productID, minSupport)
	if err != nil {
		logger.Error("Failed to compute suggestions", err)
		return c.JSON(http.StatusInternalServerError, newServerError(err))
	}

	return c.JSON(http.StatusOK, suggestions)
}

// GetAssociations serves GET /api/associations.
func (h *RecommendationHandler) GetAssociations(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	pairs, err := h.service.TopAssociations(ctx)
	if err != nil {
		logger.Error("Failed to read associations", err)
		return c.JSON(http.StatusInternalServerError, newServerError(err))
	}

	return c.JSON(http.StatusOK, pairs)
}

// parseMinSupport falls back to the default on an absent or non-numeric
// value. The tolerance is deliberate: this parameter never produces a 400.
func parseMinSupport(raw string) float64 {
	if raw == "" {
		return recommend.DefaultMinSupport
	}

	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return recommend.DefaultMinSupport
	}

	return v
}
