package handlers

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/chiplogistics/pricing_backend/internal/apperrors"
	"github.com/chiplogistics/pricing_backend/internal/core/domain"
	portssvc "github.com/chiplogistics/pricing_backend/internal/core/ports/services"
	"github.com/chiplogistics/pricing_backend/internal/dto"
	"github.com/chiplogistics/pricing_backend/internal/middleware"
	"github.com/gin-gonic/gin"
)

// calculationHandler handles HTTP requests for landed-cost calculations.
type calculationHandler struct {
	pricingService portssvc.PricingSvcFacade
	reportService  portssvc.ReportSvcFacade
}

// newCalculationHandler creates a new calculationHandler.
func newCalculationHandler(ps portssvc.PricingSvcFacade, rs portssvc.ReportSvcFacade) *calculationHandler {
	return &calculationHandler{
		pricingService: ps,
		reportService:  rs,
	}
}

// registerCalculationRoutes registers routes related to calculations.
func registerCalculationRoutes(rg *gin.RouterGroup, pricingService portssvc.PricingSvcFacade, reportService portssvc.ReportSvcFacade) {
	h := newCalculationHandler(pricingService, reportService)

	calculations := rg.Group("/calculations")
	{
		calculations.POST("", h.calculatePrices)
		calculations.POST("/report", h.createReport)
	}
}

// runCalculation binds the request, validates the items and runs the batch
// calculation. On failure it writes the response itself and returns nil.
func (h *calculationHandler) runCalculation(c *gin.Context) (*dto.CalculationRequest, *domain.BatchCalculation) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.CalculationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for calculation", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return nil, nil
	}

	items, err := req.ToArticleItems()
	if err != nil {
		logger.Warn("Invalid calculation items", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return nil, nil
	}

	logger.Info("Received calculation request",
		slog.String("customer_name", req.CustomerName),
		slog.Int("item_count", len(items)),
	)

	batch, err := h.pricingService.CalculatePrices(c.Request.Context(), items)
	if err != nil {
		var lookupErr *apperrors.RateLookupError
		if errors.As(err, &lookupErr) {
			logger.Error("Rate lookup failed", slog.String("error", lookupErr.Error()))
			c.JSON(http.StatusBadGateway, gin.H{"error": "Exchange rate lookup failed, try again later"})
		} else {
			logger.Error("Failed to calculate prices", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to calculate prices"})
		}
		return nil, nil
	}

	return &req, batch
}

// calculatePrices godoc
// @Summary Calculate landed costs
// @Description Converts every item price to the reference currency and computes the landed cost per item and in total
// @Tags calculations
// @Accept json
// @Produce json
// @Param calculation body dto.CalculationRequest true "Customer and items"
// @Success 200 {object} dto.CalculationResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 502 {object} map[string]string "Rate provider failure"
// @Security BearerAuth
// @Router /calculations [post]
func (h *calculationHandler) calculatePrices(c *gin.Context) {
	req, batch := h.runCalculation(c)
	if batch == nil {
		return
	}

	c.JSON(http.StatusOK, dto.ToCalculationResponse(batch, req.CustomerName, h.pricingService.ReferenceCurrency()))
}

// createReport godoc
// @Summary Download a calculations report
// @Description Runs the calculation and returns the tabular report as a CSV attachment
// @Tags calculations
// @Accept json
// @Produce text/csv
// @Param calculation body dto.CalculationRequest true "Customer and items"
// @Success 200 {file} file "Report file"
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 502 {object} map[string]string "Rate provider failure"
// @Security BearerAuth
// @Router /calculations/report [post]
func (h *calculationHandler) createReport(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	req, batch := h.runCalculation(c)
	if batch == nil {
		return
	}

	report, err := h.reportService.CreateCalculationsReport(batch.Results, batch.TotalPrice, req.CustomerName)
	if err != nil {
		logger.Error("Failed to create calculations report", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create report"})
		return
	}

	logger.Info("Report created", slog.String("file_name", report.Name), slog.Int("size", len(report.Data)))
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", report.Name))
	c.Data(http.StatusOK, "text/csv", report.Data)
}
