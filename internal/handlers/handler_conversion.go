package handlers

import (
	"log/slog"
	"net/http"

	portssvc "github.com/SscSPs/fx_settlement/internal/core/ports/services"
	"github.com/SscSPs/fx_settlement/internal/dto"
	"github.com/SscSPs/fx_settlement/internal/middleware"
	"github.com/gin-gonic/gin"
)

type conversionHandler struct {
	conversionService portssvc.ConversionSvc
}

func newConversionHandler(cs portssvc.ConversionSvc) *conversionHandler {
	return &conversionHandler{
		conversionService: cs,
	}
}

func registerConversionRoutes(rg *gin.RouterGroup, conversionService portssvc.ConversionSvc) {
	h := newConversionHandler(conversionService)
	rg.GET("/conversions", h.previewConversion)
}

// previewConversion godoc
// @Summary Preview a conversion
// @Description Converts an amount between two currencies through a quote without persisting anything. Both sides of the quote are returned.
// @Tags conversions
// @Produce  json
// @Param   quoteId query int false "Quote ID (omit for same-currency conversions)"
// @Param   from query int true "Source currency ID"
// @Param   to query int true "Target currency ID"
// @Param   amount query string true "Amount in the source currency"
// @Success 200 {object} dto.ConversionResponse
// @Failure 400 {object} map[string]string "Invalid input, pair mismatch or invalid stored rate"
// @Failure 404 {object} map[string]string "Quote not found"
// @Failure 409 {object} map[string]string "Quote annulled"
// @Failure 500 {object} map[string]string "Failed to convert amount"
// @Security BearerAuth
// @Router /conversions [get]
func (h *conversionHandler) previewConversion(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var query dto.ConversionQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		logger.Warn("Failed to bind query for conversion", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid query parameters: " + err.Error()})
		return
	}

	conv, err := h.conversionService.Convert(c.Request.Context(), query.ToConversionRequest())
	if err != nil {
		respondError(c, logger, err, "Failed to convert amount")
		return
	}

	c.JSON(http.StatusOK, dto.ToConversionResponse(conv))
}
