package handlers

import (
	"log/slog"
	"net/http"

	portssvc "github.com/SscSPs/fx_settlement/internal/core/ports/services"
	"github.com/SscSPs/fx_settlement/internal/dto"
	"github.com/SscSPs/fx_settlement/internal/middleware"
	"github.com/gin-gonic/gin"
)

// quoteHandler handles HTTP requests related to exchange quotes.
type quoteHandler struct {
	quoteService portssvc.QuoteSvcFacade
}

func newQuoteHandler(qs portssvc.QuoteSvcFacade) *quoteHandler {
	return &quoteHandler{
		quoteService: qs,
	}
}

// registerQuoteRoutes registers routes related to quotes.
func registerQuoteRoutes(rg *gin.RouterGroup, quoteService portssvc.QuoteSvcFacade, mutating ...gin.HandlerFunc) {
	h := newQuoteHandler(quoteService)

	quotes := rg.Group("/quotes")
	{
		quotes.GET("", h.listCurrentQuotes)
		quotes.GET("/:quoteID", h.getQuote)
	}

	writes := quotes.Group("", mutating...)
	{
		writes.POST("", h.registerQuote)
		writes.POST("/:quoteID/annul", h.annulQuote)
	}
}

// registerQuote godoc
// @Summary Register an exchange quote
// @Description Stores a new active buy/sell quote for an ordered currency pair. The quote applies in both directions.
// @Tags quotes
// @Accept  json
// @Produce  json
// @Param   quote body dto.RegisterQuoteRequest true "Quote details"
// @Success 201 {object} dto.QuoteResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Failed to register quote"
// @Security BearerAuth
// @Router /quotes [post]
func (h *quoteHandler) registerQuote(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.RegisterQuoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for RegisterQuote", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	actorID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		logger.Error("Actor ID not found in context")
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	quote, err := h.quoteService.RegisterQuote(c.Request.Context(), req, actorID)
	if err != nil {
		respondError(c, logger, err, "Failed to register quote")
		return
	}

	logger.Info("Quote registered", slog.Int64("quote_id", quote.QuoteID))
	c.JSON(http.StatusCreated, dto.ToQuoteResponse(quote))
}

// listCurrentQuotes godoc
// @Summary List current quotes
// @Description Returns the most recently changed active quote of every ordered currency pair
// @Tags quotes
// @Produce  json
// @Success 200 {array} dto.CurrentQuoteResponse
// @Failure 500 {object} map[string]string "Failed to list quotes"
// @Security BearerAuth
// @Router /quotes [get]
func (h *quoteHandler) listCurrentQuotes(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	listings, err := h.quoteService.ListCurrentQuotes(c.Request.Context())
	if err != nil {
		respondError(c, logger, err, "Failed to list quotes")
		return
	}

	c.JSON(http.StatusOK, dto.ToCurrentQuoteResponses(listings))
}

// getQuote godoc
// @Summary Get a quote
// @Description Retrieves a quote by id, whether active or annulled
// @Tags quotes
// @Produce  json
// @Param   quoteID path int true "Quote ID"
// @Success 200 {object} dto.QuoteResponse
// @Failure 400 {object} map[string]string "Invalid quote id"
// @Failure 404 {object} map[string]string "Quote not found"
// @Failure 500 {object} map[string]string "Failed to retrieve quote"
// @Security BearerAuth
// @Router /quotes/{quoteID} [get]
func (h *quoteHandler) getQuote(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	quoteID, err := idParam(c, "quoteID")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	quote, err := h.quoteService.GetQuote(c.Request.Context(), quoteID)
	if err != nil {
		respondError(c, logger.With(slog.Int64("quote_id", quoteID)), err, "Failed to retrieve quote")
		return
	}

	c.JSON(http.StatusOK, dto.ToQuoteResponse(quote))
}

// annulQuote godoc
// @Summary Annul a quote
// @Description Deactivates an active quote. Annulled quotes can no longer price conversions or payments.
// @Tags quotes
// @Produce  json
// @Param   quoteID path int true "Quote ID"
// @Success 200 {object} dto.AnnulQuoteResponse
// @Failure 400 {object} map[string]string "Invalid quote id"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Quote not found or already annulled"
// @Failure 500 {object} map[string]string "Failed to annul quote"
// @Security BearerAuth
// @Router /quotes/{quoteID}/annul [post]
func (h *quoteHandler) annulQuote(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	quoteID, err := idParam(c, "quoteID")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	actorID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		logger.Error("Actor ID not found in context")
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	logger = logger.With(slog.Int64("quote_id", quoteID))
	quote, err := h.quoteService.AnnulQuote(c.Request.Context(), quoteID, actorID)
	if err != nil {
		respondError(c, logger, err, "Failed to annul quote")
		return
	}

	logger.Info("Quote annulled")
	c.JSON(http.StatusOK, dto.AnnulQuoteResponse{
		Message: "Quote annulled successfully",
		Quote:   dto.ToQuoteResponse(quote),
	})
}
