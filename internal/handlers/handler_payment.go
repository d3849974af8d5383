package handlers

import (
	"fmt"
	"log/slog"
	"net/http"
	"strings"

	"github.com/SscSPs/fx_settlement/internal/core/domain"
	portssvc "github.com/SscSPs/fx_settlement/internal/core/ports/services"
	"github.com/SscSPs/fx_settlement/internal/dto"
	"github.com/SscSPs/fx_settlement/internal/middleware"
	"github.com/gin-gonic/gin"
)

// idempotencyKeyHeader lets clients retry a payment registration safely.
const idempotencyKeyHeader = "Idempotency-Key"

// paymentHandler handles HTTP requests related to payments and the invoices they settle.
type paymentHandler struct {
	paymentService portssvc.PaymentSvcFacade
}

func newPaymentHandler(ps portssvc.PaymentSvcFacade) *paymentHandler {
	return &paymentHandler{
		paymentService: ps,
	}
}

// registerPaymentRoutes registers the payment and invoice routes.
func registerPaymentRoutes(rg *gin.RouterGroup, paymentService portssvc.PaymentSvcFacade, mutating ...gin.HandlerFunc) {
	h := newPaymentHandler(paymentService)

	payments := rg.Group("/payments", mutating...)
	{
		payments.POST("", h.registerPayment)
	}

	invoices := rg.Group("/invoices")
	{
		invoices.GET("/:invoiceID", h.getInvoice)
		invoices.GET("/:invoiceID/payments", h.listInvoicePayments)
	}
}

// registerPayment godoc
// @Summary Register a payment
// @Description Applies a payment to an invoice. Foreign-currency payments are converted with the sell side of the quote and rounded to the invoice currency precision. The invoice is settled when the paid total reaches its total.
// @Tags payments
// @Accept  json
// @Produce  json
// @Param   Idempotency-Key header string false "Client key making retries safe"
// @Param   payment body dto.RegisterPaymentRequest true "Payment details"
// @Success 200 {object} dto.PaymentResponse
// @Failure 400 {object} map[string]string "Invalid input, pair mismatch or missing base currency"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Invoice or quote not found"
// @Failure 409 {object} map[string]string "Overpayment, cancelled invoice, annulled quote or reused idempotency key"
// @Failure 500 {object} map[string]string "Failed to register payment"
// @Security BearerAuth
// @Router /payments [post]
func (h *paymentHandler) registerPayment(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.RegisterPaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for RegisterPayment", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	actorID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		logger.Error("Actor ID not found in context")
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	var idempotencyKey *string
	if key := strings.TrimSpace(c.GetHeader(idempotencyKeyHeader)); key != "" {
		if len(key) > domain.MaxIdempotencyKeyLength {
			c.JSON(http.StatusBadRequest, gin.H{"error": fmt.Sprintf("%s must be at most %d characters", idempotencyKeyHeader, domain.MaxIdempotencyKeyLength)})
			return
		}
		idempotencyKey = &key
	}

	logger = logger.With(slog.Int64("invoice_id", req.InvoiceID))
	payment, err := h.paymentService.RegisterPayment(c.Request.Context(), req.ToPaymentRegistration(idempotencyKey), actorID)
	if err != nil {
		respondError(c, logger, err, "Failed to register payment")
		return
	}

	logger.Info("Payment registered", slog.Int64("payment_id", payment.PaymentID))
	c.JSON(http.StatusOK, dto.ToPaymentResponse(payment))
}

// getInvoice godoc
// @Summary Get an invoice
// @Description Returns an invoice with its paid and outstanding amounts recomputed from its successful payments
// @Tags invoices
// @Produce  json
// @Param   invoiceID path int true "Invoice ID"
// @Success 200 {object} dto.InvoiceResponse
// @Failure 400 {object} map[string]string "Invalid invoice id"
// @Failure 404 {object} map[string]string "Invoice not found"
// @Failure 500 {object} map[string]string "Failed to retrieve invoice"
// @Security BearerAuth
// @Router /invoices/{invoiceID} [get]
func (h *paymentHandler) getInvoice(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	invoiceID, err := idParam(c, "invoiceID")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	balance, err := h.paymentService.GetInvoiceBalance(c.Request.Context(), invoiceID)
	if err != nil {
		respondError(c, logger.With(slog.Int64("invoice_id", invoiceID)), err, "Failed to retrieve invoice")
		return
	}

	c.JSON(http.StatusOK, dto.ToInvoiceResponse(balance))
}

// listInvoicePayments godoc
// @Summary List the payments of an invoice
// @Description Newest first, paginated with an opaque next token
// @Tags invoices
// @Produce  json
// @Param   invoiceID path int true "Invoice ID"
// @Param   limit query int false "Page size (1-100)"
// @Param   nextToken query string false "Token returned by the previous page"
// @Success 200 {object} dto.ListPaymentsResponse
// @Failure 400 {object} map[string]string "Invalid invoice id, limit or token"
// @Failure 404 {object} map[string]string "Invoice not found"
// @Failure 500 {object} map[string]string "Failed to list payments"
// @Security BearerAuth
// @Router /invoices/{invoiceID}/payments [get]
func (h *paymentHandler) listInvoicePayments(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	invoiceID, err := idParam(c, "invoiceID")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var params dto.ListPaymentsParams
	if err := c.ShouldBindQuery(&params); err != nil {
		logger.Warn("Failed to bind query for ListInvoicePayments", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid query parameters: " + err.Error()})
		return
	}

	page, err := h.paymentService.ListInvoicePayments(c.Request.Context(), invoiceID, params)
	if err != nil {
		respondError(c, logger.With(slog.Int64("invoice_id", invoiceID)), err, "Failed to list payments")
		return
	}

	c.JSON(http.StatusOK, page)
}
