package handlers

import (
	"errors"
	"net/http"

	request "printshop_ops/internal/adapter/http/dto/request"
	response "printshop_ops/internal/adapter/http/dto/response"
	"printshop_ops/internal/domain/entities"
	"printshop_ops/internal/usecase"
	"printshop_ops/pkg"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// InvoiceHandler handles manual payments and card captures.
type InvoiceHandler struct {
	usecase usecase.IInvoiceUseCase
	log     *zap.Logger
}

func NewInvoiceHandler(uc usecase.IInvoiceUseCase, logger *zap.Logger) *InvoiceHandler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &InvoiceHandler{usecase: uc, log: logger}
}

// RecordPayment godoc
// @Summary  Record a manual payment against an invoice
// @Tags     invoices
// @Accept   json
// @Produce  json
// @Param    invoice_id path string true "Invoice ID"
// @Param    body body request.PaymentRequest true "Payment"
// @Success  200 {object} response.InvoiceResponse
// @Failure  400 {object} pkg.HTTPError
// @Failure  404 {object} pkg.HTTPError
// @Router   /invoices/{invoice_id}/payments [post]
func (h *InvoiceHandler) RecordPayment(c *gin.Context) {
	invoiceID := c.Param("invoice_id")
	var payload request.PaymentRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		h.log.Warn("[invoice][handler] invalid payment payload", zap.String("invoice_id", invoiceID), zap.Error(err))
		writeError(c, errInvalidRequest)
		return
	}

	invoice, err := h.usecase.RecordPayment(
		c.Request.Context(),
		invoiceID,
		*payload.Amount,
		entities.PaymentMethod(payload.ResolveMethod()),
		payload.ResolveReference(),
	)
	if err != nil {
		h.log.Warn("[invoice][handler] record payment failed", zap.String("invoice_id", invoiceID), zap.Error(err))
		writeError(c, mapInvoiceError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromInvoice(invoice))
}

// CapturePayment godoc
// @Summary      Capture a card payment through Mercado Pago
// @Description  Accepts {"amount", "mp_payload"} or a bare Mercado Pago payment request. The payment is recorded only when the provider approves it.
// @Tags         invoices
// @Accept       json
// @Produce      json
// @Param        invoice_id path string true "Invoice ID"
// @Param        body body request.CaptureRequest true "Capture"
// @Success      200 {object} response.InvoiceResponse
// @Failure      400 {object} pkg.HTTPError
// @Failure      401 {object} pkg.HTTPError
// @Failure      402 {object} pkg.HTTPError
// @Failure      404 {object} pkg.HTTPError
// @Router       /invoices/{invoice_id}/payments/capture [post]
func (h *InvoiceHandler) CapturePayment(c *gin.Context) {
	invoiceID := c.Param("invoice_id")
	h.log.Info("[invoice][handler] capture start", zap.String("invoice_id", invoiceID))

	raw, err := c.GetRawData()
	if err != nil {
		h.log.Warn("[invoice][handler] read body failed", zap.String("invoice_id", invoiceID), zap.Error(err))
		writeError(c, errInvalidRequest)
		return
	}
	capture, err := request.ParseCaptureRequest(raw)
	if err != nil {
		h.log.Warn("[invoice][handler] invalid capture payload", zap.String("invoice_id", invoiceID), zap.Error(err))
		writeError(c, errInvalidRequest)
		return
	}

	invoice, err := h.usecase.CapturePayment(c.Request.Context(), invoiceID, capture.Amount, capture.MPPayload)
	if err != nil {
		h.log.Warn("[invoice][handler] capture failed", zap.String("invoice_id", invoiceID), zap.Error(err))
		writeError(c, mapInvoiceError(err))
		return
	}
	h.log.Info("[invoice][handler] capture success",
		zap.String("invoice_id", invoiceID),
		zap.Float64("balance_due", invoice.BalanceDue),
		zap.String("status", string(invoice.Status)),
	)

	c.JSON(http.StatusOK, response.FromInvoice(invoice))
}

func mapInvoiceError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidInvoiceID),
		errors.Is(err, usecase.ErrInvalidCaptureAmount),
		errors.Is(err, usecase.ErrInvalidMPPayload),
		errors.Is(err, usecase.ErrPaymentGatewayBadRequest):
		return errInvalidRequest
	case errors.Is(err, usecase.ErrInvalidPaymentMethod):
		return pkg.NewDomainErrorSimple("INVALID_PAYMENT_METHOD", "Invalid payment method", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrPaymentGatewayCustomerNotFound):
		return pkg.NewDomainErrorSimple("PAYMENT_PROVIDER_CUSTOMER_NOT_FOUND", "Payer not found for this Mercado Pago test context", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrPaymentGatewayInvalidUsers):
		return pkg.NewDomainErrorSimple("PAYMENT_PROVIDER_INVALID_USERS", "Invalid users involved between seller token and payer test user", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrPaymentGatewayUnauthorized):
		return pkg.NewDomainErrorSimple("PAYMENT_PROVIDER_UNAUTHORIZED", "Payment provider unauthorized", http.StatusUnauthorized)
	case errors.Is(err, usecase.ErrPaymentNotApproved):
		return pkg.NewDomainErrorSimple("PAYMENT_NOT_APPROVED", "Payment was not approved by the provider", http.StatusPaymentRequired)
	case errors.Is(err, usecase.ErrPaymentGatewayNotConfigured):
		return pkg.NewDomainErrorSimple("PAYMENT_PROVIDER_UNAVAILABLE", "Payment provider not configured", http.StatusServiceUnavailable)
	case errors.Is(err, usecase.ErrInvoiceNotFound):
		return pkg.NewDomainErrorSimple("INVOICE_NOT_FOUND", "Invoice not found", http.StatusNotFound)
	default:
		return internalError(err)
	}
}
