package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"printshop_ops/internal/domain/entities"
	"printshop_ops/internal/usecase/interfaces"

	"go.uber.org/zap"
)

var (
	ErrInvoiceNotFound                = errors.New("invoice not found")
	ErrInvalidInvoiceID               = errors.New("invalid invoice id")
	ErrInvalidPaymentMethod           = errors.New("invalid payment method")
	ErrInvalidCaptureAmount           = errors.New("capture amount must be positive")
	ErrInvalidMPPayload               = errors.New("invalid mercado pago payload")
	ErrPaymentGatewayNotConfigured    = errors.New("payment gateway not configured")
	ErrPaymentNotApproved             = errors.New("payment not approved by gateway")
	ErrPaymentGatewayBadRequest       = errors.New("payment gateway bad request")
	ErrPaymentGatewayUnauthorized     = errors.New("payment gateway unauthorized")
	ErrPaymentGatewayInvalidUsers     = errors.New("payment gateway invalid users involved")
	ErrPaymentGatewayCustomerNotFound = errors.New("payment gateway customer not found")
)

const providerStatusApproved = "approved"

// IInvoiceUseCase applies payments to invoices.
//
//   - RecordPayment appends a payment and lowers the balance, floored at zero.
//     The amount is not validated; overpayment is absorbed.
//   - CapturePayment charges a card through the payment gateway first and then
//     records the captured amount as a card payment.

type IInvoiceUseCase interface {
	RecordPayment(ctx context.Context, invoiceID string, amount float64, method entities.PaymentMethod, reference string) (entities.Invoice, error)
	CapturePayment(ctx context.Context, invoiceID string, amount float64, mpPayload json.RawMessage) (entities.Invoice, error)
}

type InvoiceUseCase struct {
	store    interfaces.IEntityStore
	ids      interfaces.IIDAllocator
	gateway  interfaces.IPaymentGateway
	mockMode bool
	log      *zap.Logger
	now      func() time.Time
}

var _ IInvoiceUseCase = (*InvoiceUseCase)(nil)

// NewInvoiceUseCase wires the engine. With mockMode the gateway is never called
// and every capture is approved locally.
func NewInvoiceUseCase(store interfaces.IEntityStore, ids interfaces.IIDAllocator, gateway interfaces.IPaymentGateway, mockMode bool, logger *zap.Logger) *InvoiceUseCase {
	return &InvoiceUseCase{
		store:    store,
		ids:      ids,
		gateway:  gateway,
		mockMode: mockMode,
		log:      loggerOrNop(logger),
		now:      utcNow,
	}
}

func (u *InvoiceUseCase) RecordPayment(ctx context.Context, invoiceID string, amount float64, method entities.PaymentMethod, reference string) (entities.Invoice, error) {
	invoiceID = strings.TrimSpace(invoiceID)
	if invoiceID == "" {
		return entities.Invoice{}, ErrInvalidInvoiceID
	}
	if !method.Valid() {
		return entities.Invoice{}, ErrInvalidPaymentMethod
	}
	return u.applyPayment(ctx, invoiceID, amount, method, strings.TrimSpace(reference))
}

func (u *InvoiceUseCase) applyPayment(ctx context.Context, invoiceID string, amount float64, method entities.PaymentMethod, reference string) (entities.Invoice, error) {
	var updated entities.Invoice
	err := u.store.Update(ctx, func(ds *entities.Dataset) error {
		inv := ds.Invoice(invoiceID)
		if inv == nil {
			return ErrInvoiceNotFound
		}
		inv.ApplyPayment(entities.Payment{
			ID:        u.ids.NewID("pay"),
			Amount:    amount,
			Method:    method,
			Date:      u.now(),
			Reference: reference,
		})
		updated = *inv
		return nil
	})
	if err != nil {
		u.log.Warn("[invoice][usecase] record payment failed", zap.String("invoice_id", invoiceID), zap.Error(err))
		return entities.Invoice{}, err
	}
	u.log.Info("[invoice][usecase] payment recorded",
		zap.String("invoice_id", invoiceID),
		zap.Float64("amount", amount),
		zap.String("method", string(method)),
		zap.Float64("balance_due", updated.BalanceDue),
		zap.String("status", string(updated.Status)),
	)
	return updated, nil
}

func (u *InvoiceUseCase) CapturePayment(ctx context.Context, invoiceID string, amount float64, mpPayload json.RawMessage) (entities.Invoice, error) {
	invoiceID = strings.TrimSpace(invoiceID)
	u.log.Info("[invoice][usecase] capture start",
		zap.String("invoice_id", invoiceID), zap.Float64("amount", amount), zap.Int("payload_len", len(mpPayload)))
	if invoiceID == "" {
		return entities.Invoice{}, ErrInvalidInvoiceID
	}
	if amount <= 0 {
		return entities.Invoice{}, ErrInvalidCaptureAmount
	}
	if len(mpPayload) == 0 || !json.Valid(mpPayload) {
		if !u.mockMode {
			u.log.Warn("[invoice][usecase] invalid payload", zap.String("invoice_id", invoiceID))
			return entities.Invoice{}, ErrInvalidMPPayload
		}
		mpPayload = json.RawMessage("{}")
	}
	if !u.mockMode && u.gateway == nil {
		return entities.Invoice{}, ErrPaymentGatewayNotConfigured
	}

	var number string
	err := u.store.View(ctx, func(ds entities.Dataset) error {
		inv := ds.Invoice(invoiceID)
		if inv == nil {
			return ErrInvoiceNotFound
		}
		number = inv.Number
		return nil
	})
	if err != nil {
		return entities.Invoice{}, err
	}

	payload, err := u.enrichPayload(mpPayload, invoiceID, number, amount)
	if err != nil {
		u.log.Warn("[invoice][usecase] payload rejected", zap.String("invoice_id", invoiceID), zap.Error(err))
		return entities.Invoice{}, err
	}

	providerID, providerStatus, err := u.charge(ctx, invoiceID, payload)
	if err != nil {
		return entities.Invoice{}, err
	}
	if providerStatus != providerStatusApproved {
		u.log.Warn("[invoice][usecase] capture not approved",
			zap.String("invoice_id", invoiceID), zap.String("provider_status", providerStatus))
		return entities.Invoice{}, fmt.Errorf("%w: status %s", ErrPaymentNotApproved, providerStatus)
	}
	u.log.Info("[invoice][usecase] capture approved",
		zap.String("invoice_id", invoiceID), zap.String("provider_payment_id", providerID))

	return u.applyPayment(ctx, invoiceID, amount, entities.PaymentMethodCard, providerID)
}

// enrichPayload links the charge to the invoice. The captured amount always
// overrides whatever transaction_amount the caller sent.
func (u *InvoiceUseCase) enrichPayload(raw json.RawMessage, invoiceID, number string, amount float64) (json.RawMessage, error) {
	var req map[string]any
	if err := json.Unmarshal(raw, &req); err != nil || req == nil {
		if !u.mockMode {
			return nil, ErrInvalidMPPayload
		}
		req = map[string]any{}
	}
	if !u.mockMode {
		if !hasNonEmptyString(req, "payment_method_id") {
			return nil, ErrInvalidMPPayload
		}
		ensurePayerType(req)
		if !hasPayer(req) {
			return nil, ErrInvalidMPPayload
		}
	}
	if _, ok := req["external_reference"]; !ok {
		req["external_reference"] = invoiceID
	}
	if _, ok := req["description"]; !ok {
		req["description"] = fmt.Sprintf("Invoice %s", number)
	}
	req["transaction_amount"] = amount
	return json.Marshal(req)
}

func (u *InvoiceUseCase) charge(ctx context.Context, invoiceID string, payload json.RawMessage) (string, string, error) {
	if u.mockMode {
		u.log.Info("[invoice][usecase] mock mode enabled; skipping payment gateway", zap.String("invoice_id", invoiceID))
		return strconv.FormatInt(u.now().UnixNano(), 10), providerStatusApproved, nil
	}

	providerID, providerStatus, _, err := u.gateway.CreatePayment(ctx, payload)
	if err != nil {
		u.log.Warn("[invoice][usecase] payment gateway failed", zap.String("invoice_id", invoiceID), zap.Error(err))
		switch {
		case isGatewayCustomerNotFound(err):
			return "", "", ErrPaymentGatewayCustomerNotFound
		case isGatewayInvalidUsers(err):
			return "", "", ErrPaymentGatewayInvalidUsers
		case isGatewayUnauthorized(err):
			return "", "", ErrPaymentGatewayUnauthorized
		case isGatewayBadRequest(err):
			return "", "", ErrPaymentGatewayBadRequest
		}
		return "", "", err
	}
	return providerID, strings.ToLower(strings.TrimSpace(providerStatus)), nil
}

func hasNonEmptyString(m map[string]any, key string) bool {
	s, ok := m[key].(string)
	return ok && strings.TrimSpace(s) != ""
}

func hasPayer(m map[string]any) bool {
	payer, ok := m["payer"].(map[string]any)
	if !ok {
		return false
	}
	if hasNonEmptyString(payer, "email") {
		return true
	}
	id, ok := payer["id"]
	if !ok || id == nil {
		return false
	}
	return strings.TrimSpace(fmt.Sprintf("%v", id)) != ""
}

func ensurePayerType(m map[string]any) {
	payer, ok := m["payer"].(map[string]any)
	if !ok {
		return
	}
	if _, ok := payer["type"]; !ok {
		payer["type"] = "customer"
	}
}

func gatewayErrorContains(err error, needles ...string) bool {
	if err == nil {
		return false
	}
	msg := strings.ToLower(err.Error())
	for _, n := range needles {
		if strings.Contains(msg, n) {
			return true
		}
	}
	return false
}

func isGatewayBadRequest(err error) bool {
	return gatewayErrorContains(err, `"error":"bad_request"`, `"status":400`)
}

func isGatewayUnauthorized(err error) bool {
	return gatewayErrorContains(err, `"error":"unauthorized"`, `"status":401`)
}

func isGatewayInvalidUsers(err error) bool {
	return gatewayErrorContains(err, "invalid users involved", `"code":2034`)
}

func isGatewayCustomerNotFound(err error) bool {
	return gatewayErrorContains(err, "customer not found", `"code":2002`)
}
