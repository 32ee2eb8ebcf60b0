package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"printshop_ops/internal/domain/entities"
	"printshop_ops/internal/infrastructure/idgen"
	mock_interfaces "printshop_ops/internal/usecase/interfaces/mocks"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func invoiceDataset() entities.Dataset {
	ds := baseDataset()
	ds.Invoices = []entities.Invoice{{
		ID:          "inv-001",
		OrderID:     "order-001",
		Number:      "INV-261001-44",
		Status:      entities.InvoiceStatusIssued,
		IssueDate:   day(-5),
		DueDate:     entities.TimePtr(day(10)),
		TotalAmount: 100800,
		BalanceDue:  60800,
		Payments: []entities.Payment{
			{ID: "pay-001", InvoiceID: "inv-001", Amount: 40000, Method: entities.PaymentMethodBankTransfer, Date: day(-5), Reference: "UBP-45891"},
		},
	}}
	return ds
}

func newInvoiceUseCase(t *testing.T, gateway *mock_interfaces.MockIPaymentGateway, mockMode bool) *InvoiceUseCase {
	t.Helper()
	var uc *InvoiceUseCase
	if gateway == nil {
		uc = NewInvoiceUseCase(newTestStore(t, invoiceDataset()), idgen.NewSequenceAllocator(), nil, mockMode, nil)
	} else {
		uc = NewInvoiceUseCase(newTestStore(t, invoiceDataset()), idgen.NewSequenceAllocator(), gateway, mockMode, nil)
	}
	uc.now = fixedClock
	return uc
}

func TestInvoiceUseCase_RecordPayment(t *testing.T) {
	t.Run("partial payment keeps status", func(t *testing.T) {
		uc := newInvoiceUseCase(t, nil, false)
		inv, err := uc.RecordPayment(context.Background(), "inv-001", 800, entities.PaymentMethodGCash, " GC-1 ")
		require.NoError(t, err)
		assert.Equal(t, 60000.0, inv.BalanceDue)
		assert.Equal(t, entities.InvoiceStatusIssued, inv.Status)
		require.Len(t, inv.Payments, 2)
		last := inv.Payments[1]
		assert.Equal(t, "pay-0001", last.ID)
		assert.Equal(t, "inv-001", last.InvoiceID)
		assert.Equal(t, entities.PaymentMethodGCash, last.Method)
		assert.Equal(t, fixedNow, last.Date)
		assert.Equal(t, "GC-1", last.Reference)
	})

	t.Run("zero amount is a no-op on balance and status", func(t *testing.T) {
		uc := newInvoiceUseCase(t, nil, false)
		inv, err := uc.RecordPayment(context.Background(), "inv-001", 0, entities.PaymentMethodCash, "")
		require.NoError(t, err)
		assert.Equal(t, 60800.0, inv.BalanceDue)
		assert.Equal(t, entities.InvoiceStatusIssued, inv.Status)
	})

	t.Run("exact remaining balance pays the invoice", func(t *testing.T) {
		uc := newInvoiceUseCase(t, nil, false)
		inv, err := uc.RecordPayment(context.Background(), "inv-001", 60800, entities.PaymentMethodCash, "")
		require.NoError(t, err)
		assert.Zero(t, inv.BalanceDue)
		assert.Equal(t, entities.InvoiceStatusPaid, inv.Status)
	})

	t.Run("overpayment is absorbed", func(t *testing.T) {
		uc := newInvoiceUseCase(t, nil, false)
		inv, err := uc.RecordPayment(context.Background(), "inv-001", 99999, entities.PaymentMethodCash, "")
		require.NoError(t, err)
		assert.Zero(t, inv.BalanceDue)
		assert.Equal(t, entities.InvoiceStatusPaid, inv.Status)
		assert.Equal(t, 99999.0, inv.Payments[1].Amount)
	})

	t.Run("invalid method", func(t *testing.T) {
		uc := newInvoiceUseCase(t, nil, false)
		_, err := uc.RecordPayment(context.Background(), "inv-001", 10, "cheque", "")
		if !errors.Is(err, ErrInvalidPaymentMethod) {
			t.Fatalf("expected ErrInvalidPaymentMethod, got %v", err)
		}
	})

	t.Run("not found", func(t *testing.T) {
		uc := newInvoiceUseCase(t, nil, false)
		_, err := uc.RecordPayment(context.Background(), "inv-404", 10, entities.PaymentMethodCash, "")
		if !errors.Is(err, ErrInvoiceNotFound) {
			t.Fatalf("expected ErrInvoiceNotFound, got %v", err)
		}
	})
}

func TestInvoiceUseCase_CapturePayment_Validations(t *testing.T) {
	t.Run("empty invoice id", func(t *testing.T) {
		uc := newInvoiceUseCase(t, nil, false)
		_, err := uc.CapturePayment(context.Background(), " ", 100, json.RawMessage(`{}`))
		if !errors.Is(err, ErrInvalidInvoiceID) {
			t.Fatalf("expected ErrInvalidInvoiceID, got %v", err)
		}
	})

	t.Run("non-positive amount", func(t *testing.T) {
		uc := newInvoiceUseCase(t, nil, false)
		_, err := uc.CapturePayment(context.Background(), "inv-001", 0, json.RawMessage(`{}`))
		if !errors.Is(err, ErrInvalidCaptureAmount) {
			t.Fatalf("expected ErrInvalidCaptureAmount, got %v", err)
		}
	})

	t.Run("invalid json payload", func(t *testing.T) {
		uc := newInvoiceUseCase(t, nil, false)
		_, err := uc.CapturePayment(context.Background(), "inv-001", 100, json.RawMessage(`{`))
		if !errors.Is(err, ErrInvalidMPPayload) {
			t.Fatalf("expected ErrInvalidMPPayload, got %v", err)
		}
	})

	t.Run("gateway not configured", func(t *testing.T) {
		uc := newInvoiceUseCase(t, nil, false)
		_, err := uc.CapturePayment(context.Background(), "inv-001", 100, json.RawMessage(`{"payment_method_id":"visa"}`))
		if !errors.Is(err, ErrPaymentGatewayNotConfigured) {
			t.Fatalf("expected ErrPaymentGatewayNotConfigured, got %v", err)
		}
	})

	t.Run("missing payment_method_id", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		gateway := mock_interfaces.NewMockIPaymentGateway(ctrl)
		uc := newInvoiceUseCase(t, gateway, false)

		_, err := uc.CapturePayment(context.Background(), "inv-001", 100, json.RawMessage(`{"payer":{"email":"a@b.c"}}`))
		if !errors.Is(err, ErrInvalidMPPayload) {
			t.Fatalf("expected ErrInvalidMPPayload, got %v", err)
		}
	})

	t.Run("missing payer", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		gateway := mock_interfaces.NewMockIPaymentGateway(ctrl)
		uc := newInvoiceUseCase(t, gateway, false)

		_, err := uc.CapturePayment(context.Background(), "inv-001", 100, json.RawMessage(`{"payment_method_id":"visa"}`))
		if !errors.Is(err, ErrInvalidMPPayload) {
			t.Fatalf("expected ErrInvalidMPPayload, got %v", err)
		}
	})

	t.Run("unknown invoice does not reach gateway", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		gateway := mock_interfaces.NewMockIPaymentGateway(ctrl)
		uc := newInvoiceUseCase(t, gateway, false)

		_, err := uc.CapturePayment(context.Background(), "inv-404", 100, json.RawMessage(`{"payment_method_id":"visa","payer":{"id":"123"}}`))
		if !errors.Is(err, ErrInvoiceNotFound) {
			t.Fatalf("expected ErrInvoiceNotFound, got %v", err)
		}
	})
}

func TestInvoiceUseCase_CapturePayment_Gateway(t *testing.T) {
	payload := json.RawMessage(`{"payment_method_id":"visa","token":"tok","transaction_amount":1,"payer":{"email":"buyer@example.com"}}`)

	t.Run("success enriches payload and records card payment", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		gateway := mock_interfaces.NewMockIPaymentGateway(ctrl)
		uc := newInvoiceUseCase(t, gateway, false)

		gateway.EXPECT().CreatePayment(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, req json.RawMessage) (string, string, json.RawMessage, error) {
				var m map[string]any
				if err := json.Unmarshal(req, &m); err != nil {
					t.Fatalf("payload not json: %v", err)
				}
				assert.Equal(t, "inv-001", m["external_reference"])
				assert.Equal(t, "Invoice INV-261001-44", m["description"])
				assert.Equal(t, 800.0, m["transaction_amount"])
				payer := m["payer"].(map[string]any)
				assert.Equal(t, "customer", payer["type"])
				return "mp-777", "approved", json.RawMessage(`{"id":777}`), nil
			})

		inv, err := uc.CapturePayment(context.Background(), "inv-001", 800, payload)
		require.NoError(t, err)
		assert.Equal(t, 60000.0, inv.BalanceDue)
		require.Len(t, inv.Payments, 2)
		assert.Equal(t, entities.PaymentMethodCard, inv.Payments[1].Method)
		assert.Equal(t, "mp-777", inv.Payments[1].Reference)
	})

	t.Run("caller description is kept", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		gateway := mock_interfaces.NewMockIPaymentGateway(ctrl)
		uc := newInvoiceUseCase(t, gateway, false)

		gateway.EXPECT().CreatePayment(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, req json.RawMessage) (string, string, json.RawMessage, error) {
				var m map[string]any
				_ = json.Unmarshal(req, &m)
				assert.Equal(t, "balance", m["description"])
				return "mp-1", "approved", nil, nil
			})

		_, err := uc.CapturePayment(context.Background(), "inv-001", 60800,
			json.RawMessage(`{"payment_method_id":"visa","description":"balance","payer":{"id":99}}`))
		require.NoError(t, err)
	})

	t.Run("not approved", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		gateway := mock_interfaces.NewMockIPaymentGateway(ctrl)
		uc := newInvoiceUseCase(t, gateway, false)

		gateway.EXPECT().CreatePayment(gomock.Any(), gomock.Any()).Return("mp-2", "rejected", nil, nil)

		_, err := uc.CapturePayment(context.Background(), "inv-001", 100, payload)
		if !errors.Is(err, ErrPaymentNotApproved) {
			t.Fatalf("expected ErrPaymentNotApproved, got %v", err)
		}
	})

	errCases := []struct {
		name string
		err  error
		want error
	}{
		{"bad request", errors.New(`{"error":"bad_request","status":400}`), ErrPaymentGatewayBadRequest},
		{"unauthorized", errors.New(`{"error":"unauthorized","status":401}`), ErrPaymentGatewayUnauthorized},
		{"invalid users", errors.New(`{"message":"Invalid users involved","code":2034}`), ErrPaymentGatewayInvalidUsers},
		{"customer not found", errors.New(`{"message":"Customer not found","code":2002}`), ErrPaymentGatewayCustomerNotFound},
	}
	for _, tc := range errCases {
		t.Run("gateway error "+tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			gateway := mock_interfaces.NewMockIPaymentGateway(ctrl)
			uc := newInvoiceUseCase(t, gateway, false)

			gateway.EXPECT().CreatePayment(gomock.Any(), gomock.Any()).Return("", "", nil, tc.err)

			_, err := uc.CapturePayment(context.Background(), "inv-001", 100, payload)
			if !errors.Is(err, tc.want) {
				t.Fatalf("expected %v, got %v", tc.want, err)
			}
		})
	}

	t.Run("unmapped gateway error passes through", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		gateway := mock_interfaces.NewMockIPaymentGateway(ctrl)
		uc := newInvoiceUseCase(t, gateway, false)

		boom := errors.New("connection reset")
		gateway.EXPECT().CreatePayment(gomock.Any(), gomock.Any()).Return("", "", nil, boom)

		_, err := uc.CapturePayment(context.Background(), "inv-001", 100, payload)
		if !errors.Is(err, boom) {
			t.Fatalf("expected passthrough error, got %v", err)
		}
	})
}

func TestInvoiceUseCase_CapturePayment_MockMode(t *testing.T) {
	uc := newInvoiceUseCase(t, nil, true)

	inv, err := uc.CapturePayment(context.Background(), "inv-001", 60800, nil)
	require.NoError(t, err)
	assert.Equal(t, entities.InvoiceStatusPaid, inv.Status)
	require.Len(t, inv.Payments, 2)
	assert.Equal(t, entities.PaymentMethodCard, inv.Payments[1].Method)
	assert.NotEmpty(t, inv.Payments[1].Reference)
}
