package payments

import (
	"context"
	"encoding/json"
	"errors"
	"strconv"
	"strings"

	"printshop_ops/internal/usecase/interfaces"

	"github.com/mercadopago/sdk-go/pkg/config"
	"github.com/mercadopago/sdk-go/pkg/payment"
	"go.uber.org/zap"
)

var (
	ErrMissingMercadoPagoAccessToken   = errors.New("missing MERCADOPAGO_ACCESS_TOKEN")
	ErrMercadoPagoGatewayNotConfigured = errors.New("mercado pago gateway not configured")
)

// MercadoPagoGateway charges cards through the Mercado Pago payments API.
type MercadoPagoGateway struct {
	client payment.Client
	log    *zap.Logger
}

var _ interfaces.IPaymentGateway = (*MercadoPagoGateway)(nil)

func NewMercadoPagoGateway(accessToken string, logger *zap.Logger) (*MercadoPagoGateway, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	accessToken = strings.TrimSpace(accessToken)
	if accessToken == "" {
		return nil, ErrMissingMercadoPagoAccessToken
	}

	cfg, err := config.New(accessToken)
	if err != nil {
		logger.Error("[payment][gateway] failed creating sdk config", zap.Error(err))
		return nil, err
	}
	logger.Info("[payment][gateway] Mercado Pago client initialized",
		zap.Bool("sandbox", strings.HasPrefix(accessToken, "TEST-")))

	return newGateway(payment.NewClient(cfg), logger), nil
}

func newGateway(client payment.Client, logger *zap.Logger) *MercadoPagoGateway {
	return &MercadoPagoGateway{client: client, log: logger}
}

func (g *MercadoPagoGateway) CreatePayment(ctx context.Context, requestPayload json.RawMessage) (providerPaymentID string, providerStatus string, providerResponse json.RawMessage, err error) {
	if g == nil || g.client == nil {
		return "", "", nil, ErrMercadoPagoGatewayNotConfigured
	}
	g.log.Debug("[payment][gateway] create start", zap.Int("payload_len", len(requestPayload)))

	var req payment.Request
	if err := json.Unmarshal(requestPayload, &req); err != nil {
		g.log.Warn("[payment][gateway] payload unmarshal failed", zap.Error(err))
		return "", "", nil, err
	}

	resp, err := g.client.Create(ctx, req)
	if err != nil {
		g.log.Warn("[payment][gateway] sdk create failed", zap.Error(err))
		return "", "", nil, err
	}

	b, err := json.Marshal(resp)
	if err != nil {
		return "", "", nil, err
	}
	id := strconv.Itoa(resp.ID)
	g.log.Info("[payment][gateway] create success",
		zap.String("provider_payment_id", id), zap.String("provider_status", resp.Status))

	return id, resp.Status, b, nil
}
