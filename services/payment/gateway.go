package payment

import (
	"context"
	"fmt"
	"time"

	"spacehub/config"

	"github.com/stripe/stripe-go/v76"
	"github.com/stripe/stripe-go/v76/refund"
	"github.com/stripe/stripe-go/v76/transferreversal"
	"go.uber.org/zap"
)

// Gateway is the payment collaborator the refund workflow talks to. Amounts
// are integer cents.
type Gateway interface {
	Refund(ctx context.Context, chargeID string, amountCents int64, metadata map[string]string) (string, error)
	ReverseTransfer(ctx context.Context, transferID string, amountCents int64) (string, error)
}

// StripeGateway implements Gateway against the Stripe API. Every call is
// bounded by the configured timeout; a timed-out call is reported as a
// failure and must never be assumed successful.
type StripeGateway struct {
	logger  *zap.Logger
	timeout time.Duration
}

// NewStripeGateway constructs a StripeGateway using the configured timeout.
func NewStripeGateway(logger *zap.Logger) *StripeGateway {
	timeout := time.Duration(config.AppConfig.GatewayTimeoutSeconds) * time.Second
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	return &StripeGateway{
		logger:  logger,
		timeout: timeout,
	}
}

// Refund issues a refund against the payment intent the seeker was charged on.
func (g *StripeGateway) Refund(ctx context.Context, chargeID string, amountCents int64, metadata map[string]string) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, g.timeout)
	defer cancel()

	params := &stripe.RefundParams{
		PaymentIntent: stripe.String(chargeID),
		Amount:        stripe.Int64(amountCents),
	}
	params.Context = ctx
	for k, v := range metadata {
		params.AddMetadata(k, v)
	}

	res, err := refund.New(params)
	if err != nil {
		return "", fmt.Errorf("stripe refund for %s: %w", chargeID, err)
	}

	g.logger.Info("Stripe refund created",
		zap.String("chargeId", chargeID),
		zap.String("refundId", res.ID),
		zap.Int64("amountCents", amountCents))
	return res.ID, nil
}

// ReverseTransfer claws back part of the partner payout for split refunds.
func (g *StripeGateway) ReverseTransfer(ctx context.Context, transferID string, amountCents int64) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, g.timeout)
	defer cancel()

	params := &stripe.TransferReversalParams{
		ID:     stripe.String(transferID),
		Amount: stripe.Int64(amountCents),
	}
	params.Context = ctx

	res, err := transferreversal.New(params)
	if err != nil {
		return "", fmt.Errorf("stripe transfer reversal for %s: %w", transferID, err)
	}

	g.logger.Info("Stripe transfer reversal created",
		zap.String("transferId", transferID),
		zap.String("reversalId", res.ID),
		zap.Int64("amountCents", amountCents))
	return res.ID, nil
}

var _ Gateway = (*StripeGateway)(nil)
