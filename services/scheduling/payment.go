package scheduling

import (
	"context"
	"errors"
	"fmt"
	"time"

	"clinicore/models"

	"github.com/google/uuid"
	"github.com/stripe/stripe-go/v76"
	"github.com/stripe/stripe-go/v76/paymentintent"
	"go.uber.org/zap"
)

// PaymentGateway runs a charge against a payment processor.
type PaymentGateway interface {
	Charge(ctx context.Context, req models.PaymentRequest) (*models.PaymentReceipt, error)
}

// --- Stripe gateway ---

type StripeGateway struct {
	logger *zap.Logger
}

// NewStripeGateway returns a gateway backed by Stripe PaymentIntents. The
// global stripe.Key must be set before the first charge.
func NewStripeGateway(logger *zap.Logger) *StripeGateway {
	return &StripeGateway{logger: logger}
}

func (g *StripeGateway) Charge(ctx context.Context, req models.PaymentRequest) (*models.PaymentReceipt, error) {
	if err := validateChargeRequest(req); err != nil {
		return nil, fmt.Errorf("invalid payment request: %w", err)
	}

	params := &stripe.PaymentIntentParams{
		Params:        stripe.Params{Context: ctx},
		Amount:        stripe.Int64(int64(req.Amount)),
		Currency:      stripe.String(req.Currency),
		Description:   stripe.String(req.Description),
		Confirm:       stripe.Bool(true),
		PaymentMethod: stripe.String("pm_card_visa"),
	}
	params.AddMetadata("appointmentId", req.AppointmentID)
	for k, v := range req.Metadata {
		params.AddMetadata(k, v)
	}

	pi, err := paymentintent.New(params)
	if err != nil {
		return nil, fmt.Errorf("stripe charge failed: %w", err)
	}
	if pi.Status != stripe.PaymentIntentStatusSucceeded {
		return nil, fmt.Errorf("payment not completed, intent status %s", pi.Status)
	}

	g.logger.Info("stripe payment succeeded",
		zap.String("appointmentId", req.AppointmentID),
		zap.String("paymentIntent", pi.ID))

	return &models.PaymentReceipt{
		Provider:    "stripe",
		TxnRef:      pi.ID,
		Amount:      req.Amount,
		Currency:    req.Currency,
		ProcessedAt: time.Now(),
	}, nil
}

// --- Simulated gateway ---

// SimulatedGateway approves every valid charge unless a Decline hook rejects
// it. Used in development and tests.
type SimulatedGateway struct {
	logger *zap.Logger
	// Decline, when non-nil, forces a failure for matching requests.
	Decline func(req models.PaymentRequest) bool
}

// NewSimulatedGateway returns the development/test gateway.
func NewSimulatedGateway(logger *zap.Logger) *SimulatedGateway {
	return &SimulatedGateway{logger: logger}
}

func (g *SimulatedGateway) Charge(ctx context.Context, req models.PaymentRequest) (*models.PaymentReceipt, error) {
	if err := validateChargeRequest(req); err != nil {
		return nil, fmt.Errorf("invalid payment request: %w", err)
	}
	if g.Decline != nil && g.Decline(req) {
		return nil, errors.New("card declined")
	}

	receipt := &models.PaymentReceipt{
		Provider:    "simulated",
		TxnRef:      "sim_" + uuid.New().String(),
		Amount:      req.Amount,
		Currency:    req.Currency,
		ProcessedAt: time.Now(),
	}
	if g.logger != nil {
		g.logger.Info("simulated payment succeeded",
			zap.String("appointmentId", req.AppointmentID),
			zap.String("txnRef", receipt.TxnRef))
	}
	return receipt, nil
}

func validateChargeRequest(req models.PaymentRequest) error {
	if req.Amount <= 0 {
		return errors.New("invalid payment amount")
	}
	if req.PatientID == "" {
		return errors.New("missing patient ID")
	}
	if req.Currency == "" {
		return errors.New("missing currency")
	}
	return nil
}
