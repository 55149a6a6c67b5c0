package clients

import (
	"context"
	"errors"
	"fmt"
	"time"

	"storefront/internal/domain"

	"github.com/sirupsen/logrus"
)

type ChargeRequest struct {
	Amount  float64
	Method  domain.PaymentMethod
	Details domain.PaymentDetails
}

// PaymentProvider abstracts the external payment confirmation call so the
// fixed-delay stub and a real gateway integration are interchangeable.
type PaymentProvider interface {
	Charge(ctx context.Context, req ChargeRequest) error
}

type simulatedPaymentProvider struct {
	delay time.Duration
	log   *logrus.Logger
}

// NewSimulatedPaymentProvider stands in for a real payment gateway. It
// confirms every charge after a fixed latency and honors context
// cancellation, so a caller can still impose a deadline on the call.
func NewSimulatedPaymentProvider(delay time.Duration, logger *logrus.Logger) PaymentProvider {
	return &simulatedPaymentProvider{
		delay: delay,
		log:   logger,
	}
}

func (p *simulatedPaymentProvider) Charge(ctx context.Context, req ChargeRequest) error {
	if req.Amount < 0 {
		return errors.New("charge amount cannot be negative")
	}
	if !domain.IsValidPaymentMethod(req.Method) {
		return fmt.Errorf("unsupported payment method: %s", req.Method)
	}

	p.log.Infof("PaymentProvider: confirming charge of %.2f via %s (simulated, %s latency)", req.Amount, req.Method, p.delay)

	timer := time.NewTimer(p.delay)
	defer timer.Stop()

	select {
	case <-timer.C:
		p.log.Infof("PaymentProvider: charge of %.2f via %s confirmed", req.Amount, req.Method)
		return nil
	case <-ctx.Done():
		p.log.Warnf("PaymentProvider: charge interrupted before confirmation: %v", ctx.Err())
		return fmt.Errorf("payment confirmation interrupted: %w", ctx.Err())
	}
}
