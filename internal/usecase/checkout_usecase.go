package usecase

import (
	"context"
	"fmt"
	"time"

	"storefront/internal/clients"
	"storefront/internal/domain"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

type CheckoutUseCase interface {
	Review(sessionID string) (*domain.CheckoutReview, error)
	Confirm(ctx context.Context, sessionID string, method domain.PaymentMethod, details domain.PaymentDetails) (*domain.CheckoutResult, error)
}

type checkoutUseCase struct {
	sessions domain.SessionRepository
	payments clients.PaymentProvider
	log      *logrus.Logger
}

func NewCheckoutUseCase(sessions domain.SessionRepository, payments clients.PaymentProvider, logger *logrus.Logger) CheckoutUseCase {
	return &checkoutUseCase{
		sessions: sessions,
		payments: payments,
		log:      logger,
	}
}

// Review is the entry point of a checkout attempt. It enforces the two entry
// guards: an authenticated session user and a non-empty cart.
func (uc *checkoutUseCase) Review(sessionID string) (*domain.CheckoutReview, error) {
	user := uc.sessions.User(sessionID)
	if user == nil {
		uc.log.Warn("Use Case: Checkout entered without a session user, requesting authentication")
		return nil, domain.ErrLoginRequired
	}

	items := uc.sessions.CartItems(sessionID)
	if len(items) == 0 {
		uc.log.Warn("Use Case: Checkout entered with an empty cart")
		return nil, domain.ErrEmptyCart
	}

	uc.log.Infof("Use Case: Checkout review for user '%s' with %d cart entries", user.Name, len(items))
	return &domain.CheckoutReview{
		State: domain.CheckoutStateReview,
		Items: items,
		Total: CartTotal(items),
		User:  *user,
	}, nil
}

// Confirm runs one confirmation attempt: REVIEW guards, then PAYMENT via the
// provider, then either SUCCESS (order committed, cart cleared) or FAILED
// (nothing committed, cart untouched, retry is a fresh Confirm call).
func (uc *checkoutUseCase) Confirm(ctx context.Context, sessionID string, method domain.PaymentMethod, details domain.PaymentDetails) (*domain.CheckoutResult, error) {
	if !domain.IsValidPaymentMethod(method) {
		uc.log.Warnf("Use Case: Checkout confirmation with unknown payment method '%s'", method)
		return nil, fmt.Errorf("invalid payment method: %s", method)
	}

	user := uc.sessions.User(sessionID)
	if user == nil {
		uc.log.Warn("Use Case: Checkout confirmation blocked, no session user")
		return nil, domain.ErrLoginRequired
	}

	// Snapshot before charging: the order is built from the cart as it was
	// at confirmation time, regardless of later mutations.
	items := uc.sessions.CartItems(sessionID)
	if len(items) == 0 {
		uc.log.Warn("Use Case: Checkout confirmation blocked, cart is empty")
		return nil, domain.ErrEmptyCart
	}
	total := CartTotal(items)

	uc.log.Infof("Use Case: Entering payment for user '%s' (%.2f via %s)", user.Name, total, method)
	err := uc.payments.Charge(ctx, clients.ChargeRequest{
		Amount:  total,
		Method:  method,
		Details: details,
	})
	if err != nil {
		uc.log.Errorf("Use Case: Payment failed for user '%s': %v", user.Name, err)
		return &domain.CheckoutResult{
			State:         domain.CheckoutStateFailed,
			FailureReason: err.Error(),
		}, nil
	}

	order := domain.Order{
		ID:            uuid.NewString(),
		Date:          time.Now().UTC(),
		Items:         items,
		Total:         total,
		Status:        domain.StatusPending,
		PaymentMethod: method,
	}

	uc.sessions.AddOrder(sessionID, order)
	uc.sessions.ClearCart(sessionID)
	uc.log.Infof("Use Case: Order %s confirmed for user '%s' (%.2f via %s), cart cleared", order.ID, user.Name, total, method)

	return &domain.CheckoutResult{
		State: domain.CheckoutStateSuccess,
		Order: &order,
	}, nil
}
