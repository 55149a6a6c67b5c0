package usecase

import (
	"errors"
	"fmt"
	"strings"

	"storefront/internal/domain"

	"github.com/sirupsen/logrus"
)

type StoreUseCase interface {
	AddToCart(sessionID string, productID int) ([]domain.CartItem, error)
	RemoveFromCart(sessionID string, productID int) ([]domain.CartItem, error)
	ClearCart(sessionID string) error
	Cart(sessionID string) ([]domain.CartItem, float64, error)

	Login(sessionID, email string) (*domain.User, error)
	Logout(sessionID string) error
	CurrentUser(sessionID string) (*domain.User, error)

	ToggleLike(sessionID string, productID int) (bool, error)
	IsLiked(sessionID string, productID int) (bool, error)
	LikedProducts(sessionID string) ([]int, error)

	AddOrder(sessionID string, order domain.Order) error
	ListOrders(sessionID string) ([]domain.Order, error)
	GetOrderByID(sessionID, orderID string) (*domain.Order, error)
}

var _ StoreUseCase = (*storeUseCase)(nil)

type storeUseCase struct {
	sessions domain.SessionRepository
	catalog  domain.ProductRepository
	log      *logrus.Logger
}

func NewStoreUseCase(sessions domain.SessionRepository, catalog domain.ProductRepository, logger *logrus.Logger) StoreUseCase {
	return &storeUseCase{
		sessions: sessions,
		catalog:  catalog,
		log:      logger,
	}
}

func (uc *storeUseCase) AddToCart(sessionID string, productID int) ([]domain.CartItem, error) {
	if productID <= 0 {
		uc.log.Warnf("Use Case: Attempted to add invalid product ID %d to cart", productID)
		return nil, errors.New("invalid product ID")
	}

	product, err := uc.catalog.GetProductByID(productID)
	if err != nil {
		uc.log.Warnf("Use Case: Product %d not in catalog, cannot add to cart: %v", productID, err)
		return nil, err
	}

	cart := uc.sessions.AddCartItem(sessionID, *product)
	uc.log.Infof("Use Case: Product %d ('%s') added to cart, cart now holds %d entries", productID, product.Name, len(cart))
	return cart, nil
}

func (uc *storeUseCase) RemoveFromCart(sessionID string, productID int) ([]domain.CartItem, error) {
	if productID <= 0 {
		uc.log.Warnf("Use Case: Attempted to remove invalid product ID %d from cart", productID)
		return nil, errors.New("invalid product ID")
	}

	// Removing an absent entry is a no-op, not an error.
	cart := uc.sessions.RemoveCartItem(sessionID, productID)
	uc.log.Infof("Use Case: Product %d removed from cart, cart now holds %d entries", productID, len(cart))
	return cart, nil
}

func (uc *storeUseCase) ClearCart(sessionID string) error {
	uc.sessions.ClearCart(sessionID)
	uc.log.Info("Use Case: Cart cleared")
	return nil
}

func (uc *storeUseCase) Cart(sessionID string) ([]domain.CartItem, float64, error) {
	items := uc.sessions.CartItems(sessionID)
	return items, CartTotal(items), nil
}

func (uc *storeUseCase) Login(sessionID, email string) (*domain.User, error) {
	email = strings.TrimSpace(email)
	if email == "" {
		uc.log.Warn("Use Case: Attempted login with empty email")
		return nil, errors.New("email cannot be empty")
	}

	// Cosmetic auth: the display name is the local part of the email. No
	// format or credential checks are performed.
	name := email
	if at := strings.Index(email, "@"); at >= 0 {
		name = email[:at]
	}

	user := domain.User{Name: name, Email: email}
	uc.sessions.SetUser(sessionID, user)
	uc.log.Infof("Use Case: User '%s' logged in", name)
	return &user, nil
}

func (uc *storeUseCase) Logout(sessionID string) error {
	// Cart and liked set stay with the session, not the identity.
	uc.sessions.ClearUser(sessionID)
	uc.log.Info("Use Case: User logged out")
	return nil
}

func (uc *storeUseCase) CurrentUser(sessionID string) (*domain.User, error) {
	return uc.sessions.User(sessionID), nil
}

func (uc *storeUseCase) ToggleLike(sessionID string, productID int) (bool, error) {
	if productID <= 0 {
		uc.log.Warnf("Use Case: Attempted to toggle like for invalid product ID %d", productID)
		return false, errors.New("invalid product ID")
	}

	liked := uc.sessions.ToggleLike(sessionID, productID)
	uc.log.Infof("Use Case: Product %d like toggled, now liked=%t", productID, liked)
	return liked, nil
}

func (uc *storeUseCase) IsLiked(sessionID string, productID int) (bool, error) {
	if productID <= 0 {
		return false, errors.New("invalid product ID")
	}
	return uc.sessions.IsLiked(sessionID, productID), nil
}

func (uc *storeUseCase) LikedProducts(sessionID string) ([]int, error) {
	return uc.sessions.LikedProducts(sessionID), nil
}

func (uc *storeUseCase) AddOrder(sessionID string, order domain.Order) error {
	// Shape validation is the caller's responsibility; the order is stored
	// as provided, most recent first.
	uc.sessions.AddOrder(sessionID, order)
	uc.log.Infof("Use Case: Order %s appended to order history", order.ID)
	return nil
}

func (uc *storeUseCase) ListOrders(sessionID string) ([]domain.Order, error) {
	if uc.sessions.User(sessionID) == nil {
		uc.log.Warn("Use Case: Attempted to list orders without an active session user")
		return nil, domain.ErrLoginRequired
	}

	orders := uc.sessions.Orders(sessionID)
	uc.log.Infof("Use Case: Retrieved %d orders", len(orders))
	return orders, nil
}

func (uc *storeUseCase) GetOrderByID(sessionID, orderID string) (*domain.Order, error) {
	if uc.sessions.User(sessionID) == nil {
		uc.log.Warn("Use Case: Attempted to get an order without an active session user")
		return nil, domain.ErrLoginRequired
	}

	for _, order := range uc.sessions.Orders(sessionID) {
		if order.ID == orderID {
			found := order
			return &found, nil
		}
	}
	uc.log.Warnf("Use Case: Order %s not found in session history", orderID)
	return nil, fmt.Errorf("order %s: %w", orderID, domain.ErrOrderNotFound)
}

// CartTotal recomputes the cart total from scratch on every call; it is never
// cached.
func CartTotal(items []domain.CartItem) float64 {
	var total float64
	for _, item := range items {
		total += item.Price * float64(item.Quantity)
	}
	return total
}
