package repository

import (
	"sync"

	"storefront/internal/domain"

	"github.com/sirupsen/logrus"
)

const chatGreeting = "Bonjour ! Je suis l'assistant Electro. Comment puis-je vous aider aujourd'hui ?"

type sessionState struct {
	mu         sync.Mutex
	cart       []domain.CartItem
	liked      map[int]bool
	orders     []domain.Order
	user       *domain.User
	chat       []domain.ChatMessage
	nextChatID int64
}

type memorySessionRepository struct {
	mu       sync.RWMutex
	sessions map[string]*sessionState
	log      *logrus.Logger
}

// NewMemorySessionRepository holds all session-scoped shopping state in
// process memory. Each session's state is isolated and guarded by its own
// mutex, so mutations within one session are atomic with respect to readers.
func NewMemorySessionRepository(logger *logrus.Logger) domain.SessionRepository {
	return &memorySessionRepository{
		sessions: make(map[string]*sessionState),
		log:      logger,
	}
}

func (r *memorySessionRepository) state(sessionID string) *sessionState {
	r.mu.RLock()
	s, ok := r.sessions[sessionID]
	r.mu.RUnlock()
	if ok {
		return s
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	if s, ok := r.sessions[sessionID]; ok {
		return s
	}
	s = &sessionState{
		liked:      make(map[int]bool),
		nextChatID: 2,
		chat: []domain.ChatMessage{
			{ID: 1, Text: chatGreeting, Sender: domain.ChatSenderBot},
		},
	}
	r.sessions[sessionID] = s
	r.log.Debugf("Repository: created new session state for session %s", sessionID)
	return s
}

func (r *memorySessionRepository) AddCartItem(sessionID string, product domain.Product) []domain.CartItem {
	s := r.state(sessionID)
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.cart {
		if s.cart[i].ID == product.ID {
			s.cart[i].Quantity++
			r.log.Debugf("Repository: incremented quantity of product %d to %d in session %s", product.ID, s.cart[i].Quantity, sessionID)
			return copyCart(s.cart)
		}
	}
	s.cart = append(s.cart, domain.CartItem{Product: product, Quantity: 1})
	r.log.Debugf("Repository: added product %d to cart of session %s", product.ID, sessionID)
	return copyCart(s.cart)
}

func (r *memorySessionRepository) RemoveCartItem(sessionID string, productID int) []domain.CartItem {
	s := r.state(sessionID)
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.cart {
		if s.cart[i].ID == productID {
			s.cart = append(s.cart[:i], s.cart[i+1:]...)
			r.log.Debugf("Repository: removed product %d from cart of session %s", productID, sessionID)
			break
		}
	}
	return copyCart(s.cart)
}

func (r *memorySessionRepository) ClearCart(sessionID string) {
	s := r.state(sessionID)
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cart = nil
}

func (r *memorySessionRepository) CartItems(sessionID string) []domain.CartItem {
	s := r.state(sessionID)
	s.mu.Lock()
	defer s.mu.Unlock()
	return copyCart(s.cart)
}

func (r *memorySessionRepository) SetUser(sessionID string, user domain.User) {
	s := r.state(sessionID)
	s.mu.Lock()
	defer s.mu.Unlock()
	s.user = &user
}

func (r *memorySessionRepository) ClearUser(sessionID string) {
	s := r.state(sessionID)
	s.mu.Lock()
	defer s.mu.Unlock()
	s.user = nil
}

func (r *memorySessionRepository) User(sessionID string) *domain.User {
	s := r.state(sessionID)
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.user == nil {
		return nil
	}
	user := *s.user
	return &user
}

func (r *memorySessionRepository) ToggleLike(sessionID string, productID int) bool {
	s := r.state(sessionID)
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.liked[productID] {
		delete(s.liked, productID)
		return false
	}
	s.liked[productID] = true
	return true
}

func (r *memorySessionRepository) IsLiked(sessionID string, productID int) bool {
	s := r.state(sessionID)
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.liked[productID]
}

func (r *memorySessionRepository) LikedProducts(sessionID string) []int {
	s := r.state(sessionID)
	s.mu.Lock()
	defer s.mu.Unlock()

	ids := make([]int, 0, len(s.liked))
	for id := range s.liked {
		ids = append(ids, id)
	}
	return ids
}

func (r *memorySessionRepository) AddOrder(sessionID string, order domain.Order) {
	s := r.state(sessionID)
	s.mu.Lock()
	defer s.mu.Unlock()

	// Most recent first.
	s.orders = append([]domain.Order{order}, s.orders...)
	r.log.Debugf("Repository: appended order %s to session %s (%d orders total)", order.ID, sessionID, len(s.orders))
}

func (r *memorySessionRepository) Orders(sessionID string) []domain.Order {
	s := r.state(sessionID)
	s.mu.Lock()
	defer s.mu.Unlock()

	orders := make([]domain.Order, len(s.orders))
	copy(orders, s.orders)
	return orders
}

func (r *memorySessionRepository) AppendChatMessage(sessionID string, sender, text string) domain.ChatMessage {
	s := r.state(sessionID)
	s.mu.Lock()
	defer s.mu.Unlock()

	msg := domain.ChatMessage{ID: s.nextChatID, Text: text, Sender: sender}
	s.nextChatID++
	s.chat = append(s.chat, msg)
	return msg
}

func (r *memorySessionRepository) ChatHistory(sessionID string) []domain.ChatMessage {
	s := r.state(sessionID)
	s.mu.Lock()
	defer s.mu.Unlock()

	history := make([]domain.ChatMessage, len(s.chat))
	copy(history, s.chat)
	return history
}

func copyCart(cart []domain.CartItem) []domain.CartItem {
	items := make([]domain.CartItem, len(cart))
	copy(items, cart)
	return items
}
