package domain

// SessionRepository is the only write surface over session-scoped shopping
// state (cart, liked set, orders, user, chat history). Sessions are created
// lazily on first access and live for the process lifetime only; nothing is
// persisted across restarts.
type SessionRepository interface {
	AddCartItem(sessionID string, product Product) []CartItem
	RemoveCartItem(sessionID string, productID int) []CartItem
	ClearCart(sessionID string)
	CartItems(sessionID string) []CartItem

	SetUser(sessionID string, user User)
	ClearUser(sessionID string)
	User(sessionID string) *User

	ToggleLike(sessionID string, productID int) bool
	IsLiked(sessionID string, productID int) bool
	LikedProducts(sessionID string) []int

	AddOrder(sessionID string, order Order)
	Orders(sessionID string) []Order

	AppendChatMessage(sessionID string, sender, text string) ChatMessage
	ChatHistory(sessionID string) []ChatMessage
}
