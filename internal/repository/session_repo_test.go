package repository

import (
	"testing"

	"storefront/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	productA = domain.Product{ID: 1, Name: "Product A", Price: 10.0}
	productB = domain.Product{ID: 2, Name: "Product B", Price: 5.0}
)

func TestAddCartItemAccumulatesQuantity(t *testing.T) {
	repo := NewMemorySessionRepository(testLogger())

	repo.AddCartItem("s1", productA)
	repo.AddCartItem("s1", productA)
	cart := repo.AddCartItem("s1", productA)

	require.Len(t, cart, 1)
	assert.Equal(t, 3, cart[0].Quantity)
}

func TestAddCartItemKeepsOneEntryPerProduct(t *testing.T) {
	repo := NewMemorySessionRepository(testLogger())

	repo.AddCartItem("s1", productA)
	repo.AddCartItem("s1", productB)
	cart := repo.AddCartItem("s1", productA)

	require.Len(t, cart, 2)
	assert.Equal(t, productA.ID, cart[0].ID)
	assert.Equal(t, 2, cart[0].Quantity)
	assert.Equal(t, productB.ID, cart[1].ID)
	assert.Equal(t, 1, cart[1].Quantity)
}

func TestRemoveCartItemAbsentIsNoOp(t *testing.T) {
	repo := NewMemorySessionRepository(testLogger())

	repo.AddCartItem("s1", productA)
	cart := repo.RemoveCartItem("s1", 999)

	require.Len(t, cart, 1)
}

func TestClearCart(t *testing.T) {
	repo := NewMemorySessionRepository(testLogger())

	repo.AddCartItem("s1", productA)
	repo.AddCartItem("s1", productB)
	repo.ClearCart("s1")

	assert.Empty(t, repo.CartItems("s1"))
}

func TestCartItemsReturnsCopy(t *testing.T) {
	repo := NewMemorySessionRepository(testLogger())

	repo.AddCartItem("s1", productA)
	items := repo.CartItems("s1")
	items[0].Quantity = 42

	fresh := repo.CartItems("s1")
	assert.Equal(t, 1, fresh[0].Quantity)
}

func TestSessionsAreIsolated(t *testing.T) {
	repo := NewMemorySessionRepository(testLogger())

	repo.AddCartItem("s1", productA)

	assert.Empty(t, repo.CartItems("s2"))
	assert.Len(t, repo.CartItems("s1"), 1)
}

func TestUserLifecycle(t *testing.T) {
	repo := NewMemorySessionRepository(testLogger())

	assert.Nil(t, repo.User("s1"))

	repo.SetUser("s1", domain.User{Name: "jane", Email: "jane@x.com"})
	user := repo.User("s1")
	require.NotNil(t, user)
	assert.Equal(t, "jane", user.Name)

	repo.ClearUser("s1")
	assert.Nil(t, repo.User("s1"))
}

func TestToggleLikeIsItsOwnInverse(t *testing.T) {
	repo := NewMemorySessionRepository(testLogger())

	assert.False(t, repo.IsLiked("s1", 7))
	assert.True(t, repo.ToggleLike("s1", 7))
	assert.True(t, repo.IsLiked("s1", 7))
	assert.False(t, repo.ToggleLike("s1", 7))
	assert.False(t, repo.IsLiked("s1", 7))
}

func TestOrdersMostRecentFirst(t *testing.T) {
	repo := NewMemorySessionRepository(testLogger())

	repo.AddOrder("s1", domain.Order{ID: "first"})
	repo.AddOrder("s1", domain.Order{ID: "second"})

	orders := repo.Orders("s1")
	require.Len(t, orders, 2)
	assert.Equal(t, "second", orders[0].ID)
	assert.Equal(t, "first", orders[1].ID)
}

func TestChatHistorySeededWithGreeting(t *testing.T) {
	repo := NewMemorySessionRepository(testLogger())

	history := repo.ChatHistory("s1")
	require.Len(t, history, 1)
	assert.Equal(t, domain.ChatSenderBot, history[0].Sender)
	assert.Equal(t, int64(1), history[0].ID)
}

func TestAppendChatMessageAssignsSequentialIDs(t *testing.T) {
	repo := NewMemorySessionRepository(testLogger())

	userMsg := repo.AppendChatMessage("s1", domain.ChatSenderUser, "hello")
	botMsg := repo.AppendChatMessage("s1", domain.ChatSenderBot, "hi")

	assert.Equal(t, int64(2), userMsg.ID)
	assert.Equal(t, int64(3), botMsg.ID)

	history := repo.ChatHistory("s1")
	require.Len(t, history, 3)
	assert.Equal(t, "hello", history[1].Text)
	assert.Equal(t, "hi", history[2].Text)
}
