package delivery

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"storefront/internal/clients"
	"storefront/internal/middleware"
	"storefront/internal/repository"
	"storefront/internal/usecase"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testLogger() *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(io.Discard)
	return logger
}

// newTestRouter wires the full stack with in-memory repositories, an
// instantaneous payment provider and a generation endpoint stubbed by the
// given handler.
func newTestRouter(t *testing.T, generateHandler http.HandlerFunc) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	logger := testLogger()

	generateURL := ""
	if generateHandler != nil {
		server := httptest.NewServer(generateHandler)
		t.Cleanup(server.Close)
		generateURL = server.URL
	}

	catalogRepo := repository.NewMemoryProductRepository(repository.DefaultCatalog(), repository.DefaultCategories(), logger)
	sessionRepo := repository.NewMemorySessionRepository(logger)
	generateClient := clients.NewGenerateHTTPClient(generateURL, time.Second, logger)
	paymentProvider := clients.NewSimulatedPaymentProvider(time.Millisecond, logger)

	storeUseCase := usecase.NewStoreUseCase(sessionRepo, catalogRepo, logger)
	checkoutUseCase := usecase.NewCheckoutUseCase(sessionRepo, paymentProvider, logger)
	chatUseCase := usecase.NewChatUseCase(sessionRepo, catalogRepo, generateClient, logger)

	router := gin.New()
	router.Use(middleware.SessionMiddleware(logger))

	NewProductHandler(catalogRepo, logger).RegisterRoutes(router)
	NewCartHandler(storeUseCase, logger).RegisterRoutes(router)
	NewAuthHandler(storeUseCase, logger).RegisterRoutes(router)
	NewOrderHandler(storeUseCase, logger).RegisterRoutes(router)
	NewCheckoutHandler(checkoutUseCase, logger).RegisterRoutes(router)
	NewChatHandler(chatUseCase, logger).RegisterRoutes(router)

	return router
}

func doRequest(t *testing.T, router *gin.Engine, method, path, sessionID string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()

	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewBuffer(data)
	}

	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if sessionID != "" {
		req.Header.Set("X-Session-ID", sessionID)
	}

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestSessionIDIssuedWhenAbsent(t *testing.T) {
	router := newTestRouter(t, nil)

	w := doRequest(t, router, http.MethodGet, "/products", "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.NotEmpty(t, w.Header().Get("X-Session-ID"))
}

func TestListAndGetProducts(t *testing.T) {
	router := newTestRouter(t, nil)

	w := doRequest(t, router, http.MethodGet, "/products?category=Gaming", "s1", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Status string
		Data   []struct {
			ID   int    `json:"id"`
			Name string `json:"name"`
		}
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp.Data, 1)
	assert.Equal(t, "PlayStation 5", resp.Data[0].Name)

	w = doRequest(t, router, http.MethodGet, "/products/999", "s1", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestCartFlowOverHTTP(t *testing.T) {
	router := newTestRouter(t, nil)

	w := doRequest(t, router, http.MethodPost, "/cart", "s1", gin.H{"product_id": 8})
	require.Equal(t, http.StatusOK, w.Code)
	w = doRequest(t, router, http.MethodPost, "/cart", "s1", gin.H{"product_id": 8})
	require.Equal(t, http.StatusOK, w.Code)

	w = doRequest(t, router, http.MethodGet, "/cart", "s1", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Data struct {
			Items []struct {
				ID       int `json:"id"`
				Quantity int `json:"quantity"`
			} `json:"items"`
			Total float64 `json:"total"`
		}
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp.Data.Items, 1)
	assert.Equal(t, 2, resp.Data.Items[0].Quantity)
	assert.Equal(t, 998.0, resp.Data.Total)

	w = doRequest(t, router, http.MethodDelete, "/cart/8", "s1", nil)
	require.Equal(t, http.StatusOK, w.Code)

	w = doRequest(t, router, http.MethodGet, "/cart", "s1", nil)
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Empty(t, resp.Data.Items)
}

func TestAddUnknownProductToCart(t *testing.T) {
	router := newTestRouter(t, nil)

	w := doRequest(t, router, http.MethodPost, "/cart", "s1", gin.H{"product_id": 404})
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestAuthFlowOverHTTP(t *testing.T) {
	router := newTestRouter(t, nil)

	w := doRequest(t, router, http.MethodGet, "/auth/me", "s1", nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = doRequest(t, router, http.MethodPost, "/auth/login", "s1", gin.H{"email": "jane@x.com"})
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Data struct {
			Name  string `json:"name"`
			Email string `json:"email"`
		}
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "jane", resp.Data.Name)

	w = doRequest(t, router, http.MethodPost, "/auth/logout", "s1", nil)
	require.Equal(t, http.StatusOK, w.Code)

	w = doRequest(t, router, http.MethodGet, "/auth/me", "s1", nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestCheckoutOverHTTP(t *testing.T) {
	router := newTestRouter(t, nil)

	// Entry guard: checkout requires a session user.
	w := doRequest(t, router, http.MethodGet, "/checkout", "s1", nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = doRequest(t, router, http.MethodPost, "/auth/login", "s1", gin.H{"email": "jane@x.com"})
	require.Equal(t, http.StatusOK, w.Code)

	// Empty cart is a distinct terminal display, not a success.
	w = doRequest(t, router, http.MethodGet, "/checkout", "s1", nil)
	assert.Equal(t, http.StatusConflict, w.Code)

	w = doRequest(t, router, http.MethodPost, "/cart", "s1", gin.H{"product_id": 6})
	require.Equal(t, http.StatusOK, w.Code)

	w = doRequest(t, router, http.MethodGet, "/checkout", "s1", nil)
	require.Equal(t, http.StatusOK, w.Code)

	w = doRequest(t, router, http.MethodPost, "/checkout/confirm", "s1", gin.H{
		"payment_method": "ORANGE_MONEY",
		"phone_number":   "699 99 99 99",
	})
	require.Equal(t, http.StatusCreated, w.Code)

	var resp struct {
		Data struct {
			State string `json:"state"`
			Order struct {
				ID     string  `json:"id"`
				Total  float64 `json:"total"`
				Status string  `json:"status"`
			} `json:"order"`
		}
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "SUCCESS", resp.Data.State)
	assert.Equal(t, 99.99, resp.Data.Order.Total)
	assert.Equal(t, "pending", resp.Data.Order.Status)

	// Order history now holds the confirmed order and the cart is empty.
	w = doRequest(t, router, http.MethodGet, "/orders", "s1", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var orders struct {
		Data []struct {
			ID string `json:"id"`
		}
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &orders))
	require.Len(t, orders.Data, 1)
	assert.Equal(t, resp.Data.Order.ID, orders.Data[0].ID)
}

func TestChatOverHTTP(t *testing.T) {
	router := newTestRouter(t, func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]string{"text": "Bonjour Jane"})
	})

	w := doRequest(t, router, http.MethodPost, "/chat", "s1", gin.H{"message": "Hello"})
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Data struct {
			Text   string `json:"text"`
			Sender string `json:"sender"`
		}
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "Bonjour Jane", resp.Data.Text)
	assert.Equal(t, "bot", resp.Data.Sender)

	w = doRequest(t, router, http.MethodGet, "/chat/history", "s1", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var history struct {
		Data []struct {
			Sender string `json:"sender"`
		}
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &history))
	assert.Len(t, history.Data, 3)
}

func TestChatRejectsBlankMessage(t *testing.T) {
	router := newTestRouter(t, nil)

	w := doRequest(t, router, http.MethodPost, "/chat", "s1", gin.H{"message": "   "})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestToggleLikeOverHTTP(t *testing.T) {
	router := newTestRouter(t, nil)

	w := doRequest(t, router, http.MethodPost, "/likes/3", "s1", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Data struct {
			Liked bool `json:"liked"`
		}
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.True(t, resp.Data.Liked)

	w = doRequest(t, router, http.MethodPost, "/likes/3", "s1", nil)
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.False(t, resp.Data.Liked)
}
