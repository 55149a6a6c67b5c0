package delivery

import (
	"net/http"
	"strconv"

	"storefront/internal/usecase"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

type CartHandler struct {
	useCase usecase.StoreUseCase
	log     *logrus.Logger
}

func NewCartHandler(uc usecase.StoreUseCase, logger *logrus.Logger) *CartHandler {
	return &CartHandler{
		useCase: uc,
		log:     logger,
	}
}

func (h *CartHandler) RegisterRoutes(router gin.IRouter) {
	cart := router.Group("/cart")
	{
		cart.GET("", h.GetCart)
		cart.POST("", h.AddToCart)
		cart.DELETE("/:id", h.RemoveFromCart)
		cart.DELETE("", h.ClearCart)
	}

	likes := router.Group("/likes")
	{
		likes.GET("", h.ListLikes)
		likes.POST("/:id", h.ToggleLike)
	}
}

func (h *CartHandler) GetCart(c *gin.Context) {
	items, total, err := h.useCase.Cart(sessionID(c))
	if err != nil {
		h.log.WithField("handler", "GetCart").Errorf("Failed to read cart: %v", err)
		ErrorResponse(c, http.StatusInternalServerError, "Failed to retrieve cart")
		return
	}

	SuccessResponse(c, http.StatusOK, "Cart retrieved successfully", gin.H{
		"items": items,
		"total": total,
	})
}

type addToCartRequest struct {
	ProductID int `json:"product_id" binding:"required,gt=0"`
}

func (h *CartHandler) AddToCart(c *gin.Context) {
	handlerLogger := h.log.WithField("handler", "AddToCart")

	var req addToCartRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		handlerLogger.Warnf("Failed to bind add-to-cart request: %v", err)
		ErrorResponse(c, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}

	items, err := h.useCase.AddToCart(sessionID(c), req.ProductID)
	if err != nil {
		handlerLogger.Warnf("Failed to add product %d to cart: %v", req.ProductID, err)
		ErrorResponse(c, mapErrorToStatus(err), "Failed to add to cart: "+err.Error())
		return
	}

	SuccessResponse(c, http.StatusOK, "Product added to cart", gin.H{
		"items": items,
		"total": usecase.CartTotal(items),
	})
}

func (h *CartHandler) RemoveFromCart(c *gin.Context) {
	handlerLogger := h.log.WithField("handler", "RemoveFromCart")

	idStr := c.Param("id")
	id, err := strconv.Atoi(idStr)
	if err != nil || id <= 0 {
		handlerLogger.Warnf("Invalid product ID parameter: %s", idStr)
		ErrorResponse(c, http.StatusBadRequest, "Invalid product ID format")
		return
	}

	items, err := h.useCase.RemoveFromCart(sessionID(c), id)
	if err != nil {
		handlerLogger.Warnf("Failed to remove product %d from cart: %v", id, err)
		ErrorResponse(c, mapErrorToStatus(err), "Failed to remove from cart: "+err.Error())
		return
	}

	SuccessResponse(c, http.StatusOK, "Product removed from cart", gin.H{
		"items": items,
		"total": usecase.CartTotal(items),
	})
}

func (h *CartHandler) ClearCart(c *gin.Context) {
	if err := h.useCase.ClearCart(sessionID(c)); err != nil {
		h.log.WithField("handler", "ClearCart").Errorf("Failed to clear cart: %v", err)
		ErrorResponse(c, http.StatusInternalServerError, "Failed to clear cart")
		return
	}
	SuccessResponse(c, http.StatusOK, "Cart cleared", nil)
}

func (h *CartHandler) ListLikes(c *gin.Context) {
	ids, err := h.useCase.LikedProducts(sessionID(c))
	if err != nil {
		h.log.WithField("handler", "ListLikes").Errorf("Failed to list liked products: %v", err)
		ErrorResponse(c, http.StatusInternalServerError, "Failed to retrieve liked products")
		return
	}
	SuccessResponse(c, http.StatusOK, "Liked products retrieved successfully", ids)
}

func (h *CartHandler) ToggleLike(c *gin.Context) {
	handlerLogger := h.log.WithField("handler", "ToggleLike")

	idStr := c.Param("id")
	id, err := strconv.Atoi(idStr)
	if err != nil || id <= 0 {
		handlerLogger.Warnf("Invalid product ID parameter: %s", idStr)
		ErrorResponse(c, http.StatusBadRequest, "Invalid product ID format")
		return
	}

	liked, err := h.useCase.ToggleLike(sessionID(c), id)
	if err != nil {
		handlerLogger.Warnf("Failed to toggle like for product %d: %v", id, err)
		ErrorResponse(c, mapErrorToStatus(err), "Failed to toggle like: "+err.Error())
		return
	}

	SuccessResponse(c, http.StatusOK, "Like toggled", gin.H{"product_id": id, "liked": liked})
}
