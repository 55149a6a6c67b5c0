package delivery

import (
	"net/http"

	"storefront/internal/usecase"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

type OrderHandler struct {
	useCase usecase.StoreUseCase
	log     *logrus.Logger
}

func NewOrderHandler(uc usecase.StoreUseCase, logger *logrus.Logger) *OrderHandler {
	return &OrderHandler{
		useCase: uc,
		log:     logger,
	}
}

func (h *OrderHandler) RegisterRoutes(router gin.IRouter) {
	orders := router.Group("/orders")
	{
		orders.GET("", h.ListOrders)
		orders.GET("/:id", h.GetOrderByID)
	}
}

func (h *OrderHandler) ListOrders(c *gin.Context) {
	handlerLogger := h.log.WithField("handler", "ListOrders")

	orders, err := h.useCase.ListOrders(sessionID(c))
	if err != nil {
		handlerLogger.Warnf("Failed to list orders: %v", err)
		ErrorResponse(c, mapErrorToStatus(err), "Failed to retrieve orders: "+err.Error())
		return
	}

	handlerLogger.Infof("Retrieved %d orders", len(orders))
	SuccessResponse(c, http.StatusOK, "Orders retrieved successfully", orders)
}

func (h *OrderHandler) GetOrderByID(c *gin.Context) {
	handlerLogger := h.log.WithField("handler", "GetOrderByID")

	orderID := c.Param("id")
	if orderID == "" {
		ErrorResponse(c, http.StatusBadRequest, "Invalid order ID format")
		return
	}

	order, err := h.useCase.GetOrderByID(sessionID(c), orderID)
	if err != nil {
		handlerLogger.Warnf("Failed to get order %s: %v", orderID, err)
		ErrorResponse(c, mapErrorToStatus(err), "Failed to retrieve order: "+err.Error())
		return
	}

	SuccessResponse(c, http.StatusOK, "Order retrieved successfully", order)
}
