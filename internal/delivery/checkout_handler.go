package delivery

import (
	"net/http"

	"storefront/internal/domain"
	"storefront/internal/usecase"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

type CheckoutHandler struct {
	useCase usecase.CheckoutUseCase
	log     *logrus.Logger
}

func NewCheckoutHandler(uc usecase.CheckoutUseCase, logger *logrus.Logger) *CheckoutHandler {
	return &CheckoutHandler{
		useCase: uc,
		log:     logger,
	}
}

func (h *CheckoutHandler) RegisterRoutes(router gin.IRouter) {
	checkout := router.Group("/checkout")
	{
		checkout.GET("", h.Review)
		checkout.POST("/confirm", h.Confirm)
	}
}

func (h *CheckoutHandler) Review(c *gin.Context) {
	handlerLogger := h.log.WithField("handler", "CheckoutReview")

	review, err := h.useCase.Review(sessionID(c))
	if err != nil {
		handlerLogger.Warnf("Checkout review unavailable: %v", err)
		ErrorResponse(c, mapErrorToStatus(err), "Checkout unavailable: "+err.Error())
		return
	}

	SuccessResponse(c, http.StatusOK, "Checkout review", review)
}

type confirmRequest struct {
	PaymentMethod domain.PaymentMethod `json:"payment_method" binding:"required"`
	PhoneNumber   string               `json:"phone_number"`
	CardNumber    string               `json:"card_number"`
	CardExpiry    string               `json:"card_expiry"`
	CardCVC       string               `json:"card_cvc"`
}

func (h *CheckoutHandler) Confirm(c *gin.Context) {
	handlerLogger := h.log.WithField("handler", "CheckoutConfirm")

	var req confirmRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		handlerLogger.Warnf("Failed to bind confirmation request: %v", err)
		ErrorResponse(c, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}

	details := domain.PaymentDetails{
		PhoneNumber: req.PhoneNumber,
		CardNumber:  req.CardNumber,
		CardExpiry:  req.CardExpiry,
		CardCVC:     req.CardCVC,
	}

	result, err := h.useCase.Confirm(c.Request.Context(), sessionID(c), req.PaymentMethod, details)
	if err != nil {
		handlerLogger.Warnf("Checkout confirmation rejected: %v", err)
		ErrorResponse(c, mapErrorToStatus(err), "Checkout confirmation rejected: "+err.Error())
		return
	}

	if result.State == domain.CheckoutStateFailed {
		handlerLogger.Errorf("Payment failed: %s", result.FailureReason)
		c.JSON(http.StatusBadGateway, Response{
			Status:  "Fail",
			Message: "Payment failed: " + result.FailureReason,
			Data:    result,
		})
		return
	}

	handlerLogger.Infof("Order %s confirmed", result.Order.ID)
	SuccessResponse(c, http.StatusCreated, "Order confirmed successfully", result)
}
