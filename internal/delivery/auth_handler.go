package delivery

import (
	"net/http"

	"storefront/internal/usecase"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

type AuthHandler struct {
	useCase usecase.StoreUseCase
	log     *logrus.Logger
}

func NewAuthHandler(uc usecase.StoreUseCase, logger *logrus.Logger) *AuthHandler {
	return &AuthHandler{
		useCase: uc,
		log:     logger,
	}
}

func (h *AuthHandler) RegisterRoutes(router gin.IRouter) {
	auth := router.Group("/auth")
	{
		auth.POST("/login", h.Login)
		auth.POST("/logout", h.Logout)
		auth.GET("/me", h.Me)
	}
}

// LoginRequest defines the expected JSON body for login requests. The email
// is required but not verified against anything: auth is cosmetic.
type LoginRequest struct {
	Email string `json:"email" binding:"required"`
}

func (h *AuthHandler) Login(c *gin.Context) {
	handlerLogger := h.log.WithField("handler", "Login")

	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		handlerLogger.Warnf("Failed to bind login request: %v", err)
		ErrorResponse(c, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}
	handlerLogger.Infof("Processing login request for email: %s", req.Email)

	user, err := h.useCase.Login(sessionID(c), req.Email)
	if err != nil {
		handlerLogger.Warnf("Login failed for email %s: %v", req.Email, err)
		ErrorResponse(c, mapErrorToStatus(err), "Login failed: "+err.Error())
		return
	}

	handlerLogger.Infof("Login successful for user '%s'", user.Name)
	SuccessResponse(c, http.StatusOK, "Login successful", user)
}

func (h *AuthHandler) Logout(c *gin.Context) {
	if err := h.useCase.Logout(sessionID(c)); err != nil {
		h.log.WithField("handler", "Logout").Errorf("Logout failed: %v", err)
		ErrorResponse(c, http.StatusInternalServerError, "Logout failed")
		return
	}
	SuccessResponse(c, http.StatusOK, "Logout successful", nil)
}

func (h *AuthHandler) Me(c *gin.Context) {
	user, err := h.useCase.CurrentUser(sessionID(c))
	if err != nil {
		h.log.WithField("handler", "Me").Errorf("Failed to read session user: %v", err)
		ErrorResponse(c, http.StatusInternalServerError, "Failed to retrieve session user")
		return
	}
	if user == nil {
		ErrorResponse(c, http.StatusUnauthorized, "No active session user")
		return
	}
	SuccessResponse(c, http.StatusOK, "Session user retrieved successfully", user)
}
