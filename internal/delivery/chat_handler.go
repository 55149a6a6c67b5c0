package delivery

import (
	"net/http"

	"storefront/internal/usecase"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

type ChatHandler struct {
	useCase usecase.ChatUseCase
	log     *logrus.Logger
}

func NewChatHandler(uc usecase.ChatUseCase, logger *logrus.Logger) *ChatHandler {
	return &ChatHandler{
		useCase: uc,
		log:     logger,
	}
}

func (h *ChatHandler) RegisterRoutes(router gin.IRouter) {
	chat := router.Group("/chat")
	{
		chat.POST("", h.Send)
		chat.GET("/history", h.History)
	}
}

type sendRequest struct {
	Message string `json:"message" binding:"required"`
}

func (h *ChatHandler) Send(c *gin.Context) {
	handlerLogger := h.log.WithField("handler", "ChatSend")

	var req sendRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		handlerLogger.Warnf("Failed to bind chat request: %v", err)
		ErrorResponse(c, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}

	reply, err := h.useCase.Send(c.Request.Context(), sessionID(c), req.Message)
	if err != nil {
		handlerLogger.Warnf("Chat send rejected: %v", err)
		ErrorResponse(c, mapErrorToStatus(err), "Chat message rejected: "+err.Error())
		return
	}

	SuccessResponse(c, http.StatusOK, "Reply generated", reply)
}

func (h *ChatHandler) History(c *gin.Context) {
	history, err := h.useCase.History(sessionID(c))
	if err != nil {
		h.log.WithField("handler", "ChatHistory").Errorf("Failed to read chat history: %v", err)
		ErrorResponse(c, http.StatusInternalServerError, "Failed to retrieve chat history")
		return
	}
	SuccessResponse(c, http.StatusOK, "Chat history retrieved successfully", history)
}
