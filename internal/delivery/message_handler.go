package delivery

import (
	"net/http"
	"order_api/internal/usecase"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

type MessageHandler struct {
	useCase usecase.MessageUseCase
	log     *logrus.Logger
}

func NewMessageHandler(uc usecase.MessageUseCase, logger *logrus.Logger) *MessageHandler {
	return &MessageHandler{
		useCase: uc,
		log:     logger,
	}
}

func (h *MessageHandler) RegisterRoutes(router gin.IRouter) {
	messages := router.Group("/message")
	{
		messages.GET("", h.List)
		messages.GET("/:id", h.GetByID)
		messages.POST("", h.Create)
		messages.PUT("/:id", h.Update)
		messages.DELETE("/:id", h.Delete)
	}
}

type messageRequest struct {
	Message string `json:"message"`
}

func (h *MessageHandler) List(c *gin.Context) {
	messages, err := h.useCase.ListMessages()
	if err != nil {
		h.log.Errorf("Failed to list messages: %v", err)
		RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, messages)
}

func (h *MessageHandler) GetByID(c *gin.Context) {
	idStr := c.Param("id")
	id, err := strconv.Atoi(idStr)
	if err != nil || id <= 0 {
		h.log.Warnf("Invalid message ID parameter: %s", idStr)
		ErrorResponse(c, http.StatusBadRequest, "Invalid message ID format")
		return
	}

	message, err := h.useCase.GetMessageByID(id)
	if err != nil {
		h.log.Warnf("Failed to get message by ID %d: %v", id, err)
		RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, message)
}

func (h *MessageHandler) Create(c *gin.Context) {
	var request messageRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		h.log.Errorf("Failed to bind JSON for create message: %v", err)
		ErrorResponse(c, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}

	createdMessage, err := h.useCase.CreateMessage(request.Message)
	if err != nil {
		h.log.Warnf("Failed to create message: %v", err)
		RespondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, createdMessage)
}

func (h *MessageHandler) Update(c *gin.Context) {
	idStr := c.Param("id")
	id, err := strconv.Atoi(idStr)
	if err != nil || id <= 0 {
		h.log.Warnf("Invalid message ID parameter for update: %s", idStr)
		ErrorResponse(c, http.StatusBadRequest, "Invalid message ID format")
		return
	}

	var request messageRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		h.log.Errorf("Failed to bind JSON for update message ID %d: %v", id, err)
		ErrorResponse(c, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}

	updatedMessage, err := h.useCase.UpdateMessage(id, request.Message)
	if err != nil {
		h.log.Warnf("Failed to update message ID %d: %v", id, err)
		RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, updatedMessage)
}

func (h *MessageHandler) Delete(c *gin.Context) {
	idStr := c.Param("id")
	id, err := strconv.Atoi(idStr)
	if err != nil || id <= 0 {
		h.log.Warnf("Invalid message ID parameter for delete: %s", idStr)
		ErrorResponse(c, http.StatusBadRequest, "Invalid message ID format")
		return
	}

	if err := h.useCase.DeleteMessage(id); err != nil {
		h.log.Warnf("Failed to delete message ID %d: %v", id, err)
		RespondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
