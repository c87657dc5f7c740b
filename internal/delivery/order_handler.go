package delivery

import (
	"net/http"
	"order_api/internal/domain"
	"order_api/internal/usecase"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

type OrderHandler struct {
	useCase usecase.OrderUseCase
	log     *logrus.Logger
}

func NewOrderHandler(uc usecase.OrderUseCase, logger *logrus.Logger) *OrderHandler {
	return &OrderHandler{
		useCase: uc,
		log:     logger,
	}
}

func (h *OrderHandler) RegisterRoutes(router gin.IRouter) {
	orders := router.Group("/order")
	{
		orders.GET("", h.GetAll)
		orders.GET("/:id", h.GetByID)
		orders.GET("/person/:personId", h.GetByPersonID)
		orders.POST("", h.Create)
		orders.PUT("/:id/status", h.UpdateStatus)
		orders.DELETE("/:id", h.Delete)
	}
}

type createOrderRequest struct {
	PersonID     int                        `json:"personId"`
	Notes        *string                    `json:"notes"`
	OrderDetails []usecase.OrderDetailInput `json:"orderDetails"`
}

func (h *OrderHandler) Create(c *gin.Context) {
	var request createOrderRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		h.log.Errorf("Failed to bind JSON for create order: %v", err)
		ErrorResponse(c, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}

	createdOrder, err := h.useCase.CreateOrder(request.PersonID, request.Notes, request.OrderDetails)
	if err != nil {
		h.log.Warnf("Failed to create order for person %d: %v", request.PersonID, err)
		RespondError(c, err)
		return
	}

	h.log.Infof("Order %d created successfully for person %d", createdOrder.ID, createdOrder.PersonID)
	c.JSON(http.StatusCreated, createdOrder)
}

func (h *OrderHandler) GetAll(c *gin.Context) {
	orders, err := h.useCase.GetAllOrders()
	if err != nil {
		h.log.Errorf("Failed to list orders: %v", err)
		RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, orders)
}

func (h *OrderHandler) GetByID(c *gin.Context) {
	idStr := c.Param("id")
	id, err := strconv.Atoi(idStr)
	if err != nil || id <= 0 {
		h.log.Warnf("Invalid order ID parameter: %s", idStr)
		ErrorResponse(c, http.StatusBadRequest, "Invalid order ID format")
		return
	}

	order, err := h.useCase.GetOrderByID(id)
	if err != nil {
		h.log.Warnf("Failed to get order by ID %d: %v", id, err)
		RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, order)
}

func (h *OrderHandler) GetByPersonID(c *gin.Context) {
	personIDStr := c.Param("personId")
	personID, err := strconv.Atoi(personIDStr)
	if err != nil || personID <= 0 {
		h.log.Warnf("Invalid person ID parameter: %s", personIDStr)
		ErrorResponse(c, http.StatusBadRequest, "Invalid person ID format")
		return
	}

	orders, err := h.useCase.GetOrdersByPersonID(personID)
	if err != nil {
		h.log.Errorf("Failed to list orders for person %d: %v", personID, err)
		RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, orders)
}

// UpdateStatus reads the new status as a raw JSON string body, e.g.
// "Completed".
func (h *OrderHandler) UpdateStatus(c *gin.Context) {
	idStr := c.Param("id")
	id, err := strconv.Atoi(idStr)
	if err != nil || id <= 0 {
		h.log.Warnf("Invalid order ID parameter for status update: %s", idStr)
		ErrorResponse(c, http.StatusBadRequest, "Invalid order ID format")
		return
	}

	var status string
	if err := c.ShouldBindJSON(&status); err != nil {
		h.log.Warnf("Failed to bind status body for order %d: %v", id, err)
		ErrorResponse(c, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}

	updatedOrder, err := h.useCase.UpdateOrderStatus(id, domain.OrderStatus(status))
	if err != nil {
		h.log.Warnf("Failed to update status for order %d: %v", id, err)
		RespondError(c, err)
		return
	}

	h.log.Infof("Order %d status updated to '%s'", updatedOrder.ID, updatedOrder.Status)
	c.JSON(http.StatusOK, updatedOrder)
}

func (h *OrderHandler) Delete(c *gin.Context) {
	idStr := c.Param("id")
	id, err := strconv.Atoi(idStr)
	if err != nil || id <= 0 {
		h.log.Warnf("Invalid order ID parameter for delete: %s", idStr)
		ErrorResponse(c, http.StatusBadRequest, "Invalid order ID format")
		return
	}

	if err := h.useCase.DeleteOrder(id); err != nil {
		h.log.Warnf("Failed to delete order %d: %v", id, err)
		RespondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
