package delivery

import (
	"net/http"
	"order_api/internal/domain"
	"order_api/internal/usecase"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

type ItemHandler struct {
	useCase usecase.ItemUseCase
	log     *logrus.Logger
}

func NewItemHandler(uc usecase.ItemUseCase, logger *logrus.Logger) *ItemHandler {
	return &ItemHandler{
		useCase: uc,
		log:     logger,
	}
}

func (h *ItemHandler) RegisterRoutes(router gin.IRouter) {
	items := router.Group("/item")
	{
		items.GET("", h.List)
		items.GET("/available", h.ListAvailable)
		items.GET("/:id", h.GetByID)
		items.POST("", h.Create)
		items.PUT("/:id", h.Update)
		items.DELETE("/:id", h.Delete)
	}
}

type itemRequest struct {
	Name        string  `json:"name"`
	Description *string `json:"description"`
	Price       float64 `json:"price"`
	Stock       int     `json:"stock"`
}

func (r itemRequest) toDomain() *domain.Item {
	return &domain.Item{
		Name:        r.Name,
		Description: r.Description,
		Price:       r.Price,
		Stock:       r.Stock,
	}
}

func (h *ItemHandler) List(c *gin.Context) {
	items, err := h.useCase.ListItems()
	if err != nil {
		h.log.Errorf("Failed to list items: %v", err)
		RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, items)
}

func (h *ItemHandler) ListAvailable(c *gin.Context) {
	items, err := h.useCase.ListAvailableItems()
	if err != nil {
		h.log.Errorf("Failed to list available items: %v", err)
		RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, items)
}

func (h *ItemHandler) GetByID(c *gin.Context) {
	idStr := c.Param("id")
	id, err := strconv.Atoi(idStr)
	if err != nil || id <= 0 {
		h.log.Warnf("Invalid item ID parameter: %s", idStr)
		ErrorResponse(c, http.StatusBadRequest, "Invalid item ID format")
		return
	}

	item, err := h.useCase.GetItemByID(id)
	if err != nil {
		h.log.Warnf("Failed to get item by ID %d: %v", id, err)
		RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, item)
}

func (h *ItemHandler) Create(c *gin.Context) {
	var request itemRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		h.log.Errorf("Failed to bind JSON for create item: %v", err)
		ErrorResponse(c, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}

	createdItem, err := h.useCase.CreateItem(request.toDomain())
	if err != nil {
		h.log.Warnf("Failed to create item '%s': %v", request.Name, err)
		RespondError(c, err)
		return
	}

	h.log.Infof("Item created successfully: ID %d, Name %s", createdItem.ID, createdItem.Name)
	c.JSON(http.StatusCreated, createdItem)
}

func (h *ItemHandler) Update(c *gin.Context) {
	idStr := c.Param("id")
	id, err := strconv.Atoi(idStr)
	if err != nil || id <= 0 {
		h.log.Warnf("Invalid item ID parameter for update: %s", idStr)
		ErrorResponse(c, http.StatusBadRequest, "Invalid item ID format")
		return
	}

	var request itemRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		h.log.Errorf("Failed to bind JSON for update item ID %d: %v", id, err)
		ErrorResponse(c, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}

	updatedItem, err := h.useCase.UpdateItem(id, request.toDomain())
	if err != nil {
		h.log.Warnf("Failed to update item ID %d: %v", id, err)
		RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, updatedItem)
}

func (h *ItemHandler) Delete(c *gin.Context) {
	idStr := c.Param("id")
	id, err := strconv.Atoi(idStr)
	if err != nil || id <= 0 {
		h.log.Warnf("Invalid item ID parameter for delete: %s", idStr)
		ErrorResponse(c, http.StatusBadRequest, "Invalid item ID format")
		return
	}

	if err := h.useCase.DeleteItem(id); err != nil {
		h.log.Warnf("Failed to delete item ID %d: %v", id, err)
		RespondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
