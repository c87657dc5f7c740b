package delivery

import (
	"net/http"
	"order_api/internal/domain"
	"order_api/internal/usecase"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

type PersonHandler struct {
	useCase usecase.PersonUseCase
	log     *logrus.Logger
}

func NewPersonHandler(uc usecase.PersonUseCase, logger *logrus.Logger) *PersonHandler {
	return &PersonHandler{
		useCase: uc,
		log:     logger,
	}
}

func (h *PersonHandler) RegisterRoutes(router gin.IRouter) {
	persons := router.Group("/person")
	{
		persons.GET("", h.List)
		persons.GET("/:id", h.GetByID)
		persons.GET("/email/:email", h.GetByEmail)
		persons.POST("", h.Create)
		persons.PUT("/:id", h.Update)
		persons.DELETE("/:id", h.Delete)
	}
}

type personRequest struct {
	FirstName string  `json:"firstName"`
	LastName  string  `json:"lastName"`
	Email     string  `json:"email"`
	Phone     *string `json:"phone"`
	Address   *string `json:"address"`
}

func (r personRequest) toDomain() *domain.Person {
	return &domain.Person{
		FirstName: r.FirstName,
		LastName:  r.LastName,
		Email:     r.Email,
		Phone:     r.Phone,
		Address:   r.Address,
	}
}

func (h *PersonHandler) List(c *gin.Context) {
	persons, err := h.useCase.ListPersons()
	if err != nil {
		h.log.Errorf("Failed to list persons: %v", err)
		RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, persons)
}

func (h *PersonHandler) GetByID(c *gin.Context) {
	idStr := c.Param("id")
	id, err := strconv.Atoi(idStr)
	if err != nil || id <= 0 {
		h.log.Warnf("Invalid person ID parameter: %s", idStr)
		ErrorResponse(c, http.StatusBadRequest, "Invalid person ID format")
		return
	}

	person, err := h.useCase.GetPersonByID(id)
	if err != nil {
		h.log.Warnf("Failed to get person by ID %d: %v", id, err)
		RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, person)
}

func (h *PersonHandler) GetByEmail(c *gin.Context) {
	email := c.Param("email")

	person, err := h.useCase.GetPersonByEmail(email)
	if err != nil {
		h.log.Warnf("Failed to get person by email %s: %v", email, err)
		RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, person)
}

func (h *PersonHandler) Create(c *gin.Context) {
	var request personRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		h.log.Errorf("Failed to bind JSON for create person: %v", err)
		ErrorResponse(c, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}

	createdPerson, err := h.useCase.CreatePerson(request.toDomain())
	if err != nil {
		h.log.Warnf("Failed to create person '%s %s': %v", request.FirstName, request.LastName, err)
		RespondError(c, err)
		return
	}

	h.log.Infof("Person created successfully: ID %d", createdPerson.ID)
	c.JSON(http.StatusCreated, createdPerson)
}

func (h *PersonHandler) Update(c *gin.Context) {
	idStr := c.Param("id")
	id, err := strconv.Atoi(idStr)
	if err != nil || id <= 0 {
		h.log.Warnf("Invalid person ID parameter for update: %s", idStr)
		ErrorResponse(c, http.StatusBadRequest, "Invalid person ID format")
		return
	}

	var request personRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		h.log.Errorf("Failed to bind JSON for update person ID %d: %v", id, err)
		ErrorResponse(c, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}

	updatedPerson, err := h.useCase.UpdatePerson(id, request.toDomain())
	if err != nil {
		h.log.Warnf("Failed to update person ID %d: %v", id, err)
		RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, updatedPerson)
}

func (h *PersonHandler) Delete(c *gin.Context) {
	idStr := c.Param("id")
	id, err := strconv.Atoi(idStr)
	if err != nil || id <= 0 {
		h.log.Warnf("Invalid person ID parameter for delete: %s", idStr)
		ErrorResponse(c, http.StatusBadRequest, "Invalid person ID format")
		return
	}

	if err := h.useCase.DeletePerson(id); err != nil {
		h.log.Warnf("Failed to delete person ID %d: %v", id, err)
		RespondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
