package delivery

import (
	"bytes"
	"io"
	"net/http/httptest"
	"order_api/internal/domain"
	"order_api/internal/usecase"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

func testLogger() *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(io.Discard)
	return logger
}

type routeRegistrar interface {
	RegisterRoutes(router gin.IRouter)
}

func setupRouter(handlers ...routeRegistrar) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	for _, handler := range handlers {
		handler.RegisterRoutes(router)
	}
	return router
}

func performRequest(router *gin.Engine, method, path string, body []byte) *httptest.ResponseRecorder {
	var reader io.Reader
	if body != nil {
		reader = bytes.NewReader(body)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, req)
	return recorder
}

type stubOrderUseCase struct {
	createFn       func(personID int, notes *string, details []usecase.OrderDetailInput) (*domain.Order, error)
	getAllFn       func() ([]domain.Order, error)
	getByIDFn      func(id int) (*domain.Order, error)
	getByPersonFn  func(personID int) ([]domain.Order, error)
	updateStatusFn func(id int, status domain.OrderStatus) (*domain.Order, error)
	deleteFn       func(id int) error
}

func (s *stubOrderUseCase) CreateOrder(personID int, notes *string, details []usecase.OrderDetailInput) (*domain.Order, error) {
	return s.createFn(personID, notes, details)
}

func (s *stubOrderUseCase) GetAllOrders() ([]domain.Order, error) {
	return s.getAllFn()
}

func (s *stubOrderUseCase) GetOrderByID(id int) (*domain.Order, error) {
	return s.getByIDFn(id)
}

func (s *stubOrderUseCase) GetOrdersByPersonID(personID int) ([]domain.Order, error) {
	return s.getByPersonFn(personID)
}

func (s *stubOrderUseCase) UpdateOrderStatus(id int, status domain.OrderStatus) (*domain.Order, error) {
	return s.updateStatusFn(id, status)
}

func (s *stubOrderUseCase) DeleteOrder(id int) error {
	return s.deleteFn(id)
}

type stubItemUseCase struct {
	listFn          func() ([]domain.Item, error)
	listAvailableFn func() ([]domain.Item, error)
	getByIDFn       func(id int) (*domain.Item, error)
	createFn        func(item *domain.Item) (*domain.Item, error)
	updateFn        func(id int, item *domain.Item) (*domain.Item, error)
	deleteFn        func(id int) error
}

func (s *stubItemUseCase) ListItems() ([]domain.Item, error) {
	return s.listFn()
}

func (s *stubItemUseCase) ListAvailableItems() ([]domain.Item, error) {
	return s.listAvailableFn()
}

func (s *stubItemUseCase) GetItemByID(id int) (*domain.Item, error) {
	return s.getByIDFn(id)
}

func (s *stubItemUseCase) CreateItem(item *domain.Item) (*domain.Item, error) {
	return s.createFn(item)
}

func (s *stubItemUseCase) UpdateItem(id int, item *domain.Item) (*domain.Item, error) {
	return s.updateFn(id, item)
}

func (s *stubItemUseCase) DeleteItem(id int) error {
	return s.deleteFn(id)
}

type stubPersonUseCase struct {
	listFn       func() ([]domain.Person, error)
	getByIDFn    func(id int) (*domain.Person, error)
	getByEmailFn func(email string) (*domain.Person, error)
	createFn     func(person *domain.Person) (*domain.Person, error)
	updateFn     func(id int, person *domain.Person) (*domain.Person, error)
	deleteFn     func(id int) error
}

func (s *stubPersonUseCase) ListPersons() ([]domain.Person, error) {
	return s.listFn()
}

func (s *stubPersonUseCase) GetPersonByID(id int) (*domain.Person, error) {
	return s.getByIDFn(id)
}

func (s *stubPersonUseCase) GetPersonByEmail(email string) (*domain.Person, error) {
	return s.getByEmailFn(email)
}

func (s *stubPersonUseCase) CreatePerson(person *domain.Person) (*domain.Person, error) {
	return s.createFn(person)
}

func (s *stubPersonUseCase) UpdatePerson(id int, person *domain.Person) (*domain.Person, error) {
	return s.updateFn(id, person)
}

func (s *stubPersonUseCase) DeletePerson(id int) error {
	return s.deleteFn(id)
}

type stubMessageUseCase struct {
	listFn    func() ([]domain.Message, error)
	getByIDFn func(id int) (*domain.Message, error)
	createFn  func(text string) (*domain.Message, error)
	updateFn  func(id int, text string) (*domain.Message, error)
	deleteFn  func(id int) error
}

func (s *stubMessageUseCase) ListMessages() ([]domain.Message, error) {
	return s.listFn()
}

func (s *stubMessageUseCase) GetMessageByID(id int) (*domain.Message, error) {
	return s.getByIDFn(id)
}

func (s *stubMessageUseCase) CreateMessage(text string) (*domain.Message, error) {
	return s.createFn(text)
}

func (s *stubMessageUseCase) UpdateMessage(id int, text string) (*domain.Message, error) {
	return s.updateFn(id, text)
}

func (s *stubMessageUseCase) DeleteMessage(id int) error {
	return s.deleteFn(id)
}

var _ usecase.OrderUseCase = (*stubOrderUseCase)(nil)
var _ usecase.ItemUseCase = (*stubItemUseCase)(nil)
var _ usecase.PersonUseCase = (*stubPersonUseCase)(nil)
var _ usecase.MessageUseCase = (*stubMessageUseCase)(nil)
