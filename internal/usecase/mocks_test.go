package usecase

import (
	"fmt"
	"io"
	"order_api/internal/domain"
	"time"

	"github.com/sirupsen/logrus"
)

func testLogger() *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(io.Discard)
	return logger
}

type mockItemRepo struct {
	items map[int]*domain.Item
}

func newMockItemRepo(items ...*domain.Item) *mockItemRepo {
	repo := &mockItemRepo{items: make(map[int]*domain.Item)}
	for _, item := range items {
		repo.items[item.ID] = item
	}
	return repo
}

func (m *mockItemRepo) GetAll() ([]domain.Item, error) {
	all := []domain.Item{}
	for _, item := range m.items {
		all = append(all, *item)
	}
	return all, nil
}

func (m *mockItemRepo) GetAvailable() ([]domain.Item, error) {
	available := []domain.Item{}
	for _, item := range m.items {
		if item.Stock > 0 {
			available = append(available, *item)
		}
	}
	return available, nil
}

func (m *mockItemRepo) GetByID(id int) (*domain.Item, error) {
	item, ok := m.items[id]
	if !ok {
		return nil, fmt.Errorf("item with id %d: %w", id, domain.ErrNotFound)
	}
	copied := *item
	return &copied, nil
}

func (m *mockItemRepo) Create(item *domain.Item) (*domain.Item, error) {
	item.ID = len(m.items) + 1
	item.CreatedAt = time.Now()
	m.items[item.ID] = item
	return item, nil
}

func (m *mockItemRepo) Update(id int, item *domain.Item) (*domain.Item, error) {
	if _, ok := m.items[id]; !ok {
		return nil, fmt.Errorf("item with id %d: %w", id, domain.ErrNotFound)
	}
	item.ID = id
	m.items[id] = item
	return item, nil
}

func (m *mockItemRepo) Delete(id int) error {
	if _, ok := m.items[id]; !ok {
		return fmt.Errorf("item with id %d: %w", id, domain.ErrNotFound)
	}
	delete(m.items, id)
	return nil
}

type mockPersonRepo struct {
	persons map[int]*domain.Person
}

func newMockPersonRepo(persons ...*domain.Person) *mockPersonRepo {
	repo := &mockPersonRepo{persons: make(map[int]*domain.Person)}
	for _, person := range persons {
		repo.persons[person.ID] = person
	}
	return repo
}

func (m *mockPersonRepo) GetAll() ([]domain.Person, error) {
	all := []domain.Person{}
	for _, person := range m.persons {
		all = append(all, *person)
	}
	return all, nil
}

func (m *mockPersonRepo) GetByID(id int) (*domain.Person, error) {
	person, ok := m.persons[id]
	if !ok {
		return nil, fmt.Errorf("person with id %d: %w", id, domain.ErrNotFound)
	}
	copied := *person
	return &copied, nil
}

func (m *mockPersonRepo) GetByEmail(email string) (*domain.Person, error) {
	for _, person := range m.persons {
		if person.Email == email {
			copied := *person
			return &copied, nil
		}
	}
	return nil, fmt.Errorf("person with email %s: %w", email, domain.ErrNotFound)
}

func (m *mockPersonRepo) Create(person *domain.Person) (*domain.Person, error) {
	person.ID = len(m.persons) + 1
	person.CreatedAt = time.Now()
	m.persons[person.ID] = person
	return person, nil
}

func (m *mockPersonRepo) Update(id int, person *domain.Person) (*domain.Person, error) {
	if _, ok := m.persons[id]; !ok {
		return nil, fmt.Errorf("person with id %d: %w", id, domain.ErrNotFound)
	}
	person.ID = id
	m.persons[id] = person
	return person, nil
}

func (m *mockPersonRepo) Delete(id int) error {
	if _, ok := m.persons[id]; !ok {
		return fmt.Errorf("person with id %d: %w", id, domain.ErrNotFound)
	}
	delete(m.persons, id)
	return nil
}

// mockOrderRepo mimics the transactional store: Create validates every
// detail before decrementing any stock, so a failing detail leaves all
// item stocks untouched.
type mockOrderRepo struct {
	itemRepo    *mockItemRepo
	orders      map[int]*domain.Order
	nextID      int
	createCalls int
}

func newMockOrderRepo(itemRepo *mockItemRepo, orders ...*domain.Order) *mockOrderRepo {
	repo := &mockOrderRepo{itemRepo: itemRepo, orders: make(map[int]*domain.Order)}
	for _, order := range orders {
		repo.orders[order.ID] = order
		if order.ID > repo.nextID {
			repo.nextID = order.ID
		}
	}
	return repo
}

func (m *mockOrderRepo) Create(order *domain.Order) (*domain.Order, error) {
	m.createCalls++
	for _, detail := range order.OrderDetails {
		item, ok := m.itemRepo.items[detail.ItemID]
		if !ok {
			return nil, &domain.InvalidReferenceError{Reference: fmt.Sprintf("Item %d not found", detail.ItemID)}
		}
		if item.Stock < detail.Quantity {
			return nil, &domain.InsufficientStockError{ItemName: item.Name, Available: item.Stock, Requested: detail.Quantity}
		}
	}
	for _, detail := range order.OrderDetails {
		m.itemRepo.items[detail.ItemID].Stock -= detail.Quantity
	}

	m.nextID++
	order.ID = m.nextID
	order.CreatedAt = time.Now()
	for i := range order.OrderDetails {
		order.OrderDetails[i].ID = i + 1
		order.OrderDetails[i].OrderID = order.ID
		order.OrderDetails[i].CreatedAt = order.CreatedAt
	}
	stored := *order
	m.orders[order.ID] = &stored
	return order, nil
}

func (m *mockOrderRepo) GetAll() ([]domain.Order, error) {
	all := []domain.Order{}
	for _, order := range m.orders {
		all = append(all, *order)
	}
	return all, nil
}

func (m *mockOrderRepo) GetByID(id int) (*domain.Order, error) {
	order, ok := m.orders[id]
	if !ok {
		return nil, fmt.Errorf("order with id %d: %w", id, domain.ErrNotFound)
	}
	copied := *order
	return &copied, nil
}

func (m *mockOrderRepo) GetByPersonID(personID int) ([]domain.Order, error) {
	matching := []domain.Order{}
	for _, order := range m.orders {
		if order.PersonID == personID {
			matching = append(matching, *order)
		}
	}
	return matching, nil
}

func (m *mockOrderRepo) UpdateStatus(id int, status domain.OrderStatus) (*domain.Order, error) {
	order, ok := m.orders[id]
	if !ok {
		return nil, fmt.Errorf("order with id %d: %w", id, domain.ErrNotFound)
	}
	order.Status = status
	now := time.Now()
	order.UpdatedAt = &now
	copied := *order
	return &copied, nil
}

func (m *mockOrderRepo) Delete(id int) error {
	if _, ok := m.orders[id]; !ok {
		return fmt.Errorf("order with id %d: %w", id, domain.ErrNotFound)
	}
	delete(m.orders, id)
	return nil
}

type mockMessageRepo struct {
	messages map[int]*domain.Message
}

func newMockMessageRepo() *mockMessageRepo {
	return &mockMessageRepo{messages: make(map[int]*domain.Message)}
}

func (m *mockMessageRepo) GetAll() ([]domain.Message, error) {
	all := []domain.Message{}
	for _, message := range m.messages {
		all = append(all, *message)
	}
	return all, nil
}

func (m *mockMessageRepo) GetByID(id int) (*domain.Message, error) {
	message, ok := m.messages[id]
	if !ok {
		return nil, fmt.Errorf("message with id %d: %w", id, domain.ErrNotFound)
	}
	copied := *message
	return &copied, nil
}

func (m *mockMessageRepo) Create(message *domain.Message) (*domain.Message, error) {
	message.ID = len(m.messages) + 1
	message.CreatedAt = time.Now()
	m.messages[message.ID] = message
	return message, nil
}

func (m *mockMessageRepo) Update(id int, text string) (*domain.Message, error) {
	message, ok := m.messages[id]
	if !ok {
		return nil, fmt.Errorf("message with id %d: %w", id, domain.ErrNotFound)
	}
	message.Message = text
	now := time.Now()
	message.UpdatedAt = &now
	copied := *message
	return &copied, nil
}

func (m *mockMessageRepo) Delete(id int) error {
	if _, ok := m.messages[id]; !ok {
		return fmt.Errorf("message with id %d: %w", id, domain.ErrNotFound)
	}
	delete(m.messages, id)
	return nil
}
