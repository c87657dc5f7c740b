package usecase

import (
	"errors"
	"fmt"
	"order_api/internal/domain"
	"time"

	"github.com/sirupsen/logrus"
)

// OrderDetailInput is one requested order line: which item and how many.
type OrderDetailInput struct {
	ItemID   int `json:"itemId"`
	Quantity int `json:"quantity"`
}

type OrderUseCase interface {
	CreateOrder(personID int, notes *string, details []OrderDetailInput) (*domain.Order, error)
	GetAllOrders() ([]domain.Order, error)
	GetOrderByID(id int) (*domain.Order, error)
	GetOrdersByPersonID(personID int) ([]domain.Order, error)
	UpdateOrderStatus(id int, status domain.OrderStatus) (*domain.Order, error)
	DeleteOrder(id int) error
}

type orderUseCase struct {
	orderRepo  domain.OrderRepository
	itemRepo   domain.ItemRepository
	personRepo domain.PersonRepository
	log        *logrus.Logger
}

func NewOrderUseCase(orderRepo domain.OrderRepository, itemRepo domain.ItemRepository, personRepo domain.PersonRepository, logger *logrus.Logger) OrderUseCase {
	return &orderUseCase{
		orderRepo:  orderRepo,
		itemRepo:   itemRepo,
		personRepo: personRepo,
		log:        logger,
	}
}

// CreateOrder validates everything before any stock is touched: the person
// first, then each detail in input order. Only after every detail has passed
// does the repository decrement stock and insert the order, atomically.
func (uc *orderUseCase) CreateOrder(personID int, notes *string, details []OrderDetailInput) (*domain.Order, error) {
	if personID <= 0 {
		return nil, errors.New("invalid person ID")
	}
	if len(details) == 0 {
		return nil, errors.New("order must contain at least one detail")
	}
	for i, detail := range details {
		if detail.ItemID <= 0 {
			return nil, fmt.Errorf("detail %d: invalid item ID", i)
		}
		if detail.Quantity < 1 {
			return nil, fmt.Errorf("detail %d (item %d): quantity must be at least 1", i, detail.ItemID)
		}
	}

	uc.log.Infof("Use Case: Creating order for person %d with %d details", personID, len(details))

	person, err := uc.personRepo.GetByID(personID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			uc.log.Warnf("Use Case: Person %d not found for new order", personID)
			return nil, &domain.InvalidReferenceError{Reference: "Person not found"}
		}
		uc.log.Errorf("Use Case: Failed to look up person %d: %v", personID, err)
		return nil, err
	}

	var totalAmount float64
	orderDetails := make([]domain.OrderDetail, 0, len(details))

	for _, detail := range details {
		item, err := uc.itemRepo.GetByID(detail.ItemID)
		if err != nil {
			if errors.Is(err, domain.ErrNotFound) {
				uc.log.Warnf("Use Case: Item %d not found for new order", detail.ItemID)
				return nil, &domain.InvalidReferenceError{Reference: fmt.Sprintf("Item %d not found", detail.ItemID)}
			}
			uc.log.Errorf("Use Case: Failed to look up item %d: %v", detail.ItemID, err)
			return nil, err
		}

		if item.Stock < detail.Quantity {
			uc.log.Warnf("Use Case: Insufficient stock for item %d '%s' (available: %d, requested: %d)",
				item.ID, item.Name, item.Stock, detail.Quantity)
			return nil, &domain.InsufficientStockError{
				ItemName:  item.Name,
				Available: item.Stock,
				Requested: detail.Quantity,
			}
		}

		// Snapshot the unit price; later catalog price changes must not
		// affect this order.
		orderDetail := domain.OrderDetail{
			ItemID:    item.ID,
			Item:      item,
			Quantity:  detail.Quantity,
			UnitPrice: item.Price,
		}
		totalAmount += orderDetail.TotalPrice()
		orderDetails = append(orderDetails, orderDetail)
	}

	order := &domain.Order{
		PersonID:     personID,
		Person:       person,
		OrderDate:    time.Now().UTC(),
		TotalAmount:  totalAmount,
		Status:       domain.StatusPending,
		Notes:        notes,
		OrderDetails: orderDetails,
	}

	createdOrder, err := uc.orderRepo.Create(order)
	if err != nil {
		uc.log.Errorf("Use Case: Repository failed to create order for person %d: %v", personID, err)
		return nil, err
	}

	uc.log.Infof("Use Case: Order %d created for person %d, total %.2f", createdOrder.ID, personID, createdOrder.TotalAmount)
	return createdOrder, nil
}

func (uc *orderUseCase) GetAllOrders() ([]domain.Order, error) {
	uc.log.Info("Use Case: Listing all orders")
	return uc.orderRepo.GetAll()
}

func (uc *orderUseCase) GetOrderByID(id int) (*domain.Order, error) {
	if id <= 0 {
		return nil, errors.New("invalid order ID")
	}
	uc.log.Infof("Use Case: Attempting to get order with ID %d", id)
	order, err := uc.orderRepo.GetByID(id)
	if err != nil {
		uc.log.Warnf("Use Case: Repository failed to get order ID %d: %v", id, err)
		return nil, err
	}
	return order, nil
}

func (uc *orderUseCase) GetOrdersByPersonID(personID int) ([]domain.Order, error) {
	if personID <= 0 {
		return nil, errors.New("invalid person ID")
	}
	uc.log.Infof("Use Case: Listing orders for person %d", personID)
	return uc.orderRepo.GetByPersonID(personID)
}

// UpdateOrderStatus accepts any of the four statuses from any current
// status, including no-ops and transitions out of terminal states. Stock is
// not restored on cancellation.
func (uc *orderUseCase) UpdateOrderStatus(id int, status domain.OrderStatus) (*domain.Order, error) {
	if id <= 0 {
		return nil, errors.New("invalid order ID")
	}
	if !domain.IsValidStatus(status) {
		uc.log.Warnf("Use Case: Invalid status '%s' requested for order %d", status, id)
		return nil, fmt.Errorf("invalid order status: %s", status)
	}

	uc.log.Infof("Use Case: Updating status for order %d to '%s'", id, status)
	updatedOrder, err := uc.orderRepo.UpdateStatus(id, status)
	if err != nil {
		uc.log.Warnf("Use Case: Repository failed to update status for order %d: %v", id, err)
		return nil, err
	}
	uc.log.Infof("Use Case: Order %d status updated to '%s'", updatedOrder.ID, updatedOrder.Status)
	return updatedOrder, nil
}

// DeleteOrder removes the order and, via cascade, its details. Stock is not
// restored.
func (uc *orderUseCase) DeleteOrder(id int) error {
	if id <= 0 {
		return errors.New("invalid order ID")
	}
	uc.log.Infof("Use Case: Deleting order %d", id)
	if err := uc.orderRepo.Delete(id); err != nil {
		uc.log.Warnf("Use Case: Repository failed to delete order %d: %v", id, err)
		return err
	}
	uc.log.Infof("Use Case: Order %d deleted", id)
	return nil
}
