package domain

import (
	"encoding/json"
	"time"
)

type OrderStatus string

const (
	StatusPending    OrderStatus = "Pending"
	StatusProcessing OrderStatus = "Processing"
	StatusCompleted  OrderStatus = "Completed"
	StatusCancelled  OrderStatus = "Cancelled"
)

func IsValidStatus(status OrderStatus) bool {
	switch status {
	case StatusPending, StatusProcessing, StatusCompleted, StatusCancelled:
		return true
	default:
		return false
	}
}

type Order struct {
	ID           int           `json:"id"`
	PersonID     int           `json:"personId"`
	Person       *Person       `json:"person,omitempty"`
	OrderDate    time.Time     `json:"orderDate"`
	TotalAmount  float64       `json:"totalAmount"`
	Status       OrderStatus   `json:"status"`
	Notes        *string       `json:"notes,omitempty"`
	CreatedAt    time.Time     `json:"createdAt"`
	UpdatedAt    *time.Time    `json:"updatedAt,omitempty"`
	OrderDetails []OrderDetail `json:"orderDetails"`
}

type OrderDetail struct {
	ID        int       `json:"id"`
	OrderID   int       `json:"orderId"`
	ItemID    int       `json:"itemId"`
	Item      *Item     `json:"item,omitempty"`
	Quantity  int       `json:"quantity"`
	UnitPrice float64   `json:"unitPrice"`
	CreatedAt time.Time `json:"createdAt"`
}

// TotalPrice is derived from quantity and the snapshotted unit price.
// It is never stored, so it cannot drift from its inputs.
func (d OrderDetail) TotalPrice() float64 {
	return float64(d.Quantity) * d.UnitPrice
}

func (d OrderDetail) MarshalJSON() ([]byte, error) {
	type orderDetail OrderDetail
	return json.Marshal(struct {
		orderDetail
		TotalPrice float64 `json:"totalPrice"`
	}{orderDetail(d), d.TotalPrice()})
}

// OrderRepository persists orders. Create is atomic: it decrements item
// stock and inserts the order with its details in a single transaction,
// rolling everything back on any failure. Reads return hydrated orders
// (person and each detail's item attached).
type OrderRepository interface {
	Create(order *Order) (*Order, error)
	GetAll() ([]Order, error)
	GetByID(id int) (*Order, error)
	GetByPersonID(personID int) ([]Order, error)
	UpdateStatus(id int, status OrderStatus) (*Order, error)
	Delete(id int) error
}
