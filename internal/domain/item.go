package domain

import "time"

type Item struct {
	ID          int        `json:"id"`
	Name        string     `json:"name"`
	Description *string    `json:"description,omitempty"`
	Price       float64    `json:"price"`
	Stock       int        `json:"stock"`
	CreatedAt   time.Time  `json:"createdAt"`
	UpdatedAt   *time.Time `json:"updatedAt,omitempty"`
}

type ItemRepository interface {
	GetAll() ([]Item, error)
	GetAvailable() ([]Item, error)
	GetByID(id int) (*Item, error)
	Create(item *Item) (*Item, error)
	Update(id int, item *Item) (*Item, error)
	Delete(id int) error
}
