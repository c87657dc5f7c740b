package domain

import "time"

// Message is a free-text scratch log entry with no business rules.
type Message struct {
	ID        int        `json:"id"`
	Message   string     `json:"message"`
	CreatedAt time.Time  `json:"createdAt"`
	UpdatedAt *time.Time `json:"updatedAt,omitempty"`
}

type MessageRepository interface {
	GetAll() ([]Message, error)
	GetByID(id int) (*Message, error)
	Create(message *Message) (*Message, error)
	Update(id int, text string) (*Message, error)
	Delete(id int) error
}
