package domain

import "time"

type Person struct {
	ID        int        `json:"id"`
	FirstName string     `json:"firstName"`
	LastName  string     `json:"lastName"`
	Email     string     `json:"email"`
	Phone     *string    `json:"phone,omitempty"`
	Address   *string    `json:"address,omitempty"`
	CreatedAt time.Time  `json:"createdAt"`
	UpdatedAt *time.Time `json:"updatedAt,omitempty"`
}

type PersonRepository interface {
	GetAll() ([]Person, error)
	GetByID(id int) (*Person, error)
	GetByEmail(email string) (*Person, error)
	Create(person *Person) (*Person, error)
	Update(id int, person *Person) (*Person, error)
	Delete(id int) error
}
