package usecase

import (
	"order_api/internal/domain"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIsValidEmail(t *testing.T) {
	valid := []string{"alice@example.com", "a.b@c.io", "x@y.co"}
	for _, email := range valid {
		assert.True(t, isValidEmail(email), "expected %s to be valid", email)
	}

	invalid := []string{"", "alice", "alice@", "@example.com", "alice@example", "alice@.com", "alice@example."}
	for _, email := range invalid {
		assert.False(t, isValidEmail(email), "expected %s to be invalid", email)
	}
}

func TestCreatePersonValidation(t *testing.T) {
	uc := NewPersonUseCase(newMockPersonRepo(), testLogger())

	_, err := uc.CreatePerson(&domain.Person{FirstName: " ", LastName: "Smith", Email: "a@b.co"})
	assert.EqualError(t, err, "first name cannot be empty")

	_, err = uc.CreatePerson(&domain.Person{FirstName: "Alice", LastName: "", Email: "a@b.co"})
	assert.EqualError(t, err, "last name cannot be empty")

	_, err = uc.CreatePerson(&domain.Person{FirstName: "Alice", LastName: "Smith", Email: "not-an-email"})
	assert.EqualError(t, err, "invalid email format")

	created, err := uc.CreatePerson(&domain.Person{FirstName: "Alice", LastName: "Smith", Email: "alice@example.com"})
	require.NoError(t, err)
	assert.NotZero(t, created.ID)
}

func TestGetPersonByEmail(t *testing.T) {
	repo := newMockPersonRepo(&domain.Person{
		ID:        1,
		FirstName: "Alice",
		LastName:  "Smith",
		Email:     "alice@example.com",
	})
	uc := NewPersonUseCase(repo, testLogger())

	person, err := uc.GetPersonByEmail("alice@example.com")
	require.NoError(t, err)
	assert.Equal(t, 1, person.ID)

	_, err = uc.GetPersonByEmail("bob@example.com")
	assert.ErrorIs(t, err, domain.ErrNotFound)

	_, err = uc.GetPersonByEmail("  ")
	assert.EqualError(t, err, "invalid email")
}

func TestUpdateAndDeletePerson(t *testing.T) {
	repo := newMockPersonRepo(&domain.Person{
		ID:        1,
		FirstName: "Alice",
		LastName:  "Smith",
		Email:     "alice@example.com",
	})
	uc := NewPersonUseCase(repo, testLogger())

	updated, err := uc.UpdatePerson(1, &domain.Person{FirstName: "Alicia", LastName: "Smith", Email: "alice@example.com"})
	require.NoError(t, err)
	assert.Equal(t, "Alicia", updated.FirstName)

	_, err = uc.UpdatePerson(5, &domain.Person{FirstName: "Bob", LastName: "Jones", Email: "bob@example.com"})
	assert.ErrorIs(t, err, domain.ErrNotFound)

	require.NoError(t, uc.DeletePerson(1))
	assert.ErrorIs(t, uc.DeletePerson(1), domain.ErrNotFound)
	assert.EqualError(t, uc.DeletePerson(0), "invalid person ID")
}
