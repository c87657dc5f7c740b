package usecase

import (
	"errors"
	"order_api/internal/domain"
	"strings"

	"github.com/sirupsen/logrus"
)

type PersonUseCase interface {
	ListPersons() ([]domain.Person, error)
	GetPersonByID(id int) (*domain.Person, error)
	GetPersonByEmail(email string) (*domain.Person, error)
	CreatePerson(person *domain.Person) (*domain.Person, error)
	UpdatePerson(id int, person *domain.Person) (*domain.Person, error)
	DeletePerson(id int) error
}

type personUseCase struct {
	personRepo domain.PersonRepository
	log        *logrus.Logger
}

func NewPersonUseCase(repo domain.PersonRepository, logger *logrus.Logger) PersonUseCase {
	return &personUseCase{
		personRepo: repo,
		log:        logger,
	}
}

func isValidEmail(email string) bool {
	at := strings.Index(email, "@")
	dot := strings.LastIndex(email, ".")
	return at > 0 && dot > at+1 && dot < len(email)-1
}

func validatePerson(person *domain.Person) error {
	if strings.TrimSpace(person.FirstName) == "" {
		return errors.New("first name cannot be empty")
	}
	if strings.TrimSpace(person.LastName) == "" {
		return errors.New("last name cannot be empty")
	}
	if !isValidEmail(person.Email) {
		return errors.New("invalid email format")
	}
	return nil
}

func (uc *personUseCase) ListPersons() ([]domain.Person, error) {
	uc.log.Info("Use Case: Listing all persons")
	return uc.personRepo.GetAll()
}

func (uc *personUseCase) GetPersonByID(id int) (*domain.Person, error) {
	if id <= 0 {
		uc.log.Warnf("Use Case: Attempted to get person with invalid ID: %d", id)
		return nil, errors.New("invalid person ID")
	}
	uc.log.Infof("Use Case: Attempting to get person with ID %d", id)
	return uc.personRepo.GetByID(id)
}

func (uc *personUseCase) GetPersonByEmail(email string) (*domain.Person, error) {
	if strings.TrimSpace(email) == "" {
		uc.log.Warn("Use Case: Attempted to get person with empty email")
		return nil, errors.New("invalid email")
	}
	uc.log.Infof("Use Case: Attempting to get person with email %s", email)
	return uc.personRepo.GetByEmail(email)
}

func (uc *personUseCase) CreatePerson(person *domain.Person) (*domain.Person, error) {
	if err := validatePerson(person); err != nil {
		uc.log.Warnf("Use Case: Person validation failed on create: %v", err)
		return nil, err
	}

	uc.log.Infof("Use Case: Attempting to create person '%s %s'", person.FirstName, person.LastName)
	createdPerson, err := uc.personRepo.Create(person)
	if err != nil {
		uc.log.Errorf("Use Case: Repository failed to create person: %v", err)
		return nil, err
	}
	uc.log.Infof("Use Case: Person created successfully with ID %d", createdPerson.ID)
	return createdPerson, nil
}

func (uc *personUseCase) UpdatePerson(id int, person *domain.Person) (*domain.Person, error) {
	if id <= 0 {
		uc.log.Warnf("Use Case: Attempted update with invalid person ID: %d", id)
		return nil, errors.New("invalid person ID")
	}
	if err := validatePerson(person); err != nil {
		uc.log.Warnf("Use Case: Person validation failed on update for ID %d: %v", id, err)
		return nil, err
	}

	uc.log.Infof("Use Case: Attempting to update person with ID %d", id)
	updatedPerson, err := uc.personRepo.Update(id, person)
	if err != nil {
		uc.log.Warnf("Use Case: Repository failed to update person ID %d: %v", id, err)
		return nil, err
	}
	uc.log.Infof("Use Case: Person updated successfully for ID %d", id)
	return updatedPerson, nil
}

func (uc *personUseCase) DeletePerson(id int) error {
	if id <= 0 {
		uc.log.Warnf("Use Case: Attempted delete with invalid person ID: %d", id)
		return errors.New("invalid person ID")
	}
	uc.log.Infof("Use Case: Attempting to delete person with ID %d", id)
	if err := uc.personRepo.Delete(id); err != nil {
		uc.log.Warnf("Use Case: Repository failed to delete person ID %d: %v", id, err)
		return err
	}
	uc.log.Infof("Use Case: Person deleted successfully for ID %d", id)
	return nil
}
