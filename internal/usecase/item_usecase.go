package usecase

import (
	"errors"
	"order_api/internal/domain"

	"github.com/sirupsen/logrus"
)

type ItemUseCase interface {
	ListItems() ([]domain.Item, error)
	ListAvailableItems() ([]domain.Item, error)
	GetItemByID(id int) (*domain.Item, error)
	CreateItem(item *domain.Item) (*domain.Item, error)
	UpdateItem(id int, item *domain.Item) (*domain.Item, error)
	DeleteItem(id int) error
}

type itemUseCase struct {
	itemRepo domain.ItemRepository
	log      *logrus.Logger
}

func NewItemUseCase(repo domain.ItemRepository, logger *logrus.Logger) ItemUseCase {
	return &itemUseCase{
		itemRepo: repo,
		log:      logger,
	}
}

func validateItem(item *domain.Item) error {
	if item.Name == "" {
		return errors.New("item name cannot be empty")
	}
	if item.Price <= 0 {
		return errors.New("item price must be positive")
	}
	if item.Stock < 0 {
		return errors.New("item stock cannot be negative")
	}
	return nil
}

func (uc *itemUseCase) ListItems() ([]domain.Item, error) {
	uc.log.Info("Use Case: Listing all items")
	return uc.itemRepo.GetAll()
}

func (uc *itemUseCase) ListAvailableItems() ([]domain.Item, error) {
	uc.log.Info("Use Case: Listing available items")
	return uc.itemRepo.GetAvailable()
}

func (uc *itemUseCase) GetItemByID(id int) (*domain.Item, error) {
	if id <= 0 {
		uc.log.Warnf("Use Case: Attempted to get item with invalid ID: %d", id)
		return nil, errors.New("invalid item ID")
	}
	uc.log.Infof("Use Case: Attempting to get item with ID %d", id)
	return uc.itemRepo.GetByID(id)
}

func (uc *itemUseCase) CreateItem(item *domain.Item) (*domain.Item, error) {
	if err := validateItem(item); err != nil {
		uc.log.Warnf("Use Case: Item validation failed on create: %v", err)
		return nil, err
	}

	uc.log.Infof("Use Case: Attempting to create item '%s'", item.Name)
	createdItem, err := uc.itemRepo.Create(item)
	if err != nil {
		uc.log.Errorf("Use Case: Repository failed to create item '%s': %v", item.Name, err)
		return nil, err
	}
	uc.log.Infof("Use Case: Item '%s' created successfully with ID %d", createdItem.Name, createdItem.ID)
	return createdItem, nil
}

func (uc *itemUseCase) UpdateItem(id int, item *domain.Item) (*domain.Item, error) {
	if id <= 0 {
		uc.log.Warnf("Use Case: Attempted update with invalid item ID: %d", id)
		return nil, errors.New("invalid item ID")
	}
	if err := validateItem(item); err != nil {
		uc.log.Warnf("Use Case: Item validation failed on update for ID %d: %v", id, err)
		return nil, err
	}

	uc.log.Infof("Use Case: Attempting to update item with ID %d", id)
	updatedItem, err := uc.itemRepo.Update(id, item)
	if err != nil {
		uc.log.Warnf("Use Case: Repository failed to update item ID %d: %v", id, err)
		return nil, err
	}
	uc.log.Infof("Use Case: Item updated successfully for ID %d", id)
	return updatedItem, nil
}

func (uc *itemUseCase) DeleteItem(id int) error {
	if id <= 0 {
		uc.log.Warnf("Use Case: Attempted delete with invalid item ID: %d", id)
		return errors.New("invalid item ID")
	}
	uc.log.Infof("Use Case: Attempting to delete item with ID %d", id)
	if err := uc.itemRepo.Delete(id); err != nil {
		uc.log.Warnf("Use Case: Repository failed to delete item ID %d: %v", id, err)
		return err
	}
	uc.log.Infof("Use Case: Item deleted successfully for ID %d", id)
	return nil
}
