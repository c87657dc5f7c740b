package usecase

import (
	"errors"
	"order_api/internal/domain"
	"strings"

	"github.com/sirupsen/logrus"
)

type MessageUseCase interface {
	ListMessages() ([]domain.Message, error)
	GetMessageByID(id int) (*domain.Message, error)
	CreateMessage(text string) (*domain.Message, error)
	UpdateMessage(id int, text string) (*domain.Message, error)
	DeleteMessage(id int) error
}

type messageUseCase struct {
	messageRepo domain.MessageRepository
	log         *logrus.Logger
}

func NewMessageUseCase(repo domain.MessageRepository, logger *logrus.Logger) MessageUseCase {
	return &messageUseCase{
		messageRepo: repo,
		log:         logger,
	}
}

func (uc *messageUseCase) ListMessages() ([]domain.Message, error) {
	uc.log.Info("Use Case: Listing all messages")
	return uc.messageRepo.GetAll()
}

func (uc *messageUseCase) GetMessageByID(id int) (*domain.Message, error) {
	if id <= 0 {
		return nil, errors.New("invalid message ID")
	}
	uc.log.Infof("Use Case: Attempting to get message with ID %d", id)
	return uc.messageRepo.GetByID(id)
}

func (uc *messageUseCase) CreateMessage(text string) (*domain.Message, error) {
	if strings.TrimSpace(text) == "" {
		uc.log.Warn("Use Case: Attempted to create empty message")
		return nil, errors.New("message cannot be empty")
	}
	uc.log.Info("Use Case: Creating message")
	return uc.messageRepo.Create(&domain.Message{Message: text})
}

func (uc *messageUseCase) UpdateMessage(id int, text string) (*domain.Message, error) {
	if id <= 0 {
		return nil, errors.New("invalid message ID")
	}
	if strings.TrimSpace(text) == "" {
		uc.log.Warnf("Use Case: Attempted to update message %d with empty text", id)
		return nil, errors.New("message cannot be empty")
	}
	uc.log.Infof("Use Case: Updating message %d", id)
	return uc.messageRepo.Update(id, text)
}

func (uc *messageUseCase) DeleteMessage(id int) error {
	if id <= 0 {
		return errors.New("invalid message ID")
	}
	uc.log.Infof("Use Case: Deleting message %d", id)
	return uc.messageRepo.Delete(id)
}
