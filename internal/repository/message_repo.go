package repository

import (
	"database/sql"
	"errors"
	"fmt"
	"order_api/internal/domain"

	"github.com/sirupsen/logrus"
)

type postgresMessageRepository struct {
	db  *sql.DB
	log *logrus.Logger
}

func NewPostgresMessageRepository(db *sql.DB, logger *logrus.Logger) domain.MessageRepository {
	return &postgresMessageRepository{
		db:  db,
		log: logger,
	}
}

func (r *postgresMessageRepository) GetAll() ([]domain.Message, error) {
	query := `
        SELECT id, message, created_at, updated_at
        FROM messages
        ORDER BY created_at DESC`
	rows, err := r.db.Query(query)
	if err != nil {
		r.log.Errorf("Failed to list messages: %v", err)
		return nil, fmt.Errorf("could not list messages: %w", err)
	}
	defer rows.Close()

	messages := []domain.Message{}
	for rows.Next() {
		var message domain.Message
		var updatedAt sql.NullTime
		if err := rows.Scan(&message.ID, &message.Message, &message.CreatedAt, &updatedAt); err != nil {
			r.log.Errorf("Failed to scan message row: %v", err)
			return nil, fmt.Errorf("error scanning message data: %w", err)
		}
		if updatedAt.Valid {
			message.UpdatedAt = &updatedAt.Time
		}
		messages = append(messages, message)
	}
	if err = rows.Err(); err != nil {
		r.log.Errorf("Error during messages iteration: %v", err)
		return nil, fmt.Errorf("error iterating messages: %w", err)
	}
	r.log.Infof("Retrieved %d messages", len(messages))
	return messages, nil
}

func (r *postgresMessageRepository) GetByID(id int) (*domain.Message, error) {
	query := `
        SELECT id, message, created_at, updated_at
        FROM messages
        WHERE id = $1`
	message := &domain.Message{}
	var updatedAt sql.NullTime

	err := r.db.QueryRow(query, id).Scan(&message.ID, &message.Message, &message.CreatedAt, &updatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			r.log.Warnf("Message with ID %d not found", id)
			return nil, fmt.Errorf("message with id %d: %w", id, domain.ErrNotFound)
		}
		r.log.Errorf("Failed to get message by ID %d: %v", id, err)
		return nil, fmt.Errorf("could not get message by id: %w", err)
	}
	if updatedAt.Valid {
		message.UpdatedAt = &updatedAt.Time
	}
	return message, nil
}

func (r *postgresMessageRepository) Create(message *domain.Message) (*domain.Message, error) {
	query := `
        INSERT INTO messages (message)
        VALUES ($1)
        RETURNING id, created_at`
	err := r.db.QueryRow(query, message.Message).Scan(&message.ID, &message.CreatedAt)
	if err != nil {
		r.log.Errorf("Failed to create message: %v", err)
		return nil, fmt.Errorf("could not create message: %w", err)
	}
	r.log.Infof("Message created successfully with ID: %d", message.ID)
	return message, nil
}

func (r *postgresMessageRepository) Update(id int, text string) (*domain.Message, error) {
	query := `
        UPDATE messages
        SET message = $1, updated_at = NOW()
        WHERE id = $2
        RETURNING id, message, created_at, updated_at`
	message := &domain.Message{}
	var updatedAt sql.NullTime

	err := r.db.QueryRow(query, text, id).Scan(&message.ID, &message.Message, &message.CreatedAt, &updatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			r.log.Warnf("Message with ID %d not found for update", id)
			return nil, fmt.Errorf("message with id %d: %w", id, domain.ErrNotFound)
		}
		r.log.Errorf("Failed to update message ID %d: %v", id, err)
		return nil, fmt.Errorf("could not update message: %w", err)
	}
	if updatedAt.Valid {
		message.UpdatedAt = &updatedAt.Time
	}
	r.log.Infof("Message updated successfully with ID: %d", id)
	return message, nil
}

func (r *postgresMessageRepository) Delete(id int) error {
	query := `DELETE FROM messages WHERE id = $1`
	result, err := r.db.Exec(query, id)
	if err != nil {
		r.log.Errorf("Failed to delete message ID %d: %v", id, err)
		return fmt.Errorf("could not delete message: %w", err)
	}
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		r.log.Errorf("Failed to get rows affected after deleting message ID %d: %v", id, err)
		return fmt.Errorf("could not confirm message deletion: %w", err)
	}
	if rowsAffected == 0 {
		r.log.Warnf("Attempted to delete non-existent message ID %d", id)
		return fmt.Errorf("message with id %d: %w", id, domain.ErrNotFound)
	}
	r.log.Infof("Message deleted successfully with ID: %d", id)
	return nil
}
