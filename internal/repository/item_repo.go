package repository

import (
	"database/sql"
	"errors"
	"fmt"
	"order_api/internal/domain"

	"github.com/lib/pq"
	"github.com/sirupsen/logrus"
)

type postgresItemRepository struct {
	db  *sql.DB
	log *logrus.Logger
}

func NewPostgresItemRepository(db *sql.DB, logger *logrus.Logger) domain.ItemRepository {
	return &postgresItemRepository{
		db:  db,
		log: logger,
	}
}

func scanItemRow(rows *sql.Rows) (domain.Item, error) {
	var item domain.Item
	var description sql.NullString
	var updatedAt sql.NullTime

	err := rows.Scan(&item.ID, &item.Name, &description, &item.Price, &item.Stock, &item.CreatedAt, &updatedAt)
	if err != nil {
		return item, err
	}
	if description.Valid {
		item.Description = &description.String
	}
	if updatedAt.Valid {
		item.UpdatedAt = &updatedAt.Time
	}
	return item, nil
}

func (r *postgresItemRepository) listItems(query string, args ...interface{}) ([]domain.Item, error) {
	rows, err := r.db.Query(query, args...)
	if err != nil {
		r.log.Errorf("Failed to query items: %v", err)
		return nil, fmt.Errorf("could not list items: %w", err)
	}
	defer rows.Close()

	items := []domain.Item{}
	for rows.Next() {
		item, err := scanItemRow(rows)
		if err != nil {
			r.log.Errorf("Failed to scan item row: %v", err)
			return nil, fmt.Errorf("error scanning item data: %w", err)
		}
		items = append(items, item)
	}
	if err = rows.Err(); err != nil {
		r.log.Errorf("Error during items iteration: %v", err)
		return nil, fmt.Errorf("error iterating items: %w", err)
	}
	return items, nil
}

func (r *postgresItemRepository) GetAll() ([]domain.Item, error) {
	query := `
        SELECT id, name, description, price, stock, created_at, updated_at
        FROM items
        ORDER BY name ASC`
	items, err := r.listItems(query)
	if err != nil {
		return nil, err
	}
	r.log.Infof("Retrieved %d items", len(items))
	return items, nil
}

func (r *postgresItemRepository) GetAvailable() ([]domain.Item, error) {
	query := `
        SELECT id, name, description, price, stock, created_at, updated_at
        FROM items
        WHERE stock > 0
        ORDER BY name ASC`
	items, err := r.listItems(query)
	if err != nil {
		return nil, err
	}
	r.log.Infof("Retrieved %d available items", len(items))
	return items, nil
}

func (r *postgresItemRepository) GetByID(id int) (*domain.Item, error) {
	query := `
        SELECT id, name, description, price, stock, created_at, updated_at
        FROM items
        WHERE id = $1`
	item := &domain.Item{}
	var description sql.NullString
	var updatedAt sql.NullTime

	err := r.db.QueryRow(query, id).Scan(
		&item.ID,
		&item.Name,
		&description,
		&item.Price,
		&item.Stock,
		&item.CreatedAt,
		&updatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			r.log.Warnf("Item with ID %d not found", id)
			return nil, fmt.Errorf("item with id %d: %w", id, domain.ErrNotFound)
		}
		r.log.Errorf("Failed to get item by ID %d: %v", id, err)
		return nil, fmt.Errorf("could not get item by id: %w", err)
	}

	if description.Valid {
		item.Description = &description.String
	}
	if updatedAt.Valid {
		item.UpdatedAt = &updatedAt.Time
	}
	return item, nil
}

func (r *postgresItemRepository) Create(item *domain.Item) (*domain.Item, error) {
	query := `
        INSERT INTO items (name, description, price, stock)
        VALUES ($1, $2, $3, $4)
        RETURNING id, created_at`
	var description sql.NullString
	if item.Description != nil {
		description = sql.NullString{String: *item.Description, Valid: true}
	}

	err := r.db.QueryRow(query, item.Name, description, item.Price, item.Stock).Scan(&item.ID, &item.CreatedAt)
	if err != nil {
		if pqErr, ok := err.(*pq.Error); ok && pqErr.Code == "23514" {
			r.log.Warnf("Check constraint violation for item '%s': %s", item.Name, pqErr.Message)
			return nil, fmt.Errorf("invalid item data: %s", pqErr.Message)
		}
		r.log.Errorf("Failed to create item '%s': %v", item.Name, err)
		return nil, fmt.Errorf("could not create item: %w", err)
	}
	r.log.Infof("Item created successfully with ID: %d, Name: %s", item.ID, item.Name)
	return item, nil
}

func (r *postgresItemRepository) Update(id int, item *domain.Item) (*domain.Item, error) {
	query := `
        UPDATE items
        SET name = $1, description = $2, price = $3, stock = $4, updated_at = NOW()
        WHERE id = $5
        RETURNING id, created_at, updated_at`
	var description sql.NullString
	if item.Description != nil {
		description = sql.NullString{String: *item.Description, Valid: true}
	}

	var updatedAt sql.NullTime
	err := r.db.QueryRow(query, item.Name, description, item.Price, item.Stock, id).Scan(&item.ID, &item.CreatedAt, &updatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			r.log.Warnf("Item with ID %d not found for update", id)
			return nil, fmt.Errorf("item with id %d: %w", id, domain.ErrNotFound)
		}
		if pqErr, ok := err.(*pq.Error); ok && pqErr.Code == "23514" {
			r.log.Warnf("Check constraint violation updating item ID %d: %s", id, pqErr.Message)
			return nil, fmt.Errorf("invalid item data: %s", pqErr.Message)
		}
		r.log.Errorf("Failed to update item ID %d: %v", id, err)
		return nil, fmt.Errorf("could not update item: %w", err)
	}
	if updatedAt.Valid {
		item.UpdatedAt = &updatedAt.Time
	}
	r.log.Infof("Item updated successfully with ID: %d", id)
	return item, nil
}

func (r *postgresItemRepository) Delete(id int) error {
	query := `DELETE FROM items WHERE id = $1`
	result, err := r.db.Exec(query, id)
	if err != nil {
		if pqErr, ok := err.(*pq.Error); ok && pqErr.Code == "23503" {
			r.log.Warnf("Attempted to delete item ID %d referenced by existing orders", id)
			return fmt.Errorf("item with id %d is referenced by existing orders and cannot be deleted", id)
		}
		r.log.Errorf("Failed to delete item ID %d: %v", id, err)
		return fmt.Errorf("could not delete item: %w", err)
	}
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		r.log.Errorf("Failed to get rows affected after deleting item ID %d: %v", id, err)
		return fmt.Errorf("could not confirm item deletion: %w", err)
	}
	if rowsAffected == 0 {
		r.log.Warnf("Attempted to delete non-existent item ID %d", id)
		return fmt.Errorf("item with id %d: %w", id, domain.ErrNotFound)
	}
	r.log.Infof("Item deleted successfully with ID: %d", id)
	return nil
}
