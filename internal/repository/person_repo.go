package repository

import (
	"database/sql"
	"errors"
	"fmt"
	"order_api/internal/domain"

	"github.com/lib/pq"
	"github.com/sirupsen/logrus"
)

type postgresPersonRepository struct {
	db  *sql.DB
	log *logrus.Logger
}

func NewPostgresPersonRepository(db *sql.DB, logger *logrus.Logger) domain.PersonRepository {
	return &postgresPersonRepository{
		db:  db,
		log: logger,
	}
}

func (r *postgresPersonRepository) GetAll() ([]domain.Person, error) {
	query := `
        SELECT id, first_name, last_name, email, phone, address, created_at, updated_at
        FROM persons
        ORDER BY last_name ASC, first_name ASC`
	rows, err := r.db.Query(query)
	if err != nil {
		r.log.Errorf("Failed to list persons: %v", err)
		return nil, fmt.Errorf("could not list persons: %w", err)
	}
	defer rows.Close()

	persons := []domain.Person{}
	for rows.Next() {
		var person domain.Person
		var phone, address sql.NullString
		var updatedAt sql.NullTime
		if err := rows.Scan(&person.ID, &person.FirstName, &person.LastName, &person.Email, &phone, &address, &person.CreatedAt, &updatedAt); err != nil {
			r.log.Errorf("Failed to scan person row: %v", err)
			return nil, fmt.Errorf("error scanning person data: %w", err)
		}
		if phone.Valid {
			person.Phone = &phone.String
		}
		if address.Valid {
			person.Address = &address.String
		}
		if updatedAt.Valid {
			person.UpdatedAt = &updatedAt.Time
		}
		persons = append(persons, person)
	}
	if err = rows.Err(); err != nil {
		r.log.Errorf("Error during persons iteration: %v", err)
		return nil, fmt.Errorf("error iterating persons: %w", err)
	}
	r.log.Infof("Retrieved %d persons", len(persons))
	return persons, nil
}

func (r *postgresPersonRepository) getOne(query string, arg interface{}, notFound error) (*domain.Person, error) {
	person := &domain.Person{}
	var phone, address sql.NullString
	var updatedAt sql.NullTime

	err := r.db.QueryRow(query, arg).Scan(
		&person.ID,
		&person.FirstName,
		&person.LastName,
		&person.Email,
		&phone,
		&address,
		&person.CreatedAt,
		&updatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, notFound
		}
		r.log.Errorf("Failed to get person: %v", err)
		return nil, fmt.Errorf("could not get person: %w", err)
	}
	if phone.Valid {
		person.Phone = &phone.String
	}
	if address.Valid {
		person.Address = &address.String
	}
	if updatedAt.Valid {
		person.UpdatedAt = &updatedAt.Time
	}
	return person, nil
}

func (r *postgresPersonRepository) GetByID(id int) (*domain.Person, error) {
	query := `
        SELECT id, first_name, last_name, email, phone, address, created_at, updated_at
        FROM persons
        WHERE id = $1`
	person, err := r.getOne(query, id, fmt.Errorf("person with id %d: %w", id, domain.ErrNotFound))
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			r.log.Warnf("Person with ID %d not found", id)
		}
		return nil, err
	}
	return person, nil
}

// GetByEmail returns the first person with the given email, ordered by id.
// Email uniqueness is not enforced by the schema.
func (r *postgresPersonRepository) GetByEmail(email string) (*domain.Person, error) {
	query := `
        SELECT id, first_name, last_name, email, phone, address, created_at, updated_at
        FROM persons
        WHERE email = $1
        ORDER BY id ASC
        LIMIT 1`
	person, err := r.getOne(query, email, fmt.Errorf("person with email %s: %w", email, domain.ErrNotFound))
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			r.log.Warnf("Person with email %s not found", email)
		}
		return nil, err
	}
	return person, nil
}

func (r *postgresPersonRepository) Create(person *domain.Person) (*domain.Person, error) {
	query := `
        INSERT INTO persons (first_name, last_name, email, phone, address)
        VALUES ($1, $2, $3, $4, $5)
        RETURNING id, created_at`
	var phone, address sql.NullString
	if person.Phone != nil {
		phone = sql.NullString{String: *person.Phone, Valid: true}
	}
	if person.Address != nil {
		address = sql.NullString{String: *person.Address, Valid: true}
	}

	err := r.db.QueryRow(query, person.FirstName, person.LastName, person.Email, phone, address).Scan(&person.ID, &person.CreatedAt)
	if err != nil {
		r.log.Errorf("Failed to create person '%s %s': %v", person.FirstName, person.LastName, err)
		return nil, fmt.Errorf("could not create person: %w", err)
	}
	r.log.Infof("Person created successfully with ID: %d", person.ID)
	return person, nil
}

func (r *postgresPersonRepository) Update(id int, person *domain.Person) (*domain.Person, error) {
	query := `
        UPDATE persons
        SET first_name = $1, last_name = $2, email = $3, phone = $4, address = $5, updated_at = NOW()
        WHERE id = $6
        RETURNING id, created_at, updated_at`
	var phone, address sql.NullString
	if person.Phone != nil {
		phone = sql.NullString{String: *person.Phone, Valid: true}
	}
	if person.Address != nil {
		address = sql.NullString{String: *person.Address, Valid: true}
	}

	var updatedAt sql.NullTime
	err := r.db.QueryRow(query, person.FirstName, person.LastName, person.Email, phone, address, id).Scan(&person.ID, &person.CreatedAt, &updatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			r.log.Warnf("Person with ID %d not found for update", id)
			return nil, fmt.Errorf("person with id %d: %w", id, domain.ErrNotFound)
		}
		r.log.Errorf("Failed to update person ID %d: %v", id, err)
		return nil, fmt.Errorf("could not update person: %w", err)
	}
	if updatedAt.Valid {
		person.UpdatedAt = &updatedAt.Time
	}
	r.log.Infof("Person updated successfully with ID: %d", id)
	return person, nil
}

func (r *postgresPersonRepository) Delete(id int) error {
	query := `DELETE FROM persons WHERE id = $1`
	result, err := r.db.Exec(query, id)
	if err != nil {
		if pqErr, ok := err.(*pq.Error); ok && pqErr.Code == "23503" {
			r.log.Warnf("Attempted to delete person ID %d referenced by existing orders", id)
			return fmt.Errorf("person with id %d is referenced by existing orders and cannot be deleted", id)
		}
		r.log.Errorf("Failed to delete person ID %d: %v", id, err)
		return fmt.Errorf("could not delete person: %w", err)
	}
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		r.log.Errorf("Failed to get rows affected after deleting person ID %d: %v", id, err)
		return fmt.Errorf("could not confirm person deletion: %w", err)
	}
	if rowsAffected == 0 {
		r.log.Warnf("Attempted to delete non-existent person ID %d", id)
		return fmt.Errorf("person with id %d: %w", id, domain.ErrNotFound)
	}
	r.log.Infof("Person deleted successfully with ID: %d", id)
	return nil
}
