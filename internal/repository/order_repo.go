package repository

import (
	"database/sql"
	"errors"
	"fmt"
	"order_api/internal/domain"

	"github.com/lib/pq"
	"github.com/sirupsen/logrus"
)

type postgresOrderRepository struct {
	db  *sql.DB
	log *logrus.Logger
}

func NewPostgresOrderRepository(db *sql.DB, logger *logrus.Logger) domain.OrderRepository {
	return &postgresOrderRepository{
		db:  db,
		log: logger,
	}
}

// Create persists the order and its details in one transaction. Stock is
// decremented with a conditional update (stock >= quantity), so a concurrent
// order on the same item cannot drive stock negative; any failure rolls the
// whole order back, including decrements already applied for earlier details.
func (r *postgresOrderRepository) Create(order *domain.Order) (created *domain.Order, err error) {
	tx, err := r.db.Begin()
	if err != nil {
		r.log.Errorf("Failed to begin transaction: %v", err)
		return nil, fmt.Errorf("could not start transaction: %w", err)
	}

	defer func() {
		if p := recover(); p != nil {
			_ = tx.Rollback()
			panic(p)
		} else if err != nil {
			r.log.Warnf("Rolling back order transaction: %v", err)
			if rbErr := tx.Rollback(); rbErr != nil {
				r.log.Errorf("Failed to rollback order transaction: %v", rbErr)
			}
			created = nil
		} else if cErr := tx.Commit(); cErr != nil {
			r.log.Errorf("Failed to commit order transaction: %v", cErr)
			err = fmt.Errorf("failed to commit transaction: %w", cErr)
			created = nil
		}
	}()

	decrementQuery := `
        UPDATE items
        SET stock = stock - $1, updated_at = NOW()
        WHERE id = $2 AND stock >= $1`
	for _, detail := range order.OrderDetails {
		result, execErr := tx.Exec(decrementQuery, detail.Quantity, detail.ItemID)
		if execErr != nil {
			err = fmt.Errorf("could not decrement stock for item %d: %w", detail.ItemID, execErr)
			return nil, err
		}
		affected, raErr := result.RowsAffected()
		if raErr != nil {
			err = fmt.Errorf("could not confirm stock decrement for item %d: %w", detail.ItemID, raErr)
			return nil, err
		}
		if affected == 0 {
			// Either the item vanished or a concurrent order drained its stock
			// after the use case validated it.
			var name string
			var stock int
			scanErr := tx.QueryRow(`SELECT name, stock FROM items WHERE id = $1`, detail.ItemID).Scan(&name, &stock)
			switch {
			case errors.Is(scanErr, sql.ErrNoRows):
				err = &domain.InvalidReferenceError{Reference: fmt.Sprintf("Item %d not found", detail.ItemID)}
			case scanErr != nil:
				err = fmt.Errorf("could not re-check stock for item %d: %w", detail.ItemID, scanErr)
			default:
				err = &domain.InsufficientStockError{ItemName: name, Available: stock, Requested: detail.Quantity}
			}
			return nil, err
		}
		r.log.Infof("Stock decremented by %d for item %d", detail.Quantity, detail.ItemID)
	}

	orderQuery := `
        INSERT INTO orders (person_id, order_date, total_amount, status, notes)
        VALUES ($1, $2, $3, $4, $5)
        RETURNING id, created_at`
	var notes sql.NullString
	if order.Notes != nil {
		notes = sql.NullString{String: *order.Notes, Valid: true}
	}
	err = tx.QueryRow(orderQuery, order.PersonID, order.OrderDate, order.TotalAmount, order.Status, notes).Scan(&order.ID, &order.CreatedAt)
	if err != nil {
		if pqErr, ok := err.(*pq.Error); ok && pqErr.Code == "23503" {
			err = &domain.InvalidReferenceError{Reference: "Person not found"}
			return nil, err
		}
		r.log.Errorf("Failed to insert order for person %d: %v", order.PersonID, err)
		err = fmt.Errorf("could not create order entry: %w", err)
		return nil, err
	}

	detailQuery := `
        INSERT INTO order_details (order_id, item_id, quantity, unit_price)
        VALUES ($1, $2, $3, $4)
        RETURNING id, created_at`
	stmt, err := tx.Prepare(detailQuery)
	if err != nil {
		r.log.Errorf("Failed to prepare order detail statement: %v", err)
		err = fmt.Errorf("could not prepare detail statement: %w", err)
		return nil, err
	}
	defer stmt.Close()

	for i := range order.OrderDetails {
		detail := &order.OrderDetails[i]
		detail.OrderID = order.ID
		err = stmt.QueryRow(order.ID, detail.ItemID, detail.Quantity, detail.UnitPrice).Scan(&detail.ID, &detail.CreatedAt)
		if err != nil {
			r.log.Errorf("Failed to insert order detail (item_id: %d) for order %d: %v", detail.ItemID, order.ID, err)
			err = fmt.Errorf("could not create order detail (item_id: %d): %w", detail.ItemID, err)
			return nil, err
		}
	}

	r.log.Infof("Order %d created successfully with %d details", order.ID, len(order.OrderDetails))
	return order, nil
}

func scanOrderWithPerson(rows *sql.Rows) (domain.Order, error) {
	var order domain.Order
	var person domain.Person
	var notes, phone, address sql.NullString
	var orderUpdatedAt, personUpdatedAt sql.NullTime

	err := rows.Scan(
		&order.ID, &order.PersonID, &order.OrderDate, &order.TotalAmount, &order.Status, &notes, &order.CreatedAt, &orderUpdatedAt,
		&person.ID, &person.FirstName, &person.LastName, &person.Email, &phone, &address, &person.CreatedAt, &personUpdatedAt,
	)
	if err != nil {
		return order, err
	}
	if notes.Valid {
		order.Notes = &notes.String
	}
	if orderUpdatedAt.Valid {
		order.UpdatedAt = &orderUpdatedAt.Time
	}
	if phone.Valid {
		person.Phone = &phone.String
	}
	if address.Valid {
		person.Address = &address.String
	}
	if personUpdatedAt.Valid {
		person.UpdatedAt = &personUpdatedAt.Time
	}
	order.Person = &person
	return order, nil
}

const hydratedOrderQuery = `
        SELECT o.id, o.person_id, o.order_date, o.total_amount, o.status, o.notes, o.created_at, o.updated_at,
               p.id, p.first_name, p.last_name, p.email, p.phone, p.address, p.created_at, p.updated_at
        FROM orders o
        JOIN persons p ON o.person_id = p.id`

func (r *postgresOrderRepository) listOrders(query string, args ...interface{}) ([]domain.Order, error) {
	rows, err := r.db.Query(query, args...)
	if err != nil {
		r.log.Errorf("Failed to query orders: %v", err)
		return nil, fmt.Errorf("could not retrieve orders: %w", err)
	}
	defer rows.Close()

	orders := []domain.Order{}
	orderIDs := []int{}
	for rows.Next() {
		order, scanErr := scanOrderWithPerson(rows)
		if scanErr != nil {
			r.log.Errorf("Failed to scan order row: %v", scanErr)
			return nil, fmt.Errorf("error scanning order data: %w", scanErr)
		}
		orders = append(orders, order)
		orderIDs = append(orderIDs, order.ID)
	}
	if err = rows.Err(); err != nil {
		r.log.Errorf("Error during orders iteration: %v", err)
		return nil, fmt.Errorf("error iterating orders: %w", err)
	}

	if len(orders) == 0 {
		return orders, nil
	}

	detailsMap, err := r.getDetailsForOrders(orderIDs)
	if err != nil {
		return nil, err
	}
	for i := range orders {
		if details, ok := detailsMap[orders[i].ID]; ok {
			orders[i].OrderDetails = details
		} else {
			orders[i].OrderDetails = []domain.OrderDetail{}
		}
	}
	return orders, nil
}

// getDetailsForOrders hydrates details with their items for a set of orders.
// Details are returned in insertion order (by id).
func (r *postgresOrderRepository) getDetailsForOrders(orderIDs []int) (map[int][]domain.OrderDetail, error) {
	detailsQuery := `
        SELECT od.id, od.order_id, od.item_id, od.quantity, od.unit_price, od.created_at,
               i.id, i.name, i.description, i.price, i.stock, i.created_at, i.updated_at
        FROM order_details od
        JOIN items i ON od.item_id = i.id
        WHERE od.order_id = ANY($1::int[])
        ORDER BY od.order_id ASC, od.id ASC`

	rows, err := r.db.Query(detailsQuery, pq.Array(orderIDs))
	if err != nil {
		r.log.Errorf("Failed to query details for orders %v: %v", orderIDs, err)
		return nil, fmt.Errorf("could not retrieve order details: %w", err)
	}
	defer rows.Close()

	detailsMap := make(map[int][]domain.OrderDetail)
	for rows.Next() {
		var detail domain.OrderDetail
		var item domain.Item
		var description sql.NullString
		var itemUpdatedAt sql.NullTime
		if err := rows.Scan(
			&detail.ID, &detail.OrderID, &detail.ItemID, &detail.Quantity, &detail.UnitPrice, &detail.CreatedAt,
			&item.ID, &item.Name, &description, &item.Price, &item.Stock, &item.CreatedAt, &itemUpdatedAt,
		); err != nil {
			r.log.Errorf("Failed to scan order detail row: %v", err)
			return nil, fmt.Errorf("error scanning order detail data: %w", err)
		}
		if description.Valid {
			item.Description = &description.String
		}
		if itemUpdatedAt.Valid {
			item.UpdatedAt = &itemUpdatedAt.Time
		}
		detail.Item = &item
		detailsMap[detail.OrderID] = append(detailsMap[detail.OrderID], detail)
	}
	if err = rows.Err(); err != nil {
		r.log.Errorf("Error during order details iteration: %v", err)
		return nil, fmt.Errorf("error iterating order details: %w", err)
	}
	return detailsMap, nil
}

func (r *postgresOrderRepository) GetAll() ([]domain.Order, error) {
	orders, err := r.listOrders(hydratedOrderQuery + `
        ORDER BY o.created_at DESC`)
	if err != nil {
		return nil, err
	}
	r.log.Infof("Retrieved %d orders", len(orders))
	return orders, nil
}

func (r *postgresOrderRepository) GetByPersonID(personID int) ([]domain.Order, error) {
	orders, err := r.listOrders(hydratedOrderQuery+`
        WHERE o.person_id = $1
        ORDER BY o.created_at DESC`, personID)
	if err != nil {
		return nil, err
	}
	r.log.Infof("Retrieved %d orders for person %d", len(orders), personID)
	return orders, nil
}

func (r *postgresOrderRepository) GetByID(id int) (*domain.Order, error) {
	orders, err := r.listOrders(hydratedOrderQuery+`
        WHERE o.id = $1`, id)
	if err != nil {
		return nil, err
	}
	if len(orders) == 0 {
		r.log.Warnf("Order with ID %d not found", id)
		return nil, fmt.Errorf("order with id %d: %w", id, domain.ErrNotFound)
	}
	return &orders[0], nil
}

func (r *postgresOrderRepository) UpdateStatus(id int, status domain.OrderStatus) (*domain.Order, error) {
	query := `
        UPDATE orders
        SET status = $1, updated_at = NOW()
        WHERE id = $2`
	result, err := r.db.Exec(query, status, id)
	if err != nil {
		r.log.Errorf("Failed to update status for order ID %d: %v", id, err)
		return nil, fmt.Errorf("could not update order status: %w", err)
	}
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		r.log.Errorf("Failed to get rows affected after status update for order ID %d: %v", id, err)
		return nil, fmt.Errorf("could not confirm order status update: %w", err)
	}
	if rowsAffected == 0 {
		r.log.Warnf("Order with ID %d not found for status update", id)
		return nil, fmt.Errorf("order with id %d: %w", id, domain.ErrNotFound)
	}

	r.log.Infof("Order %d status updated to '%s'", id, status)
	return r.GetByID(id)
}

// Delete removes the order; its details go with it via ON DELETE CASCADE.
// Stock is not restored.
func (r *postgresOrderRepository) Delete(id int) error {
	query := `DELETE FROM orders WHERE id = $1`
	result, err := r.db.Exec(query, id)
	if err != nil {
		r.log.Errorf("Failed to delete order ID %d: %v", id, err)
		return fmt.Errorf("could not delete order: %w", err)
	}
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		r.log.Errorf("Failed to get rows affected after deleting order ID %d: %v", id, err)
		return fmt.Errorf("could not confirm order deletion: %w", err)
	}
	if rowsAffected == 0 {
		r.log.Warnf("Attempted to delete non-existent order ID %d", id)
		return fmt.Errorf("order with id %d: %w", id, domain.ErrNotFound)
	}
	r.log.Infof("Order deleted successfully with ID: %d", id)
	return nil
}
