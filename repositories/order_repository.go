package repositories

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"bistro-backend/config"
	"bistro-backend/models"
	"bistro-backend/utils"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

type OrderRepository struct{}

func NewOrderRepository() *OrderRepository {
	return &OrderRepository{}
}

const orderColumns = `id, order_number, customer_name, customer_email, customer_phone, type,
	delivery_address, items_total, delivery_fee, total, status, payment_method, card_last4,
	note, estimated_ready_at, ready_at, completed_at, cancelled_at, created_at, updated_at`

// PlaceOrder runs the whole create path in one transaction: lock the
// referenced menu rows, validate every line against the locked state,
// snapshot name/price, take the next order number, insert the order and
// its lines, then decrement tracked stock. If any line fails, nothing is
// persisted and no stock moves. The row locks serialize concurrent orders
// competing for the same items, and the conditional decrement guards the
// stock invariant even so.
func (r *OrderRepository) PlaceOrder(ctx context.Context, order *models.Order, lines []models.OrderItemRequest, minOrderCents int) error {
	tx, err := config.DB.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	ids := make([]int, 0, len(lines))
	for _, line := range lines {
		ids = append(ids, line.MenuItemID)
	}

	rows, err := tx.Query(ctx,
		`SELECT id, name, price, is_available, stock FROM menu_items WHERE id = ANY($1) FOR UPDATE`, ids)
	if err != nil {
		return err
	}

	type lockedItem struct {
		name        string
		price       int
		isAvailable bool
		stock       *int
	}
	locked := map[int]lockedItem{}
	for rows.Next() {
		var id int
		var item lockedItem
		if err := rows.Scan(&id, &item.name, &item.price, &item.isAvailable, &item.stock); err != nil {
			rows.Close()
			return err
		}
		locked[id] = item
	}
	rows.Close()
	if err := rows.Err(); err != nil {
		return err
	}

	// Validate every line before touching any stock. Quantities are
	// aggregated per item so two lines for the same item cannot pass
	// individually yet overdraw together.
	needed := map[int]int{}
	order.Items = make([]models.OrderItem, 0, len(lines))
	for _, line := range lines {
		item, ok := locked[line.MenuItemID]
		if !ok {
			return utils.NotFoundError("Menu item %d not found", line.MenuItemID)
		}
		if !item.isAvailable {
			return utils.DomainError("%s is currently unavailable", item.name)
		}
		needed[line.MenuItemID] += line.Quantity
		if item.stock != nil && *item.stock < needed[line.MenuItemID] {
			return utils.DomainError("Insufficient stock for %s: %d available", item.name, *item.stock)
		}

		orderItem := models.OrderItem{
			MenuItemID:    line.MenuItemID,
			Name:          item.name,
			Price:         item.price,
			Quantity:      line.Quantity,
			StockReserved: item.stock != nil,
		}
		if line.Instructions != "" {
			instructions := line.Instructions
			orderItem.Instructions = &instructions
		}
		order.Items = append(order.Items, orderItem)
	}

	order.ItemsTotal = models.ItemsTotalCents(order.Items)
	if order.ItemsTotal < minOrderCents {
		return utils.DomainError("Order total %d is below the minimum order amount %d", order.ItemsTotal, minOrderCents)
	}
	order.Total = order.ItemsTotal + order.DeliveryFee

	var seq int64
	if err := tx.QueryRow(ctx,
		`UPDATE order_counters SET value = value + 1 WHERE name = 'orders' RETURNING value`).Scan(&seq); err != nil {
		return err
	}
	order.OrderNumber = models.FormatOrderNumber(seq)
	order.Status = models.OrderStatusPending

	now := time.Now()
	err = tx.QueryRow(ctx,
		`INSERT INTO orders (order_number, customer_name, customer_email, customer_phone, type,
			delivery_address, items_total, delivery_fee, total, status, payment_method, card_last4,
			estimated_ready_at, created_at, updated_at)
		 VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12,$13,$14,$15)
		 RETURNING id, created_at, updated_at`,
		order.OrderNumber, order.CustomerName, order.CustomerEmail, order.CustomerPhone, order.Type,
		order.DeliveryAddress, order.ItemsTotal, order.DeliveryFee, order.Total, order.Status,
		order.PaymentMethod, order.CardLast4, order.EstimatedReadyAt, now, now,
	).Scan(&order.ID, &order.CreatedAt, &order.UpdatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return utils.ConflictError("Order number %s already taken", order.OrderNumber)
		}
		return err
	}

	for i := range order.Items {
		item := &order.Items[i]
		item.OrderID = order.ID
		err = tx.QueryRow(ctx,
			`INSERT INTO order_items (order_id, menu_item_id, name, price, quantity, instructions, stock_reserved)
			 VALUES ($1,$2,$3,$4,$5,$6,$7) RETURNING id`,
			item.OrderID, item.MenuItemID, item.Name, item.Price, item.Quantity, item.Instructions, item.StockReserved,
		).Scan(&item.ID)
		if err != nil {
			return err
		}
	}

	for id, quantity := range needed {
		if locked[id].stock == nil {
			continue
		}
		tag, err := tx.Exec(ctx,
			`UPDATE menu_items SET stock = stock - $1, updated_at = $2 WHERE id = $3 AND stock >= $1`,
			quantity, now, id)
		if err != nil {
			return err
		}
		if tag.RowsAffected() == 0 {
			return utils.DomainError("Insufficient stock for %s", locked[id].name)
		}
	}

	return tx.Commit(ctx)
}

func (r *OrderRepository) GetOrderByID(ctx context.Context, id int) (*models.Order, error) {
	order, err := r.scanOne(ctx, `SELECT `+orderColumns+` FROM orders WHERE id = $1`, id)
	if err != nil {
		return nil, err
	}
	if err := r.loadItems(ctx, order); err != nil {
		return nil, err
	}
	return order, nil
}

func (r *OrderRepository) GetOrderByNumberAndEmail(ctx context.Context, number, email string) (*models.Order, error) {
	order, err := r.scanOne(ctx,
		`SELECT `+orderColumns+` FROM orders WHERE order_number = $1 AND LOWER(customer_email) = LOWER($2)`,
		number, email)
	if err != nil {
		return nil, err
	}
	if err := r.loadItems(ctx, order); err != nil {
		return nil, err
	}
	return order, nil
}

func (r *OrderRepository) ListOrders(ctx context.Context, status, search string, page, limit int) ([]models.Order, int, error) {
	offset := (page - 1) * limit

	where := []string{}
	args := []interface{}{}
	if status != "" && status != "All" {
		args = append(args, status)
		where = append(where, fmt.Sprintf("status = $%d", len(args)))
	}
	if search != "" {
		args = append(args, "%"+search+"%")
		where = append(where, fmt.Sprintf("order_number ILIKE $%d", len(args)))
	}

	clause := ""
	if len(where) > 0 {
		clause = " WHERE " + strings.Join(where, " AND ")
	}

	var total int
	if err := config.DB.QueryRow(ctx, "SELECT COUNT(*) FROM orders"+clause, args...).Scan(&total); err != nil {
		return nil, 0, err
	}

	args = append(args, limit, offset)
	query := fmt.Sprintf("SELECT %s FROM orders%s ORDER BY created_at DESC LIMIT $%d OFFSET $%d",
		orderColumns, clause, len(args)-1, len(args))

	rows, err := config.DB.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	orders := []models.Order{}
	for rows.Next() {
		order, err := scanOrder(rows)
		if err != nil {
			return nil, 0, err
		}
		orders = append(orders, *order)
	}
	return orders, total, rows.Err()
}

// UpdateStatus applies one state-machine transition under a row lock.
// Moving into cancelled runs the compensating action: every line that
// reserved stock at creation puts it back, while the order record keeps
// its full item and price history.
func (r *OrderRepository) UpdateStatus(ctx context.Context, orderID int, target, note string) (*models.Order, error) {
	tx, err := config.DB.Begin(ctx)
	if err != nil {
		return nil, err
	}
	defer tx.Rollback(ctx)

	order, err := scanOrder(tx.QueryRow(ctx, `SELECT `+orderColumns+` FROM orders WHERE id = $1 FOR UPDATE`, orderID))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, utils.NotFoundError("Order %d not found", orderID)
	}
	if err != nil {
		return nil, err
	}

	if !models.CanTransitionOrder(order.Status, target) {
		if target == models.OrderStatusCancelled {
			return nil, utils.DomainError("Cannot cancel order with status: %s", order.Status)
		}
		return nil, utils.DomainError("Cannot change status of a %s order to %s", order.Status, target)
	}

	now := time.Now()
	sets := []string{"status = $1", "updated_at = $2"}
	args := []interface{}{target, now}

	switch target {
	case models.OrderStatusReady:
		order.ReadyAt = &now
		sets = append(sets, fmt.Sprintf("ready_at = $%d", len(args)+1))
		args = append(args, now)
	case models.OrderStatusCompleted:
		order.CompletedAt = &now
		sets = append(sets, fmt.Sprintf("completed_at = $%d", len(args)+1))
		args = append(args, now)
	case models.OrderStatusCancelled:
		order.CancelledAt = &now
		sets = append(sets, fmt.Sprintf("cancelled_at = $%d", len(args)+1))
		args = append(args, now)
	}
	if note != "" {
		order.Note = &note
		sets = append(sets, fmt.Sprintf("note = $%d", len(args)+1))
		args = append(args, note)
	}

	args = append(args, orderID)
	_, err = tx.Exec(ctx,
		fmt.Sprintf("UPDATE orders SET %s WHERE id = $%d", strings.Join(sets, ", "), len(args)), args...)
	if err != nil {
		return nil, err
	}

	if target == models.OrderStatusCancelled {
		if err := restoreStock(ctx, tx, orderID, now); err != nil {
			return nil, err
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, err
	}

	order.Status = target
	order.UpdatedAt = now
	if err := r.loadItems(ctx, order); err != nil {
		return nil, err
	}
	return order, nil
}

func restoreStock(ctx context.Context, tx pgx.Tx, orderID int, now time.Time) error {
	rows, err := tx.Query(ctx,
		`SELECT menu_item_id, quantity FROM order_items WHERE order_id = $1 AND stock_reserved = true`, orderID)
	if err != nil {
		return err
	}
	defer rows.Close()

	type restore struct{ itemID, quantity int }
	restores := []restore{}
	for rows.Next() {
		var r restore
		if err := rows.Scan(&r.itemID, &r.quantity); err != nil {
			return err
		}
		restores = append(restores, r)
	}
	if err := rows.Err(); err != nil {
		return err
	}

	for _, r := range restores {
		_, err := tx.Exec(ctx,
			`UPDATE menu_items SET stock = stock + $1, updated_at = $2 WHERE id = $3 AND stock IS NOT NULL`,
			r.quantity, now, r.itemID)
		if err != nil {
			return err
		}
	}
	return nil
}

func (r *OrderRepository) scanOne(ctx context.Context, query string, args ...interface{}) (*models.Order, error) {
	order, err := scanOrder(config.DB.QueryRow(ctx, query, args...))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, utils.NotFoundError("Order not found")
	}
	if err != nil {
		return nil, err
	}
	return order, nil
}

func (r *OrderRepository) loadItems(ctx context.Context, order *models.Order) error {
	rows, err := config.DB.Query(ctx,
		`SELECT id, order_id, menu_item_id, name, price, quantity, instructions, stock_reserved
		 FROM order_items WHERE order_id = $1 ORDER BY id`, order.ID)
	if err != nil {
		return err
	}
	defer rows.Close()

	order.Items = []models.OrderItem{}
	for rows.Next() {
		var item models.OrderItem
		if err := rows.Scan(&item.ID, &item.OrderID, &item.MenuItemID, &item.Name,
			&item.Price, &item.Quantity, &item.Instructions, &item.StockReserved); err != nil {
			return err
		}
		order.Items = append(order.Items, item)
	}
	return rows.Err()
}

func scanOrder(row pgx.Row) (*models.Order, error) {
	var order models.Order
	err := row.Scan(
		&order.ID, &order.OrderNumber, &order.CustomerName, &order.CustomerEmail, &order.CustomerPhone,
		&order.Type, &order.DeliveryAddress, &order.ItemsTotal, &order.DeliveryFee, &order.Total,
		&order.Status, &order.PaymentMethod, &order.CardLast4, &order.Note, &order.EstimatedReadyAt,
		&order.ReadyAt, &order.CompletedAt, &order.CancelledAt, &order.CreatedAt, &order.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &order, nil
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505"
}
