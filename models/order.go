package models

import (
	"fmt"
	"time"
)

const (
	OrderStatusPending   = "pending"
	OrderStatusConfirmed = "confirmed"
	OrderStatusPreparing = "preparing"
	OrderStatusReady     = "ready"
	OrderStatusCompleted = "completed"
	OrderStatusCancelled = "cancelled"

	OrderTypePickup   = "pickup"
	OrderTypeDelivery = "delivery"

	MaxItemQuantity = 20
)

// Order is an append-only ledger record. Customer fields and items are a
// snapshot taken at creation; only the status (and its timestamps) ever
// changes afterwards.
type Order struct {
	ID               int         `json:"id"`
	OrderNumber      string      `json:"order_number"`
	CustomerName     string      `json:"customer_name"`
	CustomerEmail    string      `json:"customer_email"`
	CustomerPhone    string      `json:"customer_phone"`
	Type             string      `json:"type"`
	DeliveryAddress  *string     `json:"delivery_address,omitempty"`
	Items            []OrderItem `json:"items,omitempty"`
	ItemsTotal       int         `json:"items_total"`
	DeliveryFee      int         `json:"delivery_fee"`
	Total            int         `json:"total"`
	Status           string      `json:"status"`
	PaymentMethod    string      `json:"payment_method"`
	CardLast4        string      `json:"card_last4,omitempty"`
	Note             *string     `json:"note,omitempty"`
	EstimatedReadyAt time.Time   `json:"estimated_ready_at"`
	ReadyAt          *time.Time  `json:"ready_at,omitempty"`
	CompletedAt      *time.Time  `json:"completed_at,omitempty"`
	CancelledAt      *time.Time  `json:"cancelled_at,omitempty"`
	CreatedAt        time.Time   `json:"created_at"`
	UpdatedAt        time.Time   `json:"updated_at"`
}

type OrderItem struct {
	ID            int     `json:"id"`
	OrderID       int     `json:"order_id"`
	MenuItemID    int     `json:"menu_item_id"`
	Name          string  `json:"name"`
	Price         int     `json:"price"`
	Quantity      int     `json:"quantity"`
	Instructions  *string `json:"instructions,omitempty"`
	StockReserved bool    `json:"-"`
}

// orderTransitions is the full status graph. ready cannot be cancelled
// anymore (the kitchen already finished it), completed and cancelled are
// frozen.
var orderTransitions = map[string][]string{
	OrderStatusPending:   {OrderStatusConfirmed, OrderStatusCancelled},
	OrderStatusConfirmed: {OrderStatusPreparing, OrderStatusCancelled},
	OrderStatusPreparing: {OrderStatusReady, OrderStatusCancelled},
	OrderStatusReady:     {OrderStatusCompleted},
	OrderStatusCompleted: {},
	OrderStatusCancelled: {},
}

func IsOrderStatus(status string) bool {
	_, ok := orderTransitions[status]
	return ok
}

func CanTransitionOrder(from, to string) bool {
	for _, next := range orderTransitions[from] {
		if next == to {
			return true
		}
	}
	return false
}

// CanCancelOrder reports whether an order may still be cancelled, i.e. no
// stock-restoring compensation has become impossible or redundant.
func CanCancelOrder(status string) bool {
	return status == OrderStatusPending || status == OrderStatusConfirmed || status == OrderStatusPreparing
}

// ItemsTotalCents is the authoritative subtotal: sum of snapshotted line
// prices times quantities, in cents.
func ItemsTotalCents(items []OrderItem) int {
	total := 0
	for _, item := range items {
		total += item.Price * item.Quantity
	}
	return total
}

func FormatOrderNumber(n int64) string {
	return fmt.Sprintf("ORD%04d", n)
}
