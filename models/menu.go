package models

import "time"

// MenuItem is the catalog entry orders are priced from. Stock is nil for
// items that do not track inventory (made to order); those never fail a
// stock check and never get decremented.
type MenuItem struct {
	ID          int       `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Category    string    `json:"category"`
	Price       int       `json:"price"`
	Stock       *int      `json:"stock,omitempty"`
	IsAvailable bool      `json:"is_available"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}
