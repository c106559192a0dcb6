package models

type OrderItemRequest struct {
	MenuItemID   int    `json:"menu_item_id" binding:"required,gt=0"`
	Quantity     int    `json:"quantity" binding:"required,min=1,max=20"`
	Instructions string `json:"instructions" binding:"omitempty,max=255"`
}

type PaymentRequest struct {
	Method      string `json:"method" binding:"required,oneof=card cash"`
	CardLast4   string `json:"card_last4" binding:"omitempty,len=4,numeric"`
	ExpiryMonth int    `json:"expiry_month" binding:"omitempty,min=1,max=12"`
	ExpiryYear  int    `json:"expiry_year" binding:"omitempty,min=2000"`
}

type CreateOrderRequest struct {
	CustomerName    string             `json:"customer_name" binding:"required,min=2,max=100"`
	CustomerEmail   string             `json:"customer_email" binding:"required,email"`
	CustomerPhone   string             `json:"customer_phone" binding:"required,min=5,max=30"`
	Items           []OrderItemRequest `json:"items" binding:"required,min=1,max=20,dive"`
	Type            string             `json:"type" binding:"required,oneof=pickup delivery"`
	DeliveryAddress string             `json:"delivery_address" binding:"omitempty,max=255"`
	Payment         PaymentRequest     `json:"payment" binding:"required"`
}

type CancelOrderRequest struct {
	OrderNumber string `json:"order_number" binding:"required"`
	Email       string `json:"email" binding:"required,email"`
}

type UpdateOrderStatusRequest struct {
	Status string `json:"status" binding:"required"`
	Note   string `json:"note" binding:"omitempty,max=255"`
}

type CreateReservationRequest struct {
	Name   string `json:"name" binding:"required,min=2,max=100"`
	Email  string `json:"email" binding:"required,email"`
	Phone  string `json:"phone" binding:"required,min=5,max=30"`
	Date   string `json:"date" binding:"required"`
	Time   string `json:"time" binding:"required"`
	Guests int    `json:"guests" binding:"required,min=1,max=12"`
	Note   string `json:"note" binding:"omitempty,max=255"`
}

type CancelReservationRequest struct {
	Code  string `json:"reservation_code" binding:"required"`
	Email string `json:"email" binding:"required,email"`
}

type UpdateReservationStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

type CreateMenuItemRequest struct {
	Name        string `json:"name" binding:"required,max=100"`
	Description string `json:"description" binding:"omitempty,max=500"`
	Category    string `json:"category" binding:"required,max=50"`
	Price       int    `json:"price" binding:"required,gt=0"`
	Stock       *int   `json:"stock" binding:"omitempty,min=0"`
	IsAvailable *bool  `json:"is_available"`
}

type UpdateMenuItemRequest struct {
	Name        string `json:"name" binding:"omitempty,max=100"`
	Description string `json:"description" binding:"omitempty,max=500"`
	Category    string `json:"category" binding:"omitempty,max=50"`
	Price       int    `json:"price" binding:"omitempty,gt=0"`
	Stock       *int   `json:"stock" binding:"omitempty,min=0"`
	IsAvailable *bool  `json:"is_available"`
}

type AvailabilityResponse struct {
	Date   string             `json:"date"`
	Guests int                `json:"guests"`
	Slots  []SlotAvailability `json:"slots"`
}
