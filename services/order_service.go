package services

import (
	"context"
	"log"
	"time"

	"bistro-backend/config"
	"bistro-backend/models"
	"bistro-backend/repositories"
	"bistro-backend/utils"
)

const maxPlaceAttempts = 3

type OrderService struct {
	orderRepo *repositories.OrderRepository
	email     *models.EmailService
}

func NewOrderService() *OrderService {
	email, err := models.NewEmailService()
	if err != nil {
		log.Println("Email notifications disabled:", err)
	}
	return &OrderService{
		orderRepo: repositories.NewOrderRepository(),
		email:     email,
	}
}

// PlaceOrder validates the request, prices it and writes the order in a
// single transaction. The whole create either succeeds or leaves nothing
// behind; the confirmation email is fired afterwards and can never fail
// the order.
func (s *OrderService) PlaceOrder(ctx context.Context, req models.CreateOrderRequest) (*models.Order, error) {
	cfg := config.AppConfig

	fields := []models.FieldError{}
	if req.Type == models.OrderTypeDelivery && req.DeliveryAddress == "" {
		fields = append(fields, models.FieldError{
			Field:   "delivery_address",
			Message: "is required for delivery orders",
		})
	}
	if req.Payment.Method == "card" && req.Payment.CardLast4 == "" {
		fields = append(fields, models.FieldError{
			Field:   "payment.card_last4",
			Message: "is required for card payments",
		})
	}
	if len(fields) > 0 {
		return nil, utils.ValidationError(fields...)
	}

	if req.Payment.ExpiryYear != 0 && req.Payment.ExpiryMonth != 0 {
		now := time.Now()
		if req.Payment.ExpiryYear < now.Year() ||
			(req.Payment.ExpiryYear == now.Year() && req.Payment.ExpiryMonth < int(now.Month())) {
			return nil, utils.DomainError("Payment card expired %02d/%d", req.Payment.ExpiryMonth, req.Payment.ExpiryYear)
		}
	}

	order := &models.Order{
		CustomerName:  req.CustomerName,
		CustomerEmail: req.CustomerEmail,
		CustomerPhone: req.CustomerPhone,
		Type:          req.Type,
		PaymentMethod: req.Payment.Method,
		CardLast4:     req.Payment.CardLast4,
	}

	leadMinutes := cfg.PickupLeadMinutes
	if req.Type == models.OrderTypeDelivery {
		leadMinutes = cfg.DeliveryLeadMinutes
		order.DeliveryFee = cfg.DeliveryFeeCents
		address := req.DeliveryAddress
		order.DeliveryAddress = &address
	}
	order.EstimatedReadyAt = time.Now().Add(time.Duration(leadMinutes) * time.Minute)

	// Order-number collisions are retried here rather than surfaced; the
	// request itself is fine, only the identifier was contended.
	var err error
	for attempt := 0; attempt < maxPlaceAttempts; attempt++ {
		err = s.orderRepo.PlaceOrder(ctx, order, req.Items, cfg.MinOrderCents)
		if err == nil {
			break
		}
		if utils.KindOf(err) != utils.KindConflict {
			return nil, err
		}
	}
	if err != nil {
		return nil, err
	}

	go s.notifyOrder(order)

	return order, nil
}

func (s *OrderService) GetOrderByID(ctx context.Context, id int) (*models.Order, error) {
	return s.orderRepo.GetOrderByID(ctx, id)
}

func (s *OrderService) TrackOrder(ctx context.Context, number, email string) (*models.Order, error) {
	return s.orderRepo.GetOrderByNumberAndEmail(ctx, number, email)
}

func (s *OrderService) ListOrders(ctx context.Context, status, search string, page, limit int) ([]models.Order, int, error) {
	return s.orderRepo.ListOrders(ctx, status, search, page, limit)
}

func (s *OrderService) UpdateStatus(ctx context.Context, id int, req models.UpdateOrderStatusRequest) (*models.Order, error) {
	if !models.IsOrderStatus(req.Status) {
		return nil, utils.ValidationError(models.FieldError{
			Field:   "status",
			Message: "must be one of: pending, confirmed, preparing, ready, completed, cancelled",
		})
	}
	return s.orderRepo.UpdateStatus(ctx, id, req.Status, req.Note)
}

// CancelOrder is the customer-facing cancellation path, addressed by
// order number and email instead of the internal id. Stock restoration
// happens inside the same transition transaction.
func (s *OrderService) CancelOrder(ctx context.Context, req models.CancelOrderRequest) (*models.Order, error) {
	order, err := s.orderRepo.GetOrderByNumberAndEmail(ctx, req.OrderNumber, req.Email)
	if err != nil {
		return nil, err
	}
	return s.orderRepo.UpdateStatus(ctx, order.ID, models.OrderStatusCancelled, "")
}

func (s *OrderService) notifyOrder(order *models.Order) {
	if s.email == nil {
		return
	}
	if err := s.email.SendOrderConfirmationEmail(order); err != nil {
		depErr := utils.DependencyError("order confirmation email failed", err)
		log.Printf("Warning: %s for %s: %v", depErr.Message, order.OrderNumber, err)
	}
}
