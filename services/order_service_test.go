package services

import (
	"context"
	"testing"
	"time"

	"bistro-backend/config"
	"bistro-backend/models"
	"bistro-backend/utils"
)

func testConfig() *config.Config {
	return &config.Config{
		DeliveryFeeCents:    499,
		MinOrderCents:       1000,
		PickupLeadMinutes:   20,
		DeliveryLeadMinutes: 45,
		OpeningTime:         "11:00",
		ClosingTime:         "22:00",
		SlotIntervalMins:    30,
		MaxGuestsPerSlot:    20,
		Tables: []models.Table{
			{Number: 1, Capacity: 2}, {Number: 2, Capacity: 2},
			{Number: 3, Capacity: 4}, {Number: 4, Capacity: 4},
			{Number: 5, Capacity: 6}, {Number: 6, Capacity: 6},
			{Number: 7, Capacity: 8}, {Number: 8, Capacity: 8},
		},
	}
}

func validOrderRequest() models.CreateOrderRequest {
	return models.CreateOrderRequest{
		CustomerName:  "Dana Webb",
		CustomerEmail: "dana@example.com",
		CustomerPhone: "555-0134",
		Items:         []models.OrderItemRequest{{MenuItemID: 1, Quantity: 2}},
		Type:          models.OrderTypePickup,
		Payment:       models.PaymentRequest{Method: "cash"},
	}
}

func TestPlaceOrderDeliveryRequiresAddress(t *testing.T) {
	config.AppConfig = testConfig()
	svc := NewOrderService()

	req := validOrderRequest()
	req.Type = models.OrderTypeDelivery

	_, err := svc.PlaceOrder(context.Background(), req)
	if utils.KindOf(err) != utils.KindValidation {
		t.Fatalf("expected validation error, got %v", err)
	}

	fields := utils.FieldsOf(err)
	if len(fields) != 1 || fields[0].Field != "delivery_address" {
		t.Errorf("expected a delivery_address field error, got %+v", fields)
	}
}

func TestPlaceOrderAggregatesFieldErrors(t *testing.T) {
	config.AppConfig = testConfig()
	svc := NewOrderService()

	req := validOrderRequest()
	req.Type = models.OrderTypeDelivery
	req.Payment = models.PaymentRequest{Method: "card"}

	_, err := svc.PlaceOrder(context.Background(), req)
	fields := utils.FieldsOf(err)
	if len(fields) != 2 {
		t.Fatalf("expected both field errors reported together, got %+v", fields)
	}
}

func TestPlaceOrderRejectsExpiredCard(t *testing.T) {
	config.AppConfig = testConfig()
	svc := NewOrderService()

	req := validOrderRequest()
	req.Payment = models.PaymentRequest{
		Method:      "card",
		CardLast4:   "4242",
		ExpiryMonth: 1,
		ExpiryYear:  time.Now().Year() - 1,
	}

	_, err := svc.PlaceOrder(context.Background(), req)
	if utils.KindOf(err) != utils.KindDomain {
		t.Fatalf("expected domain error for expired card, got %v", err)
	}
}

func TestUpdateStatusRejectsUnknownStatus(t *testing.T) {
	config.AppConfig = testConfig()
	svc := NewOrderService()

	_, err := svc.UpdateStatus(context.Background(), 1, models.UpdateOrderStatusRequest{Status: "shipped"})
	if utils.KindOf(err) != utils.KindValidation {
		t.Fatalf("expected validation error, got %v", err)
	}
}
