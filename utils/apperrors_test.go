package utils

import (
	"errors"
	"fmt"
	"testing"

	"bistro-backend/models"

	"github.com/go-playground/validator/v10"
)

func TestKindOf(t *testing.T) {
	cases := []struct {
		err  error
		want string
	}{
		{NotFoundError("Menu item %d not found", 7), KindNotFound},
		{DomainError("Insufficient stock for %s", "Margherita"), KindDomain},
		{ConflictError("Order number taken"), KindConflict},
		{ValidationError(models.FieldError{Field: "guests", Message: "must be between 1 and 12"}), KindValidation},
		{DependencyError("email failed", errors.New("dial tcp")), KindDependency},
		{errors.New("plain"), ""},
		{fmt.Errorf("wrapped: %w", DomainError("slot fully booked")), KindDomain},
	}
	for _, tc := range cases {
		if got := KindOf(tc.err); got != tc.want {
			t.Errorf("KindOf(%v) = %q, want %q", tc.err, got, tc.want)
		}
	}
}

func TestValidationErrorCarriesAllFields(t *testing.T) {
	err := ValidationError(
		models.FieldError{Field: "date", Message: "must not be in the past"},
		models.FieldError{Field: "time", Message: "must be one of the bookable time slots"},
	)

	fields := FieldsOf(err)
	if len(fields) != 2 {
		t.Fatalf("expected 2 field errors, got %d", len(fields))
	}
	if fields[0].Field != "date" || fields[1].Field != "time" {
		t.Errorf("unexpected fields: %+v", fields)
	}
}

func TestFromBindingErrorCollectsEveryFailure(t *testing.T) {
	v := validator.New()
	v.SetTagName("binding")

	req := models.CreateOrderRequest{
		CustomerEmail: "not-an-email",
		Type:          "teleport",
	}
	err := v.Struct(req)
	if err == nil {
		t.Fatal("expected validation to fail")
	}

	appErr := FromBindingError(err)
	if appErr.Kind != KindValidation {
		t.Fatalf("expected validation kind, got %q", appErr.Kind)
	}

	byField := map[string]string{}
	for _, fe := range appErr.Fields {
		byField[fe.Field] = fe.Message
	}
	for _, field := range []string{"customer_name", "customer_email", "customer_phone", "items", "type"} {
		if _, ok := byField[field]; !ok {
			t.Errorf("expected a field error for %q, got %v", field, byField)
		}
	}
	if byField["customer_email"] != "must be a valid email address" {
		t.Errorf("unexpected email message: %q", byField["customer_email"])
	}
}

func TestFromBindingErrorNonValidator(t *testing.T) {
	appErr := FromBindingError(errors.New("unexpected EOF"))
	if appErr.Kind != KindValidation {
		t.Fatalf("expected validation kind, got %q", appErr.Kind)
	}
	if len(appErr.Fields) != 1 || appErr.Fields[0].Field != "body" {
		t.Errorf("expected a single body field error, got %+v", appErr.Fields)
	}
}

func TestToSnake(t *testing.T) {
	cases := map[string]string{
		"CustomerName":      "customer_name",
		"Items[0].Quantity": "items[0].quantity",
		"Payment.CardLast4": "payment.card_last4",
		"DeliveryAddress":   "delivery_address",
	}
	for in, want := range cases {
		if got := toSnake(in); got != want {
			t.Errorf("toSnake(%q) = %q, want %q", in, got, want)
		}
	}
}
