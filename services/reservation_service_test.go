package services

import (
	"context"
	"testing"
	"time"

	"bistro-backend/config"
	"bistro-backend/models"
	"bistro-backend/utils"
)

func futureDate() string {
	return time.Now().AddDate(0, 0, 7).Format(models.ReservationDateLayout)
}

func TestAvailabilityRejectsBadInput(t *testing.T) {
	config.AppConfig = testConfig()
	svc := NewReservationService()

	_, err := svc.Availability(context.Background(), "not-a-date", 0)
	if utils.KindOf(err) != utils.KindValidation {
		t.Fatalf("expected validation error, got %v", err)
	}
	fields := utils.FieldsOf(err)
	if len(fields) != 2 {
		t.Errorf("expected date and guests errors together, got %+v", fields)
	}
}

func TestAvailabilityRejectsOversizedParty(t *testing.T) {
	config.AppConfig = testConfig()
	svc := NewReservationService()

	_, err := svc.Availability(context.Background(), futureDate(), models.MaxPartySize+1)
	if utils.KindOf(err) != utils.KindValidation {
		t.Fatalf("expected validation error, got %v", err)
	}
}

func TestCreateReservationRejectsPastDate(t *testing.T) {
	config.AppConfig = testConfig()
	svc := NewReservationService()

	_, err := svc.CreateReservation(context.Background(), models.CreateReservationRequest{
		Name:   "Dana Webb",
		Email:  "dana@example.com",
		Phone:  "555-0134",
		Date:   "2020-01-01",
		Time:   "18:00",
		Guests: 4,
	})
	if utils.KindOf(err) != utils.KindValidation {
		t.Fatalf("expected validation error, got %v", err)
	}
}

func TestCreateReservationRejectsUnknownSlot(t *testing.T) {
	config.AppConfig = testConfig()
	svc := NewReservationService()

	// 18:10 is not on the half-hour grid generated from the config.
	_, err := svc.CreateReservation(context.Background(), models.CreateReservationRequest{
		Name:   "Dana Webb",
		Email:  "dana@example.com",
		Phone:  "555-0134",
		Date:   futureDate(),
		Time:   "18:10",
		Guests: 4,
	})
	if utils.KindOf(err) != utils.KindValidation {
		t.Fatalf("expected validation error, got %v", err)
	}
	fields := utils.FieldsOf(err)
	if len(fields) != 1 || fields[0].Field != "time" {
		t.Errorf("expected a time field error, got %+v", fields)
	}
}

func TestUpdateReservationStatusRejectsUnknownStatus(t *testing.T) {
	config.AppConfig = testConfig()
	svc := NewReservationService()

	_, err := svc.UpdateStatus(context.Background(), 1, models.UpdateReservationStatusRequest{Status: "seated"})
	if utils.KindOf(err) != utils.KindValidation {
		t.Fatalf("expected validation error, got %v", err)
	}
}
