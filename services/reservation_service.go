package services

import (
	"context"
	"log"
	"strings"
	"time"

	"bistro-backend/config"
	"bistro-backend/models"
	"bistro-backend/repositories"
	"bistro-backend/utils"
)

type ReservationService struct {
	reservationRepo *repositories.ReservationRepository
	email           *models.EmailService
}

func NewReservationService() *ReservationService {
	email, err := models.NewEmailService()
	if err != nil {
		log.Println("Email notifications disabled:", err)
	}
	return &ReservationService{
		reservationRepo: repositories.NewReservationRepository(),
		email:           email,
	}
}

// Availability builds the full slot grid for a date. It is a read-only
// query over the day's ledger; calling it never changes what a later
// booking will see.
func (s *ReservationService) Availability(ctx context.Context, date string, guests int) (*models.AvailabilityResponse, error) {
	cfg := config.AppConfig

	fields := validateDate(date)
	if guests < 1 || guests > models.MaxPartySize {
		fields = append(fields, models.FieldError{
			Field:   "guests",
			Message: "must be between 1 and 12",
		})
	}
	if len(fields) > 0 {
		return nil, utils.ValidationError(fields...)
	}

	reservations, err := s.reservationRepo.ListByDate(ctx, date)
	if err != nil {
		return nil, err
	}

	slots := models.GenerateTimeSlots(cfg.OpeningTime, cfg.ClosingTime, cfg.SlotIntervalMins)
	grid := make([]models.SlotAvailability, 0, len(slots))
	for _, slot := range slots {
		grid = append(grid, models.ComputeSlotAvailability(cfg.Tables, cfg.MaxGuestsPerSlot, reservations, slot, guests))
	}

	return &models.AvailabilityResponse{
		Date:   date,
		Guests: guests,
		Slots:  grid,
	}, nil
}

// CreateReservation validates against the slot vocabulary, then lets the
// repository re-check capacity and insert atomically.
func (s *ReservationService) CreateReservation(ctx context.Context, req models.CreateReservationRequest) (*models.Reservation, error) {
	cfg := config.AppConfig

	fields := validateDate(req.Date)
	if !isBookableSlot(req.Time) {
		fields = append(fields, models.FieldError{
			Field:   "time",
			Message: "must be one of the bookable time slots",
		})
	}
	if len(fields) > 0 {
		return nil, utils.ValidationError(fields...)
	}

	res := &models.Reservation{
		Name:   req.Name,
		Email:  req.Email,
		Phone:  req.Phone,
		Date:   req.Date,
		Time:   req.Time,
		Guests: req.Guests,
	}
	if req.Note != "" {
		note := req.Note
		res.Note = &note
	}

	if err := s.reservationRepo.CreateReservation(ctx, res, cfg.Tables, cfg.MaxGuestsPerSlot); err != nil {
		return nil, err
	}

	go s.notifyReservation(res)

	return res, nil
}

func (s *ReservationService) TrackReservation(ctx context.Context, code string) (*models.Reservation, error) {
	return s.reservationRepo.GetByCode(ctx, code)
}

func (s *ReservationService) ListReservations(ctx context.Context, date, status string, page, limit int) ([]models.Reservation, int, error) {
	return s.reservationRepo.ListReservations(ctx, date, status, page, limit)
}

func (s *ReservationService) UpdateStatus(ctx context.Context, id int, req models.UpdateReservationStatusRequest) (*models.Reservation, error) {
	if !models.IsReservationStatus(req.Status) {
		return nil, utils.ValidationError(models.FieldError{
			Field:   "status",
			Message: "must be one of: pending, confirmed, cancelled, completed",
		})
	}
	return s.reservationRepo.UpdateStatus(ctx, id, req.Status)
}

// CancelReservation is the guest-facing path, addressed by code + email.
func (s *ReservationService) CancelReservation(ctx context.Context, req models.CancelReservationRequest) (*models.Reservation, error) {
	res, err := s.reservationRepo.GetByCode(ctx, req.Code)
	if err != nil {
		return nil, err
	}
	if !strings.EqualFold(res.Email, req.Email) {
		return nil, utils.NotFoundError("Reservation %s not found", req.Code)
	}
	return s.reservationRepo.UpdateStatus(ctx, res.ID, models.ReservationStatusCancelled)
}

func (s *ReservationService) notifyReservation(res *models.Reservation) {
	if s.email == nil {
		return
	}
	if err := s.email.SendReservationConfirmationEmail(res); err != nil {
		depErr := utils.DependencyError("reservation confirmation email failed", err)
		log.Printf("Warning: %s for %s: %v", depErr.Message, res.Code, err)
	}
}

func validateDate(date string) []models.FieldError {
	fields := []models.FieldError{}
	parsed, err := time.Parse(models.ReservationDateLayout, date)
	if err != nil {
		fields = append(fields, models.FieldError{
			Field:   "date",
			Message: "must be a valid date in YYYY-MM-DD format",
		})
		return fields
	}

	today, _ := time.Parse(models.ReservationDateLayout, time.Now().Format(models.ReservationDateLayout))
	if parsed.Before(today) {
		fields = append(fields, models.FieldError{
			Field:   "date",
			Message: "must not be in the past",
		})
	}
	return fields
}

func isBookableSlot(slot string) bool {
	cfg := config.AppConfig
	for _, s := range models.GenerateTimeSlots(cfg.OpeningTime, cfg.ClosingTime, cfg.SlotIntervalMins) {
		if s == slot {
			return true
		}
	}
	return false
}
