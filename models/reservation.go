package models

import "time"

const (
	ReservationStatusPending   = "pending"
	ReservationStatusConfirmed = "confirmed"
	ReservationStatusCancelled = "cancelled"
	ReservationStatusCompleted = "completed"

	MaxPartySize = 12

	ReservationDateLayout = "2006-01-02"
)

// Table is one entry of the fixed seating inventory. The inventory comes
// from configuration and is read-only at runtime.
type Table struct {
	Number   int `json:"number"`
	Capacity int `json:"capacity"`
}

type Reservation struct {
	ID          int        `json:"id"`
	Code        string     `json:"reservation_code"`
	Name        string     `json:"name"`
	Email       string     `json:"email"`
	Phone       string     `json:"phone"`
	Date        string     `json:"date"`
	Time        string     `json:"time"`
	Guests      int        `json:"guests"`
	TableNumber *int       `json:"table_number,omitempty"`
	Note        *string    `json:"note,omitempty"`
	Status      string     `json:"status"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
}

var reservationTransitions = map[string][]string{
	ReservationStatusPending:   {ReservationStatusConfirmed, ReservationStatusCompleted, ReservationStatusCancelled},
	ReservationStatusConfirmed: {ReservationStatusCompleted, ReservationStatusCancelled},
	ReservationStatusCompleted: {},
	ReservationStatusCancelled: {},
}

func IsReservationStatus(status string) bool {
	_, ok := reservationTransitions[status]
	return ok
}

func CanTransitionReservation(from, to string) bool {
	for _, next := range reservationTransitions[from] {
		if next == to {
			return true
		}
	}
	return false
}

// IsActiveReservation reports whether a reservation still holds capacity
// against its slot.
func IsActiveReservation(status string) bool {
	return status == ReservationStatusPending || status == ReservationStatusConfirmed
}
