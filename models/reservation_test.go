package models

import "testing"

func TestReservationTransitions(t *testing.T) {
	allowed := []struct{ from, to string }{
		{ReservationStatusPending, ReservationStatusConfirmed},
		{ReservationStatusPending, ReservationStatusCancelled},
		{ReservationStatusPending, ReservationStatusCompleted},
		{ReservationStatusConfirmed, ReservationStatusCancelled},
		{ReservationStatusConfirmed, ReservationStatusCompleted},
	}
	for _, tc := range allowed {
		if !CanTransitionReservation(tc.from, tc.to) {
			t.Errorf("expected %s -> %s to be allowed", tc.from, tc.to)
		}
	}

	denied := []struct{ from, to string }{
		{ReservationStatusCancelled, ReservationStatusCancelled},
		{ReservationStatusCancelled, ReservationStatusPending},
		{ReservationStatusCompleted, ReservationStatusCancelled},
		{ReservationStatusCompleted, ReservationStatusConfirmed},
		{ReservationStatusConfirmed, ReservationStatusPending},
	}
	for _, tc := range denied {
		if CanTransitionReservation(tc.from, tc.to) {
			t.Errorf("expected %s -> %s to be denied", tc.from, tc.to)
		}
	}
}

func TestIsActiveReservation(t *testing.T) {
	if !IsActiveReservation(ReservationStatusPending) || !IsActiveReservation(ReservationStatusConfirmed) {
		t.Error("pending and confirmed reservations must hold capacity")
	}
	if IsActiveReservation(ReservationStatusCancelled) || IsActiveReservation(ReservationStatusCompleted) {
		t.Error("cancelled and completed reservations must not hold capacity")
	}
}

func TestIsReservationStatus(t *testing.T) {
	for _, status := range []string{
		ReservationStatusPending, ReservationStatusConfirmed,
		ReservationStatusCancelled, ReservationStatusCompleted,
	} {
		if !IsReservationStatus(status) {
			t.Errorf("expected %q to be a valid status", status)
		}
	}
	if IsReservationStatus("seated") || IsReservationStatus("") {
		t.Error("expected unknown statuses to be rejected")
	}
}
