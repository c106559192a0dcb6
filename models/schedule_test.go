package models

import "testing"

func eightTables() []Table {
	capacities := []int{2, 2, 4, 4, 6, 6, 8, 8}
	tables := make([]Table, len(capacities))
	for i, c := range capacities {
		tables[i] = Table{Number: i + 1, Capacity: c}
	}
	return tables
}

func TestGenerateTimeSlots(t *testing.T) {
	slots := GenerateTimeSlots("11:00", "22:00", 30)

	if len(slots) != 22 {
		t.Fatalf("expected 22 slots, got %d", len(slots))
	}
	if slots[0] != "11:00" {
		t.Errorf("expected first slot 11:00, got %s", slots[0])
	}
	if slots[1] != "11:30" {
		t.Errorf("expected second slot 11:30, got %s", slots[1])
	}
	if slots[len(slots)-1] != "21:30" {
		t.Errorf("expected last slot 21:30 (closing time excluded), got %s", slots[len(slots)-1])
	}
	for i := 1; i < len(slots); i++ {
		if slots[i] <= slots[i-1] {
			t.Errorf("slots not strictly ascending: %s then %s", slots[i-1], slots[i])
		}
	}
}

func TestGenerateTimeSlotsInvalidConfig(t *testing.T) {
	cases := []struct {
		name              string
		opening, closing  string
		interval          int
	}{
		{"bad opening", "eleven", "22:00", 30},
		{"bad closing", "11:00", "late", 30},
		{"zero interval", "11:00", "22:00", 0},
		{"closing before opening", "22:00", "11:00", 30},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if slots := GenerateTimeSlots(tc.opening, tc.closing, tc.interval); len(slots) != 0 {
				t.Fatalf("expected no slots, got %v", slots)
			}
		})
	}
}

func TestComputeSlotAvailabilityEmptyDay(t *testing.T) {
	avail := ComputeSlotAvailability(eightTables(), 20, nil, "18:00", 4)

	if !avail.IsAvailable {
		t.Error("expected slot to be available on an empty day")
	}
	// Tables fitting 4 guests: both 4s, both 6s, both 8s.
	if avail.AvailableTables != 6 {
		t.Errorf("expected 6 tables fitting 4 guests, got %d", avail.AvailableTables)
	}
	if avail.RemainingCapacity != 20 {
		t.Errorf("expected remaining capacity 20, got %d", avail.RemainingCapacity)
	}
}

func TestComputeSlotAvailabilityAfterBooking(t *testing.T) {
	table := 3
	existing := []Reservation{
		{Time: "18:00", Guests: 4, TableNumber: &table, Status: ReservationStatusConfirmed},
	}

	avail := ComputeSlotAvailability(eightTables(), 20, existing, "18:00", 4)
	if avail.RemainingCapacity != 16 {
		t.Errorf("expected remaining capacity 16, got %d", avail.RemainingCapacity)
	}
	// One of the two 4-tops is taken; the other 4-top, the 6s and the 8s remain.
	if avail.AvailableTables != 5 {
		t.Errorf("expected 5 available tables, got %d", avail.AvailableTables)
	}
	if !avail.IsAvailable {
		t.Error("expected slot to still be available")
	}

	// Other slots on the same date are unaffected.
	other := ComputeSlotAvailability(eightTables(), 20, existing, "19:00", 4)
	if other.RemainingCapacity != 20 || other.AvailableTables != 6 {
		t.Errorf("expected untouched slot to be empty, got %+v", other)
	}
}

func TestComputeSlotAvailabilityIgnoresInactive(t *testing.T) {
	table := 3
	existing := []Reservation{
		{Time: "18:00", Guests: 4, TableNumber: &table, Status: ReservationStatusCancelled},
		{Time: "18:00", Guests: 6, Status: ReservationStatusCompleted},
	}

	avail := ComputeSlotAvailability(eightTables(), 20, existing, "18:00", 4)
	if avail.RemainingCapacity != 20 {
		t.Errorf("cancelled/completed reservations must not hold capacity, got remaining %d", avail.RemainingCapacity)
	}
	if avail.AvailableTables != 6 {
		t.Errorf("cancelled reservation must not hold its table, got %d available", avail.AvailableTables)
	}
}

func TestComputeSlotAvailabilityNoTableFits(t *testing.T) {
	// 10 guests fit the aggregate capacity but no single table.
	avail := ComputeSlotAvailability(eightTables(), 20, nil, "18:00", 10)
	if avail.IsAvailable {
		t.Error("expected unavailable when no single table is large enough")
	}
	if avail.AvailableTables != 0 {
		t.Errorf("expected 0 available tables, got %d", avail.AvailableTables)
	}
}

func TestComputeSlotAvailabilityAggregateExhausted(t *testing.T) {
	existing := []Reservation{
		{Time: "18:00", Guests: 12, Status: ReservationStatusConfirmed},
		{Time: "18:00", Guests: 6, Status: ReservationStatusPending},
	}

	avail := ComputeSlotAvailability(eightTables(), 20, existing, "18:00", 4)
	if avail.IsAvailable {
		t.Error("expected unavailable when remaining aggregate capacity is below the party size")
	}
	if avail.RemainingCapacity != 2 {
		t.Errorf("expected remaining capacity 2, got %d", avail.RemainingCapacity)
	}
}

func TestComputeSlotAvailabilityNeverOffersSmallTables(t *testing.T) {
	for guests := 1; guests <= MaxPartySize; guests++ {
		avail := ComputeSlotAvailability(eightTables(), 100, nil, "18:00", guests)
		fitting := 0
		for _, table := range eightTables() {
			if table.Capacity >= guests {
				fitting++
			}
		}
		if avail.AvailableTables != fitting {
			t.Errorf("guests=%d: expected %d fitting tables, got %d", guests, fitting, avail.AvailableTables)
		}
	}
}

func TestChooseTableSmallestFit(t *testing.T) {
	number, ok := ChooseTable(eightTables(), nil, "18:00", 4)
	if !ok {
		t.Fatal("expected a table")
	}
	if number != 3 {
		t.Errorf("expected smallest fitting table 3, got %d", number)
	}

	// With both 4-tops taken, a 4-guest party moves up to the first 6-top.
	t3, t4 := 3, 4
	existing := []Reservation{
		{Time: "18:00", Guests: 4, TableNumber: &t3, Status: ReservationStatusPending},
		{Time: "18:00", Guests: 4, TableNumber: &t4, Status: ReservationStatusConfirmed},
	}
	number, ok = ChooseTable(eightTables(), existing, "18:00", 4)
	if !ok || number != 5 {
		t.Errorf("expected table 5, got %d (ok=%v)", number, ok)
	}
}

func TestChooseTableNothingFits(t *testing.T) {
	if _, ok := ChooseTable(eightTables(), nil, "18:00", 9); ok {
		t.Error("expected no table for a party of 9")
	}
}
