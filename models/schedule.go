package models

import (
	"sort"
	"time"
)

const slotLayout = "15:04"

// SlotAvailability is one row of the availability grid returned to the
// client for a given date and party size.
type SlotAvailability struct {
	Time              string `json:"time"`
	IsAvailable       bool   `json:"is_available"`
	AvailableTables   int    `json:"available_tables"`
	RemainingCapacity int    `json:"remaining_capacity"`
}

// GenerateTimeSlots emits a label every interval minutes from opening up
// to but not including closing. The returned sequence is the complete
// vocabulary of bookable times; anything else is rejected at booking.
func GenerateTimeSlots(opening, closing string, intervalMins int) []string {
	open, err := time.Parse(slotLayout, opening)
	if err != nil {
		return nil
	}
	close, err := time.Parse(slotLayout, closing)
	if err != nil {
		return nil
	}
	if intervalMins <= 0 || !open.Before(close) {
		return nil
	}

	slots := []string{}
	for t := open; t.Before(close); t = t.Add(time.Duration(intervalMins) * time.Minute) {
		slots = append(slots, t.Format(slotLayout))
	}
	return slots
}

// ComputeSlotAvailability answers whether a party of the requested size
// fits into one slot, given every reservation already on the books for
// that date. Capacity is checked on two axes: aggregate guests against
// the per-slot maximum, and discrete table fit, because a party can be
// feasible in aggregate yet have no single table large enough.
//
// Only pending and confirmed reservations hold capacity; cancelled and
// completed ones do not. The function is a pure query and never touches
// the ledger.
func ComputeSlotAvailability(tables []Table, maxGuestsPerSlot int, reservations []Reservation, slot string, guests int) SlotAvailability {
	booked := 0
	taken := map[int]bool{}
	for _, res := range reservations {
		if res.Time != slot || !IsActiveReservation(res.Status) {
			continue
		}
		booked += res.Guests
		if res.TableNumber != nil {
			taken[*res.TableNumber] = true
		}
	}

	remaining := maxGuestsPerSlot - booked
	if remaining < 0 {
		remaining = 0
	}

	available := 0
	for _, table := range tables {
		if table.Capacity >= guests && !taken[table.Number] {
			available++
		}
	}

	return SlotAvailability{
		Time:              slot,
		IsAvailable:       guests > 0 && remaining >= guests && available > 0,
		AvailableTables:   available,
		RemainingCapacity: remaining,
	}
}

// ChooseTable picks the table to assign at booking time: the smallest
// free table the party fits on, lowest number on ties, keeping larger
// tables free for larger parties. Returns false when nothing fits.
func ChooseTable(tables []Table, reservations []Reservation, slot string, guests int) (int, bool) {
	taken := map[int]bool{}
	for _, res := range reservations {
		if res.Time == slot && IsActiveReservation(res.Status) && res.TableNumber != nil {
			taken[*res.TableNumber] = true
		}
	}

	candidates := make([]Table, 0, len(tables))
	for _, table := range tables {
		if table.Capacity >= guests && !taken[table.Number] {
			candidates = append(candidates, table)
		}
	}
	if len(candidates) == 0 {
		return 0, false
	}

	sort.Slice(candidates, func(i, j int) bool {
		if candidates[i].Capacity != candidates[j].Capacity {
			return candidates[i].Capacity < candidates[j].Capacity
		}
		return candidates[i].Number < candidates[j].Number
	})
	return candidates[0].Number, true
}
