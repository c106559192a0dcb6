package models

import "testing"

func TestItemsTotalCents(t *testing.T) {
	items := []OrderItem{
		{Name: "Margherita", Price: 1000, Quantity: 1},
		{Name: "Garlic Bread", Price: 500, Quantity: 2},
	}

	if got := ItemsTotalCents(items); got != 2000 {
		t.Errorf("expected items total 2000, got %d", got)
	}
	if got := ItemsTotalCents(nil); got != 0 {
		t.Errorf("expected empty total 0, got %d", got)
	}
}

func TestFormatOrderNumber(t *testing.T) {
	cases := []struct {
		seq  int64
		want string
	}{
		{1, "ORD0001"},
		{2, "ORD0002"},
		{42, "ORD0042"},
		{9999, "ORD9999"},
		{10000, "ORD10000"},
	}
	for _, tc := range cases {
		if got := FormatOrderNumber(tc.seq); got != tc.want {
			t.Errorf("FormatOrderNumber(%d) = %s, want %s", tc.seq, got, tc.want)
		}
	}
}

func TestOrderTransitions(t *testing.T) {
	allowed := []struct{ from, to string }{
		{OrderStatusPending, OrderStatusConfirmed},
		{OrderStatusConfirmed, OrderStatusPreparing},
		{OrderStatusPreparing, OrderStatusReady},
		{OrderStatusReady, OrderStatusCompleted},
		{OrderStatusPending, OrderStatusCancelled},
		{OrderStatusConfirmed, OrderStatusCancelled},
		{OrderStatusPreparing, OrderStatusCancelled},
	}
	for _, tc := range allowed {
		if !CanTransitionOrder(tc.from, tc.to) {
			t.Errorf("expected %s -> %s to be allowed", tc.from, tc.to)
		}
	}

	denied := []struct{ from, to string }{
		{OrderStatusReady, OrderStatusCancelled},
		{OrderStatusCompleted, OrderStatusPending},
		{OrderStatusCompleted, OrderStatusCancelled},
		{OrderStatusCancelled, OrderStatusPending},
		{OrderStatusCancelled, OrderStatusCancelled},
		{OrderStatusPending, OrderStatusReady},
		{OrderStatusConfirmed, OrderStatusCompleted},
		{OrderStatusReady, OrderStatusPreparing},
	}
	for _, tc := range denied {
		if CanTransitionOrder(tc.from, tc.to) {
			t.Errorf("expected %s -> %s to be denied", tc.from, tc.to)
		}
	}
}

func TestCanCancelOrder(t *testing.T) {
	for _, status := range []string{OrderStatusPending, OrderStatusConfirmed, OrderStatusPreparing} {
		if !CanCancelOrder(status) {
			t.Errorf("expected %s to be cancellable", status)
		}
	}
	for _, status := range []string{OrderStatusReady, OrderStatusCompleted, OrderStatusCancelled} {
		if CanCancelOrder(status) {
			t.Errorf("expected %s not to be cancellable", status)
		}
	}
}

func TestIsOrderStatus(t *testing.T) {
	for _, status := range []string{
		OrderStatusPending, OrderStatusConfirmed, OrderStatusPreparing,
		OrderStatusReady, OrderStatusCompleted, OrderStatusCancelled,
	} {
		if !IsOrderStatus(status) {
			t.Errorf("expected %q to be a valid status", status)
		}
	}
	for _, status := range []string{"", "Pending", "shipped", "done"} {
		if IsOrderStatus(status) {
			t.Errorf("expected %q to be rejected", status)
		}
	}
}
