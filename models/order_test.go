package models

import "testing"

func TestValidStatus(t *testing.T) {
	valid := []OrderStatus{
		StatusPending, StatusPaid, StatusPreparing,
		StatusDelivered, StatusCompleted, StatusCancelled,
	}
	for _, s := range valid {
		if !ValidStatus(s) {
			t.Errorf("ValidStatus(%q) = false, want true", s)
		}
	}
	for _, s := range []OrderStatus{"", "shipped", "PAID", "Pending"} {
		if ValidStatus(s) {
			t.Errorf("ValidStatus(%q) = true, want false", s)
		}
	}
}
