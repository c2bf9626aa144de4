package models

import (
	"reflect"
	"testing"
)

func TestNextOptions(t *testing.T) {
	tests := []struct {
		current OrderStatus
		want    []OrderStatus
	}{
		{StatusOrderPlaced, []OrderStatus{StatusStarted}},
		{StatusStarted, []OrderStatus{StatusFinished}},
		{StatusFinished, []OrderStatus{StatusDeliveredFullyPaid, StatusDeliveredPaymentPending}},
		{StatusDeliveredPaymentPending, []OrderStatus{StatusDeliveredFullyPaid}},
		{StatusDeliveredFullyPaid, []OrderStatus{}},
		{OrderStatus("Cancelled"), []OrderStatus{}},
	}

	for _, tt := range tests {
		got := NextOptions(tt.current)
		if len(got) == 0 && len(tt.want) == 0 {
			continue
		}
		if !reflect.DeepEqual(got, tt.want) {
			t.Errorf("NextOptions(%q) = %v, want %v", tt.current, got, tt.want)
		}
	}
}

func TestIsValidStatus(t *testing.T) {
	for _, s := range AllStatuses() {
		if !IsValidStatus(s) {
			t.Errorf("IsValidStatus(%q) = false, want true", s)
		}
	}
	for _, s := range []OrderStatus{"", "Pending", "delivered - fully paid"} {
		if IsValidStatus(s) {
			t.Errorf("IsValidStatus(%q) = true, want false", s)
		}
	}
}

func TestIsFinalStatus(t *testing.T) {
	if !IsFinalStatus(StatusDeliveredFullyPaid) {
		t.Error("Delivered - Fully Paid should be final")
	}
	if IsFinalStatus(StatusDeliveredPaymentPending) {
		t.Error("Delivered – Payment Pending should not be final, it can still become fully paid")
	}
}

func TestIsDeliveredStatus(t *testing.T) {
	delivered := map[OrderStatus]bool{
		StatusOrderPlaced:             false,
		StatusStarted:                 false,
		StatusFinished:                false,
		StatusDeliveredFullyPaid:      true,
		StatusDeliveredPaymentPending: true,
	}
	for s, want := range delivered {
		if got := IsDeliveredStatus(s); got != want {
			t.Errorf("IsDeliveredStatus(%q) = %v, want %v", s, got, want)
		}
	}
}

func TestStatusOptionsWorkflowOrder(t *testing.T) {
	options := StatusOptions()
	if len(options) != 5 {
		t.Fatalf("expected 5 status options, got %d", len(options))
	}
	if options[0].Value != string(StatusOrderPlaced) || options[0].Order != 1 {
		t.Errorf("first option should be Order Placed at position 1, got %+v", options[0])
	}
	// Both delivered sub-states share the final workflow position.
	if options[3].Order != 4 || options[4].Order != 4 {
		t.Errorf("delivered options should both be at position 4, got %d and %d", options[3].Order, options[4].Order)
	}
}

func TestNextStatusOptionsMetadata(t *testing.T) {
	options := NextStatusOptions(StatusFinished)
	if len(options) != 2 {
		t.Fatalf("expected 2 next options after Finished, got %d", len(options))
	}
	for _, opt := range options {
		if opt.Description == "" {
			t.Errorf("option %q has no description", opt.Value)
		}
	}

	if got := NextStatusOptions(StatusDeliveredFullyPaid); len(got) != 0 {
		t.Errorf("terminal status should have no next options, got %v", got)
	}
}
