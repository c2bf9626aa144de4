package models

import (
	"testing"
	"time"
)

func TestRemainingAmount(t *testing.T) {
	tests := []struct {
		name  string
		order WorkOrder
		want  float64
	}{
		{
			name:  "estimate minus advance when no actual amount",
			order: WorkOrder{AdvancePaid: 500, TotalEstimate: 1200, ActualAmount: 0},
			want:  700,
		},
		{
			name:  "actual amount takes precedence once nonzero",
			order: WorkOrder{AdvancePaid: 500, TotalEstimate: 1200, ActualAmount: 750},
			want:  250,
		},
		{
			name:  "never negative against estimate",
			order: WorkOrder{AdvancePaid: 1500, TotalEstimate: 1200},
			want:  0,
		},
		{
			name:  "never negative against actual",
			order: WorkOrder{AdvancePaid: 1000, TotalEstimate: 1200, ActualAmount: 800},
			want:  0,
		},
		{
			name:  "zero order owes nothing",
			order: WorkOrder{},
			want:  0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.order.RemainingAmount(); got != tt.want {
				t.Errorf("RemainingAmount() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestIsOverdue(t *testing.T) {
	past := time.Now().Add(-24 * time.Hour)
	future := time.Now().Add(24 * time.Hour)

	order := WorkOrder{ExpectedDeliveryDate: past, Status: StatusStarted}
	if !order.IsOverdue() {
		t.Error("started order past its delivery date should be overdue")
	}

	order.ExpectedDeliveryDate = future
	if order.IsOverdue() {
		t.Error("order with a future delivery date should not be overdue")
	}

	// Delivered orders are never overdue, regardless of dates.
	for _, s := range []OrderStatus{StatusDeliveredFullyPaid, StatusDeliveredPaymentPending} {
		order := WorkOrder{ExpectedDeliveryDate: past, Status: s}
		if order.IsOverdue() {
			t.Errorf("delivered order (%q) should not be overdue", s)
		}
		if order.IsActive() {
			t.Errorf("delivered order (%q) should not be active", s)
		}
	}
}

func TestDueInOneDay(t *testing.T) {
	within := time.Now().Add(12 * time.Hour)
	beyond := time.Now().Add(48 * time.Hour)
	past := time.Now().Add(-1 * time.Hour)

	order := WorkOrder{ExpectedDeliveryDate: within, Status: StatusOrderPlaced}
	if !order.DueInOneDay() {
		t.Error("order due in 12 hours should be flagged due in one day")
	}

	order.ExpectedDeliveryDate = beyond
	if order.DueInOneDay() {
		t.Error("order due in 48 hours should not be flagged")
	}

	order.ExpectedDeliveryDate = past
	if order.DueInOneDay() {
		t.Error("an already overdue order is not due-in-one-day")
	}

	order = WorkOrder{ExpectedDeliveryDate: within, Status: StatusDeliveredPaymentPending}
	if order.DueInOneDay() {
		t.Error("delivered order should not be flagged due in one day")
	}
}

func TestToResponseComputesDerivedFields(t *testing.T) {
	order := WorkOrder{
		ID:                   7,
		ExpectedDeliveryDate: time.Now().Add(-24 * time.Hour),
		Status:               StatusStarted,
		AdvancePaid:          500,
		TotalEstimate:        1200,
	}

	resp := order.ToResponse()
	if !resp.IsOverdue || !resp.IsActive || resp.DueInOneDay {
		t.Errorf("unexpected derived flags: %+v", resp)
	}
	if resp.RemainingAmount != 700 {
		t.Errorf("RemainingAmount = %v, want 700", resp.RemainingAmount)
	}
	if resp.ID != 7 {
		t.Errorf("embedded order lost its id: %d", resp.ID)
	}
}
