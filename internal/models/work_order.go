package models

import (
	"time"
)

type WorkOrder struct {
	ID                   uint        `json:"id" gorm:"primaryKey"`
	ClientID             uint        `json:"client_id" gorm:"not null;index"`
	Client               *Client     `json:"client,omitempty"`
	OrderDate            time.Time   `json:"order_date" gorm:"autoCreateTime"`
	ExpectedDeliveryDate time.Time   `json:"expected_delivery_date" gorm:"not null"`
	ActualDeliveryDate   *time.Time  `json:"actual_delivery_date"`
	Description          string      `json:"description" gorm:"size:1000"`
	Notes                string      `json:"notes" gorm:"size:1000"`
	Status               OrderStatus `json:"status" gorm:"size:50;not null;default:'Order Placed'"`
	AdvancePaid          float64     `json:"advance_paid" gorm:"not null;default:0"`
	TotalEstimate        float64     `json:"total_estimate" gorm:"not null;default:0"`
	ActualAmount         float64     `json:"actual_amount" gorm:"not null;default:0"`
	DueCleared           bool        `json:"due_cleared" gorm:"not null;default:false"`
	CreatedAt            time.Time   `json:"created_at"`
	UpdatedAt            time.Time   `json:"updated_at"`
}

// IsActive reports whether the order has not yet been delivered.
func (w *WorkOrder) IsActive() bool {
	return !IsDeliveredStatus(w.Status)
}

// IsOverdue reports whether the expected delivery date has passed while the
// order is still undelivered.
func (w *WorkOrder) IsOverdue() bool {
	return w.ExpectedDeliveryDate.Before(time.Now()) && w.IsActive()
}

// DueInOneDay reports whether the order is due within the next 24 hours.
// The window is closed on both ends: [now, now+24h].
func (w *WorkOrder) DueInOneDay() bool {
	now := time.Now()
	tomorrow := now.Add(24 * time.Hour)
	return !w.ExpectedDeliveryDate.Before(now) &&
		!w.ExpectedDeliveryDate.After(tomorrow) &&
		w.IsActive()
}

// RemainingAmount is the balance still owed. The actual amount takes
// precedence over the estimate once it is set; the result never goes
// negative.
func (w *WorkOrder) RemainingAmount() float64 {
	due := w.TotalEstimate
	if w.ActualAmount > 0 {
		due = w.ActualAmount
	}
	remaining := due - w.AdvancePaid
	if remaining < 0 {
		return 0
	}
	return remaining
}

// WorkOrderResponse is a work order plus its derived attributes, computed at
// read time and never persisted.
type WorkOrderResponse struct {
	WorkOrder
	IsOverdue       bool    `json:"is_overdue"`
	DueInOneDay     bool    `json:"due_in_one_day"`
	IsActive        bool    `json:"is_active"`
	RemainingAmount float64 `json:"remaining_amount"`
}

func (w WorkOrder) ToResponse() WorkOrderResponse {
	return WorkOrderResponse{
		WorkOrder:       w,
		IsOverdue:       w.IsOverdue(),
		DueInOneDay:     w.DueInOneDay(),
		IsActive:        w.IsActive(),
		RemainingAmount: w.RemainingAmount(),
	}
}

func ToResponses(orders []WorkOrder) []WorkOrderResponse {
	responses := make([]WorkOrderResponse, 0, len(orders))
	for _, order := range orders {
		responses = append(responses, order.ToResponse())
	}
	return responses
}

// WorkOrderFilter holds the optional predicates for filtered listings.
// All supplied filters are combined with AND; zero values impose no
// constraint.
type WorkOrderFilter struct {
	DeliveryDate        *time.Time
	DeliveryWindowStart *time.Time
	DeliveryWindowEnd   *time.Time
	OverdueOnly         bool
	Status              OrderStatus
	ClientID            uint
}

// DashboardStats holds the dashboard counters and sums produced by the
// aggregation queries.
type DashboardStats struct {
	TotalWorkOrders   int64   `json:"total_work_orders"`
	ActiveWorkOrders  int64   `json:"active_work_orders"`
	OverdueWorkOrders int64   `json:"overdue_work_orders"`
	OrdersDueInOneDay int64   `json:"orders_due_in_one_day"`
	CompletedOrders   int64   `json:"completed_orders"`
	TotalRevenue      float64 `json:"total_revenue"`
	PendingPayments   float64 `json:"pending_payments"`
}
