package models

import (
	"time"
)

type Client struct {
	ID           uint      `json:"id" gorm:"primaryKey"`
	Name         string    `json:"name" gorm:"size:100;not null"`
	MobileNumber string    `json:"mobile_number" gorm:"size:10;uniqueIndex;not null"`
	Email        string    `json:"email" gorm:"size:100"`
	Address      string    `json:"address" gorm:"size:500"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`

	WorkOrders []WorkOrder `json:"-" gorm:"constraint:OnDelete:CASCADE"`
}

// ClientSummary bundles a client with its work orders and the per-client
// aggregate breakdown.
type ClientSummary struct {
	Client          Client              `json:"client"`
	WorkOrders      []WorkOrderResponse `json:"work_orders"`
	TotalOrders     int                 `json:"total_orders"`
	ActiveOrders    int                 `json:"active_orders"`
	CompletedOrders int                 `json:"completed_orders"`
	TotalAmountDue  float64             `json:"total_amount_due"`
}

// ClientSearchResult is one row of the client search response, including
// order counts for display.
type ClientSearchResult struct {
	ClientID     uint   `json:"client_id"`
	Name         string `json:"name"`
	MobileNumber string `json:"mobile_number"`
	Email        string `json:"email"`
	Address      string `json:"address"`
	TotalOrders  int64  `json:"total_orders"`
	ActiveOrders int64  `json:"active_orders"`
}
