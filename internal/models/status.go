package models

type OrderStatus string

const (
	StatusOrderPlaced             OrderStatus = "Order Placed"
	StatusStarted                 OrderStatus = "Started"
	StatusFinished                OrderStatus = "Finished"
	StatusDeliveredFullyPaid      OrderStatus = "Delivered - Fully Paid"
	StatusDeliveredPaymentPending OrderStatus = "Delivered – Payment Pending"
)

// AllStatuses returns the five statuses in workflow order.
func AllStatuses() []OrderStatus {
	return []OrderStatus{
		StatusOrderPlaced,
		StatusStarted,
		StatusFinished,
		StatusDeliveredFullyPaid,
		StatusDeliveredPaymentPending,
	}
}

// statusTransitions is the fixed workflow graph. The one back-edge lets a
// delivered order be marked fully paid once the balance is settled.
var statusTransitions = map[OrderStatus][]OrderStatus{
	StatusOrderPlaced:             {StatusStarted},
	StatusStarted:                 {StatusFinished},
	StatusFinished:                {StatusDeliveredFullyPaid, StatusDeliveredPaymentPending},
	StatusDeliveredPaymentPending: {StatusDeliveredFullyPaid},
	StatusDeliveredFullyPaid:      {},
}

// NextOptions returns the valid successor statuses for the given status.
// It is a pure lookup: unknown and terminal statuses both yield an empty
// list. Transitions are advisory and are not enforced on update.
func NextOptions(current OrderStatus) []OrderStatus {
	next, ok := statusTransitions[current]
	if !ok {
		return []OrderStatus{}
	}
	return next
}

// IsValidStatus reports whether s is one of the five workflow statuses.
func IsValidStatus(s OrderStatus) bool {
	_, ok := statusTransitions[s]
	return ok
}

// IsFinalStatus reports whether s has no outgoing transitions.
func IsFinalStatus(s OrderStatus) bool {
	return s == StatusDeliveredFullyPaid
}

// IsDeliveredStatus reports whether s marks an order as delivered (and
// therefore inactive), in either payment state.
func IsDeliveredStatus(s OrderStatus) bool {
	return s == StatusDeliveredFullyPaid || s == StatusDeliveredPaymentPending
}

// StatusOption describes one status for frontend dropdowns.
type StatusOption struct {
	Value       string `json:"value"`
	Label       string `json:"label"`
	Order       int    `json:"order"`
	Description string `json:"description"`
}

var statusDescriptions = map[OrderStatus]string{
	StatusOrderPlaced:             "Initial status when order is first created",
	StatusStarted:                 "Work has begun on the order",
	StatusFinished:                "Work is completed, ready for delivery",
	StatusDeliveredFullyPaid:      "Order delivered and payment completed",
	StatusDeliveredPaymentPending: "Order delivered but payment still pending",
}

var statusWorkflowOrder = map[OrderStatus]int{
	StatusOrderPlaced:             1,
	StatusStarted:                 2,
	StatusFinished:                3,
	StatusDeliveredFullyPaid:      4,
	StatusDeliveredPaymentPending: 4,
}

// StatusOptions returns all statuses with dropdown metadata, in workflow order.
func StatusOptions() []StatusOption {
	options := make([]StatusOption, 0, len(statusDescriptions))
	for _, s := range AllStatuses() {
		options = append(options, StatusOption{
			Value:       string(s),
			Label:       string(s),
			Order:       statusWorkflowOrder[s],
			Description: statusDescriptions[s],
		})
	}
	return options
}

// NextStatusOptions returns the successor statuses of current with dropdown
// metadata.
func NextStatusOptions(current OrderStatus) []StatusOption {
	next := NextOptions(current)
	options := make([]StatusOption, 0, len(next))
	for _, s := range next {
		options = append(options, StatusOption{
			Value:       string(s),
			Label:       string(s),
			Order:       statusWorkflowOrder[s],
			Description: statusDescriptions[s],
		})
	}
	return options
}
