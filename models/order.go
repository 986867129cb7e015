package models

import "time"

// Order statuses. An order moves forward through pending, preparing,
// ready and completed; cancelled is reachable from any non-terminal
// status. completed and cancelled are terminal.
const (
	StatusPending   = "pending"
	StatusPreparing = "preparing"
	StatusReady     = "ready"
	StatusCompleted = "completed"
	StatusCancelled = "cancelled"
)

// OrderItem is one line of an order. MenuItem is a snapshot taken at
// order creation: later catalog edits never change historical orders.
type OrderItem struct {
	MenuItem MenuItem `json:"menuItem"`
	Quantity int      `json:"quantity"`
	Subtotal float64  `json:"subtotal"`
}

// NewOrderItem snapshots the given menu item into an order line.
func NewOrderItem(item MenuItem, quantity int) OrderItem {
	return OrderItem{
		MenuItem: item,
		Quantity: quantity,
		Subtotal: item.Price * float64(quantity),
	}
}

// Order is a persisted checkout. Append-only except for Status and
// UpdatedAt.
type Order struct {
	ID            string      `json:"id"`
	StudentID     string      `json:"studentId"`
	StudentName   string      `json:"studentName"`
	StudentMobile string      `json:"studentMobile"`
	Items         []OrderItem `json:"items"`
	Total         float64     `json:"total"`
	Status        string      `json:"status"`
	CreatedAt     time.Time   `json:"createdAt"`
	UpdatedAt     time.Time   `json:"updatedAt"`
}

func ValidStatus(status string) bool {
	switch status {
	case StatusPending, StatusPreparing, StatusReady, StatusCompleted, StatusCancelled:
		return true
	}
	return false
}

// TerminalStatus reports whether no further transition is expected.
func TerminalStatus(status string) bool {
	return status == StatusCompleted || status == StatusCancelled
}

// NextStatus returns the forward step of the fulfillment lifecycle, or
// "" when the status is terminal or unknown.
func NextStatus(status string) string {
	switch status {
	case StatusPending:
		return StatusPreparing
	case StatusPreparing:
		return StatusReady
	case StatusReady:
		return StatusCompleted
	}
	return ""
}
