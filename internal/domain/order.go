package domain

import "time"

type OrderStatus string

const (
	StatusPending   OrderStatus = "pending"
	StatusDelivered OrderStatus = "delivered"
	StatusCancelled OrderStatus = "cancelled"
)

// Order is an immutable record of a confirmed purchase. Items and Total are
// snapshots taken at confirmation time and do not alias the live cart.
type Order struct {
	ID            string        `json:"id"`
	Date          time.Time     `json:"date"`
	Items         []CartItem    `json:"items"`
	Total         float64       `json:"total"`
	Status        OrderStatus   `json:"status"`
	PaymentMethod PaymentMethod `json:"payment_method"`
}

func IsValidStatus(status OrderStatus) bool {
	switch status {
	case StatusPending, StatusDelivered, StatusCancelled:
		return true
	default:
		return false
	}
}
