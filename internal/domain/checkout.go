package domain

type CheckoutState string

const (
	CheckoutStateReview  CheckoutState = "REVIEW"
	CheckoutStatePayment CheckoutState = "PAYMENT"
	CheckoutStateSuccess CheckoutState = "SUCCESS"
	CheckoutStateFailed  CheckoutState = "FAILED"
)

// CheckoutReview is the snapshot shown while the flow is in REVIEW.
type CheckoutReview struct {
	State CheckoutState `json:"state"`
	Items []CartItem    `json:"items"`
	Total float64       `json:"total"`
	User  User          `json:"user"`
}

// CheckoutResult is the terminal outcome of one confirmation attempt.
// Order is set only when State is SUCCESS.
type CheckoutResult struct {
	State         CheckoutState `json:"state"`
	Order         *Order        `json:"order,omitempty"`
	FailureReason string        `json:"failure_reason,omitempty"`
}
