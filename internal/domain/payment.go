package domain

type PaymentMethod string

const (
	PaymentOrangeMoney PaymentMethod = "ORANGE_MONEY"
	PaymentMTNMoney    PaymentMethod = "MTN_MONEY"
	PaymentCard        PaymentMethod = "CARD"
)

func IsValidPaymentMethod(method PaymentMethod) bool {
	switch method {
	case PaymentOrangeMoney, PaymentMTNMoney, PaymentCard:
		return true
	default:
		return false
	}
}

// PaymentDetails carries the raw fields collected by the payment form. The
// mobile-money methods use PhoneNumber, CARD uses the card fields. No
// client-side validation is applied to any of them.
type PaymentDetails struct {
	PhoneNumber string `json:"phone_number,omitempty"`
	CardNumber  string `json:"card_number,omitempty"`
	CardExpiry  string `json:"card_expiry,omitempty"`
	CardCVC     string `json:"card_cvc,omitempty"`
}
