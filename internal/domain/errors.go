package domain

import "errors"

var (
	ErrProductNotFound = errors.New("product not found")
	ErrOrderNotFound   = errors.New("order not found")
	ErrLoginRequired   = errors.New("login required")
	ErrEmptyCart       = errors.New("cart is empty")
)
