package domain

type CartItem struct {
	Product
	Quantity int `json:"quantity"`
}
