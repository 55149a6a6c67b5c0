package domain

type Product struct {
	ID          int     `json:"id"`
	Name        string  `json:"name"`
	Category    string  `json:"category"`
	Price       float64 `json:"price"`
	OldPrice    float64 `json:"old_price,omitempty"`
	Image       string  `json:"image"`
	Rating      int     `json:"rating"`
	IsNew       bool    `json:"is_new,omitempty"`
	IsSale      bool    `json:"is_sale,omitempty"`
	Description string  `json:"description,omitempty"`
}

// ProductFilter narrows catalog listings. Zero values mean "no constraint";
// MaxPrice <= 0 is treated as unbounded.
type ProductFilter struct {
	Category string
	MinPrice float64
	MaxPrice float64
	NewOnly  bool
	SaleOnly bool
}

type ProductRepository interface {
	ListProducts(filter ProductFilter) ([]Product, error)
	GetProductByID(id int) (*Product, error)
	ListCategories() ([]string, error)
}
