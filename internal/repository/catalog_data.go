package repository

import "storefront/internal/domain"

// DefaultCatalog returns the built-in storefront catalog. Prices are in the
// store currency; OldPrice carries the strike-through reference price when a
// product is discounted.
func DefaultCatalog() []domain.Product {
	return []domain.Product{
		{
			ID:       1,
			Name:     "Canon EOS Rebel T7i Kit",
			Category: "Cameras",
			Price:    899.99,
			OldPrice: 1050.00,
			Image:    "/img/product-1.png",
			Rating:   5,
			IsNew:    true,
		},
		{
			ID:       2,
			Name:     "Apple iPhone 15 Pro",
			Category: "Smartphones",
			Price:    999.00,
			OldPrice: 1199.00,
			Image:    "/img/product-2.png",
			Rating:   4,
			IsSale:   true,
		},
		{
			ID:       3,
			Name:     "Sony WH-1000XM5",
			Category: "Headphones",
			Price:    348.00,
			Image:    "/img/product-3.png",
			Rating:   5,
		},
		{
			ID:       4,
			Name:     "MacBook Air M2",
			Category: "Laptops",
			Price:    1199.00,
			Image:    "/img/product-4.png",
			Rating:   5,
			IsNew:    true,
		},
		{
			ID:       5,
			Name:     "Samsung Galaxy Watch 6",
			Category: "Smartwatch",
			Price:    299.99,
			OldPrice: 349.99,
			Image:    "/img/product-5.png",
			Rating:   4,
			IsSale:   true,
		},
		{
			ID:       6,
			Name:     "Logitech MX Master 3S",
			Category: "Accessories",
			Price:    99.99,
			Image:    "/img/product-6.png",
			Rating:   5,
		},
		{
			ID:       7,
			Name:     "iPad Air 5",
			Category: "Tablets",
			Price:    599.00,
			Image:    "/img/product-7.png",
			Rating:   4,
		},
		{
			ID:       8,
			Name:     "PlayStation 5",
			Category: "Gaming",
			Price:    499.00,
			Image:    "/img/ps5.jpg",
			Rating:   5,
			IsNew:    true,
		},
	}
}

// DefaultCategories returns the categories exposed by the storefront filter.
func DefaultCategories() []string {
	return []string{"Laptops", "Smartphones", "Cameras", "Accessories", "Gaming", "Tablets"}
}
