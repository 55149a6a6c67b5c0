package repository

import (
	"fmt"
	"storefront/internal/domain"

	"github.com/sirupsen/logrus"
)

type memoryProductRepository struct {
	products   []domain.Product
	categories []string
	log        *logrus.Logger
}

// NewMemoryProductRepository wraps a static, read-only product list. The
// catalog is reference data: it is never mutated after construction.
func NewMemoryProductRepository(products []domain.Product, categories []string, logger *logrus.Logger) domain.ProductRepository {
	return &memoryProductRepository{
		products:   products,
		categories: categories,
		log:        logger,
	}
}

func (r *memoryProductRepository) ListProducts(filter domain.ProductFilter) ([]domain.Product, error) {
	result := make([]domain.Product, 0, len(r.products))
	for _, p := range r.products {
		if filter.Category != "" && p.Category != filter.Category {
			continue
		}
		if p.Price < filter.MinPrice {
			continue
		}
		if filter.MaxPrice > 0 && p.Price > filter.MaxPrice {
			continue
		}
		if filter.NewOnly && !p.IsNew {
			continue
		}
		if filter.SaleOnly && !p.IsSale {
			continue
		}
		result = append(result, p)
	}
	r.log.Debugf("Catalog: listed %d of %d products (category: %q)", len(result), len(r.products), filter.Category)
	return result, nil
}

func (r *memoryProductRepository) GetProductByID(id int) (*domain.Product, error) {
	for _, p := range r.products {
		if p.ID == id {
			product := p
			return &product, nil
		}
	}
	r.log.Warnf("Catalog: product with ID %d not found", id)
	return nil, fmt.Errorf("product with id %d: %w", id, domain.ErrProductNotFound)
}

func (r *memoryProductRepository) ListCategories() ([]string, error) {
	categories := make([]string, len(r.categories))
	copy(categories, r.categories)
	return categories, nil
}
