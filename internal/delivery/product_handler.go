package delivery

import (
	"net/http"
	"strconv"

	"storefront/internal/domain"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

type ProductHandler struct {
	catalog domain.ProductRepository
	log     *logrus.Logger
}

func NewProductHandler(catalog domain.ProductRepository, logger *logrus.Logger) *ProductHandler {
	return &ProductHandler{
		catalog: catalog,
		log:     logger,
	}
}

func (h *ProductHandler) RegisterRoutes(router gin.IRouter) {
	router.GET("/products", h.ListProducts)
	router.GET("/products/:id", h.GetProduct)
	router.GET("/categories", h.ListCategories)
}

func (h *ProductHandler) ListProducts(c *gin.Context) {
	handlerLogger := h.log.WithField("handler", "ListProducts")

	filter := domain.ProductFilter{
		Category: c.Query("category"),
		NewOnly:  c.Query("new") == "true",
		SaleOnly: c.Query("sale") == "true",
	}

	if minStr := c.Query("min_price"); minStr != "" {
		minPrice, err := strconv.ParseFloat(minStr, 64)
		if err != nil || minPrice < 0 {
			handlerLogger.Warnf("Invalid min_price parameter: %s", minStr)
			ErrorResponse(c, http.StatusBadRequest, "Invalid min_price format")
			return
		}
		filter.MinPrice = minPrice
	}
	if maxStr := c.Query("max_price"); maxStr != "" {
		maxPrice, err := strconv.ParseFloat(maxStr, 64)
		if err != nil || maxPrice < 0 {
			handlerLogger.Warnf("Invalid max_price parameter: %s", maxStr)
			ErrorResponse(c, http.StatusBadRequest, "Invalid max_price format")
			return
		}
		filter.MaxPrice = maxPrice
	}

	products, err := h.catalog.ListProducts(filter)
	if err != nil {
		handlerLogger.Errorf("Failed to list products: %v", err)
		ErrorResponse(c, http.StatusInternalServerError, "Failed to retrieve products")
		return
	}

	handlerLogger.Infof("Retrieved %d products", len(products))
	SuccessResponse(c, http.StatusOK, "Products retrieved successfully", products)
}

func (h *ProductHandler) GetProduct(c *gin.Context) {
	handlerLogger := h.log.WithField("handler", "GetProduct")

	idStr := c.Param("id")
	id, err := strconv.Atoi(idStr)
	if err != nil || id <= 0 {
		handlerLogger.Warnf("Invalid product ID parameter: %s", idStr)
		ErrorResponse(c, http.StatusBadRequest, "Invalid product ID format")
		return
	}

	product, err := h.catalog.GetProductByID(id)
	if err != nil {
		handlerLogger.Warnf("Product %d not found: %v", id, err)
		ErrorResponse(c, mapErrorToStatus(err), "Produit non trouvé")
		return
	}

	SuccessResponse(c, http.StatusOK, "Product retrieved successfully", product)
}

func (h *ProductHandler) ListCategories(c *gin.Context) {
	categories, err := h.catalog.ListCategories()
	if err != nil {
		h.log.WithField("handler", "ListCategories").Errorf("Failed to list categories: %v", err)
		ErrorResponse(c, http.StatusInternalServerError, "Failed to retrieve categories")
		return
	}
	SuccessResponse(c, http.StatusOK, "Categories retrieved successfully", categories)
}
