// internal/handlers/catalog.go
package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/rgsaudi/musicstore-backend/internal/services"
	"github.com/rgsaudi/musicstore-backend/internal/utils"
)

// CatalogHandler serves the public storefront pages.
type CatalogHandler struct {
	catalogService *services.CatalogService
}

func NewCatalogHandler(catalogService *services.CatalogService) *CatalogHandler {
	return &CatalogHandler{
		catalogService: catalogService,
	}
}

// GET /getCategory
func (h *CatalogHandler) GetCategories(c *gin.Context) {
	categories, err := h.catalogService.GetActiveCategories()
	if err != nil {
		handleServiceError(c, err)
		return
	}

	utils.SuccessResponse(c, gin.H{
		"category": categories,
	})
}

// GET /fetchProduct/:slug
func (h *CatalogHandler) FetchProduct(c *gin.Context) {
	category, products, err := h.catalogService.GetCategoryProducts(c.Param("slug"))
	if err != nil {
		handleServiceError(c, err)
		return
	}

	utils.SuccessResponse(c, gin.H{
		"product_data": gin.H{
			"product":  products,
			"category": category,
		},
	})
}

// GET /viewProductDetail/:category_slug/:product_slug
func (h *CatalogHandler) ViewProductDetail(c *gin.Context) {
	product, err := h.catalogService.GetProductDetail(c.Param("category_slug"), c.Param("product_slug"))
	if err != nil {
		handleServiceError(c, err)
		return
	}

	utils.SuccessResponse(c, gin.H{
		"product": product,
	})
}

// GET /viewAllProducts
func (h *CatalogHandler) ViewAllProducts(c *gin.Context) {
	products, err := h.catalogService.GetAllActiveProducts()
	if err != nil {
		handleServiceError(c, err)
		return
	}

	utils.SuccessResponse(c, gin.H{
		"products": products,
	})
}

// GET /products-search
func (h *CatalogHandler) Search(c *gin.Context) {
	products, err := h.catalogService.SearchProducts(c.Query("query"))
	if err != nil {
		handleServiceError(c, err)
		return
	}

	utils.SuccessResponse(c, gin.H{
		"products": products,
	})
}
