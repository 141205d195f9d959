// internal/services/catalog_service.go
package services

import (
	"errors"
	"fmt"
	"strings"

	"gorm.io/gorm"

	"github.com/rgsaudi/musicstore-backend/internal/models"
)

// CatalogService serves the public storefront reads: categories, product
// listings by category slug and product detail pages. Hidden categories and
// products never leave this service.
type CatalogService struct {
	db *gorm.DB
}

func NewCatalogService(db *gorm.DB) *CatalogService {
	return &CatalogService{db: db}
}

func (s *CatalogService) GetActiveCategories() ([]models.Category, error) {
	var categories []models.Category
	if err := s.db.Where("status = ?", models.CatalogStatusActive).
		Find(&categories).Error; err != nil {
		return nil, fmt.Errorf("failed to fetch categories: %w", err)
	}
	return categories, nil
}

func (s *CatalogService) GetCategoryProducts(categorySlug string) (*models.Category, []models.Product, error) {
	var category models.Category
	if err := s.db.Where("slug = ? AND status = ?", categorySlug, models.CatalogStatusActive).
		First(&category).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil, &NotFoundError{Resource: "category"}
		}
		return nil, nil, fmt.Errorf("database error: %w", err)
	}

	var products []models.Product
	if err := s.db.Where("category_id = ? AND status = ?", category.ID, models.CatalogStatusActive).
		Preload("Reviews").
		Find(&products).Error; err != nil {
		return nil, nil, fmt.Errorf("failed to fetch products: %w", err)
	}

	return &category, products, nil
}

func (s *CatalogService) GetProductDetail(categorySlug, productSlug string) (*models.Product, error) {
	var category models.Category
	if err := s.db.Where("slug = ? AND status = ?", categorySlug, models.CatalogStatusActive).
		First(&category).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, &NotFoundError{Resource: "category"}
		}
		return nil, fmt.Errorf("database error: %w", err)
	}

	var product models.Product
	if err := s.db.Where("category_id = ? AND slug = ? AND status = ?",
		category.ID, productSlug, models.CatalogStatusActive).
		Preload("Reviews.User").
		First(&product).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, &NotFoundError{Resource: "product"}
		}
		return nil, fmt.Errorf("database error: %w", err)
	}

	return &product, nil
}

func (s *CatalogService) GetAllActiveProducts() ([]models.Product, error) {
	var products []models.Product
	if err := s.db.Where("status = ?", models.CatalogStatusActive).
		Preload("Reviews").
		Find(&products).Error; err != nil {
		return nil, fmt.Errorf("failed to fetch products: %w", err)
	}
	return products, nil
}

// SearchProducts matches the query as a substring against name, slug and brand.
func (s *CatalogService) SearchProducts(query string) ([]models.Product, error) {
	var products []models.Product
	pattern := "%" + strings.ToLower(query) + "%"
	if err := s.db.
		Where("LOWER(name) LIKE ? OR LOWER(slug) LIKE ? OR LOWER(brand) LIKE ?",
			pattern, pattern, pattern).
		Find(&products).Error; err != nil {
		return nil, fmt.Errorf("failed to search products: %w", err)
	}
	return products, nil
}
