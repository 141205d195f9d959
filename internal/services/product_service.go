// internal/services/product_service.go
package services

import (
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"gorm.io/gorm"

	"github.com/rgsaudi/musicstore-backend/internal/models"
	"github.com/rgsaudi/musicstore-backend/internal/utils"
)

// ProductService is the admin side of the product catalog.
type ProductService struct {
	db             *gorm.DB
	storageService *StorageService
}

type ProductRequest struct {
	CategoryID      uuid.UUID `json:"category_id" validate:"required"`
	Slug            string    `json:"slug" validate:"required,max=191"`
	Name            string    `json:"name" validate:"required,max=191"`
	Description     string    `json:"description" validate:"required,max=1001"`
	Brand           string    `json:"brand" validate:"required,max=20"`
	MetaTitle       string    `json:"meta_title" validate:"required,max=191"`
	MetaKeywords    string    `json:"meta_keywords" validate:"max=191"`
	MetaDescription string    `json:"meta_description" validate:"max=191"`
	SellingPrice    float64   `json:"selling_price" validate:"required,gt=0"`
	OriginalPrice   float64   `json:"original_price" validate:"required,gt=0"`
	Quantity        int       `json:"quantity" validate:"gte=0,lte=9999"`
	Images          []string  `json:"images" validate:"required,min=1"`
	Featured        bool      `json:"featured"`
	Popular         bool      `json:"popular"`
	Status          bool      `json:"status"`
}

func NewProductService(db *gorm.DB, storageService *StorageService) *ProductService {
	return &ProductService{
		db:             db,
		storageService: storageService,
	}
}

func (s *ProductService) CreateProduct(req *ProductRequest) (*models.Product, error) {
	var category models.Category
	if err := s.db.First(&category, "id = ?", req.CategoryID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, &NotFoundError{Resource: "category"}
		}
		return nil, fmt.Errorf("database error: %w", err)
	}

	product := &models.Product{
		CategoryID:      req.CategoryID,
		Slug:            req.Slug,
		Name:            req.Name,
		Description:     req.Description,
		Brand:           req.Brand,
		MetaTitle:       req.MetaTitle,
		MetaKeywords:    req.MetaKeywords,
		MetaDescription: req.MetaDescription,
		SellingPrice:    req.SellingPrice,
		OriginalPrice:   req.OriginalPrice,
		Quantity:        req.Quantity,
		Images:          req.Images,
		Featured:        req.Featured,
		Popular:         req.Popular,
		Status:          catalogStatus(req.Status),
	}

	if err := s.db.Create(product).Error; err != nil {
		return nil, fmt.Errorf("failed to create product: %w", err)
	}
	return product, nil
}

func (s *ProductService) GetProducts(params utils.PaginationParams) ([]models.Product, int64, error) {
	query := s.db.Model(&models.Product{}).Preload("Category")

	if params.Search != "" {
		pattern := "%" + strings.ToLower(params.Search) + "%"
		query = query.Where("LOWER(name) LIKE ? OR LOWER(brand) LIKE ?", pattern, pattern)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count products: %w", err)
	}

	allowedSortFields := []string{"created_at", "updated_at", "name", "selling_price", "quantity"}
	query = utils.ApplySort(query, params, allowedSortFields)
	query = utils.ApplyPagination(query, params)

	var products []models.Product
	if err := query.Find(&products).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to fetch products: %w", err)
	}

	return products, total, nil
}

func (s *ProductService) GetProduct(id uuid.UUID) (*models.Product, error) {
	var product models.Product
	if err := s.db.Preload("Category").First(&product, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, &NotFoundError{Resource: "product"}
		}
		return nil, fmt.Errorf("database error: %w", err)
	}
	return &product, nil
}

func (s *ProductService) UpdateProduct(id uuid.UUID, req *ProductRequest) (*models.Product, error) {
	product, err := s.GetProduct(id)
	if err != nil {
		return nil, err
	}

	// Replacing the image set orphans the previously stored objects; remove
	// them once the update is accepted.
	var staleImages []string
	if len(req.Images) > 0 && !equalImageSets(product.Images, req.Images) {
		staleImages = product.Images
	}

	updates := map[string]interface{}{
		"category_id":      req.CategoryID,
		"slug":             req.Slug,
		"name":             req.Name,
		"description":      req.Description,
		"brand":            req.Brand,
		"meta_title":       req.MetaTitle,
		"meta_keywords":    req.MetaKeywords,
		"meta_description": req.MetaDescription,
		"selling_price":    req.SellingPrice,
		"original_price":   req.OriginalPrice,
		"quantity":         req.Quantity,
		"images":           pq.StringArray(req.Images),
		"featured":         req.Featured,
		"popular":          req.Popular,
		"status":           catalogStatus(req.Status),
	}

	if err := s.db.Model(product).Updates(updates).Error; err != nil {
		return nil, fmt.Errorf("failed to update product: %w", err)
	}

	if s.storageService != nil {
		for _, key := range staleImages {
			_ = s.storageService.DeleteFile(key)
		}
	}

	return product, nil
}

// DeleteProduct soft-deletes the product, hard-deletes any cart entries that
// reference it, and removes its stored images.
func (s *ProductService) DeleteProduct(id uuid.UUID) error {
	product, err := s.GetProduct(id)
	if err != nil {
		return err
	}

	err = s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("product_id = ?", id).Delete(&models.CartItem{}).Error; err != nil {
			return fmt.Errorf("failed to clear cart entries: %w", err)
		}
		if err := tx.Delete(product).Error; err != nil {
			return fmt.Errorf("failed to delete product: %w", err)
		}
		return nil
	})
	if err != nil {
		return err
	}

	if s.storageService != nil {
		for _, key := range product.Images {
			_ = s.storageService.DeleteFile(key)
		}
	}

	return nil
}

func equalImageSets(a []string, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
