// internal/services/category_service.go
package services

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/rgsaudi/musicstore-backend/internal/models"
)

// CategoryService is the admin side of the category catalog.
type CategoryService struct {
	db             *gorm.DB
	storageService *StorageService
}

type CategoryRequest struct {
	Slug            string `json:"slug" validate:"required,max=191"`
	Name            string `json:"name" validate:"required,max=191"`
	Description     string `json:"description"`
	MetaTitle       string `json:"meta_title" validate:"required,max=191"`
	MetaKeywords    string `json:"meta_keywords" validate:"max=191"`
	MetaDescription string `json:"meta_description" validate:"max=191"`
	Status          bool   `json:"status"`
}

func NewCategoryService(db *gorm.DB, storageService *StorageService) *CategoryService {
	return &CategoryService{
		db:             db,
		storageService: storageService,
	}
}

func catalogStatus(active bool) models.CatalogStatus {
	if active {
		return models.CatalogStatusActive
	}
	return models.CatalogStatusHidden
}

func (s *CategoryService) CreateCategory(req *CategoryRequest) (*models.Category, error) {
	category := &models.Category{
		Slug:            req.Slug,
		Name:            req.Name,
		Description:     req.Description,
		MetaTitle:       req.MetaTitle,
		MetaKeywords:    req.MetaKeywords,
		MetaDescription: req.MetaDescription,
		Status:          catalogStatus(req.Status),
	}

	if err := s.db.Create(category).Error; err != nil {
		return nil, fmt.Errorf("failed to create category: %w", err)
	}
	return category, nil
}

func (s *CategoryService) GetCategories() ([]models.Category, error) {
	var categories []models.Category
	if err := s.db.Find(&categories).Error; err != nil {
		return nil, fmt.Errorf("failed to fetch categories: %w", err)
	}
	return categories, nil
}

func (s *CategoryService) GetCategory(id uuid.UUID) (*models.Category, error) {
	var category models.Category
	if err := s.db.First(&category, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, &NotFoundError{Resource: "category"}
		}
		return nil, fmt.Errorf("database error: %w", err)
	}
	return &category, nil
}

func (s *CategoryService) UpdateCategory(id uuid.UUID, req *CategoryRequest) (*models.Category, error) {
	category, err := s.GetCategory(id)
	if err != nil {
		return nil, err
	}

	updates := map[string]interface{}{
		"slug":             req.Slug,
		"name":             req.Name,
		"description":      req.Description,
		"meta_title":       req.MetaTitle,
		"meta_keywords":    req.MetaKeywords,
		"meta_description": req.MetaDescription,
		"status":           catalogStatus(req.Status),
	}

	if err := s.db.Model(category).Updates(updates).Error; err != nil {
		return nil, fmt.Errorf("failed to update category: %w", err)
	}
	return category, nil
}

// DeleteCategory removes the category and everything hanging off it: its
// products, those products' cart entries and their stored images.
func (s *CategoryService) DeleteCategory(id uuid.UUID) error {
	category, err := s.GetCategory(id)
	if err != nil {
		return err
	}

	var products []models.Product
	if err := s.db.Where("category_id = ?", id).Find(&products).Error; err != nil {
		return fmt.Errorf("failed to fetch category products: %w", err)
	}

	err = s.db.Transaction(func(tx *gorm.DB) error {
		for _, product := range products {
			if err := tx.Where("product_id = ?", product.ID).
				Delete(&models.CartItem{}).Error; err != nil {
				return fmt.Errorf("failed to clear cart entries: %w", err)
			}
			if err := tx.Delete(&product).Error; err != nil {
				return fmt.Errorf("failed to delete product: %w", err)
			}
		}
		if err := tx.Delete(category).Error; err != nil {
			return fmt.Errorf("failed to delete category: %w", err)
		}
		return nil
	})
	if err != nil {
		return err
	}

	// Stored images are cleaned up outside the transaction; a failed object
	// delete leaves an orphan file, not an inconsistent catalog.
	if s.storageService != nil {
		for _, product := range products {
			for _, key := range product.Images {
				_ = s.storageService.DeleteFile(key)
			}
		}
	}

	return nil
}
