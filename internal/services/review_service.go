// internal/services/review_service.go
package services

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/rgsaudi/musicstore-backend/internal/models"
)

type ReviewService struct {
	db *gorm.DB
}

type AddReviewRequest struct {
	ProductID uuid.UUID `json:"product_id" validate:"required"`
	OrderID   uuid.UUID `json:"order_id" validate:"required"`
	Rating    int       `json:"rating" validate:"required,gte=1,lte=5"`
	Review    string    `json:"review" validate:"required"`
}

func NewReviewService(db *gorm.DB) *ReviewService {
	return &ReviewService{db: db}
}

func (s *ReviewService) AddReview(userID uuid.UUID, req *AddReviewRequest) (*models.Review, error) {
	var product models.Product
	if err := s.db.First(&product, "id = ?", req.ProductID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, &NotFoundError{Resource: "product"}
		}
		return nil, fmt.Errorf("database error: %w", err)
	}

	var order models.Order
	if err := s.db.First(&order, "id = ?", req.OrderID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, &NotFoundError{Resource: "order"}
		}
		return nil, fmt.Errorf("database error: %w", err)
	}

	var existing models.Review
	err := s.db.Where("user_id = ? AND product_id = ? AND order_id = ?",
		userID, req.ProductID, req.OrderID).First(&existing).Error
	if err == nil {
		return nil, &DuplicateReviewError{ProductID: req.ProductID, OrderID: req.OrderID}
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("database error: %w", err)
	}

	review := &models.Review{
		ProductID: req.ProductID,
		UserID:    userID,
		OrderID:   req.OrderID,
		Rating:    req.Rating,
		Review:    req.Review,
	}
	if err := s.db.Create(review).Error; err != nil {
		return nil, fmt.Errorf("failed to create review: %w", err)
	}

	return review, nil
}

// GetProductsWithReviews returns the storefront's review listing: every
// product together with its reviews.
func (s *ReviewService) GetProductsWithReviews() ([]models.Product, error) {
	var products []models.Product
	if err := s.db.Preload("Reviews").Find(&products).Error; err != nil {
		return nil, fmt.Errorf("failed to fetch product reviews: %w", err)
	}
	return products, nil
}
