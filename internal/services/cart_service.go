// internal/services/cart_service.go
package services

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/rgsaudi/musicstore-backend/internal/models"
)

type CartService struct {
	db *gorm.DB
}

type AddToCartRequest struct {
	ProductID uuid.UUID `json:"product_id" validate:"required"`
	Quantity  int       `json:"product_quantity" validate:"required,min=1"`
}

// Quantity adjustment directions accepted by UpdateQuantity.
const (
	ScopeIncrement = "inc"
	ScopeDecrement = "dec"
)

func NewCartService(db *gorm.DB) *CartService {
	return &CartService{db: db}
}

func (s *CartService) AddToCart(userID uuid.UUID, req *AddToCartRequest) (*models.CartItem, error) {
	var product models.Product
	if err := s.db.First(&product, "id = ?", req.ProductID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, &NotFoundError{Resource: "product"}
		}
		return nil, fmt.Errorf("database error: %w", err)
	}

	var existing models.CartItem
	err := s.db.Where("user_id = ? AND product_id = ?", userID, req.ProductID).
		First(&existing).Error
	if err == nil {
		return nil, &DuplicateCartEntryError{ProductName: product.Name}
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("database error: %w", err)
	}

	item := &models.CartItem{
		UserID:    userID,
		ProductID: req.ProductID,
		Quantity:  req.Quantity,
	}
	if err := s.db.Create(item).Error; err != nil {
		return nil, fmt.Errorf("failed to add cart entry: %w", err)
	}

	return item, nil
}

func (s *CartService) GetCart(userID uuid.UUID) ([]models.CartItem, error) {
	var items []models.CartItem
	if err := s.db.Where("user_id = ?", userID).
		Preload("Product").
		Order("created_at ASC").
		Find(&items).Error; err != nil {
		return nil, fmt.Errorf("failed to fetch cart: %w", err)
	}
	return items, nil
}

// UpdateQuantity adjusts a cart entry by one unit. Increment is unbounded
// server-side; decrement stops at quantity 1. The entry must belong to the
// calling user.
func (s *CartService) UpdateQuantity(userID, cartID uuid.UUID, scope string) (*models.CartItem, error) {
	if scope != ScopeIncrement && scope != ScopeDecrement {
		return nil, &InvalidArgumentError{Message: "invalid scope provided"}
	}

	var item models.CartItem
	if err := s.db.Where("id = ? AND user_id = ?", cartID, userID).
		First(&item).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, &NotFoundError{Resource: "cart item"}
		}
		return nil, fmt.Errorf("database error: %w", err)
	}

	switch scope {
	case ScopeIncrement:
		item.Quantity++
	case ScopeDecrement:
		if item.Quantity <= 1 {
			return nil, &BelowMinimumError{}
		}
		item.Quantity--
	}

	if err := s.db.Model(&item).Update("quantity", item.Quantity).Error; err != nil {
		return nil, fmt.Errorf("failed to update quantity: %w", err)
	}

	return &item, nil
}

func (s *CartService) RemoveCartItem(userID, cartID uuid.UUID) error {
	var item models.CartItem
	if err := s.db.Where("id = ? AND user_id = ?", cartID, userID).
		First(&item).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return &NotFoundError{Resource: "cart item"}
		}
		return fmt.Errorf("database error: %w", err)
	}

	if err := s.db.Delete(&item).Error; err != nil {
		return fmt.Errorf("failed to remove cart entry: %w", err)
	}
	return nil
}
