// internal/services/checkout_service.go
package services

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/rgsaudi/musicstore-backend/internal/config"
	"github.com/rgsaudi/musicstore-backend/internal/models"
	"github.com/rgsaudi/musicstore-backend/internal/utils"
)

// CheckoutService turns a set of cart entries into an order. The whole
// placement runs in one transaction: stock checks, stock decrements, order
// and line-item creation and cart cleanup either all commit or all roll back.
type CheckoutService struct {
	db  *gorm.DB
	cfg *config.Config
}

type OrderLineRequest struct {
	CartID    uuid.UUID `json:"cart_id" validate:"required"`
	ProductID uuid.UUID `json:"product_id" validate:"required"`
	Quantity  int       `json:"quantity" validate:"required,min=1"`
	Price     float64   `json:"price" validate:"required"`
}

type PlaceOrderRequest struct {
	Firstname   string             `json:"firstname" validate:"required,max=191"`
	Lastname    string             `json:"lastname" validate:"required,max=191"`
	Phone       string             `json:"phone" validate:"required,max=191"`
	Email       string             `json:"email" validate:"required,email,max=191"`
	Address     string             `json:"address" validate:"required,max=191"`
	City        string             `json:"city" validate:"required,max=191"`
	State       string             `json:"state" validate:"required,max=191"`
	Zipcode     string             `json:"zipcode" validate:"required,max=191"`
	PaymentMode models.PaymentMode `json:"payment_mode" validate:"required,oneof=cod stripepay payonline"`
	PaymentID   string             `json:"payment_id"`
	OrderItems  []OrderLineRequest `json:"order_items" validate:"required,min=1,dive"`
}

type PlaceOrderResult struct {
	Order           *models.Order
	SkippedProducts []uuid.UUID
}

func NewCheckoutService(db *gorm.DB, cfg *config.Config) *CheckoutService {
	return &CheckoutService{
		db:  db,
		cfg: cfg,
	}
}

// PlaceOrder validates each requested line against live stock and places the
// order. Line prices are re-derived from the product's current selling price;
// the client-submitted price field is never trusted. Products are locked
// FOR UPDATE so concurrent checkouts cannot jointly overdraw stock.
//
// Missing products are handled per the configured policy: reject fails the
// whole placement, skip drops the line and reports it in the result.
func (s *CheckoutService) PlaceOrder(userID uuid.UUID, req *PlaceOrderRequest) (*PlaceOrderResult, error) {
	result := &PlaceOrderResult{}

	err := s.db.Transaction(func(tx *gorm.DB) error {
		order := &models.Order{
			UserID:      userID,
			Firstname:   req.Firstname,
			Lastname:    req.Lastname,
			Phone:       req.Phone,
			Email:       req.Email,
			Address:     req.Address,
			City:        req.City,
			State:       req.State,
			Zipcode:     req.Zipcode,
			PaymentMode: req.PaymentMode,
			PaymentID:   req.PaymentID,
			TrackingNo:  utils.GenerateTrackingNumber(s.cfg.Checkout.TrackingPrefix),
			Status:      models.OrderStatusPlaced,
			NotifRead:   false,
		}

		items := make([]models.OrderItem, 0, len(req.OrderItems))
		cartIDs := make([]uuid.UUID, 0, len(req.OrderItems))

		for _, line := range req.OrderItems {
			var product models.Product
			err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
				First(&product, "id = ?", line.ProductID).Error
			if err != nil {
				if errors.Is(err, gorm.ErrRecordNotFound) {
					if s.cfg.Checkout.MissingProduct == config.MissingProductSkip {
						result.SkippedProducts = append(result.SkippedProducts, line.ProductID)
						continue
					}
					return &NotFoundError{Resource: "product"}
				}
				return fmt.Errorf("database error: %w", err)
			}

			if product.Quantity < line.Quantity {
				return &InsufficientStockError{
					ProductID:   product.ID,
					ProductName: product.Name,
					Requested:   line.Quantity,
					Available:   product.Quantity,
				}
			}

			if err := tx.Model(&product).
				UpdateColumn("quantity", gorm.Expr("quantity - ?", line.Quantity)).Error; err != nil {
				return fmt.Errorf("failed to decrement stock: %w", err)
			}

			items = append(items, models.OrderItem{
				ProductID: product.ID,
				Quantity:  line.Quantity,
				Price:     product.SellingPrice,
			})
			cartIDs = append(cartIDs, line.CartID)
		}

		if len(items) == 0 {
			return &NotFoundError{Resource: "product"}
		}

		if err := tx.Create(order).Error; err != nil {
			return fmt.Errorf("failed to create order: %w", err)
		}

		for i := range items {
			items[i].OrderID = order.ID
		}
		if err := tx.Create(&items).Error; err != nil {
			return fmt.Errorf("failed to create order items: %w", err)
		}

		// Cart cleanup is scoped to the buyer so a forged cart_id cannot
		// delete another user's entries.
		if err := tx.Where("user_id = ? AND id IN ?", userID, cartIDs).
			Delete(&models.CartItem{}).Error; err != nil {
			return fmt.Errorf("failed to clear cart entries: %w", err)
		}

		order.OrderItems = items
		result.Order = order
		return nil
	})

	if err != nil {
		return nil, err
	}

	return result, nil
}
