// internal/services/order_service.go
package services

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/rgsaudi/musicstore-backend/internal/models"
	"github.com/rgsaudi/musicstore-backend/internal/utils"
)

// OrderService serves the admin order dashboard and the customer's order
// history, including the order-level notification flag.
type OrderService struct {
	db *gorm.DB
}

type UpdateOrderRequest struct {
	Status models.OrderStatus `json:"status" validate:"required"`
	Remark string             `json:"remark" validate:"required,max=191"`
}

// OrderItemView is an order line annotated with the caller's review state
// for that product within the order.
type OrderItemView struct {
	models.OrderItem
	IsReviewed bool            `json:"is_reviewed"`
	Reviews    []models.Review `json:"reviews"`
}

type OrderView struct {
	models.Order
	Items []OrderItemView `json:"order_items"`
}

func NewOrderService(db *gorm.DB) *OrderService {
	return &OrderService{db: db}
}

func (s *OrderService) GetOrders(params utils.PaginationParams) ([]models.Order, int64, error) {
	query := s.db.Model(&models.Order{})

	if params.Search != "" {
		pattern := "%" + params.Search + "%"
		query = query.Where("tracking_no LIKE ? OR email LIKE ?", pattern, pattern)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count orders: %w", err)
	}

	allowedSortFields := []string{"created_at", "updated_at", "status", "tracking_no"}
	query = utils.ApplySort(query, params, allowedSortFields)
	query = utils.ApplyPagination(query, params)

	var orders []models.Order
	if err := query.Find(&orders).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to fetch orders: %w", err)
	}

	return orders, total, nil
}

func (s *OrderService) GetOrder(id uuid.UUID) (*models.Order, error) {
	var order models.Order
	if err := s.db.First(&order, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, &NotFoundError{Resource: "order"}
		}
		return nil, fmt.Errorf("database error: %w", err)
	}
	return &order, nil
}

func (s *OrderService) UpdateOrder(id uuid.UUID, req *UpdateOrderRequest) (*models.Order, error) {
	if !req.Status.Valid() {
		return nil, &InvalidArgumentError{Message: "invalid order status"}
	}

	order, err := s.GetOrder(id)
	if err != nil {
		return nil, err
	}

	updates := map[string]interface{}{
		"status": req.Status,
		"remark": req.Remark,
	}
	if err := s.db.Model(order).Updates(updates).Error; err != nil {
		return nil, fmt.Errorf("failed to update order: %w", err)
	}

	return order, nil
}

// GetOrdersWithItems is the admin listing: every order with its line items
// and products, newest first.
func (s *OrderService) GetOrdersWithItems() ([]models.Order, error) {
	var orders []models.Order
	if err := s.db.Preload("OrderItems.Product").
		Order("created_at DESC").
		Find(&orders).Error; err != nil {
		return nil, fmt.Errorf("failed to fetch orders: %w", err)
	}
	return orders, nil
}

// GetUserOrders returns the caller's orders, newest first, each line item
// annotated with whether the caller already reviewed that product for that
// order.
func (s *OrderService) GetUserOrders(userID uuid.UUID) ([]OrderView, error) {
	var orders []models.Order
	if err := s.db.Where("user_id = ?", userID).
		Preload("OrderItems.Product").
		Order("created_at DESC").
		Find(&orders).Error; err != nil {
		return nil, fmt.Errorf("failed to fetch orders: %w", err)
	}

	var reviews []models.Review
	if err := s.db.Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&reviews).Error; err != nil {
		return nil, fmt.Errorf("failed to fetch reviews: %w", err)
	}

	reviewsByKey := make(map[string][]models.Review, len(reviews))
	for _, r := range reviews {
		key := r.OrderID.String() + "/" + r.ProductID.String()
		reviewsByKey[key] = append(reviewsByKey[key], r)
	}

	views := make([]OrderView, 0, len(orders))
	for _, order := range orders {
		view := OrderView{Order: order, Items: make([]OrderItemView, 0, len(order.OrderItems))}
		for _, item := range order.OrderItems {
			key := order.ID.String() + "/" + item.ProductID.String()
			itemReviews := reviewsByKey[key]
			view.Items = append(view.Items, OrderItemView{
				OrderItem:  item,
				IsReviewed: len(itemReviews) > 0,
				Reviews:    itemReviews,
			})
		}
		views = append(views, view)
	}

	return views, nil
}

// MarkNotificationRead flips the order's admin-dashboard notification flag.
func (s *OrderService) MarkNotificationRead(orderID uuid.UUID) (*models.Order, error) {
	order, err := s.GetOrder(orderID)
	if err != nil {
		return nil, err
	}

	if err := s.db.Model(order).Update("notif_read", true).Error; err != nil {
		return nil, fmt.Errorf("failed to update notification status: %w", err)
	}

	return order, nil
}
