// internal/models/order.go
package models

import (
	"github.com/google/uuid"
)

type Order struct {
	BaseModel
	UserID      uuid.UUID   `json:"user_id" gorm:"type:uuid;not null;index"`
	Firstname   string      `json:"firstname" gorm:"size:191;not null"`
	Lastname    string      `json:"lastname" gorm:"size:191;not null"`
	Phone       string      `json:"phone" gorm:"size:191;not null"`
	Email       string      `json:"email" gorm:"size:191;not null"`
	Address     string      `json:"address" gorm:"size:191;not null"`
	City        string      `json:"city" gorm:"size:191;not null"`
	State       string      `json:"state" gorm:"size:191;not null"`
	Zipcode     string      `json:"zipcode" gorm:"size:191;not null"`
	PaymentMode PaymentMode `json:"payment_mode" gorm:"type:varchar(20)"`
	PaymentID   string      `json:"payment_id" gorm:"size:255"`
	TrackingNo  string      `json:"tracking_no" gorm:"size:100;index"`
	Status      OrderStatus `json:"status" gorm:"type:varchar(20);default:'placed';index"`
	Remark      string      `json:"remark" gorm:"size:191"`
	NotifRead   bool        `json:"notif_read" gorm:"default:false"`

	// Relationships
	User       User        `json:"user,omitempty" gorm:"foreignKey:UserID"`
	OrderItems []OrderItem `json:"order_items,omitempty" gorm:"foreignKey:OrderID"`
}

// OrderItem captures quantity and unit price at the moment of placement.
// Rows are never updated after creation.
type OrderItem struct {
	BaseModel
	OrderID   uuid.UUID `json:"order_id" gorm:"type:uuid;not null;index"`
	ProductID uuid.UUID `json:"product_id" gorm:"type:uuid;not null;index"`
	Quantity  int       `json:"quantity" gorm:"not null"`
	Price     float64   `json:"price" gorm:"type:decimal(10,2);not null"`

	Product Product `json:"product,omitempty" gorm:"foreignKey:ProductID"`
}
