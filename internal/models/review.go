// internal/models/review.go
package models

import (
	"github.com/google/uuid"
)

// Review is unique per (user, product, order): buying the same product in a
// later order allows a second review, reviewing it twice for one order does not.
type Review struct {
	BaseModel
	ProductID uuid.UUID `json:"product_id" gorm:"type:uuid;not null;uniqueIndex:idx_review_user_product_order"`
	UserID    uuid.UUID `json:"user_id" gorm:"type:uuid;not null;uniqueIndex:idx_review_user_product_order"`
	OrderID   uuid.UUID `json:"order_id" gorm:"type:uuid;not null;uniqueIndex:idx_review_user_product_order"`
	Rating    int       `json:"rating" gorm:"not null"`
	Review    string    `json:"review" gorm:"type:text;not null"`

	User User `json:"user,omitempty" gorm:"foreignKey:UserID"`
}
