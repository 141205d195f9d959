// internal/models/product.go
package models

import (
	"github.com/google/uuid"
	"github.com/lib/pq"
)

type Product struct {
	BaseModel
	CategoryID      uuid.UUID      `json:"category_id" gorm:"type:uuid;not null;index"`
	Slug            string         `json:"slug" gorm:"size:191;not null;index"`
	Name            string         `json:"name" gorm:"size:191;not null"`
	Description     string         `json:"description" gorm:"type:text"`
	Brand           string         `json:"brand" gorm:"size:100;index"`
	MetaTitle       string         `json:"meta_title" gorm:"size:191"`
	MetaKeywords    string         `json:"meta_keywords" gorm:"size:191"`
	MetaDescription string         `json:"meta_description" gorm:"size:191"`
	SellingPrice    float64        `json:"selling_price" gorm:"type:decimal(10,2);not null"`
	OriginalPrice   float64        `json:"original_price" gorm:"type:decimal(10,2);not null"`
	Quantity        int            `json:"quantity" gorm:"not null;default:0"`
	Images          pq.StringArray `json:"images" gorm:"type:text[]"`
	Featured        bool           `json:"featured" gorm:"default:false"`
	Popular         bool           `json:"popular" gorm:"default:false"`
	Status          CatalogStatus  `json:"status" gorm:"type:varchar(20);default:'active';index"`

	// Relationships
	Category   Category    `json:"category,omitempty" gorm:"foreignKey:CategoryID"`
	OrderItems []OrderItem `json:"order_items,omitempty" gorm:"foreignKey:ProductID"`
	Reviews    []Review    `json:"reviews,omitempty" gorm:"foreignKey:ProductID"`
}
