// internal/models/category.go
package models

type Category struct {
	BaseModel
	Slug            string        `json:"slug" gorm:"size:191;not null;index"`
	Name            string        `json:"name" gorm:"size:191;not null"`
	Description     string        `json:"description" gorm:"type:text"`
	MetaTitle       string        `json:"meta_title" gorm:"size:191"`
	MetaKeywords    string        `json:"meta_keywords" gorm:"size:191"`
	MetaDescription string        `json:"meta_description" gorm:"size:191"`
	Status          CatalogStatus `json:"status" gorm:"type:varchar(20);default:'active';index"`

	Products []Product `json:"products,omitempty" gorm:"foreignKey:CategoryID"`
}
