// internal/models/visit.go
package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Visit is a bare timestamped row used for traffic counters.
type Visit struct {
	ID        uuid.UUID `json:"id" gorm:"type:uuid;primary_key"`
	CreatedAt time.Time `json:"created_at" gorm:"index"`
}

func (v *Visit) BeforeCreate(tx *gorm.DB) error {
	if v.ID == uuid.Nil {
		v.ID = uuid.New()
	}
	return nil
}
