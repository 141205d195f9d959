// internal/services/visit_service.go
package services

import (
	"fmt"

	"gorm.io/gorm"

	"github.com/rgsaudi/musicstore-backend/internal/models"
)

// VisitService records storefront page visits for the admin traffic widgets.
type VisitService struct {
	db *gorm.DB
}

type MonthlyVisits struct {
	Month string `json:"month"`
	Count int64  `json:"count"`
}

func NewVisitService(db *gorm.DB) *VisitService {
	return &VisitService{db: db}
}

func (s *VisitService) RecordVisit() error {
	if err := s.db.Create(&models.Visit{}).Error; err != nil {
		return fmt.Errorf("failed to record visit: %w", err)
	}
	return nil
}

func (s *VisitService) TotalVisits() (int64, error) {
	var total int64
	if err := s.db.Model(&models.Visit{}).Count(&total).Error; err != nil {
		return 0, fmt.Errorf("failed to count visits: %w", err)
	}
	return total, nil
}

// MonthlyBreakdown buckets visits by calendar month ("Jan 2026"), newest
// month first.
func (s *VisitService) MonthlyBreakdown() ([]MonthlyVisits, error) {
	var rows []MonthlyVisits
	err := s.db.Model(&models.Visit{}).
		Select("to_char(created_at, 'Mon YYYY') AS month, COUNT(*) AS count").
		Group("month").
		Order("MIN(created_at) DESC").
		Scan(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("failed to fetch monthly visits: %w", err)
	}
	return rows, nil
}
