// internal/handlers/visit.go
package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/rgsaudi/musicstore-backend/internal/services"
	"github.com/rgsaudi/musicstore-backend/internal/utils"
)

type VisitHandler struct {
	visitService *services.VisitService
}

func NewVisitHandler(visitService *services.VisitService) *VisitHandler {
	return &VisitHandler{
		visitService: visitService,
	}
}

// POST /visitors
func (h *VisitHandler) RecordVisit(c *gin.Context) {
	if err := h.visitService.RecordVisit(); err != nil {
		handleServiceError(c, err)
		return
	}

	utils.MessageResponse(c, http.StatusCreated, "Visit Recorded")
}

// GET /admin/visitors
func (h *VisitHandler) GetVisitStats(c *gin.Context) {
	total, err := h.visitService.TotalVisits()
	if err != nil {
		handleServiceError(c, err)
		return
	}

	monthly, err := h.visitService.MonthlyBreakdown()
	if err != nil {
		handleServiceError(c, err)
		return
	}

	utils.SuccessResponse(c, gin.H{
		"total":   total,
		"monthly": monthly,
	})
}
