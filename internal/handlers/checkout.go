// internal/handlers/checkout.go
package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/rgsaudi/musicstore-backend/internal/services"
	"github.com/rgsaudi/musicstore-backend/internal/utils"
)

type CheckoutHandler struct {
	checkoutService *services.CheckoutService
	paymentService  *services.PaymentService
}

func NewCheckoutHandler(checkoutService *services.CheckoutService, paymentService *services.PaymentService) *CheckoutHandler {
	return &CheckoutHandler{
		checkoutService: checkoutService,
		paymentService:  paymentService,
	}
}

// POST /place-order
func (h *CheckoutHandler) PlaceOrder(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	var req services.PlaceOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ValidationErrorResponse(c, utils.GetValidationErrors(err))
		return
	}

	if err := utils.ValidateStruct(&req); err != nil {
		utils.ValidationErrorResponse(c, utils.GetValidationErrors(err))
		return
	}

	result, err := h.checkoutService.PlaceOrder(userID, &req)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	resp := gin.H{
		"message":     "Order Placed Successfully",
		"tracking_no": result.Order.TrackingNo,
	}
	if len(result.SkippedProducts) > 0 {
		resp["skipped_products"] = result.SkippedProducts
	}
	utils.SuccessResponse(c, resp)
}

// POST /validate-order
func (h *CheckoutHandler) ValidateOrder(c *gin.Context) {
	if _, ok := currentUserID(c); !ok {
		return
	}

	var req services.ValidateOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ValidationErrorResponse(c, utils.GetValidationErrors(err))
		return
	}

	if err := utils.ValidateStruct(&req); err != nil {
		utils.ValidationErrorResponse(c, utils.GetValidationErrors(err))
		return
	}

	resp, err := h.paymentService.ValidateOrder(&req)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}
