// internal/handlers/cart.go
package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/rgsaudi/musicstore-backend/internal/services"
	"github.com/rgsaudi/musicstore-backend/internal/utils"
)

type CartHandler struct {
	cartService *services.CartService
}

func NewCartHandler(cartService *services.CartService) *CartHandler {
	return &CartHandler{
		cartService: cartService,
	}
}

// POST /add-to-cart
func (h *CartHandler) AddToCart(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	var req services.AddToCartRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ValidationErrorResponse(c, utils.GetValidationErrors(err))
		return
	}

	if err := utils.ValidateStruct(&req); err != nil {
		utils.ValidationErrorResponse(c, utils.GetValidationErrors(err))
		return
	}

	if _, err := h.cartService.AddToCart(userID, &req); err != nil {
		handleServiceError(c, err)
		return
	}

	utils.MessageResponse(c, http.StatusCreated, "Added to Cart")
}

// GET /cart
func (h *CartHandler) ViewCart(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	items, err := h.cartService.GetCart(userID)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	utils.SuccessResponse(c, gin.H{
		"cart": items,
	})
}

// PUT /cart-update-quantity/:cart_id/:scope
func (h *CartHandler) UpdateQuantity(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	cartID, ok := parsePathID(c, "cart_id")
	if !ok {
		return
	}

	if _, err := h.cartService.UpdateQuantity(userID, cartID, c.Param("scope")); err != nil {
		handleServiceError(c, err)
		return
	}

	utils.MessageResponse(c, http.StatusOK, "Quantity Updated")
}

// DELETE /delete-cartitem/:cart_id
func (h *CartHandler) DeleteCartItem(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	cartID, ok := parsePathID(c, "cart_id")
	if !ok {
		return
	}

	if err := h.cartService.RemoveCartItem(userID, cartID); err != nil {
		handleServiceError(c, err)
		return
	}

	utils.MessageResponse(c, http.StatusOK, "Cart Item Removed Successfully")
}
