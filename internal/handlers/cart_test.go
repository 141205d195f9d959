// internal/handlers/cart_test.go
package handlers

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"gorm.io/gorm"

	"github.com/rgsaudi/musicstore-backend/internal/middleware"
	"github.com/rgsaudi/musicstore-backend/internal/models"
	"github.com/rgsaudi/musicstore-backend/internal/services"
	"github.com/rgsaudi/musicstore-backend/internal/utils"
)

type CartHandlerTestSuite struct {
	suite.Suite
	db      *gorm.DB
	router  *gin.Engine
	user    *models.User
	product *models.Product
}

func (suite *CartHandlerTestSuite) SetupTest() {
	suite.db = newTestDB(suite.T())
	cfg := newTestConfig()
	utils.SetJWTSecret(cfg.JWT.SecretKey)

	cartService := services.NewCartService(suite.db)
	cartHandler := NewCartHandler(cartService)

	suite.router = gin.New()
	protected := suite.router.Group("")
	protected.Use(middleware.AuthRequired())
	{
		protected.POST("/add-to-cart", cartHandler.AddToCart)
		protected.GET("/cart", cartHandler.ViewCart)
		protected.PUT("/cart-update-quantity/:cart_id/:scope", cartHandler.UpdateQuantity)
		protected.DELETE("/delete-cartitem/:cart_id", cartHandler.DeleteCartItem)
	}

	suite.user = createUser(suite.T(), suite.db, "buyer@example.com", models.UserRoleCustomer)

	category := &models.Category{Slug: "pedals", Name: "Pedals", Status: models.CatalogStatusActive}
	require.NoError(suite.T(), suite.db.Create(category).Error)
	suite.product = &models.Product{
		CategoryID:    category.ID,
		Slug:          "overdrive-pedal",
		Name:          "Overdrive Pedal",
		Brand:         "TestBrand",
		SellingPrice:  45.00,
		OriginalPrice: 60.00,
		Quantity:      5,
		Images:        []string{"https://example.com/pedal.jpg"},
		Status:        models.CatalogStatusActive,
	}
	require.NoError(suite.T(), suite.db.Create(suite.product).Error)
}

func (suite *CartHandlerTestSuite) TestAddToCartRequiresAuth() {
	req := jsonRequest(suite.T(), http.MethodPost, "/add-to-cart", gin.H{
		"product_id":       suite.product.ID,
		"product_quantity": 1,
	})

	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	assert.Equal(suite.T(), http.StatusUnauthorized, w.Code)
	body := decodeBody(suite.T(), w)
	assert.Equal(suite.T(), "Login to Continue", body["message"])
}

func (suite *CartHandlerTestSuite) TestAddToCart() {
	req := jsonRequest(suite.T(), http.MethodPost, "/add-to-cart", gin.H{
		"product_id":       suite.product.ID,
		"product_quantity": 2,
	})
	req.Header.Set("Authorization", bearerToken(suite.T(), suite.user))

	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	assert.Equal(suite.T(), http.StatusCreated, w.Code)
	body := decodeBody(suite.T(), w)
	assert.Equal(suite.T(), "Added to Cart", body["message"])
}

func (suite *CartHandlerTestSuite) TestAddToCartDuplicateConflicts() {
	entry := &models.CartItem{UserID: suite.user.ID, ProductID: suite.product.ID, Quantity: 1}
	require.NoError(suite.T(), suite.db.Create(entry).Error)

	req := jsonRequest(suite.T(), http.MethodPost, "/add-to-cart", gin.H{
		"product_id":       suite.product.ID,
		"product_quantity": 1,
	})
	req.Header.Set("Authorization", bearerToken(suite.T(), suite.user))

	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	assert.Equal(suite.T(), http.StatusConflict, w.Code)
	body := decodeBody(suite.T(), w)
	assert.Equal(suite.T(), "Overdrive Pedal - Already Added to Cart", body["message"])
}

func (suite *CartHandlerTestSuite) TestAddToCartValidation() {
	req := jsonRequest(suite.T(), http.MethodPost, "/add-to-cart", gin.H{})
	req.Header.Set("Authorization", bearerToken(suite.T(), suite.user))

	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	assert.Equal(suite.T(), http.StatusUnprocessableEntity, w.Code)
	body := decodeBody(suite.T(), w)
	require.Contains(suite.T(), body, "errors")
	errs := body["errors"].(map[string]interface{})
	assert.Contains(suite.T(), errs, "product_id")
	assert.Contains(suite.T(), errs, "product_quantity")
}

func (suite *CartHandlerTestSuite) TestDecrementFloorReturnsBadRequest() {
	entry := &models.CartItem{UserID: suite.user.ID, ProductID: suite.product.ID, Quantity: 1}
	require.NoError(suite.T(), suite.db.Create(entry).Error)

	req := jsonRequest(suite.T(), http.MethodPut,
		"/cart-update-quantity/"+entry.ID.String()+"/dec", nil)
	req.Header.Set("Authorization", bearerToken(suite.T(), suite.user))

	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	assert.Equal(suite.T(), http.StatusBadRequest, w.Code)
	body := decodeBody(suite.T(), w)
	assert.Equal(suite.T(), "Quantity cannot be less than 1", body["message"])
}

func (suite *CartHandlerTestSuite) TestInvalidScopeReturnsBadRequest() {
	entry := &models.CartItem{UserID: suite.user.ID, ProductID: suite.product.ID, Quantity: 2}
	require.NoError(suite.T(), suite.db.Create(entry).Error)

	req := jsonRequest(suite.T(), http.MethodPut,
		"/cart-update-quantity/"+entry.ID.String()+"/double", nil)
	req.Header.Set("Authorization", bearerToken(suite.T(), suite.user))

	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	assert.Equal(suite.T(), http.StatusBadRequest, w.Code)
}

func (suite *CartHandlerTestSuite) TestDeleteCartItem() {
	entry := &models.CartItem{UserID: suite.user.ID, ProductID: suite.product.ID, Quantity: 2}
	require.NoError(suite.T(), suite.db.Create(entry).Error)

	req := jsonRequest(suite.T(), http.MethodDelete, "/delete-cartitem/"+entry.ID.String(), nil)
	req.Header.Set("Authorization", bearerToken(suite.T(), suite.user))

	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	assert.Equal(suite.T(), http.StatusOK, w.Code)
	body := decodeBody(suite.T(), w)
	assert.Equal(suite.T(), "Cart Item Removed Successfully", body["message"])
}

func TestCartHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(CartHandlerTestSuite))
}
