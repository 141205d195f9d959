// internal/services/checkout_service_test.go
package services

import (
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"gorm.io/gorm"

	"github.com/rgsaudi/musicstore-backend/internal/config"
	"github.com/rgsaudi/musicstore-backend/internal/models"
)

type CheckoutServiceTestSuite struct {
	suite.Suite
	db      *gorm.DB
	cfg     *config.Config
	service *CheckoutService
	user    *models.User
	guitar  *models.Product
	drum    *models.Product
	cart1   *models.CartItem
	cart2   *models.CartItem
}

func (suite *CheckoutServiceTestSuite) SetupTest() {
	suite.db = newTestDB(suite.T())
	suite.cfg = newTestConfig()
	suite.service = NewCheckoutService(suite.db, suite.cfg)

	suite.user = seedUser(suite.T(), suite.db, "buyer@example.com", models.UserRoleCustomer)
	category := seedCategory(suite.T(), suite.db, "guitars")
	suite.guitar = seedProduct(suite.T(), suite.db, category.ID, "stratocaster", 100.00, 5)
	suite.drum = seedProduct(suite.T(), suite.db, category.ID, "snare-drum", 50.00, 3)
	suite.cart1 = seedCartItem(suite.T(), suite.db, suite.user.ID, suite.guitar.ID, 2)
	suite.cart2 = seedCartItem(suite.T(), suite.db, suite.user.ID, suite.drum.ID, 1)
}

func (suite *CheckoutServiceTestSuite) placeOrderRequest(lines ...OrderLineRequest) *PlaceOrderRequest {
	return &PlaceOrderRequest{
		Firstname:   "Jamie",
		Lastname:    "Doe",
		Phone:       "0551234567",
		Email:       "buyer@example.com",
		Address:     "12 Main St",
		City:        "Riyadh",
		State:       "Riyadh",
		Zipcode:     "11564",
		PaymentMode: models.PaymentModeCOD,
		OrderItems:  lines,
	}
}

func (suite *CheckoutServiceTestSuite) TestPlaceOrderSuccess() {
	req := suite.placeOrderRequest(OrderLineRequest{
		CartID:    suite.cart1.ID,
		ProductID: suite.guitar.ID,
		Quantity:  2,
		Price:     1.00, // client-submitted price must be ignored
	})

	result, err := suite.service.PlaceOrder(suite.user.ID, req)
	require.NoError(suite.T(), err)
	require.NotNil(suite.T(), result.Order)

	assert.Equal(suite.T(), models.OrderStatusPlaced, result.Order.Status)
	assert.True(suite.T(), strings.HasPrefix(result.Order.TrackingNo, "rgsaudimusic_"))
	assert.Empty(suite.T(), result.SkippedProducts)

	// Line price comes from the product's current selling price.
	require.Len(suite.T(), result.Order.OrderItems, 1)
	assert.Equal(suite.T(), 100.00, result.Order.OrderItems[0].Price)
	assert.Equal(suite.T(), 2, result.Order.OrderItems[0].Quantity)

	// Stock decremented from 5 to 3.
	var product models.Product
	require.NoError(suite.T(), suite.db.First(&product, "id = ?", suite.guitar.ID).Error)
	assert.Equal(suite.T(), 3, product.Quantity)

	// The ordered cart entry is gone, the other survives.
	var remaining []models.CartItem
	require.NoError(suite.T(), suite.db.Where("user_id = ?", suite.user.ID).Find(&remaining).Error)
	require.Len(suite.T(), remaining, 1)
	assert.Equal(suite.T(), suite.cart2.ID, remaining[0].ID)
}

func (suite *CheckoutServiceTestSuite) TestPlaceOrderMultipleLines() {
	req := suite.placeOrderRequest(
		OrderLineRequest{CartID: suite.cart1.ID, ProductID: suite.guitar.ID, Quantity: 2, Price: 100},
		OrderLineRequest{CartID: suite.cart2.ID, ProductID: suite.drum.ID, Quantity: 1, Price: 50},
	)

	result, err := suite.service.PlaceOrder(suite.user.ID, req)
	require.NoError(suite.T(), err)
	require.Len(suite.T(), result.Order.OrderItems, 2)

	var count int64
	suite.db.Model(&models.CartItem{}).Where("user_id = ?", suite.user.ID).Count(&count)
	assert.Zero(suite.T(), count)
}

func (suite *CheckoutServiceTestSuite) TestPlaceOrderInsufficientStockRollsBack() {
	req := suite.placeOrderRequest(
		OrderLineRequest{CartID: suite.cart1.ID, ProductID: suite.guitar.ID, Quantity: 2, Price: 100},
		OrderLineRequest{CartID: suite.cart2.ID, ProductID: suite.drum.ID, Quantity: 10, Price: 50},
	)

	_, err := suite.service.PlaceOrder(suite.user.ID, req)

	var stockErr *InsufficientStockError
	require.ErrorAs(suite.T(), err, &stockErr)
	assert.Equal(suite.T(), suite.drum.ID, stockErr.ProductID)
	assert.Equal(suite.T(), 10, stockErr.Requested)
	assert.Equal(suite.T(), 3, stockErr.Available)

	// The guitar decrement from the first line must have rolled back.
	var product models.Product
	require.NoError(suite.T(), suite.db.First(&product, "id = ?", suite.guitar.ID).Error)
	assert.Equal(suite.T(), 5, product.Quantity)

	// No order, no order items, cart untouched.
	var orders int64
	suite.db.Model(&models.Order{}).Count(&orders)
	assert.Zero(suite.T(), orders)

	var cartEntries int64
	suite.db.Model(&models.CartItem{}).Where("user_id = ?", suite.user.ID).Count(&cartEntries)
	assert.Equal(suite.T(), int64(2), cartEntries)
}

func (suite *CheckoutServiceTestSuite) TestPlaceOrderMissingProductRejected() {
	req := suite.placeOrderRequest(OrderLineRequest{
		CartID:    suite.cart1.ID,
		ProductID: uuid.New(),
		Quantity:  1,
		Price:     100,
	})

	_, err := suite.service.PlaceOrder(suite.user.ID, req)

	var notFound *NotFoundError
	require.ErrorAs(suite.T(), err, &notFound)
	assert.Equal(suite.T(), "product", notFound.Resource)
}

func (suite *CheckoutServiceTestSuite) TestPlaceOrderMissingProductSkipped() {
	suite.cfg.Checkout.MissingProduct = config.MissingProductSkip

	missingID := uuid.New()
	req := suite.placeOrderRequest(
		OrderLineRequest{CartID: suite.cart1.ID, ProductID: suite.guitar.ID, Quantity: 1, Price: 100},
		OrderLineRequest{CartID: uuid.New(), ProductID: missingID, Quantity: 1, Price: 10},
	)

	result, err := suite.service.PlaceOrder(suite.user.ID, req)
	require.NoError(suite.T(), err)

	require.Len(suite.T(), result.Order.OrderItems, 1)
	assert.Equal(suite.T(), suite.guitar.ID, result.Order.OrderItems[0].ProductID)
	require.Len(suite.T(), result.SkippedProducts, 1)
	assert.Equal(suite.T(), missingID, result.SkippedProducts[0])
}

func (suite *CheckoutServiceTestSuite) TestPlaceOrderAllLinesSkippedFails() {
	suite.cfg.Checkout.MissingProduct = config.MissingProductSkip

	req := suite.placeOrderRequest(OrderLineRequest{
		CartID:    uuid.New(),
		ProductID: uuid.New(),
		Quantity:  1,
		Price:     10,
	})

	_, err := suite.service.PlaceOrder(suite.user.ID, req)

	var notFound *NotFoundError
	require.ErrorAs(suite.T(), err, &notFound)
}

func (suite *CheckoutServiceTestSuite) TestPlaceOrderDoesNotTouchOtherUsersCart() {
	other := seedUser(suite.T(), suite.db, "other@example.com", models.UserRoleCustomer)
	otherEntry := seedCartItem(suite.T(), suite.db, other.ID, suite.guitar.ID, 1)

	// Forged cart_id pointing at another user's entry.
	req := suite.placeOrderRequest(OrderLineRequest{
		CartID:    otherEntry.ID,
		ProductID: suite.guitar.ID,
		Quantity:  1,
		Price:     100,
	})

	_, err := suite.service.PlaceOrder(suite.user.ID, req)
	require.NoError(suite.T(), err)

	var count int64
	suite.db.Model(&models.CartItem{}).Where("user_id = ?", other.ID).Count(&count)
	assert.Equal(suite.T(), int64(1), count)
}

func TestCheckoutServiceTestSuite(t *testing.T) {
	suite.Run(t, new(CheckoutServiceTestSuite))
}
