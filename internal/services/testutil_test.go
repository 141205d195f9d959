// internal/services/testutil_test.go
package services

import (
	"fmt"
	"testing"

	"github.com/google/uuid"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/rgsaudi/musicstore-backend/internal/config"
	"github.com/rgsaudi/musicstore-backend/internal/models"
)

// newTestDB opens a fresh in-memory database per test. The DSN is named so
// every connection in the pool sees the same database.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", uuid.NewString())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}

	err = db.AutoMigrate(
		&models.User{},
		&models.Category{},
		&models.Product{},
		&models.CartItem{},
		&models.Order{},
		&models.OrderItem{},
		&models.Review{},
		&models.Visit{},
	)
	if err != nil {
		t.Fatalf("failed to migrate test database: %v", err)
	}

	return db
}

func newTestConfig() *config.Config {
	return &config.Config{
		Environment: "test",
		Checkout: config.CheckoutConfig{
			TrackingPrefix: "rgsaudimusic_",
			MissingProduct: config.MissingProductReject,
		},
		JWT: config.JWTConfig{
			SecretKey:      "test-secret",
			AccessTokenTTL: 24,
		},
	}
}

func seedUser(t *testing.T, db *gorm.DB, email string, role models.UserRole) *models.User {
	t.Helper()

	user := &models.User{
		Name:  "Test User",
		Email: email,
		Role:  role,
	}
	if err := user.SetPassword("password123"); err != nil {
		t.Fatalf("failed to hash password: %v", err)
	}
	if err := db.Create(user).Error; err != nil {
		t.Fatalf("failed to seed user: %v", err)
	}
	return user
}

func seedCategory(t *testing.T, db *gorm.DB, slug string) *models.Category {
	t.Helper()

	category := &models.Category{
		Slug:      slug,
		Name:      slug,
		MetaTitle: slug,
		Status:    models.CatalogStatusActive,
	}
	if err := db.Create(category).Error; err != nil {
		t.Fatalf("failed to seed category: %v", err)
	}
	return category
}

func seedProduct(t *testing.T, db *gorm.DB, categoryID uuid.UUID, slug string, price float64, quantity int) *models.Product {
	t.Helper()

	product := &models.Product{
		CategoryID:   categoryID,
		Slug:         slug,
		Name:         slug,
		Description:  "test product",
		Brand:        "TestBrand",
		MetaTitle:    slug,
		SellingPrice: price,
		OriginalPrice: price + 10,
		Quantity:     quantity,
		Images:       []string{"https://example.com/" + slug + ".jpg"},
		Status:       models.CatalogStatusActive,
	}
	if err := db.Create(product).Error; err != nil {
		t.Fatalf("failed to seed product: %v", err)
	}
	return product
}

func seedCartItem(t *testing.T, db *gorm.DB, userID, productID uuid.UUID, quantity int) *models.CartItem {
	t.Helper()

	item := &models.CartItem{
		UserID:    userID,
		ProductID: productID,
		Quantity:  quantity,
	}
	if err := db.Create(item).Error; err != nil {
		t.Fatalf("failed to seed cart entry: %v", err)
	}
	return item
}
