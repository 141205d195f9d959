// internal/router/router.go
package router

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/rgsaudi/musicstore-backend/internal/config"
	"github.com/rgsaudi/musicstore-backend/internal/handlers"
	"github.com/rgsaudi/musicstore-backend/internal/middleware"
	"github.com/rgsaudi/musicstore-backend/internal/services"
	"github.com/rgsaudi/musicstore-backend/internal/utils"
)

func Initialize(db *gorm.DB, cfg *config.Config) (*gin.Engine, error) {
	// Initialize services
	storageService, err := services.NewStorageService(cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize storage: %w", err)
	}

	authService := services.NewAuthService(db, cfg)
	catalogService := services.NewCatalogService(db)
	categoryService := services.NewCategoryService(db, storageService)
	productService := services.NewProductService(db, storageService)
	cartService := services.NewCartService(db)
	checkoutService := services.NewCheckoutService(db, cfg)
	paymentService := services.NewPaymentService(db, cfg)
	orderService := services.NewOrderService(db)
	reviewService := services.NewReviewService(db)
	visitService := services.NewVisitService(db)

	// Initialize handlers
	authHandler := handlers.NewAuthHandler(authService)
	catalogHandler := handlers.NewCatalogHandler(catalogService)
	categoryHandler := handlers.NewCategoryHandler(categoryService)
	productHandler := handlers.NewProductHandler(productService, storageService)
	cartHandler := handlers.NewCartHandler(cartService)
	checkoutHandler := handlers.NewCheckoutHandler(checkoutService, paymentService)
	orderHandler := handlers.NewOrderHandler(orderService)
	reviewHandler := handlers.NewReviewHandler(reviewService)
	visitHandler := handlers.NewVisitHandler(visitService)

	// Set JWT secret
	utils.SetJWTSecret(cfg.JWT.SecretKey)

	// Initialize Gin router
	r := gin.New()

	// Global middleware
	r.Use(gin.Recovery())
	r.Use(middleware.RequestLogger())
	r.Use(middleware.CORS(cfg.Frontend.BaseURL))
	r.Use(middleware.GeneralRateLimit())

	// Health check
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":  "healthy",
			"version": "1.0.0",
		})
	})

	api := r.Group("/api")
	{
		// Authentication routes
		auth := api.Group("")
		auth.Use(middleware.AuthRateLimit())
		{
			auth.POST("/register", authHandler.Register)
			auth.POST("/login", authHandler.Login)
		}

		// Public storefront routes
		api.GET("/getCategory", catalogHandler.GetCategories)
		api.GET("/fetchProduct/:slug", catalogHandler.FetchProduct)
		api.GET("/viewProductDetail/:category_slug/:product_slug", catalogHandler.ViewProductDetail)
		api.GET("/viewAllProducts", catalogHandler.ViewAllProducts)
		api.GET("/products-search", catalogHandler.Search)
		api.GET("/getreviews", reviewHandler.GetProductsWithReviews)
		api.POST("/visitors", visitHandler.RecordVisit)

		// Authenticated customer routes
		protected := api.Group("")
		protected.Use(middleware.AuthRequired())
		{
			protected.POST("/logout", authHandler.Logout)
			protected.GET("/profile", authHandler.GetProfile)

			protected.POST("/add-to-cart", cartHandler.AddToCart)
			protected.GET("/cart", cartHandler.ViewCart)
			protected.PUT("/cart-update-quantity/:cart_id/:scope", cartHandler.UpdateQuantity)
			protected.DELETE("/delete-cartitem/:cart_id", cartHandler.DeleteCartItem)

			protected.POST("/validate-order", checkoutHandler.ValidateOrder)
			protected.POST("/place-order", checkoutHandler.PlaceOrder)
			protected.GET("/vieworders", orderHandler.GetUserOrders)

			protected.POST("/addreview", reviewHandler.AddReview)
		}

		// Admin routes
		admin := api.Group("/admin")
		admin.Use(middleware.AuthRequired(), middleware.AdminRequired())
		{
			admin.POST("/store-category", categoryHandler.CreateCategory)
			admin.GET("/view-category", categoryHandler.GetCategories)
			admin.GET("/edit-category/:id", categoryHandler.GetCategory)
			admin.PUT("/update-category/:id", categoryHandler.UpdateCategory)
			admin.DELETE("/delete-category/:id", categoryHandler.DeleteCategory)

			admin.POST("/store-product", productHandler.CreateProduct)
			admin.GET("/view-product", productHandler.GetProducts)
			admin.GET("/edit-product/:id", productHandler.GetProduct)
			admin.PUT("/update-product/:id", productHandler.UpdateProduct)
			admin.DELETE("/delete-product/:id", productHandler.DeleteProduct)
			admin.POST("/upload-product-images", middleware.UploadRateLimit(), productHandler.UploadImages)

			admin.GET("/orders", orderHandler.GetOrders)
			admin.GET("/vieworder/:id", orderHandler.GetOrder)
			admin.PUT("/updateorder/:id", orderHandler.UpdateOrder)
			admin.GET("/orderitems", orderHandler.GetOrdersWithItems)
			admin.PUT("/updatenotif/:id", orderHandler.MarkNotificationRead)

			admin.GET("/visitors", visitHandler.GetVisitStats)
		}
	}

	return r, nil
}
