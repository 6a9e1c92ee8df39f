package routes

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"gorm.io/gorm"

	"github.com/SweetDelights01/bakery-storefront/internal/audit"
	"github.com/SweetDelights01/bakery-storefront/internal/config"
	"github.com/SweetDelights01/bakery-storefront/internal/handlers"
	infraRepo "github.com/SweetDelights01/bakery-storefront/internal/infra/repository"
	"github.com/SweetDelights01/bakery-storefront/internal/middleware"
	"github.com/SweetDelights01/bakery-storefront/internal/service/cart"
	"github.com/SweetDelights01/bakery-storefront/internal/storage"
	"github.com/SweetDelights01/bakery-storefront/internal/timezone"
	ucAvailability "github.com/SweetDelights01/bakery-storefront/internal/usecase/availability"
	ucOrder "github.com/SweetDelights01/bakery-storefront/internal/usecase/order"
)

func RegisterRoutes(r *gin.Engine, db *gorm.DB, rdb *redis.Client, cfg *config.Config) {

	// ======================================================
	// 🌍 GLOBAL MIDDLEWARE
	// ======================================================
	r.Use(middleware.CORSMiddleware())

	// ======================================================
	// 🔧 INFRA (SINGLETONS)
	// ======================================================
	loc := timezone.Location(cfg.BakeryTimezone)

	orderRepo := infraRepo.NewOrderGormRepository(db)

	auditLogger := audit.New(db)
	auditDispatcher := audit.NewDispatcher(auditLogger)

	cartStore := cart.NewRedisStore(rdb, time.Duration(cfg.CartTTLHours)*time.Hour)
	cartService := cart.NewService(cartStore)

	uploader := storage.NewUploader(cfg)

	// ======================================================
	// 🧠 USE CASES
	// ======================================================
	getAvailabilityUC := ucAvailability.NewGetAvailability(orderRepo, loc)
	getAvailabilityRangeUC := ucAvailability.NewGetAvailabilityRange(getAvailabilityUC, loc)

	createOrderUC := ucOrder.NewCreateOrder(
		orderRepo,
		auditDispatcher,
		loc,
		cfg.MinLeadDays,
	)

	changeStatusUC := ucOrder.NewChangeStatus(
		orderRepo,
		auditDispatcher,
		loc,
	)

	// ======================================================
	// 🧩 HANDLERS
	// ======================================================
	productHandler := handlers.NewProductHandler(db)
	reviewHandler := handlers.NewReviewHandler(db)
	wishlistHandler := handlers.NewWishlistHandler(db)
	cartHandler := handlers.NewCartHandler(db, cartService)
	availabilityHandler := handlers.NewAvailabilityHandler(getAvailabilityUC, getAvailabilityRangeUC)
	orderHandler := handlers.NewOrderHandler(orderRepo, createOrderUC, changeStatusUC)
	uploadHandler := handlers.NewUploadHandler(db, uploader)
	orderEventsHandler := handlers.NewOrderEventsHandler(db)

	// ======================================================
	// 🌐 API (JSON)
	// ======================================================
	api := r.Group("/api")
	{
		// ------------------------------
		// 🧁 CATALOG
		// ------------------------------
		api.GET("/products", productHandler.List)
		api.GET("/products/:id", productHandler.Get)

		api.GET("/products/:id/reviews", reviewHandler.ListByProduct)
		api.POST("/products/:id/reviews", reviewHandler.Create)
		api.PATCH("/reviews/:reviewId", reviewHandler.Update)
		api.DELETE("/reviews/:reviewId", reviewHandler.Delete)

		// ------------------------------
		// 💝 WISHLIST
		// ------------------------------
		api.GET("/wishlist", wishlistHandler.List)
		api.POST("/wishlist", wishlistHandler.Add)
		api.DELETE("/wishlist/:productId", wishlistHandler.Remove)
		api.DELETE("/wishlist", wishlistHandler.Clear)

		// ------------------------------
		// 🛒 CART
		// ------------------------------
		api.POST("/cart", cartHandler.Create)
		api.GET("/cart", cartHandler.Get)
		api.POST("/cart/items", cartHandler.AddItem)
		api.PATCH("/cart/items", cartHandler.UpdateItem)
		api.DELETE("/cart/items/:productId", cartHandler.RemoveItem)
		api.DELETE("/cart", cartHandler.Clear)

		// ------------------------------
		// 📅 AVAILABILITY
		// ------------------------------
		api.GET("/availability", availabilityHandler.GetDay)
		api.GET("/availability/range", availabilityHandler.GetRange)

		// ------------------------------
		// 📦 ORDERS
		// ------------------------------
		api.POST("/orders", orderHandler.Create)
		api.GET("/orders/:number", orderHandler.GetByNumber)

		// ------------------------------
		// 🛠 ADMIN
		// ------------------------------
		admin := api.Group("/admin")
		{
			admin.POST("/products", productHandler.Create)
			admin.PATCH("/products/:id", productHandler.Update)
			admin.DELETE("/products/:id", productHandler.Delete)
			admin.POST("/products/:id/images", uploadHandler.UploadProductImage)

			admin.GET("/orders", orderHandler.ListByDate)
			admin.PATCH("/orders/:id/confirm", orderHandler.Confirm)
			admin.PATCH("/orders/:id/complete", orderHandler.Complete)
			admin.PATCH("/orders/:id/cancel", orderHandler.Cancel)

			admin.GET("/order-events", orderEventsHandler.List)
		}
	}
}
