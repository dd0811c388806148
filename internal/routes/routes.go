package routes

import (
	"log"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"gorm.io/gorm"

	"github.com/africamarket/africa-market-api/internal/cache"
	"github.com/africamarket/africa-market-api/internal/config"
	"github.com/africamarket/africa-market-api/internal/handlers"
	infraRepo "github.com/africamarket/africa-market-api/internal/infra/repository"
	"github.com/africamarket/africa-market-api/internal/mail"
	"github.com/africamarket/africa-market-api/internal/middleware"
	"github.com/africamarket/africa-market-api/internal/storage"
	ucorder "github.com/africamarket/africa-market-api/internal/usecase/order"
)

func RegisterRoutes(r *gin.Engine, db *gorm.DB, cfg *config.Config) {

	// ------------------------------
	// Infra (singletons)
	// ------------------------------
	orderRepo := infraRepo.NewOrderGormRepository(db)

	mailer := mail.NewMailer(cfg)
	dispatcher := mail.NewDispatcher(mailer)

	productCache := cache.New(cfg)

	images, err := storage.NewImageStore(cfg)
	if err != nil {
		// Uploads are optional in dev; the handler reports the gap.
		log.Printf("image storage disabled: %v", err)
		images = nil
	}

	// ------------------------------
	// Use cases
	// ------------------------------
	checkoutUC := ucorder.NewCheckout(orderRepo, dispatcher)
	updateStatusUC := ucorder.NewUpdateStatus(orderRepo, dispatcher)
	listOrdersUC := ucorder.NewListOrders(orderRepo)

	// ------------------------------
	// Handlers
	// ------------------------------
	authHandler := handlers.NewAuthHandler(db, cfg)
	productHandler := handlers.NewProductHandler(db, productCache, images)
	addressHandler := handlers.NewAddressHandler(db, orderRepo)
	orderHandler := handlers.NewOrderHandler(checkoutUC, updateStatusUC, listOrdersUC)
	userHandler := handlers.NewUserHandler(db)
	contactHandler := handlers.NewContactHandler(db)
	bookingHandler := handlers.NewBookingHandler(db)

	// ------------------------------
	// Observability
	// ------------------------------
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// ------------------------------
	// API (JSON)
	// ------------------------------
	api := r.Group("/api")
	{
		// Public
		api.POST("/auth/register", authHandler.Register)
		api.POST("/auth/login", authHandler.Login)
		api.POST("/auth/logout", authHandler.Logout)

		api.GET("/products", productHandler.List)
		api.GET("/products/:id", productHandler.Get)

		api.POST("/contact", contactHandler.Create)
		api.POST("/bookings", bookingHandler.Create)

		// Authenticated users
		auth := api.Group("/")
		auth.Use(middleware.AuthMiddleware(cfg, db))
		{
			auth.GET("/auth/me", authHandler.Me)

			user := auth.Group("/user")
			{
				user.GET("/addresses", addressHandler.List)
				user.POST("/addresses", addressHandler.Create)
				user.PUT("/addresses/:id", addressHandler.Update)
				user.DELETE("/addresses/:id", addressHandler.Delete)
				user.PUT("/addresses/:id/default", addressHandler.SetDefault)

				user.POST("/checkout", orderHandler.Checkout)
				user.GET("/orders", orderHandler.ListMine)
				user.GET("/orders/:id", orderHandler.GetMine)
			}

			// Back office
			admin := auth.Group("/admin")
			admin.Use(middleware.AdminOnly())
			{
				admin.GET("/products", productHandler.List)
				admin.GET("/products/:id", productHandler.Get)
				admin.POST("/products", productHandler.Create)
				admin.PUT("/products/:id", productHandler.Update)
				admin.DELETE("/products/:id", productHandler.Delete)
				admin.POST("/products/:id/image", productHandler.UploadImage)

				admin.GET("/users", userHandler.List)
				admin.GET("/users/:id", userHandler.Get)
				admin.PUT("/users/:id/password", userHandler.UpdatePassword)
				admin.PUT("/users/:id/toggle-active", userHandler.ToggleActive)

				admin.GET("/orders", orderHandler.ListAll)
				admin.GET("/orders/:id", orderHandler.Get)
				admin.PUT("/orders/:id/status", orderHandler.UpdateStatus)

				admin.GET("/contacts", contactHandler.List)
				admin.DELETE("/contacts/:id", contactHandler.Delete)

				admin.GET("/bookings", bookingHandler.List)
				admin.DELETE("/bookings/:id", bookingHandler.Delete)
			}
		}
	}
}
