package routes

import (
	"github.com/omarionnn/BigOrders/configs"
	"github.com/omarionnn/BigOrders/controllers"
	"github.com/omarionnn/BigOrders/middlewares"
	"github.com/omarionnn/BigOrders/repository"
	"github.com/omarionnn/BigOrders/services"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func RegisterRoutes(r *gin.Engine, db *gorm.DB, cfg *configs.Config) {
	r.GET("/health", func(c *gin.Context) { c.JSON(200, gin.H{"success": true}) })

	// Repositories
	userRepo := repository.NewUserRepository(db)
	restRepo := repository.NewRestaurantRepository(db)
	orderRepo := repository.NewOrderRepository(db)

	// Services
	authSvc := services.NewAuthService(userRepo, cfg.JWTSecret, cfg.JWTTTL)
	profileSvc := services.NewProfileService(userRepo)
	restSvc := services.NewRestaurantService(restRepo)
	orderSvc := services.NewOrderService(db, orderRepo, restRepo)

	// Controllers
	authCtrl := controllers.NewAuthController(authSvc)
	profileCtrl := controllers.NewProfileController(profileSvc)
	restCtrl := controllers.NewRestaurantController(restSvc)
	orderCtrl := controllers.NewOrderController(orderSvc)

	authed := middlewares.AuthMiddleware(cfg.JWTSecret)
	api := r.Group("/api")

	// Auth
	a := api.Group("/auth")
	{
		a.POST("/register", authCtrl.Register)
		a.POST("/login", authCtrl.Login)
		a.GET("/me", authed, authCtrl.Me)
	}

	// Restaurants (public)
	rest := api.Group("/restaurants")
	{
		rest.GET("", restCtrl.List)
		rest.GET("/search", restCtrl.Search)
		rest.GET("/recommendations", restCtrl.Recommendations)
		rest.GET("/:id", restCtrl.Detail)
	}

	// Orders (require login)
	orders := api.Group("/orders", authed)
	{
		orders.POST("", orderCtrl.Create)
		orders.POST("/join", orderCtrl.Join)
		orders.GET("", orderCtrl.ListForMe)
		orders.GET("/:orderId", orderCtrl.Detail)
		orders.PUT("/:orderId/items", orderCtrl.UpdateItems)
		orders.GET("/:orderId/receipt", orderCtrl.Receipt)
	}

	// Profile (require login)
	profile := api.Group("/profile", authed)
	{
		profile.GET("", profileCtrl.Get)
		profile.PUT("", profileCtrl.Update)
		profile.GET("/taste", profileCtrl.GetTaste)
		profile.PUT("/taste", profileCtrl.UpdateTaste)
	}
}
