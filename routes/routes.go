package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/PedroHenrico2002/Projeto-Ale-sub000/configs"
	"github.com/PedroHenrico2002/Projeto-Ale-sub000/controllers"
	"github.com/PedroHenrico2002/Projeto-Ale-sub000/middlewares"
	"github.com/PedroHenrico2002/Projeto-Ale-sub000/repository"
	"github.com/PedroHenrico2002/Projeto-Ale-sub000/services"
	"github.com/PedroHenrico2002/Projeto-Ale-sub000/ws"
)

func RegisterRoutes(r *gin.Engine, cfg *configs.Config, colls *repository.Collections) {
	r.GET("/health", func(c *gin.Context) { c.JSON(200, gin.H{"ok": true}) })

	// Services
	authSvc := services.NewAuthService(colls, cfg.JWTSecret, cfg.JWTTTL)
	restSvc := services.NewRestaurantService(colls)
	menuSvc := services.NewMenuService(colls)
	catSvc := services.NewCategoryService(colls)
	userSvc := services.NewUserService(colls)
	cartSvc := services.NewCartService(colls)
	orderSvc := services.NewOrderService(colls, cartSvc)
	addrSvc := services.NewAddressService(colls)
	paySvc := services.NewPaymentService(colls)
	favSvc := services.NewFavoriteService(colls)

	// Live tracking
	hub := ws.NewTrackingHub(orderSvc)
	orderSvc.Notifier = hub
	go hub.Run()

	// Controllers
	authCtrl := controllers.NewAuthController(authSvc, cfg.UploadDir)
	restCtrl := controllers.NewRestaurantController(restSvc, menuSvc)
	menuCtrl := controllers.NewMenuController(menuSvc)
	catCtrl := controllers.NewCategoryController(catSvc)
	cartCtrl := controllers.NewCartController(cartSvc)
	orderCtrl := controllers.NewOrderController(orderSvc, cartSvc, cfg.PublicBase)
	addrCtrl := controllers.NewAddressController(addrSvc)
	payCtrl := controllers.NewPaymentController(paySvc)
	favCtrl := controllers.NewFavoriteController(favSvc)
	uploadCtrl := controllers.NewUploadController(cfg.UploadDir, cfg.PublicBase)
	adminCtrl := controllers.NewAdminController(restSvc, menuSvc, catSvc, userSvc, orderSvc)

	// Auth (public)
	a := r.Group("/auth")
	{
		a.POST("/register", authCtrl.Register)
		a.POST("/login", authCtrl.Login)
	}

	// Auth (protected)
	aAuth := a.Group("", middlewares.AuthMiddleware(cfg.JWTSecret))
	{
		aAuth.GET("/me", authCtrl.Me)
		aAuth.PATCH("/me", authCtrl.UpdateMe)
		aAuth.POST("/me/avatar", authCtrl.UploadAvatar)
		aAuth.DELETE("/me", authCtrl.DeleteAccount)
	}

	// Public catalog
	r.GET("/restaurants", restCtrl.List)
	r.GET("/restaurants/:id", restCtrl.Detail)
	r.GET("/restaurants/:id/menu", menuCtrl.ListByRestaurant)
	r.GET("/menu-items/:id", menuCtrl.Detail)
	r.GET("/categories", catCtrl.List)

	// Customer (authenticated)
	u := r.Group("/", middlewares.AuthMiddleware(cfg.JWTSecret))
	{
		u.GET("/cart", cartCtrl.Get)
		u.POST("/cart/items", cartCtrl.Add)
		u.PATCH("/cart/items/:itemId", cartCtrl.UpdateQuantity)
		u.DELETE("/cart/items/:itemId", cartCtrl.RemoveItem)
		u.DELETE("/cart", cartCtrl.Clear)

		u.POST("/checkout/promo", orderCtrl.ValidatePromo)
		u.GET("/checkout/summary", orderCtrl.Summary)

		u.POST("/orders", orderCtrl.Place)
		u.GET("/orders", orderCtrl.List)
		u.GET("/orders/:id", orderCtrl.Detail)
		u.POST("/orders/:id/rating", orderCtrl.Rate)
		u.GET("/orders/:id/qr", orderCtrl.TrackingQR)

		u.GET("/addresses", addrCtrl.List)
		u.POST("/addresses", addrCtrl.Create)
		u.PATCH("/addresses/:id", addrCtrl.Update)
		u.PATCH("/addresses/:id/default", addrCtrl.SetDefault)
		u.DELETE("/addresses/:id", addrCtrl.Delete)

		u.GET("/payment-methods", payCtrl.List)
		u.POST("/payment-methods", payCtrl.Create)
		u.PATCH("/payment-methods/:id/default", payCtrl.SetDefault)
		u.DELETE("/payment-methods/:id", payCtrl.Delete)

		u.GET("/favorites", favCtrl.List)
		u.POST("/favorites/:restaurantId", favCtrl.Toggle)

		u.POST("/uploads", uploadCtrl.Upload)
	}

	// Live order tracking; token comes via query string for browsers
	r.GET("/ws/orders/:id", middlewares.WSAuthMiddleware(cfg.JWTSecret), hub.HandleWebSocket)

	// Admin panel
	admin := r.Group("/admin", middlewares.AuthMiddleware(cfg.JWTSecret, "admin"))
	{
		admin.POST("/restaurants", adminCtrl.CreateRestaurant)
		admin.PATCH("/restaurants/:id", adminCtrl.UpdateRestaurant)
		admin.DELETE("/restaurants/:id", adminCtrl.DeleteRestaurant)

		admin.POST("/menu-items", adminCtrl.CreateMenuItem)
		admin.PATCH("/menu-items/:id", adminCtrl.UpdateMenuItem)
		admin.DELETE("/menu-items/:id", adminCtrl.DeleteMenuItem)

		admin.POST("/categories", adminCtrl.CreateCategory)
		admin.PATCH("/categories/:id", adminCtrl.UpdateCategory)
		admin.DELETE("/categories/:id", adminCtrl.DeleteCategory)

		admin.GET("/users", adminCtrl.ListUsers)
		admin.PATCH("/users/:id/role", adminCtrl.SetUserRole)
		admin.GET("/orders", adminCtrl.ListOrders)
		admin.PATCH("/orders/:id/advance", adminCtrl.AdvanceOrder)
	}
}
