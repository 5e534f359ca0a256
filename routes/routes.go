package routes

import (
	"backend/cart"
	"backend/configs"
	"backend/controllers"
	"backend/middlewares"
	"backend/repository"
	"backend/services"
	"backend/ws"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"gorm.io/gorm"
)

func RegisterRoutes(r *gin.Engine, db *gorm.DB, cfg *configs.Config, hub *ws.Hub) {
	r.GET("/health", func(c *gin.Context) { c.JSON(200, gin.H{"ok": true}) })
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// Repositories
	itemRepo := repository.NewItemRepository(db)
	categoryRepo := repository.NewCategoryRepository(db)
	customerRepo := repository.NewCustomerRepository(db)
	tableRepo := repository.NewTableRepository(db)
	orderRepo := repository.NewOrderRepository(db)
	supplierRepo := repository.NewSupplierRepository(db)
	purchaseRepo := repository.NewPurchaseRepository(db)
	reportRepo := repository.NewReportRepository(db)
	userRepo := repository.NewUserRepository(db)

	// In-memory terminal sessions
	registry := cart.NewRegistry()

	payments := services.NewPaymentClient(cfg.PaymentAPIBase, cfg.PaymentAPIKey)

	// Services
	cartSvc := services.NewCartService(registry, itemRepo, cfg.TaxRateBp)
	orderSvc := services.NewOrderService(db, registry, orderRepo, tableRepo, payments, hub, cfg.TaxRateBp)
	itemSvc := services.NewItemService(itemRepo, categoryRepo)
	categorySvc := services.NewCategoryService(categoryRepo)
	customerSvc := services.NewCustomerService(customerRepo)
	tableSvc := services.NewTableService(tableRepo)
	supplierSvc := services.NewSupplierService(supplierRepo)
	purchaseSvc := services.NewPurchaseService(db, purchaseRepo, supplierRepo, itemRepo)
	reportSvc := services.NewReportService(reportRepo)
	userSvc := services.NewUserService(userRepo)

	// Controllers
	cartCtrl := controllers.NewCartController(cartSvc)
	orderCtrl := controllers.NewOrderController(orderSvc)
	itemCtrl := controllers.NewItemController(itemSvc)
	categoryCtrl := controllers.NewCategoryController(categorySvc)
	customerCtrl := controllers.NewCustomerController(customerSvc)
	tableCtrl := controllers.NewTableController(tableSvc)
	supplierCtrl := controllers.NewSupplierController(supplierSvc)
	purchaseCtrl := controllers.NewPurchaseController(purchaseSvc)
	reportCtrl := controllers.NewReportController(reportSvc)
	userCtrl := controllers.NewUserController(userSvc)

	// Public menu browsing
	r.GET("/menu", itemCtrl.Menu)
	r.GET("/categories", categoryCtrl.List)

	// Staff (cashier or admin)
	staff := r.Group("/", middlewares.AuthMiddleware(cfg.JWTSecret, "cashier", "admin"))
	{
		ct := staff.Group("/cart/:terminal")
		{
			ct.GET("", cartCtrl.Get)
			ct.DELETE("", cartCtrl.Clear)
			ct.POST("/items", cartCtrl.AddItem)
			ct.DELETE("/items/:itemId", cartCtrl.RemoveItem)
			ct.PATCH("/items/:itemId/increase", cartCtrl.Increase)
			ct.PATCH("/items/:itemId/decrease", cartCtrl.Decrease)
			ct.POST("/order", cartCtrl.BeginOrder)
			ct.PATCH("/order/table", cartCtrl.BindTable)
			ct.DELETE("/order", cartCtrl.ResetOrder)
			ct.POST("/checkout", orderCtrl.Checkout)
		}

		staff.GET("/orders", orderCtrl.List)
		staff.GET("/orders/:id", orderCtrl.Detail)
		staff.PATCH("/orders/:id/status", orderCtrl.UpdateStatus)

		staff.GET("/items", itemCtrl.List)
		staff.GET("/items/:id", itemCtrl.Detail)

		staff.GET("/customers", customerCtrl.List)
		staff.GET("/customers/:id", customerCtrl.Detail)
		staff.POST("/customers", customerCtrl.Create)
		staff.PATCH("/customers/:id", customerCtrl.Update)

		staff.GET("/tables", tableCtrl.List)

		staff.GET("/ws/orders", hub.Serve)
	}

	// Admin only
	admin := r.Group("/", middlewares.AuthMiddleware(cfg.JWTSecret, "admin"))
	{
		admin.POST("/items", itemCtrl.Create)
		admin.PATCH("/items/:id", itemCtrl.Update)
		admin.PATCH("/items/:id/availability", itemCtrl.SetAvailability)
		admin.DELETE("/items/:id", itemCtrl.Delete)

		admin.POST("/categories", categoryCtrl.Create)
		admin.PATCH("/categories/:id", categoryCtrl.Update)
		admin.DELETE("/categories/:id", categoryCtrl.Delete)

		admin.DELETE("/customers/:id", customerCtrl.Delete)

		admin.POST("/tables", tableCtrl.Create)
		admin.PATCH("/tables/:id", tableCtrl.Update)
		admin.DELETE("/tables/:id", tableCtrl.Delete)

		admin.GET("/suppliers", supplierCtrl.List)
		admin.POST("/suppliers", supplierCtrl.Create)
		admin.PATCH("/suppliers/:id", supplierCtrl.Update)
		admin.DELETE("/suppliers/:id", supplierCtrl.Delete)

		admin.POST("/purchases", purchaseCtrl.Create)
		admin.GET("/purchases", purchaseCtrl.List)
		admin.GET("/purchases/:id", purchaseCtrl.Detail)

		admin.GET("/reports/sales", reportCtrl.Sales)
		admin.GET("/reports/procurement", reportCtrl.Procurement)

		admin.GET("/users", userCtrl.List)
		admin.GET("/users/:id", userCtrl.Detail)
		admin.POST("/users", userCtrl.Create)
		admin.PATCH("/users/:id", userCtrl.Update)
		admin.PATCH("/users/:id/password", userCtrl.ResetPassword)
		admin.DELETE("/users/:id", userCtrl.Delete)
	}
}
