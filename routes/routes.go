package routes

import (
	"restaurant-pos-api/handlers"
	"restaurant-pos-api/middleware"
	"restaurant-pos-api/models"

	"github.com/gin-gonic/gin"
)

func SetupRoutes(r *gin.Engine) {
	// ── Public routes ──────────────────────────────────────────────
	public := r.Group("/api")
	{
		public.POST("/auth/register", handlers.Register)
		public.POST("/auth/login", handlers.Login)

		// State machine info (great for docs/Postman)
		public.GET("/state-machine", handlers.GetStateMachineInfo)
	}

	// ── Authenticated routes (any role) ────────────────────────────
	auth := r.Group("/api")
	auth.Use(middleware.AuthRequired())
	{
		auth.GET("/profile", handlers.GetProfile)

		// Catalog reads
		auth.GET("/categories", handlers.ListCategories)
		auth.GET("/categories/:id", handlers.GetCategory)
		auth.GET("/menuitems", handlers.ListMenuItems)
		auth.GET("/menuitems/:id", handlers.GetMenuItem)

		// Customers
		auth.GET("/customers", handlers.ListCustomers)
		auth.GET("/customers/:id", handlers.GetCustomer)
		auth.POST("/customers", handlers.CreateCustomer)
		auth.PUT("/customers/:id", handlers.UpdateCustomer)

		// Orders
		auth.POST("/orders", handlers.PlaceOrder)
		auth.GET("/orders", handlers.ListOrders)
		auth.GET("/orders/:id", handlers.GetOrderDetail)
		auth.PATCH("/orders/:id/status", handlers.UpdateOrderStatus)

		// Waiter reads
		auth.GET("/waiters", handlers.ListWaiters)
		auth.GET("/waiters/:id", handlers.GetWaiter)
	}

	// ── Cashier routes ─────────────────────────────────────────────
	cashier := r.Group("/api")
	cashier.Use(middleware.AuthRequired(), middleware.RoleRequired(models.RoleAdmin, models.RoleManager, models.RoleCashier))
	{
		cashier.POST("/receipts/generate", handlers.GenerateReceipt)
		cashier.GET("/receipts", handlers.ListReceipts)
		cashier.GET("/receipts/:id", handlers.GetReceipt)
		cashier.GET("/receipts/order/:orderId", handlers.GetReceiptByOrder)
	}

	// ── Manager routes ─────────────────────────────────────────────
	manager := r.Group("/api")
	manager.Use(middleware.AuthRequired(), middleware.RoleRequired(models.RoleAdmin, models.RoleManager))
	{
		// Staff management
		manager.GET("/staff", handlers.ListStaff)
		manager.GET("/staff/:id", handlers.GetStaff)
		manager.POST("/staff", handlers.CreateStaff)
		manager.PUT("/staff/:id", handlers.UpdateStaff)
		manager.PATCH("/staff/:id/status", handlers.UpdateStaffStatus)
		manager.DELETE("/staff/:id", handlers.DeleteStaff)

		// Waiter management
		manager.POST("/waiters", handlers.CreateWaiter)
		manager.PUT("/waiters/:id", handlers.UpdateWaiter)
		manager.DELETE("/waiters/:id", handlers.DeleteWaiter)

		// Catalog management
		manager.POST("/categories", handlers.CreateCategory)
		manager.PUT("/categories/:id", handlers.UpdateCategory)
		manager.DELETE("/categories/:id", handlers.DeleteCategory)
		manager.POST("/menuitems", handlers.CreateMenuItem)
		manager.PUT("/menuitems/:id", handlers.UpdateMenuItem)
		manager.DELETE("/menuitems/:id", handlers.DeleteMenuItem)

		// Inventory
		manager.GET("/inventory", handlers.GetInventory)
		manager.GET("/inventory/stats", handlers.GetInventoryStats)
		manager.PUT("/inventory/:id/stock", handlers.UpdateStock)

		// Reports
		manager.GET("/reports/daily-sales/:date", handlers.DailySales)
		manager.GET("/reports/waiter-performance", handlers.WaiterPerformance)
		manager.GET("/reports/popular-items", handlers.PopularItems)

		manager.DELETE("/customers/:id", handlers.DeleteCustomer)
		manager.DELETE("/orders/:id", handlers.DeleteOrder)
		manager.DELETE("/receipts/:id", handlers.DeleteReceipt)
	}
}
