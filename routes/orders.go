package routes

import (
	"github.com/gin-gonic/gin"
	ordercontroller "github.com/lumina-co/jewelry-api/controllers/order"
	"github.com/lumina-co/jewelry-api/middleware"
	"gorm.io/gorm"
)

// SetupOrderRoutes registers all /api/orders/* endpoints. Checkout is
// public; everything else belongs to the session owner or the back-office.
func SetupOrderRoutes(api *gin.RouterGroup, db *gorm.DB) {
	orders := api.Group("/orders")
	{
		orders.POST("", ordercontroller.CreateOrder(db))
		orders.GET("", middleware.RequireAdmin, ordercontroller.GetAllOrders(db))
		orders.GET("/my-history", middleware.RequireAuth, ordercontroller.GetMyOrders(db))
		orders.PUT("/:id/status", middleware.RequireAdmin, ordercontroller.UpdateOrderStatus(db))
		orders.GET("/ws", middleware.RequireAdmin, ordercontroller.OrderFeedHandler)
		orders.GET("/export-excel", middleware.RequireAdmin, ordercontroller.ExportOrdersToExcel(db))
	}
}
