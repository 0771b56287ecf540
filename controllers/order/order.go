package ordercontroller

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/lumina-co/jewelry-api/auth"
	"github.com/lumina-co/jewelry-api/models"
	"gorm.io/gorm"
)

type orderItemInput struct {
	ProductID string  `json:"product_id" binding:"required"`
	Name      string  `json:"name" binding:"required"`
	Price     float64 `json:"price"`
	Image     string  `json:"image"`
	Quantity  int     `json:"quantity" binding:"required,min=1"`
}

type createOrderRequest struct {
	CustomerName    string           `json:"customer_name" binding:"required"`
	CustomerPhone   string           `json:"customer_phone" binding:"required"`
	CustomerEmail   string           `json:"customer_email"`
	CustomerAddress string           `json:"customer_address" binding:"required"`
	Items           []orderItemInput `json:"items" binding:"required,min=1,dive"`
	Total           float64          `json:"total"`
	Notes           string           `json:"notes"`
}

// CreateOrder persists a checkout. POST /api/orders (public: checkout does
// not require login). New orders are pushed to the admin websocket feed.
func CreateOrder(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req createOrderRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		order := models.Order{
			ID:              uuid.NewString(),
			CustomerName:    req.CustomerName,
			CustomerPhone:   req.CustomerPhone,
			CustomerEmail:   req.CustomerEmail,
			CustomerAddress: req.CustomerAddress,
			Total:           req.Total,
			Notes:           req.Notes,
			Status:          models.OrderStatusPending,
			CreatedAt:       time.Now().UTC(),
		}
		for _, item := range req.Items {
			order.Items = append(order.Items, models.OrderItem{
				ProductID: item.ProductID,
				Name:      item.Name,
				Price:     item.Price,
				Image:     item.Image,
				Quantity:  item.Quantity,
			})
		}

		if err := db.Create(&order).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create order"})
			return
		}

		broadcastOrderEvent("order.created", order)
		c.JSON(http.StatusCreated, order)
	}
}

// GetAllOrders lists every order, newest first. GET /api/orders (admin)
func GetAllOrders(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		orders := []models.Order{}
		if err := db.Preload("Items").Order("created_at DESC").Find(&orders).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch orders"})
			return
		}
		c.JSON(http.StatusOK, orders)
	}
}

// GetMyOrders lists the session user's orders, matched on the email the
// checkout form carried. GET /api/orders/my-history (authenticated)
func GetMyOrders(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		user, ok := auth.CurrentUser(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"detail": "Not authenticated"})
			return
		}

		orders := []models.Order{}
		if err := db.Preload("Items").
			Where("customer_email = ?", user.Email).
			Order("created_at DESC").
			Find(&orders).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch orders"})
			return
		}
		c.JSON(http.StatusOK, orders)
	}
}

// UpdateOrderStatus moves an order along the fulfilment flow.
// PUT /api/orders/:id/status?status=<status> (admin)
func UpdateOrderStatus(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.Param("id")

		status, err := models.ParseOrderStatus(c.Query("status"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		result := db.Model(&models.Order{}).Where("id = ?", id).Update("status", status)
		if result.Error != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update order status"})
			return
		}
		if result.RowsAffected == 0 {
			c.JSON(http.StatusNotFound, gin.H{"error": "Order not found"})
			return
		}

		var order models.Order
		if err := db.Preload("Items").First(&order, "id = ?", id).Error; err == nil {
			broadcastOrderEvent("order.status", order)
		}
		c.JSON(http.StatusOK, gin.H{"message": "Order status updated"})
	}
}
