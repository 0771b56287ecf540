package productcontroller

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/lumina-co/jewelry-api/models"
	"gorm.io/gorm"
)

type createProductRequest struct {
	Name         string   `json:"name" binding:"required"`
	Description  string   `json:"description"`
	Price        float64  `json:"price" binding:"required"`
	CategorySlug string   `json:"category_slug" binding:"required"`
	Images       []string `json:"images" binding:"required"`
	Featured     bool     `json:"featured"`
	InStock      *bool    `json:"in_stock"`
}

// CreateProduct adds a catalog item. POST /api/products (admin)
func CreateProduct(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req createProductRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		inStock := true
		if req.InStock != nil {
			inStock = *req.InStock
		}

		product := models.Product{
			ID:           uuid.NewString(),
			Name:         req.Name,
			Description:  req.Description,
			Price:        req.Price,
			CategorySlug: req.CategorySlug,
			Images:       req.Images,
			Featured:     req.Featured,
			InStock:      inStock,
			CreatedAt:    time.Now().UTC(),
		}

		if err := db.Create(&product).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create product"})
			return
		}
		c.JSON(http.StatusCreated, product)
	}
}
