package productcontroller

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/lumina-co/jewelry-api/models"
	"gorm.io/gorm"
)

// GetProducts returns the catalog, optionally filtered.
// GET /api/products?category=<slug>&featured=<bool>
func GetProducts(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		query := db.Model(&models.Product{})

		if category := c.Query("category"); category != "" {
			query = query.Where("category_slug = ?", category)
		}
		if featuredStr := c.Query("featured"); featuredStr != "" {
			featured, err := strconv.ParseBool(featuredStr)
			if err != nil {
				c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid featured flag"})
				return
			}
			query = query.Where("featured = ?", featured)
		}

		products := []models.Product{}
		if err := query.Order("created_at DESC").Find(&products).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch products"})
			return
		}
		c.JSON(http.StatusOK, products)
	}
}

// GetProductByID returns a single product.
// GET /api/products/:id
func GetProductByID(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.Param("id")

		var product models.Product
		if err := db.First(&product, "id = ?", id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
			} else {
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve product"})
			}
			return
		}
		c.JSON(http.StatusOK, product)
	}
}
