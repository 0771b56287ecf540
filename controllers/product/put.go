package productcontroller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/lumina-co/jewelry-api/models"
	"gorm.io/gorm"
)

// updateProductRequest uses pointers so omitted fields stay untouched.
type updateProductRequest struct {
	Name         *string   `json:"name"`
	Description  *string   `json:"description"`
	Price        *float64  `json:"price"`
	CategorySlug *string   `json:"category_slug"`
	Images       *[]string `json:"images"`
	Featured     *bool     `json:"featured"`
	InStock      *bool     `json:"in_stock"`
}

// UpdateProduct partially updates a catalog item. PUT /api/products/:id (admin)
func UpdateProduct(db *gorm.DB) gin.HandlerFunc {
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

		var req updateProductRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		if req.Name != nil {
			product.Name = *req.Name
		}
		if req.Description != nil {
			product.Description = *req.Description
		}
		if req.Price != nil {
			product.Price = *req.Price
		}
		if req.CategorySlug != nil {
			product.CategorySlug = *req.CategorySlug
		}
		if req.Images != nil {
			product.Images = *req.Images
		}
		if req.Featured != nil {
			product.Featured = *req.Featured
		}
		if req.InStock != nil {
			product.InStock = *req.InStock
		}

		if err := db.Save(&product).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update product"})
			return
		}
		c.JSON(http.StatusOK, product)
	}
}
