package routes

import (
	"github.com/gin-gonic/gin"
	categorycontroller "github.com/lumina-co/jewelry-api/controllers/category"
	productcontroller "github.com/lumina-co/jewelry-api/controllers/product"
	seedcontroller "github.com/lumina-co/jewelry-api/controllers/seed"
	"github.com/lumina-co/jewelry-api/middleware"
	"gorm.io/gorm"
)

// SetupCatalogRoutes registers products, categories and demo seeding.
// Reads are public; mutations require an admin session.
func SetupCatalogRoutes(api *gin.RouterGroup, db *gorm.DB) {
	products := api.Group("/products")
	{
		products.GET("", productcontroller.GetProducts(db))
		products.GET("/:id", productcontroller.GetProductByID(db))
		products.POST("", middleware.RequireAdmin, productcontroller.CreateProduct(db))
		products.PUT("/:id", middleware.RequireAdmin, productcontroller.UpdateProduct(db))
		products.DELETE("/:id", middleware.RequireAdmin, productcontroller.DeleteProduct(db))
	}

	categories := api.Group("/categories")
	{
		categories.GET("", categorycontroller.GetCategories(db))
		categories.POST("", middleware.RequireAdmin, categorycontroller.CreateCategory(db))
		categories.DELETE("/:id", middleware.RequireAdmin, categorycontroller.DeleteCategory(db))
	}

	api.POST("/seed", seedcontroller.SeedData(db))
}
