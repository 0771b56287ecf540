package routes

import (
	"github.com/gin-gonic/gin"
	settingscontroller "github.com/lumina-co/jewelry-api/controllers/settings"
	"github.com/lumina-co/jewelry-api/middleware"
	"gorm.io/gorm"
)

// SetupSettingsRoutes registers the store settings endpoints.
func SetupSettingsRoutes(api *gin.RouterGroup, db *gorm.DB) {
	api.GET("/settings", settingscontroller.GetSettings(db))
	api.PUT("/settings", middleware.RequireAdmin, settingscontroller.UpdateSettings(db))
}
