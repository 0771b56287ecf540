package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/lumina-co/jewelry-api/auth"
	"github.com/lumina-co/jewelry-api/middleware"
	"gorm.io/gorm"
)

// SetupAuthRoutes registers all /api/auth/* endpoints.
func SetupAuthRoutes(api *gin.RouterGroup, db *gorm.DB, provider *auth.Provider) {
	authGroup := api.Group("/auth")
	{
		authGroup.GET("/me", middleware.RequireAuth, auth.MeHandler())
		authGroup.POST("/session", auth.ExchangeSessionHandler(db, provider))
		authGroup.POST("/admin-login", auth.AdminLoginHandler(db))
		authGroup.POST("/logout", auth.LogoutHandler(db))
	}
}
