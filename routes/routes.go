package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/lumina-co/jewelry-api/auth"
	"github.com/lumina-co/jewelry-api/middleware"
	"gorm.io/gorm"
)

// SetupRoutes wires every /api group. The session middleware runs for the
// whole surface; per-group gates enforce auth and role.
func SetupRoutes(r *gin.Engine, db *gorm.DB, provider *auth.Provider) {
	api := r.Group("/api")
	api.Use(middleware.LoadSession(db))

	SetupAuthRoutes(api, db, provider)
	SetupCatalogRoutes(api, db)
	SetupOrderRoutes(api, db)
	SetupSettingsRoutes(api, db)
}
