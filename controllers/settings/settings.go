package settingscontroller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/lumina-co/jewelry-api/models"
	"gorm.io/gorm"
)

// GetSettings returns the store settings, creating the defaults on first
// read so the checkout page always has a WhatsApp number and bank details.
// GET /api/settings
func GetSettings(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var settings models.StoreSettings
		err := db.First(&settings).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			settings = models.DefaultStoreSettings()
			if err := db.Create(&settings).Error; err != nil {
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create settings"})
				return
			}
		} else if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch settings"})
			return
		}
		c.JSON(http.StatusOK, settings)
	}
}

// UpdateSettings upserts the singleton settings row. PUT /api/settings (admin)
func UpdateSettings(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input models.StoreSettings
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		var existing models.StoreSettings
		err := db.First(&existing).Error
		switch {
		case errors.Is(err, gorm.ErrRecordNotFound):
			if err := db.Create(&input).Error; err != nil {
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save settings"})
				return
			}
		case err != nil:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch settings"})
			return
		default:
			input.ID = existing.ID
			if err := db.Save(&input).Error; err != nil {
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save settings"})
				return
			}
		}
		c.JSON(http.StatusOK, input)
	}
}
