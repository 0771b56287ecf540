package auth

import (
	"log"
	"net/http"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/lumina-co/jewelry-api/models"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type adminLoginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// AdminLoginHandler implements POST /api/auth/admin-login, the local
// email/password path into the back-office. Failures answer with a
// human-readable detail the UI renders inline.
func AdminLoginHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req adminLoginRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"detail": "Email y contraseña son requeridos"})
			return
		}

		var admin models.Admin
		if err := db.Where("email = ?", req.Email).First(&admin).Error; err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"detail": "Credenciales inválidas"})
			return
		}
		if err := bcrypt.CompareHashAndPassword([]byte(admin.PasswordHash), []byte(req.Password)); err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"detail": "Credenciales inválidas"})
			return
		}

		user, err := upsertUser(db, ProviderUser{
			Email: admin.Email,
			Name:  admin.Name,
		})
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"detail": "Failed to save user"})
			return
		}

		if err := openSession(c, db, user); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"detail": "Failed to create session"})
			return
		}
		c.JSON(http.StatusOK, user)
	}
}

// EnsureAdmin seeds the first back-office account from ADMIN_EMAIL and
// ADMIN_PASSWORD. A no-op when the account already exists or the vars are
// unset.
func EnsureAdmin(db *gorm.DB) error {
	email := os.Getenv("ADMIN_EMAIL")
	password := os.Getenv("ADMIN_PASSWORD")
	if email == "" || password == "" {
		return nil
	}

	var count int64
	if err := db.Model(&models.Admin{}).Where("email = ?", email).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	admin := models.Admin{
		Email:        email,
		Name:         "Administrador",
		PasswordHash: string(hash),
	}
	if err := db.Create(&admin).Error; err != nil {
		return err
	}
	log.Printf("✅ Seeded admin account: %s", email)
	return nil
}
