package auth

import (
	"errors"
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/lumina-co/jewelry-api/models"
	"gorm.io/gorm"
)

type sessionExchangeRequest struct {
	SessionID string `json:"session_id" binding:"required"`
}

// ExchangeSessionHandler implements POST /api/auth/session: trade the one-time
// session_id from the OAuth callback fragment for a durable cookie session.
func ExchangeSessionHandler(db *gorm.DB, provider *Provider) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req sessionExchangeRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"detail": "session_id is required"})
			return
		}

		profile, err := provider.ResolveSession(c.Request.Context(), req.SessionID)
		if err != nil {
			log.Printf("❌ Session exchange failed: %v", err)
			c.JSON(http.StatusUnauthorized, gin.H{"detail": "Invalid session"})
			return
		}

		user, err := upsertUser(db, profile)
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

// MeHandler implements GET /api/auth/me, the "who am I" probe. The session
// middleware already resolved the cookie; here we only report.
func MeHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		user, ok := CurrentUser(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"detail": "Not authenticated"})
			return
		}
		c.JSON(http.StatusOK, user)
	}
}

// LogoutHandler implements POST /api/auth/logout. Best-effort: the cookie is
// cleared even when the session row is already gone.
func LogoutHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		if cookie, err := c.Cookie(SessionCookieName); err == nil {
			if sid, err := ParseSessionToken(cookie); err == nil {
				if err := db.Delete(&models.Session{}, "id = ?", sid).Error; err != nil {
					log.Printf("❌ Failed to delete session %s: %v", sid, err)
				}
			}
		}
		clearSessionCookie(c)
		c.JSON(http.StatusOK, gin.H{"message": "Logged out"})
	}
}

// CurrentUser returns the user the session middleware attached, if any.
func CurrentUser(c *gin.Context) (models.User, bool) {
	v, exists := c.Get("current_user")
	if !exists {
		return models.User{}, false
	}
	user, ok := v.(models.User)
	return user, ok
}

// upsertUser creates or refreshes the user record for an authenticated
// profile. Role is admin when the email is registered in the admins table.
func upsertUser(db *gorm.DB, profile ProviderUser) (models.User, error) {
	role := models.RoleCustomer
	var count int64
	if err := db.Model(&models.Admin{}).Where("email = ?", profile.Email).Count(&count).Error; err != nil {
		return models.User{}, err
	}
	if count > 0 {
		role = models.RoleAdmin
	}

	var user models.User
	err := db.Where("email = ?", profile.Email).First(&user).Error
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		user = models.User{
			ID:      profile.ID,
			Email:   profile.Email,
			Name:    profile.Name,
			Picture: profile.Picture,
			Role:    role,
		}
		if user.ID == "" {
			user.ID = uuid.NewString()
		}
		if err := db.Create(&user).Error; err != nil {
			return models.User{}, err
		}
	case err == nil:
		user.Name = profile.Name
		user.Picture = profile.Picture
		user.Role = role
		if err := db.Save(&user).Error; err != nil {
			return models.User{}, err
		}
	default:
		return models.User{}, err
	}
	return user, nil
}

// openSession creates the server session row and sets the signed cookie.
func openSession(c *gin.Context, db *gorm.DB, user models.User) error {
	session := models.Session{
		ID:        uuid.NewString(),
		UserID:    user.ID,
		ExpiresAt: time.Now().Add(SessionTTL),
	}
	if err := db.Create(&session).Error; err != nil {
		return err
	}

	token, err := IssueSessionToken(session.ID, session.ExpiresAt)
	if err != nil {
		return err
	}

	c.SetSameSite(http.SameSiteNoneMode)
	c.SetCookie(SessionCookieName, token, int(SessionTTL.Seconds()), "/", "", true, true)
	return nil
}

func clearSessionCookie(c *gin.Context) {
	c.SetSameSite(http.SameSiteNoneMode)
	c.SetCookie(SessionCookieName, "", -1, "/", "", true, true)
}
