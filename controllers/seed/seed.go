package seedcontroller

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/lumina-co/jewelry-api/models"
	"gorm.io/gorm"
)

// SeedData loads the demo catalog on an empty database. The storefront calls
// this opportunistically on home-page load, so it must be idempotent.
// POST /api/seed
func SeedData(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var count int64
		if err := db.Model(&models.Category{}).Count(&count).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to check seed state"})
			return
		}
		if count > 0 {
			c.JSON(http.StatusOK, gin.H{"message": "Data already seeded"})
			return
		}

		categories := seedCategories()
		products := seedProducts()

		err := db.Transaction(func(tx *gorm.DB) error {
			if err := tx.Create(&categories).Error; err != nil {
				return err
			}
			if err := tx.Create(&products).Error; err != nil {
				return err
			}
			settings := models.DefaultStoreSettings()
			return tx.Create(&settings).Error
		})
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to seed data"})
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"message":    "Data seeded successfully",
			"categories": len(categories),
			"products":   len(products),
		})
	}
}

func seedCategories() []models.Category {
	return []models.Category{
		{ID: uuid.NewString(), Name: "Anillos", Slug: "anillos", Image: "https://images.unsplash.com/photo-1758995115445-c91788f5aa24?w=800", Description: "Elegantes anillos de oro y diamantes"},
		{ID: uuid.NewString(), Name: "Collares", Slug: "collares", Image: "https://images.unsplash.com/photo-1762195024277-b3e9f3bda4dd?w=800", Description: "Collares exclusivos para toda ocasión"},
		{ID: uuid.NewString(), Name: "Pulseras", Slug: "pulseras", Image: "https://images.unsplash.com/photo-1767921804162-9c55a278768d?w=800", Description: "Pulseras artesanales de alta calidad"},
		{ID: uuid.NewString(), Name: "Aretes", Slug: "aretes", Image: "https://images.unsplash.com/photo-1584948555826-600d0ac457c7?w=800", Description: "Aretes que complementan tu estilo"},
		{ID: uuid.NewString(), Name: "Relojes", Slug: "relojes", Image: "https://images.unsplash.com/photo-1768062251819-651433f1108b?w=800", Description: "Relojes de lujo para él y ella"},
	}
}

func seedProducts() []models.Product {
	now := time.Now().UTC()
	return []models.Product{
		{ID: uuid.NewString(), Name: "Anillo Solitario Diamante", Description: "Elegante anillo solitario con diamante de 0.5 quilates en oro blanco de 18k", Price: 2500, CategorySlug: "anillos", Images: []string{"https://images.unsplash.com/photo-1605100804763-247f67b3557e?w=800"}, Featured: true, InStock: true, CreatedAt: now},
		{ID: uuid.NewString(), Name: "Anillo Oro Rosa", Description: "Delicado anillo de oro rosa con pequeños diamantes", Price: 1200, CategorySlug: "anillos", Images: []string{"https://images.unsplash.com/photo-1602751584552-8ba73aad10e1?w=800"}, InStock: true, CreatedAt: now},
		{ID: uuid.NewString(), Name: "Anillo Eternidad", Description: "Anillo de eternidad con diamantes alrededor en oro amarillo", Price: 3200, CategorySlug: "anillos", Images: []string{"https://images.unsplash.com/photo-1599643478518-a784e5dc4c8f?w=800"}, Featured: true, InStock: true, CreatedAt: now},
		{ID: uuid.NewString(), Name: "Collar Perlas Naturales", Description: "Elegante collar de perlas cultivadas del mar del sur", Price: 1800, CategorySlug: "collares", Images: []string{"https://images.unsplash.com/photo-1515562141207-7a88fb7ce338?w=800"}, Featured: true, InStock: true, CreatedAt: now},
		{ID: uuid.NewString(), Name: "Collar Cadena Oro", Description: "Cadena fina de oro amarillo 18k estilo veneciano", Price: 850, CategorySlug: "collares", Images: []string{"https://images.unsplash.com/photo-1599643477877-530eb83abc8e?w=800"}, InStock: true, CreatedAt: now},
		{ID: uuid.NewString(), Name: "Collar Diamante Solitario", Description: "Collar con colgante de diamante solitario en oro blanco", Price: 2200, CategorySlug: "collares", Images: []string{"https://images.unsplash.com/photo-1611085583191-a3b181a88401?w=800"}, Featured: true, InStock: true, CreatedAt: now},
		{ID: uuid.NewString(), Name: "Pulsera Tennis Diamantes", Description: "Pulsera tennis con 3 quilates de diamantes en oro blanco", Price: 4500, CategorySlug: "pulseras", Images: []string{"https://images.unsplash.com/photo-1611591437281-460bfbe1220a?w=800"}, Featured: true, InStock: true, CreatedAt: now},
		{ID: uuid.NewString(), Name: "Pulsera Eslabones Oro", Description: "Pulsera de eslabones gruesos en oro amarillo 18k", Price: 1600, CategorySlug: "pulseras", Images: []string{"https://images.unsplash.com/photo-1573408301185-9146fe634ad0?w=800"}, InStock: true, CreatedAt: now},
		{ID: uuid.NewString(), Name: "Aretes Diamante Gota", Description: "Aretes colgantes con diamantes en forma de gota", Price: 2800, CategorySlug: "aretes", Images: []string{"https://images.unsplash.com/photo-1535632066927-ab7c9ab60908?w=800"}, Featured: true, InStock: true, CreatedAt: now},
		{ID: uuid.NewString(), Name: "Aretes Perla Stud", Description: "Aretes clásicos de perla con base de oro", Price: 650, CategorySlug: "aretes", Images: []string{"https://images.unsplash.com/photo-1617038260897-41a1f14a8ca0?w=800"}, InStock: true, CreatedAt: now},
		{ID: uuid.NewString(), Name: "Aretes Argolla Oro", Description: "Aretes de argolla medianos en oro amarillo pulido", Price: 480, CategorySlug: "aretes", Images: []string{"https://images.unsplash.com/photo-1630019852942-f89202989a59?w=800"}, InStock: true, CreatedAt: now},
		{ID: uuid.NewString(), Name: "Reloj Clásico Oro", Description: "Reloj elegante con caja de oro y correa de cuero negro", Price: 3800, CategorySlug: "relojes", Images: []string{"https://images.unsplash.com/photo-1524592094714-0f0654e20314?w=800"}, Featured: true, InStock: true, CreatedAt: now},
		{ID: uuid.NewString(), Name: "Reloj Diamantes Dama", Description: "Reloj para dama con bisel de diamantes", Price: 5200, CategorySlug: "relojes", Images: []string{"https://images.unsplash.com/photo-1548169874-53e85f753f1e?w=800"}, Featured: true, InStock: true, CreatedAt: now},
	}
}
