package models

import "time"

type Product struct {
	ID           string    `gorm:"primaryKey" json:"id"`
	Name         string    `gorm:"not null" json:"name"`
	Description  string    `json:"description"`
	Price        float64   `gorm:"not null" json:"price"`
	CategorySlug string    `gorm:"index" json:"category_slug"`
	Images       []string  `gorm:"serializer:json" json:"images"`
	Featured     bool      `gorm:"index" json:"featured"`
	InStock      bool      `gorm:"default:true" json:"in_stock"`
	CreatedAt    time.Time `json:"created_at"`
}

// FirstImage is what cart lines and order items capture at add time.
func (p Product) FirstImage() string {
	if len(p.Images) == 0 {
		return ""
	}
	return p.Images[0]
}
