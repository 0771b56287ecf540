package models

type Category struct {
	ID          string `gorm:"primaryKey" json:"id"`
	Name        string `gorm:"not null" json:"name"`
	Slug        string `gorm:"unique;not null" json:"slug"`
	Image       string `json:"image"`
	Description string `json:"description"`
}
