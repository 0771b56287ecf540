package models

import "time"

type Role string

const (
	RoleCustomer Role = "customer"
	RoleAdmin    Role = "admin"
)

type User struct {
	ID        string    `gorm:"primaryKey" json:"id"`
	Email     string    `gorm:"unique;not null" json:"email"`
	Name      string    `json:"name"`
	Picture   string    `json:"picture"`
	Role      Role      `gorm:"type:VARCHAR(20);default:'customer'" json:"role"`
	CreatedAt time.Time `json:"-"`
}

// Session is the server-side half of the cookie session. The cookie only
// carries a signed reference to the ID, so deleting the row logs the user
// out everywhere.
type Session struct {
	ID        string    `gorm:"primaryKey"`
	UserID    string    `gorm:"index;not null"`
	User      User      `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
	ExpiresAt time.Time
	CreatedAt time.Time
}

func (s Session) Expired() bool {
	return time.Now().After(s.ExpiresAt)
}
