package models

import (
	"errors"
	"strings"
	"time"
)

type OrderStatus string

const (
	OrderStatusPending   OrderStatus = "pending"   // Order placed, awaiting confirmation
	OrderStatusConfirmed OrderStatus = "confirmed" // Confirmed over WhatsApp
	OrderStatusPaid      OrderStatus = "paid"      // Transfer received
	OrderStatusShipped   OrderStatus = "shipped"   // Out for delivery
	OrderStatusDelivered OrderStatus = "delivered" // Customer received the item
	OrderStatusCancelled OrderStatus = "cancelled" // Cancelled before shipping
)

var orderStatuses = []OrderStatus{
	OrderStatusPending,
	OrderStatusConfirmed,
	OrderStatusPaid,
	OrderStatusShipped,
	OrderStatusDelivered,
	OrderStatusCancelled,
}

// ParseOrderStatus maps a request string onto the closed status set.
// Unknown values are an error, never a silent fallback.
func ParseOrderStatus(s string) (OrderStatus, error) {
	for _, st := range orderStatuses {
		if strings.ToLower(s) == string(st) {
			return st, nil
		}
	}
	return "", errors.New("invalid order status: " + s)
}

// Label returns the customer-facing Spanish label for a status.
func (s OrderStatus) Label() (string, error) {
	switch s {
	case OrderStatusPending:
		return "Pendiente", nil
	case OrderStatusConfirmed:
		return "Confirmado", nil
	case OrderStatusPaid:
		return "Pagado", nil
	case OrderStatusShipped:
		return "Enviado", nil
	case OrderStatusDelivered:
		return "Entregado", nil
	case OrderStatusCancelled:
		return "Cancelado", nil
	default:
		return "", errors.New("no label for order status: " + string(s))
	}
}

type Order struct {
	ID              string      `gorm:"primaryKey" json:"id"`
	CustomerName    string      `gorm:"not null" json:"customer_name"`
	CustomerPhone   string      `gorm:"not null" json:"customer_phone"`
	CustomerEmail   string      `gorm:"index" json:"customer_email"`
	CustomerAddress string      `gorm:"not null" json:"customer_address"`
	Items           []OrderItem `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE" json:"items"`
	Total           float64     `json:"total"`
	Notes           string      `json:"notes"`
	Status          OrderStatus `gorm:"type:VARCHAR(20);default:'pending'" json:"status"`
	CreatedAt       time.Time   `json:"created_at"`
}

type OrderItem struct {
	ID        uint    `gorm:"primaryKey" json:"-"`
	OrderID   string  `gorm:"index" json:"-"`
	ProductID string  `json:"product_id"`
	Name      string  `json:"name"`
	Price     float64 `json:"price"`
	Image     string  `json:"image"`
	Quantity  int     `json:"quantity"`
}
