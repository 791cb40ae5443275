package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Order status constants
const (
	OrderStatusPending   = "pending"
	OrderStatusConfirmed = "confirmed"
	OrderStatusDelivered = "delivered"
	OrderStatusCancelled = "cancelled"
)

// Payment method constants
const (
	PaymentMethodPix  = "pix"
	PaymentMethodCash = "dinheiro"
)

// Order is a customer's finalized purchase request, frozen at checkout time.
// The delivery address is denormalized onto the order rather than referencing
// an address table so that later profile edits never rewrite order history.
type Order struct {
	ID             uuid.UUID   `gorm:"type:uuid;primaryKey" json:"id"`
	UserID         uint        `json:"user_id"`
	User           User        `json:"user,omitempty" gorm:"foreignKey:UserID"`
	Street         string      `json:"street"`
	Number         string      `json:"number"`
	Neighborhood   string      `json:"neighborhood"`
	City           string      `json:"city"`
	PaymentMethod  string      `json:"payment_method"`
	ChangeFor      *float64    `json:"change_for,omitempty"`
	Subtotal       float64     `json:"subtotal"`
	DiscountID     *uuid.UUID  `gorm:"type:uuid" json:"discount_id,omitempty"`
	DiscountCode   string      `json:"discount_code,omitempty"`
	DiscountAmount float64     `json:"discount_amount"`
	Total          float64     `json:"total"`
	Status         string      `json:"status"`
	CreatedAt      time.Time   `json:"created_at"`
	UpdatedAt      time.Time   `json:"updated_at"`
	Items          []OrderItem `json:"items" gorm:"foreignKey:OrderID"`
}

func (o *Order) BeforeCreate(tx *gorm.DB) error {
	if o.ID == uuid.Nil {
		o.ID = uuid.New()
	}
	return nil
}

// OrderItem is one product line within an order. Price and name are captured
// at order time and never re-read from the product afterwards.
type OrderItem struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	OrderID     uuid.UUID `gorm:"type:uuid;index" json:"order_id"`
	ProductID   uuid.UUID `gorm:"type:uuid" json:"product_id"`
	ProductName string    `json:"name"`
	Quantity    int       `json:"quantity"`
	Price       float64   `json:"price"`
	Flavor      string    `json:"flavor,omitempty"`
}
