package models

import (
	"time"

	"github.com/google/uuid"
)

// CartItem is storefront state only. Checkout consumes the cart snapshot
// sent by the client; the stored cart is cleared after a successful order.
type CartItem struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	UserID    uint      `gorm:"index" json:"user_id"`
	ProductID uuid.UUID `gorm:"type:uuid" json:"product_id"`
	Product   Product   `gorm:"foreignKey:ProductID" json:"product"`
	Quantity  int       `json:"quantity"`
	Flavor    string    `json:"flavor,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
