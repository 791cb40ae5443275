package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Discount type constants
const (
	DiscountTypePercent = "percent"
	DiscountTypeFixed   = "fixed"
)

type Discount struct {
	ID         uuid.UUID      `gorm:"type:uuid;primaryKey" json:"id"`
	Code       string         `gorm:"uniqueIndex;not null" json:"code"`
	Type       string         `json:"type"` // "percent" or "fixed"
	Value      float64        `json:"value"`
	ValidUntil time.Time      `json:"valid_until"`
	UsageLimit int            `json:"usage_limit"`
	Active     bool           `json:"active" gorm:"default:true"`
	CreatedAt  time.Time      `json:"created_at"`
	UpdatedAt  time.Time      `json:"updated_at"`
	DeletedAt  gorm.DeletedAt `json:"-" gorm:"index"`
}

func (d *Discount) BeforeCreate(tx *gorm.DB) error {
	if d.ID == uuid.Nil {
		d.ID = uuid.New()
	}
	return nil
}

// DiscountUsage records one redemption of a discount code. Its presence is
// the enforcement mechanism for "one redemption per user per code".
type DiscountUsage struct {
	ID         uint      `gorm:"primaryKey" json:"id"`
	DiscountID uuid.UUID `gorm:"type:uuid;index:idx_discount_user" json:"discount_id"`
	UserID     uint      `gorm:"index:idx_discount_user" json:"user_id"`
	OrderID    uuid.UUID `gorm:"type:uuid" json:"order_id"`
	UsedAt     time.Time `json:"used_at"`
}
