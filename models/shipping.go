package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ShippingRate holds the delivery fee for a city, optionally narrowed to a
// neighborhood. Used for quoting only; shipping never enters the order total.
type ShippingRate struct {
	ID           uuid.UUID      `gorm:"type:uuid;primaryKey" json:"id"`
	City         string         `json:"city" gorm:"not null"`
	Neighborhood string         `json:"neighborhood"`
	Fee          float64        `json:"fee"`
	FreeAbove    float64        `json:"free_above" gorm:"default:0"`
	Active       bool           `json:"active" gorm:"default:true"`
	CreatedAt    time.Time      `json:"created_at"`
	UpdatedAt    time.Time      `json:"updated_at"`
	DeletedAt    gorm.DeletedAt `json:"-" gorm:"index"`
}

func (s *ShippingRate) BeforeCreate(tx *gorm.DB) error {
	if s.ID == uuid.Nil {
		s.ID = uuid.New()
	}
	return nil
}
