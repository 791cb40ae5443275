package models

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Category struct {
	ID          uuid.UUID      `gorm:"type:uuid;primaryKey" json:"id"`
	Name        string         `json:"name" gorm:"not null"`
	Description string         `json:"description"`
	Active      bool           `json:"active" gorm:"default:true"`
	CreatedAt   time.Time      `json:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at"`
	DeletedAt   gorm.DeletedAt `json:"-" gorm:"index"`
}

func (c *Category) BeforeCreate(tx *gorm.DB) error {
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
	c.Name = strings.TrimSpace(c.Name)
	return nil
}

func (c *Category) BeforeUpdate(tx *gorm.DB) error {
	c.Name = strings.TrimSpace(c.Name)
	return nil
}

// Product represents an item in the catalog. Stock is the only field the
// checkout flow mutates.
type Product struct {
	ID          uuid.UUID       `gorm:"type:uuid;primaryKey" json:"id"`
	Name        string          `json:"name" gorm:"not null"`
	Description string          `json:"description"`
	Price       float64         `json:"price"`
	Stock       int             `json:"stock"`
	CategoryID  uuid.UUID       `gorm:"type:uuid" json:"category_id"`
	Category    Category        `json:"category,omitempty" gorm:"foreignKey:CategoryID"`
	ImageURL    string          `json:"image_url"`
	Images      []ProductImage  `json:"images,omitempty" gorm:"foreignKey:ProductID"`
	Flavors     []ProductFlavor `json:"flavors,omitempty" gorm:"foreignKey:ProductID"`
	IsActive    bool            `json:"is_active" gorm:"default:true"`
	IsFeatured  bool            `json:"is_featured" gorm:"default:false"`
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"`
	DeletedAt   gorm.DeletedAt  `json:"-" gorm:"index"`
}

func (p *Product) BeforeCreate(tx *gorm.DB) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	return nil
}

type ProductImage struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	ProductID uuid.UUID `gorm:"type:uuid;index" json:"product_id"`
	URL       string    `json:"url"`
	SortOrder int       `json:"sort_order" gorm:"default:0"`
	CreatedAt time.Time `json:"created_at"`
}

// ProductFlavor is a selectable variant label offered for a product. The
// label chosen at checkout is denormalized onto the order item as free text.
type ProductFlavor struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	ProductID uuid.UUID `gorm:"type:uuid;index" json:"product_id"`
	Name      string    `json:"name" gorm:"not null"`
}
