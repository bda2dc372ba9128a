package models

import "time"

type Product struct {
	ID            uint       `gorm:"primaryKey" json:"id"`
	Name          string     `gorm:"not null" json:"name"`
	Slug          string     `gorm:"uniqueIndex;not null" json:"slug"`
	Description   string     `json:"description"`
	Price         float64    `gorm:"not null" json:"price"`
	SalePrice     *float64   `json:"sale_price"`
	ImageURL      string     `json:"image_url"`
	CategoryID    *uint      `json:"category_id"`
	StockQuantity int        `gorm:"not null;default:0" json:"stock_quantity"`
	Unit          string     `gorm:"not null;default:kg" json:"unit"`
	IsFeatured    bool       `gorm:"not null;default:false" json:"is_featured"`
	IsNew         bool       `gorm:"not null;default:false" json:"is_new"`
	IsOnSale      bool       `gorm:"not null;default:false" json:"is_on_sale"`
	CreatedAt     time.Time  `gorm:"not null" json:"created_at"`
	UpdatedAt     time.Time  `gorm:"not null" json:"updated_at"`

	// Filled by list queries that join the categories table.
	CategoryName string `gorm:"->;-:migration" json:"category_name,omitempty"`
}
