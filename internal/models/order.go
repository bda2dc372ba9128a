package models

import "time"

const (
	OrderStatusPending    = "pending"
	OrderStatusProcessing = "processing"
	OrderStatusDelivered  = "delivered"
	OrderStatusCancelled  = "cancelled"
)

type Order struct {
	ID              uint      `gorm:"primaryKey" json:"id"`
	CustomerName    string    `gorm:"not null" json:"customer_name"`
	CustomerEmail   string    `json:"customer_email"`
	CustomerPhone   string    `gorm:"not null" json:"customer_phone"`
	DeliveryAddress string    `gorm:"not null" json:"delivery_address"`
	City            string    `json:"city"`
	GoogleLocation  string    `json:"google_location"`
	TotalAmount     float64   `gorm:"not null" json:"total_amount"`
	Status          string    `gorm:"not null;default:pending" json:"status"`
	CreatedAt       time.Time `gorm:"not null" json:"created_at"`
}

// OrderItem captures the product name and price at order time so later
// catalog edits never alter order history. Items are immutable once created.
type OrderItem struct {
	ID          uint    `gorm:"primaryKey" json:"id"`
	OrderID     uint    `gorm:"index;not null" json:"order_id"`
	ProductID   uint    `gorm:"not null" json:"product_id"`
	ProductName string  `gorm:"not null" json:"product_name"`
	Quantity    int     `gorm:"not null" json:"quantity"`
	Price       float64 `gorm:"not null" json:"price"`
}
