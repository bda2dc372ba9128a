package models

import "time"

type Category struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Name      string    `gorm:"not null" json:"name"`
	Slug      string    `gorm:"uniqueIndex;not null" json:"slug"`
	ImageURL  string    `json:"image_url"`
	CreatedAt time.Time `gorm:"not null" json:"created_at"`
}
