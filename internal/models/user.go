package models

import "time"

// User is an account row. PasswordHash may be empty for accounts created
// through degenerate flows (e.g. imported guest checkouts); admin status is
// never stored, it is derived from the configured operator email at read time.
type User struct {
	ID             uint      `gorm:"primaryKey" json:"id"`
	Email          string    `gorm:"uniqueIndex;not null" json:"email"`
	Name           string    `json:"name"`
	PasswordHash   string    `json:"-"`
	Phone          string    `json:"phone"`
	Address        string    `json:"address"`
	City           string    `json:"city"`
	GoogleLocation string    `json:"google_location"`
	CreatedAt      time.Time `gorm:"not null" json:"created_at"`
	UpdatedAt      time.Time `gorm:"not null" json:"updated_at"`
}
