package models

import "time"

// CartItem snapshots the meal price at add time. All of an owner's items
// are removed in bulk when a settlement succeeds.
type CartItem struct {
	ID         uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	OwnerEmail string    `gorm:"index;not null" json:"owner_email"`
	MealID     uint      `gorm:"not null" json:"meal_id"`
	MealTitle  string    `json:"meal_title"`
	Price      float64   `gorm:"not null" json:"price"`
	AddedAt    time.Time `json:"added_at"`
}
