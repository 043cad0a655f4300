package models

import "time"

type RequestStatus string

const (
	// Meal-request lifecycle: Pending is the initial state, Delivered the
	// terminal one. There is no rejection or cancellation path.
	RequestStatusPending   RequestStatus = "Pending"
	RequestStatusDelivered RequestStatus = "Delivered"
)

type MealRequest struct {
	ID             uint          `gorm:"primaryKey;autoIncrement" json:"id"`
	MealID         uint          `gorm:"not null" json:"meal_id"`
	MealTitle      string        `json:"meal_title"`
	RequesterEmail string        `gorm:"index;not null" json:"requester_email"`
	RequesterName  string        `json:"requester_name"`
	Status         RequestStatus `gorm:"type:VARCHAR(20);default:'Pending'" json:"status"`
	RequestedAt    time.Time     `json:"requested_at"`
}
