package models

import (
	"time"

	"gorm.io/datatypes"
)

// Meal is a published catalog item. LikedBy is a JSON array of voter
// emails; Likes must always equal its length.
type Meal struct {
	ID          uint           `gorm:"primaryKey;autoIncrement" json:"id"`
	Title       string         `gorm:"not null" json:"title"`
	Category    string         `gorm:"index" json:"category"`
	Image       string         `json:"image"`
	Description string         `json:"description"`
	Price       float64        `gorm:"not null" json:"price"`
	Likes       int            `gorm:"not null;default:0" json:"likes"`
	LikedBy     datatypes.JSON `gorm:"type:jsonb;not null;default:'[]'" json:"likedBy"`
	Reviews     []Review       `gorm:"foreignKey:MealID;constraint:OnDelete:CASCADE" json:"reviews"`
	PostedAt    time.Time      `json:"posted_at"`
}

// UpcomingMeal mirrors Meal but lives in its own table until an admin
// publishes it. Engagement works the same way on both.
type UpcomingMeal struct {
	ID          uint           `gorm:"primaryKey;autoIncrement" json:"id"`
	Title       string         `gorm:"not null" json:"title"`
	Category    string         `gorm:"index" json:"category"`
	Image       string         `json:"image"`
	Description string         `json:"description"`
	Price       float64        `gorm:"not null" json:"price"`
	Likes       int            `gorm:"not null;default:0" json:"likes"`
	LikedBy     datatypes.JSON `gorm:"type:jsonb;not null;default:'[]'" json:"likedBy"`
	PostedAt    time.Time      `json:"posted_at"`
}

// Review is append-only; there is no update or delete path.
type Review struct {
	ID            uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	MealID        uint      `gorm:"index;not null" json:"meal_id"`
	ReviewerEmail string    `gorm:"not null" json:"reviewer_email"`
	ReviewerName  string    `json:"reviewer_name"`
	Rating        int       `json:"rating"`
	Comment       string    `json:"comment"`
	CreatedAt     time.Time `json:"created_at"`
}
