package models

import "time"

type Role string

const (
	RoleMember Role = "member"
	RoleAdmin  Role = "admin"
)

type Badge string

const (
	BadgeNone     Badge = ""
	BadgeSilver   Badge = "Silver"
	BadgeGold     Badge = "Gold"
	BadgePlatinum Badge = "Platinum"
)

type User struct {
	ID        string `gorm:"primaryKey" json:"id"`
	Email     string `gorm:"unique;not null" json:"email"`
	Name      string `json:"name"`
	Role      Role   `gorm:"type:VARCHAR(20);default:'member'" json:"role"`
	Badge     Badge  `gorm:"type:VARCHAR(20);default:''" json:"badge"`
	CreatedAt time.Time `json:"created_at"`
}

func (u User) IsAdmin() bool {
	return u.Role == RoleAdmin
}
